// Package tasks implements the loago task model and its elapsed-time report.
//
// # Store
//
// A Store maps task names to the last time each task was performed. It is
// loaded from a record file, mutated once per invocation and written back
// only when something changed:
//
//   - Update stamps every given name with a single "now", creating records
//     that did not exist yet. All names in one call share the same timestamp.
//
//   - Remove deletes records by name. Names that are not stored are ignored,
//     so removing twice is harmless.
//
//   - Get and All read records back. Get omits names it does not know; use
//     Missing to find out which ones those were.
//
// # Output
//
// Output turns records into lines of (name, elapsed) sorted by the elapsed
// value as it is displayed, then by name. A Formatter decides how a duration
// is displayed:
//
//	Adaptive  6 | 5h | 12m | 0   (default)
//	Days      6
//	Hours     149
//	Minutes   8940
//
// Rendered output pads names to a common width:
//
//	bed      — 4
//	floor    — 6
//	keyboard — 8
//
// # Usage
//
//	store := tasks.FromMap(records)
//	store.Update("vacuum", "dust")
//	fmt.Print(store.Output(tasks.Adaptive))
package tasks
