package tasks

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// ErrEmptyName is returned by ValidateName for names with no visible characters.
var ErrEmptyName = errors.New("task name cannot be empty")

// ErrInvalidName is returned by ValidateName for names that are not valid
// UTF-8 and would not survive a round trip through the record.
var ErrInvalidName = errors.New("task name is not valid UTF-8")

// Record is a task and the last time it was performed.
type Record struct {
	Name string
	Done time.Time
}

// Store holds the last-performed timestamp of every tracked task.
type Store struct {
	tasks map[string]time.Time
	clock func() time.Time
	dirty bool
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the function used to read the current time.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	return FromMap(nil, opts...)
}

// FromMap creates a store holding a copy of records.
func FromMap(records map[string]time.Time, opts ...Option) *Store {
	s := &Store{
		tasks: make(map[string]time.Time, len(records)),
		clock: time.Now,
	}
	for name, done := range records {
		s.tasks[name] = done.UTC()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateName checks that name can be used as a task name.
func ValidateName(name string) error {
	if !utf8.ValidString(name) {
		return ErrInvalidName
	}
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

// Now returns the store's current time in UTC without a monotonic reading.
func (s *Store) Now() time.Time {
	return s.clock().UTC()
}

// Update sets the timestamp of every named task to now, creating missing ones.
func (s *Store) Update(names ...string) {
	if len(names) == 0 {
		return
	}
	now := s.Now()
	for _, name := range names {
		if name == "" {
			continue
		}
		s.tasks[name] = now
		s.dirty = true
	}
}

// Remove deletes the named tasks. Unknown names are ignored.
func (s *Store) Remove(names ...string) {
	for _, name := range names {
		if _, exists := s.tasks[name]; exists {
			delete(s.tasks, name)
			s.dirty = true
		}
	}
}

// Keep removes every task that is not named.
func (s *Store) Keep(names ...string) {
	keep := make(map[string]time.Time, len(names))
	for _, name := range names {
		if done, exists := s.tasks[name]; exists {
			keep[name] = done
		}
	}
	if len(keep) != len(s.tasks) {
		s.dirty = true
	}
	s.tasks = keep
}

// Lookup returns the timestamp of a single task.
func (s *Store) Lookup(name string) (time.Time, bool) {
	done, ok := s.tasks[name]
	return done, ok
}

// All returns every record in no particular order.
func (s *Store) All() []Record {
	records := make([]Record, 0, len(s.tasks))
	for name, done := range s.tasks {
		records = append(records, Record{Name: name, Done: done})
	}
	return records
}

// Get returns the records for the requested names. Names that are not
// stored are left out, and duplicates are returned once.
func (s *Store) Get(names ...string) []Record {
	var records []Record
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		if done, exists := s.tasks[name]; exists {
			records = append(records, Record{Name: name, Done: done})
		}
	}
	return records
}

// Missing returns the requested names that are not stored, in request order.
func (s *Store) Missing(names ...string) []string {
	var missing []string
	for _, name := range names {
		if _, exists := s.tasks[name]; !exists {
			missing = append(missing, name)
		}
	}
	return missing
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Map returns a copy of the underlying name to timestamp mapping.
func (s *Store) Map() map[string]time.Time {
	out := make(map[string]time.Time, len(s.tasks))
	for name, done := range s.tasks {
		out[name] = done
	}
	return out
}

// Dirty reports whether the store changed since it was created.
func (s *Store) Dirty() bool {
	return s.dirty
}

// Output renders every record against the store's clock.
func (s *Store) Output(f Formatter) Output {
	return Render(s.All(), s.Now(), f)
}
