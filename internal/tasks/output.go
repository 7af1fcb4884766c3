package tasks

import (
	"sort"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

const separator = " — "

// Line is one row of an Output.
type Line struct {
	Name    string
	Elapsed Elapsed
}

// Output is a sorted elapsed-time report.
type Output []Line

// Render computes how long ago each record was done relative to now and
// orders the result by displayed value, then by name.
func Render(records []Record, now time.Time, f Formatter) Output {
	out := make(Output, 0, len(records))
	for _, r := range records {
		out = append(out, Line{Name: r.Name, Elapsed: f(now.Sub(r.Done))})
	}
	sort.Slice(out, func(i, j int) bool {
		di, dj := out[i].Elapsed.Duration(), out[j].Elapsed.Duration()
		if di != dj {
			return di < dj
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Width returns the display width of the longest name.
func (o Output) Width() int {
	width := 0
	for _, line := range o {
		if w := runewidth.StringWidth(line.Name); w > width {
			width = w
		}
	}
	return width
}

// String renders one "name — value" line per entry with names padded to a
// common width. Every line, including the last, ends in a newline.
func (o Output) String() string {
	width := o.Width()
	var b strings.Builder
	for _, line := range o {
		b.WriteString(runewidth.FillRight(line.Name, width))
		b.WriteString(separator)
		b.WriteString(line.Elapsed.Text)
		b.WriteByte('\n')
	}
	return b.String()
}
