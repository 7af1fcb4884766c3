package tasks

import (
	"fmt"
	"strconv"
	"time"
)

// Day is the unit days are counted in. Calendar and DST changes are ignored.
const Day = 24 * time.Hour

// Elapsed is a duration as it is shown to the user: Value whole Units,
// rendered as Text.
type Elapsed struct {
	Value int64
	Unit  time.Duration
	Text  string
}

// Duration returns the displayed value as a duration. Lines are sorted by it.
func (e Elapsed) Duration() time.Duration {
	return time.Duration(e.Value) * e.Unit
}

// Formatter decides how an elapsed duration is displayed.
type Formatter func(d time.Duration) Elapsed

// Days shows whole days.
func Days(d time.Duration) Elapsed {
	return truncate(d, Day, "")
}

// Hours shows whole hours.
func Hours(d time.Duration) Elapsed {
	return truncate(d, time.Hour, "")
}

// Minutes shows whole minutes.
func Minutes(d time.Duration) Elapsed {
	return truncate(d, time.Minute, "")
}

// Adaptive shows whole days once a day has passed. Below that it falls back
// to hours ("5h"), then minutes ("12m"), and shows "0" under a minute.
func Adaptive(d time.Duration) Elapsed {
	switch {
	case d >= Day:
		return truncate(d, Day, "")
	case d >= time.Hour:
		return truncate(d, time.Hour, "h")
	case d >= time.Minute:
		return truncate(d, time.Minute, "m")
	default:
		return Elapsed{Value: 0, Unit: time.Minute, Text: "0"}
	}
}

func truncate(d, unit time.Duration, suffix string) Elapsed {
	if d < 0 {
		d = 0
	}
	value := int64(d / unit)
	return Elapsed{
		Value: value,
		Unit:  unit,
		Text:  strconv.FormatInt(value, 10) + suffix,
	}
}

// Formatter names accepted by FormatterFor.
const (
	FormatAuto    = "auto"
	FormatDays    = "days"
	FormatHours   = "hours"
	FormatMinutes = "minutes"
)

// FormatterFor resolves a formatter by name. An empty name means auto.
func FormatterFor(name string) (Formatter, error) {
	switch name {
	case "", FormatAuto:
		return Adaptive, nil
	case FormatDays:
		return Days, nil
	case FormatHours:
		return Hours, nil
	case FormatMinutes:
		return Minutes, nil
	default:
		return nil, fmt.Errorf("unknown format %q (expected %s, %s, %s or %s)",
			name, FormatAuto, FormatDays, FormatHours, FormatMinutes)
	}
}
