package model

import (
	"fmt"
	"strings"
)

type Frequency string

const (
	FrequencyDaily     Frequency = "Daily"
	FrequencyWeekly    Frequency = "Weekly"
	FrequencyMonthly   Frequency = "Monthly"
	FrequencyQuarterly Frequency = "Quarterly"
)

// Frequencies lists the accepted values in the order forms offer them.
func Frequencies() []Frequency {
	return []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly}
}

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly:
		return true
	default:
		return false
	}
}

// ParseFrequency matches user input case-insensitively.
func ParseFrequency(raw string) (Frequency, error) {
	trimmed := strings.TrimSpace(raw)
	for _, f := range Frequencies() {
		if strings.EqualFold(trimmed, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFrequency, raw)
}

// Cycle returns the neighbouring frequency, wrapping at both ends.
func (f Frequency) Cycle(step int) Frequency {
	all := Frequencies()
	idx := 0
	for i, item := range all {
		if item == f {
			idx = i
			break
		}
	}
	n := len(all)
	return all[((idx+step)%n+n)%n]
}

// advance steps from by n periods of f.
func (f Frequency) advance(from Date, n int) (Date, error) {
	switch f {
	case FrequencyDaily:
		return from.AddDays(n), nil
	case FrequencyWeekly:
		return from.AddDays(7 * n), nil
	case FrequencyMonthly:
		return from.AddMonths(n), nil
	case FrequencyQuarterly:
		return from.AddMonths(3 * n), nil
	default:
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidFrequency, f)
	}
}

// Preview lists the count dates following from. Month steps are taken from
// the original day, so Jan 31 monthly gives Feb 28, Mar 31, Apr 30.
func (f Frequency) Preview(from Date, count int) ([]Date, error) {
	if count <= 0 {
		return []Date{}, nil
	}
	if !f.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFrequency, f)
	}
	out := make([]Date, 0, count)
	for i := 1; i <= count; i++ {
		d, err := f.advance(from, i)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
