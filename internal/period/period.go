// Package period resolves budget period boundaries.
//
// Budget periods are month-aligned: weekly buckets cover fixed day-of-month
// ranges [1-7][8-14][15-21][22-last] and fortnights cover [1-14][15-last],
// so the fourth week and second fortnight stretch or shrink with the month.
// These buckets are not ISO weeks and never cross a month boundary.
package period

import (
	"errors"
	"fmt"
	"time"

	"github.com/tandembudget/tandem/internal/config"
)

// Errors for period operations
var (
	ErrInvalidPeriodType = errors.New("invalid period type")
)

// Type represents the budget period resolution
type Type string

const (
	TypeWeekly      Type = "weekly"
	TypeFortnightly Type = "fortnightly"
	TypeMonthly     Type = "monthly"
)

// Validate checks if the period type is valid
func (t Type) Validate() error {
	switch t {
	case TypeWeekly, TypeFortnightly, TypeMonthly:
		return nil
	default:
		return ErrInvalidPeriodType
	}
}

// Range represents one resolved budget period. Start and End are absolute
// instants; End is inclusive (last millisecond of the period's final local
// day).
type Range struct {
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end" yaml:"end"`
	Label string    `json:"label" yaml:"label"`
}

// Contains reports whether t falls inside the range (inclusive on both ends).
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// loadLocation resolves a timezone name, falling back to the configured
// default and finally UTC. Unknown names never produce an error.
func loadLocation(tz string) *time.Location {
	if tz == "" {
		tz = config.DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc, err = time.LoadLocation(config.DefaultTimezone)
		if err != nil {
			return time.UTC
		}
	}
	return loc
}

// GetRange returns the period of the given type containing ref, as observed
// in tz. The civil date is taken in tz, not UTC: an instant near midnight UTC
// can belong to a different local calendar day, which can move the whole
// period (and even the month) it resolves to.
func GetRange(ref time.Time, pt Type, tz string) Range {
	loc := loadLocation(tz)
	y, m, d := ref.In(loc).Date()

	var start, next time.Time
	switch pt {
	case TypeWeekly:
		idx := (d - 1) / 7
		if idx > 3 {
			idx = 3
		}
		start = time.Date(y, m, idx*7+1, 0, 0, 0, 0, loc)
		if idx == 3 {
			next = time.Date(y, m, 1, 0, 0, 0, 0, loc).AddDate(0, 1, 0)
		} else {
			next = time.Date(y, m, (idx+1)*7+1, 0, 0, 0, 0, loc)
		}
	case TypeFortnightly:
		if d <= 14 {
			start = time.Date(y, m, 1, 0, 0, 0, 0, loc)
			next = time.Date(y, m, 15, 0, 0, 0, 0, loc)
		} else {
			start = time.Date(y, m, 15, 0, 0, 0, 0, loc)
			next = time.Date(y, m, 1, 0, 0, 0, 0, loc).AddDate(0, 1, 0)
		}
	default: // monthly
		start = time.Date(y, m, 1, 0, 0, 0, 0, loc)
		next = start.AddDate(0, 1, 0)
	}

	end := next.Add(-time.Millisecond)
	return Range{Start: start, End: end, Label: label(pt, start, end)}
}

// Next returns the first instant of the period after the one containing ref,
// wrapping across month boundaries (week 4 of January -> week 1 of February).
func Next(ref time.Time, pt Type, tz string) time.Time {
	return GetRange(ref, pt, tz).End.Add(time.Millisecond)
}

// Previous returns the first instant of the period before the one containing
// ref.
func Previous(ref time.Time, pt Type, tz string) time.Time {
	before := GetRange(ref, pt, tz).Start.Add(-time.Millisecond)
	return GetRange(before, pt, tz).Start
}

// MonthKey returns the canonical "YYYY-MM-01" key for the month containing
// ref, as observed in tz. Manual assignments are stored against this key.
func MonthKey(ref time.Time, tz string) string {
	loc := loadLocation(tz)
	y, m, _ := ref.In(loc).Date()
	return fmt.Sprintf("%04d-%02d-01", y, int(m))
}

func label(pt Type, start, end time.Time) string {
	if pt == TypeMonthly {
		return start.Format("January 2006")
	}
	return fmt.Sprintf("%s – %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
}
