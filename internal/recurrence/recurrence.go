// Package recurrence counts occurrences of recurring expenses inside a
// budget period.
package recurrence

import (
	"errors"
	"strings"
	"time"
)

// Errors for recurrence operations
var (
	ErrInvalidPattern = errors.New("invalid recurrence pattern")
)

// Pattern represents how often an expense repeats
type Pattern string

const (
	Weekly      Pattern = "weekly"
	Fortnightly Pattern = "fortnightly"
	Monthly     Pattern = "monthly"
	Quarterly   Pattern = "quarterly"
	Yearly      Pattern = "yearly"
	OneTime     Pattern = "one-time"
)

// Validate checks if the recurrence pattern is valid
func (p Pattern) Validate() error {
	switch p {
	case Weekly, Fortnightly, Monthly, Quarterly, Yearly, OneTime:
		return nil
	default:
		return ErrInvalidPattern
	}
}

// ParseAnchor parses an anchor date string. Accepts plain dates (YYYY-MM-DD)
// and RFC3339 timestamps. The boolean is false for anything else; callers
// treat that as zero occurrences rather than an error.
func ParseAnchor(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// CountInPeriod counts how many occurrences of a recurring expense anchored
// at anchor fall inside [start, end], both ends inclusive. Comparisons happen
// at civil-date granularity in the period's own location. The anchor may be
// arbitrarily far in the past or future: weekly and fortnightly counting uses
// modular arithmetic on day offsets, not day-by-day stepping.
func CountInPeriod(anchor string, p Pattern, start, end time.Time) int {
	at, ok := ParseAnchor(anchor)
	if !ok {
		return 0
	}

	loc := start.Location()
	a := civilDate(at, at.Location())
	ps := civilDate(start, loc)
	pe := civilDate(end, loc)
	if pe.Before(ps) {
		return 0
	}

	switch p {
	case Weekly:
		return countInterval(a, ps, pe, 7)
	case Fortnightly:
		return countInterval(a, ps, pe, 14)
	case Monthly, Quarterly, Yearly:
		return countCalendar(a, ps, pe, p)
	case OneTime:
		if !a.Before(ps) && !a.After(pe) {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// countInterval counts hits of the series anchor + n*interval days within
// [ps, pe].
func countInterval(anchor, ps, pe time.Time, interval int) int {
	offset := daysBetween(anchor, ps)
	rem := ((offset % interval) + interval) % interval

	first := ps
	if rem != 0 {
		first = ps.AddDate(0, 0, interval-rem)
	}
	if first.After(pe) {
		return 0
	}
	return daysBetween(first, pe)/interval + 1
}

// countCalendar counts month-grid hits (monthly, quarterly, yearly) within
// [ps, pe]. The anchor's day-of-month is clamped to each candidate month's
// length, so a day-31 anchor lands on Feb 28 in a non-leap February.
func countCalendar(anchor, ps, pe time.Time, p Pattern) int {
	count := 0
	for cur := time.Date(ps.Year(), ps.Month(), 1, 0, 0, 0, 0, time.UTC); !cur.After(pe); cur = cur.AddDate(0, 1, 0) {
		switch p {
		case Quarterly:
			if mod(monthIndex(cur)-monthIndex(anchor), 3) != 0 {
				continue
			}
		case Yearly:
			if cur.Month() != anchor.Month() {
				continue
			}
		}
		day := clampDay(anchor.Day(), cur.Year(), cur.Month())
		hit := time.Date(cur.Year(), cur.Month(), day, 0, 0, 0, 0, time.UTC)
		if !hit.Before(ps) && !hit.After(pe) {
			count++
		}
	}
	return count
}

// civilDate normalizes an instant to its local calendar day, represented as
// UTC midnight so day arithmetic is exact regardless of DST.
func civilDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns b - a in whole days. Both must be UTC midnights.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}

// clampDay limits a day-of-month to the length of the given month.
func clampDay(day, year int, month time.Month) int {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > last {
		return last
	}
	return day
}
