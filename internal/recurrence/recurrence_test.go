package recurrence

import (
	"fmt"
	"testing"
	"time"
)

var (
	febStart = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	febEnd   = time.Date(2026, 2, 28, 23, 59, 59, 999000000, time.UTC)
)

func TestCountInPeriodWeekly(t *testing.T) {
	tests := []struct {
		name   string
		anchor string
		want   int
	}{
		{"anchor inside period", "2026-02-02", 4}, // Feb 2, 9, 16, 23
		{"anchor on period start", "2026-02-01", 4},
		{"anchor day 5", "2026-02-05", 4},
		{"anchor years in the past", "2019-02-04", 4}, // Mondays
		{"anchor years in the future", "2033-02-07", 4},
		{"anchor in prior month", "2026-01-26", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountInPeriod(tt.anchor, Weekly, febStart, febEnd); got != tt.want {
				t.Errorf("CountInPeriod(%s, weekly) = %d, want %d", tt.anchor, got, tt.want)
			}
		})
	}
}

func TestCountInPeriodFortnightly(t *testing.T) {
	if got := CountInPeriod("2026-02-02", Fortnightly, febStart, febEnd); got != 2 {
		t.Errorf("fortnightly count = %d, want 2", got) // Feb 2, 16
	}
	if got := CountInPeriod("2025-12-22", Fortnightly, febStart, febEnd); got != 2 {
		t.Errorf("fortnightly distant anchor count = %d, want 2", got) // Feb 2, 16
	}
}

func TestCountInPeriodMonthlyClamping(t *testing.T) {
	// Day-31 anchor clamps to Feb 28
	if got := CountInPeriod("2026-01-31", Monthly, febStart, febEnd); got != 1 {
		t.Errorf("monthly day-31 anchor in February = %d, want 1", got)
	}

	// Clamped hit still lands inside a week bucket only when the bucket
	// covers the clamped day
	week4Start := time.Date(2026, 2, 22, 0, 0, 0, 0, time.UTC)
	if got := CountInPeriod("2026-01-31", Monthly, week4Start, febEnd); got != 1 {
		t.Errorf("monthly day-31 anchor in Feb week 4 = %d, want 1", got)
	}
	week1End := time.Date(2026, 2, 7, 23, 59, 59, 999000000, time.UTC)
	if got := CountInPeriod("2026-01-31", Monthly, febStart, week1End); got != 0 {
		t.Errorf("monthly day-31 anchor in Feb week 1 = %d, want 0", got)
	}

	// Leap year keeps day 29
	leapStart := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	leapEnd := time.Date(2024, 2, 29, 23, 59, 59, 999000000, time.UTC)
	if got := CountInPeriod("2023-10-29", Monthly, leapStart, leapEnd); got != 1 {
		t.Errorf("monthly day-29 anchor in leap February = %d, want 1", got)
	}
}

func TestCountInPeriodQuarterly(t *testing.T) {
	// Anchor November: hits Feb, May, Aug, Nov
	if got := CountInPeriod("2025-11-15", Quarterly, febStart, febEnd); got != 1 {
		t.Errorf("quarterly aligned month = %d, want 1", got)
	}
	// Anchor December: hits Mar, Jun, Sep, Dec
	if got := CountInPeriod("2025-12-15", Quarterly, febStart, febEnd); got != 0 {
		t.Errorf("quarterly misaligned month = %d, want 0", got)
	}
	// Day-31 anchor clamps inside an aligned month
	if got := CountInPeriod("2025-08-31", Quarterly, febStart, febEnd); got != 1 {
		t.Errorf("quarterly clamped day = %d, want 1", got)
	}
}

func TestCountInPeriodYearly(t *testing.T) {
	if got := CountInPeriod("2020-02-14", Yearly, febStart, febEnd); got != 1 {
		t.Errorf("yearly matching month = %d, want 1", got)
	}
	if got := CountInPeriod("2020-03-14", Yearly, febStart, febEnd); got != 0 {
		t.Errorf("yearly non-matching month = %d, want 0", got)
	}
	// Feb 29 anchor clamps to Feb 28 in non-leap years
	if got := CountInPeriod("2024-02-29", Yearly, febStart, febEnd); got != 1 {
		t.Errorf("yearly Feb 29 anchor in non-leap year = %d, want 1", got)
	}
}

func TestCountInPeriodOneTime(t *testing.T) {
	tests := []struct {
		anchor string
		want   int
	}{
		{"2026-02-01", 1}, // on start
		{"2026-02-28", 1}, // on end
		{"2026-02-14", 1},
		{"2026-01-31", 0},
		{"2026-03-01", 0},
	}
	for _, tt := range tests {
		if got := CountInPeriod(tt.anchor, OneTime, febStart, febEnd); got != tt.want {
			t.Errorf("CountInPeriod(%s, one-time) = %d, want %d", tt.anchor, got, tt.want)
		}
	}
}

func TestCountInPeriodInvalidAnchor(t *testing.T) {
	for _, anchor := range []string{"", "   ", "not-a-date", "2026-13-40", "31/01/2026"} {
		for _, p := range []Pattern{Weekly, Fortnightly, Monthly, Quarterly, Yearly, OneTime} {
			if got := CountInPeriod(anchor, p, febStart, febEnd); got != 0 {
				t.Errorf("CountInPeriod(%q, %s) = %d, want 0", anchor, p, got)
			}
		}
	}
}

func TestCountInPeriodRFC3339Anchor(t *testing.T) {
	if got := CountInPeriod("2026-02-02T09:30:00Z", Weekly, febStart, febEnd); got != 4 {
		t.Errorf("RFC3339 anchor weekly count = %d, want 4", got)
	}
}

// TestAnchorShiftInvariance checks that shifting the anchor by whole
// multiples of its own interval never changes the count.
func TestAnchorShiftInvariance(t *testing.T) {
	base := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		pattern  Pattern
		years    int
		months   int
		days     int
	}{
		{Weekly, 0, 0, 7},
		{Fortnightly, 0, 0, 14},
		{Monthly, 0, 1, 0},
		{Quarterly, 0, 3, 0},
		{Yearly, 1, 0, 0},
	}

	for _, c := range cases {
		t.Run(string(c.pattern), func(t *testing.T) {
			want := CountInPeriod(base.Format("2006-01-02"), c.pattern, febStart, febEnd)
			for _, k := range []int{-520, -12, -1, 1, 12, 520} {
				shifted := base.AddDate(c.years*k, c.months*k, c.days*k)
				got := CountInPeriod(shifted.Format("2006-01-02"), c.pattern, febStart, febEnd)
				if got != want {
					t.Errorf("shift %d: count = %d, want %d (anchor %s)", k, got, want, shifted.Format("2006-01-02"))
				}
			}
		})
	}
}

func TestCountInPeriodZeroLengthPeriod(t *testing.T) {
	day := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)
	if got := CountInPeriod("2026-02-14", OneTime, day, day); got != 1 {
		t.Errorf("zero-length period containing anchor = %d, want 1", got)
	}
	if got := CountInPeriod("2026-02-07", Weekly, day, day); got != 1 {
		t.Errorf("weekly hit on zero-length period = %d, want 1", got)
	}
	if got := CountInPeriod("2026-02-08", Weekly, day, day); got != 0 {
		t.Errorf("weekly miss on zero-length period = %d, want 0", got)
	}
}

func TestPatternValidate(t *testing.T) {
	for _, p := range []Pattern{Weekly, Fortnightly, Monthly, Quarterly, Yearly, OneTime} {
		if err := p.Validate(); err != nil {
			t.Errorf("Validate(%s) = %v, want nil", p, err)
		}
	}
	if err := Pattern("biweekly").Validate(); err != ErrInvalidPattern {
		t.Errorf("Validate(biweekly) = %v, want ErrInvalidPattern", err)
	}
}

func ExampleCountInPeriod() {
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 28, 23, 59, 59, 999000000, time.UTC)
	fmt.Println(CountInPeriod("2026-02-02", Weekly, start, end))
	// Output: 4
}
