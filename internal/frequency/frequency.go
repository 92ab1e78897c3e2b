// Package frequency converts amounts between payment frequencies.
package frequency

import (
	"errors"
	"math"

	"github.com/tandembudget/tandem/internal/period"
)

// Errors for frequency operations
var (
	ErrInvalidFrequency = errors.New("invalid frequency")
)

// Frequency represents how often an amount repeats
type Frequency string

const (
	Weekly      Frequency = "weekly"
	Fortnightly Frequency = "fortnightly"
	Monthly     Frequency = "monthly"
	Quarterly   Frequency = "quarterly"
	Yearly      Frequency = "yearly"
)

// Validate checks if the frequency is valid
func (f Frequency) Validate() error {
	switch f {
	case Weekly, Fortnightly, Monthly, Quarterly, Yearly:
		return nil
	default:
		return ErrInvalidFrequency
	}
}

// monthlyFactor returns how many monthly-equivalents one unit of f carries.
// A month is treated as four budget weeks / two fortnights, matching the
// month-aligned period buckets.
func monthlyFactor(f Frequency) float64 {
	switch f {
	case Weekly:
		return 4
	case Fortnightly:
		return 2
	case Quarterly:
		return 1.0 / 3.0
	case Yearly:
		return 1.0 / 12.0
	default:
		return 1
	}
}

// ConvertCents converts an amount in minor units from one frequency to
// another via its canonical monthly equivalent. Rounding happens once, at the
// end.
func ConvertCents(amount int64, from, to Frequency) int64 {
	if from == to {
		return amount
	}
	monthly := float64(amount) * monthlyFactor(from)
	return int64(math.Round(monthly / monthlyFactor(to)))
}

// FromPeriod maps a budget period type to its frequency.
func FromPeriod(pt period.Type) Frequency {
	switch pt {
	case period.TypeWeekly:
		return Weekly
	case period.TypeFortnightly:
		return Fortnightly
	default:
		return Monthly
	}
}
