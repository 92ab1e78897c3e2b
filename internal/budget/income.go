package budget

import (
	"github.com/tandembudget/tandem/internal/frequency"
	"github.com/tandembudget/tandem/internal/period"
)

// TotalIncome sums expected income for the period. Recurring salaries are
// frequency-converted to the target period; one-off income counts only when
// it was actually received inside this period's own boundaries, at its full
// amount (one-off income is never prorated).
//
// In individual view, sources owned by someone else are excluded, as is any
// source flagged as manually entered partner income regardless of owner.
func TotalIncome(sources []IncomeSource, view ViewMode, viewerID string, target frequency.Frequency, rng period.Range) int64 {
	var total int64
	for _, src := range sources {
		if view == ViewIndividual {
			if src.IsManualPartnerIncome {
				continue
			}
			if src.OwnerUserID != viewerID {
				continue
			}
		}

		switch src.SourceType {
		case SourceOneOff:
			if !src.IsReceived || src.ReceivedDate == nil {
				continue
			}
			if !rng.Contains(*src.ReceivedDate) {
				continue
			}
			total += src.AmountCents
		case SourceRecurringSalary:
			total += frequency.ConvertCents(src.AmountCents, src.Frequency, target)
		}
	}
	return total
}
