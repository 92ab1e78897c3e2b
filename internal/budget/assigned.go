package budget

import (
	"math"

	"github.com/tandembudget/tandem/internal/frequency"
	"github.com/tandembudget/tandem/internal/period"
	"github.com/tandembudget/tandem/internal/recurrence"
)

// assignedResult holds the budgeted side of the summary.
type assignedResult struct {
	// total is the global budgeted figure: positive category assignments,
	// substituted expense defaults, and all goal/asset assignments.
	total int64

	// byKey maps category::subcategory keys to budgeted cents. Seeded
	// zero assignments appear with value 0 so their row still renders.
	byKey map[string]int64

	// fromExpense marks keys whose budgeted value came from an expense
	// definition rather than a manual assignment.
	fromExpense map[string]bool

	goals  map[string]int64
	assets map[string]int64
}

// assignedTotals aggregates manual assignments and expense-definition
// defaults for the period.
//
// Precedence per key: a positive manual assignment wins outright; a zero or
// absent assignment lets the expense default substitute. Goal and asset
// assignments are summed unconditionally and never participate in the
// substitution.
func assignedTotals(snap *Snapshot, target frequency.Frequency, rng period.Range) assignedResult {
	res := assignedResult{
		byKey:       make(map[string]int64),
		fromExpense: make(map[string]bool),
		goals:       make(map[string]int64),
		assets:      make(map[string]int64),
	}

	manual := make(map[string]bool) // keys with a positive assignment
	for _, a := range snap.Assignments {
		switch a.Type {
		case AssignmentGoal:
			res.goals[a.GoalID] += a.AssignedCents
			res.total += a.AssignedCents
		case AssignmentAsset:
			res.assets[a.AssetID] += a.AssignedCents
			res.total += a.AssignedCents
		default:
			key := categoryKey(a.CategoryName, a.SubcategoryName)
			if a.AssignedCents > 0 {
				res.byKey[key] += a.AssignedCents
				res.total += a.AssignedCents
				manual[key] = true
			} else if _, seen := res.byKey[key]; !seen {
				// seeded placeholder: keep the row, contribute nothing
				res.byKey[key] = 0
			}
		}
	}

	for _, e := range snap.Expenses {
		key := categoryKey(e.CategoryName, e.InferredSubcategory)
		if manual[key] {
			continue
		}

		amount := expenseDefaultCents(e, target, rng)
		if amount == 0 {
			continue
		}
		if snap.View == ViewIndividual {
			pct := snap.SplitSettings.Resolve(e.ID, e.CategoryName, snap.ViewerUserID, snap.OwnerUserID)
			amount = applyPercentage(amount, pct)
		}

		res.byKey[key] += amount
		res.total += amount
		res.fromExpense[key] = true
	}

	return res
}

// expenseDefaultCents returns the expense's contribution to the target
// period before any split. Periodic expenses are frequency-converted;
// one-time expenses count their full amount only when the next due date
// falls inside the period.
func expenseDefaultCents(e ExpenseDefinition, target frequency.Frequency, rng period.Range) int64 {
	if e.Recurrence == recurrence.OneTime {
		if e.NextDueDate == nil {
			return 0
		}
		hits := recurrence.CountInPeriod(e.NextDueDate.Format("2006-01-02"), recurrence.OneTime, rng.Start, rng.End)
		return e.ExpectedAmountCents * int64(hits)
	}
	return frequency.ConvertCents(e.ExpectedAmountCents, frequency.Frequency(e.Recurrence), target)
}

// applyPercentage scales cents by a 0..100 percentage, rounding to the
// nearest cent.
func applyPercentage(cents int64, pct float64) int64 {
	return int64(math.Round(float64(cents) * pct / 100))
}
