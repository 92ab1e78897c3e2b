package budget

import (
	"sort"
	"strings"

	"github.com/tandembudget/tandem/internal/frequency"
	"github.com/tandembudget/tandem/internal/period"
)

// Summarize computes the budget summary for the snapshot's period.
//
// Outputs satisfy, for every generated summary:
//
//	row.Available == row.Budgeted - row.Spent
//	Summary.ToBeBudgeted == Income + Carryover - Budgeted
//	Summary.Spent == sum of row.Spent over all rows
func Summarize(snap *Snapshot) (*Summary, error) {
	if snap == nil {
		return nil, ErrNilSnapshot
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	pt := snap.PeriodType
	if pt == "" {
		pt = period.TypeMonthly
	}

	rng := period.GetRange(snap.Reference, pt, snap.Timezone)
	target := frequency.FromPeriod(pt)

	assigned := assignedTotals(snap, target, rng)
	spent := spentByKey(snap)

	var income int64
	if snap.Methodology == MethodologyCustom {
		income = snap.TotalBudgetCents
	} else {
		income = TotalIncome(snap.IncomeSources, snap.View, snap.ViewerUserID, target, rng)
	}

	rows := make([]Row, 0, len(assigned.byKey)+len(snap.Goals)+len(snap.Assets))
	for _, key := range sortedKeys(assigned.byKey, spent) {
		parent, child := splitKey(key)
		name := child
		if name == "" {
			name = parent
		}
		b := assigned.byKey[key]
		s := spent[key]
		rows = append(rows, Row{
			ID:               key,
			Type:             RowSubcategory,
			Name:             name,
			ParentCategory:   parent,
			BudgetedCents:    b,
			SpentCents:       s,
			AvailableCents:   b - s,
			IsExpenseDefault: assigned.fromExpense[key],
		})
	}

	for _, g := range snap.Goals {
		b := assigned.goals[g.ID]
		s := snap.GoalContributions[g.ID]
		rows = append(rows, Row{
			ID:             "goal:" + g.ID,
			Type:           RowGoal,
			Name:           g.Name,
			BudgetedCents:  b,
			SpentCents:     s,
			AvailableCents: b - s,
		})
	}
	for _, a := range snap.Assets {
		b := assigned.assets[a.ID]
		s := snap.AssetContributions[a.ID]
		rows = append(rows, Row{
			ID:             "asset:" + a.ID,
			Type:           RowAsset,
			Name:           a.Name,
			BudgetedCents:  b,
			SpentCents:     s,
			AvailableCents: b - s,
		})
	}

	var totalSpent int64
	for _, row := range rows {
		totalSpent += row.SpentCents
	}

	carryover := carryoverCents(snap.CarryoverMode)

	return &Summary{
		Period:            rng,
		MonthKey:          period.MonthKey(snap.Reference, snap.Timezone),
		IncomeCents:       income,
		BudgetedCents:     assigned.total,
		SpentCents:        totalSpent,
		CarryoverCents:    carryover,
		ToBeBudgetedCents: income + carryover - assigned.total,
		Rows:              rows,
	}, nil
}

// carryoverCents returns the carry-forward amount for the mode. Only "none"
// exists today and always yields zero; the signature stays so future modes
// can plug in period-aware math.
func carryoverCents(mode CarryoverMode) int64 {
	switch mode {
	case CarryoverNone:
		return 0
	default:
		return 0
	}
}

// sortedKeys returns the union of keys from the budgeted and spent maps in
// deterministic order.
func sortedKeys(budgeted, spent map[string]int64) []string {
	seen := make(map[string]bool, len(budgeted)+len(spent))
	keys := make([]string, 0, len(budgeted)+len(spent))
	for k := range budgeted {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for k := range spent {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func splitKey(key string) (parent, child string) {
	parent, child, _ = strings.Cut(key, "::")
	return parent, child
}
