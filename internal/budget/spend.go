package budget

// spentByKey accumulates absolute spend per category::subcategory key.
//
// Only negative transactions count; positive amounts are income and never
// enter the spend buckets. A transaction whose external category has no
// mapping is dropped from both its bucket and the total (known limitation:
// no catch-all bucket in the engine).
//
// Split precedence per transaction, individual view only: explicit
// per-transaction override, then the matched expense's rule, then the
// category rule, then 100%. Shared view always uses the unsplit amount.
func spentByKey(snap *Snapshot) map[string]int64 {
	byID := make(map[string]CategoryMapping, len(snap.CategoryMappings))
	for _, m := range snap.CategoryMappings {
		byID[m.ExternalCategoryID] = m
	}

	out := make(map[string]int64)
	for _, tx := range snap.Transactions {
		if tx.AmountCents >= 0 {
			continue
		}
		m, ok := byID[tx.CategoryID]
		if !ok {
			continue
		}

		amount := -tx.AmountCents
		if snap.View == ViewIndividual {
			var pct float64
			if tx.SplitOverridePercentage != nil {
				pct = *tx.SplitOverridePercentage
			} else {
				pct = snap.SplitSettings.Resolve(tx.MatchedExpenseID, m.ParentName, snap.ViewerUserID, snap.OwnerUserID)
			}
			amount = applyPercentage(amount, pct)
		}

		out[categoryKey(m.ParentName, m.ChildName)] += amount
	}
	return out
}
