package ledger

import (
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"
)

// CategoryBreakdown aggregates per-category net amounts for a period.
//
// Each qualifying record contributes its amount less the sum of its
// splits, keyed by its category, or by the parent category when
// subcategories is false and the category has a parent. Records whose
// category is missing from the snapshot are skipped; their money still
// counts in balances, just not in the breakdown. Zero totals are
// dropped, the rest sorted descending, and percentages computed against
// the kept total, rounded to the nearest integer.
func (l *Ledger) CategoryBreakdown(period Period, isIncome bool, accountID *int64, subcategories bool) []CategoryNet {
	totals := make(map[int64]decimal.Decimal)

	for i := range l.book.records {
		r := &l.book.records[i]
		if r.IsTransfer || r.IsIncome != isIncome || !period.Contains(r.Date) {
			continue
		}
		if accountID != nil && r.AccountID != *accountID {
			continue
		}
		if r.CategoryID == nil {
			continue
		}

		category, ok := l.book.Category(*r.CategoryID)
		if !ok {
			slog.Warn("record references missing category", "record", r.ID, "category", *r.CategoryID)
			continue
		}

		net := r.Amount
		for _, s := range l.book.RecordSplits(r.ID) {
			net = net.Sub(s.Amount)
		}

		key := category.ID
		if !subcategories && category.ParentID != nil {
			key = *category.ParentID
		}
		totals[key] = totals[key].Add(net)
	}

	var total decimal.Decimal
	kept := make([]CategoryNet, 0, len(totals))
	for id, amount := range totals {
		if amount.IsZero() {
			continue
		}
		category, ok := l.book.Category(id)
		if !ok {
			// Folded into a parent that has since been deleted.
			continue
		}
		kept = append(kept, CategoryNet{Category: *category, Amount: l.cfg.round(amount)})
		total = total.Add(amount)
	}

	// All categories netting to zero means nothing to show; never divide
	// by a zero total.
	if total.IsZero() {
		return nil
	}

	sort.Slice(kept, func(i, j int) bool {
		if !kept[i].Amount.Equal(kept[j].Amount) {
			return kept[i].Amount.GreaterThan(kept[j].Amount)
		}
		return kept[i].Category.ID < kept[j].Category.ID
	})

	hundred := decimal.NewFromInt(100)
	for i := range kept {
		kept[i].Percentage = kept[i].Amount.Div(total).Mul(hundred).Round(0).IntPart()
	}

	return kept
}

// TopN keeps the first n breakdown entries and folds the remainder into
// a single synthetic "Others" row. The folded percentage is the sum of
// the already-rounded tail percentages, not a recomputation, so the
// displayed numbers still close to the same total as the input.
func TopN(entries []CategoryNet, n int) []BreakdownItem {
	items := make([]BreakdownItem, 0, min(len(entries), n+1))

	for i, e := range entries {
		if i < n {
			items = append(items, BreakdownItem{
				Label:      e.Category.Name,
				Color:      e.Category.Color,
				Amount:     e.Amount,
				Percentage: e.Percentage,
			})
			continue
		}

		if len(items) == n {
			items = append(items, BreakdownItem{Label: "Others", Color: "white", Others: true})
		}
		last := &items[n]
		last.Amount = last.Amount.Add(e.Amount)
		last.Percentage += e.Percentage
	}

	return items
}

// NatureNet sums the expense net (amount less splits) of records whose
// category carries the given nature, within a period. Backing figure
// for the budgeting bar's MUST/NEED segments; WANT is derived by the
// caller as the remainder of total expenses.
func (l *Ledger) NatureNet(period Period, nature Nature, accountID *int64) decimal.Decimal {
	var total decimal.Decimal

	for i := range l.book.records {
		r := &l.book.records[i]
		if r.IsIncome || r.IsTransfer || !period.Contains(r.Date) {
			continue
		}
		if accountID != nil && r.AccountID != *accountID {
			continue
		}
		if r.CategoryID == nil {
			continue
		}
		category, ok := l.book.Category(*r.CategoryID)
		if !ok || category.Nature != nature {
			continue
		}

		net := r.Amount
		for _, s := range l.book.RecordSplits(r.ID) {
			net = net.Sub(s.Amount)
		}
		total = total.Add(net)
	}

	return l.cfg.round(total)
}
