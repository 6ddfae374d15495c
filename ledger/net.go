package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
)

// NetFilter scopes a period net query. Period bounds the record dates
// (and split settlement dates); a nil Period means all time. AccountID
// restricts records to one account and splits to one settlement
// account. IsIncome is tri-state: true selects the income figure, false
// the expense figure, nil the full net.
type NetFilter struct {
	Period    *Period
	AccountID *int64
	IsIncome  *bool
}

// PeriodNet computes the net figure for a filter.
//
// Records contribute by their own date; splits contribute by their
// settlement date (the day the money actually moved), independent of
// the owning record's date. The full net is
//
//	income - expense + transfersIn - transfersOut + splitsReceived - splitsSent
//
// where splitsReceived settles shared expenses and splitsSent pays out
// shared income.
func (l *Ledger) PeriodNet(f NetFilter) decimal.Decimal {
	var income, expense, transferIn, transferOut decimal.Decimal

	for i := range l.book.records {
		r := &l.book.records[i]
		if f.Period != nil && !f.Period.Contains(r.Date) {
			continue
		}

		switch {
		case r.IsIncome:
			if f.AccountID == nil || r.AccountID == *f.AccountID {
				income = income.Add(r.Amount)
			}
		case r.IsTransfer:
			// A transfer within scope counts once out of the source and
			// once into the destination; unscoped queries see both and
			// the contributions cancel.
			if f.AccountID == nil || r.AccountID == *f.AccountID {
				transferOut = transferOut.Add(r.Amount)
			}
			if f.AccountID == nil || (r.TransferTo != nil && *r.TransferTo == *f.AccountID) {
				transferIn = transferIn.Add(r.Amount)
			}
		default:
			if f.AccountID == nil || r.AccountID == *f.AccountID {
				expense = expense.Add(r.Amount)
			}
		}
	}

	var splitReceived, splitSent decimal.Decimal
	for i := range l.book.splits {
		s := &l.book.splits[i]
		if s.PaidDate == nil {
			continue
		}
		if f.Period != nil && !f.Period.Contains(*s.PaidDate) {
			continue
		}
		if f.AccountID != nil && (s.AccountID == nil || *s.AccountID != *f.AccountID) {
			continue
		}

		record, ok := l.book.Record(s.RecordID)
		if ok && record.IsIncome {
			splitSent = splitSent.Add(s.Amount)
		} else {
			splitReceived = splitReceived.Add(s.Amount)
		}
	}

	var result decimal.Decimal
	switch {
	case f.IsIncome == nil:
		result = income.Sub(expense).
			Add(transferIn).Sub(transferOut).
			Add(splitReceived).Sub(splitSent)
	case *f.IsIncome:
		result = income.Sub(splitSent)
	default:
		result = expense.Sub(splitReceived)
	}

	return l.cfg.round(result)
}

// PeriodAverage converts a period net into a per-day figure using the
// calendar day count of the same resolved period. Every period unit
// spans at least one day, so the division is always defined.
func (l *Ledger) PeriodAverage(net decimal.Decimal, period Period) decimal.Decimal {
	days := period.Days()
	if days == 0 {
		return decimal.Zero
	}
	return l.cfg.round(net.Div(decimal.NewFromInt(int64(days))))
}

// DailySpending sums the expense net (record amount less its splits) of
// every expense record in the period, grouped by calendar day and
// ordered chronologically. Days with no spending are omitted. Used for
// the spending trajectory plot.
func (l *Ledger) DailySpending(period Period) []DailyAmount {
	totals := make(map[string]DailyAmount)

	for i := range l.book.records {
		r := &l.book.records[i]
		if r.IsIncome || r.IsTransfer || !period.Contains(r.Date) {
			continue
		}

		spent := r.Amount
		for _, s := range l.book.RecordSplits(r.ID) {
			spent = spent.Sub(s.Amount)
		}

		day := midnight(r.Date)
		key := day.Format("2006-01-02")
		entry, ok := totals[key]
		if !ok {
			entry = DailyAmount{Day: day}
		}
		entry.Amount = entry.Amount.Add(spent)
		totals[key] = entry
	}

	out := make([]DailyAmount, 0, len(totals))
	for _, entry := range totals {
		entry.Amount = l.cfg.round(entry.Amount)
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Day.Before(out[j].Day)
	})
	return out
}
