package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
)

// SplitStatus reports the self amount of a record (the portion not
// delegated to any person) and whether every split has been settled.
// A record with no splits is fully self-carried and vacuously paid.
//
// Self amount plus the split sum always reconstructs the record amount;
// validation at the write boundary keeps the self amount non-negative
// (see ValidateSplits), though the engine tolerates pre-existing rows
// that violate it.
func (l *Ledger) SplitStatus(recordID int64) (SplitStatus, bool) {
	record, ok := l.book.Record(recordID)
	if !ok {
		return SplitStatus{}, false
	}

	status := SplitStatus{SelfAmount: record.Amount, AllPaid: true}
	for _, s := range l.book.RecordSplits(recordID) {
		status.SelfAmount = status.SelfAmount.Sub(s.Amount)
		if !s.IsPaid {
			status.AllPaid = false
		}
	}
	status.SelfAmount = l.cfg.round(status.SelfAmount)
	return status, true
}

// PersonOutstanding sums the unpaid splits of a person whose owning
// record falls in the period. Splits on income records are negated: an
// unpaid share of income is money still owed *to* the person, not by
// them. A positive result is what the person owes the tracker owner.
func (l *Ledger) PersonOutstanding(personID int64, period Period) decimal.Decimal {
	var total decimal.Decimal

	for _, s := range l.book.PersonSplits(personID) {
		if s.IsPaid {
			continue
		}
		record, ok := l.book.Record(s.RecordID)
		if !ok || !period.Contains(record.Date) {
			continue
		}

		if record.IsIncome {
			total = total.Sub(s.Amount)
		} else {
			total = total.Add(s.Amount)
		}
	}

	return l.cfg.round(total)
}

// PersonSummaries produces one Total-Unpaid row per person with splits
// on records in the period, sorted by person name. Persons with no
// splits in the period are omitted entirely, matching the settlement
// view, which only knows a person through their splits.
func (l *Ledger) PersonSummaries(period Period) []PersonSummary {
	out := make([]PersonSummary, 0, len(l.book.persons))

	for id, person := range l.book.persons {
		inPeriod := false
		for _, s := range l.book.PersonSplits(id) {
			record, ok := l.book.Record(s.RecordID)
			if ok && period.Contains(record.Date) {
				inPeriod = true
				break
			}
		}
		if !inPeriod {
			continue
		}

		out = append(out, PersonSummary{
			Person:      *person,
			Outstanding: l.PersonOutstanding(id, period),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Person.Name < out[j].Person.Name
	})

	return out
}
