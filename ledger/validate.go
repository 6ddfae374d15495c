package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Write-boundary validation. The engine tolerates malformed rows it
// reads from an existing database, but the store rejects them on the
// way in using these checks.

// ValidateRecord checks the structural invariants of a single record:
// a strictly positive amount, transfer and income mutually exclusive,
// transfers naming a distinct destination and no category, and plain
// records carrying a category.
func ValidateRecord(r Record) error {
	if !r.Amount.IsPositive() {
		return &NonPositiveAmountError{Label: r.Label, Amount: r.Amount}
	}

	if r.IsTransfer {
		if r.IsIncome {
			return &TransferConflictError{Label: r.Label, Reason: "a transfer cannot also be income"}
		}
		if r.TransferTo == nil {
			return &TransferConflictError{Label: r.Label, Reason: "a transfer requires a destination account"}
		}
		if *r.TransferTo == r.AccountID {
			return &SameAccountTransferError{Label: r.Label, AccountID: r.AccountID}
		}
		return nil
	}

	if r.CategoryID == nil {
		return &MissingCategoryError{Label: r.Label}
	}
	return nil
}

// ValidateTemplate checks a record template against the same structural
// invariants as the records it will produce.
func ValidateTemplate(t Template) error {
	return ValidateRecord(t.Record(time.Time{}))
}

// ValidateSplits checks the splits attached to a record: each amount
// strictly positive, and the sum never exceeding the record amount so
// the owner's self amount stays non-negative.
func ValidateSplits(r Record, splits []Split) error {
	var sum decimal.Decimal
	for _, s := range splits {
		if !s.Amount.IsPositive() {
			return &NonPositiveAmountError{Label: r.Label, Amount: s.Amount}
		}
		sum = sum.Add(s.Amount)
	}

	if sum.GreaterThan(r.Amount) {
		return &SplitsExceedRecordError{Label: r.Label, Amount: r.Amount, SplitsSum: sum}
	}
	return nil
}
