package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Error types for period resolution and write-boundary validation.

// UnknownPeriodUnitError is returned when a period specification names a
// granularity the resolver does not know.
type UnknownPeriodUnitError struct {
	Unit string
}

func (e *UnknownPeriodUnitError) Error() string {
	return fmt.Sprintf("unknown period unit %q, expected day, week, month or year", e.Unit)
}

// NonPositiveAmountError is returned when a record or split carries an
// amount that is zero or negative.
type NonPositiveAmountError struct {
	Label  string
	Amount decimal.Decimal
}

func (e *NonPositiveAmountError) Error() string {
	return fmt.Sprintf("record %q: amount must be positive, got %s", e.Label, e.Amount)
}

// TransferConflictError is returned when a record is flagged as both a
// transfer and income, or a transfer has no destination account.
type TransferConflictError struct {
	Label  string
	Reason string
}

func (e *TransferConflictError) Error() string {
	return fmt.Sprintf("record %q: %s", e.Label, e.Reason)
}

// SameAccountTransferError is returned when a transfer names the same
// account as source and destination.
type SameAccountTransferError struct {
	Label     string
	AccountID int64
}

func (e *SameAccountTransferError) Error() string {
	return fmt.Sprintf("record %q: transfer source and destination are both account %d", e.Label, e.AccountID)
}

// MissingCategoryError is returned when a non-transfer record has no
// category.
type MissingCategoryError struct {
	Label string
}

func (e *MissingCategoryError) Error() string {
	return fmt.Sprintf("record %q: non-transfer records require a category", e.Label)
}

// SplitsExceedRecordError is returned when the sum of a record's split
// amounts exceeds the record's amount, which would make the owner's
// self amount negative.
type SplitsExceedRecordError struct {
	Label     string
	Amount    decimal.Decimal
	SplitsSum decimal.Decimal
}

func (e *SplitsExceedRecordError) Error() string {
	return fmt.Sprintf("record %q: splits sum to %s, exceeding the record amount %s",
		e.Label, e.SplitsSum, e.Amount)
}

// UnknownAccountError is returned when an engine query names an account
// the snapshot does not contain.
type UnknownAccountError struct {
	AccountID int64
}

func (e *UnknownAccountError) Error() string {
	return fmt.Sprintf("unknown account %d", e.AccountID)
}
