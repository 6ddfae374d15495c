package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Nature classifies a category for budgeting purposes.
type Nature int

const (
	NatureMust Nature = iota
	NatureNeed
	NatureWant
)

// String returns the string representation of the nature.
func (n Nature) String() string {
	switch n {
	case NatureMust:
		return "MUST"
	case NatureNeed:
		return "NEED"
	case NatureWant:
		return "WANT"
	default:
		return "Unknown"
	}
}

// ParseNature parses a nature from its string form.
func ParseNature(s string) (Nature, error) {
	switch s {
	case "MUST":
		return NatureMust, nil
	case "NEED":
		return NatureNeed, nil
	case "WANT":
		return NatureWant, nil
	default:
		return 0, fmt.Errorf("invalid nature %q, expected MUST, NEED or WANT", s)
	}
}

// Account is a place money lives: a bank account, a wallet, a credit card.
// Balance is never stored; it is derived from the beginning balance plus
// every record, transfer and paid split touching the account.
type Account struct {
	ID               int64
	Name             string
	Description      string
	BeginningBalance decimal.Decimal
	RepaymentDate    *int // day of month, credit accounts only
	Hidden           bool
	DeletedAt        *time.Time
}

// Category labels a record for reporting. A category with a non-nil
// ParentID is a subcategory; rollups may fold its totals into the parent.
type Category struct {
	ID        int64
	Name      string
	Nature    Nature
	Color     string
	ParentID  *int64
	DeletedAt *time.Time
}

// Person is a counterparty for shared-expense splits. It has no balance
// of its own.
type Person struct {
	ID   int64
	Name string
}

// Record is a single ledger transaction: income, expense, or transfer.
//
// Amount is strictly positive; direction comes from IsIncome/IsTransfer.
// A transfer is never also income, carries no category, and must name a
// destination account distinct from the source.
type Record struct {
	ID         int64
	Label      string
	Amount     decimal.Decimal
	IsIncome   bool
	IsTransfer bool
	Date       time.Time
	AccountID  int64
	CategoryID *int64
	TransferTo *int64
	CreatedAt  time.Time
}

// Split attributes a portion of a record's amount to a person, with
// independent settlement tracking. AccountID, when set, is the account
// the settlement was received into (or paid out of, for shared income).
type Split struct {
	ID        int64
	RecordID  int64
	PersonID  int64
	Amount    decimal.Decimal
	IsPaid    bool
	PaidDate  *time.Time
	AccountID *int64
}

// Template is a reusable record blueprint for recurring entries such as
// rent or a salary. Position is a dense 1-based ordering maintained by
// the store; templates carry no date, it is supplied when one is used.
type Template struct {
	ID         int64
	Label      string
	Amount     decimal.Decimal
	IsIncome   bool
	IsTransfer bool
	AccountID  int64
	CategoryID *int64
	TransferTo *int64
	Position   int64
}

// Record materializes the template into a record dated on the given
// day. The result still has to pass validation at the write boundary.
func (t Template) Record(date time.Time) Record {
	return Record{
		Label:      t.Label,
		Amount:     t.Amount,
		IsIncome:   t.IsIncome,
		IsTransfer: t.IsTransfer,
		Date:       date,
		AccountID:  t.AccountID,
		CategoryID: t.CategoryID,
		TransferTo: t.TransferTo,
	}
}

// AccountBalance pairs an account with its derived balance. It is a
// view row; the underlying Account entity is never mutated.
type AccountBalance struct {
	Account Account
	Balance decimal.Decimal
}

// CategoryNet is one row of a category breakdown: the category, its net
// amount for the period, and its integer percentage of the kept total.
type CategoryNet struct {
	Category   Category
	Amount     decimal.Decimal
	Percentage int64
}

// BreakdownItem is a display row of a Top-N breakdown. Folded tails are
// reported under the synthetic "Others" label with no backing category.
type BreakdownItem struct {
	Label      string
	Color      string
	Amount     decimal.Decimal
	Percentage int64
	Others     bool
}

// SplitStatus reports how much of a record the tracker owner carries
// themselves and whether every delegated portion has been settled.
type SplitStatus struct {
	SelfAmount decimal.Decimal
	AllPaid    bool
}

// PersonSummary is one settlement-view row: a person and the total they
// still owe (positive) or are owed (negative) for a period.
type PersonSummary struct {
	Person      Person
	Outstanding decimal.Decimal
}

// DailyAmount is one point of a spending trend: a calendar day and the
// summed expense net (record amounts less their splits) for that day.
type DailyAmount struct {
	Day    time.Time
	Amount decimal.Decimal
}
