package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shared fixture helpers for engine tests.

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func ptr[T any](v T) *T {
	return &v
}

func paid(t time.Time) (bool, *time.Time) {
	return true, &t
}

// fixtureCategories returns a parent "Food" category with two
// subcategories, plus standalone "Rent" (MUST) and "Fun" (WANT).
func fixtureCategories() []Category {
	return []Category{
		{ID: 1, Name: "Food", Nature: NatureNeed, Color: "green"},
		{ID: 2, Name: "Groceries", Nature: NatureNeed, Color: "lime", ParentID: ptr(int64(1))},
		{ID: 3, Name: "Restaurants", Nature: NatureWant, Color: "teal", ParentID: ptr(int64(1))},
		{ID: 4, Name: "Rent", Nature: NatureMust, Color: "red"},
		{ID: 5, Name: "Fun", Nature: NatureWant, Color: "magenta"},
		{ID: 6, Name: "Salary", Nature: NatureMust, Color: "gold"},
	}
}

func fixtureAccounts() []Account {
	return []Account{
		{ID: 1, Name: "Checking", BeginningBalance: dec("100.00")},
		{ID: 2, Name: "Savings", BeginningBalance: dec("0.00")},
		{ID: 3, Name: "Stash", BeginningBalance: dec("50.00"), Hidden: true},
	}
}

func fixturePersons() []Person {
	return []Person{
		{ID: 1, Name: "Ana"},
		{ID: 2, Name: "Bram"},
	}
}

func newTestLedger(records []Record, splits []Split) *Ledger {
	book := NewBook(fixtureAccounts(), fixtureCategories(), fixturePersons(), records, splits)
	return New(book, NewConfig())
}
