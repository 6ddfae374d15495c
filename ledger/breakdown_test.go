package ledger

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

func TestCategoryBreakdown_FoldsSubcategoriesIntoParent(t *testing.T) {
	l := newTestLedger([]Record{
		{ID: 1, Label: "groceries", Amount: dec("40.00"), Date: date(2024, time.March, 5), AccountID: 1, CategoryID: ptr(int64(2))},
		{ID: 2, Label: "takeaway", Amount: dec("10.00"), Date: date(2024, time.March, 6), AccountID: 1, CategoryID: ptr(int64(3))},
	}, nil)

	entries := l.CategoryBreakdown(march(), false, nil, false)
	assert.Equal(t, len(entries), 1)
	assert.Equal(t, entries[0].Category.Name, "Food")
	assert.Equal(t, entries[0].Amount.String(), "50")
	assert.Equal(t, entries[0].Percentage, int64(100))
}

func TestCategoryBreakdown_Subcategories(t *testing.T) {
	l := newTestLedger([]Record{
		{ID: 1, Label: "groceries", Amount: dec("40.00"), Date: date(2024, time.March, 5), AccountID: 1, CategoryID: ptr(int64(2))},
		{ID: 2, Label: "takeaway", Amount: dec("10.00"), Date: date(2024, time.March, 6), AccountID: 1, CategoryID: ptr(int64(3))},
	}, nil)

	entries := l.CategoryBreakdown(march(), false, nil, true)
	assert.Equal(t, len(entries), 2)
	assert.Equal(t, entries[0].Category.Name, "Groceries")
	assert.Equal(t, entries[0].Percentage, int64(80))
	assert.Equal(t, entries[1].Category.Name, "Restaurants")
	assert.Equal(t, entries[1].Percentage, int64(20))
}

func TestCategoryBreakdown_RecordNetLessSplits(t *testing.T) {
	l := newTestLedger([]Record{
		{ID: 1, Label: "dinner", Amount: dec("90.00"), Date: date(2024, time.March, 5), AccountID: 1, CategoryID: ptr(int64(5))},
		{ID: 2, Label: "rent", Amount: dec("60.00"), Date: date(2024, time.March, 2), AccountID: 1, CategoryID: ptr(int64(4))},
	}, []Split{
		// Splits count regardless of settlement status or account.
		{ID: 1, RecordID: 1, PersonID: 1, Amount: dec("30.00")},
	})

	entries := l.CategoryBreakdown(march(), false, nil, false)
	assert.Equal(t, len(entries), 2)
	assert.Equal(t, entries[0].Category.Name, "Rent")
	assert.Equal(t, entries[0].Amount.String(), "60")
	assert.Equal(t, entries[0].Percentage, int64(50))
	assert.Equal(t, entries[1].Category.Name, "Fun")
	assert.Equal(t, entries[1].Amount.String(), "60")
	assert.Equal(t, entries[1].Percentage, int64(50))
}

func TestCategoryBreakdown_DropsZeroTotals(t *testing.T) {
	l := newTestLedger([]Record{
		// Fully delegated: net of zero must not appear.
		{ID: 1, Label: "fronted tickets", Amount: dec("80.00"), Date: date(2024, time.March, 5), AccountID: 1, CategoryID: ptr(int64(5))},
		{ID: 2, Label: "rent", Amount: dec("60.00"), Date: date(2024, time.March, 2), AccountID: 1, CategoryID: ptr(int64(4))},
	}, []Split{
		{ID: 1, RecordID: 1, PersonID: 1, Amount: dec("40.00")},
		{ID: 2, RecordID: 1, PersonID: 2, Amount: dec("40.00")},
	})

	entries := l.CategoryBreakdown(march(), false, nil, false)
	assert.Equal(t, len(entries), 1)
	assert.Equal(t, entries[0].Category.Name, "Rent")
}

func TestCategoryBreakdown_EmptyWhenTotalZero(t *testing.T) {
	l := newTestLedger(nil, nil)
	assert.Equal(t, len(l.CategoryBreakdown(march(), false, nil, false)), 0)
}

func TestCategoryBreakdown_SkipsMissingCategory(t *testing.T) {
	l := newTestLedger([]Record{
		{ID: 1, Label: "orphaned", Amount: dec("25.00"), Date: date(2024, time.March, 5), AccountID: 1, CategoryID: ptr(int64(999))},
		{ID: 2, Label: "rent", Amount: dec("60.00"), Date: date(2024, time.March, 2), AccountID: 1, CategoryID: ptr(int64(4))},
	}, nil)

	entries := l.CategoryBreakdown(march(), false, nil, false)
	assert.Equal(t, len(entries), 1)
	assert.Equal(t, entries[0].Category.Name, "Rent")

	// The orphaned record still counts toward the account balance.
	balance, err := l.AccountBalance(1)
	assert.NoError(t, err)
	assert.Equal(t, balance.String(), "15")
}

func TestCategoryBreakdown_PercentageClosure(t *testing.T) {
	l := newTestLedger([]Record{
		{ID: 1, Label: "a", Amount: dec("33.00"), Date: date(2024, time.March, 1), AccountID: 1, CategoryID: ptr(int64(4))},
		{ID: 2, Label: "b", Amount: dec("33.00"), Date: date(2024, time.March, 2), AccountID: 1, CategoryID: ptr(int64(5))},
		{ID: 3, Label: "c", Amount: dec("34.00"), Date: date(2024, time.March, 3), AccountID: 1, CategoryID: ptr(int64(6))},
	}, nil)

	entries := l.CategoryBreakdown(march(), false, nil, false)
	assert.Equal(t, len(entries), 3)

	var sum int64
	for _, e := range entries {
		sum += e.Percentage
	}
	// Independent rounding keeps the sum within n-1 of 100.
	assert.True(t, sum >= 98 && sum <= 102, "sum %d", sum)
}

func TestTopN_FoldsTailIntoOthers(t *testing.T) {
	entries := []CategoryNet{
		{Category: Category{Name: "A", Color: "red"}, Amount: dec("50"), Percentage: 50},
		{Category: Category{Name: "B", Color: "blue"}, Amount: dec("20"), Percentage: 20},
		{Category: Category{Name: "C", Color: "green"}, Amount: dec("15"), Percentage: 15},
		{Category: Category{Name: "D", Color: "cyan"}, Amount: dec("10"), Percentage: 10},
		{Category: Category{Name: "E", Color: "gold"}, Amount: dec("3"), Percentage: 3},
		{Category: Category{Name: "F", Color: "gray"}, Amount: dec("2"), Percentage: 2},
	}

	items := TopN(entries, 3)
	assert.Equal(t, len(items), 4)
	assert.Equal(t, items[3].Label, "Others")
	assert.True(t, items[3].Others)
	assert.Equal(t, items[3].Amount.String(), "15")
	// Folded percentage is the sum of the rounded tail, so the display
	// still closes to 100.
	assert.Equal(t, items[3].Percentage, int64(15))

	var sum int64
	for _, item := range items {
		sum += item.Percentage
	}
	assert.Equal(t, sum, int64(100))
}

func TestTopN_NoFoldWhenFewEntries(t *testing.T) {
	entries := []CategoryNet{
		{Category: Category{Name: "A"}, Amount: dec("60"), Percentage: 60},
		{Category: Category{Name: "B"}, Amount: dec("40"), Percentage: 40},
	}

	items := TopN(entries, 5)
	assert.Equal(t, len(items), 2)
	assert.False(t, items[1].Others)
}

func TestNatureNet(t *testing.T) {
	l := newTestLedger([]Record{
		{ID: 1, Label: "rent", Amount: dec("400.00"), Date: date(2024, time.March, 2), AccountID: 1, CategoryID: ptr(int64(4))},
		{ID: 2, Label: "groceries", Amount: dec("80.00"), Date: date(2024, time.March, 5), AccountID: 1, CategoryID: ptr(int64(2))},
		{ID: 3, Label: "cinema", Amount: dec("25.00"), Date: date(2024, time.March, 9), AccountID: 1, CategoryID: ptr(int64(5))},
	}, []Split{
		{ID: 1, RecordID: 2, PersonID: 1, Amount: dec("20.00")},
	})

	p := march()
	assert.Equal(t, l.NatureNet(p, NatureMust, nil).String(), "400")
	assert.Equal(t, l.NatureNet(p, NatureNeed, nil).String(), "60")
	assert.Equal(t, l.NatureNet(p, NatureWant, nil).String(), "25")
}

func TestCategoryBreakdown_WarnsOnMissingCategory(t *testing.T) {
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	defer slog.SetDefault(prev)

	l := newTestLedger([]Record{
		{ID: 1, Label: "rent", Amount: dec("60.00"), Date: date(2024, time.March, 2), AccountID: 1, CategoryID: ptr(int64(4))},
		// Category 99 does not exist; the record is skipped, not fatal.
		{ID: 2, Label: "orphan", Amount: dec("10.00"), Date: date(2024, time.March, 5), AccountID: 1, CategoryID: ptr(int64(99))},
	}, nil)

	entries := l.CategoryBreakdown(march(), false, nil, false)
	assert.Equal(t, len(entries), 1)
	assert.Equal(t, entries[0].Category.Name, "Rent")
	assert.Contains(t, logs.String(), "missing category")
}
