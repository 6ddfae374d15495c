package ledger

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

func TestAccountBalance_NoRecords(t *testing.T) {
	l := newTestLedger(nil, nil)

	balance, err := l.AccountBalance(1)
	assert.NoError(t, err)
	assert.Equal(t, balance.String(), "100")
}

func TestAccountBalance_UnknownAccount(t *testing.T) {
	l := newTestLedger(nil, nil)

	_, err := l.AccountBalance(99)
	assert.Error(t, err)
}

func TestAccountBalance_SimpleExpense(t *testing.T) {
	l := newTestLedger([]Record{
		{ID: 1, Label: "groceries", Amount: dec("30.00"), Date: date(2024, time.March, 5), AccountID: 1, CategoryID: ptr(int64(2))},
	}, nil)

	balance, err := l.AccountBalance(1)
	assert.NoError(t, err)
	assert.Equal(t, balance.String(), "70")
}

func TestAccountBalance_IncomeAddsFullAmount(t *testing.T) {
	l := newTestLedger([]Record{
		{ID: 1, Label: "salary", Amount: dec("250.50"), IsIncome: true, Date: date(2024, time.March, 1), AccountID: 1, CategoryID: ptr(int64(6))},
	}, nil)

	balance, err := l.AccountBalance(1)
	assert.NoError(t, err)
	assert.Equal(t, balance.String(), "350.5")
}

func TestAccountBalance_TransferMovesMoneyAcrossAccounts(t *testing.T) {
	l := newTestLedger([]Record{
		{ID: 1, Label: "to savings", Amount: dec("40.00"), IsTransfer: true, Date: date(2024, time.March, 2), AccountID: 1, TransferTo: ptr(int64(2))},
	}, nil)

	src, err := l.AccountBalance(1)
	assert.NoError(t, err)
	assert.Equal(t, src.String(), "60")

	dst, err := l.AccountBalance(2)
	assert.NoError(t, err)
	assert.Equal(t, dst.String(), "40")
}

func TestAccountBalance_PaidSplitSettlement(t *testing.T) {
	// A 90.00 dinner on Checking with 30.00 delegated to Ana and paid
	// back into Checking nets a -60.00 change.
	isPaid, paidDate := paid(date(2024, time.March, 10))
	l := newTestLedger([]Record{
		{ID: 1, Label: "dinner", Amount: dec("90.00"), Date: date(2024, time.March, 5), AccountID: 1, CategoryID: ptr(int64(3))},
	}, []Split{
		{ID: 1, RecordID: 1, PersonID: 1, Amount: dec("30.00"), IsPaid: isPaid, PaidDate: paidDate, AccountID: ptr(int64(1))},
	})

	balance, err := l.AccountBalance(1)
	assert.NoError(t, err)
	assert.Equal(t, balance.String(), "40")
}

func TestAccountBalance_UnpaidSplitHasNoEffect(t *testing.T) {
	l := newTestLedger([]Record{
		{ID: 1, Label: "dinner", Amount: dec("90.00"), Date: date(2024, time.March, 5), AccountID: 1, CategoryID: ptr(int64(3))},
	}, []Split{
		{ID: 1, RecordID: 1, PersonID: 1, Amount: dec("30.00"), AccountID: ptr(int64(1))},
	})

	balance, err := l.AccountBalance(1)
	assert.NoError(t, err)
	assert.Equal(t, balance.String(), "10")
}

func TestAccountBalance_PaidSplitOnIncomeSubtracts(t *testing.T) {
	// A shared income payout settles out of the settlement account.
	isPaid, paidDate := paid(date(2024, time.March, 12))
	l := newTestLedger([]Record{
		{ID: 1, Label: "shared freelance gig", Amount: dec("200.00"), IsIncome: true, Date: date(2024, time.March, 5), AccountID: 1, CategoryID: ptr(int64(6))},
	}, []Split{
		{ID: 1, RecordID: 1, PersonID: 2, Amount: dec("80.00"), IsPaid: isPaid, PaidDate: paidDate, AccountID: ptr(int64(1))},
	})

	balance, err := l.AccountBalance(1)
	assert.NoError(t, err)
	// 100 + 200 - 80
	assert.Equal(t, balance.String(), "220")
}

func TestAccountsWithBalance_SkipsHiddenByDefault(t *testing.T) {
	l := newTestLedger(nil, nil)

	visible, err := l.AccountsWithBalance(false)
	assert.NoError(t, err)
	assert.Equal(t, len(visible), 2)

	all, err := l.AccountsWithBalance(true)
	assert.NoError(t, err)
	assert.Equal(t, len(all), 3)
	assert.Equal(t, all[2].Account.Name, "Stash")
	assert.Equal(t, all[2].Balance.String(), "50")
}

func TestAccountsWithBalance_SkipsDeleted(t *testing.T) {
	accounts := fixtureAccounts()
	deletedAt := date(2024, time.March, 1)
	accounts[1].DeletedAt = &deletedAt

	book := NewBook(accounts, fixtureCategories(), fixturePersons(), nil, nil)
	l := New(book, NewConfig())

	all, err := l.AccountsWithBalance(true)
	assert.NoError(t, err)
	assert.Equal(t, len(all), 2)
	for _, ab := range all {
		assert.NotEqual(t, ab.Account.Name, "Savings")
	}
}
