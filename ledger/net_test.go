package ledger

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

func march() Period {
	return Period{Start: date(2024, time.March, 1), End: date(2024, time.April, 1)}
}

func marchRecords() []Record {
	return []Record{
		{ID: 1, Label: "salary", Amount: dec("1000.00"), IsIncome: true, Date: date(2024, time.March, 1), AccountID: 1, CategoryID: ptr(int64(6))},
		{ID: 2, Label: "rent", Amount: dec("400.00"), Date: date(2024, time.March, 2), AccountID: 1, CategoryID: ptr(int64(4))},
		{ID: 3, Label: "to savings", Amount: dec("150.00"), IsTransfer: true, Date: date(2024, time.March, 3), AccountID: 1, TransferTo: ptr(int64(2))},
		// Outside the period, must never count.
		{ID: 4, Label: "old dinner", Amount: dec("70.00"), Date: date(2024, time.February, 20), AccountID: 1, CategoryID: ptr(int64(3))},
	}
}

func TestPeriodNet_FullNet(t *testing.T) {
	l := newTestLedger(marchRecords(), nil)

	p := march()
	net := l.PeriodNet(NetFilter{Period: &p})
	// Transfers cancel out when unscoped: 1000 - 400 + 150 - 150.
	assert.Equal(t, net.String(), "600")
}

func TestPeriodNet_TriState(t *testing.T) {
	l := newTestLedger(marchRecords(), nil)
	p := march()

	income := l.PeriodNet(NetFilter{Period: &p, IsIncome: ptr(true)})
	assert.Equal(t, income.String(), "1000")

	expense := l.PeriodNet(NetFilter{Period: &p, IsIncome: ptr(false)})
	assert.Equal(t, expense.String(), "400")
}

func TestPeriodNet_AccountScoped(t *testing.T) {
	l := newTestLedger(marchRecords(), nil)
	p := march()

	// The receiving account sees only the transfer in.
	net := l.PeriodNet(NetFilter{Period: &p, AccountID: ptr(int64(2))})
	assert.Equal(t, net.String(), "150")

	// The source account pays rent and sends the transfer.
	net = l.PeriodNet(NetFilter{Period: &p, AccountID: ptr(int64(1))})
	assert.Equal(t, net.String(), "450")
}

func TestPeriodNet_HalfOpenBoundaries(t *testing.T) {
	l := newTestLedger([]Record{
		{ID: 1, Label: "on start", Amount: dec("10.00"), IsIncome: true, Date: date(2024, time.March, 1), AccountID: 1, CategoryID: ptr(int64(6))},
		{ID: 2, Label: "on end", Amount: dec("99.00"), IsIncome: true, Date: date(2024, time.April, 1), AccountID: 1, CategoryID: ptr(int64(6))},
	}, nil)

	p := march()
	net := l.PeriodNet(NetFilter{Period: &p, IsIncome: ptr(true)})
	assert.Equal(t, net.String(), "10")
}

func TestPeriodNet_SplitsBySettlementDate(t *testing.T) {
	// The dinner happened in February; Ana paid her share back in March.
	// The settlement counts for March, the record itself for February.
	isPaid, paidDate := paid(date(2024, time.March, 8))
	l := newTestLedger([]Record{
		{ID: 1, Label: "dinner", Amount: dec("90.00"), Date: date(2024, time.February, 25), AccountID: 1, CategoryID: ptr(int64(3))},
	}, []Split{
		{ID: 1, RecordID: 1, PersonID: 1, Amount: dec("30.00"), IsPaid: isPaid, PaidDate: paidDate, AccountID: ptr(int64(1))},
	})

	p := march()
	net := l.PeriodNet(NetFilter{Period: &p})
	assert.Equal(t, net.String(), "30")

	// The expense figure nets received settlements off.
	feb := Period{Start: date(2024, time.February, 1), End: date(2024, time.March, 1)}
	expense := l.PeriodNet(NetFilter{Period: &feb, IsIncome: ptr(false)})
	assert.Equal(t, expense.String(), "90")

	expense = l.PeriodNet(NetFilter{Period: &p, IsIncome: ptr(false)})
	assert.Equal(t, expense.String(), "-30")
}

func TestPeriodNet_SplitSentOnSharedIncome(t *testing.T) {
	isPaid, paidDate := paid(date(2024, time.March, 15))
	l := newTestLedger([]Record{
		{ID: 1, Label: "gig", Amount: dec("500.00"), IsIncome: true, Date: date(2024, time.March, 10), AccountID: 1, CategoryID: ptr(int64(6))},
	}, []Split{
		{ID: 1, RecordID: 1, PersonID: 2, Amount: dec("200.00"), IsPaid: isPaid, PaidDate: paidDate, AccountID: ptr(int64(1))},
	})

	p := march()
	income := l.PeriodNet(NetFilter{Period: &p, IsIncome: ptr(true)})
	assert.Equal(t, income.String(), "300")
}

func TestPeriodAverage(t *testing.T) {
	l := newTestLedger(nil, nil)

	p := march() // 31 days
	avg := l.PeriodAverage(dec("310.00"), p)
	assert.Equal(t, avg.String(), "10")

	avg = l.PeriodAverage(dec("100.00"), p)
	assert.Equal(t, avg.String(), "3.23")
}

func TestDailySpending(t *testing.T) {
	l := newTestLedger([]Record{
		{ID: 1, Label: "coffee", Amount: dec("4.50"), Date: date(2024, time.March, 4), AccountID: 1, CategoryID: ptr(int64(3))},
		{ID: 2, Label: "lunch", Amount: dec("12.00"), Date: time.Date(2024, time.March, 4, 13, 0, 0, 0, time.UTC), AccountID: 1, CategoryID: ptr(int64(3))},
		{ID: 3, Label: "dinner", Amount: dec("60.00"), Date: date(2024, time.March, 6), AccountID: 1, CategoryID: ptr(int64(3))},
		{ID: 4, Label: "salary", Amount: dec("1000.00"), IsIncome: true, Date: date(2024, time.March, 6), AccountID: 1, CategoryID: ptr(int64(6))},
	}, []Split{
		// Half of the dinner is Bram's; only our own share is spending.
		{ID: 1, RecordID: 3, PersonID: 2, Amount: dec("30.00")},
	})

	trend := l.DailySpending(march())
	assert.Equal(t, len(trend), 2)
	assert.Equal(t, trend[0].Day, date(2024, time.March, 4))
	assert.Equal(t, trend[0].Amount.String(), "16.5")
	assert.Equal(t, trend[1].Day, date(2024, time.March, 6))
	assert.Equal(t, trend[1].Amount.String(), "30")
}
