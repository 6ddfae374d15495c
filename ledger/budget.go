package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Allowance evaluates a single budgeting target. With the
// percentage-of-income metric the allowance is periodIncome scaled by
// percentage; with the fixed-amount metric the configured amount is
// returned as-is, no rounding applied.
func (l *Ledger) Allowance(metric AssessMetric, percentage, fixed, periodIncome decimal.Decimal) decimal.Decimal {
	if metric == AssessPercentageOfIncome {
		return l.cfg.round(periodIncome.Mul(percentage))
	}
	return fixed
}

// SpendingCeiling derives the upper bound for period spending from the
// configured income-assessment policy.
//
// With the period-income metric, the current period's income is used
// when it clears the configured threshold; otherwise the previous
// period's income stands in (a single one-period lookback, never a
// further search). Whatever candidate wins, the ceiling never drops
// below the configured fallback floor.
func (l *Ledger) SpendingCeiling(offset int, unit PeriodUnit, now time.Time) (decimal.Decimal, error) {
	budget := l.cfg.Budget

	var candidate decimal.Decimal
	if budget.IncomeMetric == IncomePeriod {
		income, err := l.periodIncome(offset, unit, now)
		if err != nil {
			return decimal.Zero, err
		}
		if income.GreaterThan(budget.IncomeThreshold) {
			candidate = income
		} else {
			candidate, err = l.periodIncome(offset-1, unit, now)
			if err != nil {
				return decimal.Zero, err
			}
		}
	}

	if candidate.LessThan(budget.IncomeFallback) {
		return budget.IncomeFallback, nil
	}
	return candidate, nil
}

// periodIncome resolves a period and returns its income figure.
func (l *Ledger) periodIncome(offset int, unit PeriodUnit, now time.Time) (decimal.Decimal, error) {
	period, err := ResolvePeriod(offset, unit, l.cfg.FirstDayOfWeek, now)
	if err != nil {
		return decimal.Zero, err
	}
	isIncome := true
	return l.PeriodNet(NetFilter{Period: &period, IsIncome: &isIncome}), nil
}

// BudgetReport is the composed budgeting view for one period: the
// income bar of the home screen. Percentages are integer shares of the
// period income (segment percentages of expenses are shares of the
// expense figure) and are zero when the divisor is zero.
type BudgetReport struct {
	Income    decimal.Decimal
	Expenses  decimal.Decimal
	ToSave    decimal.Decimal
	Remaining decimal.Decimal

	ExpensesMust decimal.Decimal
	ExpensesNeed decimal.Decimal
	ExpensesWant decimal.Decimal

	PercentSpent  int64
	PercentToSave int64
	PercentMust   int64
	PercentNeed   int64
}

// BudgetReport evaluates the savings allowance against a period's
// income and expenses and splits the expenses by category nature.
// The WANT figure is the remainder of expenses after MUST and NEED, so
// uncategorized spending lands in the most discretionary bucket.
func (l *Ledger) BudgetReport(period Period) BudgetReport {
	isIncome := true
	income := l.PeriodNet(NetFilter{Period: &period, IsIncome: &isIncome})
	isExpense := false
	expenses := l.PeriodNet(NetFilter{Period: &period, IsIncome: &isExpense})

	budget := l.cfg.Budget
	toSave := l.Allowance(budget.SavingsMetric, budget.SavingsPercentage, budget.SavingsAmount, income)

	must := l.NatureNet(period, NatureMust, nil)
	need := l.NatureNet(period, NatureNeed, nil)
	want := l.cfg.round(expenses.Sub(must).Sub(need))

	report := BudgetReport{
		Income:       income,
		Expenses:     expenses,
		ToSave:       toSave,
		Remaining:    l.cfg.round(income.Sub(expenses).Sub(toSave)),
		ExpensesMust: must,
		ExpensesNeed: need,
		ExpensesWant: want,
	}

	hundred := decimal.NewFromInt(100)
	if !income.IsZero() {
		report.PercentSpent = expenses.Div(income).Mul(hundred).Round(0).IntPart()
		report.PercentToSave = toSave.Div(income).Mul(hundred).Round(0).IntPart()
	}
	if !expenses.IsZero() {
		report.PercentMust = must.Div(expenses).Mul(hundred).Round(0).IntPart()
		report.PercentNeed = need.Div(expenses).Mul(hundred).Round(0).IntPart()
	}

	return report
}
