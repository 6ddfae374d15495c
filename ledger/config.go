package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssessMetric selects how a budgeting allowance is derived.
type AssessMetric int

const (
	// AssessPercentageOfIncome derives the allowance as a fraction of
	// the period's income.
	AssessPercentageOfIncome AssessMetric = iota
	// AssessFixedAmount uses a fixed configured amount.
	AssessFixedAmount
)

// String returns the string representation of the assess metric.
func (m AssessMetric) String() string {
	switch m {
	case AssessPercentageOfIncome:
		return "percentageOfIncome"
	case AssessFixedAmount:
		return "fixedAmount"
	default:
		return "unknown"
	}
}

// IncomeMetric selects how the spending ceiling is derived.
type IncomeMetric int

const (
	// IncomePeriod derives the ceiling from period income, falling back
	// to the previous period when income is below the threshold.
	IncomePeriod IncomeMetric = iota
	// IncomeFixed pins the ceiling to the configured fallback value.
	IncomeFixed
)

// BudgetConfig holds the budgeting targets evaluated by the engine.
type BudgetConfig struct {
	SavingsMetric     AssessMetric
	SavingsPercentage decimal.Decimal
	SavingsAmount     decimal.Decimal

	WantsMetric     AssessMetric
	WantsPercentage decimal.Decimal
	WantsAmount     decimal.Decimal

	IncomeMetric    IncomeMetric
	IncomeThreshold decimal.Decimal
	IncomeFallback  decimal.Decimal
}

// Config holds the aggregation settings every engine entry point reads.
// It is passed in explicitly; the engine keeps no process-wide state.
type Config struct {
	FirstDayOfWeek time.Weekday
	RoundDecimals  int32
	Budget         BudgetConfig
}

// NewConfig creates a Config with the tracker defaults: weeks start on
// Monday, amounts round to two decimals, savings at 20% of income.
func NewConfig() *Config {
	return &Config{
		FirstDayOfWeek: time.Monday,
		RoundDecimals:  2,
		Budget: BudgetConfig{
			SavingsMetric:     AssessPercentageOfIncome,
			SavingsPercentage: decimal.NewFromFloat(0.2),
			SavingsAmount:     decimal.Zero,
			WantsMetric:       AssessPercentageOfIncome,
			WantsPercentage:   decimal.NewFromFloat(0.3),
			WantsAmount:       decimal.Zero,
			IncomeMetric:      IncomePeriod,
			IncomeThreshold:   decimal.Zero,
			IncomeFallback:    decimal.Zero,
		},
	}
}

// round applies the configured rounding precision.
func (c *Config) round(d decimal.Decimal) decimal.Decimal {
	return d.Round(c.RoundDecimals)
}
