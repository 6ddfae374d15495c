// Package config loads penny's settings from a YAML file, with
// PENNY_-prefixed environment variables taking precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/pennyledger/penny/ledger"
)

// Settings is the on-disk shape of the configuration file.
type Settings struct {
	DatabasePath   string `mapstructure:"database_path"`
	FirstDayOfWeek string `mapstructure:"first_day_of_week"`
	RoundDecimals  int32  `mapstructure:"round_decimals"`
	Budget         Budget `mapstructure:"budget"`
}

// Budget mirrors ledger.BudgetConfig with string metrics and float
// amounts, the forms YAML users actually write.
type Budget struct {
	SavingsMetric     string  `mapstructure:"savings_metric"`
	SavingsPercentage float64 `mapstructure:"savings_percentage"`
	SavingsAmount     float64 `mapstructure:"savings_amount"`
	WantsMetric       string  `mapstructure:"wants_metric"`
	WantsPercentage   float64 `mapstructure:"wants_percentage"`
	WantsAmount       float64 `mapstructure:"wants_amount"`
	IncomeMetric      string  `mapstructure:"income_metric"`
	IncomeThreshold   float64 `mapstructure:"income_threshold"`
	IncomeFallback    float64 `mapstructure:"income_fallback"`
}

// DefaultDir returns the directory penny keeps its config and database
// in, typically ~/.config/penny.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(base, "penny"), nil
}

// Load reads the settings file at path. An empty path means the default
// location; a missing file yields the defaults rather than an error.
func Load(path string) (*Settings, error) {
	v := viper.New()

	defaults := ledger.NewConfig()
	v.SetDefault("database_path", "")
	v.SetDefault("first_day_of_week", strings.ToLower(defaults.FirstDayOfWeek.String()))
	v.SetDefault("round_decimals", defaults.RoundDecimals)
	v.SetDefault("budget.savings_metric", "percentage")
	v.SetDefault("budget.savings_percentage", decimalFloat(defaults.Budget.SavingsPercentage))
	v.SetDefault("budget.savings_amount", decimalFloat(defaults.Budget.SavingsAmount))
	v.SetDefault("budget.wants_metric", "percentage")
	v.SetDefault("budget.wants_percentage", decimalFloat(defaults.Budget.WantsPercentage))
	v.SetDefault("budget.wants_amount", decimalFloat(defaults.Budget.WantsAmount))
	v.SetDefault("budget.income_metric", "period")
	v.SetDefault("budget.income_threshold", decimalFloat(defaults.Budget.IncomeThreshold))
	v.SetDefault("budget.income_fallback", decimalFloat(defaults.Budget.IncomeFallback))

	v.SetEnvPrefix("PENNY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if s.DatabasePath == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		s.DatabasePath = filepath.Join(dir, "penny.db")
	}

	return &s, nil
}

// LedgerConfig converts the settings into the engine's config form.
func (s *Settings) LedgerConfig() (*ledger.Config, error) {
	cfg := ledger.NewConfig()

	day, err := parseWeekday(s.FirstDayOfWeek)
	if err != nil {
		return nil, err
	}
	cfg.FirstDayOfWeek = day
	cfg.RoundDecimals = s.RoundDecimals

	if cfg.Budget.SavingsMetric, err = parseAssessMetric(s.Budget.SavingsMetric); err != nil {
		return nil, fmt.Errorf("budget.savings_metric: %w", err)
	}
	if cfg.Budget.WantsMetric, err = parseAssessMetric(s.Budget.WantsMetric); err != nil {
		return nil, fmt.Errorf("budget.wants_metric: %w", err)
	}
	if cfg.Budget.IncomeMetric, err = parseIncomeMetric(s.Budget.IncomeMetric); err != nil {
		return nil, fmt.Errorf("budget.income_metric: %w", err)
	}

	cfg.Budget.SavingsPercentage = decimal.NewFromFloat(s.Budget.SavingsPercentage)
	cfg.Budget.SavingsAmount = decimal.NewFromFloat(s.Budget.SavingsAmount)
	cfg.Budget.WantsPercentage = decimal.NewFromFloat(s.Budget.WantsPercentage)
	cfg.Budget.WantsAmount = decimal.NewFromFloat(s.Budget.WantsAmount)
	cfg.Budget.IncomeThreshold = decimal.NewFromFloat(s.Budget.IncomeThreshold)
	cfg.Budget.IncomeFallback = decimal.NewFromFloat(s.Budget.IncomeFallback)

	return cfg, nil
}

func parseWeekday(s string) (time.Weekday, error) {
	switch strings.ToLower(s) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	}
	return 0, fmt.Errorf("invalid first_day_of_week %q", s)
}

func parseAssessMetric(s string) (ledger.AssessMetric, error) {
	switch strings.ToLower(s) {
	case "percentage":
		return ledger.AssessPercentageOfIncome, nil
	case "fixed":
		return ledger.AssessFixedAmount, nil
	}
	return 0, fmt.Errorf("invalid metric %q, expected percentage or fixed", s)
}

func parseIncomeMetric(s string) (ledger.IncomeMetric, error) {
	switch strings.ToLower(s) {
	case "period":
		return ledger.IncomePeriod, nil
	case "fixed":
		return ledger.IncomeFixed, nil
	}
	return 0, fmt.Errorf("invalid metric %q, expected period or fixed", s)
}

func decimalFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
