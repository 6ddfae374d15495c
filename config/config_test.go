package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"

	"github.com/pennyledger/penny/ledger"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	s, err := Load(writeConfig(t, ""))
	assert.NoError(t, err)
	assert.Equal(t, "monday", s.FirstDayOfWeek)
	assert.Equal(t, int32(2), s.RoundDecimals)
	assert.NotEqual(t, "", s.DatabasePath)

	cfg, err := s.LedgerConfig()
	assert.NoError(t, err)
	assert.Equal(t, time.Monday, cfg.FirstDayOfWeek)
	assert.Equal(t, ledger.AssessPercentageOfIncome, cfg.Budget.SavingsMetric)
	assert.Equal(t, "0.2", cfg.Budget.SavingsPercentage.String())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
database_path: /tmp/penny-test/ledger.db
first_day_of_week: sunday
round_decimals: 0
budget:
  savings_metric: fixed
  savings_amount: 250
  income_metric: period
  income_threshold: 300
  income_fallback: 800
`)

	s, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/penny-test/ledger.db", s.DatabasePath)

	cfg, err := s.LedgerConfig()
	assert.NoError(t, err)
	assert.Equal(t, time.Sunday, cfg.FirstDayOfWeek)
	assert.Equal(t, int32(0), cfg.RoundDecimals)
	assert.Equal(t, ledger.AssessFixedAmount, cfg.Budget.SavingsMetric)
	assert.Equal(t, "250", cfg.Budget.SavingsAmount.String())
	assert.Equal(t, "300", cfg.Budget.IncomeThreshold.String())
	assert.Equal(t, "800", cfg.Budget.IncomeFallback.String())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, "monday", s.FirstDayOfWeek)
}

func TestLedgerConfigRejectsBadValues(t *testing.T) {
	s := &Settings{FirstDayOfWeek: "someday"}
	_, err := s.LedgerConfig()
	assert.Error(t, err)

	s = &Settings{FirstDayOfWeek: "monday", Budget: Budget{SavingsMetric: "sometimes", WantsMetric: "percentage", IncomeMetric: "period"}}
	_, err = s.LedgerConfig()
	assert.Error(t, err)

	s = &Settings{FirstDayOfWeek: "monday", Budget: Budget{SavingsMetric: "fixed", WantsMetric: "percentage", IncomeMetric: "weekly"}}
	_, err = s.LedgerConfig()
	assert.Error(t, err)
}
