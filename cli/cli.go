// Package cli implements penny's command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/pennyledger/penny/config"
	"github.com/pennyledger/penny/ledger"
	"github.com/pennyledger/penny/store"
	"github.com/pennyledger/penny/telemetry"
)

var (
	successSymbol = "✓"
	errorSymbol   = "✗"
	infoSymbol    = "→"

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D7D7", Dark: "#00D7D7"})
)

func printSuccess(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		successStyle.Render(successSymbol),
		message,
	)
}

func printError(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		errorStyle.Render(errorSymbol),
		errorStyle.Render(message),
	)
}

func printInfof(w io.Writer, format string, args ...interface{}) {
	formatted := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(w, "%s %s\n",
		infoStyle.Render(infoSymbol),
		formatted,
	)
}

// promptYesNo prompts the user with a yes/no question.
// Returns false by default if stdin is not a terminal.
func promptYesNo(ctx *kong.Context, question string) (bool, error) {
	if !isTerminal() {
		return false, nil
	}

	var confirm bool

	form := huh.NewConfirm().
		Title(question).
		WithButtonAlignment(lipgloss.Left).
		Value(&confirm)

	err := form.Run()
	if err != nil {
		return false, fmt.Errorf("failed to read response: %w", err)
	}

	return confirm, nil
}

func isTerminal() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// app holds the opened store and resolved configuration for a single
// command invocation.
type app struct {
	settings *config.Settings
	cfg      *ledger.Config
	store    *store.Store
}

// open loads the settings file named by the global --config flag and
// opens the database it points at.
func (g *Globals) open() (*app, error) {
	settings, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}

	cfg, err := settings.LedgerConfig()
	if err != nil {
		return nil, err
	}

	st, err := store.Open(settings.DatabasePath)
	if err != nil {
		return nil, err
	}

	return &app{settings: settings, cfg: cfg, store: st}, nil
}

func (a *app) Close() {
	_ = a.store.Close()
}

// ledger loads a fresh snapshot and wraps it in the engine.
func (a *app) ledger(ctx context.Context) (*ledger.Ledger, error) {
	book, err := a.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.New(book, a.cfg), nil
}

// runContext returns the context commands should pass down, wired to a
// timing collector when --telemetry is set. The returned report
// function prints the collected timings; it is safe to call when
// telemetry is disabled.
func (g *Globals) runContext(ctx *kong.Context, name string) (context.Context, func()) {
	runCtx := context.Background()

	if !g.Telemetry {
		return runCtx, func() {}
	}

	collector := telemetry.NewTimingCollector()
	runCtx = telemetry.WithCollector(runCtx, collector)
	timer := collector.Start(name)

	return runCtx, func() {
		timer.End()
		_, _ = fmt.Fprintln(ctx.Stderr)
		collector.Report(ctx.Stderr)
	}
}

// today returns the current local calendar day as a UTC midnight.
// Record dates and period boundaries are both kept in UTC so a record
// dated on a period's first day always falls inside the period.
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// parseDate parses a YYYY-MM-DD flag value, defaulting to today when
// empty.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return today(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// resolvePeriod turns the shared --period/--offset flags into a
// concrete period.
func resolvePeriod(cfg *ledger.Config, periodFlag string, offset int) (ledger.Period, ledger.PeriodUnit, error) {
	unit, err := ledger.ParsePeriodUnit(periodFlag)
	if err != nil {
		return ledger.Period{}, 0, err
	}
	p, err := ledger.ResolvePeriod(offset, unit, cfg.FirstDayOfWeek, today())
	if err != nil {
		return ledger.Period{}, 0, err
	}
	return p, unit, nil
}
