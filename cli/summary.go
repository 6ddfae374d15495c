package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"
	"github.com/shopspring/decimal"

	"github.com/pennyledger/penny/ledger"
	"github.com/pennyledger/penny/output"
)

type SummaryCmd struct {
	Period  string `help:"Period granularity: day, week, month or year." default:"month" short:"p"`
	Offset  int    `help:"Period offset from the current one, e.g. -1 for the previous." default:"0" short:"o"`
	Account int64  `help:"Restrict figures to this account." default:"0"`
	Trend   bool   `help:"Show the daily spending trend." short:"t"`
	Watch   bool   `help:"Re-render whenever the database changes." short:"w"`
}

func (cmd *SummaryCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := globals.runContext(ctx, "summary")
	defer report()

	a, err := globals.open()
	if err != nil {
		return err
	}
	defer a.Close()

	period, _, err := resolvePeriod(a.cfg, cmd.Period, cmd.Offset)
	if err != nil {
		return err
	}

	if err := cmd.render(runCtx, ctx, a, period); err != nil {
		return err
	}
	if !cmd.Watch {
		return nil
	}

	return cmd.watch(runCtx, ctx, a, period)
}

func (cmd *SummaryCmd) render(runCtx context.Context, ctx *kong.Context, a *app, period ledger.Period) error {
	l, err := a.ledger(runCtx)
	if err != nil {
		return err
	}

	var accountID *int64
	if cmd.Account > 0 {
		accountID = &cmd.Account
		if _, ok := l.Book().Account(cmd.Account); !ok {
			return &ledger.UnknownAccountError{AccountID: cmd.Account}
		}
	}

	income := l.PeriodNet(ledger.NetFilter{Period: &period, AccountID: accountID, IsIncome: boolPtr(true)})
	expenses := l.PeriodNet(ledger.NetFilter{Period: &period, AccountID: accountID, IsIncome: boolPtr(false)})
	net := l.PeriodNet(ledger.NetFilter{Period: &period, AccountID: accountID})

	styles := output.NewStyles(ctx.Stdout)
	printInfof(ctx.Stdout, "Summary for %s", period)

	t := newTable("", "").alignRight(1)
	t.addRow("Income", styles.Income(income.String()))
	t.addRow("Expenses", styles.Expense(expenses.String()))
	t.addRow("Net", net.String())
	t.addRow("Avg/day", l.PeriodAverage(net, period).String())
	t.render(ctx.Stdout, styles)

	if cmd.Trend {
		cmd.renderTrend(ctx, l, period, styles)
	}

	return nil
}

func (cmd *SummaryCmd) renderTrend(ctx *kong.Context, l *ledger.Ledger, period ledger.Period, styles *output.Styles) {
	trend := l.DailySpending(period)
	if len(trend) == 0 {
		return
	}

	peak := decimal.Zero
	for _, d := range trend {
		if d.Amount.GreaterThan(peak) {
			peak = d.Amount
		}
	}
	if peak.IsZero() {
		return
	}

	_, _ = fmt.Fprintln(ctx.Stdout)
	for _, d := range trend {
		width := d.Amount.Div(peak).Mul(decimal.NewFromInt(30)).Round(0).IntPart()
		_, _ = fmt.Fprintf(ctx.Stdout, "%s %s %s\n",
			styles.Dim(d.Day.Format("01-02")),
			strings.Repeat("▇", int(width)),
			d.Amount.String(),
		)
	}
}

// watch re-renders the summary whenever the database file changes,
// until interrupted.
func (cmd *SummaryCmd) watch(runCtx context.Context, ctx *kong.Context, a *app, period ledger.Period) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the file: SQLite swaps journal
	// files around, and some editors replace files on write.
	dbPath := a.settings.DatabasePath
	if err := watcher.Add(filepath.Dir(dbPath)); err != nil {
		return fmt.Errorf("watch %s: %w", dbPath, err)
	}

	printInfof(ctx.Stdout, "Watching %s", pathStyle.Render(dbPath))

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filepath.Base(dbPath) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			slog.Debug("database changed", "op", event.Op.String(), "file", event.Name)
			_, _ = fmt.Fprintln(ctx.Stdout)
			if err := cmd.render(runCtx, ctx, a, period); err != nil {
				printError(ctx.Stderr, err.Error())
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, err.Error())
		}
	}
}

func boolPtr(v bool) *bool {
	return &v
}
