package cli

import (
	"github.com/alecthomas/kong"

	"github.com/pennyledger/penny/output"
)

type UnpaidCmd struct {
	Period string `help:"Period granularity: day, week, month or year." default:"month" short:"p"`
	Offset int    `help:"Period offset from the current one, e.g. -1 for the previous." default:"0" short:"o"`
}

func (cmd *UnpaidCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := globals.runContext(ctx, "unpaid")
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

	l, err := a.ledger(runCtx)
	if err != nil {
		return err
	}

	summaries := l.PersonSummaries(period)
	if len(summaries) == 0 {
		printInfof(ctx.Stdout, "No splits in %s", period)
		return nil
	}

	styles := output.NewStyles(ctx.Stdout)
	t := newTable("PERSON", "OUTSTANDING").alignRight(1)

	allSettled := true
	for _, s := range summaries {
		amount := s.Outstanding.String()
		switch {
		case s.Outstanding.IsPositive():
			amount = styles.Income(amount)
			allSettled = false
		case s.Outstanding.IsNegative():
			amount = styles.Expense(amount)
			allSettled = false
		}
		t.addRow(s.Person.Name, amount)
	}

	printInfof(ctx.Stdout, "Outstanding in %s", period)
	t.render(ctx.Stdout, styles)
	if allSettled {
		printSuccess(ctx.Stdout, "All settled")
	}

	return nil
}
