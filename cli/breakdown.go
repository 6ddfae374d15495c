package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/pennyledger/penny/ledger"
	"github.com/pennyledger/penny/output"
)

type BreakdownCmd struct {
	Period        string `help:"Period granularity: day, week, month or year." default:"month" short:"p"`
	Offset        int    `help:"Period offset from the current one, e.g. -1 for the previous." default:"0" short:"o"`
	Account       int64  `help:"Restrict figures to this account." default:"0"`
	Income        bool   `help:"Break down income instead of expenses." short:"i"`
	Subcategories bool   `help:"Report subcategories separately instead of folding them into their parents." short:"s"`
	Top           int    `help:"Fold everything below the top N into an Others row. 0 keeps all rows." default:"5"`
}

func (cmd *BreakdownCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := globals.runContext(ctx, "breakdown")
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

	var accountID *int64
	if cmd.Account > 0 {
		accountID = &cmd.Account
	}

	entries := l.CategoryBreakdown(period, cmd.Income, accountID, cmd.Subcategories)
	if len(entries) == 0 {
		printInfof(ctx.Stdout, "Nothing to break down in %s", period)
		return nil
	}

	top := cmd.Top
	if top <= 0 {
		top = len(entries)
	}
	items := ledger.TopN(entries, top)

	kind := "expenses"
	if cmd.Income {
		kind = "income"
	}
	printInfof(ctx.Stdout, "Breakdown of %s in %s", kind, period)

	styles := output.NewStyles(ctx.Stdout)
	for _, item := range items {
		label := styles.Category(item.Label, item.Color)
		if item.Others {
			label = styles.Dim(item.Label)
		}
		_, _ = fmt.Fprintf(ctx.Stdout, "%s %s %3d%% %s\n",
			label,
			bar(item.Percentage, item.Label),
			item.Percentage,
			item.Amount.String(),
		)
	}

	return nil
}
