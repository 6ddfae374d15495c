package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/pennyledger/penny/output"
)

type BudgetCmd struct {
	Period string `help:"Period granularity: day, week, month or year." default:"month" short:"p"`
	Offset int    `help:"Period offset from the current one, e.g. -1 for the previous." default:"0" short:"o"`
}

func (cmd *BudgetCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := globals.runContext(ctx, "budget")
	defer report()

	a, err := globals.open()
	if err != nil {
		return err
	}
	defer a.Close()

	period, unit, err := resolvePeriod(a.cfg, cmd.Period, cmd.Offset)
	if err != nil {
		return err
	}

	l, err := a.ledger(runCtx)
	if err != nil {
		return err
	}

	r := l.BudgetReport(period)
	ceiling, err := l.SpendingCeiling(cmd.Offset, unit, today())
	if err != nil {
		return err
	}

	styles := output.NewStyles(ctx.Stdout)
	printInfof(ctx.Stdout, "Budget for %s", period)

	t := newTable("", "", "").alignRight(1, 2)
	t.addRow("Income", styles.Income(r.Income.String()), "")
	t.addRow("Spent", styles.Expense(r.Expenses.String()), fmt.Sprintf("%d%%", r.PercentSpent))
	t.addRow("To save", r.ToSave.String(), fmt.Sprintf("%d%%", r.PercentToSave))
	budget := a.cfg.Budget
	wants := l.Allowance(budget.WantsMetric, budget.WantsPercentage, budget.WantsAmount, r.Income)
	t.addRow("For wants", wants.String(), "")
	remaining := styles.Success(r.Remaining.String())
	if r.Remaining.IsNegative() {
		remaining = styles.Error(r.Remaining.String())
	}
	t.addRow("Remaining", remaining, "")
	t.addRow("Ceiling", ceiling.String(), "")
	t.render(ctx.Stdout, styles)

	if !r.Expenses.IsZero() {
		_, _ = fmt.Fprintln(ctx.Stdout)
		n := newTable("", "", "").alignRight(1, 2)
		n.addRow(styles.Keyword("MUST"), r.ExpensesMust.String(), fmt.Sprintf("%d%%", r.PercentMust))
		n.addRow(styles.Keyword("NEED"), r.ExpensesNeed.String(), fmt.Sprintf("%d%%", r.PercentNeed))
		n.addRow(styles.Keyword("WANT"), r.ExpensesWant.String(), fmt.Sprintf("%d%%", 100-r.PercentMust-r.PercentNeed))
		n.render(ctx.Stdout, styles)
	}

	if r.Remaining.IsNegative() {
		_, _ = fmt.Fprintln(ctx.Stdout, styles.Warning("Over budget"))
	}

	return nil
}
