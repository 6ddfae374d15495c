package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/pennyledger/penny/output"
)

type SplitCmd struct {
	List SplitListCmd `cmd:"" default:"1" help:"List unsettled splits."`
	Pay  SplitPayCmd  `cmd:"" help:"Mark a split as settled."`
}

type SplitListCmd struct{}

func (cmd *SplitListCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := globals.runContext(ctx, "split list")
	defer report()

	a, err := globals.open()
	if err != nil {
		return err
	}
	defer a.Close()

	l, err := a.ledger(runCtx)
	if err != nil {
		return err
	}
	book := l.Book()

	styles := output.NewStyles(ctx.Stdout)
	t := newTable("ID", "PERSON", "RECORD", "DATE", "AMOUNT").alignRight(0, 4)

	count := 0
	for _, sp := range book.Splits() {
		if sp.IsPaid {
			continue
		}
		count++

		person := fmt.Sprintf("%d", sp.PersonID)
		if p, ok := book.Person(sp.PersonID); ok {
			person = p.Name
		}
		label, date := "", ""
		if r, ok := book.Record(sp.RecordID); ok {
			label = r.Label
			date = r.Date.Format("2006-01-02")
		}
		t.addRow(fmt.Sprintf("%d", sp.ID), person, label, date, sp.Amount.String())
	}

	if count == 0 {
		printSuccess(ctx.Stdout, "All splits settled")
		return nil
	}

	t.render(ctx.Stdout, styles)
	return nil
}

type SplitPayCmd struct {
	ID      int64  `help:"Split ID." arg:""`
	Account int64  `help:"Account the settlement moves through. Omit to record the settlement without touching a balance." default:"0"`
	Date    string `help:"Settlement date as YYYY-MM-DD, today when omitted."`
}

func (cmd *SplitPayCmd) Run(ctx *kong.Context, globals *Globals) error {
	date, err := parseDate(cmd.Date)
	if err != nil {
		return err
	}

	runCtx, report := globals.runContext(ctx, "split pay")
	defer report()

	a, err := globals.open()
	if err != nil {
		return err
	}
	defer a.Close()

	var accountID *int64
	if cmd.Account > 0 {
		accountID = &cmd.Account
	}

	if err := a.store.PaySplit(runCtx, cmd.ID, date, accountID); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Settled split %d", cmd.ID))
	return nil
}
