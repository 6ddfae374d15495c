package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"

	"github.com/pennyledger/penny/ledger"
	"github.com/pennyledger/penny/output"
)

type AccountCmd struct {
	List   AccountListCmd   `cmd:"" default:"1" help:"List accounts with their derived balances."`
	Add    AccountAddCmd    `cmd:"" help:"Add an account."`
	Hide   AccountHideCmd   `cmd:"" help:"Hide or unhide an account in listings."`
	Delete AccountDeleteCmd `cmd:"" help:"Delete an account. Its records are kept."`
}

type AccountListCmd struct {
	All bool `help:"Include hidden accounts." short:"a"`
}

func (cmd *AccountListCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := globals.runContext(ctx, "account list")
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

	balances, err := l.AccountsWithBalance(cmd.All)
	if err != nil {
		return err
	}
	if len(balances) == 0 {
		printInfof(ctx.Stdout, "No accounts yet. Add one with %s", pathStyle.Render("penny account add"))
		return nil
	}

	styles := output.NewStyles(ctx.Stdout)
	t := newTable("ID", "NAME", "BALANCE").alignRight(0, 2)
	for _, b := range balances {
		name := b.Account.Name
		if b.Account.Hidden {
			name += " (hidden)"
		}
		t.addRow(fmt.Sprintf("%d", b.Account.ID), name, b.Balance.String())
	}
	t.render(ctx.Stdout, styles)

	return nil
}

type AccountAddCmd struct {
	Name        string `help:"Account name." arg:""`
	Balance     string `help:"Beginning balance." default:"0"`
	Description string `help:"Free-form description." short:"d"`
	Repayment   int    `help:"Repayment day of month, for credit accounts." default:"0"`
}

func (cmd *AccountAddCmd) Run(ctx *kong.Context, globals *Globals) error {
	balance, err := decimal.NewFromString(cmd.Balance)
	if err != nil {
		return fmt.Errorf("invalid balance %q: %w", cmd.Balance, err)
	}

	a, err := globals.open()
	if err != nil {
		return err
	}
	defer a.Close()

	account := ledger.Account{
		Name:             cmd.Name,
		Description:      cmd.Description,
		BeginningBalance: balance,
	}
	if cmd.Repayment > 0 {
		account.RepaymentDate = &cmd.Repayment
	}

	runCtx, report := globals.runContext(ctx, "account add")
	defer report()

	if err := a.store.CreateAccount(runCtx, &account); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Added account %q (id %d)", account.Name, account.ID))
	return nil
}

type AccountHideCmd struct {
	ID   int64 `help:"Account ID." arg:""`
	Show bool  `help:"Unhide instead of hide." short:"s"`
}

func (cmd *AccountHideCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := globals.runContext(ctx, "account hide")
	defer report()

	a, err := globals.open()
	if err != nil {
		return err
	}
	defer a.Close()

	book, err := a.store.Snapshot(runCtx)
	if err != nil {
		return err
	}
	account, ok := book.Account(cmd.ID)
	if !ok || account.DeletedAt != nil {
		return &ledger.UnknownAccountError{AccountID: cmd.ID}
	}

	updated := *account
	updated.Hidden = !cmd.Show
	if err := a.store.UpdateAccount(runCtx, updated); err != nil {
		return err
	}

	if cmd.Show {
		printSuccess(ctx.Stdout, fmt.Sprintf("Account %q is visible again", account.Name))
	} else {
		printSuccess(ctx.Stdout, fmt.Sprintf("Hid account %q", account.Name))
	}
	return nil
}

type AccountDeleteCmd struct {
	ID  int64 `help:"Account ID." arg:""`
	Yes bool  `help:"Skip the confirmation prompt." short:"y"`
}

func (cmd *AccountDeleteCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := globals.runContext(ctx, "account delete")
	defer report()

	a, err := globals.open()
	if err != nil {
		return err
	}
	defer a.Close()

	if !cmd.Yes {
		confirmed, err := promptYesNo(ctx, fmt.Sprintf("Delete account %d? Its records are kept.", cmd.ID))
		if err != nil {
			return err
		}
		if !confirmed {
			printInfof(ctx.Stdout, "Aborted")
			return nil
		}
	}

	if err := a.store.DeleteAccount(runCtx, cmd.ID); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Deleted account %d", cmd.ID))
	return nil
}
