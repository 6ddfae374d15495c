package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"

	"github.com/pennyledger/penny/ledger"
	"github.com/pennyledger/penny/output"
)

type RecordCmd struct {
	List   RecordListCmd   `cmd:"" default:"1" help:"List records for a period."`
	Add    RecordAddCmd    `cmd:"" help:"Add a record, optionally with splits."`
	Delete RecordDeleteCmd `cmd:"" help:"Delete a record and its splits."`
}

type RecordAddCmd struct {
	Label      string   `help:"Record label." arg:""`
	Amount     string   `help:"Record amount, always positive." arg:""`
	Account    int64    `help:"Source account ID." required:""`
	Category   int64    `help:"Category ID. Required unless this is a transfer." default:"0"`
	Income     bool     `help:"Record is income rather than an expense." short:"i"`
	TransferTo int64    `help:"Destination account ID, making this a transfer." default:"0"`
	Date       string   `help:"Record date as YYYY-MM-DD, today when omitted."`
	Split      []string `help:"Delegate a portion to a person, as NAME=AMOUNT. Repeatable." short:"s"`
}

func (cmd *RecordAddCmd) Run(ctx *kong.Context, globals *Globals) error {
	amount, err := decimal.NewFromString(cmd.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", cmd.Amount, err)
	}
	date, err := parseDate(cmd.Date)
	if err != nil {
		return err
	}

	runCtx, report := globals.runContext(ctx, "record add")
	defer report()

	a, err := globals.open()
	if err != nil {
		return err
	}
	defer a.Close()

	record := ledger.Record{
		Label:     cmd.Label,
		Amount:    amount,
		IsIncome:  cmd.Income,
		Date:      date,
		AccountID: cmd.Account,
	}
	if cmd.Category > 0 {
		categoryID := cmd.Category
		record.CategoryID = &categoryID
	}
	if cmd.TransferTo > 0 {
		transferTo := cmd.TransferTo
		record.IsTransfer = true
		record.TransferTo = &transferTo
	}

	splits, err := cmd.parseSplits(runCtx, a)
	if err != nil {
		return err
	}

	if err := a.store.CreateRecord(runCtx, &record, splits); err != nil {
		return err
	}

	if len(splits) > 0 {
		printSuccess(ctx.Stdout, fmt.Sprintf("Added record %q (id %d) with %d split(s)", record.Label, record.ID, len(splits)))
	} else {
		printSuccess(ctx.Stdout, fmt.Sprintf("Added record %q (id %d)", record.Label, record.ID))
	}
	return nil
}

func (cmd *RecordAddCmd) parseSplits(runCtx context.Context, a *app) ([]ledger.Split, error) {
	if len(cmd.Split) == 0 {
		return nil, nil
	}

	persons, err := a.store.Persons(runCtx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]int64, len(persons))
	for _, p := range persons {
		byName[strings.ToLower(p.Name)] = p.ID
	}

	var splits []ledger.Split
	for _, spec := range cmd.Split {
		name, amount, err := parseSplitSpec(spec)
		if err != nil {
			return nil, err
		}
		personID, ok := byName[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown person %q, add them with \"penny person add\"", name)
		}
		splits = append(splits, ledger.Split{PersonID: personID, Amount: amount})
	}
	return splits, nil
}

// parseSplitSpec parses a NAME=AMOUNT split flag value.
func parseSplitSpec(spec string) (string, decimal.Decimal, error) {
	name, value, found := strings.Cut(spec, "=")
	if !found || name == "" {
		return "", decimal.Zero, fmt.Errorf("invalid split %q, expected NAME=AMOUNT", spec)
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return "", decimal.Zero, fmt.Errorf("invalid split amount %q: %w", value, err)
	}
	return name, amount, nil
}

type RecordListCmd struct {
	Period  string `help:"Period granularity: day, week, month or year." default:"month" short:"p"`
	Offset  int    `help:"Period offset from the current one, e.g. -1 for the previous." default:"0" short:"o"`
	Account int64  `help:"Only records of this account." default:"0"`
}

func (cmd *RecordListCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := globals.runContext(ctx, "record list")
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

	styles := output.NewStyles(ctx.Stdout)
	t := newTable("ID", "DATE", "LABEL", "CATEGORY", "ACCOUNT", "AMOUNT").alignRight(0, 5)

	count := 0
	for _, r := range l.Book().Records() {
		if !period.Contains(r.Date) {
			continue
		}
		if cmd.Account > 0 && r.AccountID != cmd.Account && (r.TransferTo == nil || *r.TransferTo != cmd.Account) {
			continue
		}
		count++
		t.addRow(
			fmt.Sprintf("%d", r.ID),
			r.Date.Format("2006-01-02"),
			r.Label,
			recordCategory(l.Book(), r, styles),
			recordAccount(l.Book(), r),
			recordAmount(l, r, styles),
		)
	}

	if count == 0 {
		printInfof(ctx.Stdout, "No records in %s", period)
		return nil
	}

	printInfof(ctx.Stdout, "Records in %s", period)
	t.render(ctx.Stdout, styles)
	return nil
}

func recordCategory(book *ledger.Book, r ledger.Record, styles *output.Styles) string {
	if r.IsTransfer {
		return styles.Dim("transfer")
	}
	if r.CategoryID == nil {
		return ""
	}
	c, ok := book.Category(*r.CategoryID)
	if !ok {
		return ""
	}
	return styles.Category(c.Name, c.Color)
}

func recordAccount(book *ledger.Book, r ledger.Record) string {
	name := fmt.Sprintf("%d", r.AccountID)
	if a, ok := book.Account(r.AccountID); ok {
		name = a.Name
	}
	if r.TransferTo != nil {
		dest := fmt.Sprintf("%d", *r.TransferTo)
		if a, ok := book.Account(*r.TransferTo); ok {
			dest = a.Name
		}
		return name + " → " + dest
	}
	return name
}

func recordAmount(l *ledger.Ledger, r ledger.Record, styles *output.Styles) string {
	amount := r.Amount
	suffix := ""
	if status, ok := l.SplitStatus(r.ID); ok {
		amount = status.SelfAmount
		if status.AllPaid {
			suffix = " (settled)"
		} else {
			suffix = " (split)"
		}
	}
	switch {
	case r.IsTransfer:
		return amount.String() + suffix
	case r.IsIncome:
		return styles.Income("+"+amount.String()) + suffix
	default:
		return styles.Expense("-"+amount.String()) + suffix
	}
}

type RecordDeleteCmd struct {
	ID  int64 `help:"Record ID." arg:""`
	Yes bool  `help:"Skip the confirmation prompt." short:"y"`
}

func (cmd *RecordDeleteCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := globals.runContext(ctx, "record delete")
	defer report()

	a, err := globals.open()
	if err != nil {
		return err
	}
	defer a.Close()

	if !cmd.Yes {
		confirmed, err := promptYesNo(ctx, fmt.Sprintf("Delete record %d and its splits?", cmd.ID))
		if err != nil {
			return err
		}
		if !confirmed {
			printInfof(ctx.Stdout, "Aborted")
			return nil
		}
	}

	if err := a.store.DeleteRecord(runCtx, cmd.ID); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Deleted record %d", cmd.ID))
	return nil
}
