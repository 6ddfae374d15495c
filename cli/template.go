package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"

	"github.com/pennyledger/penny/ledger"
	"github.com/pennyledger/penny/output"
)

type TemplateCmd struct {
	List   TemplateListCmd   `cmd:"" default:"1" help:"List record templates."`
	Add    TemplateAddCmd    `cmd:"" help:"Add a record template."`
	Use    TemplateUseCmd    `cmd:"" help:"Create a record from a template."`
	Delete TemplateDeleteCmd `cmd:"" help:"Delete a record template."`
}

type TemplateAddCmd struct {
	Label      string `help:"Template label, reused on every record it creates." arg:""`
	Amount     string `help:"Record amount, always positive." arg:""`
	Account    int64  `help:"Source account ID." required:""`
	Category   int64  `help:"Category ID. Required unless this is a transfer." default:"0"`
	Income     bool   `help:"Records are income rather than expenses." short:"i"`
	TransferTo int64  `help:"Destination account ID, making this a transfer." default:"0"`
}

func (cmd *TemplateAddCmd) Run(ctx *kong.Context, globals *Globals) error {
	amount, err := decimal.NewFromString(cmd.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", cmd.Amount, err)
	}

	runCtx, report := globals.runContext(ctx, "template add")
	defer report()

	a, err := globals.open()
	if err != nil {
		return err
	}
	defer a.Close()

	template := ledger.Template{
		Label:     cmd.Label,
		Amount:    amount,
		IsIncome:  cmd.Income,
		AccountID: cmd.Account,
	}
	if cmd.Category > 0 {
		categoryID := cmd.Category
		template.CategoryID = &categoryID
	}
	if cmd.TransferTo > 0 {
		transferTo := cmd.TransferTo
		template.IsTransfer = true
		template.TransferTo = &transferTo
	}

	if err := a.store.CreateTemplate(runCtx, &template); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Added template %q (id %d)", template.Label, template.ID))
	return nil
}

type TemplateListCmd struct{}

func (cmd *TemplateListCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := globals.runContext(ctx, "template list")
	defer report()

	a, err := globals.open()
	if err != nil {
		return err
	}
	defer a.Close()

	templates, err := a.store.Templates(runCtx)
	if err != nil {
		return err
	}
	if len(templates) == 0 {
		printInfof(ctx.Stdout, "No templates, add one with \"penny template add\"")
		return nil
	}

	l, err := a.ledger(runCtx)
	if err != nil {
		return err
	}

	styles := output.NewStyles(ctx.Stdout)
	t := newTable("ID", "LABEL", "CATEGORY", "ACCOUNT", "AMOUNT").alignRight(0, 4)
	for _, tpl := range templates {
		record := tpl.Record(today())
		t.addRow(
			fmt.Sprintf("%d", tpl.ID),
			tpl.Label,
			recordCategory(l.Book(), record, styles),
			recordAccount(l.Book(), record),
			recordAmount(l, record, styles),
		)
	}
	t.render(ctx.Stdout, styles)
	return nil
}

type TemplateUseCmd struct {
	ID   int64  `help:"Template ID." arg:""`
	Date string `help:"Record date as YYYY-MM-DD, today when omitted."`
}

func (cmd *TemplateUseCmd) Run(ctx *kong.Context, globals *Globals) error {
	date, err := parseDate(cmd.Date)
	if err != nil {
		return err
	}

	runCtx, report := globals.runContext(ctx, "template use")
	defer report()

	a, err := globals.open()
	if err != nil {
		return err
	}
	defer a.Close()

	template, err := a.store.Template(runCtx, cmd.ID)
	if err != nil {
		return err
	}

	record := template.Record(date)
	if err := a.store.CreateRecord(runCtx, &record, nil); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Added record %q (id %d)", record.Label, record.ID))
	return nil
}

type TemplateDeleteCmd struct {
	ID  int64 `help:"Template ID." arg:""`
	Yes bool  `help:"Skip the confirmation prompt." short:"y"`
}

func (cmd *TemplateDeleteCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := globals.runContext(ctx, "template delete")
	defer report()

	a, err := globals.open()
	if err != nil {
		return err
	}
	defer a.Close()

	template, err := a.store.Template(runCtx, cmd.ID)
	if err != nil {
		return err
	}

	if !cmd.Yes {
		confirmed, err := promptYesNo(ctx, fmt.Sprintf("Delete template %q?", template.Label))
		if err != nil {
			return err
		}
		if !confirmed {
			printInfof(ctx.Stdout, "Aborted")
			return nil
		}
	}

	if err := a.store.DeleteTemplate(runCtx, cmd.ID); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Deleted template %q", template.Label))
	return nil
}
