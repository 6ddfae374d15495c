package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/pennyledger/penny/ledger"
	"github.com/pennyledger/penny/output"
)

type CategoryCmd struct {
	List   CategoryListCmd   `cmd:"" default:"1" help:"List the category tree."`
	Add    CategoryAddCmd    `cmd:"" help:"Add a category."`
	Delete CategoryDeleteCmd `cmd:"" help:"Delete a category. Its records are kept."`
}

type CategoryListCmd struct{}

func (cmd *CategoryListCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := globals.runContext(ctx, "category list")
	defer report()

	a, err := globals.open()
	if err != nil {
		return err
	}
	defer a.Close()

	categories, err := a.store.Categories(runCtx)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		printInfof(ctx.Stdout, "No categories yet. Seed the defaults with %s", pathStyle.Render("penny init"))
		return nil
	}

	styles := output.NewStyles(ctx.Stdout)

	children := map[int64][]ledger.Category{}
	var roots []ledger.Category
	for _, c := range categories {
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		children[*c.ParentID] = append(children[*c.ParentID], c)
	}

	t := newTable("ID", "NAME", "NATURE").alignRight(0)
	for _, root := range roots {
		t.addRow(fmt.Sprintf("%d", root.ID), styles.Category(root.Name, root.Color), root.Nature.String())
		for _, child := range children[root.ID] {
			t.addRow(fmt.Sprintf("%d", child.ID), "  "+styles.Category(child.Name, child.Color), child.Nature.String())
		}
	}
	t.render(ctx.Stdout, styles)

	return nil
}

type CategoryAddCmd struct {
	Name   string `help:"Category name." arg:""`
	Nature string `help:"Budgeting nature: MUST, NEED or WANT." default:"NEED"`
	Color  string `help:"Display color." default:""`
	Parent int64  `help:"Parent category ID, making this a subcategory." default:"0"`
}

func (cmd *CategoryAddCmd) Run(ctx *kong.Context, globals *Globals) error {
	nature, err := ledger.ParseNature(cmd.Nature)
	if err != nil {
		return err
	}

	a, err := globals.open()
	if err != nil {
		return err
	}
	defer a.Close()

	runCtx := context.Background()

	category := ledger.Category{Name: cmd.Name, Nature: nature, Color: cmd.Color}
	if cmd.Parent > 0 {
		parentID := cmd.Parent
		category.ParentID = &parentID
	}

	if err := a.store.CreateCategory(runCtx, &category); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Added category %q (id %d)", category.Name, category.ID))
	return nil
}

type CategoryDeleteCmd struct {
	ID  int64 `help:"Category ID." arg:""`
	Yes bool  `help:"Skip the confirmation prompt." short:"y"`
}

func (cmd *CategoryDeleteCmd) Run(ctx *kong.Context, globals *Globals) error {
	a, err := globals.open()
	if err != nil {
		return err
	}
	defer a.Close()

	if !cmd.Yes {
		confirmed, err := promptYesNo(ctx, fmt.Sprintf("Delete category %d? Its records are kept.", cmd.ID))
		if err != nil {
			return err
		}
		if !confirmed {
			printInfof(ctx.Stdout, "Aborted")
			return nil
		}
	}

	if err := a.store.DeleteCategory(context.Background(), cmd.ID); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Deleted category %d", cmd.ID))
	return nil
}
