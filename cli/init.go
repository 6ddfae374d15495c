package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/pennyledger/penny/config"
	"github.com/pennyledger/penny/ledger"
	"github.com/pennyledger/penny/store"
)

// InitCmd sets up a fresh tracker: config directory, database and the
// default category tree.
type InitCmd struct {
	Force bool `help:"Seed default categories even when categories already exist." short:"f"`
}

const defaultConfig = `# penny configuration
first_day_of_week: monday
round_decimals: 2
budget:
  savings_metric: percentage
  savings_percentage: 0.2
  wants_metric: percentage
  wants_percentage: 0.3
  income_metric: period
  income_threshold: 0
  income_fallback: 0
`

type seedCategory struct {
	name     string
	color    string
	nature   ledger.Nature
	children []seedCategory
}

var defaultCategories = []seedCategory{
	{name: "Income", color: "bright_green", nature: ledger.NatureMust, children: []seedCategory{
		{name: "Salary", nature: ledger.NatureMust},
		{name: "Investments", nature: ledger.NatureWant},
		{name: "Side Hustle", nature: ledger.NatureWant},
	}},
	{name: "Transport", color: "yellow", nature: ledger.NatureNeed, children: []seedCategory{
		{name: "Public Transport", nature: ledger.NatureNeed},
		{name: "Fuel", nature: ledger.NatureNeed},
		{name: "Vehicle Maintenance", nature: ledger.NatureNeed},
	}},
	{name: "Food", color: "red", nature: ledger.NatureMust, children: []seedCategory{
		{name: "Groceries", nature: ledger.NatureMust},
		{name: "Restaurants", nature: ledger.NatureWant},
		{name: "Takeout", nature: ledger.NatureWant},
	}},
	{name: "Subscriptions", color: "blue", nature: ledger.NatureNeed, children: []seedCategory{
		{name: "Streaming Services", nature: ledger.NatureWant},
		{name: "Software", nature: ledger.NatureNeed},
		{name: "Gym", nature: ledger.NatureWant},
	}},
	{name: "Shopping", color: "magenta", nature: ledger.NatureWant, children: []seedCategory{
		{name: "Clothes", nature: ledger.NatureNeed},
		{name: "Electronics", nature: ledger.NatureWant},
		{name: "Home", nature: ledger.NatureNeed},
	}},
	{name: "Bills", color: "cyan", nature: ledger.NatureMust, children: []seedCategory{
		{name: "Utilities", nature: ledger.NatureMust},
		{name: "Rent/Mortgage", nature: ledger.NatureMust},
		{name: "Insurance", nature: ledger.NatureMust},
	}},
}

func (cmd *InitCmd) Run(ctx *kong.Context, globals *Globals) error {
	configPath := globals.Config
	if configPath == "" {
		dir, err := config.DefaultDir()
		if err != nil {
			return err
		}
		configPath = filepath.Join(dir, "config.yaml")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
		if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		printInfof(ctx.Stdout, "Created config: %s", pathStyle.Render(configPath))
	}

	settings, err := config.Load(configPath)
	if err != nil {
		return err
	}

	st, err := store.Open(settings.DatabasePath)
	if err != nil {
		return err
	}
	defer st.Close()

	runCtx := context.Background()

	existing, err := st.Categories(runCtx)
	if err != nil {
		return err
	}
	if len(existing) > 0 && !cmd.Force {
		printInfof(ctx.Stdout, "Database already initialized: %s", pathStyle.Render(settings.DatabasePath))
		return nil
	}

	if err := seedCategories(runCtx, st); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Initialized ledger: %s", pathStyle.Render(settings.DatabasePath)))
	return nil
}

func seedCategories(ctx context.Context, st *store.Store) error {
	for _, seed := range defaultCategories {
		parent := ledger.Category{Name: seed.name, Color: seed.color, Nature: seed.nature}
		if err := st.CreateCategory(ctx, &parent); err != nil {
			return err
		}
		for _, child := range seed.children {
			color := child.color
			if color == "" {
				color = seed.color
			}
			c := ledger.Category{Name: child.name, Color: color, Nature: child.nature, ParentID: &parent.ID}
			if err := st.CreateCategory(ctx, &c); err != nil {
				return err
			}
		}
	}
	return nil
}
