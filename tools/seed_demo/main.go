// Demo Data Seeder
//
// This tool fills a database with a few months of realistic records for
// trying penny out or profiling aggregation over larger books.
//
// Usage:
//
//	go run ./tools/seed_demo demo.db
//	go run ./tools/seed_demo demo.db 24   # months of history
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennyledger/penny/ledger"
	"github.com/pennyledger/penny/store"
)

const defaultMonths = 6

type expense struct {
	label    string
	category string
	min, max float64
	perMonth int
}

var expenses = []expense{
	{"groceries", "Groceries", 20, 90, 6},
	{"restaurant", "Restaurants", 15, 70, 3},
	{"takeout", "Takeout", 10, 35, 4},
	{"fuel", "Fuel", 30, 60, 2},
	{"bus pass", "Public Transport", 2, 5, 8},
	{"streaming", "Streaming Services", 8, 15, 2},
	{"rent", "Rent/Mortgage", 900, 900, 1},
	{"electricity", "Utilities", 40, 120, 1},
	{"clothes", "Clothes", 20, 150, 1},
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: seed_demo <db-path> [months]")
		os.Exit(1)
	}
	dbPath := os.Args[1]

	months := defaultMonths
	if len(os.Args) > 2 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "invalid month count %q\n", os.Args[2])
			os.Exit(1)
		}
		months = n
	}

	if err := seed(dbPath, months); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func seed(dbPath string, months int) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))

	checking := ledger.Account{Name: "Checking", BeginningBalance: decimal.NewFromInt(2500)}
	if err := st.CreateAccount(ctx, &checking); err != nil {
		return err
	}
	savings := ledger.Account{Name: "Savings", BeginningBalance: decimal.NewFromInt(10000)}
	if err := st.CreateAccount(ctx, &savings); err != nil {
		return err
	}

	categories, err := seedCategories(ctx, st)
	if err != nil {
		return err
	}

	ana := ledger.Person{Name: "Ana"}
	if err := st.CreatePerson(ctx, &ana); err != nil {
		return err
	}

	now := time.Now()
	for m := months - 1; m >= 0; m-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -m, 0)

		salary := ledger.Record{
			Label:      "salary",
			Amount:     decimal.NewFromInt(3200),
			IsIncome:   true,
			Date:       monthStart,
			AccountID:  checking.ID,
			CategoryID: ptrOf(categories["Salary"]),
		}
		if err := st.CreateRecord(ctx, &salary, nil); err != nil {
			return err
		}

		for _, e := range expenses {
			for i := 0; i < e.perMonth; i++ {
				day := 1 + rng.Intn(28)
				amount := decimal.NewFromFloat(e.min + rng.Float64()*(e.max-e.min)).Round(2)
				r := ledger.Record{
					Label:      e.label,
					Amount:     amount,
					Date:       monthStart.AddDate(0, 0, day-1),
					AccountID:  checking.ID,
					CategoryID: ptrOf(categories[e.category]),
				}

				// Occasionally share a restaurant bill.
				var splits []ledger.Split
				if e.category == "Restaurants" && rng.Intn(3) == 0 {
					splits = []ledger.Split{{PersonID: ana.ID, Amount: amount.Div(decimal.NewFromInt(2)).Round(2)}}
				}
				if err := st.CreateRecord(ctx, &r, splits); err != nil {
					return err
				}
			}
		}

		stash := ledger.Record{
			Label:      "to savings",
			Amount:     decimal.NewFromInt(400),
			IsTransfer: true,
			Date:       monthStart.AddDate(0, 0, 2),
			AccountID:  checking.ID,
			TransferTo: &savings.ID,
		}
		if err := st.CreateRecord(ctx, &stash, nil); err != nil {
			return err
		}
	}

	fmt.Printf("seeded %d months of records into %s\n", months, dbPath)
	return nil
}

func seedCategories(ctx context.Context, st *store.Store) (map[string]int64, error) {
	type node struct {
		name     string
		color    string
		nature   ledger.Nature
		children map[string]ledger.Nature
	}
	tree := []node{
		{"Income", "bright_green", ledger.NatureMust, map[string]ledger.Nature{"Salary": ledger.NatureMust}},
		{"Food", "red", ledger.NatureMust, map[string]ledger.Nature{
			"Groceries": ledger.NatureMust, "Restaurants": ledger.NatureWant, "Takeout": ledger.NatureWant}},
		{"Transport", "yellow", ledger.NatureNeed, map[string]ledger.Nature{
			"Fuel": ledger.NatureNeed, "Public Transport": ledger.NatureNeed}},
		{"Subscriptions", "blue", ledger.NatureNeed, map[string]ledger.Nature{"Streaming Services": ledger.NatureWant}},
		{"Bills", "cyan", ledger.NatureMust, map[string]ledger.Nature{
			"Rent/Mortgage": ledger.NatureMust, "Utilities": ledger.NatureMust}},
		{"Shopping", "magenta", ledger.NatureWant, map[string]ledger.Nature{"Clothes": ledger.NatureNeed}},
	}

	ids := map[string]int64{}
	for _, n := range tree {
		parent := ledger.Category{Name: n.name, Color: n.color, Nature: n.nature}
		if err := st.CreateCategory(ctx, &parent); err != nil {
			return nil, err
		}
		ids[n.name] = parent.ID
		for name, nature := range n.children {
			c := ledger.Category{Name: name, Color: n.color, Nature: nature, ParentID: &parent.ID}
			if err := st.CreateCategory(ctx, &c); err != nil {
				return nil, err
			}
			ids[name] = c.ID
		}
	}
	return ids, nil
}

func ptrOf[T any](v T) *T {
	return &v
}
