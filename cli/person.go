package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/pennyledger/penny/ledger"
	"github.com/pennyledger/penny/output"
)

type PersonCmd struct {
	List PersonListCmd `cmd:"" default:"1" help:"List persons."`
	Add  PersonAddCmd  `cmd:"" help:"Add a person."`
}

type PersonListCmd struct{}

func (cmd *PersonListCmd) Run(ctx *kong.Context, globals *Globals) error {
	a, err := globals.open()
	if err != nil {
		return err
	}
	defer a.Close()

	persons, err := a.store.Persons(context.Background())
	if err != nil {
		return err
	}
	if len(persons) == 0 {
		printInfof(ctx.Stdout, "No persons yet. Add one with %s", pathStyle.Render("penny person add"))
		return nil
	}

	t := newTable("ID", "NAME").alignRight(0)
	for _, p := range persons {
		t.addRow(fmt.Sprintf("%d", p.ID), p.Name)
	}
	t.render(ctx.Stdout, output.NewStyles(ctx.Stdout))

	return nil
}

type PersonAddCmd struct {
	Name string `help:"Person name." arg:""`
}

func (cmd *PersonAddCmd) Run(ctx *kong.Context, globals *Globals) error {
	a, err := globals.open()
	if err != nil {
		return err
	}
	defer a.Close()

	person := ledger.Person{Name: cmd.Name}
	if err := a.store.CreatePerson(context.Background(), &person); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Added person %q (id %d)", person.Name, person.ID))
	return nil
}
