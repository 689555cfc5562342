package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/carson-networks/budget-tracker/internal/client"
	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/logging"
	"github.com/carson-networks/budget-tracker/internal/service"
)

type AddCmd struct {
	Server      string `help:"Base URL of the server." default:"${server}" env:"BUDGET_SERVER"`
	Date        string `help:"Date as YYYY-MM-DD. Defaults to today." short:"d"`
	Description string `help:"Description. Defaults to the category name." short:"D"`
	Category    string `help:"Category name." required:"" short:"c" enum:"${categories}"`
	Amount      string `help:"Amount. Expense categories are stored negative." required:"" short:"a"`
}

func (cmd *AddCmd) form() (service.AddForm, error) {
	index, err := ledger.CategoryIndex(cmd.Category)
	if err != nil {
		return service.AddForm{}, fmt.Errorf("%w: %s", err, cmd.Category)
	}
	return service.AddForm{
		Date:          cmd.Date,
		Description:   cmd.Description,
		CategoryIndex: index,
		Amount:        cmd.Amount,
	}, nil
}

func (cmd *AddCmd) Run(ctx *kong.Context, globals *Globals) error {
	logger := logging.SetupLogging(globals.logLevel())
	logger.Out = ctx.Stderr

	form, err := cmd.form()
	if err != nil {
		return err
	}

	c := service.NewController(client.New(cmd.Server), logger)
	t, err := c.Add(context.Background(), form)
	if err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Added %s", t))
	return nil
}
