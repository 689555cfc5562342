package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/client"
	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/logging"
	"github.com/carson-networks/budget-tracker/internal/service"
	"github.com/carson-networks/budget-tracker/internal/view"
)

type DeleteCmd struct {
	Server      string `help:"Base URL of the server." default:"${server}" env:"BUDGET_SERVER"`
	Yes         bool   `help:"Delete without asking." short:"y"`
	Date        string `arg:"" help:"Date of the transaction."`
	Description string `arg:"" help:"Description of the transaction."`
	Category    string `arg:"" help:"Category of the transaction."`
	Amount      string `arg:"" help:"Amount of the transaction."`
}

// target is the transaction the arguments describe. The amount is compared
// the way it is stored, with two decimals.
func (cmd *DeleteCmd) target() ledger.Transaction {
	return ledger.Transaction{
		Date:        cmd.Date,
		Description: cmd.Description,
		Category:    cmd.Category,
		Amount:      twoDecimals(cmd.Amount),
	}
}

func (cmd *DeleteCmd) confirmer() service.Confirmer {
	if cmd.Yes {
		return func(ledger.Transaction) (bool, error) { return true, nil }
	}
	return confirmDelete
}

func (cmd *DeleteCmd) Run(ctx *kong.Context, globals *Globals) error {
	logger := logging.SetupLogging(globals.logLevel())
	logger.Out = ctx.Stderr

	runCtx := context.Background()
	c := service.NewController(client.New(cmd.Server), logger)
	if err := c.Refresh(runCtx); err != nil {
		return err
	}

	target := cmd.target()
	found, ok := findTransaction(c.View(), target)
	if !ok {
		return fmt.Errorf("no transaction matches %s", target)
	}

	deleted, err := c.Delete(runCtx, found.ID, cmd.confirmer())
	if err != nil {
		return err
	}
	if !deleted {
		printInfof(ctx.Stdout, "Nothing deleted")
		return nil
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Deleted %s", found))
	return nil
}

// findTransaction returns the first row equal to target. Amounts are compared
// with two decimals on both sides, so a stored "-5" matches "-5.00".
func findTransaction(m view.Model, target ledger.Transaction) (ledger.Transaction, bool) {
	target.Amount = twoDecimals(target.Amount)
	for _, t := range m.Rows {
		candidate := t
		candidate.Amount = twoDecimals(t.Amount)
		if candidate.Equal(target) {
			return t, true
		}
	}
	return ledger.Transaction{}, false
}

func twoDecimals(amount string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return amount
	}
	return d.StringFixed(2)
}
