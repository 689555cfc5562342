package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/carson-networks/budget-tracker/internal/client"
)

type PathCmd struct {
	Server string `help:"Base URL of the server." default:"${server}" env:"BUDGET_SERVER"`
	Path   string `arg:"" help:"CSV file on the server's filesystem."`
}

func (cmd *PathCmd) Run(ctx *kong.Context) error {
	resolved, err := client.New(cmd.Server).SetPath(context.Background(), cmd.Path)
	if err != nil {
		return err
	}
	printSuccess(ctx.Stdout, "Server now uses "+pathStyle.Render(resolved))
	return nil
}
