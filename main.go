package main

import (
	"github.com/alecthomas/kong"

	"github.com/carson-networks/budget-tracker/internal/cli"
)

var app struct {
	Version kong.VersionFlag `help:"Show version information"`
	cli.Commands
}

func main() {
	ctx := kong.Parse(&app,
		cli.Vars(),
		kong.Name("budget"),
		kong.Description("A CSV budget tracker: report on a file, or serve it for edits."),
		kong.UsageOnError(),
		kong.Bind(&app.Globals),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
