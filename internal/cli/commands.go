// Package cli holds the kong commands of the budget binary.
package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/carson-networks/budget-tracker/internal/ledger"
)

var (
	Version   = ""
	CommitSHA = ""
)

const defaultServer = "http://localhost:8385"

// Globals defines global flags available to all commands.
type Globals struct {
	LogLevel string `help:"Log level. Overrides LOG_LEVEL for serve; other commands default to warn."`
}

func (g *Globals) logLevel() string {
	if g.LogLevel == "" {
		return "warn"
	}
	return g.LogLevel
}

type Commands struct {
	Globals

	Serve  ServeCmd  `cmd:"" help:"Serve the CSV persistence API."`
	Report ReportCmd `cmd:"" help:"Print transactions, totals and the category report of a CSV file."`
	Add    AddCmd    `cmd:"" help:"Add a transaction through a running server."`
	Delete DeleteCmd `cmd:"" help:"Delete a transaction through a running server."`
	Path   PathCmd   `cmd:"" help:"Point a running server at a CSV file."`
}

// Vars are the interpolation variables the command tags refer to.
func Vars() kong.Vars {
	return kong.Vars{
		"server":     defaultServer,
		"categories": strings.Join(ledger.Categories(), ","),
		"version":    BuildVersion(),
	}
}

func BuildVersion() string {
	version := Version
	if version == "" {
		version = "dev"
	}
	if CommitSHA == "" {
		return version
	}
	return fmt.Sprintf("%s (%s)", version, CommitSHA)
}
