package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/logging"
	"github.com/carson-networks/budget-tracker/internal/service"
	"github.com/carson-networks/budget-tracker/internal/storage"
	"github.com/carson-networks/budget-tracker/internal/view"
)

var errReadOnly = errors.New("report is read-only")

type ReportCmd struct {
	File  string   `arg:"" help:"CSV file to report on." type:"existingfile"`
	Month string   `help:"Two-digit month, 00 for all. Defaults to the current month." short:"m"`
	Query string   `help:"Only list rows matching this text." short:"q"`
	Sort  []string `help:"Sort by date, description, category or amount. Each repeat advances the toggle." short:"s"`
	Watch bool     `help:"Render again whenever the file changes." short:"w"`
}

// readOnly is the persister of a report session. Reports never mutate.
type readOnly struct{}

func (readOnly) Add(context.Context, ledger.Transaction) error    { return errReadOnly }
func (readOnly) Delete(context.Context, ledger.Transaction) error { return errReadOnly }
func (readOnly) Fetch(context.Context) ([]ledger.Transaction, error) {
	return nil, errReadOnly
}

// controller replays the flags against a fresh session, in the order a user
// would click through them.
func (cmd *ReportCmd) controller(text string, logger *logrus.Logger) (*service.Controller, error) {
	c := service.NewController(readOnly{}, logger)
	c.LoadCSV(text)
	if cmd.Month != "" {
		c.SelectMonth(cmd.Month)
	}
	for _, name := range cmd.Sort {
		column, err := view.ParseColumn(name)
		if err != nil {
			return nil, err
		}
		c.SortBy(column)
	}
	if cmd.Query != "" {
		c.Search(cmd.Query)
	}
	return c, nil
}

func (cmd *ReportCmd) render(w io.Writer, logger *logrus.Logger) error {
	data, err := os.ReadFile(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	c, err := cmd.controller(string(data), logger)
	if err != nil {
		return err
	}
	renderModel(w, c.State(), c.View())
	return nil
}

func (cmd *ReportCmd) Run(ctx *kong.Context, globals *Globals) error {
	logger := logging.SetupLogging(globals.logLevel())
	logger.Out = ctx.Stderr

	if err := cmd.render(ctx.Stdout, logger); err != nil {
		return err
	}
	if !cmd.Watch {
		return nil
	}

	path, err := filepath.Abs(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}
	printInfof(ctx.Stdout, "Watching %s", pathStyle.Render(path))

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var mu sync.Mutex
	return storage.Watch(runCtx, path, func() {
		mu.Lock()
		defer mu.Unlock()
		_, _ = fmt.Fprintln(ctx.Stdout)
		if err := cmd.render(ctx.Stdout, logger); err != nil {
			printError(ctx.Stderr, err.Error())
		}
	})
}
