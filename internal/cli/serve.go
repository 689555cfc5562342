package cli

import (
	"context"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/alecthomas/kong"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/budget-tracker/api"
	"github.com/carson-networks/budget-tracker/internal/config"
	"github.com/carson-networks/budget-tracker/internal/logging"
	"github.com/carson-networks/budget-tracker/internal/operator"
	"github.com/carson-networks/budget-tracker/internal/service"
	"github.com/carson-networks/budget-tracker/internal/storage"
)

type ServeCmd struct {
	Port    int    `help:"Port to listen on. Overrides PORT."`
	CSV     string `help:"CSV file to persist to. Overrides CSV_PATH." type:"path"`
	Workers int    `help:"Operator workers. Overrides OPERATOR_WORKERS."`
}

// applyOverrides lets flags win over the environment.
func (cmd *ServeCmd) applyOverrides(env *config.Config, globals *Globals) {
	if cmd.Port != 0 {
		env.Port = strconv.Itoa(cmd.Port)
	}
	if cmd.CSV != "" {
		env.CSVPath = cmd.CSV
	}
	if cmd.Workers != 0 {
		env.OperatorWorkers = cmd.Workers
	}
	if globals.LogLevel != "" {
		env.LogLevel = globals.LogLevel
	}
}

func (cmd *ServeCmd) Run(ctx *kong.Context, globals *Globals) error {
	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return err
	}
	cmd.applyOverrides(env, globals)
	if err := env.Validate(); err != nil {
		return err
	}

	logger := logging.SetupLogging(env.LogLevel)
	logger.Info("budget-tracker starting")

	csvStorage, err := storage.NewStorage(env)
	if err != nil {
		logger.WithError(err).Error("storage.NewStorage")
		return err
	}
	if path := csvStorage.Path(); path != "" {
		printInfof(ctx.Stdout, "Serving CSV: %s", pathStyle.Render(path))
	}

	op := operator.NewOperatorDelegator(csvStorage, env.OperatorWorkers, logger)
	op.Start()

	httpRest := api.Rest{
		Logger:    logger,
		Port:      env.Port,
		Storage:   csvStorage,
		Persister: service.NewLocalPersister(op, csvStorage),
	}

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		return httpRest.Serve(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("budget-tracker stopping")
		op.Stop()
		return nil
	})
	return g.Wait()
}
