package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-tracker/internal/config"
	"github.com/carson-networks/budget-tracker/internal/logging"
	"github.com/carson-networks/budget-tracker/internal/operator"
	"github.com/carson-networks/budget-tracker/internal/operator/actions"
	"github.com/carson-networks/budget-tracker/internal/storage"
)

// Brings an existing CSV_PATH file in line with what the server writes:
// two-decimal amounts and negative expenses.
func main() {
	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}
	logger := logging.SetupLogging(env.LogLevel)

	if env.CSVPath == "" {
		logger.Fatal("CSV_PATH is not set")
		return
	}

	csvStorage, err := storage.NewStorage(env)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}

	ctx := context.Background()
	before, err := csvStorage.Read(ctx)
	if err != nil {
		logger.WithError(err).Fatal("Storage.Read.preMigration")
		return
	}

	op := operator.NewOperatorDelegator(csvStorage, 1, logger)
	op.Start()
	defer op.Stop()

	action := &actions.NormalizeTransactions{}
	if err := op.Process(ctx, action); err != nil {
		logger.WithError(err).Error("NormalizeTransactions")
		return
	}

	logger.WithFields(logrus.Fields{
		"path":         csvStorage.Path(),
		"transactions": len(before),
		"changed":      action.Changed,
	}).Info("Migration status")
}
