package main

import (
	"context"
	"os"

	"budget/internal/backend"
	"budget/internal/cli"
	"budget/internal/log"
	"budget/internal/services"
)

func main() {
	cli.LoadEnvFile()

	bootLogger := cli.SetupLogger(nil)
	cfg := cli.LoadAndValidateConfig(bootLogger)
	logger := cli.SetupLogger(cfg)

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", log.FieldError, err)
		os.Exit(1)
	}

	ctx := context.Background()
	result, err := backend.NewFactory(logger).CreateBackend(ctx, backendCfg)
	if err != nil {
		logger.Error("Failed to initialize expense store",
			log.FieldError, err,
			log.FieldBackend, backendCfg.Type.String())
		os.Exit(1)
	}
	if result.Cleanup != nil {
		defer func() {
			if err := result.Cleanup(); err != nil {
				logger.Error("Store cleanup failed", log.FieldError, err)
			}
		}()
	}

	svc := services.NewExpenseService(result.Store, logger.WithComponent(log.ComponentExpense), nil)
	menu := cli.NewMenu(svc, os.Stdin, os.Stdout, logger.WithComponent(log.ComponentCLI))

	logger.Debug("Starting budget tracker", log.FieldBackend, backendCfg.Type.String())
	if err := menu.Run(ctx); err != nil {
		logger.Error("Session ended with error", log.FieldError, err)
		os.Exit(1)
	}
}
