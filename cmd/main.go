package main

import (
	"context"
	"errors"
	"os"

	"github.com/trainpartner/tpx/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("failed to load config, using defaults", "error", err)
		}
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "tpx",
		Usage:    "Training Partner on the command line",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrNotAuthenticated) {
			logger.Error("not logged in, run 'tpx login' first")
			os.Exit(1)
		}
		if errors.Is(err, shared.ErrBadCredentials) || errors.Is(err, shared.ErrValidation) {
			logger.Error(err.Error())
			os.Exit(1)
		}
		logger.Fatalf("application error: %v", err)
	}
}
