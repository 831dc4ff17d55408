package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/vidwave/internal/buildinfo"
	"github.com/dmitrijs2005/vidwave/internal/client/cli"
	"github.com/dmitrijs2005/vidwave/internal/client/config"
	"github.com/dmitrijs2005/vidwave/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		// A second interrupt terminates immediately.
		stop()
	}()

	cfg := config.LoadConfig()

	logger, err := logging.NewConsoleLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level: %v\n", err)
		os.Exit(1)
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err.Error())
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "exited with error", "error", err.Error())
		os.Exit(1)
	}
}
