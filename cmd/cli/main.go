package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/shopkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/shopkeeper/internal/client/cli"
	"github.com/dmitrijs2005/shopkeeper/internal/client/config"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	log, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		logging.NewConsoleLogger(os.Stderr, cfg.LogLevel).Error(ctx, "failed to open log file", "path", cfg.LogFile, "error", err)
		os.Exit(1)
	}
	defer closeLog()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "failed to start", "error", err)
		closeLog()
		stop()
		os.Exit(1)
	}

	app.Run(ctx)

}

// newLogger logs to the console unless a log file is configured, in which
// case records are appended to it as JSON lines.
func newLogger(cfg *config.Config, console io.Writer) (logging.Logger, func(), error) {
	if cfg.LogFile == "" {
		return logging.NewConsoleLogger(console, cfg.LogLevel), func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return logging.NewJSONLogger(f, cfg.LogLevel), func() { _ = f.Close() }, nil
}
