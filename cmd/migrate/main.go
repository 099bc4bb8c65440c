package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"foodgram/config"
	logs "foodgram/internal/infra/log"
	"foodgram/internal/infra/migrations"
)

// Supported commands: up, down, status, version, reset.
func main() {
	command := flag.String("command", string(migrations.CommandUp), "Migration command (up, down, status, version, reset)")
	dsn := flag.String("dsn", "", "PostgreSQL DSN; defaults to migrations.dsn from the config")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, migrations.Command(*command), *dsn); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command migrations.Command, dsn string) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	if dsn == "" && cfg.Migrations != nil {
		dsn = cfg.Migrations.DSN
	}

	db, err := migrations.Open(ctx, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Info("Running migrations", slog.String("command", string(command)))

	if err := migrations.Run(ctx, db, command); err != nil {
		return err
	}

	logger.Info("Migrations finished", slog.String("command", string(command)))

	return nil
}
