package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/proposal/internal/cli"
	"github.com/alexanderramin/proposal/internal/config"
	"github.com/alexanderramin/proposal/internal/db"
	"github.com/alexanderramin/proposal/internal/features"
	"github.com/alexanderramin/proposal/internal/logging"
	"github.com/alexanderramin/proposal/internal/repository"
	"github.com/alexanderramin/proposal/internal/service"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	var cleanups []func()
	defer func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}()

	app := &cli.App{
		Config: &cfg,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	// Wiring waits for flag parsing so --schema-file and friends apply.
	app.Setup = func(app *cli.App) error {
		logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
		if err != nil {
			return fmt.Errorf("configuring logging: %w", err)
		}
		cleanups = append(cleanups, func() { _ = logger.Sync() })

		// Submissions live for the session only.
		database, err := db.OpenDB()
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		cleanups = append(cleanups, func() { database.Close() })

		submissionRepo := repository.NewSQLiteSubmissionRepo(database)
		uow := db.NewSQLiteUnitOfWork(database)

		var encoderOpts []features.EncoderOption
		if cfg.EncodeServices {
			encoderOpts = append(encoderOpts, features.WithMultiValue())
		}

		source := cfg.Source()
		logger.Info("session started",
			zap.String("source", source.Describe()),
			zap.Bool("encode_services", cfg.EncodeServices))

		app.Proposals = service.NewProposalService(source, submissionRepo, uow, encoderOpts,
			service.NewZapUseCaseObserver(logger))
		return nil
	}

	return cli.NewRootCmd(app).Execute()
}
