package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/fightlab/fightdata-pipeline/internal/app"
	"github.com/fightlab/fightdata-pipeline/internal/config"
	"github.com/fightlab/fightdata-pipeline/internal/platform/logging"
	"github.com/fightlab/fightdata-pipeline/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()
	logging.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, os.Args[1:]); err != nil {
		if errors.Is(err, errBadUsage) {
			printUsage()
			os.Exit(2)
		}
		logger.Error("pipeline failed", "error", err)
		os.Exit(1)
	}
}

var errBadUsage = errors.New("bad usage")

func run(ctx context.Context, cfg config.Config, logger *logging.Logger, args []string) error {
	cmd := "run"
	if len(args) > 0 {
		cmd = strings.ToLower(strings.TrimSpace(args[0]))
	}

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := a.Close(); closeErr != nil {
			logger.Warn("close app", "error", closeErr)
		}
	}()

	switch cmd {
	case "run":
		return runAll(ctx, a)
	case "phase":
		if len(args) < 2 {
			return fmt.Errorf("%w: phase requires a name or 1-based index", errBadUsage)
		}
		return runPhase(ctx, a, args[1])
	case "preview":
		return preview(ctx, a)
	default:
		return fmt.Errorf("%w: unknown command %q", errBadUsage, cmd)
	}
}

// runAll executes every phase in order, validates the result, and
// writes the run report even when a phase or validation fails.
func runAll(ctx context.Context, a *app.App) error {
	report := usecase.NewRunReport("run")

	before, err := a.Pipeline.Preview(ctx)
	if err != nil {
		return err
	}
	report.Preview = &before

	phases, runErr := a.Pipeline.RunAll(ctx)
	report.Phases = phases

	if runErr == nil {
		validation, vErr := a.Validation.Validate(ctx, a.Store.View())
		if vErr != nil {
			runErr = vErr
		} else {
			report.Validation = &validation
			if !validation.Passed {
				runErr = usecase.ErrValidationFailed
			}
		}
	}

	return finishReport(a, report, runErr)
}

func runPhase(ctx context.Context, a *app.App, selector string) error {
	report := usecase.NewRunReport("phase:" + selector)

	phase, runErr := a.Pipeline.RunPhase(ctx, selector)
	if runErr == nil || phase.Phase != "" {
		report.Phases = []usecase.PhaseReport{phase}
	}

	return finishReport(a, report, runErr)
}

func preview(ctx context.Context, a *app.App) error {
	report := usecase.NewRunReport("preview")

	counts, err := a.Pipeline.Preview(ctx)
	if err != nil {
		return err
	}
	report.Preview = &counts

	return finishReport(a, report, nil)
}

func finishReport(a *app.App, report usecase.RunReport, runErr error) error {
	report.Finish(runErr)

	path, writeErr := a.Reports.Write(report)
	if writeErr != nil {
		if runErr != nil {
			a.Logger.Error("write run report", "error", writeErr)
			return runErr
		}
		return writeErr
	}

	a.Logger.Info("run report written", "path", path, "run_id", report.RunID)
	return runErr
}

func printUsage() {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s [run|phase <name|index>|preview]\n", name)
	fmt.Fprintln(os.Stderr, "examples:")
	fmt.Fprintf(os.Stderr, "  %s run\n", name)
	fmt.Fprintf(os.Stderr, "  %s phase fk_resolution\n", name)
	fmt.Fprintf(os.Stderr, "  %s phase 3\n", name)
	fmt.Fprintf(os.Stderr, "  %s preview\n", name)
}
