package app

import (
	"context"
	"os"
	"path/filepath"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/fightlab/fightdata-pipeline/internal/config"
	"github.com/fightlab/fightdata-pipeline/internal/infrastructure/repository/postgres"
	"github.com/fightlab/fightdata-pipeline/internal/platform/logging"
	"github.com/fightlab/fightdata-pipeline/internal/resolve"
	"github.com/fightlab/fightdata-pipeline/internal/usecase"
)

// App bundles the wired pipeline services for the CLI.
type App struct {
	Pipeline   *usecase.PipelineService
	Validation *usecase.ValidationService
	Reports    *usecase.ReportWriter
	Store      *postgres.Store
	Logger     *logging.Logger

	db         *sqlx.DB
	unresolved *resolve.UnresolvedLog
}

// New connects to the database and assembles the phase services.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	db, err := postgres.Open(ctx, cfg.DBURL)
	if err != nil {
		return nil, crerr.Wrap(err, "connect database")
	}
	logger.Info("connected to database", "db", dbNameFromURL(cfg.DBURL))

	if dir := filepath.Dir(cfg.UnresolvedLogPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			_ = db.Close()
			return nil, crerr.Wrap(err, "create unresolved log directory")
		}
	}
	unresolved, err := resolve.OpenUnresolvedLog(cfg.UnresolvedLogPath)
	if err != nil {
		_ = db.Close()
		return nil, crerr.Wrap(err, "open unresolved log")
	}

	store := postgres.NewStore(db)
	pipeline := usecase.NewPipelineService(store, logger,
		usecase.NewFKResolutionService(cfg.MatchThresholds(), cfg.Workers, unresolved, logger),
		usecase.NewQualityCleanupService(logger),
		usecase.NewTypeParsingService(logger),
		usecase.NewDerivedColumnsService(logger),
	)

	thresholds := usecase.DefaultValidationThresholds()
	thresholds.MinRefCoveragePct = cfg.MinRefCoveragePct
	thresholds.MinTypedCoveragePct = cfg.MinTypedCoveragePct
	for table := range thresholds.MinRowCounts {
		thresholds.MinRowCounts[table] = cfg.MinTableRows
	}

	return &App{
		Pipeline:   pipeline,
		Validation: usecase.NewValidationService(thresholds, logger),
		Reports:    usecase.NewReportWriter(cfg.ReportsDir),
		Store:      store,
		Logger:     logger,
		db:         db,
		unresolved: unresolved,
	}, nil
}

func (a *App) Close() error {
	var firstErr error
	if a.unresolved != nil {
		if err := a.unresolved.Close(); err != nil {
			firstErr = err
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
