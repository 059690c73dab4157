package usecase

import (
	"context"

	"github.com/fightlab/fightdata-pipeline/internal/domain/storage"
	"github.com/fightlab/fightdata-pipeline/internal/platform/logging"
)

// QualityCleanupService replaces the source's "no data" placeholders with
// NULL and strips incidental whitespace, so downstream parsing and
// aggregation never see sentinel text.
type QualityCleanupService struct {
	logger *logging.Logger
}

func NewQualityCleanupService(logger *logging.Logger) *QualityCleanupService {
	if logger == nil {
		logger = logging.Default()
	}
	return &QualityCleanupService{logger: logger}
}

func (s *QualityCleanupService) Name() string { return "quality_cleanup" }

func (s *QualityCleanupService) Run(ctx context.Context, repos storage.Repos) (Counters, error) {
	counters := Counters{}

	cleared, err := repos.Fighters.ClearProfileSentinels(ctx)
	if err != nil {
		return counters, err
	}
	counters.add("fighter_sentinels_cleared", cleared)

	cleared, err = repos.Stats.ClearSentinels(ctx)
	if err != nil {
		return counters, err
	}
	counters.add("stat_sentinels_cleared", cleared)

	trimmed, err := repos.Results.TrimMethodNoise(ctx)
	if err != nil {
		return counters, err
	}
	counters.add("methods_trimmed", trimmed)

	return counters, nil
}
