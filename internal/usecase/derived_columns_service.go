package usecase

import (
	"context"
	"fmt"

	"github.com/fightlab/fightdata-pipeline/internal/domain/fightresult"
	"github.com/fightlab/fightdata-pipeline/internal/domain/storage"
	"github.com/fightlab/fightdata-pipeline/internal/normalize"
	"github.com/fightlab/fightdata-pipeline/internal/platform/logging"
)

// DerivedColumnsService populates the categorical columns derived from
// raw bout descriptions: the canonical weight class, the title and
// interim flags, and the championship-rounds flag.
type DerivedColumnsService struct {
	logger *logging.Logger
}

func NewDerivedColumnsService(logger *logging.Logger) *DerivedColumnsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DerivedColumnsService{logger: logger}
}

func (s *DerivedColumnsService) Name() string { return "derived_columns" }

func (s *DerivedColumnsService) Run(ctx context.Context, repos storage.Repos) (Counters, error) {
	counters := Counters{}

	results, err := repos.Results.ListUnderived(ctx)
	if err != nil {
		return counters, fmt.Errorf("list underived results: %w", err)
	}

	for _, res := range results {
		derived := derivedFrom(res)
		if derived == (fightresult.Derived{}) {
			counters.add("results_underivable", 1)
			continue
		}
		if err := repos.Results.ApplyDerived(ctx, res.ID, derived); err != nil {
			return counters, err
		}
		counters.add("results_derived", 1)
	}

	return counters, nil
}

func derivedFrom(res fightresult.Result) fightresult.Derived {
	var derived fightresult.Derived
	if res.WeightClassText == nil {
		return derived
	}
	raw := *res.WeightClassText

	if res.WeightClass == nil {
		if wc, ok := normalize.WeightClass(raw); ok {
			derived.WeightClass = &wc
		}
	}
	if res.IsTitleFight == nil {
		title := normalize.IsTitleFight(raw)
		derived.IsTitleFight = &title
	}
	if res.IsInterimTitle == nil {
		interim := normalize.IsInterimTitle(raw)
		derived.IsInterimTitle = &interim
	}
	if res.IsChampionshipRounds == nil {
		champ := false
		if res.TimeFormatText != nil {
			champ = normalize.IsChampionshipRounds(*res.TimeFormatText)
		}
		derived.IsChampionshipRounds = &champ
	}
	return derived
}
