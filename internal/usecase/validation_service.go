package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/sourcegraph/conc/pool"

	"github.com/fightlab/fightdata-pipeline/internal/domain/audit"
	"github.com/fightlab/fightdata-pipeline/internal/domain/storage"
	"github.com/fightlab/fightdata-pipeline/internal/platform/logging"
)

// ValidationThresholds are the quality gates a finished run must clear.
type ValidationThresholds struct {
	// MinRefCoveragePct is the minimum reference-column population,
	// in percent, for fights, results and stats.
	MinRefCoveragePct float64 `validate:"gte=0,lte=100"`
	// MinTypedCoveragePct is the minimum typed-column population over
	// rows whose raw text is present.
	MinTypedCoveragePct float64 `validate:"gte=0,lte=100"`
	// MinRowCounts guards against accidental truncation: validation
	// fails when a table falls below its expected floor.
	MinRowCounts map[string]int64
}

func DefaultValidationThresholds() ValidationThresholds {
	return ValidationThresholds{
		MinRefCoveragePct:   99.5,
		MinTypedCoveragePct: 99.0,
		MinRowCounts: map[string]int64{
			"ufc_events":        1,
			"ufc_fighters":      1,
			"ufc_fights":        1,
			"ufc_fight_results": 1,
			"ufc_fight_stats":   1,
		},
	}
}

// Check is one validation outcome.
type Check struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// ValidationReport aggregates all checks for one run.
type ValidationReport struct {
	Passed bool    `json:"passed"`
	Checks []Check `json:"checks"`
}

// ValidationService measures post-run data quality against thresholds.
// The checks are read-only and independent, so they fan out concurrently.
type ValidationService struct {
	thresholds ValidationThresholds
	logger     *logging.Logger
}

func NewValidationService(thresholds ValidationThresholds, logger *logging.Logger) *ValidationService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ValidationService{thresholds: thresholds, logger: logger}
}

func (s *ValidationService) Validate(ctx context.Context, repos storage.Repos) (ValidationReport, error) {
	p := pool.NewWithResults[[]Check]().WithContext(ctx)

	p.Go(func(ctx context.Context) ([]Check, error) {
		fighterA, fighterB, err := repos.Audit.FightRefCoverage(ctx)
		if err != nil {
			return nil, err
		}
		return []Check{
			s.coverageCheck("fight_fighter_a_coverage", fighterA, s.thresholds.MinRefCoveragePct),
			s.coverageCheck("fight_fighter_b_coverage", fighterB, s.thresholds.MinRefCoveragePct),
		}, nil
	})

	p.Go(func(ctx context.Context) ([]Check, error) {
		fighter, opponent, err := repos.Audit.ResultRefCoverage(ctx)
		if err != nil {
			return nil, err
		}
		return []Check{
			s.coverageCheck("result_fighter_coverage", fighter, s.thresholds.MinRefCoveragePct),
			s.coverageCheck("result_opponent_coverage", opponent, s.thresholds.MinRefCoveragePct),
		}, nil
	})

	p.Go(func(ctx context.Context) ([]Check, error) {
		fighter, fight, err := repos.Audit.StatRefCoverage(ctx)
		if err != nil {
			return nil, err
		}
		return []Check{
			s.coverageCheck("stat_fighter_coverage", fighter, s.thresholds.MinRefCoveragePct),
			s.coverageCheck("stat_fight_coverage", fight, s.thresholds.MinRefCoveragePct),
		}, nil
	})

	p.Go(func(ctx context.Context) ([]Check, error) {
		coverage, err := repos.Audit.EventDateCoverage(ctx)
		if err != nil {
			return nil, err
		}
		return []Check{s.coverageCheck("event_date_coverage", coverage, s.thresholds.MinRefCoveragePct)}, nil
	})

	p.Go(func(ctx context.Context) ([]Check, error) {
		count, err := repos.Audit.SelfPairedFights(ctx)
		if err != nil {
			return nil, err
		}
		return []Check{{
			Name:   "fight_fighter_refs_distinct",
			Passed: count == 0,
			Detail: fmt.Sprintf("%d fights reference one fighter on both sides", count),
		}}, nil
	})

	p.Go(func(ctx context.Context) ([]Check, error) {
		residue, err := repos.Audit.SentinelResidue(ctx)
		if err != nil {
			return nil, err
		}
		checks := make([]Check, 0, len(residue))
		for column, count := range residue {
			checks = append(checks, Check{
				Name:   "sentinel_residue:" + column,
				Passed: count == 0,
				Detail: fmt.Sprintf("%d sentinel values remain", count),
			})
		}
		return checks, nil
	})

	p.Go(func(ctx context.Context) ([]Check, error) {
		count, err := repos.Audit.UntrimmedMethods(ctx)
		if err != nil {
			return nil, err
		}
		return []Check{{
			Name:   "methods_trimmed",
			Passed: count == 0,
			Detail: fmt.Sprintf("%d method values carry edge whitespace", count),
		}}, nil
	})

	p.Go(func(ctx context.Context) ([]Check, error) {
		values, err := repos.Audit.NonCanonicalWeightClasses(ctx)
		if err != nil {
			return nil, err
		}
		return []Check{{
			Name:   "weight_classes_canonical",
			Passed: len(values) == 0,
			Detail: fmt.Sprintf("non-canonical values: %v", values),
		}}, nil
	})

	p.Go(func(ctx context.Context) ([]Check, error) {
		count, err := repos.Audit.MissingTitleFlags(ctx)
		if err != nil {
			return nil, err
		}
		return []Check{{
			Name:   "title_flags_populated",
			Passed: count == 0,
			Detail: fmt.Sprintf("%d rows missing title flag", count),
		}}, nil
	})

	p.Go(func(ctx context.Context) ([]Check, error) {
		coverage, err := repos.Audit.TypedCoverage(ctx)
		if err != nil {
			return nil, err
		}
		checks := make([]Check, 0, len(coverage))
		for column, c := range coverage {
			checks = append(checks, s.coverageCheck("typed_coverage:"+column, c, s.thresholds.MinTypedCoveragePct))
		}
		return checks, nil
	})

	p.Go(func(ctx context.Context) ([]Check, error) {
		counts, err := repos.Audit.RowCounts(ctx)
		if err != nil {
			return nil, err
		}
		checks := make([]Check, 0, len(s.thresholds.MinRowCounts))
		for table, minimum := range s.thresholds.MinRowCounts {
			count := counts[table]
			checks = append(checks, Check{
				Name:   "row_count:" + table,
				Passed: count >= minimum,
				Detail: fmt.Sprintf("%d rows, minimum %d", count, minimum),
			})
		}
		return checks, nil
	})

	groups, err := p.Wait()
	if err != nil {
		return ValidationReport{}, fmt.Errorf("run validation checks: %w", err)
	}

	report := ValidationReport{Passed: true}
	for _, group := range groups {
		report.Checks = append(report.Checks, group...)
	}
	sort.Slice(report.Checks, func(i, j int) bool {
		return report.Checks[i].Name < report.Checks[j].Name
	})

	for _, check := range report.Checks {
		if !check.Passed {
			report.Passed = false
			s.logger.Warn("validation check failed", "check", check.Name, "detail", check.Detail)
		}
	}
	return report, nil
}

func (s *ValidationService) coverageCheck(name string, c audit.Coverage, minPct float64) Check {
	// An empty scope passes: nothing was expected, nothing is missing.
	passed := c.Total == 0 || c.Pct() >= minPct
	return Check{
		Name:   name,
		Passed: passed,
		Detail: fmt.Sprintf("%d/%d populated (%.2f%%), minimum %.2f%%", c.Populated, c.Total, c.Pct(), minPct),
	}
}
