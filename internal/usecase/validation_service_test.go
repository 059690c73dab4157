package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/fightlab/fightdata-pipeline/internal/domain/event"
	"github.com/fightlab/fightdata-pipeline/internal/domain/fight"
	"github.com/fightlab/fightdata-pipeline/internal/domain/fighter"
	"github.com/fightlab/fightdata-pipeline/internal/infrastructure/repository/memory"
	"github.com/fightlab/fightdata-pipeline/internal/platform/logging"
)

func TestValidationService_PassesAfterFullRun(t *testing.T) {
	store := memory.SeededStore()
	if _, err := newTestPipeline(store).RunAll(context.Background()); err != nil {
		t.Fatalf("run all failed: %v", err)
	}

	svc := NewValidationService(DefaultValidationThresholds(), logging.NewNop())
	report, err := svc.Validate(context.Background(), store.View())
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}

	if !report.Passed {
		for _, c := range report.Checks {
			if !c.Passed {
				t.Logf("failed check %s: %s", c.Name, c.Detail)
			}
		}
		t.Fatalf("validation must pass after a clean-data run")
	}
	if len(report.Checks) == 0 {
		t.Fatalf("no checks produced")
	}
}

func TestValidationService_FailsOnUnprocessedData(t *testing.T) {
	store := memory.SeededStore()

	svc := NewValidationService(DefaultValidationThresholds(), logging.NewNop())
	report, err := svc.Validate(context.Background(), store.View())
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}

	if report.Passed {
		t.Fatalf("validation must fail before the pipeline runs")
	}

	var sawCoverageFailure, sawSentinelFailure bool
	for _, c := range report.Checks {
		if c.Passed {
			continue
		}
		if strings.HasPrefix(c.Name, "fight_fighter_") {
			sawCoverageFailure = true
		}
		if strings.HasPrefix(c.Name, "sentinel_residue:") {
			sawSentinelFailure = true
		}
	}
	if !sawCoverageFailure {
		t.Fatalf("expected a fight reference coverage failure")
	}
	if !sawSentinelFailure {
		t.Fatalf("expected a sentinel residue failure")
	}
}

func TestValidationService_FlagsSelfPairedFight(t *testing.T) {
	ten := int64(10)
	store := memory.NewSeededStore(
		[]event.Event{{ID: 1, Name: "UFC 5", RawDate: "Apr 7, 1995"}},
		[]fighter.Fighter{{ID: 10, FirstName: "Bruno", LastName: "Silva"}},
		[]fight.Fight{{ID: 1, EventID: 1, Bout: "Bruno Silva vs. Bruno Silva", FighterAID: &ten, FighterBID: &ten}},
		nil, nil,
	)

	svc := NewValidationService(DefaultValidationThresholds(), logging.NewNop())
	report, err := svc.Validate(context.Background(), store.View())
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}

	found := false
	for _, c := range report.Checks {
		if c.Name == "fight_fighter_refs_distinct" {
			found = true
			if c.Passed {
				t.Fatalf("distinct refs check must fail: %s", c.Detail)
			}
		}
	}
	if !found {
		t.Fatalf("distinct refs check missing from report")
	}
}

func TestValidationService_RowCountFloor(t *testing.T) {
	store := memory.SeededStore()
	if _, err := newTestPipeline(store).RunAll(context.Background()); err != nil {
		t.Fatalf("run all failed: %v", err)
	}

	thresholds := DefaultValidationThresholds()
	thresholds.MinRowCounts["ufc_fight_stats"] = 1000

	svc := NewValidationService(thresholds, logging.NewNop())
	report, err := svc.Validate(context.Background(), store.View())
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if report.Passed {
		t.Fatalf("validation must fail when a row count floor is missed")
	}

	for _, c := range report.Checks {
		if c.Name == "row_count:ufc_fight_stats" && c.Passed {
			t.Fatalf("row count check must fail: %s", c.Detail)
		}
	}
}
