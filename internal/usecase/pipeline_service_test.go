package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fightlab/fightdata-pipeline/internal/infrastructure/repository/memory"
	"github.com/fightlab/fightdata-pipeline/internal/platform/logging"
	"github.com/fightlab/fightdata-pipeline/internal/resolve"
)

func newTestPipeline(store *memory.Store) *PipelineService {
	logger := logging.NewNop()
	return NewPipelineService(store, logger,
		NewFKResolutionService(resolve.DefaultThresholds(), 4, nil, logger),
		NewQualityCleanupService(logger),
		NewTypeParsingService(logger),
		NewDerivedColumnsService(logger),
	)
}

func TestPipelineService_RunAll_EndToEnd(t *testing.T) {
	store := memory.SeededStore()
	svc := newTestPipeline(store)

	reports, err := svc.RunAll(context.Background())
	if err != nil {
		t.Fatalf("run all failed: %v", err)
	}
	if len(reports) != 4 {
		t.Fatalf("unexpected report count: %d", len(reports))
	}
	for _, r := range reports {
		if r.Status != phaseStatusCompleted {
			t.Fatalf("phase %s not completed: %s", r.Phase, r.Status)
		}
	}

	state, _ := svc.State()
	if state != StateCompleted {
		t.Fatalf("unexpected state: %s", state)
	}

	fights := store.Fights()
	if fights[0].FighterAID == nil || *fights[0].FighterAID != 2 {
		t.Fatalf("fight 1 fighter A not resolved to Poirier: %+v", fights[0])
	}
	if fights[0].FighterBID == nil || *fights[0].FighterBID != 1 {
		t.Fatalf("fight 1 fighter B not resolved to McGregor: %+v", fights[0])
	}
	if fights[2].FighterAID != nil || fights[2].FighterBID != nil {
		t.Fatalf("placeholder bout must stay unresolved: %+v", fights[2])
	}

	results := store.Results()
	res := results[0]
	if res.FighterID == nil || *res.FighterID != 2 || res.OpponentID == nil || *res.OpponentID != 1 {
		t.Fatalf("result 1 winner refs wrong: %+v", res)
	}
	if res.IsWinner == nil || !*res.IsWinner {
		t.Fatalf("result 1 win flag not set")
	}
	if res.Method == nil || *res.Method != "KO/TKO" {
		t.Fatalf("method not trimmed: %v", res.Method)
	}
	if res.FightTimeSeconds == nil || *res.FightTimeSeconds != 152 {
		t.Fatalf("unexpected fight time: %v", res.FightTimeSeconds)
	}
	if res.TotalFightTimeSeconds == nil || *res.TotalFightTimeSeconds != 452 {
		t.Fatalf("unexpected total fight time: %v", res.TotalFightTimeSeconds)
	}
	if res.WeightClass == nil || *res.WeightClass != "Lightweight" {
		t.Fatalf("unexpected weight class: %v", res.WeightClass)
	}
	if res.IsTitleFight == nil || *res.IsTitleFight {
		t.Fatalf("result 1 must not be a title fight")
	}
	if res.IsChampionshipRounds == nil || !*res.IsChampionshipRounds {
		t.Fatalf("result 1 championship rounds flag not set")
	}

	title := results[1]
	if title.WeightClass == nil || *title.WeightClass != "Women's Bantamweight" {
		t.Fatalf("unexpected title weight class: %v", title.WeightClass)
	}
	if title.IsTitleFight == nil || !*title.IsTitleFight {
		t.Fatalf("title fight flag not set")
	}
	if title.TotalFightTimeSeconds == nil || *title.TotalFightTimeSeconds != 1500 {
		t.Fatalf("unexpected five round total time: %v", title.TotalFightTimeSeconds)
	}

	stats := store.Stats()
	if stats[0].FighterID == nil || *stats[0].FighterID != 2 {
		t.Fatalf("stat 1 not resolved exactly: %+v", stats[0])
	}
	if stats[1].FighterID == nil || *stats[1].FighterID != 1 {
		t.Fatalf("abbreviated stat name not resolved to McGregor: %+v", stats[1])
	}
	if stats[1].CtrlText != nil || stats[1].TakedownPct != nil {
		t.Fatalf("stat 2 sentinels not cleared: %+v", stats[1])
	}
	if stats[0].SigStrLanded == nil || *stats[0].SigStrLanded != 17 || *stats[0].SigStrAttempted != 37 {
		t.Fatalf("stat 1 strike pair not parsed: %+v", stats[0])
	}
	if stats[0].CtrlSeconds == nil || *stats[0].CtrlSeconds != 128 {
		t.Fatalf("stat 1 control time not parsed: %v", stats[0].CtrlSeconds)
	}
	if stats[0].HeadLanded == nil || *stats[0].HeadLanded != 9 || *stats[0].HeadAttempted != 26 {
		t.Fatalf("stat 1 head strikes not parsed: %+v", stats[0])
	}
	if stats[0].DistanceLanded == nil || *stats[0].DistanceLanded != 10 || stats[0].GroundAttempted == nil {
		t.Fatalf("stat 1 position strikes not parsed: %+v", stats[0])
	}
	if stats[0].SubAttempts == nil || *stats[0].SubAttempts != 1 {
		t.Fatalf("stat 1 submission attempts not parsed: %v", stats[0].SubAttempts)
	}
	if stats[2].Reversals == nil || *stats[2].Reversals != 1 {
		t.Fatalf("stat 3 reversals not parsed: %v", stats[2].Reversals)
	}

	fighters := store.Fighters()
	if fighters[0].HeightInches == nil || *fighters[0].HeightInches != 69 {
		t.Fatalf("fighter height not parsed: %v", fighters[0].HeightInches)
	}
	if fighters[2].ReachText != nil {
		t.Fatalf("fighter reach sentinel not cleared")
	}
	if fighters[2].ReachInches != nil {
		t.Fatalf("cleared reach must stay untyped")
	}

	events := store.Events()
	if events[0].DateProper == nil || events[0].DateProper.Year() != 2021 {
		t.Fatalf("event date not parsed: %v", events[0].DateProper)
	}
}

func TestPipelineService_RunAll_Idempotent(t *testing.T) {
	store := memory.SeededStore()
	svc := newTestPipeline(store)

	if _, err := svc.RunAll(context.Background()); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	before := store.Results()

	reports, err := svc.RunAll(context.Background())
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	for _, r := range reports {
		for name, n := range r.Counters {
			if n != 0 {
				t.Fatalf("second run must be a no-op, phase %s counter %s=%d", r.Phase, name, n)
			}
		}
	}

	after := store.Results()
	for i := range before {
		if *before[i].FighterID != *after[i].FighterID ||
			*before[i].TotalFightTimeSeconds != *after[i].TotalFightTimeSeconds ||
			*before[i].WeightClass != *after[i].WeightClass {
			t.Fatalf("second run mutated result %d", before[i].ID)
		}
	}
}

func TestPipelineService_RunPhase_BySelector(t *testing.T) {
	store := memory.SeededStore()
	svc := newTestPipeline(store)

	report, err := svc.RunPhase(context.Background(), "quality_cleanup")
	if err != nil {
		t.Fatalf("run phase failed: %v", err)
	}
	if report.Counters["fighter_sentinels_cleared"] != 2 {
		t.Fatalf("unexpected cleared count: %+v", report.Counters)
	}

	// Index selectors are 1-based.
	report, err = svc.RunPhase(context.Background(), "2")
	if err != nil {
		t.Fatalf("run phase by index failed: %v", err)
	}
	if report.Phase != "quality_cleanup" {
		t.Fatalf("unexpected phase for index 2: %s", report.Phase)
	}
}

func TestPipelineService_RunPhase_Unknown(t *testing.T) {
	svc := newTestPipeline(memory.SeededStore())

	if _, err := svc.RunPhase(context.Background(), "no_such_phase"); !errors.Is(err, ErrUnknownPhase) {
		t.Fatalf("expected ErrUnknownPhase, got %v", err)
	}
	if _, err := svc.RunPhase(context.Background(), "9"); !errors.Is(err, ErrUnknownPhase) {
		t.Fatalf("expected ErrUnknownPhase for out-of-range index, got %v", err)
	}
}

func TestPipelineService_Preview(t *testing.T) {
	store := memory.SeededStore()
	svc := newTestPipeline(store)

	preview, err := svc.Preview(context.Background())
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	if preview.UnresolvedFights != 2 {
		t.Fatalf("unexpected unresolved fights: %d", preview.UnresolvedFights)
	}
	if preview.FighterSentinels != 2 {
		t.Fatalf("unexpected fighter sentinels: %d", preview.FighterSentinels)
	}
	if preview.StatSentinels != 2 {
		t.Fatalf("unexpected stat sentinels: %d", preview.StatSentinels)
	}
	if preview.UntypedStats != 3 {
		t.Fatalf("unexpected untyped stats: %d", preview.UntypedStats)
	}

	// Preview writes nothing.
	if store.Fights()[0].FighterAID != nil {
		t.Fatalf("preview must not resolve fights")
	}

	if _, err := svc.RunAll(context.Background()); err != nil {
		t.Fatalf("run all failed: %v", err)
	}

	preview, err = svc.Preview(context.Background())
	if err != nil {
		t.Fatalf("post-run preview failed: %v", err)
	}
	if preview.UnresolvedFights != 0 || preview.UntypedStats != 0 || preview.UnderivedResults != 0 {
		t.Fatalf("post-run preview shows pending work: %+v", preview)
	}
}
