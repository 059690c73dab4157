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
	"github.com/fightlab/fightdata-pipeline/internal/resolve"
)

func TestFKResolutionService_MisspelledNameStillMatches(t *testing.T) {
	store := memory.NewSeededStore(
		[]event.Event{{ID: 1, Name: "UFC 100", RawDate: "Jul 11, 2009"}},
		[]fighter.Fighter{
			{ID: 1, FirstName: "Brock", LastName: "Lesnar"},
			{ID: 2, FirstName: "Frank", LastName: "Mir"},
		},
		[]fight.Fight{{ID: 1, EventID: 1, Bout: "Brock Lesner vs. Frank Mir"}},
		nil, nil,
	)

	svc := NewFKResolutionService(resolve.DefaultThresholds(), 2, nil, logging.NewNop())
	counters, err := svc.Run(context.Background(), store.View())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if counters["fight_fighters_matched"] != 2 {
		t.Fatalf("unexpected match count: %+v", counters)
	}

	f := store.Fights()[0]
	if f.FighterAID == nil || *f.FighterAID != 1 {
		t.Fatalf("misspelled last name not matched: %+v", f)
	}
	if f.FighterBID == nil || *f.FighterBID != 2 {
		t.Fatalf("fighter B not matched: %+v", f)
	}
}

func TestFKResolutionService_AmbiguousNameIsNotGuessed(t *testing.T) {
	// The Nogueira brothers tie on every shared token, so a raw name
	// missing the middle name cannot be attributed to either.
	store := memory.NewSeededStore(
		[]event.Event{{ID: 1, Name: "UFC 1"}},
		[]fighter.Fighter{
			{ID: 1, FirstName: "Antonio Rodrigo", LastName: "Nogueira"},
			{ID: 2, FirstName: "Antonio Rogerio", LastName: "Nogueira"},
			{ID: 3, FirstName: "Royce", LastName: "Gracie"},
		},
		[]fight.Fight{{ID: 1, EventID: 1, Bout: "Antonio Nogueira vs. Royce Gracie"}},
		nil, nil,
	)

	var log strings.Builder
	svc := NewFKResolutionService(resolve.DefaultThresholds(), 2, resolve.NewUnresolvedLog(&log), logging.NewNop())
	counters, err := svc.Run(context.Background(), store.View())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if counters["fight_fighters_ambiguous"] != 1 {
		t.Fatalf("expected one ambiguous side: %+v", counters)
	}
	f := store.Fights()[0]
	if f.FighterAID != nil {
		t.Fatalf("ambiguous side must stay unresolved: %+v", f)
	}
	if f.FighterBID == nil || *f.FighterBID != 3 {
		t.Fatalf("unambiguous side must still resolve: %+v", f)
	}

	logged := log.String()
	if !strings.Contains(logged, "Antonio Nogueira") || !strings.Contains(logged, "ambiguous") {
		t.Fatalf("ambiguous name not logged for triage: %q", logged)
	}
}

func TestFKResolutionService_SameFighterBothSidesRejected(t *testing.T) {
	// A malformed bout can repeat one name on both sides. Writing the
	// same catalog id into both corners would corrupt the fight, so the
	// row must stay unresolved and land in the triage log.
	store := memory.NewSeededStore(
		[]event.Event{{ID: 1, Name: "UFC 3"}},
		[]fighter.Fighter{
			{ID: 10, FirstName: "Bruno", LastName: "Silva"},
			{ID: 20, FirstName: "Royce", LastName: "Gracie"},
		},
		[]fight.Fight{{ID: 1, EventID: 1, Bout: "Bruno Silva vs. Bruno Silva"}},
		nil, nil,
	)

	var log strings.Builder
	svc := NewFKResolutionService(resolve.DefaultThresholds(), 2, resolve.NewUnresolvedLog(&log), logging.NewNop())
	counters, err := svc.Run(context.Background(), store.View())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if counters["fight_fighters_conflicting"] != 1 {
		t.Fatalf("expected one conflicting fight: %+v", counters)
	}
	if counters["fight_fighters_matched"] != 0 {
		t.Fatalf("conflicting sides must not count as matched: %+v", counters)
	}

	f := store.Fights()[0]
	if f.FighterAID != nil || f.FighterBID != nil {
		t.Fatalf("both sides resolved to one fighter, refs must stay unset: %+v", f)
	}

	logged := log.String()
	if !strings.Contains(logged, "Bruno Silva vs. Bruno Silva") || !strings.Contains(logged, "fight:1") {
		t.Fatalf("conflicting bout not logged for triage: %q", logged)
	}
}

// fixedListFightRepo serves a fixed unresolved list, to reach rows the
// real repositories filter out before resolution.
type fixedListFightRepo struct {
	fight.Repository
	rows []fight.Fight
	sets int
}

func (r *fixedListFightRepo) ListUnresolved(context.Context) ([]fight.Fight, error) {
	return r.rows, nil
}

func (r *fixedListFightRepo) SetFighters(context.Context, int64, *int64, *int64) error {
	r.sets++
	return nil
}

func TestFKResolutionService_BoutWithoutSeparatorLogged(t *testing.T) {
	store := memory.NewSeededStore(
		[]event.Event{{ID: 1, Name: "UFC 4"}},
		[]fighter.Fighter{{ID: 1, FirstName: "Royce", LastName: "Gracie"}},
		nil, nil, nil,
	)
	repos := store.View()
	stub := &fixedListFightRepo{
		Repository: repos.Fights,
		rows:       []fight.Fight{{ID: 9, EventID: 1, Bout: "Royce Gracie"}},
	}
	repos.Fights = stub

	var log strings.Builder
	svc := NewFKResolutionService(resolve.DefaultThresholds(), 2, resolve.NewUnresolvedLog(&log), logging.NewNop())
	counters, err := svc.Run(context.Background(), repos)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if counters["fight_bouts_unsplit"] != 1 {
		t.Fatalf("expected one unsplit bout: %+v", counters)
	}
	if stub.sets != 0 {
		t.Fatalf("unsplit bout must not be written")
	}
	logged := log.String()
	if !strings.Contains(logged, "fight:9") || !strings.Contains(logged, "Royce Gracie") || !strings.Contains(logged, "not_found") {
		t.Fatalf("unsplit bout not logged for triage: %q", logged)
	}
}

func TestFKResolutionService_PlaceholderBoutSkipped(t *testing.T) {
	store := memory.NewSeededStore(
		[]event.Event{{ID: 1, Name: "UFC 2"}},
		[]fighter.Fighter{{ID: 1, FirstName: "Royce", LastName: "Gracie"}},
		[]fight.Fight{{ID: 1, EventID: 1, Bout: "win vs. "}},
		nil, nil,
	)

	svc := NewFKResolutionService(resolve.DefaultThresholds(), 2, nil, logging.NewNop())
	counters, err := svc.Run(context.Background(), store.View())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(counters) != 0 {
		t.Fatalf("placeholder bout must produce no work: %+v", counters)
	}
	if store.Fights()[0].FighterAID != nil {
		t.Fatalf("placeholder bout must stay unresolved")
	}
}
