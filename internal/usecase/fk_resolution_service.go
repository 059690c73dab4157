package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"github.com/fightlab/fightdata-pipeline/internal/domain/fight"
	"github.com/fightlab/fightdata-pipeline/internal/domain/storage"
	"github.com/fightlab/fightdata-pipeline/internal/platform/logging"
	"github.com/fightlab/fightdata-pipeline/internal/resolve"
)

// FKResolutionService populates the reference columns: fighter references
// on fights, event/fight/winner references on results, and
// event/fight/fighter references on stat rows.
//
// Name matching runs on a worker pool against an immutable catalog
// snapshot; all writes happen serially afterwards on the phase
// transaction.
type FKResolutionService struct {
	thresholds resolve.Thresholds
	workers    int
	unresolved *resolve.UnresolvedLog
	logger     *logging.Logger
}

func NewFKResolutionService(thresholds resolve.Thresholds, workers int, unresolved *resolve.UnresolvedLog, logger *logging.Logger) *FKResolutionService {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &FKResolutionService{
		thresholds: thresholds,
		workers:    workers,
		unresolved: unresolved,
		logger:     logger,
	}
}

func (s *FKResolutionService) Name() string { return "fk_resolution" }

func (s *FKResolutionService) Run(ctx context.Context, repos storage.Repos) (Counters, error) {
	counters := Counters{}

	fighters, err := repos.Fighters.ListAll(ctx)
	if err != nil {
		return counters, fmt.Errorf("load fighter catalog: %w", err)
	}
	entries := make([]resolve.Entry, 0, len(fighters))
	for _, f := range fighters {
		entries = append(entries, resolve.Entry{ID: f.ID, Name: f.DisplayName()})
	}
	resolver := resolve.NewResolver(resolve.NewCatalog(entries), s.thresholds)
	s.logger.Info("fighter catalog loaded", "entries", len(entries))

	if err := s.resolveFightFighters(ctx, repos, resolver, counters); err != nil {
		return counters, err
	}

	n, err := repos.Results.ResolveEventRefs(ctx)
	if err != nil {
		return counters, err
	}
	counters.add("result_event_refs", n)

	n, err = repos.Results.ResolveFightRefs(ctx)
	if err != nil {
		return counters, err
	}
	counters.add("result_fight_refs", n)

	outcomes, err := repos.Results.AssignOutcomes(ctx)
	if err != nil {
		return counters, err
	}
	counters.add("result_winner_a", outcomes.WinnerA)
	counters.add("result_winner_b", outcomes.WinnerB)
	counters.add("result_no_winner", outcomes.NoWinner)

	n, err = repos.Stats.ResolveEventRefs(ctx)
	if err != nil {
		return counters, err
	}
	counters.add("stat_event_refs", n)

	n, err = repos.Stats.ResolveFightRefs(ctx)
	if err != nil {
		return counters, err
	}
	counters.add("stat_fight_refs", n)

	n, err = repos.Stats.ResolveFightersExact(ctx)
	if err != nil {
		return counters, err
	}
	counters.add("stat_fighter_exact", n)

	if err := s.resolveStatFighters(ctx, repos, resolver, counters); err != nil {
		return counters, err
	}

	return counters, nil
}

type fightMatch struct {
	fightID int64
	aID     *int64
	bID     *int64
}

func (s *FKResolutionService) resolveFightFighters(ctx context.Context, repos storage.Repos, resolver *resolve.Resolver, counters Counters) error {
	fights, err := repos.Fights.ListUnresolved(ctx)
	if err != nil {
		return fmt.Errorf("list unresolved fights: %w", err)
	}
	if len(fights) == 0 {
		return nil
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	matches := make(chan fightMatch, len(fights))
	var matched, ambiguous, notFound, unsplit, conflicting atomic.Int64

	var workers sync.WaitGroup
	for _, f := range fights {
		f := f
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			m := fightMatch{fightID: f.ID}
			aName, bName, ok := fight.SplitBout(f.Bout)
			if !ok {
				unsplit.Add(1)
				if err := s.unresolved.Record(fmt.Sprintf("fight:%d", f.ID), f.Bout, resolve.Result{Status: resolve.StatusNotFound}); err != nil {
					s.logger.Warn("record unsplit bout", "fight_id", f.ID, "error", err)
				}
				matches <- m
				return
			}

			if f.FighterAID == nil {
				m.aID = s.resolveSide(resolver, f.ID, aName, &matched, &ambiguous, &notFound)
			}
			if f.FighterBID == nil {
				m.bID = s.resolveSide(resolver, f.ID, bName, &matched, &ambiguous, &notFound)
			}

			aID, bID := f.FighterAID, f.FighterBID
			if m.aID != nil {
				aID = m.aID
			}
			if m.bID != nil {
				bID = m.bID
			}
			if aID != nil && bID != nil && *aID == *bID {
				// Both corners resolved to the same catalog entry. A
				// fight needs two distinct fighters, so nothing is
				// written and the bout goes to the unresolved log.
				if m.aID != nil {
					matched.Add(-1)
				}
				if m.bID != nil {
					matched.Add(-1)
				}
				conflicting.Add(1)
				res := resolve.Result{
					Status: resolve.StatusAmbiguous,
					Candidates: []resolve.Candidate{
						{ID: *aID, Name: aName},
						{ID: *bID, Name: bName},
					},
				}
				if err := s.unresolved.Record(fmt.Sprintf("fight:%d", f.ID), f.Bout, res); err != nil {
					s.logger.Warn("record conflicting fighter refs", "fight_id", f.ID, "error", err)
				}
				m.aID, m.bID = nil, nil
			}
			matches <- m
		}); err != nil {
			workers.Done()
			return fmt.Errorf("submit fight resolution task: %w", err)
		}
	}

	workers.Wait()
	close(matches)

	for m := range matches {
		if m.aID == nil && m.bID == nil {
			continue
		}
		if err := repos.Fights.SetFighters(ctx, m.fightID, m.aID, m.bID); err != nil {
			return err
		}
	}

	counters.add("fight_fighters_matched", matched.Load())
	counters.add("fight_fighters_ambiguous", ambiguous.Load())
	counters.add("fight_fighters_not_found", notFound.Load())
	counters.add("fight_fighters_conflicting", conflicting.Load())
	counters.add("fight_bouts_unsplit", unsplit.Load())
	return nil
}

func (s *FKResolutionService) resolveSide(resolver *resolve.Resolver, fightID int64, name string, matched, ambiguous, notFound *atomic.Int64) *int64 {
	res := resolver.Resolve(name)
	switch res.Status {
	case resolve.StatusMatched:
		matched.Add(1)
		id := res.ID
		return &id
	case resolve.StatusAmbiguous:
		ambiguous.Add(1)
	default:
		notFound.Add(1)
	}

	if err := s.unresolved.Record(fmt.Sprintf("fight:%d", fightID), name, res); err != nil {
		s.logger.Warn("record unresolved fighter", "fight_id", fightID, "error", err)
	}
	return nil
}

func (s *FKResolutionService) resolveStatFighters(ctx context.Context, repos storage.Repos, resolver *resolve.Resolver, counters Counters) error {
	rows, err := repos.Stats.ListUnresolvedWithCandidates(ctx)
	if err != nil {
		return fmt.Errorf("list unresolved stat fighters: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	type statMatch struct {
		statID    int64
		fighterID int64
		matched   bool
	}
	matches := make(chan statMatch, len(rows))
	var fuzzy, unmatched atomic.Int64

	var workers sync.WaitGroup
	for _, row := range rows {
		row := row
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			res := resolver.ResolveBetween(row.FighterText,
				resolve.Candidate{ID: row.AID, Name: row.AName},
				resolve.Candidate{ID: row.BID, Name: row.BName},
			)
			if res.Status == resolve.StatusMatched {
				fuzzy.Add(1)
				matches <- statMatch{statID: row.StatID, fighterID: res.ID, matched: true}
				return
			}

			unmatched.Add(1)
			if err := s.unresolved.Record(fmt.Sprintf("stat:%d", row.StatID), row.FighterText, res); err != nil {
				s.logger.Warn("record unresolved stat fighter", "stat_id", row.StatID, "error", err)
			}
			matches <- statMatch{statID: row.StatID}
		}); err != nil {
			workers.Done()
			return fmt.Errorf("submit stat resolution task: %w", err)
		}
	}

	workers.Wait()
	close(matches)

	for m := range matches {
		if !m.matched {
			continue
		}
		if err := repos.Stats.SetFighter(ctx, m.statID, m.fighterID); err != nil {
			return err
		}
	}

	counters.add("stat_fighter_fuzzy", fuzzy.Load())
	counters.add("stat_fighter_unmatched", unmatched.Load())
	return nil
}
