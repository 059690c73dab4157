package memory

import (
	"context"
	"strings"

	"github.com/fightlab/fightdata-pipeline/internal/domain/fightresult"
)

type FightResultRepository struct {
	store *Store
}

func (r *FightResultRepository) ResolveEventRefs(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var resolved int64
	for i := range r.store.results {
		res := &r.store.results[i]
		if res.EventID != nil {
			continue
		}
		for _, e := range r.store.events {
			if sameTrimmed(res.EventName, e.Name) {
				id := e.ID
				res.EventID = &id
				resolved++
				break
			}
		}
	}
	return resolved, nil
}

func (r *FightResultRepository) ResolveFightRefs(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var resolved int64
	for i := range r.store.results {
		res := &r.store.results[i]
		if res.FightID != nil || res.EventID == nil {
			continue
		}
		for _, f := range r.store.fights {
			if f.EventID == *res.EventID && sameTrimmed(res.Bout, f.Bout) {
				id := f.ID
				res.FightID = &id
				resolved++
				break
			}
		}
	}
	return resolved, nil
}

func (r *FightResultRepository) AssignOutcomes(_ context.Context) (fightresult.OutcomeCounts, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var counts fightresult.OutcomeCounts
	for i := range r.store.results {
		res := &r.store.results[i]
		if res.FighterID != nil || res.FightID == nil {
			continue
		}
		f, ok := r.store.fightByID(*res.FightID)
		if !ok || f.FighterAID == nil || f.FighterBID == nil {
			continue
		}

		a, b := *f.FighterAID, *f.FighterBID
		switch strings.TrimSpace(res.Outcome) {
		case fightresult.OutcomeAWon:
			assignResultRefs(res, a, b, true)
			counts.WinnerA++
		case fightresult.OutcomeBWon:
			assignResultRefs(res, b, a, true)
			counts.WinnerB++
		case fightresult.OutcomeNoContest, fightresult.OutcomeDraw:
			assignResultRefs(res, a, b, false)
			counts.NoWinner++
		}
	}
	return counts, nil
}

func assignResultRefs(res *fightresult.Result, fighterID, opponentID int64, won bool) {
	res.FighterID = &fighterID
	if res.OpponentID == nil {
		res.OpponentID = &opponentID
	}
	if res.IsWinner == nil {
		res.IsWinner = &won
	}
}

func (r *FightResultRepository) CountUnassigned(_ context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, res := range r.store.results {
		if res.FightID != nil && res.FighterID == nil {
			count++
		}
	}
	return count, nil
}

func (r *FightResultRepository) TrimMethodNoise(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var trimmed int64
	for i := range r.store.results {
		res := &r.store.results[i]
		if res.Method == nil {
			continue
		}
		if cleaned := strings.TrimSpace(*res.Method); cleaned != *res.Method {
			res.Method = &cleaned
			trimmed++
		}
	}
	return trimmed, nil
}

func (r *FightResultRepository) CountUntrimmedMethods(_ context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, res := range r.store.results {
		if res.Method != nil && strings.TrimSpace(*res.Method) != *res.Method {
			count++
		}
	}
	return count, nil
}

func isUntypedResult(res fightresult.Result) bool {
	return res.RoundText != nil && res.TimeText != nil &&
		(res.FightTimeSeconds == nil || res.TotalFightTimeSeconds == nil)
}

func (r *FightResultRepository) ListUntyped(_ context.Context) ([]fightresult.Result, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []fightresult.Result
	for _, res := range r.store.results {
		if isUntypedResult(res) {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *FightResultRepository) ApplyTyped(_ context.Context, id int64, typed fightresult.TypedTimes) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.results {
		if r.store.results[i].ID != id {
			continue
		}
		res := &r.store.results[i]
		if typed.FightTimeSeconds != nil && res.FightTimeSeconds == nil {
			v := *typed.FightTimeSeconds
			res.FightTimeSeconds = &v
		}
		if typed.TotalFightTimeSeconds != nil && res.TotalFightTimeSeconds == nil {
			v := *typed.TotalFightTimeSeconds
			res.TotalFightTimeSeconds = &v
		}
	}
	return nil
}

func (r *FightResultRepository) CountUntyped(_ context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, res := range r.store.results {
		if isUntypedResult(res) {
			count++
		}
	}
	return count, nil
}

func isUnderivedResult(res fightresult.Result) bool {
	return res.WeightClassText != nil &&
		(res.WeightClass == nil || res.IsTitleFight == nil || res.IsInterimTitle == nil || res.IsChampionshipRounds == nil)
}

func (r *FightResultRepository) ListUnderived(_ context.Context) ([]fightresult.Result, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []fightresult.Result
	for _, res := range r.store.results {
		if isUnderivedResult(res) {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *FightResultRepository) ApplyDerived(_ context.Context, id int64, derived fightresult.Derived) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.results {
		if r.store.results[i].ID != id {
			continue
		}
		res := &r.store.results[i]
		if derived.WeightClass != nil && res.WeightClass == nil {
			v := *derived.WeightClass
			res.WeightClass = &v
		}
		if derived.IsTitleFight != nil && res.IsTitleFight == nil {
			v := *derived.IsTitleFight
			res.IsTitleFight = &v
		}
		if derived.IsInterimTitle != nil && res.IsInterimTitle == nil {
			v := *derived.IsInterimTitle
			res.IsInterimTitle = &v
		}
		if derived.IsChampionshipRounds != nil && res.IsChampionshipRounds == nil {
			v := *derived.IsChampionshipRounds
			res.IsChampionshipRounds = &v
		}
	}
	return nil
}

func (r *FightResultRepository) CountUnderived(_ context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, res := range r.store.results {
		if isUnderivedResult(res) {
			count++
		}
	}
	return count, nil
}
