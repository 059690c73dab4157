package memory

import (
	"context"
	"strings"

	"github.com/fightlab/fightdata-pipeline/internal/domain/fightstat"
	"github.com/fightlab/fightdata-pipeline/internal/parse"
)

type FightStatRepository struct {
	store *Store
}

func (r *FightStatRepository) ResolveEventRefs(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var resolved int64
	for i := range r.store.stats {
		st := &r.store.stats[i]
		if st.EventID != nil {
			continue
		}
		for _, e := range r.store.events {
			if sameTrimmed(st.EventName, e.Name) {
				id := e.ID
				st.EventID = &id
				resolved++
				break
			}
		}
	}
	return resolved, nil
}

func (r *FightStatRepository) ResolveFightRefs(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var resolved int64
	for i := range r.store.stats {
		st := &r.store.stats[i]
		if st.FightID != nil || st.EventID == nil {
			continue
		}
		for _, f := range r.store.fights {
			if f.EventID == *st.EventID && sameTrimmed(st.Bout, f.Bout) {
				id := f.ID
				st.FightID = &id
				resolved++
				break
			}
		}
	}
	return resolved, nil
}

func (r *FightStatRepository) ResolveFightersExact(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var resolved int64
	for i := range r.store.stats {
		st := &r.store.stats[i]
		if st.FighterID != nil || st.FightID == nil {
			continue
		}
		f, ok := r.store.fightByID(*st.FightID)
		if !ok {
			continue
		}

		want := strings.ToLower(strings.TrimSpace(st.FighterText))
		for _, side := range []*int64{f.FighterAID, f.FighterBID} {
			if side == nil {
				continue
			}
			candidate, ok := r.store.fighterByID(*side)
			if !ok {
				continue
			}
			if strings.ToLower(candidate.DisplayName()) == want {
				id := candidate.ID
				st.FighterID = &id
				resolved++
				break
			}
		}
	}
	return resolved, nil
}

func (r *FightStatRepository) ListUnresolvedWithCandidates(_ context.Context) ([]fightstat.PairCandidates, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []fightstat.PairCandidates
	for _, st := range r.store.stats {
		if st.FighterID != nil || st.FightID == nil {
			continue
		}
		f, ok := r.store.fightByID(*st.FightID)
		if !ok || f.FighterAID == nil || f.FighterBID == nil {
			continue
		}
		a, okA := r.store.fighterByID(*f.FighterAID)
		b, okB := r.store.fighterByID(*f.FighterBID)
		if !okA || !okB {
			continue
		}
		out = append(out, fightstat.PairCandidates{
			StatID:      st.ID,
			FighterText: st.FighterText,
			AID:         a.ID,
			AName:       a.DisplayName(),
			BID:         b.ID,
			BName:       b.DisplayName(),
		})
	}
	return out, nil
}

func (r *FightStatRepository) SetFighter(_ context.Context, statID, fighterID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.stats {
		if r.store.stats[i].ID == statID && r.store.stats[i].FighterID == nil {
			id := fighterID
			r.store.stats[i].FighterID = &id
		}
	}
	return nil
}

func (r *FightStatRepository) CountUnresolvedFighters(_ context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, st := range r.store.stats {
		if st.FightID != nil && st.FighterID == nil {
			count++
		}
	}
	return count, nil
}

func statSentinelFields(st *fightstat.Stat) []**string {
	return []**string{&st.CtrlText, &st.SigStrPctText, &st.TakedownPct}
}

func (r *FightStatRepository) ClearSentinels(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var cleared int64
	for i := range r.store.stats {
		for _, field := range statSentinelFields(&r.store.stats[i]) {
			if *field != nil && parse.IsSentinel(**field) {
				*field = nil
				cleared++
			}
		}
	}
	return cleared, nil
}

func (r *FightStatRepository) CountSentinels(_ context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for i := range r.store.stats {
		st := r.store.stats[i]
		for _, field := range statSentinelFields(&st) {
			if *field != nil && parse.IsSentinel(**field) {
				count++
			}
		}
	}
	return count, nil
}

func isUntypedStat(st fightstat.Stat) bool {
	return (st.SigStrText != nil && st.SigStrLanded == nil) ||
		(st.TotalStrText != nil && st.TotalStrLanded == nil) ||
		(st.TakedownText != nil && st.TakedownsLanded == nil) ||
		(st.CtrlText != nil && st.CtrlSeconds == nil) ||
		(st.SigStrPctText != nil && st.SigStrPctValue == nil) ||
		(st.TakedownPct != nil && st.TakedownPctValue == nil) ||
		(st.KnockdownText != nil && st.Knockdowns == nil) ||
		(st.HeadText != nil && st.HeadLanded == nil) ||
		(st.BodyText != nil && st.BodyLanded == nil) ||
		(st.LegText != nil && st.LegLanded == nil) ||
		(st.DistanceText != nil && st.DistanceLanded == nil) ||
		(st.ClinchText != nil && st.ClinchLanded == nil) ||
		(st.GroundText != nil && st.GroundLanded == nil) ||
		(st.SubAttText != nil && st.SubAttempts == nil) ||
		(st.RevText != nil && st.Reversals == nil)
}

func (r *FightStatRepository) ListUntyped(_ context.Context) ([]fightstat.Stat, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []fightstat.Stat
	for _, st := range r.store.stats {
		if isUntypedStat(st) {
			out = append(out, st)
		}
	}
	return out, nil
}

func (r *FightStatRepository) ApplyTyped(_ context.Context, id int64, typed fightstat.Typed) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.stats {
		if r.store.stats[i].ID != id {
			continue
		}
		st := &r.store.stats[i]
		setInt(&st.SigStrLanded, typed.SigStrLanded)
		setInt(&st.SigStrAttempted, typed.SigStrAttempted)
		setInt(&st.TotalStrLanded, typed.TotalStrLanded)
		setInt(&st.TotalStrAttempted, typed.TotalStrAttempted)
		setInt(&st.TakedownsLanded, typed.TakedownsLanded)
		setInt(&st.TakedownsAttempted, typed.TakedownsAttempted)
		setInt(&st.CtrlSeconds, typed.CtrlSeconds)
		setFloat(&st.SigStrPctValue, typed.SigStrPctValue)
		setFloat(&st.TakedownPctValue, typed.TakedownPctValue)
		setInt(&st.Knockdowns, typed.Knockdowns)
		setInt(&st.HeadLanded, typed.HeadLanded)
		setInt(&st.HeadAttempted, typed.HeadAttempted)
		setInt(&st.BodyLanded, typed.BodyLanded)
		setInt(&st.BodyAttempted, typed.BodyAttempted)
		setInt(&st.LegLanded, typed.LegLanded)
		setInt(&st.LegAttempted, typed.LegAttempted)
		setInt(&st.DistanceLanded, typed.DistanceLanded)
		setInt(&st.DistanceAttempted, typed.DistanceAttempted)
		setInt(&st.ClinchLanded, typed.ClinchLanded)
		setInt(&st.ClinchAttempted, typed.ClinchAttempted)
		setInt(&st.GroundLanded, typed.GroundLanded)
		setInt(&st.GroundAttempted, typed.GroundAttempted)
		setInt(&st.SubAttempts, typed.SubAttempts)
		setInt(&st.Reversals, typed.Reversals)
	}
	return nil
}

func setInt(dst **int, src *int) {
	if src != nil && *dst == nil {
		v := *src
		*dst = &v
	}
}

func setFloat(dst **float64, src *float64) {
	if src != nil && *dst == nil {
		v := *src
		*dst = &v
	}
}

func (r *FightStatRepository) CountUntyped(_ context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, st := range r.store.stats {
		if isUntypedStat(st) {
			count++
		}
	}
	return count, nil
}
