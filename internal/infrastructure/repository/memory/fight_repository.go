package memory

import (
	"context"

	"github.com/fightlab/fightdata-pipeline/internal/domain/fight"
)

type FightRepository struct {
	store *Store
}

func isUnresolvedFight(f fight.Fight) bool {
	return (f.FighterAID == nil || f.FighterBID == nil) && isRealBout(f.Bout)
}

func (r *FightRepository) ListUnresolved(_ context.Context) ([]fight.Fight, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []fight.Fight
	for _, f := range r.store.fights {
		if isUnresolvedFight(f) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *FightRepository) SetFighters(_ context.Context, id int64, fighterAID, fighterBID *int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.fights {
		if r.store.fights[i].ID != id {
			continue
		}
		f := &r.store.fights[i]
		if fighterAID != nil && f.FighterAID == nil {
			v := *fighterAID
			f.FighterAID = &v
		}
		if fighterBID != nil && f.FighterBID == nil {
			v := *fighterBID
			f.FighterBID = &v
		}
	}
	return nil
}

func (r *FightRepository) CountUnresolved(_ context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, f := range r.store.fights {
		if isUnresolvedFight(f) {
			count++
		}
	}
	return count, nil
}
