package memory

import (
	"context"

	"github.com/fightlab/fightdata-pipeline/internal/domain/fighter"
	"github.com/fightlab/fightdata-pipeline/internal/parse"
)

type FighterRepository struct {
	store *Store
}

func (r *FighterRepository) ListAll(_ context.Context) ([]fighter.Fighter, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return append([]fighter.Fighter(nil), r.store.fighters...), nil
}

func profileTextFields(f *fighter.Fighter) []**string {
	return []**string{&f.HeightText, &f.WeightText, &f.ReachText, &f.Stance, &f.DOBText}
}

func (r *FighterRepository) ClearProfileSentinels(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var cleared int64
	for i := range r.store.fighters {
		for _, field := range profileTextFields(&r.store.fighters[i]) {
			if *field != nil && parse.IsSentinel(**field) {
				*field = nil
				cleared++
			}
		}
	}
	return cleared, nil
}

func (r *FighterRepository) CountProfileSentinels(_ context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for i := range r.store.fighters {
		f := r.store.fighters[i]
		for _, field := range profileTextFields(&f) {
			if *field != nil && parse.IsSentinel(**field) {
				count++
			}
		}
	}
	return count, nil
}

func isUnparsedProfile(f fighter.Fighter) bool {
	return (f.HeightText != nil && f.HeightInches == nil) ||
		(f.WeightText != nil && f.WeightPounds == nil) ||
		(f.ReachText != nil && f.ReachInches == nil) ||
		(f.DOBText != nil && f.DOB == nil)
}

func (r *FighterRepository) ListUnparsedProfiles(_ context.Context) ([]fighter.Fighter, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []fighter.Fighter
	for _, f := range r.store.fighters {
		if isUnparsedProfile(f) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *FighterRepository) ApplyTypedProfile(_ context.Context, id int64, profile fighter.TypedProfile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.fighters {
		if r.store.fighters[i].ID != id {
			continue
		}
		f := &r.store.fighters[i]
		if profile.HeightInches != nil && f.HeightInches == nil {
			v := *profile.HeightInches
			f.HeightInches = &v
		}
		if profile.WeightPounds != nil && f.WeightPounds == nil {
			v := *profile.WeightPounds
			f.WeightPounds = &v
		}
		if profile.ReachInches != nil && f.ReachInches == nil {
			v := *profile.ReachInches
			f.ReachInches = &v
		}
		if profile.DOB != nil && f.DOB == nil {
			v := *profile.DOB
			f.DOB = &v
		}
	}
	return nil
}

func (r *FighterRepository) CountUnparsedProfiles(_ context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, f := range r.store.fighters {
		if isUnparsedProfile(f) {
			count++
		}
	}
	return count, nil
}
