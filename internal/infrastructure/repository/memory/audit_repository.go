package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/fightlab/fightdata-pipeline/internal/domain/audit"
	"github.com/fightlab/fightdata-pipeline/internal/normalize"
	"github.com/fightlab/fightdata-pipeline/internal/parse"
)

type AuditRepository struct {
	store *Store
}

func (r *AuditRepository) FightRefCoverage(_ context.Context) (fighterA, fighterB audit.Coverage, err error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, f := range r.store.fights {
		if !isRealBout(f.Bout) {
			continue
		}
		fighterA.Total++
		fighterB.Total++
		if f.FighterAID != nil {
			fighterA.Populated++
		}
		if f.FighterBID != nil {
			fighterB.Populated++
		}
	}
	return fighterA, fighterB, nil
}

func (r *AuditRepository) ResultRefCoverage(_ context.Context) (fighter, opponent audit.Coverage, err error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, res := range r.store.results {
		fighter.Total++
		opponent.Total++
		if res.FighterID != nil {
			fighter.Populated++
		}
		if res.OpponentID != nil {
			opponent.Populated++
		}
	}
	return fighter, opponent, nil
}

func (r *AuditRepository) StatRefCoverage(_ context.Context) (fighter, fight audit.Coverage, err error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, st := range r.store.stats {
		fighter.Total++
		fight.Total++
		if st.FighterID != nil {
			fighter.Populated++
		}
		if st.FightID != nil {
			fight.Populated++
		}
	}
	return fighter, fight, nil
}

func (r *AuditRepository) EventDateCoverage(_ context.Context) (audit.Coverage, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var coverage audit.Coverage
	for _, e := range r.store.events {
		if strings.TrimSpace(e.RawDate) == "" {
			continue
		}
		coverage.Total++
		if e.DateProper != nil {
			coverage.Populated++
		}
	}
	return coverage, nil
}

func (r *AuditRepository) SelfPairedFights(_ context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, f := range r.store.fights {
		if f.FighterAID != nil && f.FighterBID != nil && *f.FighterAID == *f.FighterBID {
			count++
		}
	}
	return count, nil
}

func (r *AuditRepository) SentinelResidue(_ context.Context) (map[string]int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := map[string]int64{
		"ufc_fighters.height_text":         0,
		"ufc_fighters.weight_text":         0,
		"ufc_fighters.reach_text":          0,
		"ufc_fighters.stance":              0,
		"ufc_fighters.dob_text":            0,
		"ufc_fight_stats.ctrl_text":        0,
		"ufc_fight_stats.sig_str_pct_text": 0,
		"ufc_fight_stats.takedown_pct_text": 0,
	}

	countSentinel := func(key string, v *string) {
		if v != nil && parse.IsSentinel(*v) {
			out[key]++
		}
	}

	for _, f := range r.store.fighters {
		countSentinel("ufc_fighters.height_text", f.HeightText)
		countSentinel("ufc_fighters.weight_text", f.WeightText)
		countSentinel("ufc_fighters.reach_text", f.ReachText)
		countSentinel("ufc_fighters.stance", f.Stance)
		countSentinel("ufc_fighters.dob_text", f.DOBText)
	}
	for _, st := range r.store.stats {
		countSentinel("ufc_fight_stats.ctrl_text", st.CtrlText)
		countSentinel("ufc_fight_stats.sig_str_pct_text", st.SigStrPctText)
		countSentinel("ufc_fight_stats.takedown_pct_text", st.TakedownPct)
	}
	return out, nil
}

func (r *AuditRepository) UntrimmedMethods(_ context.Context) (int64, error) {
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

func (r *AuditRepository) NonCanonicalWeightClasses(_ context.Context) ([]string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, res := range r.store.results {
		if res.WeightClass == nil {
			continue
		}
		if !normalize.IsCanonicalWeightClass(*res.WeightClass) {
			seen[*res.WeightClass] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out, nil
}

func (r *AuditRepository) MissingTitleFlags(_ context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, res := range r.store.results {
		if res.WeightClassText != nil && res.IsTitleFight == nil {
			count++
		}
	}
	return count, nil
}

func (r *AuditRepository) TypedCoverage(_ context.Context) (map[string]audit.Coverage, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make(map[string]audit.Coverage)
	add := func(key string, rawPresent, typedPresent bool) {
		c := out[key]
		if rawPresent {
			c.Total++
			if typedPresent {
				c.Populated++
			}
		}
		out[key] = c
	}

	for _, e := range r.store.events {
		add("ufc_events.date_proper", strings.TrimSpace(e.RawDate) != "", e.DateProper != nil)
	}
	for _, f := range r.store.fighters {
		add("ufc_fighters.height_inches", f.HeightText != nil, f.HeightInches != nil)
		add("ufc_fighters.weight_pounds", f.WeightText != nil, f.WeightPounds != nil)
		add("ufc_fighters.reach_inches", f.ReachText != nil, f.ReachInches != nil)
		add("ufc_fighters.dob", f.DOBText != nil, f.DOB != nil)
	}
	for _, res := range r.store.results {
		add("ufc_fight_results.fight_time_seconds", res.TimeText != nil, res.FightTimeSeconds != nil)
		add("ufc_fight_results.total_fight_time_seconds", res.TimeText != nil, res.TotalFightTimeSeconds != nil)
		add("ufc_fight_results.weight_class", res.WeightClassText != nil, res.WeightClass != nil)
	}
	for _, st := range r.store.stats {
		add("ufc_fight_stats.sig_str_landed", st.SigStrText != nil, st.SigStrLanded != nil)
		add("ufc_fight_stats.total_str_landed", st.TotalStrText != nil, st.TotalStrLanded != nil)
		add("ufc_fight_stats.takedowns_landed", st.TakedownText != nil, st.TakedownsLanded != nil)
		add("ufc_fight_stats.ctrl_seconds", st.CtrlText != nil, st.CtrlSeconds != nil)
		add("ufc_fight_stats.knockdowns", st.KnockdownText != nil, st.Knockdowns != nil)
		add("ufc_fight_stats.head_landed", st.HeadText != nil, st.HeadLanded != nil)
		add("ufc_fight_stats.body_landed", st.BodyText != nil, st.BodyLanded != nil)
		add("ufc_fight_stats.leg_landed", st.LegText != nil, st.LegLanded != nil)
		add("ufc_fight_stats.distance_landed", st.DistanceText != nil, st.DistanceLanded != nil)
		add("ufc_fight_stats.clinch_landed", st.ClinchText != nil, st.ClinchLanded != nil)
		add("ufc_fight_stats.ground_landed", st.GroundText != nil, st.GroundLanded != nil)
		add("ufc_fight_stats.sub_att", st.SubAttText != nil, st.SubAttempts != nil)
		add("ufc_fight_stats.rev", st.RevText != nil, st.Reversals != nil)
	}
	return out, nil
}

func (r *AuditRepository) RowCounts(_ context.Context) (map[string]int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return map[string]int64{
		"ufc_events":        int64(len(r.store.events)),
		"ufc_fighters":      int64(len(r.store.fighters)),
		"ufc_fights":        int64(len(r.store.fights)),
		"ufc_fight_results": int64(len(r.store.results)),
		"ufc_fight_stats":   int64(len(r.store.stats)),
	}, nil
}
