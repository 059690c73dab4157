package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fightlab/fightdata-pipeline/internal/domain/fighter"
	"github.com/fightlab/fightdata-pipeline/internal/domain/fightresult"
	"github.com/fightlab/fightdata-pipeline/internal/domain/fightstat"
	"github.com/fightlab/fightdata-pipeline/internal/domain/storage"
	"github.com/fightlab/fightdata-pipeline/internal/parse"
	"github.com/fightlab/fightdata-pipeline/internal/platform/logging"
)

// TypeParsingService converts raw text columns into their typed
// counterparts: event dates, fighter measurements, fight durations and
// per-round stat counts. Unparseable text is counted and left for triage,
// never guessed at.
type TypeParsingService struct {
	logger *logging.Logger
}

func NewTypeParsingService(logger *logging.Logger) *TypeParsingService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TypeParsingService{logger: logger}
}

func (s *TypeParsingService) Name() string { return "type_parsing" }

func (s *TypeParsingService) Run(ctx context.Context, repos storage.Repos) (Counters, error) {
	counters := Counters{}

	if err := s.parseEventDates(ctx, repos, counters); err != nil {
		return counters, err
	}
	if err := s.parseFighterProfiles(ctx, repos, counters); err != nil {
		return counters, err
	}
	if err := s.parseResultTimes(ctx, repos, counters); err != nil {
		return counters, err
	}
	if err := s.parseStatColumns(ctx, repos, counters); err != nil {
		return counters, err
	}

	return counters, nil
}

func (s *TypeParsingService) parseEventDates(ctx context.Context, repos storage.Repos, counters Counters) error {
	events, err := repos.Events.ListUndated(ctx)
	if err != nil {
		return fmt.Errorf("list undated events: %w", err)
	}

	for _, e := range events {
		date, ok := parse.CalendarDate(e.RawDate)
		if !ok {
			counters.add("event_dates_unparsed", 1)
			s.logger.Warn("unparseable event date", "event_id", e.ID, "raw", e.RawDate)
			continue
		}
		if err := repos.Events.SetProperDate(ctx, e.ID, date); err != nil {
			return err
		}
		counters.add("event_dates_parsed", 1)
	}
	return nil
}

func (s *TypeParsingService) parseFighterProfiles(ctx context.Context, repos storage.Repos, counters Counters) error {
	fighters, err := repos.Fighters.ListUnparsedProfiles(ctx)
	if err != nil {
		return fmt.Errorf("list unparsed fighter profiles: %w", err)
	}

	for _, f := range fighters {
		profile := typedProfileFrom(f)
		if profile == (fighter.TypedProfile{}) {
			counters.add("fighter_profiles_unparsed", 1)
			continue
		}
		if err := repos.Fighters.ApplyTypedProfile(ctx, f.ID, profile); err != nil {
			return err
		}
		counters.add("fighter_profiles_parsed", 1)
	}
	return nil
}

func typedProfileFrom(f fighter.Fighter) fighter.TypedProfile {
	var profile fighter.TypedProfile
	if f.HeightText != nil && f.HeightInches == nil {
		if v, ok := parse.HeightInches(*f.HeightText); ok {
			profile.HeightInches = &v
		}
	}
	if f.WeightText != nil && f.WeightPounds == nil {
		if v, ok := parse.WeightPounds(*f.WeightText); ok {
			profile.WeightPounds = &v
		}
	}
	if f.ReachText != nil && f.ReachInches == nil {
		if v, ok := parse.ReachInches(*f.ReachText); ok {
			profile.ReachInches = &v
		}
	}
	if f.DOBText != nil && f.DOB == nil {
		if v, ok := parse.CalendarDate(*f.DOBText); ok {
			profile.DOB = &v
		}
	}
	return profile
}

func (s *TypeParsingService) parseResultTimes(ctx context.Context, repos storage.Repos, counters Counters) error {
	results, err := repos.Results.ListUntyped(ctx)
	if err != nil {
		return fmt.Errorf("list untyped results: %w", err)
	}

	for _, res := range results {
		typed := typedTimesFrom(res)
		if typed == (fightresult.TypedTimes{}) {
			counters.add("result_times_unparsed", 1)
			continue
		}
		if err := repos.Results.ApplyTyped(ctx, res.ID, typed); err != nil {
			return err
		}
		counters.add("result_times_parsed", 1)
	}
	return nil
}

func typedTimesFrom(res fightresult.Result) fightresult.TypedTimes {
	var typed fightresult.TypedTimes
	if res.TimeText == nil || res.RoundText == nil {
		return typed
	}

	round, err := strconv.Atoi(strings.TrimSpace(*res.RoundText))
	if err != nil {
		return typed
	}

	if res.FightTimeSeconds == nil {
		if seconds, ok := parse.Duration(*res.TimeText); ok {
			typed.FightTimeSeconds = &seconds
		}
	}
	if res.TotalFightTimeSeconds == nil {
		if total, ok := parse.TotalFightSeconds(round, *res.TimeText); ok {
			typed.TotalFightTimeSeconds = &total
		}
	}
	return typed
}

func (s *TypeParsingService) parseStatColumns(ctx context.Context, repos storage.Repos, counters Counters) error {
	stats, err := repos.Stats.ListUntyped(ctx)
	if err != nil {
		return fmt.Errorf("list untyped stats: %w", err)
	}

	for _, st := range stats {
		typed := typedStatFrom(st)
		if typed == (fightstat.Typed{}) {
			counters.add("stat_rows_unparsed", 1)
			continue
		}
		if err := repos.Stats.ApplyTyped(ctx, st.ID, typed); err != nil {
			return err
		}
		counters.add("stat_rows_parsed", 1)
	}
	return nil
}

func typedStatFrom(st fightstat.Stat) fightstat.Typed {
	var typed fightstat.Typed

	if st.SigStrLanded == nil && st.SigStrText != nil {
		if landed, attempted, ok := parse.CountPair(*st.SigStrText); ok {
			typed.SigStrLanded = &landed
			typed.SigStrAttempted = &attempted
		}
	}
	if st.TotalStrLanded == nil && st.TotalStrText != nil {
		if landed, attempted, ok := parse.CountPair(*st.TotalStrText); ok {
			typed.TotalStrLanded = &landed
			typed.TotalStrAttempted = &attempted
		}
	}
	if st.TakedownsLanded == nil && st.TakedownText != nil {
		if landed, attempted, ok := parse.CountPair(*st.TakedownText); ok {
			typed.TakedownsLanded = &landed
			typed.TakedownsAttempted = &attempted
		}
	}
	if st.CtrlSeconds == nil && st.CtrlText != nil {
		if seconds, ok := parse.Duration(*st.CtrlText); ok {
			typed.CtrlSeconds = &seconds
		}
	}
	if st.SigStrPctValue == nil && st.SigStrPctText != nil {
		if pct, ok := parse.Percent(*st.SigStrPctText); ok {
			typed.SigStrPctValue = &pct
		}
	}
	if st.TakedownPctValue == nil && st.TakedownPct != nil {
		if pct, ok := parse.Percent(*st.TakedownPct); ok {
			typed.TakedownPctValue = &pct
		}
	}
	if st.Knockdowns == nil && st.KnockdownText != nil {
		if kd, ok := parse.Knockdowns(*st.KnockdownText); ok {
			typed.Knockdowns = &kd
		}
	}

	pair := func(raw *string, current *int, landedDst, attemptedDst **int) {
		if current != nil || raw == nil {
			return
		}
		if landed, attempted, ok := parse.CountPair(*raw); ok {
			*landedDst = &landed
			*attemptedDst = &attempted
		}
	}
	pair(st.HeadText, st.HeadLanded, &typed.HeadLanded, &typed.HeadAttempted)
	pair(st.BodyText, st.BodyLanded, &typed.BodyLanded, &typed.BodyAttempted)
	pair(st.LegText, st.LegLanded, &typed.LegLanded, &typed.LegAttempted)
	pair(st.DistanceText, st.DistanceLanded, &typed.DistanceLanded, &typed.DistanceAttempted)
	pair(st.ClinchText, st.ClinchLanded, &typed.ClinchLanded, &typed.ClinchAttempted)
	pair(st.GroundText, st.GroundLanded, &typed.GroundLanded, &typed.GroundAttempted)

	if st.SubAttempts == nil && st.SubAttText != nil {
		if v, ok := parse.Count(*st.SubAttText); ok {
			typed.SubAttempts = &v
		}
	}
	if st.Reversals == nil && st.RevText != nil {
		if v, ok := parse.Count(*st.RevText); ok {
			typed.Reversals = &v
		}
	}
	return typed
}
