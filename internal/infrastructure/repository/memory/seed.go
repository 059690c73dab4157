package memory

import (
	"github.com/fightlab/fightdata-pipeline/internal/domain/event"
	"github.com/fightlab/fightdata-pipeline/internal/domain/fight"
	"github.com/fightlab/fightdata-pipeline/internal/domain/fighter"
	"github.com/fightlab/fightdata-pipeline/internal/domain/fightresult"
	"github.com/fightlab/fightdata-pipeline/internal/domain/fightstat"
)

// Seed builders return a small coherent scraped dataset: raw text
// populated, every derived column still absent, plus the usual source
// noise (sentinels, trailing whitespace, a placeholder bout).

func SeedEvents() []event.Event {
	return []event.Event{
		{ID: 1, Name: "UFC 257: Poirier vs. McGregor", RawDate: "January 23, 2021", Location: "Abu Dhabi, United Arab Emirates"},
		{ID: 2, Name: "UFC 215: Nunes vs. Shevchenko 2", RawDate: "September 09, 2017", Location: "Edmonton, Alberta, Canada"},
	}
}

func SeedFighters() []fighter.Fighter {
	return []fighter.Fighter{
		{
			ID: 1, FirstName: "Conor", LastName: "McGregor",
			HeightText: strPtr(`5' 9"`), WeightText: strPtr("155 lbs."),
			ReachText: strPtr(`74"`), Stance: strPtr("Southpaw"),
			DOBText: strPtr("Jul 14, 1988"),
		},
		{
			ID: 2, FirstName: "Dustin", LastName: "Poirier",
			HeightText: strPtr(`5' 9"`), WeightText: strPtr("155 lbs."),
			ReachText: strPtr(`72"`), Stance: strPtr("Southpaw"),
			DOBText: strPtr("Jan 19, 1989"),
		},
		{
			ID: 3, FirstName: "Amanda", LastName: "Nunes",
			HeightText: strPtr(`5' 8"`), WeightText: strPtr("135 lbs."),
			ReachText: strPtr("--"), Stance: strPtr("Orthodox"),
			DOBText: strPtr("May 30, 1988"),
		},
		{
			ID: 4, FirstName: "Valentina", LastName: "Shevchenko",
			HeightText: strPtr(`5' 5"`), WeightText: strPtr("125 lbs."),
			ReachText: strPtr(`67"`), Stance: strPtr("--"),
			DOBText: strPtr("Mar 07, 1988"),
		},
	}
}

func SeedFights() []fight.Fight {
	return []fight.Fight{
		{ID: 1, EventID: 1, Bout: "Dustin Poirier vs. Conor McGregor"},
		{ID: 2, EventID: 2, Bout: "Amanda Nunes vs. Valentina Shevchenko"},
		{ID: 3, EventID: 2, Bout: "win vs. "},
	}
}

func SeedResults() []fightresult.Result {
	return []fightresult.Result{
		{
			ID: 1, EventName: "UFC 257: Poirier vs. McGregor",
			Bout: "Dustin Poirier vs. Conor McGregor", Outcome: "W/L",
			Method:          strPtr("KO/TKO  "),
			WeightClassText: strPtr("Lightweight Bout"),
			RoundText:       strPtr("2"), TimeText: strPtr("2:32"),
			TimeFormatText: strPtr("5 Rnd (5-5-5-5-5)"),
		},
		{
			ID: 2, EventName: "UFC 215: Nunes vs. Shevchenko 2",
			Bout: "Amanda Nunes vs. Valentina Shevchenko", Outcome: "W/L",
			Method:          strPtr("Decision - Split"),
			WeightClassText: strPtr("UFC Women's Bantamweight Title Bout"),
			RoundText:       strPtr("5"), TimeText: strPtr("5:00"),
			TimeFormatText: strPtr("5 Rnd (5-5-5-5-5)"),
		},
	}
}

func SeedStats() []fightstat.Stat {
	return []fightstat.Stat{
		{
			ID: 1, EventName: "UFC 257: Poirier vs. McGregor",
			Bout: "Dustin Poirier vs. Conor McGregor", FighterText: "Dustin Poirier", RoundNumber: 1,
			SigStrText: strPtr("17 of 37"), TotalStrText: strPtr("26 of 47"),
			TakedownText: strPtr("1 of 2"), CtrlText: strPtr("2:08"),
			SigStrPctText: strPtr("45%"), TakedownPct: strPtr("50%"),
			KnockdownText: strPtr("0"),
			HeadText:      strPtr("9 of 26"), BodyText: strPtr("5 of 7"), LegText: strPtr("3 of 4"),
			DistanceText: strPtr("10 of 28"), ClinchText: strPtr("2 of 3"), GroundText: strPtr("5 of 6"),
			SubAttText: strPtr("1"), RevText: strPtr("0"),
		},
		{
			ID: 2, EventName: "UFC 257: Poirier vs. McGregor",
			Bout: "Dustin Poirier vs. Conor McGregor", FighterText: "C. McGregor", RoundNumber: 1,
			SigStrText: strPtr("26 of 43"), TotalStrText: strPtr("30 of 48"),
			TakedownText: strPtr("0 of 0"), CtrlText: strPtr("--"),
			SigStrPctText: strPtr("60%"), TakedownPct: strPtr("---"),
			KnockdownText: strPtr("0"),
			HeadText:      strPtr("18 of 33"), BodyText: strPtr("6 of 8"), LegText: strPtr("2 of 2"),
			DistanceText: strPtr("24 of 41"), ClinchText: strPtr("2 of 2"), GroundText: strPtr("0 of 0"),
			SubAttText: strPtr("0"), RevText: strPtr("0"),
		},
		{
			ID: 3, EventName: "UFC 215: Nunes vs. Shevchenko 2",
			Bout: "Amanda Nunes vs. Valentina Shevchenko", FighterText: "Amanda Nunes", RoundNumber: 5,
			SigStrText: strPtr("9 of 22"), TotalStrText: strPtr("21 of 36"),
			TakedownText: strPtr("1 of 1"), CtrlText: strPtr("3:11"),
			SigStrPctText: strPtr("40%"), TakedownPct: strPtr("100%"),
			KnockdownText: strPtr("0"),
			HeadText:      strPtr("5 of 14"), BodyText: strPtr("2 of 4"), LegText: strPtr("2 of 4"),
			DistanceText: strPtr("4 of 13"), ClinchText: strPtr("1 of 2"), GroundText: strPtr("4 of 7"),
			SubAttText: strPtr("0"), RevText: strPtr("1"),
		},
	}
}

func SeededStore() *Store {
	return NewSeededStore(SeedEvents(), SeedFighters(), SeedFights(), SeedResults(), SeedStats())
}

func strPtr(s string) *string {
	return &s
}
