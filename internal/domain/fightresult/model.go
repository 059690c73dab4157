package fightresult

// Outcome codes as written by the source. The code describes the bout
// from fighter A's perspective: "W/L" means A won, "L/W" means B won.
const (
	OutcomeAWon      = "W/L"
	OutcomeBWon      = "L/W"
	OutcomeNoContest = "NC/NC"
	OutcomeDraw      = "D/D"
)

// IsDecisive reports whether an outcome code declares a winner.
func IsDecisive(outcome string) bool {
	return outcome == OutcomeAWon || outcome == OutcomeBWon
}

// Result is the outcome row for one fight. FighterID holds the winner for
// decisive outcomes (fighter A for draws and no-contests, preserving the
// source order); OpponentID holds the other side. IsWinner is true only
// for decisive outcomes.
type Result struct {
	ID      int64
	EventID *int64
	FightID *int64

	EventName string
	Bout      string
	Outcome   string

	Method          *string
	WeightClassText *string
	RoundText       *string
	TimeText        *string
	TimeFormatText  *string

	FighterID  *int64
	OpponentID *int64
	IsWinner   *bool

	FightTimeSeconds      *int
	TotalFightTimeSeconds *int

	WeightClass          *string
	IsTitleFight         *bool
	IsInterimTitle       *bool
	IsChampionshipRounds *bool
}

// OutcomeCounts reports how many rows each outcome branch touched.
type OutcomeCounts struct {
	WinnerA  int64
	WinnerB  int64
	NoWinner int64
}

// TypedTimes holds the parsed time columns for one result row.
type TypedTimes struct {
	FightTimeSeconds      *int
	TotalFightTimeSeconds *int
}

// Derived holds the derived categorical columns for one result row.
type Derived struct {
	WeightClass          *string
	IsTitleFight         *bool
	IsInterimTitle       *bool
	IsChampionshipRounds *bool
}
