package fightstat

// Stat is one per-fighter, per-round stat row. Strike counts arrive as
// "X of Y" text, control time as "M:SS", percentages as "NN%"; the typed
// columns are populated by the pipeline and never overwritten.
type Stat struct {
	ID      int64
	EventID *int64
	FightID *int64

	EventName   string
	Bout        string
	FighterText string
	RoundNumber int

	FighterID *int64

	SigStrText    *string
	TotalStrText  *string
	TakedownText  *string
	CtrlText      *string
	SigStrPctText *string
	TakedownPct   *string
	KnockdownText *string
	HeadText      *string
	BodyText      *string
	LegText       *string
	DistanceText  *string
	ClinchText    *string
	GroundText    *string
	SubAttText    *string
	RevText       *string

	SigStrLanded       *int
	SigStrAttempted    *int
	TotalStrLanded     *int
	TotalStrAttempted  *int
	TakedownsLanded    *int
	TakedownsAttempted *int
	CtrlSeconds        *int
	SigStrPctValue     *float64
	TakedownPctValue   *float64
	Knockdowns         *int
	HeadLanded         *int
	HeadAttempted      *int
	BodyLanded         *int
	BodyAttempted      *int
	LegLanded          *int
	LegAttempted       *int
	DistanceLanded     *int
	DistanceAttempted  *int
	ClinchLanded       *int
	ClinchAttempted    *int
	GroundLanded       *int
	GroundAttempted    *int
	SubAttempts        *int
	Reversals          *int
}

// PairCandidates carries one still-unresolved stat row together with the
// two fighters its fight already resolved to.
type PairCandidates struct {
	StatID      int64
	FighterText string
	AID         int64
	AName       string
	BID         int64
	BName       string
}

// Typed holds the parsed stat columns for one row. Nil fields are left
// untouched on write.
type Typed struct {
	SigStrLanded       *int
	SigStrAttempted    *int
	TotalStrLanded     *int
	TotalStrAttempted  *int
	TakedownsLanded    *int
	TakedownsAttempted *int
	CtrlSeconds        *int
	SigStrPctValue     *float64
	TakedownPctValue   *float64
	Knockdowns         *int
	HeadLanded         *int
	HeadAttempted      *int
	BodyLanded         *int
	BodyAttempted      *int
	LegLanded          *int
	LegAttempted       *int
	DistanceLanded     *int
	DistanceAttempted  *int
	ClinchLanded       *int
	ClinchAttempted    *int
	GroundLanded       *int
	GroundAttempted    *int
	SubAttempts        *int
	Reversals          *int
}
