package postgres

import (
	"database/sql"

	"github.com/fightlab/fightdata-pipeline/internal/domain/fightstat"
)

// statSentinelColumns are the raw stat columns subject to sentinel
// cleanup. The "X of Y" pair columns keep their text; an absent side of
// a pair is detected at parse time instead.
var statSentinelColumns = []string{
	"ctrl_text", "sig_str_pct_text", "takedown_pct_text",
}

type fightStatTableModel struct {
	ID      int64         `db:"id"`
	EventID sql.NullInt64 `db:"event_id"`
	FightID sql.NullInt64 `db:"fight_id"`

	EventName   string `db:"event_name"`
	Bout        string `db:"bout"`
	FighterText string `db:"fighter_text"`
	RoundNumber int    `db:"round_number"`

	FighterID sql.NullInt64 `db:"fighter_id"`

	SigStrText    sql.NullString `db:"sig_str_text"`
	TotalStrText  sql.NullString `db:"total_str_text"`
	TakedownText  sql.NullString `db:"takedown_text"`
	CtrlText      sql.NullString `db:"ctrl_text"`
	SigStrPctText sql.NullString `db:"sig_str_pct_text"`
	TakedownPct   sql.NullString `db:"takedown_pct_text"`
	KnockdownText sql.NullString `db:"knockdown_text"`
	HeadText      sql.NullString `db:"head_text"`
	BodyText      sql.NullString `db:"body_text"`
	LegText       sql.NullString `db:"leg_text"`
	DistanceText  sql.NullString `db:"distance_text"`
	ClinchText    sql.NullString `db:"clinch_text"`
	GroundText    sql.NullString `db:"ground_text"`
	SubAttText    sql.NullString `db:"sub_att_text"`
	RevText       sql.NullString `db:"rev_text"`

	SigStrLanded       sql.NullInt64   `db:"sig_str_landed"`
	SigStrAttempted    sql.NullInt64   `db:"sig_str_attempted"`
	TotalStrLanded     sql.NullInt64   `db:"total_str_landed"`
	TotalStrAttempted  sql.NullInt64   `db:"total_str_attempted"`
	TakedownsLanded    sql.NullInt64   `db:"takedowns_landed"`
	TakedownsAttempted sql.NullInt64   `db:"takedowns_attempted"`
	CtrlSeconds        sql.NullInt64   `db:"ctrl_seconds"`
	SigStrPctValue     sql.NullFloat64 `db:"sig_str_pct"`
	TakedownPctValue   sql.NullFloat64 `db:"takedown_pct"`
	Knockdowns         sql.NullInt64   `db:"knockdowns"`
	HeadLanded         sql.NullInt64   `db:"head_landed"`
	HeadAttempted      sql.NullInt64   `db:"head_attempted"`
	BodyLanded         sql.NullInt64   `db:"body_landed"`
	BodyAttempted      sql.NullInt64   `db:"body_attempted"`
	LegLanded          sql.NullInt64   `db:"leg_landed"`
	LegAttempted       sql.NullInt64   `db:"leg_attempted"`
	DistanceLanded     sql.NullInt64   `db:"distance_landed"`
	DistanceAttempted  sql.NullInt64   `db:"distance_attempted"`
	ClinchLanded       sql.NullInt64   `db:"clinch_landed"`
	ClinchAttempted    sql.NullInt64   `db:"clinch_attempted"`
	GroundLanded       sql.NullInt64   `db:"ground_landed"`
	GroundAttempted    sql.NullInt64   `db:"ground_attempted"`
	SubAttempts        sql.NullInt64   `db:"sub_att"`
	Reversals          sql.NullInt64   `db:"rev"`
}

func (m fightStatTableModel) toDomain() fightstat.Stat {
	return fightstat.Stat{
		ID:                 m.ID,
		EventID:            nullInt64Ptr(m.EventID),
		FightID:            nullInt64Ptr(m.FightID),
		EventName:          m.EventName,
		Bout:               m.Bout,
		FighterText:        m.FighterText,
		RoundNumber:        m.RoundNumber,
		FighterID:          nullInt64Ptr(m.FighterID),
		SigStrText:         nullStringPtr(m.SigStrText),
		TotalStrText:       nullStringPtr(m.TotalStrText),
		TakedownText:       nullStringPtr(m.TakedownText),
		CtrlText:           nullStringPtr(m.CtrlText),
		SigStrPctText:      nullStringPtr(m.SigStrPctText),
		TakedownPct:        nullStringPtr(m.TakedownPct),
		KnockdownText:      nullStringPtr(m.KnockdownText),
		HeadText:           nullStringPtr(m.HeadText),
		BodyText:           nullStringPtr(m.BodyText),
		LegText:            nullStringPtr(m.LegText),
		DistanceText:       nullStringPtr(m.DistanceText),
		ClinchText:         nullStringPtr(m.ClinchText),
		GroundText:         nullStringPtr(m.GroundText),
		SubAttText:         nullStringPtr(m.SubAttText),
		RevText:            nullStringPtr(m.RevText),
		SigStrLanded:       nullIntPtr(m.SigStrLanded),
		SigStrAttempted:    nullIntPtr(m.SigStrAttempted),
		TotalStrLanded:     nullIntPtr(m.TotalStrLanded),
		TotalStrAttempted:  nullIntPtr(m.TotalStrAttempted),
		TakedownsLanded:    nullIntPtr(m.TakedownsLanded),
		TakedownsAttempted: nullIntPtr(m.TakedownsAttempted),
		CtrlSeconds:        nullIntPtr(m.CtrlSeconds),
		SigStrPctValue:     nullFloat64Ptr(m.SigStrPctValue),
		TakedownPctValue:   nullFloat64Ptr(m.TakedownPctValue),
		Knockdowns:         nullIntPtr(m.Knockdowns),
		HeadLanded:         nullIntPtr(m.HeadLanded),
		HeadAttempted:      nullIntPtr(m.HeadAttempted),
		BodyLanded:         nullIntPtr(m.BodyLanded),
		BodyAttempted:      nullIntPtr(m.BodyAttempted),
		LegLanded:          nullIntPtr(m.LegLanded),
		LegAttempted:       nullIntPtr(m.LegAttempted),
		DistanceLanded:     nullIntPtr(m.DistanceLanded),
		DistanceAttempted:  nullIntPtr(m.DistanceAttempted),
		ClinchLanded:       nullIntPtr(m.ClinchLanded),
		ClinchAttempted:    nullIntPtr(m.ClinchAttempted),
		GroundLanded:       nullIntPtr(m.GroundLanded),
		GroundAttempted:    nullIntPtr(m.GroundAttempted),
		SubAttempts:        nullIntPtr(m.SubAttempts),
		Reversals:          nullIntPtr(m.Reversals),
	}
}

type pairCandidatesRowModel struct {
	StatID      int64  `db:"stat_id"`
	FighterText string `db:"fighter_text"`
	AID         int64  `db:"a_id"`
	AName       string `db:"a_name"`
	BID         int64  `db:"b_id"`
	BName       string `db:"b_name"`
}

func (m pairCandidatesRowModel) toDomain() fightstat.PairCandidates {
	return fightstat.PairCandidates{
		StatID:      m.StatID,
		FighterText: m.FighterText,
		AID:         m.AID,
		AName:       m.AName,
		BID:         m.BID,
		BName:       m.BName,
	}
}
