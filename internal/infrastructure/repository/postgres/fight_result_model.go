package postgres

import (
	"database/sql"

	"github.com/fightlab/fightdata-pipeline/internal/domain/fightresult"
)

type fightResultTableModel struct {
	ID      int64         `db:"id"`
	EventID sql.NullInt64 `db:"event_id"`
	FightID sql.NullInt64 `db:"fight_id"`

	EventName string `db:"event_name"`
	Bout      string `db:"bout"`
	Outcome   string `db:"outcome"`

	Method          sql.NullString `db:"method"`
	WeightClassText sql.NullString `db:"weight_class_text"`
	RoundText       sql.NullString `db:"round_text"`
	TimeText        sql.NullString `db:"time_text"`
	TimeFormatText  sql.NullString `db:"time_format_text"`

	FighterID  sql.NullInt64 `db:"fighter_id"`
	OpponentID sql.NullInt64 `db:"opponent_id"`
	IsWinner   sql.NullBool  `db:"is_winner"`

	FightTimeSeconds      sql.NullInt64 `db:"fight_time_seconds"`
	TotalFightTimeSeconds sql.NullInt64 `db:"total_fight_time_seconds"`

	WeightClass          sql.NullString `db:"weight_class"`
	IsTitleFight         sql.NullBool   `db:"is_title_fight"`
	IsInterimTitle       sql.NullBool   `db:"is_interim_title"`
	IsChampionshipRounds sql.NullBool   `db:"is_championship_rounds"`
}

func (m fightResultTableModel) toDomain() fightresult.Result {
	return fightresult.Result{
		ID:                    m.ID,
		EventID:               nullInt64Ptr(m.EventID),
		FightID:               nullInt64Ptr(m.FightID),
		EventName:             m.EventName,
		Bout:                  m.Bout,
		Outcome:               m.Outcome,
		Method:                nullStringPtr(m.Method),
		WeightClassText:       nullStringPtr(m.WeightClassText),
		RoundText:             nullStringPtr(m.RoundText),
		TimeText:              nullStringPtr(m.TimeText),
		TimeFormatText:        nullStringPtr(m.TimeFormatText),
		FighterID:             nullInt64Ptr(m.FighterID),
		OpponentID:            nullInt64Ptr(m.OpponentID),
		IsWinner:              nullBoolPtr(m.IsWinner),
		FightTimeSeconds:      nullIntPtr(m.FightTimeSeconds),
		TotalFightTimeSeconds: nullIntPtr(m.TotalFightTimeSeconds),
		WeightClass:           nullStringPtr(m.WeightClass),
		IsTitleFight:          nullBoolPtr(m.IsTitleFight),
		IsInterimTitle:        nullBoolPtr(m.IsInterimTitle),
		IsChampionshipRounds:  nullBoolPtr(m.IsChampionshipRounds),
	}
}
