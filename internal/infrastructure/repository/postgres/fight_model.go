package postgres

import (
	"database/sql"

	"github.com/fightlab/fightdata-pipeline/internal/domain/fight"
)

// realBoutFilter excludes placeholder scheduling stubs, which carry an
// outcome word instead of a second fighter name.
const realBoutFilter = "btrim(split_part(bout, ' vs. ', 2)) <> ''"

type fightTableModel struct {
	ID         int64         `db:"id"`
	EventID    int64         `db:"event_id"`
	Bout       string        `db:"bout"`
	FighterAID sql.NullInt64 `db:"fighter_a_id"`
	FighterBID sql.NullInt64 `db:"fighter_b_id"`
}

func (m fightTableModel) toDomain() fight.Fight {
	return fight.Fight{
		ID:         m.ID,
		EventID:    m.EventID,
		Bout:       m.Bout,
		FighterAID: nullInt64Ptr(m.FighterAID),
		FighterBID: nullInt64Ptr(m.FighterBID),
	}
}
