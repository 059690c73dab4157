package postgres

import (
	"database/sql"

	"github.com/fightlab/fightdata-pipeline/internal/domain/fighter"
)

// fighterProfileTextColumns are the raw profile columns subject to
// sentinel cleanup.
var fighterProfileTextColumns = []string{
	"height_text", "weight_text", "reach_text", "stance", "dob_text",
}

type fighterTableModel struct {
	ID        int64  `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`

	HeightText sql.NullString `db:"height_text"`
	WeightText sql.NullString `db:"weight_text"`
	ReachText  sql.NullString `db:"reach_text"`
	Stance     sql.NullString `db:"stance"`
	DOBText    sql.NullString `db:"dob_text"`

	HeightInches sql.NullFloat64 `db:"height_inches"`
	WeightPounds sql.NullFloat64 `db:"weight_pounds"`
	ReachInches  sql.NullFloat64 `db:"reach_inches"`
	DOB          sql.NullTime    `db:"dob"`
}

func (m fighterTableModel) toDomain() fighter.Fighter {
	return fighter.Fighter{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		HeightText:   nullStringPtr(m.HeightText),
		WeightText:   nullStringPtr(m.WeightText),
		ReachText:    nullStringPtr(m.ReachText),
		Stance:       nullStringPtr(m.Stance),
		DOBText:      nullStringPtr(m.DOBText),
		HeightInches: nullFloat64Ptr(m.HeightInches),
		WeightPounds: nullFloat64Ptr(m.WeightPounds),
		ReachInches:  nullFloat64Ptr(m.ReachInches),
		DOB:          nullTimePtr(m.DOB),
	}
}
