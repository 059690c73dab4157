package postgres

import (
	"database/sql"

	"github.com/fightlab/fightdata-pipeline/internal/domain/event"
)

type eventTableModel struct {
	ID         int64          `db:"id"`
	Name       string         `db:"name"`
	DateText   sql.NullString `db:"date_text"`
	Location   sql.NullString `db:"location"`
	DateProper sql.NullTime   `db:"date_proper"`
}

func (m eventTableModel) toDomain() event.Event {
	return event.Event{
		ID:         m.ID,
		Name:       m.Name,
		RawDate:    m.DateText.String,
		Location:   m.Location.String,
		DateProper: nullTimePtr(m.DateProper),
	}
}
