package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fightlab/fightdata-pipeline/internal/domain/event"
	qb "github.com/fightlab/fightdata-pipeline/internal/platform/querybuilder"
)

type EventRepository struct {
	db sqlx.ExtContext
}

func NewEventRepository(db sqlx.ExtContext) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) ListUndated(ctx context.Context) ([]event.Event, error) {
	query, args, err := qb.Select("id", "name", "date_text", "location", "date_proper").
		From("ufc_events").
		Where(
			qb.IsNull("date_proper"),
			qb.IsNotNull("date_text"),
			qb.Expr("btrim(date_text) <> ''"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select undated events query: %w", err)
	}

	var rows []eventTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select undated events: %w", err)
	}

	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *EventRepository) SetProperDate(ctx context.Context, id int64, date time.Time) error {
	query, args, err := qb.Update("ufc_events").
		Set("date_proper", date).
		Where(qb.Eq("id", id), qb.IsNull("date_proper")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update event date query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update event date: %w", err)
	}
	return nil
}

func (r *EventRepository) CountUndated(ctx context.Context) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").
		From("ufc_events").
		Where(
			qb.IsNull("date_proper"),
			qb.IsNotNull("date_text"),
			qb.Expr("btrim(date_text) <> ''"),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count undated events query: %w", err)
	}

	var count int64
	if err := sqlx.GetContext(ctx, r.db, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count undated events: %w", err)
	}
	return count, nil
}
