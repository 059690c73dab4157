package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fightlab/fightdata-pipeline/internal/domain/fight"
	qb "github.com/fightlab/fightdata-pipeline/internal/platform/querybuilder"
)

type FightRepository struct {
	db sqlx.ExtContext
}

func NewFightRepository(db sqlx.ExtContext) *FightRepository {
	return &FightRepository{db: db}
}

func (r *FightRepository) ListUnresolved(ctx context.Context) ([]fight.Fight, error) {
	query, args, err := qb.Select("id", "event_id", "bout", "fighter_a_id", "fighter_b_id").
		From("ufc_fights").
		Where(
			qb.Expr("(fighter_a_id IS NULL OR fighter_b_id IS NULL)"),
			qb.Expr(realBoutFilter),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select unresolved fights query: %w", err)
	}

	var rows []fightTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select unresolved fights: %w", err)
	}

	out := make([]fight.Fight, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FightRepository) SetFighters(ctx context.Context, id int64, fighterAID, fighterBID *int64) error {
	builder := qb.Update("ufc_fights")
	sets := 0
	if fighterAID != nil {
		builder.SetExpr("fighter_a_id", "COALESCE(fighter_a_id, ?)", *fighterAID)
		sets++
	}
	if fighterBID != nil {
		builder.SetExpr("fighter_b_id", "COALESCE(fighter_b_id, ?)", *fighterBID)
		sets++
	}
	if sets == 0 {
		return nil
	}

	query, args, err := builder.Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build update fight fighters query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update fight fighters: %w", err)
	}
	return nil
}

func (r *FightRepository) CountUnresolved(ctx context.Context) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").
		From("ufc_fights").
		Where(
			qb.Expr("(fighter_a_id IS NULL OR fighter_b_id IS NULL)"),
			qb.Expr(realBoutFilter),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count unresolved fights query: %w", err)
	}

	var count int64
	if err := sqlx.GetContext(ctx, r.db, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count unresolved fights: %w", err)
	}
	return count, nil
}
