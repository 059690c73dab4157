package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fightlab/fightdata-pipeline/internal/domain/fighter"
	qb "github.com/fightlab/fightdata-pipeline/internal/platform/querybuilder"
)

const fighterColumns = "id, first_name, last_name, height_text, weight_text, reach_text, stance, dob_text, height_inches, weight_pounds, reach_inches, dob"

type FighterRepository struct {
	db sqlx.ExtContext
}

func NewFighterRepository(db sqlx.ExtContext) *FighterRepository {
	return &FighterRepository{db: db}
}

func (r *FighterRepository) ListAll(ctx context.Context) ([]fighter.Fighter, error) {
	query, args, err := qb.Select(fighterColumns).
		From("ufc_fighters").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fighters query: %w", err)
	}

	var rows []fighterTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fighters: %w", err)
	}

	out := make([]fighter.Fighter, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FighterRepository) ClearProfileSentinels(ctx context.Context) (int64, error) {
	var total int64
	for _, column := range fighterProfileTextColumns {
		query, args, err := qb.Update("ufc_fighters").
			SetExpr(column, "NULL").
			Where(qb.In(column, sentinelValues())).
			ToSQL()
		if err != nil {
			return total, fmt.Errorf("build clear %s sentinels query: %w", column, err)
		}

		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return total, fmt.Errorf("clear %s sentinels: %w", column, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return total, fmt.Errorf("clear %s sentinels rows affected: %w", column, err)
		}
		total += affected
	}
	return total, nil
}

func (r *FighterRepository) CountProfileSentinels(ctx context.Context) (int64, error) {
	var total int64
	for _, column := range fighterProfileTextColumns {
		query, args, err := qb.Select("COUNT(*)").
			From("ufc_fighters").
			Where(qb.In(column, sentinelValues())).
			ToSQL()
		if err != nil {
			return 0, fmt.Errorf("build count %s sentinels query: %w", column, err)
		}

		var count int64
		if err := sqlx.GetContext(ctx, r.db, &count, query, args...); err != nil {
			return 0, fmt.Errorf("count %s sentinels: %w", column, err)
		}
		total += count
	}
	return total, nil
}

const unparsedProfileFilter = "(height_text IS NOT NULL AND height_inches IS NULL)" +
	" OR (weight_text IS NOT NULL AND weight_pounds IS NULL)" +
	" OR (reach_text IS NOT NULL AND reach_inches IS NULL)" +
	" OR (dob_text IS NOT NULL AND dob IS NULL)"

func (r *FighterRepository) ListUnparsedProfiles(ctx context.Context) ([]fighter.Fighter, error) {
	query, args, err := qb.Select(fighterColumns).
		From("ufc_fighters").
		Where(qb.Expr(unparsedProfileFilter)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select unparsed profiles query: %w", err)
	}

	var rows []fighterTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select unparsed profiles: %w", err)
	}

	out := make([]fighter.Fighter, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FighterRepository) ApplyTypedProfile(ctx context.Context, id int64, profile fighter.TypedProfile) error {
	builder := qb.Update("ufc_fighters")
	sets := 0
	if profile.HeightInches != nil {
		builder.SetExpr("height_inches", "COALESCE(height_inches, ?)", *profile.HeightInches)
		sets++
	}
	if profile.WeightPounds != nil {
		builder.SetExpr("weight_pounds", "COALESCE(weight_pounds, ?)", *profile.WeightPounds)
		sets++
	}
	if profile.ReachInches != nil {
		builder.SetExpr("reach_inches", "COALESCE(reach_inches, ?)", *profile.ReachInches)
		sets++
	}
	if profile.DOB != nil {
		builder.SetExpr("dob", "COALESCE(dob, ?)", *profile.DOB)
		sets++
	}
	if sets == 0 {
		return nil
	}

	query, args, err := builder.Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build update fighter profile query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update fighter profile: %w", err)
	}
	return nil
}

func (r *FighterRepository) CountUnparsedProfiles(ctx context.Context) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").
		From("ufc_fighters").
		Where(qb.Expr(unparsedProfileFilter)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count unparsed profiles query: %w", err)
	}

	var count int64
	if err := sqlx.GetContext(ctx, r.db, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count unparsed profiles: %w", err)
	}
	return count, nil
}
