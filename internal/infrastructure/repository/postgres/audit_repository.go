package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fightlab/fightdata-pipeline/internal/domain/audit"
	"github.com/fightlab/fightdata-pipeline/internal/normalize"
	qb "github.com/fightlab/fightdata-pipeline/internal/platform/querybuilder"
)

// auditedTables are the tables covered by row-count truncation guards.
var auditedTables = []string{
	"ufc_events", "ufc_fighters", "ufc_fights", "ufc_fight_results", "ufc_fight_stats",
}

// typedCoverageColumns maps each typed column to the raw text column it
// is parsed from. Coverage is measured over rows where the raw text is
// present.
var typedCoverageColumns = []struct {
	table string
	typed string
	raw   string
}{
	{table: "ufc_events", typed: "date_proper", raw: "date_text"},
	{table: "ufc_fighters", typed: "height_inches", raw: "height_text"},
	{table: "ufc_fighters", typed: "weight_pounds", raw: "weight_text"},
	{table: "ufc_fighters", typed: "reach_inches", raw: "reach_text"},
	{table: "ufc_fighters", typed: "dob", raw: "dob_text"},
	{table: "ufc_fight_results", typed: "fight_time_seconds", raw: "time_text"},
	{table: "ufc_fight_results", typed: "total_fight_time_seconds", raw: "time_text"},
	{table: "ufc_fight_results", typed: "weight_class", raw: "weight_class_text"},
	{table: "ufc_fight_stats", typed: "sig_str_landed", raw: "sig_str_text"},
	{table: "ufc_fight_stats", typed: "total_str_landed", raw: "total_str_text"},
	{table: "ufc_fight_stats", typed: "takedowns_landed", raw: "takedown_text"},
	{table: "ufc_fight_stats", typed: "ctrl_seconds", raw: "ctrl_text"},
	{table: "ufc_fight_stats", typed: "knockdowns", raw: "knockdown_text"},
	{table: "ufc_fight_stats", typed: "head_landed", raw: "head_text"},
	{table: "ufc_fight_stats", typed: "body_landed", raw: "body_text"},
	{table: "ufc_fight_stats", typed: "leg_landed", raw: "leg_text"},
	{table: "ufc_fight_stats", typed: "distance_landed", raw: "distance_text"},
	{table: "ufc_fight_stats", typed: "clinch_landed", raw: "clinch_text"},
	{table: "ufc_fight_stats", typed: "ground_landed", raw: "ground_text"},
	{table: "ufc_fight_stats", typed: "sub_att", raw: "sub_att_text"},
	{table: "ufc_fight_stats", typed: "rev", raw: "rev_text"},
}

type coverageRowModel struct {
	Total     int64 `db:"total"`
	Populated int64 `db:"populated"`
}

func (m coverageRowModel) toDomain() audit.Coverage {
	return audit.Coverage{Total: m.Total, Populated: m.Populated}
}

type AuditRepository struct {
	db sqlx.ExtContext
}

func NewAuditRepository(db sqlx.ExtContext) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) FightRefCoverage(ctx context.Context) (fighterA, fighterB audit.Coverage, err error) {
	fighterA, err = r.coverage(ctx, "ufc_fights", "fighter_a_id", realBoutFilter)
	if err != nil {
		return audit.Coverage{}, audit.Coverage{}, err
	}
	fighterB, err = r.coverage(ctx, "ufc_fights", "fighter_b_id", realBoutFilter)
	if err != nil {
		return audit.Coverage{}, audit.Coverage{}, err
	}
	return fighterA, fighterB, nil
}

func (r *AuditRepository) ResultRefCoverage(ctx context.Context) (fighter, opponent audit.Coverage, err error) {
	fighter, err = r.coverage(ctx, "ufc_fight_results", "fighter_id", "")
	if err != nil {
		return audit.Coverage{}, audit.Coverage{}, err
	}
	opponent, err = r.coverage(ctx, "ufc_fight_results", "opponent_id", "")
	if err != nil {
		return audit.Coverage{}, audit.Coverage{}, err
	}
	return fighter, opponent, nil
}

func (r *AuditRepository) StatRefCoverage(ctx context.Context) (fighter, fight audit.Coverage, err error) {
	fighter, err = r.coverage(ctx, "ufc_fight_stats", "fighter_id", "")
	if err != nil {
		return audit.Coverage{}, audit.Coverage{}, err
	}
	fight, err = r.coverage(ctx, "ufc_fight_stats", "fight_id", "")
	if err != nil {
		return audit.Coverage{}, audit.Coverage{}, err
	}
	return fighter, fight, nil
}

func (r *AuditRepository) EventDateCoverage(ctx context.Context) (audit.Coverage, error) {
	return r.coverage(ctx, "ufc_events", "date_proper", "date_text IS NOT NULL AND btrim(date_text) <> ''")
}

func (r *AuditRepository) SelfPairedFights(ctx context.Context) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").
		From("ufc_fights").
		Where(
			qb.IsNotNull("fighter_a_id"),
			qb.Expr("fighter_a_id = fighter_b_id"),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count self-paired fights query: %w", err)
	}

	var count int64
	if err := sqlx.GetContext(ctx, r.db, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count self-paired fights: %w", err)
	}
	return count, nil
}

func (r *AuditRepository) SentinelResidue(ctx context.Context) (map[string]int64, error) {
	type target struct {
		table   string
		columns []string
	}
	targets := []target{
		{table: "ufc_fighters", columns: fighterProfileTextColumns},
		{table: "ufc_fight_stats", columns: statSentinelColumns},
	}

	out := make(map[string]int64)
	for _, t := range targets {
		for _, column := range t.columns {
			query, args, err := qb.Select("COUNT(*)").
				From(t.table).
				Where(qb.In(column, sentinelValues())).
				ToSQL()
			if err != nil {
				return nil, fmt.Errorf("build sentinel residue query for %s.%s: %w", t.table, column, err)
			}

			var count int64
			if err := sqlx.GetContext(ctx, r.db, &count, query, args...); err != nil {
				return nil, fmt.Errorf("count sentinel residue for %s.%s: %w", t.table, column, err)
			}
			out[t.table+"."+column] = count
		}
	}
	return out, nil
}

func (r *AuditRepository) UntrimmedMethods(ctx context.Context) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").
		From("ufc_fight_results").
		Where(qb.Expr(untrimmedMethodFilter)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count untrimmed methods query: %w", err)
	}

	var count int64
	if err := sqlx.GetContext(ctx, r.db, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count untrimmed methods: %w", err)
	}
	return count, nil
}

func (r *AuditRepository) NonCanonicalWeightClasses(ctx context.Context) ([]string, error) {
	canonical := make([]any, 0, len(normalize.CanonicalWeightClasses))
	for _, c := range normalize.CanonicalWeightClasses {
		canonical = append(canonical, c)
	}

	placeholders := ""
	for i := range canonical {
		if i > 0 {
			placeholders += ", "
		}
		placeholders += "?"
	}

	query, args, err := qb.Select("DISTINCT weight_class").
		From("ufc_fight_results").
		Where(
			qb.IsNotNull("weight_class"),
			qb.Expr("weight_class NOT IN ("+placeholders+")", canonical...),
		).
		OrderBy("weight_class").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build non-canonical weight classes query: %w", err)
	}

	var values []string
	if err := sqlx.SelectContext(ctx, r.db, &values, query, args...); err != nil {
		return nil, fmt.Errorf("select non-canonical weight classes: %w", err)
	}
	return values, nil
}

func (r *AuditRepository) MissingTitleFlags(ctx context.Context) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").
		From("ufc_fight_results").
		Where(qb.IsNotNull("weight_class_text"), qb.IsNull("is_title_fight")).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count missing title flags query: %w", err)
	}

	var count int64
	if err := sqlx.GetContext(ctx, r.db, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count missing title flags: %w", err)
	}
	return count, nil
}

func (r *AuditRepository) TypedCoverage(ctx context.Context) (map[string]audit.Coverage, error) {
	out := make(map[string]audit.Coverage, len(typedCoverageColumns))
	for _, c := range typedCoverageColumns {
		coverage, err := r.coverage(ctx, c.table, c.typed, c.raw+" IS NOT NULL")
		if err != nil {
			return nil, err
		}
		out[c.table+"."+c.typed] = coverage
	}
	return out, nil
}

func (r *AuditRepository) RowCounts(ctx context.Context) (map[string]int64, error) {
	out := make(map[string]int64, len(auditedTables))
	for _, table := range auditedTables {
		query, args, err := qb.Select("COUNT(*)").From(table).ToSQL()
		if err != nil {
			return nil, fmt.Errorf("build row count query for %s: %w", table, err)
		}

		var count int64
		if err := sqlx.GetContext(ctx, r.db, &count, query, args...); err != nil {
			return nil, fmt.Errorf("count rows for %s: %w", table, err)
		}
		out[table] = count
	}
	return out, nil
}

func (r *AuditRepository) coverage(ctx context.Context, table, column, filter string) (audit.Coverage, error) {
	builder := qb.Select("COUNT(*) AS total", "COUNT("+column+") AS populated").From(table)
	if filter != "" {
		builder.Where(qb.Expr(filter))
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return audit.Coverage{}, fmt.Errorf("build coverage query for %s.%s: %w", table, column, err)
	}

	var row coverageRowModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		return audit.Coverage{}, fmt.Errorf("select coverage for %s.%s: %w", table, column, err)
	}
	return row.toDomain(), nil
}
