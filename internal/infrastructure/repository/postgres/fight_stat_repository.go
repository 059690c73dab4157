package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fightlab/fightdata-pipeline/internal/domain/fightstat"
	qb "github.com/fightlab/fightdata-pipeline/internal/platform/querybuilder"
)

const fightStatColumns = "id, event_id, fight_id, event_name, bout, fighter_text, round_number, fighter_id, " +
	"sig_str_text, total_str_text, takedown_text, ctrl_text, sig_str_pct_text, takedown_pct_text, knockdown_text, " +
	"head_text, body_text, leg_text, distance_text, clinch_text, ground_text, sub_att_text, rev_text, " +
	"sig_str_landed, sig_str_attempted, total_str_landed, total_str_attempted, takedowns_landed, takedowns_attempted, " +
	"ctrl_seconds, sig_str_pct, takedown_pct, knockdowns, " +
	"head_landed, head_attempted, body_landed, body_attempted, leg_landed, leg_attempted, " +
	"distance_landed, distance_attempted, clinch_landed, clinch_attempted, ground_landed, ground_attempted, " +
	"sub_att, rev"

type FightStatRepository struct {
	db sqlx.ExtContext
}

func NewFightStatRepository(db sqlx.ExtContext) *FightStatRepository {
	return &FightStatRepository{db: db}
}

func (r *FightStatRepository) ResolveEventRefs(ctx context.Context) (int64, error) {
	query, args, err := qb.Update("ufc_fight_stats fs").
		SetExpr("event_id", "e.id").
		Suffix("FROM ufc_events e WHERE btrim(fs.event_name) = btrim(e.name) AND fs.event_id IS NULL").
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build resolve stat event refs query: %w", err)
	}
	return r.exec(ctx, "resolve stat event refs", query, args)
}

func (r *FightStatRepository) ResolveFightRefs(ctx context.Context) (int64, error) {
	query, args, err := qb.Update("ufc_fight_stats fs").
		SetExpr("fight_id", "f.id").
		Suffix("FROM ufc_fights f WHERE f.event_id = fs.event_id AND btrim(fs.bout) = btrim(f.bout) AND fs.fight_id IS NULL").
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build resolve stat fight refs query: %w", err)
	}
	return r.exec(ctx, "resolve stat fight refs", query, args)
}

func (r *FightStatRepository) ResolveFightersExact(ctx context.Context) (int64, error) {
	var total int64
	for _, side := range []struct {
		label    string
		idColumn string
	}{
		{label: "a", idColumn: "fighter_a_id"},
		{label: "b", idColumn: "fighter_b_id"},
	} {
		query, args, err := qb.Update("ufc_fight_stats fs").
			SetExpr("fighter_id", "x.id").
			Suffix("FROM ufc_fights f JOIN ufc_fighters x ON x.id = f." + side.idColumn +
				" WHERE fs.fight_id = f.id AND fs.fighter_id IS NULL" +
				" AND lower(btrim(fs.fighter_text)) = lower(btrim(concat_ws(' ', nullif(x.first_name, ''), nullif(x.last_name, ''))))").
			ToSQL()
		if err != nil {
			return total, fmt.Errorf("build resolve stat fighter %s query: %w", side.label, err)
		}

		affected, err := r.exec(ctx, "resolve stat fighter "+side.label, query, args)
		if err != nil {
			return total, err
		}
		total += affected
	}
	return total, nil
}

func (r *FightStatRepository) ListUnresolvedWithCandidates(ctx context.Context) ([]fightstat.PairCandidates, error) {
	query, args, err := qb.Select(
		"fs.id AS stat_id",
		"fs.fighter_text AS fighter_text",
		"fa.id AS a_id",
		"btrim(concat_ws(' ', nullif(fa.first_name, ''), nullif(fa.last_name, ''))) AS a_name",
		"fb.id AS b_id",
		"btrim(concat_ws(' ', nullif(fb.first_name, ''), nullif(fb.last_name, ''))) AS b_name",
	).
		From("ufc_fight_stats fs" +
			" JOIN ufc_fights f ON fs.fight_id = f.id" +
			" JOIN ufc_fighters fa ON fa.id = f.fighter_a_id" +
			" JOIN ufc_fighters fb ON fb.id = f.fighter_b_id").
		Where(qb.IsNull("fs.fighter_id")).
		OrderBy("fs.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select unresolved stat fighters query: %w", err)
	}

	var rows []pairCandidatesRowModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select unresolved stat fighters: %w", err)
	}

	out := make([]fightstat.PairCandidates, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FightStatRepository) SetFighter(ctx context.Context, statID, fighterID int64) error {
	query, args, err := qb.Update("ufc_fight_stats").
		Set("fighter_id", fighterID).
		Where(qb.Eq("id", statID), qb.IsNull("fighter_id")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update stat fighter query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update stat fighter: %w", err)
	}
	return nil
}

func (r *FightStatRepository) CountUnresolvedFighters(ctx context.Context) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").
		From("ufc_fight_stats").
		Where(qb.IsNotNull("fight_id"), qb.IsNull("fighter_id")).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count unresolved stat fighters query: %w", err)
	}
	return r.get(ctx, "count unresolved stat fighters", query, args)
}

func (r *FightStatRepository) ClearSentinels(ctx context.Context) (int64, error) {
	var total int64
	for _, column := range statSentinelColumns {
		query, args, err := qb.Update("ufc_fight_stats").
			SetExpr(column, "NULL").
			Where(qb.In(column, sentinelValues())).
			ToSQL()
		if err != nil {
			return total, fmt.Errorf("build clear %s sentinels query: %w", column, err)
		}

		affected, err := r.exec(ctx, "clear "+column+" sentinels", query, args)
		if err != nil {
			return total, err
		}
		total += affected
	}
	return total, nil
}

func (r *FightStatRepository) CountSentinels(ctx context.Context) (int64, error) {
	var total int64
	for _, column := range statSentinelColumns {
		query, args, err := qb.Select("COUNT(*)").
			From("ufc_fight_stats").
			Where(qb.In(column, sentinelValues())).
			ToSQL()
		if err != nil {
			return 0, fmt.Errorf("build count %s sentinels query: %w", column, err)
		}

		count, err := r.get(ctx, "count "+column+" sentinels", query, args)
		if err != nil {
			return 0, err
		}
		total += count
	}
	return total, nil
}

const untypedStatFilter = "(sig_str_text IS NOT NULL AND sig_str_landed IS NULL)" +
	" OR (total_str_text IS NOT NULL AND total_str_landed IS NULL)" +
	" OR (takedown_text IS NOT NULL AND takedowns_landed IS NULL)" +
	" OR (ctrl_text IS NOT NULL AND ctrl_seconds IS NULL)" +
	" OR (sig_str_pct_text IS NOT NULL AND sig_str_pct IS NULL)" +
	" OR (takedown_pct_text IS NOT NULL AND takedown_pct IS NULL)" +
	" OR (knockdown_text IS NOT NULL AND knockdowns IS NULL)" +
	" OR (head_text IS NOT NULL AND head_landed IS NULL)" +
	" OR (body_text IS NOT NULL AND body_landed IS NULL)" +
	" OR (leg_text IS NOT NULL AND leg_landed IS NULL)" +
	" OR (distance_text IS NOT NULL AND distance_landed IS NULL)" +
	" OR (clinch_text IS NOT NULL AND clinch_landed IS NULL)" +
	" OR (ground_text IS NOT NULL AND ground_landed IS NULL)" +
	" OR (sub_att_text IS NOT NULL AND sub_att IS NULL)" +
	" OR (rev_text IS NOT NULL AND rev IS NULL)"

func (r *FightStatRepository) ListUntyped(ctx context.Context) ([]fightstat.Stat, error) {
	query, args, err := qb.Select(fightStatColumns).
		From("ufc_fight_stats").
		Where(qb.Expr(untypedStatFilter)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select untyped stats query: %w", err)
	}

	var rows []fightStatTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select untyped stats: %w", err)
	}

	out := make([]fightstat.Stat, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FightStatRepository) ApplyTyped(ctx context.Context, id int64, typed fightstat.Typed) error {
	builder := qb.Update("ufc_fight_stats")
	sets := 0
	setInt := func(column string, v *int) {
		if v == nil {
			return
		}
		builder.SetExpr(column, "COALESCE("+column+", ?)", *v)
		sets++
	}
	setFloat := func(column string, v *float64) {
		if v == nil {
			return
		}
		builder.SetExpr(column, "COALESCE("+column+", ?)", *v)
		sets++
	}

	setInt("sig_str_landed", typed.SigStrLanded)
	setInt("sig_str_attempted", typed.SigStrAttempted)
	setInt("total_str_landed", typed.TotalStrLanded)
	setInt("total_str_attempted", typed.TotalStrAttempted)
	setInt("takedowns_landed", typed.TakedownsLanded)
	setInt("takedowns_attempted", typed.TakedownsAttempted)
	setInt("ctrl_seconds", typed.CtrlSeconds)
	setFloat("sig_str_pct", typed.SigStrPctValue)
	setFloat("takedown_pct", typed.TakedownPctValue)
	setInt("knockdowns", typed.Knockdowns)
	setInt("head_landed", typed.HeadLanded)
	setInt("head_attempted", typed.HeadAttempted)
	setInt("body_landed", typed.BodyLanded)
	setInt("body_attempted", typed.BodyAttempted)
	setInt("leg_landed", typed.LegLanded)
	setInt("leg_attempted", typed.LegAttempted)
	setInt("distance_landed", typed.DistanceLanded)
	setInt("distance_attempted", typed.DistanceAttempted)
	setInt("clinch_landed", typed.ClinchLanded)
	setInt("clinch_attempted", typed.ClinchAttempted)
	setInt("ground_landed", typed.GroundLanded)
	setInt("ground_attempted", typed.GroundAttempted)
	setInt("sub_att", typed.SubAttempts)
	setInt("rev", typed.Reversals)
	if sets == 0 {
		return nil
	}

	query, args, err := builder.Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build update stat typed columns query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update stat typed columns: %w", err)
	}
	return nil
}

func (r *FightStatRepository) CountUntyped(ctx context.Context) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").
		From("ufc_fight_stats").
		Where(qb.Expr(untypedStatFilter)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count untyped stats query: %w", err)
	}
	return r.get(ctx, "count untyped stats", query, args)
}

func (r *FightStatRepository) exec(ctx context.Context, label, query string, args []any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", label, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s rows affected: %w", label, err)
	}
	return affected, nil
}

func (r *FightStatRepository) get(ctx context.Context, label, query string, args []any) (int64, error) {
	var count int64
	if err := sqlx.GetContext(ctx, r.db, &count, query, args...); err != nil {
		return 0, fmt.Errorf("%s: %w", label, err)
	}
	return count, nil
}
