package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fightlab/fightdata-pipeline/internal/domain/fightresult"
	qb "github.com/fightlab/fightdata-pipeline/internal/platform/querybuilder"
)

const fightResultColumns = "id, event_id, fight_id, event_name, bout, outcome, method, weight_class_text, round_text, time_text, time_format_text, fighter_id, opponent_id, is_winner, fight_time_seconds, total_fight_time_seconds, weight_class, is_title_fight, is_interim_title, is_championship_rounds"

type FightResultRepository struct {
	db sqlx.ExtContext
}

func NewFightResultRepository(db sqlx.ExtContext) *FightResultRepository {
	return &FightResultRepository{db: db}
}

func (r *FightResultRepository) ResolveEventRefs(ctx context.Context) (int64, error) {
	query, args, err := qb.Update("ufc_fight_results fr").
		SetExpr("event_id", "e.id").
		Suffix("FROM ufc_events e WHERE btrim(fr.event_name) = btrim(e.name) AND fr.event_id IS NULL").
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build resolve result event refs query: %w", err)
	}
	return r.exec(ctx, "resolve result event refs", query, args)
}

func (r *FightResultRepository) ResolveFightRefs(ctx context.Context) (int64, error) {
	query, args, err := qb.Update("ufc_fight_results fr").
		SetExpr("fight_id", "f.id").
		Suffix("FROM ufc_fights f WHERE f.event_id = fr.event_id AND btrim(fr.bout) = btrim(f.bout) AND fr.fight_id IS NULL").
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build resolve result fight refs query: %w", err)
	}
	return r.exec(ctx, "resolve result fight refs", query, args)
}

func (r *FightResultRepository) AssignOutcomes(ctx context.Context) (fightresult.OutcomeCounts, error) {
	var counts fightresult.OutcomeCounts

	winnerA, err := r.assignOutcome(ctx, "winner a",
		[]any{fightresult.OutcomeAWon}, "f.fighter_a_id", "f.fighter_b_id", "TRUE")
	if err != nil {
		return counts, err
	}
	counts.WinnerA = winnerA

	winnerB, err := r.assignOutcome(ctx, "winner b",
		[]any{fightresult.OutcomeBWon}, "f.fighter_b_id", "f.fighter_a_id", "TRUE")
	if err != nil {
		return counts, err
	}
	counts.WinnerB = winnerB

	noWinner, err := r.assignOutcome(ctx, "no winner",
		[]any{fightresult.OutcomeNoContest, fightresult.OutcomeDraw},
		"f.fighter_a_id", "f.fighter_b_id", "FALSE")
	if err != nil {
		return counts, err
	}
	counts.NoWinner = noWinner

	return counts, nil
}

func (r *FightResultRepository) assignOutcome(ctx context.Context, label string, outcomes []any, fighterExpr, opponentExpr, winnerExpr string) (int64, error) {
	suffix := "FROM ufc_fights f WHERE fr.fight_id = f.id" +
		" AND f.fighter_a_id IS NOT NULL AND f.fighter_b_id IS NOT NULL" +
		" AND fr.fighter_id IS NULL AND btrim(fr.outcome) IN ("
	for i := range outcomes {
		if i > 0 {
			suffix += ", "
		}
		suffix += "?"
	}
	suffix += ")"

	query, args, err := qb.Update("ufc_fight_results fr").
		SetExpr("fighter_id", fighterExpr).
		SetExpr("opponent_id", "COALESCE(fr.opponent_id, "+opponentExpr+")").
		SetExpr("is_winner", "COALESCE(fr.is_winner, "+winnerExpr+")").
		SuffixArgs(suffix, outcomes...).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build assign %s outcomes query: %w", label, err)
	}
	return r.exec(ctx, "assign "+label+" outcomes", query, args)
}

func (r *FightResultRepository) CountUnassigned(ctx context.Context) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").
		From("ufc_fight_results").
		Where(qb.IsNotNull("fight_id"), qb.IsNull("fighter_id")).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count unassigned results query: %w", err)
	}
	return r.get(ctx, "count unassigned results", query, args)
}

const untrimmedMethodFilter = "method IS NOT NULL AND method <> btrim(method)"

func (r *FightResultRepository) TrimMethodNoise(ctx context.Context) (int64, error) {
	query, args, err := qb.Update("ufc_fight_results").
		SetExpr("method", "btrim(method)").
		Where(qb.Expr(untrimmedMethodFilter)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build trim methods query: %w", err)
	}
	return r.exec(ctx, "trim methods", query, args)
}

func (r *FightResultRepository) CountUntrimmedMethods(ctx context.Context) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").
		From("ufc_fight_results").
		Where(qb.Expr(untrimmedMethodFilter)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count untrimmed methods query: %w", err)
	}
	return r.get(ctx, "count untrimmed methods", query, args)
}

const untypedResultFilter = "round_text IS NOT NULL AND time_text IS NOT NULL" +
	" AND (fight_time_seconds IS NULL OR total_fight_time_seconds IS NULL)"

func (r *FightResultRepository) ListUntyped(ctx context.Context) ([]fightresult.Result, error) {
	return r.list(ctx, "select untyped results", untypedResultFilter)
}

func (r *FightResultRepository) ApplyTyped(ctx context.Context, id int64, typed fightresult.TypedTimes) error {
	builder := qb.Update("ufc_fight_results")
	sets := 0
	if typed.FightTimeSeconds != nil {
		builder.SetExpr("fight_time_seconds", "COALESCE(fight_time_seconds, ?)", *typed.FightTimeSeconds)
		sets++
	}
	if typed.TotalFightTimeSeconds != nil {
		builder.SetExpr("total_fight_time_seconds", "COALESCE(total_fight_time_seconds, ?)", *typed.TotalFightTimeSeconds)
		sets++
	}
	if sets == 0 {
		return nil
	}

	query, args, err := builder.Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build update result times query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update result times: %w", err)
	}
	return nil
}

func (r *FightResultRepository) CountUntyped(ctx context.Context) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").
		From("ufc_fight_results").
		Where(qb.Expr(untypedResultFilter)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count untyped results query: %w", err)
	}
	return r.get(ctx, "count untyped results", query, args)
}

const underivedResultFilter = "weight_class_text IS NOT NULL" +
	" AND (weight_class IS NULL OR is_title_fight IS NULL OR is_interim_title IS NULL OR is_championship_rounds IS NULL)"

func (r *FightResultRepository) ListUnderived(ctx context.Context) ([]fightresult.Result, error) {
	return r.list(ctx, "select underived results", underivedResultFilter)
}

func (r *FightResultRepository) ApplyDerived(ctx context.Context, id int64, derived fightresult.Derived) error {
	builder := qb.Update("ufc_fight_results")
	sets := 0
	if derived.WeightClass != nil {
		builder.SetExpr("weight_class", "COALESCE(weight_class, ?)", *derived.WeightClass)
		sets++
	}
	if derived.IsTitleFight != nil {
		builder.SetExpr("is_title_fight", "COALESCE(is_title_fight, ?)", *derived.IsTitleFight)
		sets++
	}
	if derived.IsInterimTitle != nil {
		builder.SetExpr("is_interim_title", "COALESCE(is_interim_title, ?)", *derived.IsInterimTitle)
		sets++
	}
	if derived.IsChampionshipRounds != nil {
		builder.SetExpr("is_championship_rounds", "COALESCE(is_championship_rounds, ?)", *derived.IsChampionshipRounds)
		sets++
	}
	if sets == 0 {
		return nil
	}

	query, args, err := builder.Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build update result derived columns query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update result derived columns: %w", err)
	}
	return nil
}

func (r *FightResultRepository) CountUnderived(ctx context.Context) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").
		From("ufc_fight_results").
		Where(qb.Expr(underivedResultFilter)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count underived results query: %w", err)
	}
	return r.get(ctx, "count underived results", query, args)
}

func (r *FightResultRepository) list(ctx context.Context, label, filter string) ([]fightresult.Result, error) {
	query, args, err := qb.Select(fightResultColumns).
		From("ufc_fight_results").
		Where(qb.Expr(filter)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", label, err)
	}

	var rows []fightResultTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}

	out := make([]fightresult.Result, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FightResultRepository) exec(ctx context.Context, label, query string, args []any) (int64, error) {
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

func (r *FightResultRepository) get(ctx context.Context, label, query string, args []any) (int64, error) {
	var count int64
	if err := sqlx.GetContext(ctx, r.db, &count, query, args...); err != nil {
		return 0, fmt.Errorf("%s: %w", label, err)
	}
	return count, nil
}
