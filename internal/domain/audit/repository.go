// Package audit exposes read-only quality metrics over the cleaned
// schema, consumed by post-run validation.
package audit

import "context"

type Repository interface {
	// FightRefCoverage reports fighter_a_id / fighter_b_id population in
	// fights, excluding placeholder bout stubs.
	FightRefCoverage(ctx context.Context) (fighterA, fighterB Coverage, err error)
	// ResultRefCoverage reports fighter_id / opponent_id population in
	// fight results.
	ResultRefCoverage(ctx context.Context) (fighter, opponent Coverage, err error)
	// StatRefCoverage reports fighter_id / fight_id population in fight
	// stats.
	StatRefCoverage(ctx context.Context) (fighter, fight Coverage, err error)
	// EventDateCoverage reports derived date population in events.
	EventDateCoverage(ctx context.Context) (Coverage, error)
	// SelfPairedFights counts fights whose two fighter references point
	// at the same catalog entry.
	SelfPairedFights(ctx context.Context) (int64, error)

	// SentinelResidue counts remaining placeholder values per
	// "table.column" key.
	SentinelResidue(ctx context.Context) (map[string]int64, error)
	// UntrimmedMethods counts method values still carrying edge
	// whitespace.
	UntrimmedMethods(ctx context.Context) (int64, error)

	// NonCanonicalWeightClasses lists derived weight-class values outside
	// the canonical set.
	NonCanonicalWeightClasses(ctx context.Context) ([]string, error)
	// MissingTitleFlags counts rows with a known raw weight class but an
	// absent title flag.
	MissingTitleFlags(ctx context.Context) (int64, error)

	// TypedCoverage reports typed column population per "table.column"
	// key.
	TypedCoverage(ctx context.Context) (map[string]Coverage, error)
	// RowCounts reports total rows per table, for truncation guards.
	RowCounts(ctx context.Context) (map[string]int64, error)
}
