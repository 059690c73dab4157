package fightresult

import "context"

type Repository interface {
	// ResolveEventRefs fills event_id by exact trimmed-text match on the
	// event name. Returns rows affected.
	ResolveEventRefs(ctx context.Context) (int64, error)
	// ResolveFightRefs fills fight_id by exact trimmed-text match on
	// event name plus bout description.
	ResolveFightRefs(ctx context.Context) (int64, error)
	// AssignOutcomes combines each fight's resolved fighter references
	// with the raw outcome code to populate winner/loser references and
	// the win flag. Only rows whose references are still absent are
	// touched.
	AssignOutcomes(ctx context.Context) (OutcomeCounts, error)
	CountUnassigned(ctx context.Context) (int64, error)

	// TrimMethodNoise strips trailing whitespace from the method column.
	TrimMethodNoise(ctx context.Context) (int64, error)
	CountUntrimmedMethods(ctx context.Context) (int64, error)

	// ListUntyped returns rows whose raw time text is present but whose
	// typed time columns are still absent.
	ListUntyped(ctx context.Context) ([]Result, error)
	ApplyTyped(ctx context.Context, id int64, typed TypedTimes) error
	CountUntyped(ctx context.Context) (int64, error)

	// ListUnderived returns rows whose raw weight-class text is present
	// but at least one derived column is still absent.
	ListUnderived(ctx context.Context) ([]Result, error)
	ApplyDerived(ctx context.Context, id int64, derived Derived) error
	CountUnderived(ctx context.Context) (int64, error)
}
