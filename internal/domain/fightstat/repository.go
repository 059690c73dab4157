package fightstat

import "context"

type Repository interface {
	// ResolveEventRefs fills event_id by exact trimmed-text match on the
	// event name.
	ResolveEventRefs(ctx context.Context) (int64, error)
	// ResolveFightRefs fills fight_id by exact trimmed-text match on
	// event name plus bout description.
	ResolveFightRefs(ctx context.Context) (int64, error)
	// ResolveFightersExact fills fighter_id where the raw fighter text
	// exactly matches (case-insensitive, trimmed) one of the fight's two
	// resolved fighters.
	ResolveFightersExact(ctx context.Context) (int64, error)
	// ListUnresolvedWithCandidates returns rows still lacking fighter_id
	// along with the two candidate fighters from their fight, for the
	// fuzzy fallback pass.
	ListUnresolvedWithCandidates(ctx context.Context) ([]PairCandidates, error)
	// SetFighter fills fighter_id; the write only applies while the
	// column is still NULL.
	SetFighter(ctx context.Context, statID, fighterID int64) error
	CountUnresolvedFighters(ctx context.Context) (int64, error)

	// ClearSentinels replaces "--"/"---"/"" placeholders with NULL in the
	// control-time and percentage columns.
	ClearSentinels(ctx context.Context) (int64, error)
	CountSentinels(ctx context.Context) (int64, error)

	// ListUntyped returns rows with raw stat text present but at least
	// one typed column still absent.
	ListUntyped(ctx context.Context) ([]Stat, error)
	ApplyTyped(ctx context.Context, id int64, typed Typed) error
	CountUntyped(ctx context.Context) (int64, error)
}
