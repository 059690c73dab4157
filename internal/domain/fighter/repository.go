package fighter

import "context"

type Repository interface {
	// ListAll loads the full catalog for the per-run match snapshot.
	ListAll(ctx context.Context) ([]Fighter, error)
	// ClearProfileSentinels replaces "--"/"---"/"" placeholders with NULL
	// across the raw profile columns. Returns rows affected.
	ClearProfileSentinels(ctx context.Context) (int64, error)
	CountProfileSentinels(ctx context.Context) (int64, error)
	// ListUnparsedProfiles returns fighters with raw profile text present
	// but at least one typed profile column still absent.
	ListUnparsedProfiles(ctx context.Context) ([]Fighter, error)
	// ApplyTypedProfile fills typed profile columns. Each column is
	// guarded individually: an already-populated value is never replaced.
	ApplyTypedProfile(ctx context.Context, id int64, profile TypedProfile) error
	CountUnparsedProfiles(ctx context.Context) (int64, error)
}
