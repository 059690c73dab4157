package fight

import "context"

type Repository interface {
	// ListUnresolved returns fights with at least one fighter reference
	// still absent, excluding placeholder bout stubs.
	ListUnresolved(ctx context.Context) ([]Fight, error)
	// SetFighters fills resolved fighter references. Nil values leave the
	// column untouched; non-nil writes only apply while the column is
	// still NULL.
	SetFighters(ctx context.Context, id int64, fighterAID, fighterBID *int64) error
	CountUnresolved(ctx context.Context) (int64, error)
}
