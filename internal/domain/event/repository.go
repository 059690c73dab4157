package event

import (
	"context"
	"time"
)

type Repository interface {
	// ListUndated returns events whose derived date is still absent but
	// whose raw date text is present.
	ListUndated(ctx context.Context) ([]Event, error)
	// SetProperDate fills the derived date. The write is guarded: it only
	// applies while the column is still NULL.
	SetProperDate(ctx context.Context, id int64, date time.Time) error
	CountUndated(ctx context.Context) (int64, error)
}
