// Package storage groups the per-entity repositories behind a single
// transactional access point, so each pipeline phase runs against one
// repository set bound to one transaction.
package storage

import (
	"context"

	"github.com/fightlab/fightdata-pipeline/internal/domain/audit"
	"github.com/fightlab/fightdata-pipeline/internal/domain/event"
	"github.com/fightlab/fightdata-pipeline/internal/domain/fight"
	"github.com/fightlab/fightdata-pipeline/internal/domain/fighter"
	"github.com/fightlab/fightdata-pipeline/internal/domain/fightresult"
	"github.com/fightlab/fightdata-pipeline/internal/domain/fightstat"
)

// Repos is one bound repository set.
type Repos struct {
	Events   event.Repository
	Fighters fighter.Repository
	Fights   fight.Repository
	Results  fightresult.Repository
	Stats    fightstat.Repository
	Audit    audit.Repository
}

// Store provides repository sets bound either to the plain connection or
// to a single transaction.
type Store interface {
	// View returns repositories bound to the plain connection, for
	// read-only preview and validation.
	View() Repos
	// WithinTx runs fn against repositories bound to one transaction,
	// committing when fn returns nil and rolling back otherwise.
	WithinTx(ctx context.Context, fn func(Repos) error) error
}
