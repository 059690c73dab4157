// Package postgres implements the domain repositories over a Postgres
// schema of scraped fight data. All mutation queries are guarded so a
// populated column is never rewritten, which keeps every phase safe to
// re-run.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/fightlab/fightdata-pipeline/internal/domain/storage"
)

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, databaseURL string) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

// Store binds the repository set either to the plain connection or to a
// single transaction.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) View() storage.Repos {
	return bind(s.db)
}

func (s *Store) WithinTx(ctx context.Context, fn func(storage.Repos) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(bind(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback after %w: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func bind(ext sqlx.ExtContext) storage.Repos {
	return storage.Repos{
		Events:   NewEventRepository(ext),
		Fighters: NewFighterRepository(ext),
		Fights:   NewFightRepository(ext),
		Results:  NewFightResultRepository(ext),
		Stats:    NewFightStatRepository(ext),
		Audit:    NewAuditRepository(ext),
	}
}
