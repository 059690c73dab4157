// Package memory implements the domain repositories over in-process
// slices, mirroring the guarded-write semantics of the Postgres
// implementation. It backs pipeline tests and dry runs.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/fightlab/fightdata-pipeline/internal/domain/event"
	"github.com/fightlab/fightdata-pipeline/internal/domain/fight"
	"github.com/fightlab/fightdata-pipeline/internal/domain/fighter"
	"github.com/fightlab/fightdata-pipeline/internal/domain/fightresult"
	"github.com/fightlab/fightdata-pipeline/internal/domain/fightstat"
	"github.com/fightlab/fightdata-pipeline/internal/domain/storage"
)

// Store holds one dataset shared by all repositories, so cross-table
// resolution works the same way the SQL joins do.
type Store struct {
	mu sync.RWMutex

	events   []event.Event
	fighters []fighter.Fighter
	fights   []fight.Fight
	results  []fightresult.Result
	stats    []fightstat.Stat
}

func NewStore() *Store {
	return &Store{}
}

func NewSeededStore(
	events []event.Event,
	fighters []fighter.Fighter,
	fights []fight.Fight,
	results []fightresult.Result,
	stats []fightstat.Stat,
) *Store {
	return &Store{
		events:   append([]event.Event(nil), events...),
		fighters: append([]fighter.Fighter(nil), fighters...),
		fights:   append([]fight.Fight(nil), fights...),
		results:  append([]fightresult.Result(nil), results...),
		stats:    append([]fightstat.Stat(nil), stats...),
	}
}

func (s *Store) View() storage.Repos {
	return s.repos()
}

// WithinTx runs fn against the shared dataset. The memory store has no
// transaction isolation: a failing fn leaves prior writes in place, so
// rollback-dependent behavior is covered by the Postgres implementation
// only.
func (s *Store) WithinTx(_ context.Context, fn func(storage.Repos) error) error {
	return fn(s.repos())
}

func (s *Store) repos() storage.Repos {
	return storage.Repos{
		Events:   &EventRepository{store: s},
		Fighters: &FighterRepository{store: s},
		Fights:   &FightRepository{store: s},
		Results:  &FightResultRepository{store: s},
		Stats:    &FightStatRepository{store: s},
		Audit:    &AuditRepository{store: s},
	}
}

// Events returns a copy of the current event rows, for test assertions.
func (s *Store) Events() []event.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]event.Event(nil), s.events...)
}

func (s *Store) Fighters() []fighter.Fighter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]fighter.Fighter(nil), s.fighters...)
}

func (s *Store) Fights() []fight.Fight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]fight.Fight(nil), s.fights...)
}

func (s *Store) Results() []fightresult.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]fightresult.Result(nil), s.results...)
}

func (s *Store) Stats() []fightstat.Stat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]fightstat.Stat(nil), s.stats...)
}

func (s *Store) fighterByID(id int64) (fighter.Fighter, bool) {
	for _, f := range s.fighters {
		if f.ID == id {
			return f, true
		}
	}
	return fighter.Fighter{}, false
}

func (s *Store) fightByID(id int64) (fight.Fight, bool) {
	for _, f := range s.fights {
		if f.ID == id {
			return f, true
		}
	}
	return fight.Fight{}, false
}

func sameTrimmed(a, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}

func isRealBout(bout string) bool {
	_, right, ok := fight.SplitBout(bout)
	return ok && right != ""
}
