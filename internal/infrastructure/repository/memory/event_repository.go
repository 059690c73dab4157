package memory

import (
	"context"
	"strings"
	"time"

	"github.com/fightlab/fightdata-pipeline/internal/domain/event"
)

type EventRepository struct {
	store *Store
}

func (r *EventRepository) ListUndated(_ context.Context) ([]event.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []event.Event
	for _, e := range r.store.events {
		if e.DateProper == nil && strings.TrimSpace(e.RawDate) != "" {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *EventRepository) SetProperDate(_ context.Context, id int64, date time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.events {
		if r.store.events[i].ID == id && r.store.events[i].DateProper == nil {
			d := date
			r.store.events[i].DateProper = &d
		}
	}
	return nil
}

func (r *EventRepository) CountUndated(ctx context.Context) (int64, error) {
	undated, err := r.ListUndated(ctx)
	if err != nil {
		return 0, err
	}
	return int64(len(undated)), nil
}
