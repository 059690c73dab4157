package event

import "time"

// Event is one scraped card. DateProper is derived from the free-text
// RawDate and, once set, is never re-derived.
type Event struct {
	ID         int64
	Name       string
	RawDate    string
	Location   string
	DateProper *time.Time
}
