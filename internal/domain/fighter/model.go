package fighter

import (
	"strings"
	"time"
)

// Fighter is a canonical identity. The profile fields arrive as free text
// from the scrape and are parsed into the typed columns by the pipeline;
// some fighters have only a last name.
type Fighter struct {
	ID        int64
	FirstName string
	LastName  string

	HeightText *string
	WeightText *string
	ReachText  *string
	Stance     *string
	DOBText    *string

	HeightInches *float64
	WeightPounds *float64
	ReachInches  *float64
	DOB          *time.Time
}

// DisplayName builds the full name used in bout descriptions and stat
// rows, falling back to the last name for single-name fighters.
func (f Fighter) DisplayName() string {
	if f.FirstName != "" && f.LastName != "" {
		return strings.TrimSpace(f.FirstName + " " + f.LastName)
	}
	return strings.TrimSpace(f.LastName)
}

// TypedProfile holds the parsed profile columns for one fighter. Nil
// fields are left untouched on write.
type TypedProfile struct {
	HeightInches *float64
	WeightPounds *float64
	ReachInches  *float64
	DOB          *time.Time
}
