// Package parse converts the free-text stat encodings produced by the
// scrape source into typed values. Every parser returns ok=false for
// absent, sentinel, or malformed input instead of defaulting; callers
// must never interpret a failed parse as zero.
package parse

import (
	"strconv"
	"strings"
	"time"
)

// RoundLengthSeconds is the fixed regulation round length. Every round is
// five minutes regardless of title or non-title status.
const RoundLengthSeconds = 300

// sentinel tokens the source uses to mean "no data recorded".
var sentinels = map[string]struct{}{
	"--":  {},
	"---": {},
}

// IsSentinel reports whether the trimmed value is one of the source's
// "no data" placeholder tokens or empty.
func IsSentinel(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	_, ok := sentinels[s]
	return ok
}

// CountPair parses a "<landed> of <attempted>" strike count.
func CountPair(s string) (landed, attempted int, ok bool) {
	s = strings.TrimSpace(s)
	if IsSentinel(s) {
		return 0, 0, false
	}

	left, right, found := strings.Cut(s, " of ")
	if !found {
		return 0, 0, false
	}

	landed, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return 0, 0, false
	}
	attempted, err = strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return 0, 0, false
	}

	return landed, attempted, true
}

// Duration parses an "M:SS" time into total whole seconds.
func Duration(s string) (seconds int, ok bool) {
	s = strings.TrimSpace(s)
	if IsSentinel(s) {
		return 0, false
	}

	minutesPart, secondsPart, found := strings.Cut(s, ":")
	if !found {
		return 0, false
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(minutesPart))
	if err != nil {
		return 0, false
	}
	secs, err := strconv.Atoi(strings.TrimSpace(secondsPart))
	if err != nil {
		return 0, false
	}

	return minutes*60 + secs, true
}

// HeightInches parses a feet-and-inches string such as `5' 10"` into
// total inches.
func HeightInches(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if IsSentinel(s) {
		return 0, false
	}

	feetPart, rest, found := strings.Cut(s, "'")
	if !found {
		return 0, false
	}

	feet, err := strconv.Atoi(strings.TrimSpace(feetPart))
	if err != nil {
		return 0, false
	}

	inchesPart := strings.TrimSpace(strings.ReplaceAll(rest, `"`, ""))
	inches := 0
	if inchesPart != "" {
		inches, err = strconv.Atoi(inchesPart)
		if err != nil {
			return 0, false
		}
	}

	return float64(feet*12 + inches), true
}

// WeightPounds parses a "NNN lbs." weight string.
func WeightPounds(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if IsSentinel(s) {
		return 0, false
	}

	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, false
	}

	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// ReachInches parses a `74"` reach string.
func ReachInches(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if IsSentinel(s) {
		return 0, false
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, `"`, "")), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// Percent parses a "47%" string into its numeric value.
func Percent(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if IsSentinel(s) {
		return 0, false
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "%")), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// Knockdowns parses the knockdown count, which the source stores as a
// float string ("1.0").
func Knockdowns(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if IsSentinel(s) {
		return 0, false
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(value), true
}

// Count parses a plain whole-number count, such as submission attempts
// or reversals.
func Count(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if IsSentinel(s) {
		return 0, false
	}

	value, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return value, true
}

// dateFormats is the ordered list of date layouts seen in the source.
// First successful parse wins, so the order is fixed.
var dateFormats = []string{
	"Jan 02, 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2006-01-02",
}

// CalendarDate parses a free-text date against the known source formats.
func CalendarDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if IsSentinel(s) {
		return time.Time{}, false
	}

	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// TotalFightSeconds derives total elapsed contest time from the final
// round number and the "M:SS" time within that round.
func TotalFightSeconds(round int, inRound string) (int, bool) {
	if round < 1 {
		return 0, false
	}
	seconds, ok := Duration(inRound)
	if !ok {
		return 0, false
	}
	return (round-1)*RoundLengthSeconds + seconds, true
}
