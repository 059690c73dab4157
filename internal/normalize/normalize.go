// Package normalize maps scraped categorical text onto a closed canonical
// vocabulary and strips the source's sentinel placeholders. All functions
// are idempotent: feeding a canonical value back in returns it unchanged.
package normalize

import (
	"strings"

	"github.com/fightlab/fightdata-pipeline/internal/parse"
)

// CanonicalWeightClasses is the closed set of weight class values the
// cleaned schema may contain.
var CanonicalWeightClasses = []string{
	"Women's Strawweight",
	"Women's Flyweight",
	"Women's Bantamweight",
	"Women's Featherweight",
	"Light Heavyweight",
	"Super Heavyweight",
	"Heavyweight",
	"Middleweight",
	"Welterweight",
	"Lightweight",
	"Featherweight",
	"Bantamweight",
	"Flyweight",
	"Catch Weight",
	"Open Weight",
}

// weightClassPatterns is ordered most-specific first so that e.g.
// "Light Heavyweight" wins over "Heavyweight" and the women's divisions
// win over their open counterparts. "Superfight" is a promotional one-off
// label for open-weight bouts.
var weightClassPatterns = []struct {
	substring string
	canonical string
}{
	{"Women's Strawweight", "Women's Strawweight"},
	{"Women's Flyweight", "Women's Flyweight"},
	{"Women's Bantamweight", "Women's Bantamweight"},
	{"Women's Featherweight", "Women's Featherweight"},
	{"Light Heavyweight", "Light Heavyweight"},
	{"Super Heavyweight", "Super Heavyweight"},
	{"Heavyweight", "Heavyweight"},
	{"Middleweight", "Middleweight"},
	{"Welterweight", "Welterweight"},
	{"Lightweight", "Lightweight"},
	{"Featherweight", "Featherweight"},
	{"Bantamweight", "Bantamweight"},
	{"Flyweight", "Flyweight"},
	{"Catch Weight", "Catch Weight"},
	{"Open Weight", "Open Weight"},
	{"Superfight", "Open Weight"},
}

// WeightClass extracts the canonical weight class embedded in a raw
// weight-class description such as "UFC Lightweight Title Bout".
// Raw values that match no pattern map to "Open Weight": the only rows
// without a recognizable class are early tournament bouts that genuinely
// had none.
func WeightClass(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if parse.IsSentinel(raw) {
		return "", false
	}

	for _, p := range weightClassPatterns {
		if strings.Contains(raw, p.substring) {
			return p.canonical, true
		}
	}
	return "Open Weight", true
}

// IsCanonicalWeightClass reports membership in the closed canonical set.
func IsCanonicalWeightClass(v string) bool {
	for _, c := range CanonicalWeightClasses {
		if v == c {
			return true
		}
	}
	return false
}

// IsTitleFight reports whether the weight-class text marks a title bout.
func IsTitleFight(weightClassText string) bool {
	return strings.Contains(weightClassText, "Title")
}

// IsInterimTitle reports whether the weight-class text marks an interim
// title bout. Always a subset of title bouts in practice.
func IsInterimTitle(weightClassText string) bool {
	return strings.Contains(weightClassText, "Interim")
}

// championshipRoundsFormat is the exact time-format string the source uses
// for five-round bouts.
const championshipRoundsFormat = "5 Rnd (5-5-5-5-5)"

// IsChampionshipRounds reports whether the time-format text denotes a
// five-round bout.
func IsChampionshipRounds(timeFormatText string) bool {
	return strings.TrimSpace(timeFormatText) == championshipRoundsFormat
}

// StripSentinel returns the trimmed value, or ok=false when the value is
// one of the source's "no data" placeholders.
func StripSentinel(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if parse.IsSentinel(trimmed) {
		return "", false
	}
	return trimmed, true
}

// TrimNoise removes incidental leading/trailing whitespace. Applying it
// to already-clean text is a no-op.
func TrimNoise(raw string) string {
	return strings.TrimSpace(raw)
}
