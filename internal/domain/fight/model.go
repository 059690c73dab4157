package fight

import "strings"

// boutSeparator splits the two fighter names in a raw bout description.
const boutSeparator = " vs. "

// Fight is one bout on an event card, described by the source only as an
// "A vs. B" string. The two fighter references start absent and are
// populated by FK resolution; once set they are never rewritten.
type Fight struct {
	ID         int64
	EventID    int64
	Bout       string
	FighterAID *int64
	FighterBID *int64
}

// SplitBout returns the two fighter names from a bout description.
func SplitBout(bout string) (a, b string, ok bool) {
	left, right, found := strings.Cut(bout, boutSeparator)
	if !found {
		return "", "", false
	}
	return strings.TrimSpace(left), strings.TrimSpace(right), true
}

// IsPlaceholderBout reports whether the bout text is a scheduling stub
// ("win vs. ", "draw vs. ") rather than a real matchup. Such rows are
// excluded from resolution and from coverage metrics.
func IsPlaceholderBout(bout string) bool {
	return strings.Contains(bout, "win vs.") || strings.Contains(bout, "draw vs.")
}
