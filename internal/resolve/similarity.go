package resolve

import (
	"sort"
	"strings"
	"unicode"
)

// NormalizeName prepares a raw name for matching: case-fold, strip
// punctuation, collapse whitespace. Nicknames in quotes and stray
// punctuation ("Jr.", hyphens) reduce to plain tokens.
func NormalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastSpace := true
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r) || r == '-':
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		}
	}

	return strings.TrimSpace(b.String())
}

// levenshtein computes the edit distance between two strings using the
// two-row space optimization.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j
		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			curr[i] = min3(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(a)]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

// ratio converts edit distance into a similarity score in [0,100].
func ratio(a, b string) int {
	if len(a) == 0 && len(b) == 0 {
		return 100
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	d := levenshtein(a, b)
	return int(100 * (1 - float64(d)/float64(maxLen)))
}

// tokenSortRatio compares the two strings with their tokens sorted, so
// "nurmagomedov khabib" still scores 100 against "khabib nurmagomedov".
func tokenSortRatio(a, b string) int {
	return ratio(sortTokens(a), sortTokens(b))
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// tokenSetRatio scores on the shared-token core, so abbreviated or
// partial forms ("c mcgregor" vs "conor mcgregor") still score on what
// they agree about rather than being penalized for the missing tokens.
func tokenSetRatio(a, b string) int {
	tokensA := strings.Fields(a)
	tokensB := strings.Fields(b)

	setB := make(map[string]struct{}, len(tokensB))
	for _, t := range tokensB {
		setB[t] = struct{}{}
	}

	var shared, restA []string
	seen := make(map[string]struct{})
	for _, t := range tokensA {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if _, ok := setB[t]; ok {
			shared = append(shared, t)
		} else {
			restA = append(restA, t)
		}
	}

	var restB []string
	seenB := make(map[string]struct{})
	sharedSet := make(map[string]struct{}, len(shared))
	for _, t := range shared {
		sharedSet[t] = struct{}{}
	}
	for _, t := range tokensB {
		if _, dup := seenB[t]; dup {
			continue
		}
		seenB[t] = struct{}{}
		if _, ok := sharedSet[t]; !ok {
			restB = append(restB, t)
		}
	}

	if len(shared) == 0 {
		return ratio(sortTokens(a), sortTokens(b))
	}

	sort.Strings(shared)
	sort.Strings(restA)
	sort.Strings(restB)

	core := strings.Join(shared, " ")
	withA := strings.TrimSpace(core + " " + strings.Join(restA, " "))
	withB := strings.TrimSpace(core + " " + strings.Join(restB, " "))

	best := ratio(core, withA)
	if s := ratio(core, withB); s > best {
		best = s
	}
	if s := ratio(withA, withB); s > best {
		best = s
	}
	return best
}

// Similarity scores two already-normalized names in [0,100], taking the
// best of the plain, token-sorted, and token-set ratios.
func Similarity(a, b string) int {
	best := ratio(a, b)
	if s := tokenSortRatio(a, b); s > best {
		best = s
	}
	if s := tokenSetRatio(a, b); s > best {
		best = s
	}
	return best
}
