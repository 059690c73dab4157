// Package resolve matches free-text names against a canonical identity
// catalog. Resolution is a scored, three-way outcome: a high-confidence
// match, an ambiguous near-tie for manual review, or not found. Ambiguity
// is a distinct state, never folded into failure or silently accepted.
package resolve

// Status is the outcome kind of one resolution attempt.
type Status int

const (
	StatusNotFound Status = iota
	StatusAmbiguous
	StatusMatched
)

func (s Status) String() string {
	switch s {
	case StatusMatched:
		return "matched"
	case StatusAmbiguous:
		return "ambiguous"
	default:
		return "not_found"
	}
}

// Candidate is one scored catalog entry considered for a match.
type Candidate struct {
	ID    int64
	Name  string
	Score int
}

// Result is the outcome of resolving one raw name.
type Result struct {
	Status     Status
	ID         int64
	Score      int
	Candidates []Candidate
}

// Thresholds control the accept/ambiguous/reject band. The defaults are
// empirically tuned against a labeled sample; treat them as configuration,
// not constants.
type Thresholds struct {
	// Accept is the minimum score for a high-confidence match.
	Accept int
	// Margin is the minimum lead the top candidate needs over the
	// runner-up before it is accepted.
	Margin int
	// Floor is the score below which a best candidate is rejected
	// outright instead of reported as ambiguous.
	Floor int
	// PairCutoff is the lower acceptance score used when choosing
	// between exactly two known candidates.
	PairCutoff int
}

// DefaultThresholds returns the tuned defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Accept:     88,
		Margin:     3,
		Floor:      75,
		PairCutoff: 80,
	}
}

// Resolver matches raw names against a catalog snapshot. Safe for
// concurrent use: the catalog is read-only.
type Resolver struct {
	catalog    *Catalog
	thresholds Thresholds
}

func NewResolver(catalog *Catalog, thresholds Thresholds) *Resolver {
	return &Resolver{catalog: catalog, thresholds: thresholds}
}

// Resolve matches one raw name. An exact normalized hit short-circuits
// with score 100; otherwise the full catalog is scanned for the best and
// runner-up fuzzy scores.
func (r *Resolver) Resolve(raw string) Result {
	norm := NormalizeName(raw)
	if norm == "" {
		return Result{Status: StatusNotFound}
	}

	if id, ok := r.catalog.exact[norm]; ok {
		return Result{Status: StatusMatched, ID: id, Score: 100}
	}

	var best, second Candidate
	for i := range r.catalog.entries {
		e := &r.catalog.entries[i]
		score := Similarity(norm, e.normalized)
		if score > best.Score {
			second = best
			best = Candidate{ID: e.ID, Name: e.Name, Score: score}
		} else if score > second.Score {
			second = Candidate{ID: e.ID, Name: e.Name, Score: score}
		}
	}

	switch {
	case best.Score < r.thresholds.Floor:
		return Result{Status: StatusNotFound, Score: best.Score, Candidates: topCandidates(best)}
	case best.Score >= r.thresholds.Accept && best.Score-second.Score >= r.thresholds.Margin:
		return Result{Status: StatusMatched, ID: best.ID, Score: best.Score}
	default:
		return Result{Status: StatusAmbiguous, Score: best.Score, Candidates: topCandidates(best, second)}
	}
}

// ResolveBetween chooses between exactly two known candidates, as used for
// per-round stat rows where the bout already pins the fighter pair. The
// acceptance cutoff is lower because a wrong pick requires the raw text to
// resemble the opponent more than the fighter it belongs to.
func (r *Resolver) ResolveBetween(raw string, a, b Candidate) Result {
	norm := NormalizeName(raw)
	if norm == "" {
		return Result{Status: StatusNotFound}
	}

	scoreA := Similarity(norm, NormalizeName(a.Name))
	scoreB := Similarity(norm, NormalizeName(b.Name))

	best, other := a, b
	bestScore, otherScore := scoreA, scoreB
	if scoreB > scoreA {
		best, other = b, a
		bestScore, otherScore = scoreB, scoreA
	}

	if bestScore < r.thresholds.PairCutoff {
		best.Score = bestScore
		other.Score = otherScore
		return Result{Status: StatusNotFound, Score: bestScore, Candidates: []Candidate{best, other}}
	}

	return Result{Status: StatusMatched, ID: best.ID, Score: bestScore}
}

func topCandidates(cands ...Candidate) []Candidate {
	out := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		if c.ID != 0 || c.Name != "" {
			out = append(out, c)
		}
	}
	return out
}
