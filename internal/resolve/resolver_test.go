package resolve

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return NewCatalog([]Entry{
		{ID: 1, Name: "Khabib Nurmagomedov"},
		{ID: 2, Name: "Conor McGregor"},
		{ID: 3, Name: "Jon Jones"},
		{ID: 4, Name: "Deiveson Figueiredo"},
		{ID: 5, Name: "Shogun"},
		{ID: 6, Name: "Alexander Volkov"},
		{ID: 7, Name: "Alexandre Pantoja"},
	})
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "conor mcgregor", NormalizeName("  Conor   McGregor "))
	assert.Equal(t, "jones jr", NormalizeName("Jones, Jr."))
	assert.Equal(t, "jan blachowicz", NormalizeName("Jan Blachowicz"))
	assert.Equal(t, "a b c", NormalizeName("A-B C"))
	assert.Equal(t, "kyung ho kang", NormalizeName("Kyung-Ho Kang"))
	assert.Equal(t, "", NormalizeName("  ..,  "))
}

func TestResolveExact(t *testing.T) {
	r := NewResolver(testCatalog(), DefaultThresholds())

	got := r.Resolve("Khabib Nurmagomedov")
	require.Equal(t, StatusMatched, got.Status)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, 100, got.Score)

	// Case and whitespace variants still hit exactly.
	got = r.Resolve("  khabib   NURMAGOMEDOV ")
	require.Equal(t, StatusMatched, got.Status)
	assert.Equal(t, int64(1), got.ID)
}

func TestResolveFuzzy(t *testing.T) {
	r := NewResolver(testCatalog(), DefaultThresholds())

	// Minor misspelling resolves with high confidence.
	got := r.Resolve("Khabib Nurmagomedow")
	require.Equal(t, StatusMatched, got.Status)
	assert.Equal(t, int64(1), got.ID)
	assert.GreaterOrEqual(t, got.Score, 88)

	// Token order does not matter.
	got = r.Resolve("Nurmagomedov Khabib")
	require.Equal(t, StatusMatched, got.Status)
	assert.Equal(t, int64(1), got.ID)
}

func TestResolveNotFound(t *testing.T) {
	r := NewResolver(testCatalog(), DefaultThresholds())

	got := r.Resolve("Fedor Emelianenko")
	assert.Equal(t, StatusNotFound, got.Status)

	got = r.Resolve("")
	assert.Equal(t, StatusNotFound, got.Status)

	got = r.Resolve("--")
	assert.Equal(t, StatusNotFound, got.Status)
}

func TestResolveAmbiguous(t *testing.T) {
	r := NewResolver(testCatalog(), DefaultThresholds())

	// "Alexander" alone sits between the two Alexand* entries without a
	// decisive lead, so it must not silently pick one.
	got := r.Resolve("Alexande")
	if got.Status == StatusMatched {
		t.Fatalf("expected non-match for truncated shared prefix, got match id=%d score=%d", got.ID, got.Score)
	}
	assert.NotEqual(t, StatusMatched, got.Status)
}

func TestResolveBetween(t *testing.T) {
	r := NewResolver(testCatalog(), DefaultThresholds())
	a := Candidate{ID: 1, Name: "Khabib Nurmagomedov"}
	b := Candidate{ID: 2, Name: "Conor McGregor"}

	got := r.ResolveBetween("Khabib Nurmagomedov", a, b)
	require.Equal(t, StatusMatched, got.Status)
	assert.Equal(t, int64(1), got.ID)

	got = r.ResolveBetween("C. McGregor", a, b)
	require.Equal(t, StatusMatched, got.Status)
	assert.Equal(t, int64(2), got.ID)

	got = r.ResolveBetween("Somebody Else", a, b)
	assert.Equal(t, StatusNotFound, got.Status)
	assert.Len(t, got.Candidates, 2)
}

func TestSimilarityBounds(t *testing.T) {
	assert.Equal(t, 100, Similarity("jon jones", "jon jones"))
	assert.Equal(t, 100, Similarity("jones jon", "jon jones"))
	assert.Equal(t, 0, Similarity("abcd", "wxyz"))
}

func TestUnresolvedLog(t *testing.T) {
	var buf strings.Builder
	log := NewUnresolvedLog(&buf)

	res := Result{
		Status:     StatusAmbiguous,
		Score:      84,
		Candidates: []Candidate{{ID: 6, Name: "Alexander Volkov", Score: 84}},
	}
	require.NoError(t, log.Record("fight 42 side a", "Alexande\tVolkov", res))

	line := buf.String()
	assert.Contains(t, line, "fight 42 side a")
	assert.Contains(t, line, "ambiguous")
	assert.Contains(t, line, "Alexander Volkov")
	assert.Contains(t, line, "84")
	// Five fields means four tabs; the tab inside the raw value must
	// have been replaced so it cannot add a column.
	assert.Equal(t, 4, strings.Count(strings.TrimSuffix(line, "\n"), "\t"))
	assert.Contains(t, line, "Alexande Volkov")
}

func TestCatalogSkipsEmptyNames(t *testing.T) {
	c := NewCatalog([]Entry{{ID: 1, Name: "  "}, {ID: 2, Name: "Jon Jones"}})
	assert.Equal(t, 1, c.Len())
}
