package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightClass(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"UFC Lightweight Title Bout", "Lightweight"},
		{"Light Heavyweight Bout", "Light Heavyweight"},
		{"Heavyweight Bout", "Heavyweight"},
		{"Women's Strawweight Bout", "Women's Strawweight"},
		{"Women's Bantamweight Title Bout", "Women's Bantamweight"},
		{"Ultimate Fighter 33 Flyweight Tournament Title Bout", "Flyweight"},
		{"Catch Weight Bout", "Catch Weight"},
		{"Superfight Championship Bout", "Open Weight"},
		{"UFC 2 Tournament Bout", "Open Weight"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := WeightClass(tt.raw)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.True(t, IsCanonicalWeightClass(got))
		})
	}
}

func TestWeightClassSentinel(t *testing.T) {
	_, ok := WeightClass("--")
	assert.False(t, ok)

	_, ok = WeightClass("")
	assert.False(t, ok)
}

func TestWeightClassIdempotent(t *testing.T) {
	// Feeding a canonical value back in must return it unchanged.
	for _, c := range CanonicalWeightClasses {
		got, ok := WeightClass(c)
		require.True(t, ok)
		assert.Equal(t, c, got)
	}
}

func TestTitleFlags(t *testing.T) {
	assert.True(t, IsTitleFight("UFC Lightweight Title Bout"))
	assert.False(t, IsTitleFight("Lightweight Bout"))

	assert.True(t, IsInterimTitle("Interim Heavyweight Title Bout"))
	assert.False(t, IsInterimTitle("Heavyweight Title Bout"))
}

func TestIsChampionshipRounds(t *testing.T) {
	assert.True(t, IsChampionshipRounds("5 Rnd (5-5-5-5-5)"))
	assert.False(t, IsChampionshipRounds("3 Rnd (5-5-5)"))
	assert.False(t, IsChampionshipRounds(""))
}

func TestStripSentinel(t *testing.T) {
	got, ok := StripSentinel("  KO/TKO  ")
	require.True(t, ok)
	assert.Equal(t, "KO/TKO", got)

	_, ok = StripSentinel("--")
	assert.False(t, ok)

	_, ok = StripSentinel("")
	assert.False(t, ok)
}

func TestTrimNoiseIdempotent(t *testing.T) {
	assert.Equal(t, "Submission", TrimNoise("Submission "))
	assert.Equal(t, "Submission", TrimNoise(TrimNoise("Submission ")))
}
