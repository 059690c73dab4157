package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountPair(t *testing.T) {
	tests := []struct {
		in        string
		landed    int
		attempted int
		ok        bool
	}{
		{"9 of 22", 9, 22, true},
		{"17 of 37", 17, 37, true},
		{"0 of 0", 0, 0, true},
		{"0 of 12", 0, 12, true},
		{"150 of 200", 150, 200, true},
		{"  5 of 10  ", 5, 10, true},
		{"--", 0, 0, false},
		{"---", 0, 0, false},
		{"", 0, 0, false},
		{"   ", 0, 0, false},
		{"17", 0, 0, false},
		{"abc of xyz", 0, 0, false},
		{"17 of xyz", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			landed, attempted, ok := CountPair(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.landed, landed)
				assert.Equal(t, tt.attempted, attempted)
			}
		})
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		in      string
		seconds int
		ok      bool
	}{
		{"0:00", 0, true},
		{"0:39", 39, true},
		{"2:34", 154, true},
		{"5:00", 300, true},
		{"0:01", 1, true},
		{"--", 0, false},
		{"", 0, false},
		{"239", 0, false},
		{"x:yz", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			seconds, ok := Duration(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.seconds, seconds)
			}
		})
	}
}

func TestHeightInches(t *testing.T) {
	got, ok := HeightInches(`5' 10"`)
	require.True(t, ok)
	assert.Equal(t, 70.0, got)

	got, ok = HeightInches(`6' 0"`)
	require.True(t, ok)
	assert.Equal(t, 72.0, got)

	_, ok = HeightInches("--")
	assert.False(t, ok)

	_, ok = HeightInches("70 in")
	assert.False(t, ok)
}

func TestWeightPounds(t *testing.T) {
	got, ok := WeightPounds("170 lbs.")
	require.True(t, ok)
	assert.Equal(t, 170.0, got)

	_, ok = WeightPounds("---")
	assert.False(t, ok)

	_, ok = WeightPounds("lbs.")
	assert.False(t, ok)
}

func TestReachInches(t *testing.T) {
	got, ok := ReachInches(`74"`)
	require.True(t, ok)
	assert.Equal(t, 74.0, got)

	_, ok = ReachInches("--")
	assert.False(t, ok)
}

func TestPercent(t *testing.T) {
	got, ok := Percent("47%")
	require.True(t, ok)
	assert.Equal(t, 47.0, got)

	got, ok = Percent("0%")
	require.True(t, ok)
	assert.Equal(t, 0.0, got)

	_, ok = Percent("--")
	assert.False(t, ok)
}

func TestKnockdowns(t *testing.T) {
	got, ok := Knockdowns("1.0")
	require.True(t, ok)
	assert.Equal(t, 1, got)

	got, ok = Knockdowns("0.0")
	require.True(t, ok)
	assert.Equal(t, 0, got)

	_, ok = Knockdowns("--")
	assert.False(t, ok)
}

func TestCount(t *testing.T) {
	got, ok := Count("2")
	require.True(t, ok)
	assert.Equal(t, 2, got)

	got, ok = Count(" 0 ")
	require.True(t, ok)
	assert.Equal(t, 0, got)

	_, ok = Count("--")
	assert.False(t, ok)

	_, ok = Count("1 of 2")
	assert.False(t, ok)
}

func TestCalendarDate(t *testing.T) {
	got, ok := CalendarDate("Apr 01, 1988")
	require.True(t, ok)
	assert.Equal(t, time.Date(1988, time.April, 1, 0, 0, 0, 0, time.UTC), got)

	got, ok = CalendarDate("November 12, 2023")
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, time.November, 12, 0, 0, 0, 0, time.UTC), got)

	got, ok = CalendarDate("2021-07-10")
	require.True(t, ok)
	assert.Equal(t, time.Date(2021, time.July, 10, 0, 0, 0, 0, time.UTC), got)

	_, ok = CalendarDate("--")
	assert.False(t, ok)

	_, ok = CalendarDate("someday")
	assert.False(t, ok)
}

func TestCalendarDateDeterminism(t *testing.T) {
	first, ok := CalendarDate("Jan 02, 2020")
	require.True(t, ok)
	for i := 0; i < 5; i++ {
		again, ok := CalendarDate("Jan 02, 2020")
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestTotalFightSeconds(t *testing.T) {
	got, ok := TotalFightSeconds(1, "4:20")
	require.True(t, ok)
	assert.Equal(t, 260, got)

	got, ok = TotalFightSeconds(3, "2:34")
	require.True(t, ok)
	assert.Equal(t, 754, got)

	_, ok = TotalFightSeconds(0, "2:34")
	assert.False(t, ok)

	_, ok = TotalFightSeconds(2, "--")
	assert.False(t, ok)
}

func TestIsSentinel(t *testing.T) {
	assert.True(t, IsSentinel("--"))
	assert.True(t, IsSentinel("---"))
	assert.True(t, IsSentinel(""))
	assert.True(t, IsSentinel("  "))
	assert.False(t, IsSentinel("0:00"))
	assert.False(t, IsSentinel("0"))
}
