package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterval_Overlaps(t *testing.T) {
	a := Interval{StartMin: 9 * 60, EndMin: 10 * 60}

	// Overlap parsial
	assert.True(t, a.Overlaps(Interval{StartMin: 9*60 + 30, EndMin: 10*60 + 30}))
	// Containment
	assert.True(t, a.Overlaps(Interval{StartMin: 8 * 60, EndMin: 12 * 60}))
	assert.True(t, a.Overlaps(Interval{StartMin: 9*60 + 15, EndMin: 9*60 + 45}))
	// Identik
	assert.True(t, a.Overlaps(a))

	// Back-to-back TIDAK bentrok (strict di kedua ujung)
	assert.False(t, a.Overlaps(Interval{StartMin: 10 * 60, EndMin: 11 * 60}))
	assert.False(t, a.Overlaps(Interval{StartMin: 8 * 60, EndMin: 9 * 60}))
	// Terpisah jauh
	assert.False(t, a.Overlaps(Interval{StartMin: 13 * 60, EndMin: 14 * 60}))
}

func TestInterval_OverlapsSymmetry(t *testing.T) {
	pairs := []struct{ a, b Interval }{
		{Interval{540, 600}, Interval{570, 630}},
		{Interval{540, 600}, Interval{600, 660}},
		{Interval{540, 600}, Interval{400, 1200}},
		{Interval{0, 1}, Interval{1439, 1440}},
		{Interval{540, 600}, Interval{540, 600}},
	}
	for _, p := range pairs {
		assert.Equal(t, p.a.Overlaps(p.b), p.b.Overlaps(p.a),
			"overlaps(%v,%v) harus simetris", p.a, p.b)
	}
}

func TestInterval_Valid(t *testing.T) {
	assert.True(t, Interval{StartMin: 0, EndMin: 1440}.Valid())
	assert.True(t, Interval{StartMin: 540, EndMin: 600}.Valid())

	assert.False(t, Interval{StartMin: 600, EndMin: 600}.Valid())
	assert.False(t, Interval{StartMin: 600, EndMin: 540}.Valid())
	assert.False(t, Interval{StartMin: -1, EndMin: 60}.Valid())
	assert.False(t, Interval{StartMin: 540, EndMin: 1441}.Valid())
}

func TestParseTimeOfDay(t *testing.T) {
	v, err := ParseTimeOfDay("09:00")
	require.NoError(t, err)
	assert.Equal(t, 540, v)

	v, err = ParseTimeOfDay("23:59")
	require.NoError(t, err)
	assert.Equal(t, 1439, v)

	// detik diabaikan
	v, err = ParseTimeOfDay("07:30:45")
	require.NoError(t, err)
	assert.Equal(t, 450, v)

	_, err = ParseTimeOfDay("")
	assert.Error(t, err)
	_, err = ParseTimeOfDay("9 pagi")
	assert.Error(t, err)
	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)
}

func TestFormatTimeOfDay(t *testing.T) {
	assert.Equal(t, "09:00", FormatTimeOfDay(540))
	assert.Equal(t, "00:00", FormatTimeOfDay(0))
	assert.Equal(t, "23:59", FormatTimeOfDay(1439))
}
