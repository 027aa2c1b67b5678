package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalcTimeLeftDecomposition(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	end := now.Add(2*24*time.Hour + 5*time.Hour + 30*time.Minute + 45*time.Second)

	left := CalcTimeLeft(end, now)

	assert.Equal(t, 2, left.Days)
	assert.Equal(t, 5, left.Hours)
	assert.Equal(t, 30, left.Minutes)
	assert.Equal(t, 45, left.Seconds)
	assert.False(t, left.Expired())

	// The decomposed fields must always reassemble into the raw total.
	totalSeconds := int64(left.Days)*86400 + int64(left.Hours)*3600 +
		int64(left.Minutes)*60 + int64(left.Seconds)
	assert.Equal(t, left.Total/1000, totalSeconds)
}

func TestCalcTimeLeftReassemblesAcrossDurations(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	durations := []time.Duration{
		time.Second,
		59 * time.Second,
		time.Minute,
		time.Hour - time.Second,
		25 * time.Hour,
		7*24*time.Hour + 3*time.Hour + 2*time.Minute + time.Second,
	}

	for _, d := range durations {
		left := CalcTimeLeft(now.Add(d), now)
		totalSeconds := int64(left.Days)*86400 + int64(left.Hours)*3600 +
			int64(left.Minutes)*60 + int64(left.Seconds)
		assert.Equal(t, left.Total/1000, totalSeconds, "duration %v", d)
		assert.GreaterOrEqual(t, left.Seconds, 0)
		assert.Less(t, left.Seconds, 60)
		assert.Less(t, left.Minutes, 60)
		assert.Less(t, left.Hours, 24)
	}
}

func TestCalcTimeLeftAtAndPastEnd(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	atEnd := CalcTimeLeft(now, now)
	assert.Equal(t, TimeLeft{}, atEnd)
	assert.True(t, atEnd.Expired())

	past := CalcTimeLeft(now.Add(-time.Hour), now)
	assert.Equal(t, TimeLeft{}, past)
	assert.True(t, past.Expired())
	assert.Zero(t, past.Days)
	assert.Zero(t, past.Total)
}
