package fsrs_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemo-dev/mnemo/fsrs"
)

func TestNewInitialState(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	state := fsrs.NewInitialState(now)

	assert.Equal(t, 5.0, state.Difficulty)
	assert.Equal(t, 0.0, state.Stability)
	assert.Equal(t, fsrs.StageNew, state.Stage)
	assert.Nil(t, state.LastReview, "a new card has never been reviewed")
	assert.Equal(t, now, state.NextReview, "a new card is due immediately")
	assert.Equal(t, 0, state.Reps)
	assert.Equal(t, 0, state.Lapses)
}

func TestState_ElapsedDays(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	var state fsrs.State
	assert.Equal(t, 0.0, state.ElapsedDays(now), "never reviewed means zero elapsed days")

	last := now.Add(-36 * time.Hour)
	state.LastReview = &last
	assert.InDelta(t, 1.5, state.ElapsedDays(now), 1e-9)

	future := now.Add(24 * time.Hour)
	state.LastReview = &future
	assert.Equal(t, 0.0, state.ElapsedDays(now), "future reviews count as zero elapsed")
}

func TestState_CurrentRetrievability(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	last := now.Add(-10 * 24 * time.Hour)

	state := fsrs.State{Stability: 10, LastReview: &last}
	assert.InDelta(t, 0.9, state.CurrentRetrievability(now), 1e-9)

	state.Retrievability = 0.123 // stale snapshot must be ignored
	assert.InDelta(t, 0.9, state.CurrentRetrievability(now), 1e-9)
}

func TestState_JSONRoundTrip(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	last := now.Add(-24 * time.Hour)
	state := fsrs.State{
		Difficulty:     5.2,
		Stability:      3.7,
		Retrievability: 1,
		LastReview:     &last,
		NextReview:     now.Add(4 * 24 * time.Hour),
		Reps:           3,
		Lapses:         1,
		Stage:          fsrs.StageReview,
	}

	data, err := json.Marshal(state)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"state":"review"`, "stage persists as its name")

	var decoded fsrs.State
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, state, decoded)
}

func TestParseTimestamp(t *testing.T) {
	got := fsrs.ParseTimestamp("2024-06-15T12:00:00Z")
	assert.Equal(t, time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC), got)

	assert.True(t, fsrs.ParseTimestamp("not a timestamp").IsZero(),
		"unparseable timestamps fall back to the zero time instead of failing")
	assert.True(t, fsrs.ParseTimestamp("").IsZero())

	// The fallback deterministically loses ordering comparisons against
	// any valid timestamp.
	valid := fsrs.ParseTimestamp("1990-01-01T00:00:00Z")
	assert.True(t, fsrs.ParseTimestamp("garbage").Before(valid))
}
