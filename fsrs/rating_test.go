package fsrs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemo-dev/mnemo/fsrs"
)

func TestRating_Values(t *testing.T) {
	// The numeric values are part of the persisted format.
	assert.Equal(t, 1, int(fsrs.Again))
	assert.Equal(t, 2, int(fsrs.Hard))
	assert.Equal(t, 3, int(fsrs.Good))
	assert.Equal(t, 4, int(fsrs.Easy))
}

func TestRating_IsValid(t *testing.T) {
	for _, r := range fsrs.Ratings() {
		assert.True(t, r.IsValid(), "%s", r)
	}
	assert.False(t, fsrs.Rating(0).IsValid())
	assert.False(t, fsrs.Rating(5).IsValid())
}

func TestParseRating(t *testing.T) {
	for _, r := range fsrs.Ratings() {
		parsed, err := fsrs.ParseRating(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}

	_, err := fsrs.ParseRating("meh")
	assert.Error(t, err)
}
