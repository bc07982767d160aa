package fsrs_test

import (
	"testing"
	"time"

	"github.com/mnemo-dev/mnemo/fsrs"
)

func BenchmarkProcessReview(b *testing.B) {
	scheduler, err := fsrs.NewScheduler(fsrs.Params{})
	if err != nil {
		b.Fatal(err)
	}
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	lastReview := now.Add(-10 * 24 * time.Hour)
	state := fsrs.State{
		Difficulty: 5,
		Stability:  10,
		Stage:      fsrs.StageReview,
		LastReview: &lastReview,
		NextReview: now,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = scheduler.ProcessReview(state, fsrs.Good, now)
	}
}

func BenchmarkPreviewIntervals(b *testing.B) {
	scheduler, err := fsrs.NewScheduler(fsrs.Params{})
	if err != nil {
		b.Fatal(err)
	}
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	state := fsrs.NewInitialState(now)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = scheduler.PreviewIntervals(state, now)
	}
}

func BenchmarkCalculateRetrievability(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = fsrs.CalculateRetrievability(10, 7)
	}
}
