package fsrs

import "time"

// ReviewEntry is the immutable audit record for one review. Entries are
// created here and appended by the caller's persistence layer; nothing
// ever mutates one.
type ReviewEntry struct {
	Rating        Rating    `json:"rating"`
	ScheduledDays int       `json:"scheduled_days"`
	ElapsedDays   float64   `json:"elapsed_days"`
	Stage         CardStage `json:"state"`
	Date          time.Time `json:"date"`
}

// NewReviewEntry builds the audit record for a single review. A card
// that had never been reviewed before counts 0 elapsed days.
func NewReviewEntry(rating Rating, previous, next State, scheduledDays int, now time.Time) ReviewEntry {
	return ReviewEntry{
		Rating:        rating,
		ScheduledDays: scheduledDays,
		ElapsedDays:   previous.ElapsedDays(now),
		Stage:         next.Stage,
		Date:          now,
	}
}
