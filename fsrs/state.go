package fsrs

import "time"

// initialDifficulty is the difficulty assigned to a card that has never
// been reviewed. The first graded review replaces it.
const initialDifficulty = 5.0

// State is the complete scheduling state for one card. A State is owned
// by exactly one card and is replaced wholesale on each review; the
// engine never mutates a State in place, so snapshots can be shared
// freely across goroutines.
type State struct {
	Difficulty float64 `json:"difficulty"` // always within [1, 10]
	Stability  float64 `json:"stability"`  // days until retrievability decays to ~90%

	// Retrievability is a cached snapshot taken at the last review. It is
	// not authoritative; recompute with CalculateRetrievability when a
	// current value is needed.
	Retrievability float64 `json:"retrievability"`

	LastReview *time.Time `json:"last_review"` // nil before the first review
	NextReview time.Time  `json:"next_review"` // always set; new cards are due immediately

	Reps   int `json:"reps"`
	Lapses int `json:"lapses"`

	Stage CardStage `json:"state"`
}

// NewInitialState returns the state of a brand-new card: never reviewed,
// due immediately.
func NewInitialState(now time.Time) State {
	return State{
		Difficulty: initialDifficulty,
		Stability:  0,
		Stage:      StageNew,
		NextReview: now,
	}
}

// ElapsedDays returns the fractional days since the last review, or 0 if
// the card has never been reviewed. Reviews timestamped in the future
// count as 0 elapsed days.
func (s State) ElapsedDays(now time.Time) float64 {
	if s.LastReview == nil {
		return 0
	}
	return daysBetween(*s.LastReview, now)
}

// CurrentRetrievability recomputes the recall probability at the given
// time from stability and elapsed time, ignoring the cached snapshot.
func (s State) CurrentRetrievability(now time.Time) float64 {
	return CalculateRetrievability(s.Stability, s.ElapsedDays(now))
}

func daysBetween(from, to time.Time) float64 {
	days := to.Sub(from).Hours() / 24
	if days < 0 {
		return 0
	}
	return days
}

// ParseTimestamp parses an RFC 3339 (ISO-8601) timestamp. Unparseable
// values yield the zero time rather than an error, so time-ordering
// comparisons deterministically favor whichever side carries a valid
// timestamp.
func ParseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
