package fsrs

import "fmt"

// Rating is the learner's recall-quality answer for a single review.
// The numeric values (1-4) are part of the persisted format.
type Rating int

const (
	Again Rating = iota + 1 // failed to recall
	Hard                    // recalled with serious effort
	Good                    // recalled with some effort
	Easy                    // recalled immediately
)

var ratingNames = map[Rating]string{
	Again: "again",
	Hard:  "hard",
	Good:  "good",
	Easy:  "easy",
}

// IsValid reports whether r is one of the four defined ratings.
// Ratings arrive from the UI boundary, which is responsible for
// validating learner input before calling the engine.
func (r Rating) IsValid() bool {
	return r >= Again && r <= Easy
}

func (r Rating) String() string {
	if name, ok := ratingNames[r]; ok {
		return name
	}
	return fmt.Sprintf("rating(%d)", int(r))
}

// ParseRating maps a rating name ("again", "hard", "good", "easy") to
// its Rating value.
func ParseRating(s string) (Rating, error) {
	for r, name := range ratingNames {
		if name == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown rating %q", s)
}

// Ratings lists all ratings in ascending order.
func Ratings() []Rating {
	return []Rating{Again, Hard, Good, Easy}
}
