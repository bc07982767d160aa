package fsrs

import "math"

const (
	// DefaultRetention is the recall probability the scheduler targets
	// when the caller does not request one.
	DefaultRetention = 0.9

	// MaxIntervalDays caps scheduling at roughly 100 years.
	MaxIntervalDays = 36500

	// curveFactor fixes the forgetting curve so that retrievability
	// decays to exactly 90% after `stability` days: R(S, S) = 0.9.
	curveFactor = 9.0
)

// CalculateRetrievability returns the probability of recalling a card
// elapsedDays after its last review, given its stability. The curve is
// the power law R = (1 + t/(9S))^-1.
//
// Zero elapsed time always yields 1, and non-positive stability always
// yields 0; neither is an error.
func CalculateRetrievability(stability, elapsedDays float64) float64 {
	if elapsedDays <= 0 {
		return 1
	}
	if stability <= 0 {
		return 0
	}
	return 1 / (1 + elapsedDays/(curveFactor*stability))
}

// CalculateInterval inverts the forgetting curve: it returns the number
// of whole days after which retrievability is expected to decay to
// requestedRetention. The result is clamped to [0, MaxIntervalDays].
// Retention values outside (0, 1] fall back to DefaultRetention.
func CalculateInterval(stability, requestedRetention float64) int {
	if stability <= 0 {
		return 0
	}
	if requestedRetention <= 0 || requestedRetention > 1 {
		requestedRetention = DefaultRetention
	}
	interval := curveFactor * stability * (1/requestedRetention - 1)
	days := int(math.Round(interval))
	if days < 0 {
		days = 0
	}
	if days > MaxIntervalDays {
		days = MaxIntervalDays
	}
	return days
}
