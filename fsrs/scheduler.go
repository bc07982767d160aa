package fsrs

import (
	"fmt"
	"math"
	"time"
)

// minStability keeps stability strictly positive after any update so the
// forgetting curve stays defined.
const minStability = 0.01

// Scheduler applies the review state machine. It carries only immutable
// parameters, so a single Scheduler is safe for concurrent use.
type Scheduler struct {
	params Params
}

// NewScheduler creates a Scheduler, filling zero-value params with
// defaults and rejecting out-of-range values.
func NewScheduler(params Params) (*Scheduler, error) {
	p := params.withDefaults()
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("fsrs: invalid params: %w", err)
	}
	return &Scheduler{params: p}, nil
}

// Params returns the effective parameters after defaulting.
func (s *Scheduler) Params() Params {
	return s.params
}

// ReviewResult is the outcome of processing one review.
type ReviewResult struct {
	State         State `json:"state"`
	ScheduledDays int   `json:"scheduled_days"`
}

// ProcessReview applies a rating to a card's state at the given time and
// returns the replacement state plus the scheduled interval in days.
// The input state is not mutated.
//
// Transitions: a failing rating sends new cards to learning and review
// cards to relearning (both count a lapse) and leaves learning and
// relearning cards where they are, always due immediately. Any passing
// rating graduates the card to review with an interval that grows
// strictly from Hard to Good to Easy.
func (s *Scheduler) ProcessReview(state State, rating Rating, now time.Time) ReviewResult {
	next := state
	elapsed := state.ElapsedDays(now)

	next.Difficulty, next.Stability = s.updateMemory(state, rating, elapsed)

	var days int
	if rating == Again {
		switch state.Stage {
		case StageNew:
			next.Stage = StageLearning
			next.Lapses++
		case StageReview:
			next.Stage = StageRelearning
			next.Lapses++
		}
	} else {
		hard, good, easy := s.successIntervals(state, elapsed)
		switch rating {
		case Hard:
			days = hard
		case Good:
			days = good
		default:
			days = easy
		}
		next.Stage = StageReview
	}

	reviewedAt := now
	next.Reps++
	next.LastReview = &reviewedAt
	next.NextReview = now.Add(time.Duration(days) * 24 * time.Hour)
	next.Retrievability = CalculateRetrievability(next.Stability, 0)

	return ReviewResult{State: next, ScheduledDays: days}
}

// PreviewIntervals returns the interval each rating would schedule,
// keyed by rating. Again is always 0 and the values never decrease from
// Again through Easy.
func (s *Scheduler) PreviewIntervals(state State, now time.Time) map[Rating]int {
	hard, good, easy := s.successIntervals(state, state.ElapsedDays(now))
	return map[Rating]int{Again: 0, Hard: hard, Good: good, Easy: easy}
}

// updateMemory returns the recomputed difficulty and stability. A card
// with no stability yet (first graded review) gets the initial values
// for the rating; otherwise the FSRS update formulas apply.
func (s *Scheduler) updateMemory(state State, rating Rating, elapsed float64) (difficulty, stability float64) {
	if state.Stability <= 0 {
		return s.initialDifficulty(rating), s.initialStability(rating)
	}
	r := CalculateRetrievability(state.Stability, elapsed)
	difficulty = s.nextDifficulty(state.Difficulty, rating)
	if rating == Again {
		stability = s.forgetStability(state.Difficulty, state.Stability, r)
	} else {
		stability = s.recallStability(state.Difficulty, state.Stability, r, rating)
	}
	return difficulty, stability
}

// successIntervals computes the scheduled days for the three passing
// ratings from the same prior state. Rounding can collapse adjacent
// intervals, so an ordering pass restores hard < good < easy before the
// maximum-interval cap is applied.
func (s *Scheduler) successIntervals(state State, elapsed float64) (hard, good, easy int) {
	var sHard, sGood, sEasy float64
	if state.Stability <= 0 {
		sHard = s.initialStability(Hard)
		sGood = s.initialStability(Good)
		sEasy = s.initialStability(Easy)
	} else {
		r := CalculateRetrievability(state.Stability, elapsed)
		sHard = s.recallStability(state.Difficulty, state.Stability, r, Hard)
		sGood = s.recallStability(state.Difficulty, state.Stability, r, Good)
		sEasy = s.recallStability(state.Difficulty, state.Stability, r, Easy)
	}

	hard = s.boundedInterval(sHard)
	good = s.boundedInterval(sGood)
	easy = s.boundedInterval(sEasy)
	if good <= hard {
		good = hard + 1
	}
	if easy <= good {
		easy = good + 1
	}

	maxDays := s.params.MaximumIntervalDays
	if good > maxDays {
		good = maxDays
	}
	if easy > maxDays {
		easy = maxDays
	}
	return hard, good, easy
}

// boundedInterval maps a stability to a scheduled interval of at least
// one day. Graduating and passing reviews must always move the card into
// the future; the zero-day case is reserved for failing ratings.
func (s *Scheduler) boundedInterval(stability float64) int {
	days := CalculateInterval(stability, s.params.RequestedRetention)
	if days < 1 {
		days = 1
	}
	if days > s.params.MaximumIntervalDays {
		days = s.params.MaximumIntervalDays
	}
	return days
}

// initialStability returns S0(g) = w[g-1].
func (s *Scheduler) initialStability(rating Rating) float64 {
	return math.Max(s.params.Weights[rating-1], minStability)
}

// initialDifficulty returns D0(g) = w4 - w5*(g - 3), clamped to [1, 10].
func (s *Scheduler) initialDifficulty(rating Rating) float64 {
	w := s.params.Weights
	return clampDifficulty(w[4] - w[5]*(float64(rating)-3))
}

// nextDifficulty shifts difficulty against the rating (Again raises it,
// Easy lowers it) and mean-reverts toward D0(Easy) so repeated extreme
// ratings cannot pin a card at the bounds.
func (s *Scheduler) nextDifficulty(difficulty float64, rating Rating) float64 {
	w := s.params.Weights
	shifted := difficulty - w[6]*(float64(rating)-3)
	return clampDifficulty(w[7]*s.initialDifficulty(Easy) + (1-w[7])*shifted)
}

// recallStability grows stability after a passing review:
// S' = S * (1 + e^w8 * (11-D) * S^-w9 * (e^((1-R)*w10) - 1) * penalty * bonus).
// The Hard penalty (w15 < 1) and Easy bonus (w16 > 1) give the strict
// Hard < Good < Easy ordering.
func (s *Scheduler) recallStability(difficulty, stability, retrievability float64, rating Rating) float64 {
	w := s.params.Weights
	penalty := 1.0
	if rating == Hard {
		penalty = w[15]
	}
	bonus := 1.0
	if rating == Easy {
		bonus = w[16]
	}
	growth := math.Exp(w[8]) *
		(11 - difficulty) *
		math.Pow(stability, -w[9]) *
		(math.Exp((1-retrievability)*w[10]) - 1)
	return clampStability(stability * (1 + growth*penalty*bonus))
}

// forgetStability computes post-lapse stability:
// S' = w11 * D^-w12 * ((S+1)^w13 - 1) * e^((1-R)*w14), never above the
// stability the card had before the lapse.
func (s *Scheduler) forgetStability(difficulty, stability, retrievability float64) float64 {
	w := s.params.Weights
	next := w[11] *
		math.Pow(difficulty, -w[12]) *
		(math.Pow(stability+1, w[13]) - 1) *
		math.Exp((1-retrievability)*w[14])
	return clampStability(math.Min(next, stability))
}

func clampStability(s float64) float64 {
	return math.Max(s, minStability)
}

func clampDifficulty(d float64) float64 {
	return math.Min(math.Max(d, 1), 10)
}
