// Package simulator replays a synthetic learner against a generated
// deck, day by day, to exercise the scheduling engine at deck scale. It
// backs the `mnemo simulate` command and doubles as an end-to-end check
// that deck statistics evolve sanely under the state machine.
package simulator

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/mnemo-dev/mnemo/deck"
	"github.com/mnemo-dev/mnemo/fsrs"
)

// Profile is the learner model: relative weights for each rating when a
// card is answered. Zero value means DefaultProfile.
type Profile struct {
	Again float64
	Hard  float64
	Good  float64
	Easy  float64
}

// DefaultProfile approximates a learner hitting the 90% retention target.
var DefaultProfile = Profile{Again: 0.10, Hard: 0.15, Good: 0.60, Easy: 0.15}

func (p Profile) total() float64 {
	return p.Again + p.Hard + p.Good + p.Easy
}

// Options configures a simulation run.
type Options struct {
	DeckSize int
	Days     int
	Seed     int64
	Profile  Profile
	Start    time.Time // zero value: 2024-01-01T00:00:00Z, kept fixed for reproducibility
}

// DaySummary is the deck snapshot after one simulated day.
type DaySummary struct {
	Day      int
	Reviewed int
	Stats    deck.DeckStats
}

// Result is the outcome of a full run.
type Result struct {
	Cards   []deck.Card
	Days    []DaySummary
	Entries []fsrs.ReviewEntry
}

// Simulator drives one reproducible run; the same seed and options
// always produce the same Result.
type Simulator struct {
	scheduler *fsrs.Scheduler
	opts      Options
	rng       *rand.Rand
}

// New creates a Simulator. Zero option fields get usable defaults.
func New(scheduler *fsrs.Scheduler, opts Options) *Simulator {
	if opts.DeckSize <= 0 {
		opts.DeckSize = 100
	}
	if opts.Days <= 0 {
		opts.Days = 90
	}
	if opts.Profile.total() <= 0 {
		opts.Profile = DefaultProfile
	}
	if opts.Start.IsZero() {
		opts.Start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return &Simulator{
		scheduler: scheduler,
		opts:      opts,
		rng:       rand.New(rand.NewSource(opts.Seed)),
	}
}

// Run simulates the configured number of days and returns the final deck
// plus per-day summaries and the full review history.
func (s *Simulator) Run() Result {
	cards := s.buildDeck()
	result := Result{}

	for day := 0; day < s.opts.Days; day++ {
		now := s.opts.Start.Add(time.Duration(day) * 24 * time.Hour)
		queue := deck.SortByPriority(deck.DueCards(cards, now))

		reviewed := 0
		for _, card := range queue {
			rating := s.drawRating()
			res := s.scheduler.ProcessReview(card.FSRS, rating, now)
			result.Entries = append(result.Entries,
				fsrs.NewReviewEntry(rating, card.FSRS, res.State, res.ScheduledDays, now))
			s.replaceCard(cards, card.ID, res.State)
			reviewed++
		}

		result.Days = append(result.Days, DaySummary{
			Day:      day,
			Reviewed: reviewed,
			Stats:    deck.Stats(cards, now),
		})
	}

	result.Cards = cards
	return result
}

func (s *Simulator) buildDeck() []deck.Card {
	cards := make([]deck.Card, s.opts.DeckSize)
	for i := range cards {
		cards[i] = deck.Card{
			ID:   uuid.NewString(),
			FSRS: fsrs.NewInitialState(s.opts.Start),
		}
	}
	return cards
}

func (s *Simulator) replaceCard(cards []deck.Card, id string, state fsrs.State) {
	for i := range cards {
		if cards[i].ID == id {
			cards[i].FSRS = state
			return
		}
	}
}

// drawRating samples a rating from the profile weights.
func (s *Simulator) drawRating() fsrs.Rating {
	p := s.opts.Profile
	x := s.rng.Float64() * p.total()
	switch {
	case x < p.Again:
		return fsrs.Again
	case x < p.Again+p.Hard:
		return fsrs.Hard
	case x < p.Again+p.Hard+p.Good:
		return fsrs.Good
	default:
		return fsrs.Easy
	}
}
