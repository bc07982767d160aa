// Package deck provides queue-building and aggregate statistics over a
// collection of cards. All operations are read-only, O(n) passes over
// the slice the caller supplies; nothing here touches storage.
package deck

import (
	"sort"
	"time"

	"github.com/mnemo-dev/mnemo/fsrs"
)

// Card is the shape the engine consumes. The caller's persistence layer
// owns the collection; the engine never mutates it.
type Card struct {
	ID        string     `json:"id"`
	FSRS      fsrs.State `json:"fsrs"`
	Suspended bool       `json:"suspended,omitempty"`
}

// DueCards returns the cards whose next review is at or before now.
func DueCards(cards []Card, now time.Time) []Card {
	due := make([]Card, 0, len(cards))
	for _, c := range cards {
		if !c.FSRS.NextReview.After(now) {
			due = append(due, c)
		}
	}
	return due
}

// SortByPriority returns a new slice with every new card placed after
// all seen cards, and seen cards ordered oldest due first. The input
// slice is left untouched; ties keep their input order.
func SortByPriority(cards []Card) []Card {
	sorted := make([]Card, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		aNew := a.FSRS.Stage == fsrs.StageNew
		bNew := b.FSRS.Stage == fsrs.StageNew
		if aNew != bNew {
			return bNew
		}
		if aNew {
			return false
		}
		return a.FSRS.NextReview.Before(b.FSRS.NextReview)
	})
	return sorted
}
