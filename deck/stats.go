package deck

import (
	"time"

	"github.com/mnemo-dev/mnemo/fsrs"
)

// MatureStabilityDays is the stability threshold (about three weeks)
// past which a card counts as mature.
const MatureStabilityDays = 21.0

// DeckStats aggregates a deck for dashboards. Suspended cards count only
// toward Total and Suspended; every other figure covers active cards.
type DeckStats struct {
	Total            int     `json:"total"`
	New              int     `json:"new"`
	Learning         int     `json:"learning"` // includes relearning
	Review           int     `json:"review"`
	Suspended        int     `json:"suspended"`
	Mature           int     `json:"mature"`
	Due              int     `json:"due"`
	AverageStability float64 `json:"average_stability"`
	AverageRetention float64 `json:"average_retention"`
}

// Stats computes deck-wide statistics at the given time. Averages are 0
// for an empty or fully suspended deck.
func Stats(cards []Card, now time.Time) DeckStats {
	stats := DeckStats{Total: len(cards)}

	active := 0
	var stabilitySum, retentionSum float64
	for _, c := range cards {
		if c.Suspended {
			stats.Suspended++
			continue
		}
		active++

		switch c.FSRS.Stage {
		case fsrs.StageNew:
			stats.New++
		case fsrs.StageLearning, fsrs.StageRelearning:
			stats.Learning++
		case fsrs.StageReview:
			stats.Review++
		}

		if c.FSRS.Stability > MatureStabilityDays {
			stats.Mature++
		}
		if !c.FSRS.NextReview.After(now) {
			stats.Due++
		}

		stabilitySum += c.FSRS.Stability
		retentionSum += c.FSRS.CurrentRetrievability(now)
	}

	if active > 0 {
		stats.AverageStability = stabilitySum / float64(active)
		stats.AverageRetention = retentionSum / float64(active)
	}
	return stats
}
