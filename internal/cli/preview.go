package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mnemo-dev/mnemo/format"
	"github.com/mnemo-dev/mnemo/fsrs"
)

var previewReviews int

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show projected intervals for a card per rating",
	Long: "Prints the interval each rating would schedule for a fresh card, then for\n" +
		"the card after a run of Good reviews, using the configured retention target.",
	RunE: func(cmd *cobra.Command, args []string) error {
		scheduler, err := fsrs.NewScheduler(fsrs.Params{
			RequestedRetention:  cfg.RequestedRetention,
			MaximumIntervalDays: cfg.MaximumIntervalDays,
		})
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		state := fsrs.NewInitialState(now)

		for i := 0; i <= previewReviews; i++ {
			intervals := scheduler.PreviewIntervals(state, now)
			fmt.Printf("review %d (%s, difficulty %.1f, stability %.1fd):\n",
				i+1, state.Stage, state.Difficulty, state.Stability)
			for _, r := range fsrs.Ratings() {
				fmt.Printf("  %-5s -> %s\n", r, format.Interval(float64(intervals[r])))
			}

			res := scheduler.ProcessReview(state, fsrs.Good, now)
			state = res.State
			now = state.NextReview
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().IntVar(&previewReviews, "reviews", 3, "number of consecutive Good reviews to project")
}
