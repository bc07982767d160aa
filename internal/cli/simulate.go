package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mnemo-dev/mnemo/format"
	"github.com/mnemo-dev/mnemo/fsrs"
	"github.com/mnemo-dev/mnemo/internal/logger"
	"github.com/mnemo-dev/mnemo/internal/simulator"
)

var (
	simDays      int
	simDeckSize  int
	simSeed      int64
	simRetention float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate a learner reviewing a deck for N days",
	Long: "Runs a seeded learner model against a generated deck and prints how the\n" +
		"deck's scheduling statistics evolve. Useful for eyeballing parameter changes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		days := simDays
		if days == 0 {
			days = cfg.SimDays
		}
		deckSize := simDeckSize
		if deckSize == 0 {
			deckSize = cfg.SimDeckSize
		}
		seed := simSeed
		if seed == 0 {
			seed = cfg.SimSeed
		}
		retention := simRetention
		if retention == 0 {
			retention = cfg.RequestedRetention
		}

		scheduler, err := fsrs.NewScheduler(fsrs.Params{
			RequestedRetention:  retention,
			MaximumIntervalDays: cfg.MaximumIntervalDays,
		})
		if err != nil {
			return err
		}

		log := logger.Default().WithField("seed", seed)
		log.Info("simulating %d cards over %d days at %.0f%% retention",
			deckSize, days, retention*100)

		sim := simulator.New(scheduler, simulator.Options{
			DeckSize: deckSize,
			Days:     days,
			Seed:     seed,
		})
		result := sim.Run()

		for _, day := range result.Days {
			if day.Day%7 != 0 && day.Day != days-1 {
				continue
			}
			s := day.Stats
			fmt.Printf("day %3d  reviewed %4d | new %3d learning %3d review %3d mature %3d | avg stability %s retention %.1f%%\n",
				day.Day, day.Reviewed, s.New, s.Learning, s.Review, s.Mature,
				format.Interval(s.AverageStability), s.AverageRetention*100)
		}

		final := result.Days[len(result.Days)-1].Stats
		fmt.Printf("\nafter %d days: %d reviews logged, %d/%d cards mature, average interval %s\n",
			days, len(result.Entries), final.Mature, final.Total,
			format.Interval(final.AverageStability))
		return nil
	},
}

func init() {
	simulateCmd.Flags().IntVar(&simDays, "days", 0, "days to simulate (default from MNEMO_SIM_DAYS)")
	simulateCmd.Flags().IntVar(&simDeckSize, "deck-size", 0, "number of cards (default from MNEMO_SIM_DECK_SIZE)")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 0, "random seed (default from MNEMO_SIM_SEED)")
	simulateCmd.Flags().Float64Var(&simRetention, "retention", 0, "requested retention (default from MNEMO_RETENTION)")
}
