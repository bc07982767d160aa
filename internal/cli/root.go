// Package cli wires the mnemo command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mnemo-dev/mnemo/internal/config"
	"github.com/mnemo-dev/mnemo/internal/logger"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "mnemo",
	Short: "FSRS-style spaced-repetition scheduling engine",
	Long: "mnemo is a pure scheduling engine for spaced repetition: it models per-card\n" +
		"memory with an FSRS-style forgetting curve and decides when each card should\n" +
		"next be shown. This CLI exposes developer tooling around the engine.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		logger.SetDefault(logger.New(logger.WithLevel(logger.ParseLevel(cfg.LogLevel))))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}
