package cmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/craps-sim/craps-sim/craps"
)

var (
	seeds     []int64 // Explicit seed list (takes precedence)
	seedStart int64   // First seed of an arithmetic sequence
	seedCount int     // Number of seeds in the sequence
)

// batchCmd sweeps one session per seed and aggregates the summaries.
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run one session per seed and aggregate cross-run statistics",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		spec := loadStrategySpec()
		cfg := effectiveAPIConfig(cmd)
		script := loadDiceScript()

		runner := &craps.BatchRunner{
			Session: craps.NewSessionRunner(craps.NewEngineClient(cfg), spec.TableRules()),
		}

		logrus.Infof("Starting batch: strategy=%s rolls=%d strict=%v", spec.Name, rolls, strictMode)
		result, err := runner.Run(context.Background(), spec.Strategy(), cfg, craps.BatchOptions{
			Seeds:      seeds,
			SeedStart:  seedStart,
			SeedCount:  seedCount,
			Rolls:      rolls,
			StrictMode: strictMode,
			RollMode:   craps.RollMode(rollMode),
			DiceScript: script,
		})
		if err != nil {
			logrus.Fatalf("Batch failed: %v", err)
		}

		printJSON(struct {
			Runs    []craps.RunSummary  `json:"runs"`
			Summary *craps.BatchSummary `json:"summary"`
		}{result.Runs, result.Summary})
		logrus.Infof("Batch complete: %d runs.", len(result.Runs))
	},
}

func init() {
	addSessionFlags(batchCmd)
	batchCmd.Flags().Int64SliceVar(&seeds, "seeds", nil, "Comma-separated explicit seed list")
	batchCmd.Flags().Int64Var(&seedStart, "seed-start", 0, "First seed of an arithmetic sequence")
	batchCmd.Flags().IntVar(&seedCount, "seed-count", 0, "Number of seeds in the sequence")
	rootCmd.AddCommand(batchCmd)
}
