package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/craps-sim/craps-sim/craps"
)

var (
	seed     int64  // Session seed (fixed mode)
	seedMode string // "fixed" or "random"
)

// runCmd executes one session against the remote engine.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one session: place bets, roll, summarize",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		spec := loadStrategySpec()
		cfg := effectiveAPIConfig(cmd)
		if cmd.Flags().Changed("seed") {
			cfg.Seed = seed
			cfg.SeedMode = craps.SeedModeFixed
		} else if seedMode != "" {
			cfg.SeedMode = craps.SeedMode(seedMode)
		}
		cfg.Seed = cfg.ResolveSeed()

		script := loadDiceScript()
		runner := craps.NewSessionRunner(craps.NewEngineClient(cfg), spec.TableRules())

		logrus.Infof("Starting session: strategy=%s seed=%d rolls=%d strict=%v", spec.Name, cfg.Seed, rolls, strictMode)
		result, err := runner.Run(context.Background(), spec.Strategy(), cfg, craps.RunOptions{
			Rolls:             rolls,
			StrictMode:        strictMode,
			RollMode:          craps.RollMode(rollMode),
			DiceScript:        script,
			PrepareFileOutput: journalDir != "",
		})
		if err != nil {
			logrus.Fatalf("Run failed: %v", err)
		}

		writeJournalArtifact(result)
		printJSON(result.Summary)
		logrus.Info("Session complete.")
	},
}

// writeJournalArtifact persists the NDJSON journal when --journal-dir is set.
func writeJournalArtifact(result *craps.RunResult) {
	if journalDir == "" || result.Filename == "" {
		return
	}
	path := filepath.Join(journalDir, result.Filename)
	if err := os.WriteFile(path, []byte(result.FileOutput), 0o644); err != nil {
		logrus.Fatalf("Failed to write journal %s: %v", path, err)
	}
	logrus.Infof("Journal written to %s", path)
}

// printJSON renders a result document to stdout.
func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logrus.Fatalf("Failed to encode output: %v", err)
	}
	fmt.Println(string(out))
}

func init() {
	addSessionFlags(runCmd)
	runCmd.Flags().Int64Var(&seed, "seed", 0, "Session seed (implies fixed seed mode)")
	runCmd.Flags().StringVar(&seedMode, "seed-mode", "", "Seed mode: fixed or random")
	rootCmd.AddCommand(runCmd)
}
