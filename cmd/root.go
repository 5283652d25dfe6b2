package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/craps-sim/craps-sim/craps"
	"github.com/craps-sim/craps-sim/craps/strategy"
)

var (
	// CLI flags shared by the run and batch subcommands
	logLevel       string // Log verbosity level
	strategyPath   string // Path to the YAML strategy spec
	apiConfigPath  string // Optional YAML API config file
	baseURL        string // Engine base URL (overrides the config file)
	profileID      string // Engine profile id
	authToken      string // Bearer token for the engine API
	timeoutMS      int    // Per-request timeout in milliseconds
	rolls          int    // Number of dice outcomes per session
	strictMode     bool   // Abort a run on the first engine-reported error
	rollMode       string // "random" or "script"
	diceScriptPath string // YAML/JSON file with scripted dice pairs
	journalDir     string // Directory for NDJSON journal artifacts ("" = off)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "craps-sim",
	Short: "Session and batch driver for a remote craps-simulation engine",
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging applies the --log flag to the global logrus level.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// effectiveAPIConfig merges flag overrides over the config file over defaults.
func effectiveAPIConfig(cmd *cobra.Command) craps.APIConfig {
	cfg := craps.DefaultAPIConfig()
	if apiConfigPath != "" {
		loaded, err := craps.LoadAPIConfig(apiConfigPath)
		if err != nil {
			logrus.Fatalf("Failed to load API config: %v", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("base-url") {
		cfg.BaseURL = baseURL
	}
	if cmd.Flags().Changed("profile") {
		cfg.ProfileID = profileID
	}
	if cmd.Flags().Changed("auth-token") {
		cfg.AuthToken = authToken
	}
	if cmd.Flags().Changed("timeout-ms") {
		cfg.TimeoutMS = timeoutMS
	}
	return cfg
}

// loadStrategySpec reads the mandatory --strategy file.
func loadStrategySpec() *strategy.Spec {
	if strategyPath == "" {
		logrus.Fatalf("Strategy spec not provided. Use --strategy.")
	}
	spec, err := strategy.Load(strategyPath)
	if err != nil {
		logrus.Fatalf("Failed to load strategy spec: %v", err)
	}
	return spec
}

// addSessionFlags registers the flags shared by run and batch.
func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	cmd.Flags().StringVar(&strategyPath, "strategy", "", "Path to the YAML strategy spec")
	cmd.Flags().StringVar(&apiConfigPath, "api-config", "", "Path to a YAML API config file")
	cmd.Flags().StringVar(&baseURL, "base-url", "http://127.0.0.1:8000", "Engine base URL")
	cmd.Flags().StringVar(&profileID, "profile", "default", "Engine profile id")
	cmd.Flags().StringVar(&authToken, "auth-token", "", "Bearer token for the engine API")
	cmd.Flags().IntVar(&timeoutMS, "timeout-ms", 5000, "Per-request timeout in milliseconds")
	cmd.Flags().IntVar(&rolls, "rolls", 100, "Number of dice outcomes per session")
	cmd.Flags().BoolVar(&strictMode, "strict", false, "Abort a run on the first engine-reported error")
	cmd.Flags().StringVar(&rollMode, "roll-mode", string(craps.RollModeRandom), "Roll mode: random or script")
	cmd.Flags().StringVar(&diceScriptPath, "dice-script", "", "YAML/JSON file with scripted dice pairs")
	cmd.Flags().StringVar(&journalDir, "journal-dir", "", "Write NDJSON journal artifacts into this directory")
}
