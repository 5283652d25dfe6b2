package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/craps-sim/craps-sim/craps"
)

// loadDiceScript reads scripted dice pairs from a YAML (or JSON, a YAML
// subset) file: a sequence of two-element integer sequences.
func loadDiceScript() []craps.DicePair {
	if diceScriptPath == "" {
		if rollMode == string(craps.RollModeScript) {
			logrus.Fatalf("Roll mode is script but no --dice-script was provided.")
		}
		return nil
	}
	data, err := os.ReadFile(diceScriptPath)
	if err != nil {
		logrus.Fatalf("Failed to read dice script: %v", err)
	}
	var raw [][]int
	if err := yaml.Unmarshal(data, &raw); err != nil {
		logrus.Fatalf("Failed to parse dice script: %v", err)
	}
	script, err := craps.ParseDiceScript(raw)
	if err != nil {
		logrus.Fatalf("Invalid dice script: %v", err)
	}
	return script
}
