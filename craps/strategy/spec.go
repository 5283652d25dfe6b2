// Package strategy loads and validates declarative betting-strategy documents.
package strategy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/craps-sim/craps-sim/craps"
)

// Spec is the top-level strategy document. Loaded from YAML via Load(path).
// Table optionally overrides the table rules the bets are legalized against.
type Spec struct {
	Version string               `yaml:"version,omitempty"`
	Name    string               `yaml:"strategy_name"`
	Table   *craps.StandardTable `yaml:"table,omitempty"`
	Bets    []craps.BetSpec      `yaml:"bets"`
}

// Load reads and validates a strategy spec from a YAML file.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading strategy spec: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a strategy spec from YAML bytes.
func Parse(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing strategy spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks the structural invariants the mapper assumes. Semantic
// checks (catalog membership, number rules, legalization) stay with the
// mapper, which skips offending bets per-run instead of rejecting the spec.
func (s *Spec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("strategy spec: strategy_name must be non-empty")
	}
	for i, bet := range s.Bets {
		ctx := fmt.Sprintf("bets[%d]", i)
		if bet.Key == "" {
			return fmt.Errorf("%s: key must be non-empty", ctx)
		}
		if !(bet.BaseAmount > 0) {
			return fmt.Errorf("%s: base_amount must be positive", ctx)
		}
		if bet.UnitType != craps.UnitUnits && bet.UnitType != craps.UnitDollars {
			return fmt.Errorf("%s: unit_type must be %q or %q", ctx, craps.UnitUnits, craps.UnitDollars)
		}
	}
	return nil
}

// Strategy converts the spec to the orchestrator's input form.
func (s *Spec) Strategy() craps.Strategy {
	return craps.Strategy{Name: s.Name, Bets: s.Bets}
}

// TableRules returns the spec's table override, or the default table.
func (s *Spec) TableRules() craps.Table {
	if s.Table != nil {
		return *s.Table
	}
	return craps.DefaultTable()
}
