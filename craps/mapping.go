package craps

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// oddsBases maps an odds-family catalog key to the line bet it backs.
var oddsBases = map[string]string{
	"odds_pass_line": "pass_line",
	"odds_dont_pass": "dont_pass",
	"odds_come":      "come",
	"odds_dont_come": "dont_come",
}

// resolveNumber picks the bet's explicit number over the catalog default.
func resolveNumber(bet BetSpec, entry CatalogEntry) *int {
	if bet.Number != nil {
		n := *bet.Number
		return &n
	}
	if entry.Number != 0 {
		n := entry.Number
		return &n
	}
	return nil
}

// normalizeAmount converts BaseAmount + UnitType into pre-legalization dollars.
func normalizeAmount(bet BetSpec, table Table) (float64, error) {
	if !(bet.BaseAmount > 0) {
		return 0, fmt.Errorf("bet %q is missing a positive base_amount", bet.Key)
	}
	var amount Amount
	switch bet.UnitType {
	case UnitUnits:
		amount = Amount{Units: bet.BaseAmount}
	case UnitDollars:
		amount = Amount{Dollars: bet.BaseAmount}
	default:
		return 0, fmt.Errorf("bet %q must specify unit_type as %q or %q", bet.Key, UnitUnits, UnitDollars)
	}
	dollars := table.ToDollars(amount)
	if !(dollars > 0) {
		return 0, fmt.Errorf("bet %q resolved to non-positive dollars (%v)", bet.Key, dollars)
	}
	return dollars, nil
}

// MapBetToAction translates one declarative bet into a normalized, registry-
// validated engine action. Pure function of its inputs: no I/O, no logging.
// An unknown catalog key returns *UnknownBetError; all other failures are
// ordinary errors with the same skip-this-bet semantics for callers.
func MapBetToAction(bet BetSpec, table Table, catalog *Catalog, registry *Registry) (*Action, error) {
	entry, ok := catalog.Lookup(bet.Key)
	if !ok {
		return nil, &UnknownBetError{Key: bet.Key}
	}

	number := resolveNumber(bet, entry)
	if entry.RequiresNumber.Required {
		if number == nil || !entry.numberAllowed(*number) {
			return nil, fmt.Errorf("bet %q requires a valid number", entry.Key)
		}
	}

	preDollars, err := normalizeAmount(bet, table)
	if err != nil {
		return nil, err
	}

	legalizeType := entry.Key
	if entry.Family == FamilyOdds {
		base, ok := oddsBases[entry.Key]
		if !ok {
			return nil, fmt.Errorf("bet %q has no odds base mapping", entry.Key)
		}
		legalizeType = base
	}
	point := 0
	if number != nil {
		point = *number
	}
	legalized := table.Legalize(legalizeType, point, preDollars)
	if !(legalized > 0) {
		return nil, fmt.Errorf("bet %q resolved to non-positive dollars after legalization", entry.Key)
	}

	args := map[string]any{"amount": legalized}
	if entry.Family == FamilyOdds {
		args["base"] = oddsBases[entry.Key]
		if entry.RequiresNumber.Required {
			args["number"] = *number
		}
		if bet.Working != nil {
			args["working"] = *bet.Working
		}
	} else if number != nil && entry.RequiresNumber.Required {
		args["number"] = *number
	}

	if err := registry.ValidateAction(entry.EngineVerb, args); err != nil {
		return nil, err
	}

	return &Action{
		Key:     entry.Key,
		Verb:    entry.EngineVerb,
		Args:    args,
		Dollars: legalized,
		Number:  number,
		Family:  entry.Family,
	}, nil
}

// mapOrSkip applies MapBetToAction and converts any failure into a logged
// skip. This is the caller-side policy: invalid bets never abort a run.
func mapOrSkip(bet BetSpec, table Table, catalog *Catalog, registry *Registry, log logrus.FieldLogger) *Action {
	action, err := MapBetToAction(bet, table, catalog, registry)
	if err == nil {
		return action
	}
	var unknown *UnknownBetError
	if errors.As(err, &unknown) {
		log.Warnf("session: unknown bet key %q", bet.Key)
		return nil
	}
	log.Warnf("session: skipping bet %q: %v", bet.Key, err)
	return nil
}
