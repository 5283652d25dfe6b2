package craps

import (
	"math"
	"strings"
)

// Amount is a pre-conversion wager amount denominated in exactly one of units
// or dollars.
type Amount struct {
	Units   float64
	Dollars float64
}

// Table converts unit-denominated amounts to dollars and legalizes dollar
// amounts against the table's increments and minimums. Implementations must be
// pure: same inputs, same outputs.
type Table interface {
	ToDollars(a Amount) float64
	Legalize(betType string, point int, dollars float64) float64
}

// StandardTable implements Table with the usual live-table rules: a fixed
// dollar value per unit, a table minimum, an optional maximum, and per-type
// increments (six-dollar increments on place 6/8, five-dollar increments on the
// other numbered bets, whole dollars elsewhere).
type StandardTable struct {
	UnitDollars float64 `yaml:"unit_dollars" json:"unit_dollars"`
	MinBet      float64 `yaml:"min_bet" json:"min_bet"`
	MaxBet      float64 `yaml:"max_bet,omitempty" json:"max_bet,omitempty"` // 0 = no cap
}

// DefaultTable returns a $5-unit, $5-minimum table with a $5000 cap.
func DefaultTable() StandardTable {
	return StandardTable{UnitDollars: 5, MinBet: 5, MaxBet: 5000}
}

// ToDollars resolves an Amount to dollars. A non-zero Units field wins.
func (t StandardTable) ToDollars(a Amount) float64 {
	if a.Units != 0 {
		unit := t.UnitDollars
		if unit <= 0 {
			unit = 5
		}
		return a.Units * unit
	}
	return a.Dollars
}

// Legalize rounds dollars down to the bet type's increment and clamps the
// result into [max(MinBet, increment), MaxBet]. Returns 0 only for
// non-positive input.
func (t StandardTable) Legalize(betType string, point int, dollars float64) float64 {
	if dollars <= 0 {
		return 0
	}
	inc := t.increment(betType, point)
	legal := math.Floor(dollars/inc) * inc

	floor := t.MinBet
	if inc > floor {
		floor = inc
	}
	if legal < floor {
		legal = floor
	}
	if t.MaxBet > 0 && legal > t.MaxBet {
		legal = math.Floor(t.MaxBet/inc) * inc
	}
	return legal
}

func (t StandardTable) increment(betType string, point int) float64 {
	switch {
	case strings.HasPrefix(betType, "place"), strings.HasPrefix(betType, "buy"), strings.HasPrefix(betType, "lay"):
		if point == 6 || point == 8 {
			return 6
		}
		return 5
	case strings.HasPrefix(betType, "hardway"), strings.HasPrefix(betType, "any_"):
		return 1
	default:
		// line, field and odds bets move in whole dollars
		return 1
	}
}
