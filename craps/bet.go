package craps

// UnitType selects how a BetSpec's BaseAmount is denominated.
type UnitType string

const (
	// UnitUnits denominates the amount in table units (converted via Table rules).
	UnitUnits UnitType = "units"
	// UnitDollars denominates the amount in literal dollars.
	UnitDollars UnitType = "dollars"
)

// BetSpec is one declarative wager prior to engine-specific translation.
type BetSpec struct {
	Key        string   `yaml:"key" json:"key"`
	BaseAmount float64  `yaml:"base_amount" json:"base_amount"`
	UnitType   UnitType `yaml:"unit_type" json:"unit_type"`
	Number     *int     `yaml:"number,omitempty" json:"number,omitempty"`
	BetID      string   `yaml:"bet_id,omitempty" json:"bet_id,omitempty"`
	Note       string   `yaml:"note,omitempty" json:"note,omitempty"`
	Working    *bool    `yaml:"working,omitempty" json:"working,omitempty"`
}

// Strategy is a named, ordered set of bets placed at the start of every session.
type Strategy struct {
	Name string
	Bets []BetSpec
}

// Action is the normalized unit sent to the remote engine: a registry-validated
// verb plus typed arguments. Args always carries the legalized "amount"; it may
// carry "number", "base" and "working" depending on the bet family.
type Action struct {
	Key     string
	Verb    string
	Args    map[string]any
	Dollars float64
	Number  *int
	Family  BetFamily
}
