package craps

import "fmt"

// BetFamily groups catalog entries by table mechanics.
type BetFamily string

const (
	FamilyLine    BetFamily = "line"
	FamilyPlace   BetFamily = "place"
	FamilyLay     BetFamily = "lay"
	FamilyField   BetFamily = "field"
	FamilyHardway BetFamily = "hardway"
	FamilyOdds    BetFamily = "odds"
	FamilyProp    BetFamily = "prop"
	FamilyMeta    BetFamily = "meta"
)

var allowedFamilies = map[BetFamily]bool{
	FamilyLine:    true,
	FamilyPlace:   true,
	FamilyLay:     true,
	FamilyField:   true,
	FamilyHardway: true,
	FamilyOdds:    true,
	FamilyProp:    true,
	FamilyMeta:    true,
}

// canonicalNumbers are the point numbers a craps table recognizes.
var canonicalNumbers = []int{4, 5, 6, 8, 9, 10}

// hardwayNumbers narrows the canonical set for hardway-family bets.
var hardwayNumbers = []int{4, 6, 8, 10}

// NumberRule is the tri-state requires_number constraint on a catalog entry:
// not required, required from the family's canonical set (empty Allowed), or
// required from an explicit list.
type NumberRule struct {
	Required bool
	Allowed  []int
}

// CatalogEntry is one immutable bet-type definition, looked up by Key.
// Number is the fixed default point (0 = none); DynamicPoint marks bets whose
// point is assigned by the engine after a come-out roll.
type CatalogEntry struct {
	Key            string
	Family         BetFamily
	EngineVerb     string
	Number         int
	RequiresNumber NumberRule
	DynamicPoint   bool
}

// allowedNumbers resolves the set of legal point numbers for this entry.
func (e CatalogEntry) allowedNumbers() []int {
	if len(e.RequiresNumber.Allowed) > 0 {
		return e.RequiresNumber.Allowed
	}
	if e.Family == FamilyHardway {
		return hardwayNumbers
	}
	return canonicalNumbers
}

// numberAllowed reports whether n satisfies the entry's number rule.
func (e CatalogEntry) numberAllowed(n int) bool {
	for _, allowed := range e.allowedNumbers() {
		if n == allowed {
			return true
		}
	}
	return false
}

// Catalog is an immutable keyed table of bet-type definitions. Build once at
// process start and pass by reference; never mutated afterwards.
type Catalog struct {
	entries map[string]CatalogEntry
}

// NewCatalog validates and indexes a list of entries. Duplicate keys, unknown
// families and out-of-range fixed numbers are construction errors.
func NewCatalog(entries []CatalogEntry) (*Catalog, error) {
	indexed := make(map[string]CatalogEntry, len(entries))
	for i, e := range entries {
		ctx := fmt.Sprintf("catalog[%d]", i)
		if e.Key == "" || e.EngineVerb == "" {
			return nil, fmt.Errorf("%s: key and engine verb must be non-empty", ctx)
		}
		if !allowedFamilies[e.Family] {
			return nil, fmt.Errorf("%s: unknown family %q", ctx, e.Family)
		}
		if _, dup := indexed[e.Key]; dup {
			return nil, fmt.Errorf("%s: duplicate key %q", ctx, e.Key)
		}
		if e.RequiresNumber.Required && e.Number != 0 && !e.numberAllowed(e.Number) {
			return nil, fmt.Errorf("%s: invalid default number %d for family %q", ctx, e.Number, e.Family)
		}
		indexed[e.Key] = e
	}
	return &Catalog{entries: indexed}, nil
}

// Lookup returns the entry for key, or false when the key is not in the catalog.
func (c *Catalog) Lookup(key string) (CatalogEntry, bool) {
	e, ok := c.entries[key]
	return e, ok
}

// Keys returns the catalog keys in unspecified order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	return keys
}

// DefaultCatalog returns the compiled-in bet surface for a standard craps table.
func DefaultCatalog() *Catalog {
	required := NumberRule{Required: true}
	entries := []CatalogEntry{
		{Key: "pass_line", Family: FamilyLine, EngineVerb: "pass_line"},
		{Key: "dont_pass", Family: FamilyLine, EngineVerb: "dont_pass"},
		{Key: "come", Family: FamilyLine, EngineVerb: "come", DynamicPoint: true},
		{Key: "dont_come", Family: FamilyLine, EngineVerb: "dont_come", DynamicPoint: true},
		{Key: "field", Family: FamilyField, EngineVerb: "field"},

		{Key: "place_4", Family: FamilyPlace, EngineVerb: "place", Number: 4, RequiresNumber: required},
		{Key: "place_5", Family: FamilyPlace, EngineVerb: "place", Number: 5, RequiresNumber: required},
		{Key: "place_6", Family: FamilyPlace, EngineVerb: "place", Number: 6, RequiresNumber: required},
		{Key: "place_8", Family: FamilyPlace, EngineVerb: "place", Number: 8, RequiresNumber: required},
		{Key: "place_9", Family: FamilyPlace, EngineVerb: "place", Number: 9, RequiresNumber: required},
		{Key: "place_10", Family: FamilyPlace, EngineVerb: "place", Number: 10, RequiresNumber: required},

		{Key: "buy_4", Family: FamilyPlace, EngineVerb: "buy", Number: 4, RequiresNumber: NumberRule{Required: true, Allowed: []int{4, 10}}},
		{Key: "buy_10", Family: FamilyPlace, EngineVerb: "buy", Number: 10, RequiresNumber: NumberRule{Required: true, Allowed: []int{4, 10}}},

		{Key: "lay_4", Family: FamilyLay, EngineVerb: "lay", Number: 4, RequiresNumber: required},
		{Key: "lay_5", Family: FamilyLay, EngineVerb: "lay", Number: 5, RequiresNumber: required},
		{Key: "lay_6", Family: FamilyLay, EngineVerb: "lay", Number: 6, RequiresNumber: required},
		{Key: "lay_8", Family: FamilyLay, EngineVerb: "lay", Number: 8, RequiresNumber: required},
		{Key: "lay_9", Family: FamilyLay, EngineVerb: "lay", Number: 9, RequiresNumber: required},
		{Key: "lay_10", Family: FamilyLay, EngineVerb: "lay", Number: 10, RequiresNumber: required},

		{Key: "hardway_4", Family: FamilyHardway, EngineVerb: "hardway", Number: 4, RequiresNumber: required},
		{Key: "hardway_6", Family: FamilyHardway, EngineVerb: "hardway", Number: 6, RequiresNumber: required},
		{Key: "hardway_8", Family: FamilyHardway, EngineVerb: "hardway", Number: 8, RequiresNumber: required},
		{Key: "hardway_10", Family: FamilyHardway, EngineVerb: "hardway", Number: 10, RequiresNumber: required},

		{Key: "odds_pass_line", Family: FamilyOdds, EngineVerb: "odds", RequiresNumber: required, DynamicPoint: true},
		{Key: "odds_dont_pass", Family: FamilyOdds, EngineVerb: "odds", RequiresNumber: required, DynamicPoint: true},
		{Key: "odds_come", Family: FamilyOdds, EngineVerb: "odds", RequiresNumber: required, DynamicPoint: true},
		{Key: "odds_dont_come", Family: FamilyOdds, EngineVerb: "odds", RequiresNumber: required, DynamicPoint: true},

		{Key: "any_seven", Family: FamilyProp, EngineVerb: "any_seven"},
		{Key: "any_craps", Family: FamilyProp, EngineVerb: "any_craps"},
	}
	catalog, err := NewCatalog(entries)
	if err != nil {
		// compiled-in data; a failure here is a programming error
		panic(err)
	}
	return catalog
}
