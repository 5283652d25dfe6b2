package craps

import (
	"fmt"
	"math"
)

// ArgType is the primitive type a verb argument must carry.
type ArgType string

const (
	ArgNumber  ArgType = "number"
	ArgInteger ArgType = "integer"
	ArgString  ArgType = "string"
	ArgBoolean ArgType = "boolean"
	ArgObject  ArgType = "object"
)

// Constraint narrows the values an argument may take. Allowed is a membership
// set; Min/Max are numeric bounds. Nil pointer = unbounded.
type Constraint struct {
	Allowed []any
	Min     *float64
	Max     *float64
}

// ArgsSchema declares a verb's argument surface.
type ArgsSchema struct {
	Required    []string
	Optional    []string
	Types       map[string]ArgType
	Constraints map[string]Constraint
}

// names returns the union of required and optional argument names.
func (s ArgsSchema) names() []string {
	return append(append([]string{}, s.Required...), s.Optional...)
}

// VerbEntry is one immutable remote-API verb definition, looked up by Verb.
type VerbEntry struct {
	Verb       string
	Family     BetFamily
	EngineVerb string
	Args       ArgsSchema
}

// Registry is an immutable keyed table of verb definitions. Built once at
// process start; ValidateAction is a pure check with no I/O.
type Registry struct {
	entries map[string]VerbEntry
}

// NewRegistry validates and indexes a list of verb entries. Duplicate verbs
// and untyped declared arguments are construction errors.
func NewRegistry(entries []VerbEntry) (*Registry, error) {
	indexed := make(map[string]VerbEntry, len(entries))
	for i, e := range entries {
		ctx := fmt.Sprintf("verb_registry[%d]", i)
		if e.Verb == "" || e.EngineVerb == "" {
			return nil, fmt.Errorf("%s: verb and engine verb must be non-empty", ctx)
		}
		if !allowedFamilies[e.Family] {
			return nil, fmt.Errorf("%s: unknown family %q", ctx, e.Family)
		}
		if _, dup := indexed[e.Verb]; dup {
			return nil, fmt.Errorf("%s: duplicate verb %q", ctx, e.Verb)
		}
		for _, name := range e.Args.names() {
			if _, ok := e.Args.Types[name]; !ok {
				return nil, fmt.Errorf("%s: missing type for argument %q", ctx, name)
			}
		}
		indexed[e.Verb] = e
	}
	return &Registry{entries: indexed}, nil
}

// Lookup returns the entry for verb, or false when the verb is unknown.
func (r *Registry) Lookup(verb string) (VerbEntry, bool) {
	e, ok := r.entries[verb]
	return e, ok
}

// ValidateAction checks args against the verb's schema: every required name
// present, every declared name type-matched and within its constraints.
// Argument names outside the schema are ignored, not rejected. An unknown verb
// is fatal to the action.
func (r *Registry) ValidateAction(verb string, args map[string]any) error {
	entry, ok := r.entries[verb]
	if !ok {
		return registryErrorf(verb, "unknown verb")
	}
	schema := entry.Args
	for _, name := range schema.Required {
		if _, present := args[name]; !present {
			return registryErrorf(verb, "missing required arg %q", name)
		}
	}
	declared := make(map[string]bool, len(schema.Required)+len(schema.Optional))
	for _, name := range schema.names() {
		declared[name] = true
	}
	for name, value := range args {
		if !declared[name] {
			continue
		}
		if expected, ok := schema.Types[name]; ok && !typeMatches(expected, value) {
			return registryErrorf(verb, "arg %q must be type %s", name, expected)
		}
		if err := checkConstraint(verb, name, value, schema.Constraints); err != nil {
			return err
		}
	}
	return nil
}

func typeMatches(expected ArgType, value any) bool {
	switch expected {
	case ArgNumber:
		_, ok := asFloat(value)
		return ok
	case ArgInteger:
		switch n := value.(type) {
		case int, int64:
			return true
		case float64:
			return n == math.Trunc(n)
		default:
			return false
		}
	case ArgString:
		_, ok := value.(string)
		return ok
	case ArgBoolean:
		_, ok := value.(bool)
		return ok
	case ArgObject:
		_, ok := value.(map[string]any)
		return ok
	default:
		return true
	}
}

func checkConstraint(verb, name string, value any, constraints map[string]Constraint) error {
	rules, ok := constraints[name]
	if !ok {
		return nil
	}
	if len(rules.Allowed) > 0 && !memberOf(value, rules.Allowed) {
		return registryErrorf(verb, "arg %q must be one of %v", name, rules.Allowed)
	}
	if rules.Min != nil || rules.Max != nil {
		n, ok := asFloat(value)
		if !ok {
			return registryErrorf(verb, "arg %q must be numeric", name)
		}
		if rules.Min != nil && n < *rules.Min {
			return registryErrorf(verb, "arg %q must be >= %v", name, *rules.Min)
		}
		if rules.Max != nil && n > *rules.Max {
			return registryErrorf(verb, "arg %q must be <= %v", name, *rules.Max)
		}
	}
	return nil
}

// memberOf compares numerically when both sides are numeric, by equality otherwise.
func memberOf(value any, allowed []any) bool {
	vn, vIsNum := asFloat(value)
	for _, a := range allowed {
		if an, ok := asFloat(a); ok && vIsNum {
			if vn == an {
				return true
			}
			continue
		}
		if value == a {
			return true
		}
	}
	return false
}

func floatPtr(v float64) *float64 { return &v }

// DefaultRegistry returns the compiled-in verb surface matching DefaultCatalog's
// engine verbs.
func DefaultRegistry() *Registry {
	amountOnly := ArgsSchema{
		Required:    []string{"amount"},
		Types:       map[string]ArgType{"amount": ArgNumber},
		Constraints: map[string]Constraint{"amount": {Min: floatPtr(1)}},
	}
	numbered := func(allowed ...any) ArgsSchema {
		return ArgsSchema{
			Required: []string{"amount", "number"},
			Types:    map[string]ArgType{"amount": ArgNumber, "number": ArgInteger},
			Constraints: map[string]Constraint{
				"amount": {Min: floatPtr(1)},
				"number": {Allowed: allowed},
			},
		}
	}
	entries := []VerbEntry{
		{Verb: "pass_line", Family: FamilyLine, EngineVerb: "pass_line", Args: amountOnly},
		{Verb: "dont_pass", Family: FamilyLine, EngineVerb: "dont_pass", Args: amountOnly},
		{Verb: "come", Family: FamilyLine, EngineVerb: "come", Args: amountOnly},
		{Verb: "dont_come", Family: FamilyLine, EngineVerb: "dont_come", Args: amountOnly},
		{Verb: "field", Family: FamilyField, EngineVerb: "field", Args: amountOnly},
		{Verb: "place", Family: FamilyPlace, EngineVerb: "place", Args: numbered(4, 5, 6, 8, 9, 10)},
		{Verb: "buy", Family: FamilyPlace, EngineVerb: "buy", Args: numbered(4, 10)},
		{Verb: "lay", Family: FamilyLay, EngineVerb: "lay", Args: numbered(4, 5, 6, 8, 9, 10)},
		{Verb: "hardway", Family: FamilyHardway, EngineVerb: "hardway", Args: numbered(4, 6, 8, 10)},
		{Verb: "odds", Family: FamilyOdds, EngineVerb: "odds", Args: ArgsSchema{
			Required: []string{"amount", "base"},
			Optional: []string{"number", "working"},
			Types: map[string]ArgType{
				"amount":  ArgNumber,
				"base":    ArgString,
				"number":  ArgInteger,
				"working": ArgBoolean,
			},
			Constraints: map[string]Constraint{
				"amount": {Min: floatPtr(1)},
				"base":   {Allowed: []any{"pass_line", "dont_pass", "come", "dont_come"}},
				"number": {Allowed: []any{4, 5, 6, 8, 9, 10}},
			},
		}},
		{Verb: "any_seven", Family: FamilyProp, EngineVerb: "any_seven", Args: amountOnly},
		{Verb: "any_craps", Family: FamilyProp, EngineVerb: "any_craps", Args: amountOnly},
	}
	registry, err := NewRegistry(entries)
	if err != nil {
		panic(err)
	}
	return registry
}
