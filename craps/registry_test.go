package craps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAction_UnknownVerbIsFatal(t *testing.T) {
	registry := DefaultRegistry()

	err := registry.ValidateAction("teleport", map[string]any{"amount": 5.0})

	var regErr *RegistryError
	require.ErrorAs(t, err, &regErr)
	assert.Contains(t, regErr.Message, "unknown verb")
}

func TestValidateAction_MissingRequiredArg(t *testing.T) {
	registry := DefaultRegistry()

	err := registry.ValidateAction("place", map[string]any{"amount": 12.0})

	var regErr *RegistryError
	require.ErrorAs(t, err, &regErr)
	assert.Contains(t, regErr.Message, `missing required arg "number"`)
}

func TestValidateAction_TypeMismatch(t *testing.T) {
	registry := DefaultRegistry()

	err := registry.ValidateAction("pass_line", map[string]any{"amount": "ten"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be type number")
}

func TestValidateAction_IntegerAcceptsWholeFloat(t *testing.T) {
	registry := DefaultRegistry()

	assert.NoError(t, registry.ValidateAction("place", map[string]any{"amount": 12.0, "number": 8.0}))
	assert.Error(t, registry.ValidateAction("place", map[string]any{"amount": 12.0, "number": 8.5}))
}

func TestValidateAction_AllowedSetMembership(t *testing.T) {
	registry := DefaultRegistry()

	assert.NoError(t, registry.ValidateAction("hardway", map[string]any{"amount": 5.0, "number": 8}))

	err := registry.ValidateAction("hardway", map[string]any{"amount": 5.0, "number": 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}

func TestValidateAction_MinBound(t *testing.T) {
	registry := DefaultRegistry()

	err := registry.ValidateAction("pass_line", map[string]any{"amount": 0.5})

	require.Error(t, err)
	assert.Contains(t, err.Error(), ">= 1")
}

func TestValidateAction_ExtraArgsIgnored(t *testing.T) {
	registry := DefaultRegistry()

	err := registry.ValidateAction("pass_line", map[string]any{"amount": 5.0, "frobnicate": "yes"})

	assert.NoError(t, err)
}

func TestValidateAction_OddsBaseConstraint(t *testing.T) {
	registry := DefaultRegistry()

	assert.NoError(t, registry.ValidateAction("odds", map[string]any{"amount": 10.0, "base": "come"}))
	assert.Error(t, registry.ValidateAction("odds", map[string]any{"amount": 10.0, "base": "field"}))
}

func TestNewRegistry_RejectsDuplicateVerbs(t *testing.T) {
	entry := VerbEntry{Verb: "roll_hard", Family: FamilyProp, EngineVerb: "roll_hard", Args: ArgsSchema{
		Required: []string{"amount"},
		Types:    map[string]ArgType{"amount": ArgNumber},
	}}

	_, err := NewRegistry([]VerbEntry{entry, entry})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate verb")
}

func TestNewRegistry_RejectsUntypedDeclaredArg(t *testing.T) {
	_, err := NewRegistry([]VerbEntry{{
		Verb: "roll_hard", Family: FamilyProp, EngineVerb: "roll_hard",
		Args: ArgsSchema{Required: []string{"amount"}},
	}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing type")
}

func TestMaxConstraintEnforced(t *testing.T) {
	registry, err := NewRegistry([]VerbEntry{{
		Verb: "capped", Family: FamilyProp, EngineVerb: "capped",
		Args: ArgsSchema{
			Required:    []string{"amount"},
			Types:       map[string]ArgType{"amount": ArgNumber},
			Constraints: map[string]Constraint{"amount": {Max: floatPtr(100)}},
		},
	}})
	require.NoError(t, err)

	assert.NoError(t, registry.ValidateAction("capped", map[string]any{"amount": 100.0}))
	assert.Error(t, registry.ValidateAction("capped", map[string]any{"amount": 100.5}))
}
