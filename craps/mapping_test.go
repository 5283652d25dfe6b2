package craps

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultMappingDeps() (*Catalog, *Registry, Table) {
	return DefaultCatalog(), DefaultRegistry(), DefaultTable()
}

func TestMapBetToAction_PassLine_VerbAndAmount(t *testing.T) {
	catalog, registry, table := defaultMappingDeps()

	action, err := MapBetToAction(BetSpec{Key: "pass_line", BaseAmount: 10, UnitType: UnitDollars}, table, catalog, registry)

	require.NoError(t, err)
	assert.Equal(t, "pass_line", action.Verb)
	assert.Equal(t, 10.0, action.Args["amount"])
	_, hasNumber := action.Args["number"]
	assert.False(t, hasNumber, "line bets carry no number")
}

func TestMapBetToAction_PlaceSix_UnitConversionAndIncrement(t *testing.T) {
	catalog, registry, table := defaultMappingDeps()

	// 1 unit = $5, but place 6 moves in $6 increments
	action, err := MapBetToAction(BetSpec{Key: "place_6", BaseAmount: 1, UnitType: UnitUnits}, table, catalog, registry)

	require.NoError(t, err)
	assert.Equal(t, "place", action.Verb)
	assert.Equal(t, 6.0, action.Args["amount"])
	assert.Equal(t, 6, action.Args["number"])
}

func TestMapBetToAction_ExplicitNumberWinsOverCatalogDefault(t *testing.T) {
	catalog, registry, table := defaultMappingDeps()

	action, err := MapBetToAction(BetSpec{Key: "place_6", BaseAmount: 12, UnitType: UnitDollars, Number: intPtr(8)}, table, catalog, registry)

	require.NoError(t, err)
	assert.Equal(t, 8, action.Args["number"])
}

func TestMapBetToAction_HardwayRejectsSoftNumber(t *testing.T) {
	catalog, registry, table := defaultMappingDeps()

	_, err := MapBetToAction(BetSpec{Key: "hardway_6", BaseAmount: 5, UnitType: UnitDollars, Number: intPtr(5)}, table, catalog, registry)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a valid number")
}

func TestMapBetToAction_UnknownKey_DistinguishedError(t *testing.T) {
	catalog, registry, table := defaultMappingDeps()

	_, err := MapBetToAction(BetSpec{Key: "martingale_magic", BaseAmount: 5, UnitType: UnitDollars}, table, catalog, registry)

	var unknown *UnknownBetError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "martingale_magic", unknown.Key)
}

func TestMapBetToAction_OddsCarriesBaseNumberAndWorking(t *testing.T) {
	catalog, registry, table := defaultMappingDeps()

	action, err := MapBetToAction(BetSpec{
		Key:        "odds_pass_line",
		BaseAmount: 25,
		UnitType:   UnitDollars,
		Number:     intPtr(6),
		Working:    boolPtr(true),
	}, table, catalog, registry)

	require.NoError(t, err)
	assert.Equal(t, "odds", action.Verb)
	assert.Equal(t, "pass_line", action.Args["base"])
	assert.Equal(t, 6, action.Args["number"])
	assert.Equal(t, true, action.Args["working"])
	assert.Equal(t, 25.0, action.Args["amount"])
}

func TestMapBetToAction_OddsWithoutNumberFails(t *testing.T) {
	catalog, registry, table := defaultMappingDeps()

	_, err := MapBetToAction(BetSpec{Key: "odds_come", BaseAmount: 10, UnitType: UnitDollars}, table, catalog, registry)

	require.Error(t, err)
	var unknown *UnknownBetError
	assert.False(t, errors.As(err, &unknown), "validation failures are ordinary errors")
}

func TestMapBetToAction_NonPositiveAmountFails(t *testing.T) {
	catalog, registry, table := defaultMappingDeps()

	_, err := MapBetToAction(BetSpec{Key: "pass_line", BaseAmount: 0, UnitType: UnitDollars}, table, catalog, registry)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive base_amount")
}

func TestMapBetToAction_BadUnitTypeFails(t *testing.T) {
	catalog, registry, table := defaultMappingDeps()

	_, err := MapBetToAction(BetSpec{Key: "pass_line", BaseAmount: 5, UnitType: "chips"}, table, catalog, registry)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unit_type")
}

func TestMapBetToAction_AllCatalogDefaults_AmountPositive(t *testing.T) {
	catalog, registry, table := defaultMappingDeps()

	for _, key := range catalog.Keys() {
		entry, _ := catalog.Lookup(key)
		bet := BetSpec{Key: key, BaseAmount: 5, UnitType: UnitUnits}
		if entry.Family == FamilyOdds {
			bet.Number = intPtr(6)
		}
		action, err := MapBetToAction(bet, table, catalog, registry)
		require.NoError(t, err, "key %s", key)
		assert.Equal(t, entry.EngineVerb, action.Verb, "key %s", key)
		amount, ok := asFloat(action.Args["amount"])
		require.True(t, ok, "key %s", key)
		assert.Greater(t, amount, 0.0, "key %s", key)
		_, hasNumber := action.Args["number"]
		assert.Equal(t, entry.RequiresNumber.Required, hasNumber, "key %s", key)
	}
}
