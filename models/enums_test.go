package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdsc-ordes/catplus-converters/vocab"
)

func TestParseUnit(t *testing.T) {
	for symbol, want := range map[string]string{
		"bar":        vocab.Unit + "Bar",
		"°C":         vocab.Unit + "DEG-C",
		"g/mL":       vocab.Unit + "GM-PER-MilliL",
		"mm^3":       vocab.Unit + "MilliM3",
		"Counts.s":   vocab.Unit + "NUM-PER-SEC",
		"UNITLESS":   vocab.Unit + "UNITLESS",
		"unitless":   vocab.Unit + "UNITLESS",
		"(unitless)": vocab.Unit + "UNITLESS",
		"mAU":        vocab.QUDTExt + "MilliAbsorbanceUnit",
		"mAU.s":      vocab.QUDTExt + "MilliAbsorbanceUnitTimesSecond",
	} {
		u, err := ParseUnit(symbol)
		require.NoError(t, err, symbol)
		assert.Equal(t, want, u.IRI(), symbol)
	}
}

func TestUnknownUnitSuggestsClosest(t *testing.T) {
	_, err := ParseUnit("mgg")
	var enumErr *EnumError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "unit", enumErr.Kind)
	assert.Equal(t, "mg", enumErr.Suggestion)
	assert.Contains(t, err.Error(), `did you mean "mg"?`)

	_, err = ParseUnit("xyzzyq")
	require.ErrorAs(t, err, &enumErr)
	assert.Empty(t, enumErr.Suggestion)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestUnitJSON(t *testing.T) {
	var obs Observation
	require.NoError(t, json.Unmarshal([]byte(`{"value": 25, "unit": "°C"}`), &obs))
	assert.Equal(t, UnitDegC, obs.Unit)
	assert.Equal(t, "°C", obs.Unit.String())

	out, err := json.Marshal(obs.Unit)
	require.NoError(t, err)
	assert.Equal(t, `"°C"`, string(out))

	err = json.Unmarshal([]byte(`{"value": 25, "unit": "bars"}`), &obs)
	var enumErr *EnumError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "bar", enumErr.Suggestion)

	err = json.Unmarshal([]byte(`{"value": 25, "unit": 7}`), &obs)
	assert.ErrorContains(t, err, "unit must be a string")

	_, err = json.Marshal(UnitUnknown)
	assert.ErrorIs(t, err, ErrMissingValue)
	assert.Equal(t, "Unit(0)", UnitUnknown.String())
	assert.Empty(t, UnitUnknown.IRI())
}

func TestActionNames(t *testing.T) {
	for name, class := range map[string]string{
		"AddAction":            vocab.CatAddAction,
		"setTemperatureAction": vocab.CatSetTemperatureAction,
		"filtrateAction":       vocab.CatFiltrateAction,
		"shakeAction":          vocab.CatShakeAction,
		"setVacuumAction":      vocab.CatSetVacuumAction,
		"setPressureAction":    vocab.CatSetPressureAction,
	} {
		a, err := ParseActionName(name)
		require.NoError(t, err)
		assert.Equal(t, class, a.IRI())
	}

	var action Action
	err := json.Unmarshal([]byte(`{"actionName": "filtrateActon"}`), &action)
	var enumErr *EnumError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "action name", enumErr.Kind)
	assert.Equal(t, "filtrateAction", enumErr.Suggestion)
}
