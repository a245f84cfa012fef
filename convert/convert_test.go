package convert

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdsc-ordes/catplus-converters/graph"
	"github.com/sdsc-ordes/catplus-converters/internal/metrics"
	"github.com/sdsc-ordes/catplus-converters/models"
	"github.com/sdsc-ordes/catplus-converters/rdf"
)

func fixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "models", "testdata", name))
	require.NoError(t, err)
	return data
}

func requireSameGraph(t *testing.T, got []rdf.Triple, ttl string) {
	t.Helper()
	want, err := rdf.Decode(bytes.NewReader(fixture(t, ttl)), rdf.FormatTurtle)
	require.NoError(t, err)
	ok, err := rdf.Isomorphic(got, want)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestJSONToRDF(t *testing.T) {
	for _, tc := range []struct {
		input InputType
		name  string
	}{
		{InputSynth, "shake"},
		{InputSynth, "add_action"},
		{InputHCI, "campaign"},
		{InputAgilent, "agilent"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res, err := JSONToRDF(fixture(t, tc.name+".json"), tc.input, Options{})
			require.NoError(t, err)

			parsed, err := rdf.Decode(strings.NewReader(res.Output), rdf.FormatTurtle)
			require.NoError(t, err)
			requireSameGraph(t, parsed, tc.name+".ttl")
			assert.Equal(t, len(parsed), res.Graph.Len())
		})
	}
}

func TestJSONToRDFJSONLD(t *testing.T) {
	res, err := JSONToRDF(fixture(t, "set_vacuum.json"), InputSynth, Options{Format: rdf.FormatJSONLD})
	require.NoError(t, err)
	assert.Contains(t, res.Output, `"@context"`)

	parsed, err := rdf.Decode(strings.NewReader(res.Output), rdf.FormatJSONLD)
	require.NoError(t, err)
	requireSameGraph(t, parsed, "set_vacuum.ttl")
}

func TestJSONToRDFBravo(t *testing.T) {
	res, err := JSONToRDF(fixture(t, "bravo.json"), InputBravo, Options{})
	require.NoError(t, err)
	assert.Contains(t, res.Output, "cat:hasProduct")
	assert.NotContains(t, res.Output, "cat:Batch")
}

func TestMaterialize(t *testing.T) {
	const prefix = "https://data.catplus.example/node/"
	res, err := JSONToRDF(fixture(t, "filtrate.json"), InputSynth, Options{
		Materialize:       true,
		MaterializePrefix: prefix,
	})
	require.NoError(t, err)
	assert.Empty(t, res.Graph.BlankNodes())
	assert.NotContains(t, res.Output, "_:")
	for _, tr := range res.Graph.Triples() {
		iri, ok := tr.S.(rdf.IRI)
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(iri.Value, prefix), iri.Value)
	}
}

func TestURIStrategy(t *testing.T) {
	const base = "https://data.catplus.example/"
	res, err := JSONToRDF(fixture(t, "set_pressure.json"), InputSynth, Options{
		Strategy: graph.StrategyURI,
		URIBase:  base,
	})
	require.NoError(t, err)
	assert.Empty(t, res.Graph.BlankNodes())
	assert.Contains(t, res.Output, base)
}

func TestStageErrors(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		_, err := JSONToRDF([]byte(`{"Actions": [`), InputSynth, Options{})
		var stageErr *StageError
		require.ErrorAs(t, err, &stageErr)
		assert.Equal(t, StageParse, stageErr.Stage)
		assert.Contains(t, err.Error(), "convert synth: parse:")
	})

	t.Run("unknown unit", func(t *testing.T) {
		data := `{"Actions": [{"actionName": "setTemperatureAction", "startTime": "2024-07-25T12:00:00", "endingTime": "2024-07-25T12:01:00", "equipmentName": "Chemspeed SWING XL", "temperatureTumbleStirrer": {"value": 25, "unit": "degC"}}]}`
		_, err := JSONToRDF([]byte(data), InputSynth, Options{})
		var stageErr *StageError
		require.ErrorAs(t, err, &stageErr)
		assert.Equal(t, StageParse, stageErr.Stage)
		var enumErr *models.EnumError
		assert.ErrorAs(t, err, &enumErr)
	})

	t.Run("missing action name", func(t *testing.T) {
		data := `{"Actions": [{"startTime": "2024-07-25T12:00:00", "endingTime": "2024-07-25T12:01:00", "equipmentName": "Chemspeed SWING XL"}]}`
		_, err := JSONToRDF([]byte(data), InputSynth, Options{})
		var stageErr *StageError
		require.ErrorAs(t, err, &stageErr)
		assert.Equal(t, StageBuild, stageErr.Stage)
		assert.ErrorIs(t, err, models.ErrMissingValue)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := JSONToRDF(fixture(t, "filtrate.json"), InputSynth, Options{Format: "rdfxml"})
		var stageErr *StageError
		require.ErrorAs(t, err, &stageErr)
		assert.Equal(t, StageSerialize, stageErr.Stage)
		assert.ErrorIs(t, err, rdf.ErrUnsupportedFormat)
	})

	t.Run("unknown input type", func(t *testing.T) {
		_, err := JSONToRDF([]byte(`{}`), InputType("xml"), Options{})
		assert.ErrorIs(t, err, ErrUnknownInputType)
	})
}

func TestParseInputType(t *testing.T) {
	for _, name := range []string{"synth", "Synth", " HCI ", "bravo", "agilent"} {
		_, err := ParseInputType(name)
		assert.NoError(t, err, name)
	}
	_, err := ParseInputType("zarr")
	require.ErrorIs(t, err, ErrUnknownInputType)
	assert.Contains(t, err.Error(), "agilent, bravo, hci, synth")
	assert.Equal(t, []string{"agilent", "bravo", "hci", "synth"}, InputTypes())
}

func TestConvertRecordsMetrics(t *testing.T) {
	m := metrics.New()
	var out bytes.Buffer
	_, err := Convert(bytes.NewReader(fixture(t, "shake.json")), &out, InputSynth, Options{Metrics: m})
	require.NoError(t, err)
	assert.NotZero(t, out.Len())

	_, err = Convert(strings.NewReader("not json"), &out, InputSynth, Options{Metrics: m})
	require.Error(t, err)

	count, err := testutil.GatherAndCount(m.Registry(), "catplus_convert_conversions_total", "catplus_convert_errors_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestStageErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := error(&StageError{Stage: StageSerialize, Input: InputHCI, Err: inner})
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "convert hci: serialize: boom", err.Error())
}
