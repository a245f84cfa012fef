package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdsc-ordes/catplus-converters/graph"
	"github.com/sdsc-ordes/catplus-converters/rdf"
	"github.com/sdsc-ordes/catplus-converters/vocab"
)

func TestAgilentFixture(t *testing.T) {
	doc := loadFixture[LiquidChromatographyAggregateDocumentWrapper](t, "agilent")
	runs := doc.LiquidChromatographyAggregateDocument.LiquidChromatographyDocument
	require.Len(t, runs, 1)
	require.NotEmpty(t, runs[0].MeasurementAggregateDocument.MeasurementDocument)
	requireIsomorphic(t, build(t, graph.StrategyBlankNode, doc), "agilent")
}

func TestAgilentMergesMeasurementAggregate(t *testing.T) {
	doc := loadFixture[LiquidChromatographyAggregateDocumentWrapper](t, "agilent")
	b := build(t, graph.StrategyBlankNode, doc)
	s := b.Graph()

	runs := subjectsOfType(s, vocab.AFR0002525)
	require.Len(t, runs, 1)
	measurements := objects(s, runs[0], vocab.AFR0002374)
	assert.Len(t, measurements, len(doc.LiquidChromatographyAggregateDocument.LiquidChromatographyDocument[0].MeasurementAggregateDocument.MeasurementDocument))
	for _, m := range measurements {
		assert.Equal(t, []rdf.Term{rdf.NewIRI(vocab.AFR0002375)}, objects(s, m, vocab.RDFType))
	}
}

func TestDeviceSystemDocumentKeys(t *testing.T) {
	for _, key := range []string{"device document", "device control document"} {
		t.Run(key, func(t *testing.T) {
			data := `{"` + key + `": [{"device identifier": "", "device type": "Pump", "product manufacturer": "Agilent", "equipment serial number": "DEAE", "model number": "G7120A", "firmware version": "B.07.38"}], "asset management identifier": "LC-1"}`
			var d DeviceSystemDocument
			require.NoError(t, json.Unmarshal([]byte(data), &d))
			require.Len(t, d.DeviceDocument, 1)
			assert.Equal(t, "Pump", d.DeviceDocument[0].DeviceType)
			require.NotNil(t, d.AssetManagementIdentifier)
			assert.Equal(t, "LC-1", *d.AssetManagementIdentifier)

			b := build(t, graph.StrategyBlankNode, &d)
			root := subjectsOfType(b.Graph(), vocab.CatDeviceSystemDocument)
			require.Len(t, root, 1)
			assert.Len(t, objects(b.Graph(), root[0], vocab.AFR0002722), 1)
		})
	}
}

func TestDataCubeLabelIsOptional(t *testing.T) {
	cube := &UltravioletSpectrumDataCube{}
	b := build(t, graph.StrategyBlankNode, cube)
	s := b.Graph()
	require.Len(t, subjectsOfType(s, vocab.CatUVSpectrumDataCube), 1)
	assert.Empty(t, s.Match(nil, vocab.IAO0000009, nil))
}
