package models

import (
	"encoding/json"

	"github.com/sdsc-ordes/catplus-converters/graph"
	"github.com/sdsc-ordes/catplus-converters/rdf"
	"github.com/sdsc-ordes/catplus-converters/vocab"
)

// LiquidChromatographyAggregateDocumentWrapper is the top-level Agilent
// ASM document. The wrapper is not projected.
type LiquidChromatographyAggregateDocumentWrapper struct {
	LiquidChromatographyAggregateDocument LiquidChromatographyAggregateDocument `json:"liquid chromatography aggregate document"`
}

func (w *LiquidChromatographyAggregateDocumentWrapper) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return w.LiquidChromatographyAggregateDocument.InsertInto(b, subject)
}

type LiquidChromatographyAggregateDocument struct {
	LiquidChromatographyDocument []LiquidChromatographyDocument `json:"liquid chromatography document,omitempty"`
	DeviceSystemDocument         *DeviceSystemDocument          `json:"device system document,omitempty"`
}

func (d *LiquidChromatographyAggregateDocument) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(vocab.AFR0002524)),
		graph.Field(vocab.CatHasLiquidChromatography, graph.Each(d.LiquidChromatographyDocument)),
		graph.Field(vocab.AFR0002526, graph.Optional(d.DeviceSystemDocument)),
	)
}

// LiquidChromatographyDocument is one chromatography run.
type LiquidChromatographyDocument struct {
	Analyst                      string                       `json:"analyst"`
	MeasurementAggregateDocument MeasurementAggregateDocument `json:"measurement aggregate document"`
}

// InsertInto merges the measurement aggregate document into the run's own
// node: the ontology has no class for the aggregate.
func (d *LiquidChromatographyDocument) InsertInto(b *graph.Builder, subject rdf.Term) error {
	err := graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(vocab.AFR0002525)),
		graph.Field(vocab.AFR0001116, graph.Literal(d.Analyst)),
	)
	if err != nil {
		return err
	}
	return d.MeasurementAggregateDocument.InsertInto(b, subject)
}

type MeasurementAggregateDocument struct {
	MeasurementDocument []MeasurementDocument `json:"measurement document"`
}

func (d *MeasurementAggregateDocument) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.AFR0002374, graph.Each(d.MeasurementDocument)),
	)
}

// MeasurementDocument describes one detector channel of a run. The
// chromatography column document is not projected.
type MeasurementDocument struct {
	MeasurementIdentifier          string                       `json:"measurement identifier"`
	DeviceControlAggregateDocument DeviceSystemDocument         `json:"device control aggregate document"`
	SampleDocument                 SampleDocument               `json:"sample document"`
	InjectionDocument              InjectionDocument            `json:"injection document"`
	DetectionType                  string                       `json:"detection type"`
	ChromatogramDataCube           *ChromatogramDataCube        `json:"chromatogram data cube,omitempty"`
	UltravioletSpectrumDataCube    *UltravioletSpectrumDataCube `json:"three-dimensional ultraviolet spectrum data cube,omitempty"`
	MassSpectrumDataCube           *MassSpectrumDataCube        `json:"three-dimensional mass spectrum data cube,omitempty"`
	ProcessedDataDocument          *ProcessedDataDocument       `json:"processed data document,omitempty"`
}

func (d *MeasurementDocument) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(vocab.AFR0002375)),
		graph.Field(vocab.AFR0001121, graph.Literal(d.MeasurementIdentifier)),
		graph.Field(vocab.AFR0002526, &d.DeviceControlAggregateDocument),
		graph.Field(vocab.AFR0002083, &d.SampleDocument),
		graph.Field(vocab.AFR0002529, &d.InjectionDocument),
		graph.Field(vocab.AFR0002534, graph.Literal(d.DetectionType)),
		graph.Field(vocab.AFR0002550, graph.Optional(d.ChromatogramDataCube)),
		graph.Field(vocab.AFR0002551, graph.Optional(d.UltravioletSpectrumDataCube)),
		graph.Field(vocab.AFR0002878, graph.Optional(d.MassSpectrumDataCube)),
		graph.Field(vocab.AFR0002659, graph.Optional(d.ProcessedDataDocument)),
	)
}

// DeviceSystemDocument lists the devices of an instrument. Device lists are
// read from either "device document" or "device control document".
type DeviceSystemDocument struct {
	DeviceDocument            []DeviceDocument `json:"device document"`
	AssetManagementIdentifier *string          `json:"asset management identifier,omitempty"`
}

func (d *DeviceSystemDocument) UnmarshalJSON(data []byte) error {
	var raw struct {
		DeviceDocument            []DeviceDocument `json:"device document"`
		DeviceControlDocument     []DeviceDocument `json:"device control document"`
		AssetManagementIdentifier *string          `json:"asset management identifier"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.DeviceDocument = raw.DeviceDocument
	if d.DeviceDocument == nil {
		d.DeviceDocument = raw.DeviceControlDocument
	}
	d.AssetManagementIdentifier = raw.AssetManagementIdentifier
	return nil
}

func (d *DeviceSystemDocument) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(vocab.CatDeviceSystemDocument)),
		graph.Field(vocab.AFR0002722, graph.Each(d.DeviceDocument)),
		graph.Field(vocab.AFR0001976, graph.OptionalLiteral(d.AssetManagementIdentifier)),
	)
}

// DeviceDocument describes one device. Index is not projected.
type DeviceDocument struct {
	DeviceIdentifier      string  `json:"device identifier"`
	DeviceType            string  `json:"device type"`
	ProductManufacturer   string  `json:"product manufacturer"`
	EquipmentSerialNumber string  `json:"equipment serial number"`
	ModelNumber           string  `json:"model number"`
	FirmwareVersion       string  `json:"firmware version"`
	DetectionType         *string `json:"detection type,omitempty"`
	Index                 *int64  `json:"@index,omitempty"`
}

func (d *DeviceDocument) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(vocab.AFR0002567)),
		graph.Field(vocab.AFR0002018, graph.Literal(d.DeviceIdentifier)),
		graph.Field(vocab.AFR0002568, graph.Literal(d.DeviceType)),
		graph.Field(vocab.AFR0001258, graph.Literal(d.ProductManufacturer)),
		graph.Field(vocab.AFR0001119, graph.Literal(d.EquipmentSerialNumber)),
		graph.Field(vocab.IAO0000017, graph.Literal(d.ModelNumber)),
		graph.Field(vocab.AFR0001259, graph.Literal(d.FirmwareVersion)),
		graph.Field(vocab.AFR0002534, graph.OptionalLiteral(d.DetectionType)),
	)
}

type ProcessedDataDocument struct {
	PeakList PeakList `json:"peak list"`
}

func (d *ProcessedDataDocument) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(vocab.CatProcessedDataDocument)),
		graph.Field(vocab.AFR0000432, &d.PeakList),
	)
}

type SampleDocument struct {
	SampleIdentifier string `json:"sample identifier"`
	WrittenName      string `json:"written name"`
}

func (d *SampleDocument) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(vocab.CatSampleDocument)),
		graph.Field(vocab.AFR0001118, graph.Literal(d.SampleIdentifier)),
		graph.Field(vocab.IAO0000590, graph.Literal(d.WrittenName)),
	)
}

type InjectionDocument struct {
	AutosamplerInjectionVolumeSetting AutosamplerInjectionVolumeSetting `json:"autosampler injection volume setting (chromatography)"`
	InjectionIdentifier               string                            `json:"injection identifier"`
	InjectionTime                     string                            `json:"injection time"`
}

func (d *InjectionDocument) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(vocab.CatInjectionDocument)),
		graph.Field(vocab.AFR0001267, &d.AutosamplerInjectionVolumeSetting),
		graph.Field(vocab.AFR0002535, graph.Literal(d.InjectionIdentifier)),
		graph.Field(vocab.AFR0002536, graph.DateTime(d.InjectionTime)),
	)
}

type AutosamplerInjectionVolumeSetting struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

func (s *AutosamplerInjectionVolumeSetting) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(vocab.CatInjectionVolumeSetting)),
		graph.Field(vocab.QUDTValue, graph.Double(s.Value)),
		graph.Field(vocab.QUDTUnit, s.Unit),
	)
}

// DataCube holds what the three cube kinds share. The numeric "data"
// section of a cube is not read.
type DataCube struct {
	Label         *string       `json:"label,omitempty"`
	CubeStructure CubeStructure `json:"cube-structure"`
	Identifier    *string       `json:"identifier,omitempty"`
}

func (c *DataCube) insert(b *graph.Builder, subject rdf.Term, class string) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(class)),
		graph.Field(vocab.IAO0000009, graph.OptionalLiteral(c.Label)),
		graph.Field(vocab.QBStructure, &c.CubeStructure),
		graph.Field(vocab.AFR0000917, graph.OptionalLiteral(c.Identifier)),
	)
}

type ChromatogramDataCube struct{ DataCube }

func (c *ChromatogramDataCube) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return c.insert(b, subject, vocab.CatChromatogramDataCube)
}

type UltravioletSpectrumDataCube struct{ DataCube }

func (c *UltravioletSpectrumDataCube) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return c.insert(b, subject, vocab.CatUVSpectrumDataCube)
}

type MassSpectrumDataCube struct{ DataCube }

func (c *MassSpectrumDataCube) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return c.insert(b, subject, vocab.CatMassSpectrumDataCube)
}

type CubeStructure struct {
	Measures   []Measure   `json:"measures"`
	Dimensions []Dimension `json:"dimensions"`
}

func (s *CubeStructure) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(vocab.CatCubeStructure)),
		graph.Field(vocab.CatMeasure, graph.Each(s.Measures)),
		graph.Field(vocab.CatDimensionProperty, graph.Each(s.Dimensions)),
	)
}

// Component is one axis of a data cube.
type Component struct {
	ComponentDataType string `json:"@componentDatatype"`
	Concept           string `json:"concept"`
	Unit              Unit   `json:"unit"`
}

func (c *Component) insert(b *graph.Builder, subject rdf.Term, class string) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(class)),
		graph.Field(vocab.DCComponentDataType, graph.Literal(c.ComponentDataType)),
		graph.Field(vocab.RDFSLabel, graph.Literal(c.Concept)),
		graph.Field(vocab.QUDTUnit, c.Unit),
	)
}

// Measure is a measured axis, typed with the Allotrope measure role.
type Measure struct{ Component }

func (m *Measure) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return m.insert(b, subject, vocab.AFRL0000157)
}

type Dimension struct{ Component }

func (d *Dimension) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return d.insert(b, subject, vocab.CatDimension)
}
