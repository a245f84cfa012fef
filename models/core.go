package models

import (
	"github.com/sdsc-ordes/catplus-converters/graph"
	"github.com/sdsc-ordes/catplus-converters/rdf"
	"github.com/sdsc-ordes/catplus-converters/vocab"
)

// Plate is a labware container.
type Plate struct {
	ContainerID      string  `json:"containerID"`
	ContainerBarcode *string `json:"containerBarcode,omitempty"`
}

func (p *Plate) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(vocab.CatPlate)),
		graph.Field(vocab.CatContainerID, graph.Literal(p.ContainerID)),
		graph.Field(vocab.CatContainerBarcode, graph.OptionalLiteral(p.ContainerBarcode)),
	)
}

// Observation is a measured or expected quantity with an optional error
// margin.
type Observation struct {
	Value       float64      `json:"value"`
	Unit        Unit         `json:"unit"`
	ErrorMargin *ErrorMargin `json:"errorMargin,omitempty"`
}

func (o *Observation) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(vocab.CatObservation)),
		graph.Field(vocab.QUDTUnit, o.Unit),
		graph.Field(vocab.QUDTValue, graph.Double(o.Value)),
		graph.Field(vocab.CatErrorMargin, graph.Optional(o.ErrorMargin)),
	)
}

type ErrorMargin struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

func (e *ErrorMargin) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(vocab.CatErrorMargin)),
		graph.Field(vocab.QUDTUnit, e.Unit),
		graph.Field(vocab.QUDTValue, graph.Double(e.Value)),
	)
}

// Measurement is a bare value and unit, used by chromatography peaks.
type Measurement struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

func (m *Measurement) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(vocab.CatMeasurement)),
		graph.Field(vocab.QUDTUnit, m.Unit),
		graph.Field(vocab.QUDTValue, graph.Double(m.Value)),
	)
}

// Sample is a vial on a plate holding one or more sample items. The plate
// fields sit at the top level of the JSON object.
type Sample struct {
	Plate
	VialID        *string      `json:"vialID,omitempty"`
	VialType      *string      `json:"vialType,omitempty"`
	Role          *string      `json:"role,omitempty"`
	ExpectedDatum *Observation `json:"expectedDatum,omitempty"`
	HasSample     []SampleItem `json:"hasSample,omitempty"`
}

func (s *Sample) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(vocab.CatSample)),
		graph.Field(vocab.CatHasPlate, &s.Plate),
		graph.Field(vocab.CatRole, graph.OptionalLiteral(s.Role)),
		graph.Field(vocab.CatVialShape, graph.OptionalLiteral(s.VialType)),
		graph.Field(vocab.AFR0002464, graph.OptionalLiteral(s.VialID)),
		graph.Field(vocab.CatExpectedDatum, graph.Optional(s.ExpectedDatum)),
		graph.Field(vocab.CatHasSample, graph.Each(s.HasSample)),
	)
}

// SampleItem is one substance inside a sample vial.
type SampleItem struct {
	SampleID         string       `json:"sampleID"`
	Role             string       `json:"role"`
	InternalBarCode  string       `json:"internalBarCode"`
	ExpectedDatum    *Observation `json:"expectedDatum,omitempty"`
	MeasuredQuantity *Observation `json:"measuredQuantity,omitempty"`
	Concentration    *Observation `json:"concentration,omitempty"`
	PhysicalState    string       `json:"physicalState"`
	HasChemical      Chemical     `json:"hasChemical"`
}

func (s *SampleItem) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(vocab.CatSample)),
		graph.Field(vocab.PurlIdentifier, graph.Literal(s.SampleID)),
		graph.Field(vocab.CatRole, graph.Literal(s.Role)),
		graph.Field(vocab.CatInternalBarCode, graph.Literal(s.InternalBarCode)),
		graph.Field(vocab.AFQ0000111, graph.Literal(s.PhysicalState)),
		graph.Field(vocab.CatExpectedDatum, graph.Optional(s.ExpectedDatum)),
		graph.Field(vocab.CatMeasuredQuantity, graph.Optional(s.MeasuredQuantity)),
		graph.Field(vocab.AFR0002036, graph.Optional(s.Concentration)),
		graph.Field(vocab.CatHasChemical, &s.HasChemical),
	)
}

// Chemical is a molecular entity, typed obo:CHEBI_25367.
type Chemical struct {
	ChemicalID       string       `json:"chemicalID"`
	ChemicalName     string       `json:"chemicalName"`
	CASNumber        *string      `json:"CASNumber,omitempty"`
	MolecularMass    Observation  `json:"molecularMass"`
	Smiles           string       `json:"smiles"`
	SwissCatNumber   *string      `json:"swissCatNumber,omitempty"`
	Inchi            string       `json:"Inchi"`
	Keywords         *string      `json:"keywords,omitempty"`
	MolecularFormula string       `json:"molecularFormula"`
	Density          *Observation `json:"density,omitempty"`
}

func (c *Chemical) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(vocab.CHEBI25367)),
		graph.Field(vocab.PurlIdentifier, graph.Literal(c.ChemicalID)),
		graph.Field(vocab.AFR0002292, graph.Literal(c.ChemicalName)),
		graph.Field(vocab.AFR0001952, graph.Literal(c.MolecularFormula)),
		graph.Field(vocab.AFR0002295, graph.Literal(c.Smiles)),
		graph.Field(vocab.AFR0002294, &c.MolecularMass),
		graph.Field(vocab.AFR0002296, graph.Literal(c.Inchi)),
		graph.Field(vocab.CatCasNumber, graph.OptionalLiteral(c.CASNumber)),
		graph.Field(vocab.CatSwissCatNumber, graph.OptionalLiteral(c.SwissCatNumber)),
		graph.Field(vocab.SchemaKeywords, graph.OptionalLiteral(c.Keywords)),
		graph.Field(vocab.PATO0001019, graph.Optional(c.Density)),
	)
}

// Well is a position on a plate.
type Well struct {
	Plate
	Position string       `json:"position"`
	Quantity *Observation `json:"quantity,omitempty"`
}

func (w *Well) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(vocab.CatWell)),
		graph.Field(vocab.CatHasPlate, &w.Plate),
		graph.Field(vocab.AFR0002240, graph.Literal(w.Position)),
		graph.Field(vocab.QUDTQuantity, graph.Optional(w.Quantity)),
	)
}

type Cartridge struct {
	CartridgeName        string `json:"cartridgeName"`
	CartridgeComposition string `json:"cartridgeComposition"`
}

func (c *Cartridge) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(vocab.CatCartridge)),
		graph.Field(vocab.CatCartridgeName, graph.Literal(c.CartridgeName)),
		graph.Field(vocab.CatCartridgeComposition, graph.Literal(c.CartridgeComposition)),
	)
}

type Solvent struct {
	HasChemical Chemical    `json:"hasChemical"`
	Volume      Observation `json:"volume"`
}

func (s *Solvent) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(vocab.CatSolvent)),
		graph.Field(vocab.CatHasChemical, &s.HasChemical),
		graph.Field(vocab.CatVolume, &s.Volume),
	)
}

// PeakList holds the peaks found in one chromatogram. Each peak hangs off
// the list through cat:Peak.
type PeakList struct {
	Peak []Peak `json:"peak"`
}

func (p *PeakList) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(vocab.CatPeakList)),
		graph.Field(vocab.CatPeak, graph.Each(p.Peak)),
	)
}

// Peak is one chromatographic peak. Index is the position in the source
// document and is not projected.
type Peak struct {
	Index              int64       `json:"@index"`
	PeakIdentifier     string      `json:"peakIdentifier"`
	PeakArea           Measurement `json:"peak area"`
	RetentionTime      Measurement `json:"retention time"`
	PeakStart          Measurement `json:"peak start"`
	PeakEnd            Measurement `json:"peak end"`
	PeakHeight         Measurement `json:"peak height"`
	RelativePeakArea   Measurement `json:"relative peak area"`
	RelativePeakHeight Measurement `json:"relative peak height"`
	PeakValueAtStart   Measurement `json:"peak value at start"`
	PeakValueAtEnd     Measurement `json:"peak value at end"`
}

func (p *Peak) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(vocab.AFR0000413)),
		graph.Field(vocab.AFR0001164, graph.Literal(p.PeakIdentifier)),
		graph.Field(vocab.AFR0001073, &p.PeakArea),
		graph.Field(vocab.AFR0001089, &p.RetentionTime),
		graph.Field(vocab.AFR0001178, &p.PeakStart),
		graph.Field(vocab.AFR0001180, &p.PeakEnd),
		graph.Field(vocab.AFR0000948, &p.PeakHeight),
		graph.Field(vocab.AFR0001165, &p.RelativePeakArea),
		graph.Field(vocab.AFR0000949, &p.RelativePeakHeight),
		graph.Field(vocab.AFR0001179, &p.PeakValueAtStart),
		graph.Field(vocab.AFR0001181, &p.PeakValueAtEnd),
	)
}
