package models

import (
	"github.com/sdsc-ordes/catplus-converters/graph"
	"github.com/sdsc-ordes/catplus-converters/rdf"
	"github.com/sdsc-ordes/catplus-converters/vocab"
)

// BravoBatch is an Agilent Bravo run. Unlike a Synth batch it emits no node
// of its own: every action becomes a root of the graph.
type BravoBatch struct {
	Actions []BravoAction `json:"Actions,omitempty"`
}

// InsertInto ignores subject and inserts each action under its own node.
func (bt *BravoBatch) InsertInto(b *graph.Builder, _ rdf.Term) error {
	for i := range bt.Actions {
		action := &bt.Actions[i]
		if err := action.InsertInto(b, b.NodeFor(action)); err != nil {
			return err
		}
	}
	return nil
}

type BravoAction struct {
	ActionName             ActionName   `json:"actionName"`
	StartTime              string       `json:"startTime"`
	EndingTime             string       `json:"endingTime"`
	MethodName             *string      `json:"methodName,omitempty"`
	EquipmentName          string       `json:"equipmentName"`
	SubEquipmentName       *string      `json:"subEquipmentName,omitempty"`
	SpeedShaker            *Observation `json:"speedShaker,omitempty"`
	AtWell                 *BravoWell   `json:"atWell,omitempty"`
	DispenseState          *string      `json:"dispenseState,omitempty"`
	DispenseType           *string      `json:"dispenseType,omitempty"`
	HasSample              *BravoSample `json:"hasSample,omitempty"`
	Temperature            *Observation `json:"temperature,omitempty"`
	VolumeEvaporationFinal *Observation `json:"volumeEvaporationFinal,omitempty"`
	HasSolvent             *Solvent     `json:"hasSolvent,omitempty"`
	SPMEProcess            *bool        `json:"SPMEprocess,omitempty"`
	HasCartridge           *Cartridge   `json:"hasCartridge,omitempty"`
	StartDuration          *Observation `json:"startDuration,omitempty"`
	EndingDuration         *Observation `json:"endingDuration,omitempty"`
	Order                  *string      `json:"order,omitempty"`
}

func (a *BravoAction) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, a.ActionName),
		graph.Field(vocab.AFX0000622, graph.DateTime(a.StartTime)),
		graph.Field(vocab.AFR0002423, graph.DateTime(a.EndingTime)),
		graph.Field(vocab.AFR0001606, graph.OptionalLiteral(a.MethodName)),
		graph.Field(vocab.AFR0001723, graph.Literal(a.EquipmentName)),
		graph.Field(vocab.CatStartDuration, graph.Optional(a.StartDuration)),
		graph.Field(vocab.CatEndingDuration, graph.Optional(a.EndingDuration)),
		graph.Field(vocab.CatSubEquipmentName, graph.OptionalLiteral(a.SubEquipmentName)),
		graph.Field(vocab.CatIsSpmeProcess, graph.OptionalBoolean(a.SPMEProcess)),
		graph.Field(vocab.CatSpeedInRPM, graph.Optional(a.SpeedShaker)),
		graph.Field(vocab.CatVolumeEvaporationFinal, graph.Optional(a.VolumeEvaporationFinal)),
		graph.Field(vocab.AFX0000060, graph.Optional(a.Temperature)),
		graph.Field(vocab.CatHasSample, graph.Optional(a.HasSample)),
		graph.Field(vocab.CatHasSolvent, graph.Optional(a.HasSolvent)),
		graph.Field(vocab.CatHasWell, graph.Optional(a.AtWell)),
		graph.Field(vocab.CatHasCartridge, graph.Optional(a.HasCartridge)),
		graph.Field(vocab.CatOrder, graph.OptionalLiteral(a.Order)),
		graph.Field(vocab.AFQ0000111, graph.OptionalLiteral(a.DispenseState)),
		graph.Field(vocab.CatDispenseType, graph.OptionalLiteral(a.DispenseType)),
	)
}

// BravoWell is a well that also names the product expected in it.
type BravoWell struct {
	Plate
	Position              string                 `json:"position"`
	ProductIdentification *ProductIdentification `json:"productIdentification,omitempty"`
}

func (w *BravoWell) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(vocab.CatWell)),
		graph.Field(vocab.CatHasPlate, &w.Plate),
		graph.Field(vocab.AFR0002240, graph.Literal(w.Position)),
		graph.Field(vocab.CatHasProduct, graph.Optional(w.ProductIdentification)),
	)
}

// ProductIdentification ties a well to the sample and chromatography peak
// that identify its product.
type ProductIdentification struct {
	SampleID       string `json:"sampleID"`
	PeakIdentifier string `json:"peakIdentifier"`
}

func (p *ProductIdentification) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(vocab.CatProduct)),
		graph.Field(vocab.PurlIdentifier, graph.Literal(p.SampleID)),
		graph.Field(vocab.AFR0001164, graph.Literal(p.PeakIdentifier)),
	)
}

// BravoSample is a sample identified by the well it sits in. The well
// fields sit at the top level of the JSON object.
type BravoSample struct {
	Well
}

func (s *BravoSample) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(vocab.CatSample)),
		graph.Field(vocab.CatHasWell, &s.Well),
	)
}
