package models

import (
	"github.com/sdsc-ordes/catplus-converters/graph"
	"github.com/sdsc-ordes/catplus-converters/rdf"
	"github.com/sdsc-ordes/catplus-converters/vocab"
)

// Batch is a Chemspeed Synth batch: the metadata of one run and the actions
// performed in it.
//
// Actions point at their batch (action cat:hasBatch batch); the batch has no
// outgoing edge to its actions.
type Batch struct {
	BatchID          *string  `json:"batchID,omitempty"`
	Actions          []Action `json:"Actions,omitempty"`
	BatchName        *string  `json:"batchName,omitempty"`
	ReactionType     *string  `json:"reactionType,omitempty"`
	ReactionName     *string  `json:"reactionName,omitempty"`
	OptimizationType *string  `json:"optimizationType,omitempty"`
	Link             *string  `json:"link,omitempty"`
}

func (bt *Batch) InsertInto(b *graph.Builder, subject rdf.Term) error {
	err := graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(vocab.CatBatch)),
		graph.Field(vocab.PurlIdentifier, graph.OptionalLiteral(bt.BatchID)),
		graph.Field(vocab.SchemaName, graph.OptionalLiteral(bt.BatchName)),
		graph.Field(vocab.HDFHardLink, graph.OptionalLiteral(bt.Link)),
		graph.Field(vocab.CatReactionType, graph.OptionalLiteral(bt.ReactionType)),
		graph.Field(vocab.CatReactionName, graph.OptionalLiteral(bt.ReactionName)),
		graph.Field(vocab.CatOptimizationType, graph.OptionalLiteral(bt.OptimizationType)),
	)
	if err != nil {
		return err
	}
	hasBatch := rdf.NewIRI(vocab.CatHasBatch)
	for i := range bt.Actions {
		action := &bt.Actions[i]
		node := b.NodeFor(action)
		b.Add(node, hasBatch, subject)
		if err := action.InsertInto(b, node); err != nil {
			return err
		}
	}
	return nil
}

// Action is one step of a Synth run. Plate fields, when present, sit at the
// top level of the JSON object.
type Action struct {
	*Plate

	ActionName               ActionName   `json:"actionName"`
	StartTime                string       `json:"startTime"`
	EndingTime               string       `json:"endingTime"`
	MethodName               *string      `json:"methodName,omitempty"`
	EquipmentName            string       `json:"equipmentName"`
	SubEquipmentName         *string      `json:"subEquipmentName,omitempty"`
	SpeedShaker              *Observation `json:"speedShaker,omitempty"`
	HasWell                  []Well       `json:"hasWell,omitempty"`
	AtWell                   *Well        `json:"atWell,omitempty"`
	DispenseState            *string      `json:"dispenseState,omitempty"`
	DispenseType             *string      `json:"dispenseType,omitempty"`
	HasSample                *Sample      `json:"hasSample,omitempty"`
	SpeedTumbleStirrer       *Observation `json:"speedTumbleStirrer,omitempty"`
	TemperatureTumbleStirrer *Observation `json:"temperatureTumbleStirrer,omitempty"`
	TemperatureShaker        *Observation `json:"temperatureShaker,omitempty"`
	Temperature              *Observation `json:"temperature,omitempty"`
	PressureMeasurement      *Observation `json:"pressureMeasurement,omitempty"`
	Vacuum                   *Observation `json:"vacuum,omitempty"`
	VolumeEvaporationFinal   *Observation `json:"volumeEvaporationFinal,omitempty"`
	HasSolvent               *Solvent     `json:"hasSolvent,omitempty"`
	SPMEProcess              *bool        `json:"SPMEprocess,omitempty"`
	HasCartridge             *Cartridge   `json:"hasCartridge,omitempty"`
	StartDuration            *Observation `json:"startDuration,omitempty"`
	EndingDuration           *Observation `json:"endingDuration,omitempty"`
	Order                    *string      `json:"order,omitempty"`
}

func (a *Action) InsertInto(b *graph.Builder, subject rdf.Term) error {
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
		graph.Field(vocab.CatTemperatureTumbleStirrer, graph.Optional(a.TemperatureTumbleStirrer)),
		graph.Field(vocab.CatSpeedTumbleStirrer, graph.Optional(a.SpeedTumbleStirrer)),
		graph.Field(vocab.CatVacuum, graph.Optional(a.Vacuum)),
		graph.Field(vocab.CatTemperatureShaker, graph.Optional(a.TemperatureShaker)),
		graph.Field(vocab.CatTemperatureInDegC, graph.Optional(a.Temperature)),
		graph.Field(vocab.AFP0002677, graph.Optional(a.PressureMeasurement)),
		graph.Field(vocab.CatHasSample, graph.Optional(a.HasSample)),
		graph.Field(vocab.CatHasSolvent, graph.Optional(a.HasSolvent)),
		graph.Field(vocab.CatHasWell, graph.Each(a.HasWell)),
		graph.Field(vocab.CatHasWell, graph.Optional(a.AtWell)),
		graph.Field(vocab.CatHasCartridge, graph.Optional(a.HasCartridge)),
		graph.Field(vocab.CatOrder, graph.OptionalLiteral(a.Order)),
		graph.Field(vocab.CatHasPlate, graph.Optional(a.Plate)),
		graph.Field(vocab.AFQ0000111, graph.OptionalLiteral(a.DispenseState)),
		graph.Field(vocab.CatDispenseType, graph.OptionalLiteral(a.DispenseType)),
	)
}
