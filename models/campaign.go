package models

import (
	"github.com/sdsc-ordes/catplus-converters/graph"
	"github.com/sdsc-ordes/catplus-converters/rdf"
	"github.com/sdsc-ordes/catplus-converters/vocab"
)

// CampaignWrapper is the top-level HCI document: {"hasCampaign": {...}}.
// The wrapper itself is not projected; the campaign takes its node.
type CampaignWrapper struct {
	HasCampaign Campaign `json:"hasCampaign"`
}

func (w *CampaignWrapper) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return w.HasCampaign.InsertInto(b, subject)
}

// Campaign is the HCI description of a series of experiments.
type Campaign struct {
	CampaignName     string     `json:"campaignName"`
	Description      string     `json:"description"`
	GenericObjective string     `json:"objective"`
	CampaignClass    string     `json:"campaignClass"`
	CampaignType     string     `json:"type"`
	Reference        string     `json:"reference"`
	HasObjective     *Objective `json:"hasObjective,omitempty"`
	HasBatch         Batch      `json:"hasBatch"`
	HasChemical      []Chemical `json:"hasChemical,omitempty"`
}

func (c *Campaign) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(vocab.CatCampaign)),
		graph.Field(vocab.SchemaName, graph.Literal(c.CampaignName)),
		graph.Field(vocab.SchemaDescription, graph.Literal(c.Description)),
		graph.Field(vocab.CatGenericObjective, graph.Literal(c.GenericObjective)),
		graph.Field(vocab.CatCampaignClass, graph.Literal(c.CampaignClass)),
		graph.Field(vocab.CatCampaignType, graph.Literal(c.CampaignType)),
		graph.Field(vocab.AFR0002764, graph.Literal(c.Reference)),
		graph.Field(vocab.CatHasObjective, graph.Optional(c.HasObjective)),
		graph.Field(vocab.CatHasBatch, &c.HasBatch),
		graph.Field(vocab.CatHasChemical, graph.Each(c.HasChemical)),
	)
}

// Objective is typed obo:IAO_0000005 (objective specification).
type Objective struct {
	Criteria      string `json:"criteria"`
	Condition     string `json:"condition"`
	Description   string `json:"description"`
	ObjectiveName string `json:"objectiveName"`
}

func (o *Objective) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.InsertFields(b, subject,
		graph.Field(vocab.RDFType, graph.Ref(vocab.IAO0000005)),
		graph.Field(vocab.SchemaName, graph.Literal(o.ObjectiveName)),
		graph.Field(vocab.SchemaDescription, graph.Literal(o.Description)),
		graph.Field(vocab.CatCriteria, graph.Literal(o.Criteria)),
		graph.Field(vocab.AFC0000090, graph.Literal(o.Condition)),
	)
}
