// Package models holds the typed input records of the converters and their
// projection into the Cat+ ontology.
//
// Four input families are covered: Synth batches (Batch, Action), Bravo
// runs (BravoBatch), HCI campaigns (CampaignWrapper) and Agilent ASM
// liquid chromatography documents
// (LiquidChromatographyAggregateDocumentWrapper). Each record decodes from
// its JSON input with encoding/json and implements graph.Value.
//
// Units and action names are closed sets. Unknown values fail at decode
// time with an *EnumError; missing required ones fail at build time with
// ErrMissingValue.
package models
