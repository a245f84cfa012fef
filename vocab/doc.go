// Package vocab holds the namespaces and ontology terms used by the CAT+
// record mappings.
//
// Terms are plain string constants built from a namespace base, so they can
// be passed straight to the graph package:
//
//	graph.Field(vocab.CatHasBatch, batch)
//
// The prefix table returned by Prefixes is written verbatim into every
// Turtle header and JSON-LD context.
package vocab
