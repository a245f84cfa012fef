// Package graph projects typed value trees into RDF graphs.
//
// Every convertible type implements Value. A record's InsertInto lists its
// fields as predicate/value pairs and hands them to InsertFields, which
// attaches each child under the record's node:
//
//	func (p *Plate) InsertInto(b *graph.Builder, subject rdf.Term) error {
//		return graph.InsertFields(b, subject,
//			graph.Field(vocab.RDFType, graph.Ref(vocab.CatPlate)),
//			graph.Field(vocab.CatContainerID, graph.Literal(p.ContainerID)),
//			graph.Field(vocab.CatContainerBarcode, graph.OptionalLiteral(p.ContainerBarcode)),
//		)
//	}
//
// Three wrappers cover the shapes records are made of. Absent (built by
// Optional and OptionalLiteral for nil pointers) emits nothing. Collection
// (built by Each) fans a list out into one node per item when attached, and
// merges all items onto one node when inserted. Terminal (Ref, Literal,
// DateTime, Double, Boolean) is a leaf term and panics with a
// *ProtocolViolation if asked to describe a node of its own.
//
// A Builder owns the graph for one conversion and walks the lifecycle
// empty, populated, materialized, serialized. New nodes are blank nodes or
// URIs depending on its Strategy.
package graph
