// Package rdf provides the RDF term model and the serializers used by the
// CAT+ converters.
//
// Terms are immutable values: IRI, BlankNode and Literal. TripleTerm exists
// only so producers can detect RDF-star quoted triples and reject them; no
// encoder in this package accepts one.
//
// Encoding:
//   - EncodeTurtle writes Turtle with a prefix header. In pretty mode it groups
//     statements by subject, writes rdf:type as "a" and inlines blank nodes
//     that are referenced exactly once as [ ... ].
//   - EncodeJSONLD converts the triples with the JSON-LD fromRdf algorithm and
//     compacts the result against the prefix table.
//   - WriteNTriples writes one statement per line.
//
// Decoding:
//   - DecodeTurtle parses Turtle (and therefore N-Triples).
//   - DecodeJSONLD parses JSON-LD documents with a default graph.
//
// Graph comparison:
//
//	ok, err := rdf.Isomorphic(parsedFromTurtle, parsedFromJSONLD)
//	if err != nil {
//	    // handle error
//	}
//
// Isomorphic compares the URDNA2015 canonical N-Quads of both graphs, so it is
// insensitive to blank node labels and statement order.
//
// Errors are classified with Code. Parse failures are *ParseError values and
// serialization failures are *EncodeError values; both unwrap to the cause.
package rdf
