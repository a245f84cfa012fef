// Package convert runs the JSON to RDF pipeline: decode the input into its
// record type, project the record into a graph, optionally materialize blank
// nodes, then serialize. Failures are reported as *StageError naming the
// step that failed.
package convert
