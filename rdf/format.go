package rdf

import (
	"fmt"
	"io"
	"strings"
)

// Format identifies RDF serialization formats.
type Format string

const (
	FormatTurtle   Format = "turtle"
	FormatNTriples Format = "ntriples"
	FormatJSONLD   Format = "jsonld"
)

// ParseFormat normalizes a format string.
func ParseFormat(value string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "turtle", "ttl":
		return FormatTurtle, true
	case "ntriples", "nt":
		return FormatNTriples, true
	case "jsonld", "json-ld", "json":
		return FormatJSONLD, true
	default:
		return "", false
	}
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) (Format, bool) {
	dot := strings.LastIndexByte(path, '.')
	if dot < 0 {
		return "", false
	}
	return ParseFormat(path[dot+1:])
}

// Extension returns the conventional file extension for f, without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatTurtle:
		return "ttl"
	case FormatNTriples:
		return "nt"
	case FormatJSONLD:
		return "jsonld"
	default:
		return ""
	}
}

// MediaType returns the IANA media type for f.
func (f Format) MediaType() string {
	switch f {
	case FormatTurtle:
		return "text/turtle"
	case FormatNTriples:
		return "application/n-triples"
	case FormatJSONLD:
		return "application/ld+json"
	default:
		return "application/octet-stream"
	}
}

// Encode writes triples in the given format. Turtle output is pretty-printed.
func Encode(w io.Writer, format Format, triples []Triple, prefixes map[string]string) error {
	switch format {
	case FormatTurtle:
		return EncodeTurtle(w, triples, TurtleEncodeOptions{Pretty: true, Prefixes: prefixes})
	case FormatNTriples:
		return WriteNTriples(w, triples)
	case FormatJSONLD:
		return EncodeJSONLD(w, triples, JSONLDOptions{Prefixes: prefixes})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Decode reads all triples of a document in the given format.
func Decode(r io.Reader, format Format) ([]Triple, error) {
	switch format {
	case FormatTurtle:
		return DecodeTurtle(r)
	case FormatNTriples:
		// N-Triples is a subset of Turtle.
		return DecodeTurtle(r)
	case FormatJSONLD:
		return DecodeJSONLD(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
