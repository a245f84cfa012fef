package rdf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	ld "github.com/piprate/json-gold/ld"
)

const defaultGraphName = "@default"

// JSONLDOptions configures JSON-LD encoding.
type JSONLDOptions struct {
	// Prefixes becomes the @context of the compacted document.
	Prefixes map[string]string
	// Indent is the JSON indentation unit (default two spaces).
	Indent string
}

// EncodeJSONLD writes triples as a compacted JSON-LD document. The triples are
// rendered as N-Quads, converted with the JSON-LD fromRdf algorithm and
// compacted against a context built from the prefix table.
func EncodeJSONLD(w io.Writer, triples []Triple, opts JSONLDOptions) error {
	var nquads bytes.Buffer
	if err := WriteNTriples(&nquads, relabelBlankNodes(triples)); err != nil {
		return wrapEncodeError("jsonld", err)
	}

	proc := ld.NewJsonLdProcessor()
	goldOpts := ld.NewJsonLdOptions("")
	goldOpts.Format = "application/n-quads"
	expanded, err := proc.FromRDF(nquads.String(), goldOpts)
	if err != nil {
		return wrapEncodeError("jsonld", err)
	}

	compacted, err := proc.Compact(expanded, jsonLDContext(opts.Prefixes), ld.NewJsonLdOptions(""))
	if err != nil {
		return wrapEncodeError("jsonld", err)
	}

	indent := opts.Indent
	if indent == "" {
		indent = "  "
	}
	data, err := json.MarshalIndent(compacted, "", indent)
	if err != nil {
		return wrapEncodeError("jsonld", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return wrapEncodeError("jsonld", err)
	}
	return nil
}

func jsonLDContext(prefixes map[string]string) map[string]interface{} {
	context := make(map[string]interface{}, len(prefixes))
	for _, prefix := range sortedPrefixKeys(prefixes) {
		if prefix == "" {
			continue
		}
		context[prefix] = prefixes[prefix]
	}
	return map[string]interface{}{"@context": context}
}

// DecodeJSONLD parses a JSON-LD document into triples. Only the default graph
// is accepted.
func DecodeJSONLD(r io.Reader) ([]Triple, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, wrapParseError("jsonld", "", err)
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, wrapParseError("jsonld", string(data), err)
	}

	result, err := ld.NewJsonLdProcessor().ToRDF(doc, ld.NewJsonLdOptions(""))
	if err != nil {
		return nil, wrapParseError("jsonld", "", err)
	}
	dataset, ok := result.(*ld.RDFDataset)
	if !ok {
		return nil, wrapParseError("jsonld", "", fmt.Errorf("unexpected toRdf result %T", result))
	}
	return datasetTriples(dataset, "jsonld")
}

func datasetTriples(dataset *ld.RDFDataset, format string) ([]Triple, error) {
	var triples []Triple
	for graphName, quads := range dataset.Graphs {
		if graphName != defaultGraphName && len(quads) > 0 {
			return nil, wrapParseError(format, graphName, fmt.Errorf("%w: named graph", ErrUnsupportedFormat))
		}
		for _, quad := range quads {
			t, err := fromGoldQuad(quad)
			if err != nil {
				return nil, wrapParseError(format, "", err)
			}
			triples = append(triples, t)
		}
	}
	return triples, nil
}

func fromGoldQuad(quad *ld.Quad) (Triple, error) {
	if quad == nil {
		return Triple{}, fmt.Errorf("%w: nil quad", ErrInvalidTerm)
	}
	subject, err := fromGoldNode(quad.Subject)
	if err != nil {
		return Triple{}, err
	}
	predicate, ok := quad.Predicate.(ld.IRI)
	if !ok {
		return Triple{}, fmt.Errorf("%w: predicate %T", ErrInvalidTerm, quad.Predicate)
	}
	object, err := fromGoldNode(quad.Object)
	if err != nil {
		return Triple{}, err
	}
	return Triple{S: subject, P: NewIRI(predicate.Value), O: object}, nil
}

func fromGoldNode(node ld.Node) (Term, error) {
	switch value := node.(type) {
	case ld.IRI:
		return NewIRI(value.Value), nil
	case ld.BlankNode:
		return BlankNode{ID: strings.TrimPrefix(value.Attribute, "_:")}, nil
	case ld.Literal:
		if value.Language != "" {
			return Literal{Lexical: value.Value, Lang: value.Language}, nil
		}
		if value.Datatype == "" || value.Datatype == XSDStringIRI {
			return NewLiteral(value.Value), nil
		}
		return NewTypedLiteral(value.Value, NewIRI(value.Datatype)), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidTerm, node)
	}
}
