package rdf

import (
	"bytes"
	"fmt"

	ld "github.com/piprate/json-gold/ld"
)

// Canonicalize returns the URDNA2015 canonical N-Quads form of triples.
// Duplicate statements are collapsed first, so the result depends only on
// the set of triples and not on blank node labels or order.
func Canonicalize(triples []Triple) (string, error) {
	var nquads bytes.Buffer
	if err := WriteNTriples(&nquads, relabelBlankNodes(dedupe(triples))); err != nil {
		return "", err
	}
	dataset, err := (&ld.NQuadRDFSerializer{}).Parse(nquads.String())
	if err != nil {
		return "", wrapParseError("nquads", "", err)
	}

	opts := ld.NewJsonLdOptions("")
	opts.Format = "application/n-quads"
	opts.Algorithm = ld.AlgorithmURDNA2015
	normalized, err := ld.NewJsonLdApi().Normalize(dataset, opts)
	if err != nil {
		return "", wrapEncodeError("urdna2015", err)
	}
	value, ok := normalized.(string)
	if !ok {
		return "", wrapEncodeError("urdna2015", fmt.Errorf("unexpected normalization result %T", normalized))
	}
	return value, nil
}

// Isomorphic reports whether a and b describe the same graph up to blank
// node relabeling.
func Isomorphic(a, b []Triple) (bool, error) {
	left, err := Canonicalize(a)
	if err != nil {
		return false, err
	}
	right, err := Canonicalize(b)
	if err != nil {
		return false, err
	}
	return left == right, nil
}

func dedupe(triples []Triple) []Triple {
	seen := make(map[string]struct{}, len(triples))
	out := make([]Triple, 0, len(triples))
	for _, t := range triples {
		key := t.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}

// relabelBlankNodes renames blank nodes to b0, b1, ... in first-seen order.
// The json-gold N-Quads reader only accepts alphanumeric labels that start
// with a letter, which rules out UUID labels.
func relabelBlankNodes(triples []Triple) []Triple {
	labels := make(map[string]string)
	rename := func(term Term) Term {
		blank, ok := term.(BlankNode)
		if !ok {
			return term
		}
		label, ok := labels[blank.ID]
		if !ok {
			label = fmt.Sprintf("b%d", len(labels))
			labels[blank.ID] = label
		}
		return BlankNode{ID: label}
	}
	out := make([]Triple, len(triples))
	for i, t := range triples {
		out[i] = Triple{S: rename(t.S), P: t.P, O: rename(t.O)}
	}
	return out
}
