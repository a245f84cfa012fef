package validation

import (
	"strings"

	"github.com/sdsc-ordes/catplus-converters/graph"
	"github.com/sdsc-ordes/catplus-converters/rdf"
	"github.com/sdsc-ordes/catplus-converters/vocab"
)

// Severity is the local name of a SHACL result severity.
type Severity string

const (
	SeverityViolation Severity = "Violation"
	SeverityWarning   Severity = "Warning"
	SeverityInfo      Severity = "Info"
)

// Report is a SHACL validation report.
type Report struct {
	Conforms bool
	Graph    *graph.Store
	// Summary counts validation results per severity.
	Summary map[Severity]int
}

// NewReport reads a report graph. The report conforms only if some
// sh:conforms triple has a true boolean object ("true" or "1"); a report
// without one does not conform.
func NewReport(g *graph.Store) *Report {
	if g == nil {
		g = graph.NewStore()
	}
	r := &Report{Graph: g, Summary: make(map[Severity]int)}
	for _, t := range g.Match(nil, vocab.SHConforms, nil) {
		if isTrue(t.O) {
			r.Conforms = true
			break
		}
	}
	for _, t := range g.Match(nil, vocab.SHResultSeverity, nil) {
		iri, ok := t.O.(rdf.IRI)
		if !ok || !strings.HasPrefix(iri.Value, vocab.SH) {
			continue
		}
		r.Summary[Severity(strings.TrimPrefix(iri.Value, vocab.SH))]++
	}
	return r
}

func isTrue(term rdf.Term) bool {
	lit, ok := term.(rdf.Literal)
	if !ok {
		return false
	}
	switch strings.TrimSpace(lit.Lexical) {
	case "true", "1":
		return true
	default:
		return false
	}
}

// Violations returns the number of sh:Violation results.
func (r *Report) Violations() int { return r.Summary[SeverityViolation] }
