package graph

import (
	"strconv"

	"github.com/sdsc-ordes/catplus-converters/rdf"
	"github.com/sdsc-ordes/catplus-converters/vocab"
)

// Terminal is a leaf term: an IRI reference or a literal. Attaching it emits
// exactly one triple; it has no children of its own.
type Terminal struct {
	term rdf.Term
}

// Term wraps an arbitrary RDF term.
func Term(t rdf.Term) Terminal { return Terminal{term: t} }

// Ref returns a terminal for the IRI iri.
func Ref(iri string) Terminal { return Terminal{term: rdf.NewIRI(iri)} }

// Literal returns a plain string literal.
func Literal(s string) Terminal { return Terminal{term: rdf.NewLiteral(s)} }

// DateTime returns an xsd:dateTime literal. The lexical form is kept as given.
func DateTime(s string) Terminal {
	return Terminal{term: rdf.NewTypedLiteral(s, rdf.NewIRI(vocab.XSDDateTime))}
}

// Double returns an xsd:double literal in its shortest decimal form, so 5
// renders as "5" and 0.5 as "0.5".
func Double(f float64) Terminal {
	return Terminal{term: rdf.NewTypedLiteral(strconv.FormatFloat(f, 'f', -1, 64), rdf.NewIRI(vocab.XSDDouble))}
}

// Boolean returns an xsd:boolean literal.
func Boolean(v bool) Terminal {
	return Terminal{term: rdf.NewTypedLiteral(strconv.FormatBool(v), rdf.NewIRI(vocab.XSDBoolean))}
}

// OptionalLiteral returns a plain literal for *s, or Absent when s is nil.
func OptionalLiteral(s *string) Value {
	if s == nil {
		return Absent{}
	}
	return Literal(*s)
}

// OptionalBoolean returns a boolean literal for *v, or Absent when v is nil.
func OptionalBoolean(v *bool) Value {
	if v == nil {
		return Absent{}
	}
	return Boolean(*v)
}

// RDFTerm returns the wrapped term.
func (t Terminal) RDFTerm() rdf.Term { return t.term }

// InsertInto always panics: a terminal has nothing to say about another node.
func (t Terminal) InsertInto(*Builder, rdf.Term) error {
	panic(&ProtocolViolation{Op: "insert", Term: t.term, Reason: "cannot recurse into a terminal term"})
}

// AttachInto emits (link.Source, link.Pred, term). link.Target is ignored.
func (t Terminal) AttachInto(b *Builder, link Link) error {
	if rdf.IsQuoted(t.term) {
		panic(&ProtocolViolation{Op: "attach", Term: t.term, Reason: "quoted triples are not supported"})
	}
	b.Add(link.Source, link.Pred, t.term)
	return nil
}
