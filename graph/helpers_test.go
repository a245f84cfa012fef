package graph

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sdsc-ordes/catplus-converters/rdf"
	"github.com/sdsc-ordes/catplus-converters/vocab"
)

const exNS = "http://example.org/test#"

// sequentialAllocator numbers nodes n1, n2, ... so expected graphs can be
// written down.
func sequentialAllocator(base string) *Allocator {
	n := 0
	return &Allocator{base: base, newID: func() string {
		n++
		return fmt.Sprintf("n%d", n)
	}}
}

type part struct {
	Name  string
	Batch *string
	URI   string
}

func (p *part) InsertInto(b *Builder, subject rdf.Term) error {
	return InsertFields(b, subject,
		Field(vocab.RDFType, Ref(exNS+"Part")),
		Field(exNS+"name", Literal(p.Name)),
		Field(exNS+"batch", OptionalLiteral(p.Batch)),
	)
}

func (p *part) NodeURI() (rdf.IRI, bool) {
	if p.URI == "" {
		return rdf.IRI{}, false
	}
	return rdf.NewIRI(p.URI), true
}

type assembly struct {
	Label string
	Main  *part
	Parts []part
	Done  *bool
}

func (a *assembly) InsertInto(b *Builder, subject rdf.Term) error {
	return InsertFields(b, subject,
		Field(vocab.RDFType, Ref(exNS+"Assembly")),
		Field(exNS+"label", Literal(a.Label)),
		Field(exNS+"main", Optional(a.Main)),
		Field(exNS+"part", Each(a.Parts)),
		Field(exNS+"done", OptionalBoolean(a.Done)),
	)
}

func sampleAssembly() *assembly {
	lot := "L-7"
	done := true
	return &assembly{
		Label: "frame",
		Main:  &part{Name: "axle", Batch: &lot},
		Parts: []part{{Name: "wheel"}, {Name: "spoke"}},
		Done:  &done,
	}
}

func keys(s *Store) map[string]bool {
	out := make(map[string]bool, s.Len())
	for _, t := range s.Triples() {
		out[t.Key()] = true
	}
	return out
}

func violation(t *testing.T, f func()) (v *ProtocolViolation) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		var ok bool
		v, ok = r.(*ProtocolViolation)
		require.True(t, ok, "expected *ProtocolViolation, got %T", r)
	}()
	f()
	return nil
}
