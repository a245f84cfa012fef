package graph

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdsc-ordes/catplus-converters/rdf"
	"github.com/sdsc-ordes/catplus-converters/vocab"
)

func TestStoreSetSemantics(t *testing.T) {
	s := NewStore()
	tr := rdf.Triple{S: rdf.NewIRI("http://example.org/s"), P: rdf.NewIRI(exNS + "p"), O: rdf.NewLiteral("v")}
	assert.True(t, s.Add(tr))
	assert.False(t, s.Add(tr))
	typed := tr
	typed.O = rdf.NewTypedLiteral("v", rdf.NewIRI(vocab.XSDString))
	assert.False(t, s.Add(typed), "xsd:string literal is the same term as the plain literal")
	assert.True(t, s.Has(tr))
	assert.Equal(t, 1, s.Len())
}

func TestStoreMatchAndOrder(t *testing.T) {
	a := rdf.NewIRI("http://example.org/a")
	blank := rdf.BlankNode{ID: "x"}
	p := rdf.NewIRI(exNS + "p")
	q := rdf.NewIRI(exNS + "q")
	s := NewStoreFrom([]rdf.Triple{
		{S: a, P: p, O: blank},
		{S: blank, P: q, O: rdf.NewLiteral("1")},
		{S: a, P: q, O: rdf.NewLiteral("2")},
		{S: a, P: p, O: blank},
	})
	require.Equal(t, 3, s.Len())
	assert.Len(t, s.Match(a, "", nil), 2)
	assert.Len(t, s.Match(nil, q.Value, nil), 2)
	assert.Len(t, s.Match(nil, "", blank), 1)
	assert.Len(t, s.Match(nil, "", nil), 3)
	assert.Empty(t, s.Match(rdf.NewIRI("http://example.org/none"), "", nil))

	triples := s.Triples()
	assert.Equal(t, "2", triples[2].O.(rdf.Literal).Lexical)
	triples[0] = rdf.Triple{}
	assert.False(t, s.Triples()[0].IsZero(), "Triples returns a copy")

	assert.Equal(t, []rdf.BlankNode{blank}, s.BlankNodes())
}

func TestNilStore(t *testing.T) {
	var s *Store
	assert.Zero(t, s.Len())
	assert.Nil(t, s.Triples())
	assert.Nil(t, s.Match(nil, "", nil))
}

func TestAllocator(t *testing.T) {
	a := NewAllocator("")
	assert.Equal(t, DefaultBase, a.Base())

	blank := a.NewBlankNode()
	_, err := uuid.Parse(blank.ID)
	require.NoError(t, err)
	assert.NotEqual(t, blank, a.NewBlankNode())

	iri := a.NewURI()
	require.True(t, strings.HasPrefix(iri.Value, DefaultBase))
	_, err = uuid.Parse(strings.TrimPrefix(iri.Value, DefaultBase))
	require.NoError(t, err)

	assert.Equal(t, rdf.TermBlankNode, a.Fresh(StrategyBlankNode).Kind())
	assert.Equal(t, rdf.TermIRI, a.Fresh(StrategyURI).Kind())
	assert.Equal(t, "https://x.org/", NewAllocator("https://x.org/").Base())
}
