package graph

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdsc-ordes/catplus-converters/rdf"
	"github.com/sdsc-ordes/catplus-converters/vocab"
)

func TestInsertFieldsEmitsOneTriplePerField(t *testing.T) {
	b := NewBuilder(StrategyBlankNode, WithAllocator(sequentialAllocator(DefaultBase)))
	p := &part{Name: "axle"}
	require.NoError(t, b.Insert(p))

	root := rdf.BlankNode{ID: "n1"}
	assert.Equal(t, 2, b.Graph().Len())
	assert.True(t, b.Graph().Has(rdf.Triple{S: root, P: rdf.NewIRI(vocab.RDFType), O: rdf.NewIRI(exNS + "Part")}))
	assert.True(t, b.Graph().Has(rdf.Triple{S: root, P: rdf.NewIRI(exNS + "name"), O: rdf.NewLiteral("axle")}))
}

func TestSubjectSubstitution(t *testing.T) {
	x := rdf.NewIRI("http://example.org/x")
	y := rdf.NewIRI("http://example.org/y")

	bx := NewBuilder(StrategyBlankNode, WithAllocator(sequentialAllocator(DefaultBase)))
	require.NoError(t, sampleAssembly().InsertInto(bx, x))
	by := NewBuilder(StrategyBlankNode, WithAllocator(sequentialAllocator(DefaultBase)))
	require.NoError(t, sampleAssembly().InsertInto(by, y))

	substituted := NewStore()
	for _, tr := range bx.Graph().Triples() {
		if rdf.TermEqual(tr.S, x) {
			tr.S = y
		}
		if rdf.TermEqual(tr.O, x) {
			tr.O = y
		}
		substituted.Add(tr)
	}
	assert.Equal(t, keys(by.Graph()), keys(substituted))
}

func TestAbsentIsANoOp(t *testing.T) {
	b := NewBuilder(StrategyBlankNode)
	subject := rdf.NewIRI("http://example.org/s")

	require.NoError(t, Absent{}.InsertInto(b, subject))
	require.NoError(t, Attach(b, Absent{}, Link{Source: subject, Pred: rdf.NewIRI(exNS + "p")}))
	var missing *part
	require.NoError(t, Attach(b, Optional(missing), Link{Source: subject, Pred: rdf.NewIRI(exNS + "p")}))
	require.NoError(t, InsertFields(b, subject,
		Field(exNS+"a", OptionalLiteral(nil)),
		Field(exNS+"b", OptionalBoolean(nil)),
		Field(exNS+"c", Each[part]([]part(nil))),
	))
	assert.Zero(t, b.Graph().Len())
	assert.Equal(t, StateEmpty, b.State())
}

func TestCollectionFanOutAndFanIn(t *testing.T) {
	parts := []part{{Name: "wheel"}, {Name: "spoke"}}
	subject := rdf.NewIRI("http://example.org/s")
	pred := rdf.NewIRI(exNS + "part")

	out := NewBuilder(StrategyBlankNode)
	require.NoError(t, Attach(out, Each(parts), Link{Source: subject, Pred: pred}))
	links := out.Graph().Match(subject, pred.Value, nil)
	require.Len(t, links, 2)
	assert.False(t, rdf.TermEqual(links[0].O, links[1].O), "each item needs its own node")
	assert.Equal(t, 6, out.Graph().Len())

	in := NewBuilder(StrategyBlankNode)
	require.NoError(t, Each(parts).InsertInto(in, subject))
	assert.Empty(t, in.Graph().Match(nil, pred.Value, nil))
	for _, tr := range in.Graph().Triples() {
		assert.True(t, rdf.TermEqual(subject, tr.S))
	}
	// One shared type triple plus two names.
	assert.Equal(t, 3, in.Graph().Len())
}

func TestCollectionIgnoresLinkTarget(t *testing.T) {
	parts := []part{{Name: "wheel"}, {Name: "spoke"}}
	subject := rdf.NewIRI("http://example.org/s")
	pred := rdf.NewIRI(exNS + "part")
	target := rdf.NewIRI("http://example.org/shared")

	b := NewBuilder(StrategyBlankNode)
	require.NoError(t, Attach(b, Each(parts), Link{Source: subject, Pred: pred, Target: target}))
	links := b.Graph().Match(subject, pred.Value, nil)
	require.Len(t, links, 2)
	assert.False(t, rdf.TermEqual(links[0].O, links[1].O), "each item needs its own node")
	for _, link := range links {
		assert.False(t, rdf.TermEqual(target, link.O))
	}
	assert.Empty(t, b.Graph().Match(target, "", nil))
}

func TestInsertIsIdempotent(t *testing.T) {
	b := NewBuilder(StrategyBlankNode)
	subject := rdf.NewIRI("http://example.org/s")
	p := &part{Name: "axle"}
	require.NoError(t, p.InsertInto(b, subject))
	first := b.Graph().Len()
	require.NoError(t, p.InsertInto(b, subject))
	assert.Equal(t, first, b.Graph().Len())
}

func TestAttachNodeResolution(t *testing.T) {
	source := rdf.NewIRI("http://example.org/s")
	pred := rdf.NewIRI(exNS + "main")

	t.Run("explicit target", func(t *testing.T) {
		b := NewBuilder(StrategyBlankNode)
		target := rdf.NewIRI("http://example.org/target")
		require.NoError(t, Attach(b, &part{Name: "a", URI: "http://example.org/own"}, Link{Source: source, Pred: pred, Target: target}))
		assert.True(t, b.Graph().Has(rdf.Triple{S: source, P: pred, O: target}))
		assert.Len(t, b.Graph().Match(target, "", nil), 2)
	})

	t.Run("value chosen uri wins over strategy", func(t *testing.T) {
		b := NewBuilder(StrategyBlankNode)
		require.NoError(t, Attach(b, &part{Name: "a", URI: "http://example.org/own"}, Link{Source: source, Pred: pred}))
		assert.True(t, b.Graph().Has(rdf.Triple{S: source, P: pred, O: rdf.NewIRI("http://example.org/own")}))
		assert.Empty(t, b.Graph().BlankNodes())
	})

	t.Run("uri strategy", func(t *testing.T) {
		b := NewBuilder(StrategyURI, WithAllocator(NewAllocator("http://example.org/run/")))
		require.NoError(t, Attach(b, &part{Name: "a"}, Link{Source: source, Pred: pred}))
		links := b.Graph().Match(source, pred.Value, nil)
		require.Len(t, links, 1)
		iri, ok := links[0].O.(rdf.IRI)
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(iri.Value, "http://example.org/run/"))
	})
}

func TestTerminalInsertPanics(t *testing.T) {
	b := NewBuilder(StrategyBlankNode)
	v := violation(t, func() {
		_ = Literal("x").InsertInto(b, rdf.NewIRI("http://example.org/s"))
	})
	assert.Equal(t, "insert", v.Op)
	assert.Contains(t, v.Error(), "cannot recurse into a terminal term")
}

func TestQuotedTriplesPanic(t *testing.T) {
	b := NewBuilder(StrategyBlankNode)
	quoted := rdf.TripleTerm{S: rdf.NewIRI("http://example.org/s"), P: rdf.NewIRI(exNS + "p"), O: rdf.NewLiteral("o")}

	v := violation(t, func() {
		_ = Attach(b, Term(quoted), Link{Source: rdf.NewIRI("http://example.org/s"), Pred: rdf.NewIRI(exNS + "p")})
	})
	assert.Equal(t, "attach", v.Op)

	v = violation(t, func() {
		b.Add(quoted, rdf.NewIRI(exNS+"p"), rdf.NewLiteral("o"))
	})
	assert.Equal(t, "add", v.Op)
	assert.Zero(t, b.Graph().Len())
}

func TestLiteralSubjectPanics(t *testing.T) {
	b := NewBuilder(StrategyBlankNode)
	v := violation(t, func() {
		b.Add(rdf.NewLiteral("s"), rdf.NewIRI(exNS+"p"), rdf.NewLiteral("o"))
	})
	assert.Equal(t, "literal subject", v.Reason)
}

func TestTerminalLexicalForms(t *testing.T) {
	cases := []struct {
		term     Terminal
		lexical  string
		datatype string
	}{
		{Double(5), "5", vocab.XSDDouble},
		{Double(0.5), "0.5", vocab.XSDDouble},
		{Double(-12.25), "-12.25", vocab.XSDDouble},
		{Boolean(true), "true", vocab.XSDBoolean},
		{DateTime("2024-07-25T12:15:23"), "2024-07-25T12:15:23", vocab.XSDDateTime},
		{Literal("plain"), "plain", ""},
	}
	for _, tc := range cases {
		lit, ok := tc.term.RDFTerm().(rdf.Literal)
		require.True(t, ok)
		assert.Equal(t, tc.lexical, lit.Lexical)
		assert.Equal(t, tc.datatype, lit.Datatype.Value)
	}
	iri, ok := Ref(vocab.CatBatch).RDFTerm().(rdf.IRI)
	require.True(t, ok)
	assert.Equal(t, vocab.CatBatch, iri.Value)
}

type failing struct{}

var errFailing = errors.New("boom")

func (failing) InsertInto(*Builder, rdf.Term) error { return errFailing }

func TestInsertFieldsStopsAtFirstError(t *testing.T) {
	b := NewBuilder(StrategyBlankNode)
	subject := rdf.NewIRI("http://example.org/s")
	err := InsertFields(b, subject,
		Field(exNS+"a", Literal("first")),
		Field(exNS+"b", failing{}),
		Field(exNS+"c", Literal("never")),
	)
	require.ErrorIs(t, err, errFailing)
	assert.Empty(t, b.Graph().Match(nil, exNS+"c", nil))
}

func TestItemsAttachesMixedValues(t *testing.T) {
	b := NewBuilder(StrategyBlankNode)
	subject := rdf.NewIRI("http://example.org/s")
	c := Items(Literal("a"), Ref(exNS+"b"), Absent{}, nil)
	assert.Equal(t, 4, c.Len())
	require.NoError(t, Attach(b, c, Link{Source: subject, Pred: rdf.NewIRI(exNS + "p")}))
	assert.Equal(t, 2, b.Graph().Len())
}
