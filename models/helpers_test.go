package models

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sdsc-ordes/catplus-converters/graph"
	"github.com/sdsc-ordes/catplus-converters/rdf"
	"github.com/sdsc-ordes/catplus-converters/vocab"
)

func loadFixture[T any](t *testing.T, name string) *T {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name+".json"))
	require.NoError(t, err)
	v := new(T)
	require.NoError(t, json.Unmarshal(data, v))
	return v
}

func build(t *testing.T, strategy graph.Strategy, root graph.Value) *graph.Builder {
	t.Helper()
	b := graph.NewBuilder(strategy)
	require.NoError(t, b.Insert(root))
	return b
}

// requireIsomorphic serializes b as Turtle, parses it back and compares it
// with testdata/<name>.ttl.
func requireIsomorphic(t *testing.T, b *graph.Builder, name string) {
	t.Helper()
	out, err := b.SerializeTurtle()
	require.NoError(t, err)
	got, err := rdf.Decode(strings.NewReader(out), rdf.FormatTurtle)
	require.NoError(t, err, out)

	f, err := os.Open(filepath.Join("testdata", name+".ttl"))
	require.NoError(t, err)
	defer f.Close()
	want, err := rdf.Decode(f, rdf.FormatTurtle)
	require.NoError(t, err)

	ok, err := rdf.Isomorphic(got, want)
	require.NoError(t, err)
	require.True(t, ok, "graph differs from %s.ttl:\n%s", name, out)
}

func subjectsOfType(s *graph.Store, class string) []rdf.Term {
	var out []rdf.Term
	for _, tr := range s.Match(nil, vocab.RDFType, rdf.NewIRI(class)) {
		out = append(out, tr.S)
	}
	return out
}

func objects(s *graph.Store, subject rdf.Term, pred string) []rdf.Term {
	var out []rdf.Term
	for _, tr := range s.Match(subject, pred, nil) {
		out = append(out, tr.O)
	}
	return out
}
