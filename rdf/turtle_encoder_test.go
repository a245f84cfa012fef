package rdf

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

const exNS = "http://example.org/"

var testPrefixes = map[string]string{
	"ex":  exNS,
	"xsd": "http://www.w3.org/2001/XMLSchema#",
}

func ex(local string) IRI { return NewIRI(exNS + local) }

func typeTriple(s Term, class string) Triple {
	return Triple{S: s, P: NewIRI(RDFTypeIRI), O: ex(class)}
}

func encodePretty(t *testing.T, triples []Triple) string {
	t.Helper()
	var buf bytes.Buffer
	if err := EncodeTurtle(&buf, triples, TurtleEncodeOptions{Pretty: true, Prefixes: testPrefixes}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return buf.String()
}

func TestEncodeTurtlePrettyInlinesSingleUseBlankNodes(t *testing.T) {
	batch := BlankNode{ID: "batch"}
	plate := BlankNode{ID: "plate"}
	triples := []Triple{
		{S: batch, P: ex("name"), O: NewLiteral("x")},
		typeTriple(batch, "Batch"),
		{S: batch, P: ex("hasPlate"), O: plate},
		typeTriple(plate, "Plate"),
		{S: plate, P: ex("id"), O: NewTypedLiteral("1", NewIRI("http://www.w3.org/2001/XMLSchema#integer"))},
	}

	want := "@prefix ex: <http://example.org/> .\n" +
		"@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .\n" +
		"\n" +
		"_:batch a ex:Batch ;\n" +
		"    ex:name \"x\" ;\n" +
		"    ex:hasPlate [\n" +
		"        a ex:Plate ;\n" +
		"        ex:id \"1\"^^xsd:integer\n" +
		"    ] .\n" +
		"\n"
	if got := encodePretty(t, triples); got != want {
		t.Fatalf("unexpected turtle output:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeTurtleSharedBlankNodeKeepsLabel(t *testing.T) {
	plate := BlankNode{ID: "plate"}
	triples := []Triple{
		{S: ex("a"), P: ex("hasPlate"), O: plate},
		{S: ex("b"), P: ex("hasPlate"), O: plate},
		typeTriple(plate, "Plate"),
	}
	out := encodePretty(t, triples)
	if strings.Contains(out, "[") {
		t.Fatalf("shared blank node must not be inlined:\n%s", out)
	}
	if !strings.Contains(out, "_:plate a ex:Plate .") {
		t.Fatalf("expected top-level statement for shared blank node:\n%s", out)
	}
	if strings.Count(out, "ex:hasPlate _:plate") != 2 {
		t.Fatalf("expected two labelled references:\n%s", out)
	}
}

func TestEncodeTurtleObjectListsAndEmptyBlankNode(t *testing.T) {
	triples := []Triple{
		{S: ex("s"), P: ex("p"), O: NewLiteral("one")},
		{S: ex("s"), P: ex("p"), O: NewLiteral("two")},
		{S: ex("s"), P: ex("q"), O: BlankNode{ID: "leaf"}},
	}
	out := encodePretty(t, triples)
	if !strings.Contains(out, `ex:s ex:p "one" , "two" ;`) {
		t.Fatalf("expected object list:\n%s", out)
	}
	if !strings.Contains(out, "ex:q []") {
		t.Fatalf("expected empty blank node:\n%s", out)
	}
}

func TestEncodeTurtleBlankNodeCycleRoundTrip(t *testing.T) {
	a := BlankNode{ID: "a"}
	b := BlankNode{ID: "b"}
	triples := []Triple{
		{S: a, P: ex("next"), O: b},
		{S: b, P: ex("next"), O: a},
	}
	out := encodePretty(t, triples)
	parsed, err := DecodeTurtle(strings.NewReader(out))
	if err != nil {
		t.Fatalf("unexpected parse error: %v\n%s", err, out)
	}
	ok, err := Isomorphic(triples, parsed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("cycle did not round-trip:\n%s", out)
	}
}

func TestEncodeTurtleEscapesLiterals(t *testing.T) {
	lexical := "say \"hi\"\nthen\\leave"
	triples := []Triple{{S: ex("s"), P: ex("p"), O: NewLiteral(lexical)}}
	out := encodePretty(t, triples)
	if !strings.Contains(out, `"say \"hi\"\nthen\\leave"`) {
		t.Fatalf("literal not escaped:\n%s", out)
	}
	parsed, err := DecodeTurtle(strings.NewReader(out))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(parsed) != 1 {
		t.Fatalf("expected 1 triple, got %d", len(parsed))
	}
	if lit, ok := parsed[0].O.(Literal); !ok || lit.Lexical != lexical {
		t.Fatalf("unexpected literal after round-trip: %#v", parsed[0].O)
	}
}

func TestEncodeTurtleQNameTrailingDot(t *testing.T) {
	triples := []Triple{{S: ex("s."), P: ex("p"), O: ex("o")}}
	out := encodePretty(t, triples)
	if !strings.Contains(out, "<http://example.org/s.> ex:p ex:o .") {
		t.Fatalf("expected full IRI for local name ending in a dot:\n%s", out)
	}
}

func TestEncodeTurtleFlat(t *testing.T) {
	triples := []Triple{typeTriple(ex("s"), "Thing")}
	var buf bytes.Buffer
	if err := EncodeTurtle(&buf, triples, TurtleEncodeOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<http://example.org/s> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://example.org/Thing> .\n"
	if buf.String() != want {
		t.Fatalf("unexpected flat output: %q", buf.String())
	}
}

func TestEncodeTurtleRejectsQuotedTriple(t *testing.T) {
	quoted := TripleTerm{S: ex("s"), P: ex("p"), O: ex("o")}
	err := EncodeTurtle(&bytes.Buffer{}, []Triple{{S: ex("s"), P: ex("p"), O: quoted}}, TurtleEncodeOptions{Pretty: true})
	if !errors.Is(err, ErrQuotedTriple) {
		t.Fatalf("expected ErrQuotedTriple, got %v", err)
	}
	if Code(err) != ErrCodeQuotedTriple {
		t.Fatalf("expected ErrCodeQuotedTriple, got %v", Code(err))
	}
}

func TestEncodeTurtleDeterministic(t *testing.T) {
	triples := []Triple{
		typeTriple(ex("z"), "Thing"),
		typeTriple(ex("a"), "Thing"),
		{S: ex("a"), P: ex("p"), O: BlankNode{ID: "n"}},
		{S: BlankNode{ID: "n"}, P: ex("v"), O: NewLiteral("1")},
	}
	first := encodePretty(t, triples)
	for i := 0; i < 5; i++ {
		if got := encodePretty(t, triples); got != first {
			t.Fatalf("non-deterministic output on run %d:\n%s\nvs\n%s", i, got, first)
		}
	}
}

func TestTurtleRoundTripIsomorphic(t *testing.T) {
	root := BlankNode{ID: "root"}
	child := BlankNode{ID: "child"}
	triples := []Triple{
		typeTriple(root, "Action"),
		{S: root, P: ex("start"), O: NewTypedLiteral("2024-07-25T12:15:23", NewIRI("http://www.w3.org/2001/XMLSchema#dateTime"))},
		{S: root, P: ex("equipment"), O: NewLiteral("Chemspeed SWING XL")},
		{S: root, P: ex("hasSample"), O: child},
		typeTriple(child, "Sample"),
		{S: child, P: ex("flag"), O: NewTypedLiteral("true", NewIRI(XSDBooleanIRI))},
		{S: ex("named"), P: ex("uses"), O: child},
	}
	out := encodePretty(t, triples)
	parsed, err := DecodeTurtle(strings.NewReader(out))
	if err != nil {
		t.Fatalf("unexpected parse error: %v\n%s", err, out)
	}
	ok, err := Isomorphic(triples, parsed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("turtle round-trip is not isomorphic:\n%s", out)
	}
}
