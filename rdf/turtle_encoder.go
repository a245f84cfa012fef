package rdf

import (
	"bufio"
	"io"
	"sort"
	"strings"
)

// TurtleEncodeOptions configures Turtle encoding.
type TurtleEncodeOptions struct {
	// Pretty groups statements by subject and inlines blank nodes that are
	// referenced exactly once. When false, one statement is written per line.
	Pretty bool
	// Indent is the indentation unit for pretty output (default four spaces).
	Indent string
	// Prefixes maps prefix labels to namespace IRIs. Every entry is written
	// as a @prefix directive and used to abbreviate IRIs.
	Prefixes map[string]string
}

// EncodeTurtle writes triples as a Turtle document.
func EncodeTurtle(w io.Writer, triples []Triple, opts TurtleEncodeOptions) error {
	for _, t := range triples {
		if err := checkStatement(t); err != nil {
			return wrapEncodeError("turtle", err)
		}
	}
	if opts.Indent == "" {
		opts.Indent = "    "
	}
	enc := &turtleEncoder{writer: bufio.NewWriter(w), opts: opts}
	enc.writeHeader()
	if opts.Pretty {
		enc.writePretty(triples)
	} else {
		enc.writeFlat(triples)
	}
	if enc.err != nil {
		return wrapEncodeError("turtle", enc.err)
	}
	return wrapEncodeError("turtle", enc.writer.Flush())
}

type turtleEncoder struct {
	writer *bufio.Writer
	err    error
	opts   TurtleEncodeOptions

	groups   map[string]*subjectGroup
	refs     map[string]int
	rendered map[string]bool
}

// subjectGroup holds the predicate/object lists of one subject in first-seen order.
type subjectGroup struct {
	subject Term
	preds   []IRI
	objects map[string][]Term
}

func (e *turtleEncoder) write(s string) {
	if e.err != nil {
		return
	}
	_, e.err = e.writer.WriteString(s)
}

func (e *turtleEncoder) writeHeader() {
	if len(e.opts.Prefixes) == 0 {
		return
	}
	for _, prefix := range sortedPrefixKeys(e.opts.Prefixes) {
		label := prefix + ":"
		if prefix == "" {
			label = ":"
		}
		e.write("@prefix " + label + " <" + e.opts.Prefixes[prefix] + "> .\n")
	}
	e.write("\n")
}

func (e *turtleEncoder) writeFlat(triples []Triple) {
	for _, t := range triples {
		e.write(e.term(t.S) + " " + e.predicate(t.P) + " " + e.term(t.O) + " .\n")
	}
}

func (e *turtleEncoder) writePretty(triples []Triple) {
	e.groups = make(map[string]*subjectGroup)
	e.refs = make(map[string]int)
	e.rendered = make(map[string]bool)

	var order []string
	for _, t := range triples {
		key := renderTerm(t.S)
		group, ok := e.groups[key]
		if !ok {
			group = &subjectGroup{subject: t.S, objects: make(map[string][]Term)}
			e.groups[key] = group
			order = append(order, key)
		}
		if _, seen := group.objects[t.P.Value]; !seen {
			if t.P.Value == RDFTypeIRI {
				group.preds = append([]IRI{t.P}, group.preds...)
			} else {
				group.preds = append(group.preds, t.P)
			}
		}
		group.objects[t.P.Value] = append(group.objects[t.P.Value], t.O)
		if b, ok := t.O.(BlankNode); ok {
			e.refs[b.ID]++
		}
	}

	for _, key := range order {
		if e.inlinable(e.groups[key].subject) {
			continue
		}
		e.writeStatement(key)
	}
	// Blank nodes only reachable through a cycle of single references.
	for _, key := range order {
		if !e.rendered[key] {
			e.writeStatement(key)
		}
	}
}

func (e *turtleEncoder) inlinable(term Term) bool {
	b, ok := term.(BlankNode)
	return ok && e.refs[b.ID] == 1
}

func (e *turtleEncoder) writeStatement(key string) {
	group := e.groups[key]
	e.rendered[key] = true
	e.write(e.term(group.subject) + " ")
	e.writePredicates(group, 1)
	e.write(" .\n\n")
}

func (e *turtleEncoder) writePredicates(group *subjectGroup, depth int) {
	indent := strings.Repeat(e.opts.Indent, depth)
	for i, pred := range group.preds {
		if i > 0 {
			e.write(" ;\n" + indent)
		}
		e.write(e.predicate(pred) + " ")
		for j, object := range group.objects[pred.Value] {
			if j > 0 {
				e.write(" , ")
			}
			e.writeObject(object, depth)
		}
	}
}

func (e *turtleEncoder) writeObject(object Term, depth int) {
	b, ok := object.(BlankNode)
	if !ok || !e.inlinable(b) {
		e.write(e.term(object))
		return
	}
	key := renderTerm(b)
	group, hasProps := e.groups[key]
	if !hasProps {
		e.write("[]")
		return
	}
	if e.rendered[key] {
		e.write(b.String())
		return
	}
	e.rendered[key] = true
	e.write("[\n" + strings.Repeat(e.opts.Indent, depth+1))
	e.writePredicates(group, depth+1)
	e.write("\n" + strings.Repeat(e.opts.Indent, depth) + "]")
}

func (e *turtleEncoder) predicate(iri IRI) string {
	if iri.Value == RDFTypeIRI && e.opts.Pretty {
		return "a"
	}
	return renderIRIWithPrefixes(iri, e.opts.Prefixes)
}

func (e *turtleEncoder) term(term Term) string {
	return renderTermWithPrefixes(term, e.opts.Prefixes)
}

func sortedPrefixKeys(prefixes map[string]string) []string {
	keys := make([]string, 0, len(prefixes))
	for key := range prefixes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func renderIRIWithPrefixes(iri IRI, prefixes map[string]string) string {
	if qname, ok := abbreviateQName(iri.Value, prefixes, true); ok {
		return qname
	}
	return renderIRI(iri)
}

func renderTermWithPrefixes(term Term, prefixes map[string]string) string {
	switch value := term.(type) {
	case IRI:
		return renderIRIWithPrefixes(value, prefixes)
	case Literal:
		quoted := `"` + escapeLiteral(value.Lexical) + `"`
		if value.Lang != "" {
			return quoted + "@" + value.Lang
		}
		if value.Datatype.Value != "" && value.Datatype.Value != XSDStringIRI {
			return quoted + "^^" + renderIRIWithPrefixes(value.Datatype, prefixes)
		}
		return quoted
	default:
		return renderTerm(term)
	}
}

func abbreviateQName(iri string, prefixes map[string]string, allowEmptyPrefix bool) (string, bool) {
	if len(prefixes) == 0 {
		return "", false
	}
	bestNS := ""
	bestPrefix := ""
	found := false
	for prefix, ns := range prefixes {
		if prefix == "" && !allowEmptyPrefix {
			continue
		}
		if !strings.HasPrefix(iri, ns) {
			continue
		}
		local := iri[len(ns):]
		if !isQNameLocal(local) {
			continue
		}
		if len(ns) > len(bestNS) || (len(ns) == len(bestNS) && prefix < bestPrefix) {
			bestNS = ns
			bestPrefix = prefix
			found = true
		}
	}
	if !found {
		return "", false
	}
	local := iri[len(bestNS):]
	if bestPrefix == "" {
		return ":" + local, true
	}
	return bestPrefix + ":" + local, true
}
