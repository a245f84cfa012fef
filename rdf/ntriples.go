package rdf

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteNTriples writes triples in N-Triples syntax, one statement per line.
// The same output is valid N-Quads for the default graph.
func WriteNTriples(w io.Writer, triples []Triple) error {
	writer := bufio.NewWriter(w)
	for _, t := range triples {
		if err := checkStatement(t); err != nil {
			return wrapEncodeError("ntriples", err)
		}
		if _, err := writer.WriteString(t.Key() + " .\n"); err != nil {
			return wrapEncodeError("ntriples", err)
		}
	}
	return wrapEncodeError("ntriples", writer.Flush())
}

// checkStatement rejects statements the encoders cannot express.
func checkStatement(t Triple) error {
	if t.S == nil || t.P.Value == "" || t.O == nil {
		return fmt.Errorf("%w: missing statement fields", ErrInvalidTerm)
	}
	if IsQuoted(t.S) || IsQuoted(t.O) {
		return ErrQuotedTriple
	}
	switch t.S.(type) {
	case IRI, BlankNode:
	default:
		return fmt.Errorf("%w: %s subject", ErrInvalidTerm, t.S.Kind())
	}
	switch t.O.(type) {
	case IRI, BlankNode, Literal:
	default:
		return fmt.Errorf("%w: %T object", ErrInvalidTerm, t.O)
	}
	return nil
}

func renderIRI(iri IRI) string {
	return "<" + escapeIRI(iri.Value) + ">"
}

func renderTerm(term Term) string {
	switch value := term.(type) {
	case IRI:
		return renderIRI(value)
	case BlankNode:
		return value.String()
	case Literal:
		quoted := `"` + escapeLiteral(value.Lexical) + `"`
		if value.Lang != "" {
			return quoted + "@" + value.Lang
		}
		if value.Datatype.Value != "" && value.Datatype.Value != XSDStringIRI {
			return quoted + "^^" + renderIRI(value.Datatype)
		}
		return quoted
	case TripleTerm:
		return "<< " + renderTerm(value.S) + " " + renderIRI(value.P) + " " + renderTerm(value.O) + " >>"
	default:
		return ""
	}
}

// escapeLiteral applies the string escapes shared by N-Triples and Turtle.
func escapeLiteral(s string) string {
	if !strings.ContainsAny(s, "\"\\\n\r\t\b\f") && !hasControl(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

func escapeIRI(s string) string {
	if !strings.ContainsAny(s, "<>\"{}|^`\\ ") && !hasControl(s) {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if r <= 0x20 || strings.ContainsRune("<>\"{}|^`\\", r) {
			fmt.Fprintf(&b, `\u%04X`, r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func hasControl(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] == 0x7f {
			return true
		}
	}
	return false
}
