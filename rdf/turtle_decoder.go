package rdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	knakk "github.com/knakk/rdf"
)

// labelMark is prepended to every blank node label written in the source.
// The decoder names anonymous nodes ([] and [ ... ]) b1, b2, ..., so a
// document mixing both forms would otherwise merge distinct nodes.
const labelMark = "L"

// DecodeTurtle parses a Turtle document into triples. Labelled blank nodes
// keep their labels; anonymous ones get labels no labelled node uses.
func DecodeTurtle(r io.Reader) ([]Triple, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, wrapParseError("turtle", "", err)
	}
	dec := knakk.NewTripleDecoder(bytes.NewReader(markBlankLabels(src)), knakk.Turtle)
	var triples []Triple
	for {
		parsed, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrapParseError("turtle", "", err)
		}
		t, err := fromKnakkTriple(parsed)
		if err != nil {
			return nil, wrapParseError("turtle", "", err)
		}
		triples = append(triples, t)
	}
	return unmarkBlankLabels(triples), nil
}

// markBlankLabels prefixes each blank node label outside IRIs, strings and
// comments with labelMark.
func markBlankLabels(src []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(src) + 64)
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '#':
			end := bytes.IndexAny(src[i:], "\r\n")
			if end < 0 {
				end = len(src) - i
			}
			out.Write(src[i : i+end])
			i += end
		case c == '<':
			end := bytes.IndexByte(src[i+1:], '>')
			if end < 0 {
				out.Write(src[i:])
				return out.Bytes()
			}
			out.Write(src[i : i+end+2])
			i += end + 2
		case c == '"' || c == '\'':
			end := stringEnd(src, i)
			out.Write(src[i:end])
			i = end
		case isNameByte(c):
			end := i
			for end < len(src) && isNameByte(src[end]) {
				end++
			}
			word := src[i:end]
			dots := len(word) - len(bytes.TrimLeft(word, "."))
			out.Write(word[:dots])
			if bytes.HasPrefix(word[dots:], []byte("_:")) {
				out.WriteString("_:" + labelMark)
				out.Write(word[dots+2:])
			} else {
				out.Write(word[dots:])
			}
			i = end
		default:
			out.WriteByte(c)
			i++
		}
	}
	return out.Bytes()
}

// stringEnd returns the offset just past the string literal opening at i.
func stringEnd(src []byte, i int) int {
	q := src[i]
	long := i+2 < len(src) && src[i+1] == q && src[i+2] == q
	j := i + 1
	if long {
		j = i + 3
	}
	for j < len(src) {
		switch src[j] {
		case '\\':
			j += 2
			continue
		case q:
			if !long {
				return j + 1
			}
			if j+2 < len(src) && src[j+1] == q && src[j+2] == q {
				// """a"""" ends with a quote in the content.
				end := j + 3
				for end < len(src) && end < j+5 && src[end] == q {
					end++
				}
				return end
			}
		}
		j++
	}
	return len(src)
}

func isNameByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c >= 0x80:
		return true
	}
	switch c {
	case '_', '-', ':', '.', '%', '\\':
		return true
	}
	return false
}

// unmarkBlankLabels strips labelMark from labelled nodes and renames
// anonymous nodes to labels unused by any labelled node.
func unmarkBlankLabels(triples []Triple) []Triple {
	used := map[string]bool{}
	for _, t := range triples {
		for _, term := range []Term{t.S, t.O} {
			if bn, ok := term.(BlankNode); ok && strings.HasPrefix(bn.ID, labelMark) {
				used[strings.TrimPrefix(bn.ID, labelMark)] = true
			}
		}
	}
	renamed := map[string]string{}
	next := 0
	relabel := func(term Term) Term {
		bn, ok := term.(BlankNode)
		if !ok {
			return term
		}
		if id, found := strings.CutPrefix(bn.ID, labelMark); found {
			return BlankNode{ID: id}
		}
		id, ok := renamed[bn.ID]
		if !ok {
			for {
				next++
				id = "b" + strconv.Itoa(next)
				if !used[id] {
					break
				}
			}
			renamed[bn.ID] = id
		}
		return BlankNode{ID: id}
	}
	for i := range triples {
		triples[i].S = relabel(triples[i].S)
		triples[i].O = relabel(triples[i].O)
	}
	return triples
}

func fromKnakkTriple(t knakk.Triple) (Triple, error) {
	subject, err := fromKnakkTerm(t.Subj)
	if err != nil {
		return Triple{}, err
	}
	predicate, ok := t.Pred.(knakk.IRI)
	if !ok {
		return Triple{}, fmt.Errorf("%w: predicate %T", ErrInvalidTerm, t.Pred)
	}
	object, err := fromKnakkTerm(t.Obj)
	if err != nil {
		return Triple{}, err
	}
	return Triple{S: subject, P: NewIRI(predicate.String()), O: object}, nil
}

func fromKnakkTerm(term knakk.Term) (Term, error) {
	switch value := term.(type) {
	case knakk.IRI:
		return NewIRI(value.String()), nil
	case knakk.Blank:
		return BlankNode{ID: strings.TrimPrefix(value.String(), "_:")}, nil
	case knakk.Literal:
		if lang := value.Lang(); lang != "" {
			return Literal{Lexical: value.String(), Lang: lang}, nil
		}
		datatype := value.DataType.String()
		if datatype == "" || datatype == XSDStringIRI {
			return NewLiteral(value.String()), nil
		}
		return NewTypedLiteral(value.String(), NewIRI(datatype)), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidTerm, term)
	}
}
