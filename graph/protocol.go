package graph

import (
	"fmt"

	"github.com/sdsc-ordes/catplus-converters/rdf"
)

// Value is implemented by everything that can become triples.
//
// InsertInto emits the triples describing the value rooted at subject.
// Emitting is idempotent: inserting the same value twice under the same
// subject leaves the store unchanged.
type Value interface {
	InsertInto(b *Builder, subject rdf.Term) error
}

// Attacher replaces the default attach behaviour of Attach.
type Attacher interface {
	AttachInto(b *Builder, link Link) error
}

// Identifier is implemented by values that pick their own node URI.
type Identifier interface {
	NodeURI() (rdf.IRI, bool)
}

// Link describes how a child hangs off its parent: the triple
// (Source, Pred, child) is emitted, where child is Target if set and a node
// chosen by the child otherwise.
type Link struct {
	Source rdf.Term
	Pred   rdf.IRI
	Target rdf.Term
}

// Attach links v under link.Source and inserts it. The child node is
// link.Target, else the value's own URI, else a fresh node per the builder's
// strategy. Values implementing Attacher take over entirely.
func Attach(b *Builder, v Value, link Link) error {
	if v == nil {
		return nil
	}
	if a, ok := v.(Attacher); ok {
		return a.AttachInto(b, link)
	}
	node := link.Target
	if node == nil {
		node = b.NodeFor(v)
	}
	b.Add(link.Source, link.Pred, node)
	return v.InsertInto(b, node)
}

// Pair binds a predicate to the value it links to.
type Pair struct {
	Pred  rdf.IRI
	Value Value
}

// Field returns the pair (pred, v).
func Field(pred string, v Value) Pair {
	return Pair{Pred: rdf.NewIRI(pred), Value: v}
}

// InsertFields attaches every field to subject, in order. It is the body of
// every record's InsertInto.
func InsertFields(b *Builder, subject rdf.Term, fields ...Pair) error {
	for _, f := range fields {
		if err := Attach(b, f.Value, Link{Source: subject, Pred: f.Pred}); err != nil {
			return err
		}
	}
	return nil
}

// Absent is a missing value. Inserting or attaching it does nothing.
type Absent struct{}

func (Absent) InsertInto(*Builder, rdf.Term) error { return nil }

func (Absent) AttachInto(*Builder, Link) error { return nil }

// Optional returns p, or Absent when p is nil.
func Optional[T any, P interface {
	*T
	Value
}](p P) Value {
	if p == nil {
		return Absent{}
	}
	return p
}

// Collection is an ordered list of values.
//
// Inserting a collection feeds every item the same subject, merging their
// triples onto one node. Attaching it attaches each item on its own, so every
// item gets its own node and its own link triple. A link Target is ignored
// when attaching a collection.
type Collection struct {
	items []Value
}

// Each wraps a slice of records as a Collection. Nil and empty slices give an
// empty collection.
func Each[T any, P interface {
	*T
	Value
}](items []T) Collection {
	c := Collection{items: make([]Value, 0, len(items))}
	for i := range items {
		c.items = append(c.items, P(&items[i]))
	}
	return c
}

// Items builds a Collection from arbitrary values.
func Items(values ...Value) Collection {
	return Collection{items: values}
}

// Len returns the number of items.
func (c Collection) Len() int { return len(c.items) }

func (c Collection) InsertInto(b *Builder, subject rdf.Term) error {
	for _, item := range c.items {
		if item == nil {
			continue
		}
		if err := item.InsertInto(b, subject); err != nil {
			return err
		}
	}
	return nil
}

func (c Collection) AttachInto(b *Builder, link Link) error {
	link.Target = nil
	for _, item := range c.items {
		if err := Attach(b, item, link); err != nil {
			return err
		}
	}
	return nil
}

// ProtocolViolation reports a model that cannot be projected, such as a
// terminal asked to recurse or a quoted triple in a statement. It is raised
// with panic: it signals a bug in a record mapping, not bad input.
type ProtocolViolation struct {
	Op     string
	Term   rdf.Term
	Reason string
}

func (v *ProtocolViolation) Error() string {
	if v.Term == nil {
		return fmt.Sprintf("graph: %s: %s", v.Op, v.Reason)
	}
	return fmt.Sprintf("graph: %s %s: %s", v.Op, v.Term.String(), v.Reason)
}
