package graph

import (
	"github.com/google/uuid"

	"github.com/sdsc-ordes/catplus-converters/rdf"
)

// DefaultBase is the namespace for generated node URIs.
const DefaultBase = "http://example.org/"

// Allocator hands out fresh node identities. Identifiers are random UUIDs,
// so allocators never share state and never fail.
type Allocator struct {
	base  string
	newID func() string
}

// NewAllocator returns an allocator minting URIs under base. An empty base
// selects DefaultBase.
func NewAllocator(base string) *Allocator {
	if base == "" {
		base = DefaultBase
	}
	return &Allocator{base: base, newID: uuid.NewString}
}

// Base returns the namespace generated URIs live under.
func (a *Allocator) Base() string { return a.base }

// NewBlankNode returns a blank node labelled with a fresh UUID.
func (a *Allocator) NewBlankNode() rdf.BlankNode {
	return rdf.BlankNode{ID: a.newID()}
}

// NewURI returns base + a fresh UUID.
func (a *Allocator) NewURI() rdf.IRI {
	return rdf.NewIRI(a.base + a.newID())
}

// Fresh returns a new node of the kind selected by strategy.
func (a *Allocator) Fresh(strategy Strategy) rdf.Term {
	if strategy == StrategyURI {
		return a.NewURI()
	}
	return a.NewBlankNode()
}
