package graph

import "github.com/sdsc-ordes/catplus-converters/rdf"

// Store is an in-memory set of triples. Iteration follows insertion order so
// serializations are reproducible. A Store is not safe for concurrent use.
type Store struct {
	index   map[string]struct{}
	triples []rdf.Triple
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{index: make(map[string]struct{})}
}

// NewStoreFrom returns a store holding triples, duplicates collapsed.
func NewStoreFrom(triples []rdf.Triple) *Store {
	s := NewStore()
	for _, t := range triples {
		s.Add(t)
	}
	return s
}

// Add inserts t and reports whether it was new.
func (s *Store) Add(t rdf.Triple) bool {
	key := t.Key()
	if _, ok := s.index[key]; ok {
		return false
	}
	s.index[key] = struct{}{}
	s.triples = append(s.triples, t)
	return true
}

// Has reports whether t is in the store.
func (s *Store) Has(t rdf.Triple) bool {
	_, ok := s.index[t.Key()]
	return ok
}

// Len returns the number of distinct triples.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.triples)
}

// Triples returns a copy of the triples in insertion order.
func (s *Store) Triples() []rdf.Triple {
	if s == nil {
		return nil
	}
	out := make([]rdf.Triple, len(s.triples))
	copy(out, s.triples)
	return out
}

// Match returns the triples matching the pattern. A nil subject or object
// and an empty predicate act as wildcards.
func (s *Store) Match(subject rdf.Term, predicate string, object rdf.Term) []rdf.Triple {
	if s == nil {
		return nil
	}
	var out []rdf.Triple
	for _, t := range s.triples {
		if subject != nil && !rdf.TermEqual(subject, t.S) {
			continue
		}
		if predicate != "" && predicate != t.P.Value {
			continue
		}
		if object != nil && !rdf.TermEqual(object, t.O) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// BlankNodes returns the distinct blank nodes used as subject or object.
func (s *Store) BlankNodes() []rdf.BlankNode {
	if s == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var out []rdf.BlankNode
	visit := func(term rdf.Term) {
		blank, ok := term.(rdf.BlankNode)
		if !ok {
			return
		}
		if _, dup := seen[blank.ID]; dup {
			return
		}
		seen[blank.ID] = struct{}{}
		out = append(out, blank)
	}
	for _, t := range s.triples {
		visit(t.S)
		visit(t.O)
	}
	return out
}
