package graph

import (
	"errors"
	"fmt"

	"github.com/sdsc-ordes/catplus-converters/rdf"
)

// ErrUnexpectedTerm is returned when materialization meets a term it cannot
// rewrite.
var ErrUnexpectedTerm = errors.New("graph: unexpected term")

// MaterializeBlankNodes replaces every blank node _:L, in subject and object
// position, with the URI prefix+L. An empty prefix uses the allocator base.
// The store is rebuilt; on error it is left untouched. Materialization may
// happen once, before serialization.
func (b *Builder) MaterializeBlankNodes(prefix string) error {
	if b.state >= StateMaterialized {
		return fmt.Errorf("%w: materialize %s graph", ErrInvalidState, b.state)
	}
	if prefix == "" {
		prefix = b.alloc.Base()
	}

	rebuilt := NewStore()
	renamed := 0
	for _, t := range b.store.Triples() {
		subject, err := materializeTerm(t.S, prefix)
		if err != nil {
			return err
		}
		object, err := materializeTerm(t.O, prefix)
		if err != nil {
			return err
		}
		if subject != t.S || object != t.O {
			renamed++
		}
		rebuilt.Add(rdf.Triple{S: subject, P: t.P, O: object})
	}

	b.store = rebuilt
	b.state = StateMaterialized
	b.logger.Debug("materialized blank nodes", "prefix", prefix, "rewritten_triples", renamed)
	return nil
}

func materializeTerm(term rdf.Term, prefix string) (rdf.Term, error) {
	switch value := term.(type) {
	case rdf.BlankNode:
		return rdf.NewIRI(prefix + value.ID), nil
	case rdf.IRI, rdf.Literal:
		return value, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedTerm, term)
	}
}
