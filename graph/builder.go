package graph

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sdsc-ordes/catplus-converters/rdf"
	"github.com/sdsc-ordes/catplus-converters/vocab"
)

// Strategy selects the kind of node created for values without an explicit
// identity.
type Strategy int

const (
	// StrategyBlankNode gives every new node a fresh blank node.
	StrategyBlankNode Strategy = iota
	// StrategyURI gives every new node a fresh URI under the allocator base.
	StrategyURI
)

func (s Strategy) String() string {
	switch s {
	case StrategyBlankNode:
		return "blank"
	case StrategyURI:
		return "uri"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy accepts "blank" (or "bnode") and "uri" (or "iri").
func ParseStrategy(value string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "blank", "bnode", "blank-node":
		return StrategyBlankNode, nil
	case "uri", "iri":
		return StrategyURI, nil
	default:
		return 0, fmt.Errorf("graph: unknown node strategy %q", value)
	}
}

// State is the builder lifecycle position. Transitions only move forward.
type State int

const (
	StateEmpty State = iota
	StatePopulated
	StateMaterialized
	StateSerialized
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePopulated:
		return "populated"
	case StateMaterialized:
		return "materialized"
	case StateSerialized:
		return "serialized"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrInvalidState is returned when an operation is not allowed in the
// builder's current state.
var ErrInvalidState = errors.New("graph: invalid builder state")

// Builder owns one graph for one conversion. It is not safe for concurrent use.
type Builder struct {
	store    *Store
	strategy Strategy
	alloc    *Allocator
	logger   *slog.Logger
	prefixes map[string]string
	state    State
}

// Option configures a Builder.
type Option func(*Builder)

// WithAllocator sets the node allocator.
func WithAllocator(a *Allocator) Option {
	return func(b *Builder) {
		if a != nil {
			b.alloc = a
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithPrefixes replaces the prefix table used by the serializers.
func WithPrefixes(prefixes map[string]string) Option {
	return func(b *Builder) {
		b.prefixes = prefixes
	}
}

// NewBuilder returns an empty builder.
func NewBuilder(strategy Strategy, opts ...Option) *Builder {
	b := &Builder{
		store:    NewStore(),
		strategy: strategy,
		alloc:    NewAllocator(""),
		logger:   slog.Default(),
		prefixes: vocab.Prefixes(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Insert projects root into the graph. The root node is the value's own URI
// if it has one, else a fresh node per the strategy.
func (b *Builder) Insert(root Value) error {
	if b.state >= StateMaterialized {
		return fmt.Errorf("%w: insert into %s graph", ErrInvalidState, b.state)
	}
	if root == nil {
		return nil
	}
	subject := b.NodeFor(root)
	before := b.store.Len()
	if err := root.InsertInto(b, subject); err != nil {
		return err
	}
	b.state = StatePopulated
	b.logger.Debug("inserted value",
		"root", subject.String(),
		"type", fmt.Sprintf("%T", root),
		"triples", b.store.Len()-before)
	return nil
}

// Add emits one triple. It panics with a *ProtocolViolation if a term is
// missing, the subject is a literal or a term is a quoted triple.
func (b *Builder) Add(subject rdf.Term, predicate rdf.IRI, object rdf.Term) {
	if subject == nil || object == nil || predicate.Value == "" {
		panic(&ProtocolViolation{Op: "add", Reason: "incomplete triple"})
	}
	if rdf.IsQuoted(subject) {
		panic(&ProtocolViolation{Op: "add", Term: subject, Reason: "quoted triple subject"})
	}
	if rdf.IsQuoted(object) {
		panic(&ProtocolViolation{Op: "add", Term: object, Reason: "quoted triple object"})
	}
	if subject.Kind() == rdf.TermLiteral {
		panic(&ProtocolViolation{Op: "add", Term: subject, Reason: "literal subject"})
	}
	b.store.Add(rdf.Triple{S: subject, P: predicate, O: object})
	if b.state == StateEmpty {
		b.state = StatePopulated
	}
}

// NodeFor returns the node v should live at: its own URI when it picks one,
// else a fresh node per the strategy.
func (b *Builder) NodeFor(v Value) rdf.Term {
	if id, ok := v.(Identifier); ok {
		if iri, ok := id.NodeURI(); ok {
			return iri
		}
	}
	return b.alloc.Fresh(b.strategy)
}

// Graph returns the underlying store.
func (b *Builder) Graph() *Store { return b.store }

// State returns the lifecycle state.
func (b *Builder) State() State { return b.state }

// Strategy returns the node strategy.
func (b *Builder) Strategy() Strategy { return b.strategy }

// Allocator returns the node allocator.
func (b *Builder) Allocator() *Allocator { return b.alloc }

// SerializeTurtle renders the graph as pretty Turtle.
func (b *Builder) SerializeTurtle() (string, error) {
	return b.Serialize(rdf.FormatTurtle)
}

// SerializeJSONLD renders the graph as compacted JSON-LD.
func (b *Builder) SerializeJSONLD() (string, error) {
	return b.Serialize(rdf.FormatJSONLD)
}

// Serialize renders the graph in format with the builder's prefix table.
// Once serialized, the graph is read-only.
func (b *Builder) Serialize(format rdf.Format) (string, error) {
	var buf bytes.Buffer
	if err := rdf.Encode(&buf, format, b.store.Triples(), b.prefixes); err != nil {
		return "", fmt.Errorf("serialize %s: %w", format, err)
	}
	b.state = StateSerialized
	b.logger.Debug("serialized graph", "format", string(format), "triples", b.store.Len(), "bytes", buf.Len())
	return buf.String(), nil
}
