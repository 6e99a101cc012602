package rdfnav

import (
	"fmt"
	"iter"
)

// Navigator is the entry point for navigating a Graph. It is cheap to
// create, never mutated itself, and hands out NodeRefs for chained
// traversal.
type Navigator struct {
	g Graph
}

// NewNavigator returns a Navigator over g.
func NewNavigator(g Graph) *Navigator {
	return &Navigator{g: g}
}

// Graph returns the underlying store.
func (v *Navigator) Graph() Graph { return v.g }

// Node returns a handle on the given node without consulting the store.
// The term must be an IRI or blank node.
func (v *Navigator) Node(id Term) (*NodeRef, error) {
	return NewNodeRef(v.g, id)
}

// Subjects returns every node that appears as subject of a (subject, p, o)
// statement.
func (v *Navigator) Subjects(p IRI, o Term) iter.Seq[*NodeRef] {
	return func(yield func(*NodeRef) bool) {
		for t := range v.g.Match(nil, p, o) {
			if t.S == nil || t.S.Kind() == TermLiteral {
				continue
			}
			if !yield(&NodeRef{g: v.g, id: t.S}) {
				return
			}
		}
	}
}

// Subject returns the single node matching (subject, p, o), or a
// *CardinalityError when none or several match.
func (v *Navigator) Subject(p IRI, o Term) (*NodeRef, error) {
	return exactlyOne(v.Subjects(p, o), func(multiple bool) *CardinalityError {
		return &CardinalityError{
			Role:     "subject",
			Pattern:  fmt.Sprintf("<%s> %s", p.Value, termString(o)),
			Multiple: multiple,
		}
	})
}

// Instances returns every node with a direct rdf:type edge to class.
func (v *Navigator) Instances(class IRI) iter.Seq[*NodeRef] {
	return v.Subjects(RDFType, class)
}

// Instance returns the single instance of class, or a *CardinalityError.
func (v *Navigator) Instance(class IRI) (*NodeRef, error) {
	return v.Subject(RDFType, class)
}

// querier narrows the store to its query engine, or fails when it has none.
func (v *Navigator) querier() (Querier, error) {
	q, ok := v.g.(Querier)
	if !ok {
		return nil, ErrQueryUnsupported
	}
	return q, nil
}

// Ask executes a boolean query against the store's engine. The query text
// must be an ASK form; a mismatch is reported by the engine, not here.
func (v *Navigator) Ask(query string, bindings Bindings) (bool, error) {
	q, err := v.querier()
	if err != nil {
		return false, err
	}
	return q.Ask(query, bindings)
}

// Select executes a tabular query against the store's engine.
func (v *Navigator) Select(query string, bindings Bindings) ([]Solution, error) {
	q, err := v.querier()
	if err != nil {
		return nil, err
	}
	return q.Select(query, bindings)
}

// Construct executes a graph-constructing query against the store's engine.
func (v *Navigator) Construct(query string, bindings Bindings) (Graph, error) {
	q, err := v.querier()
	if err != nil {
		return nil, err
	}
	return q.Construct(query, bindings)
}

// Describe executes a describing query against the store's engine.
func (v *Navigator) Describe(query string, bindings Bindings) (Graph, error) {
	q, err := v.querier()
	if err != nil {
		return nil, err
	}
	return q.Describe(query, bindings)
}
