package rdfnav

import (
	"iter"

	"github.com/tidwall/btree"
)

// MemoryGraph is an in-memory triple store with set semantics, indexed for
// subject-bound and object-bound pattern matching.
//
// It adds no locking: concurrent mutation requires external coordination
// (single-writer discipline). It implements Graph but not Querier.
type MemoryGraph struct {
	spo *btree.BTreeG[Triple] // ordered by (S, P, O)
	ops *btree.BTreeG[Triple] // ordered by (O, P, S)
}

// NewMemoryGraph returns an empty MemoryGraph.
func NewMemoryGraph() *MemoryGraph {
	return &MemoryGraph{
		spo: btree.NewBTreeG[Triple](lessSPO),
		ops: btree.NewBTreeG[Triple](lessOPS),
	}
}

func lessSPO(a, b Triple) bool {
	if ka, kb := termKey(a.S), termKey(b.S); ka != kb {
		return ka < kb
	}
	if a.P.Value != b.P.Value {
		return a.P.Value < b.P.Value
	}
	return termKey(a.O) < termKey(b.O)
}

func lessOPS(a, b Triple) bool {
	if ka, kb := termKey(a.O), termKey(b.O); ka != kb {
		return ka < kb
	}
	if a.P.Value != b.P.Value {
		return a.P.Value < b.P.Value
	}
	return termKey(a.S) < termKey(b.S)
}

// Len returns the number of stored triples.
func (g *MemoryGraph) Len() int { return g.spo.Len() }

// Insert adds a triple. Inserting an already present triple is a no-op.
// The subject must be an IRI or blank node and the predicate a non-zero
// IRI; violations return a *TypeMismatchError.
func (g *MemoryGraph) Insert(t Triple) error {
	if t.S == nil || t.S.Kind() == TermLiteral {
		return &TypeMismatchError{Op: "insert", Term: t.S, Want: "IRI or blank node subject"}
	}
	if t.P.IsZero() {
		return errPredicate("insert")
	}
	if t.O == nil {
		return &TypeMismatchError{Op: "insert", Want: "object term"}
	}
	g.spo.Set(t)
	g.ops.Set(t)
	return nil
}

// Remove deletes every triple matching the pattern; nil components are
// wildcards. Removing with no match is a no-op.
func (g *MemoryGraph) Remove(s, p, o Term) error {
	// Materialize first; deleting while scanning the same tree is undefined.
	var doomed []Triple
	for t := range g.Match(s, p, o) {
		doomed = append(doomed, t)
	}
	for _, t := range doomed {
		g.spo.Delete(t)
		g.ops.Delete(t)
	}
	return nil
}

// Match returns the lazy sequence of triples matching the pattern; nil
// components are wildcards. The sequence re-queries the index on every
// iteration. The store must not be mutated while a Match sequence is being
// consumed.
func (g *MemoryGraph) Match(s, p, o Term) iter.Seq[Triple] {
	pred, predBound := boundPredicate(p)
	switch {
	case s != nil:
		return func(yield func(Triple) bool) {
			g.spo.Ascend(Triple{S: s}, func(t Triple) bool {
				if !SameTerm(t.S, s) {
					return false
				}
				if predBound && t.P.Value != pred.Value {
					return true
				}
				if o != nil && !SameTerm(t.O, o) {
					return true
				}
				return yield(t)
			})
		}
	case o != nil:
		return func(yield func(Triple) bool) {
			g.ops.Ascend(Triple{O: o}, func(t Triple) bool {
				if !SameTerm(t.O, o) {
					return false
				}
				if predBound && t.P.Value != pred.Value {
					return true
				}
				return yield(t)
			})
		}
	default:
		return func(yield func(Triple) bool) {
			g.spo.Scan(func(t Triple) bool {
				if predBound && t.P.Value != pred.Value {
					return true
				}
				return yield(t)
			})
		}
	}
}

// boundPredicate interprets a pattern component in predicate position.
// A nil term or zero IRI is a wildcard; any other non-IRI term matches
// nothing, which is handled by returning an impossible bound value.
func boundPredicate(p Term) (IRI, bool) {
	if p == nil {
		return IRI{}, false
	}
	iri, ok := p.(IRI)
	if !ok {
		// Predicates are always IRIs; a literal or blank node here can
		// never match. "\x00" is not a valid IRI so nothing carries it.
		return IRI{Value: "\x00"}, true
	}
	if iri.IsZero() {
		return IRI{}, false
	}
	return iri, true
}

// Triples returns all stored triples in SPO index order.
func (g *MemoryGraph) Triples() iter.Seq[Triple] {
	return g.Match(nil, nil, nil)
}
