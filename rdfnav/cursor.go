package rdfnav

import "iter"

// NodeRef is a revisitable handle on one node (IRI or blank node) within a
// Graph. It owns no statements; every traversal method consults the store
// on demand. Two NodeRefs on the same identifier are interchangeable.
type NodeRef struct {
	g  Graph
	id Term
}

// NewNodeRef returns a handle on the given node. The term must be an IRI
// or a blank node; literals have no outgoing edges and cannot be navigated.
func NewNodeRef(g Graph, id Term) (*NodeRef, error) {
	if id == nil || id.Kind() == TermLiteral {
		return nil, &TypeMismatchError{Op: "node ref", Term: id, Want: "IRI or blank node"}
	}
	return &NodeRef{g: g, id: id}, nil
}

// Term returns the node's identifier term.
func (n *NodeRef) Term() Term { return n.id }

// IRI returns the node identifier and true when the node is a named node.
func (n *NodeRef) IRI() (IRI, bool) {
	iri, ok := n.id.(IRI)
	return iri, ok
}

// String returns the identifier in term syntax.
func (n *NodeRef) String() string { return n.id.String() }

// LocalName returns the short name of the node: the IRI fragment after the
// last '#' or '/', or the blank node id.
func (n *NodeRef) LocalName() string {
	switch v := n.id.(type) {
	case IRI:
		return v.LocalName()
	case BlankNode:
		return v.ID
	default:
		return n.id.String()
	}
}

// Equal reports whether both refs identify the same node. Identity is the
// identifier value, not the handle.
func (n *NodeRef) Equal(other *NodeRef) bool {
	return other != nil && SameTerm(n.id, other.id)
}

// exactlyOne consumes at most two elements of seq. Zero elements yield the
// "absent" class of mk's error, two or more the "not unique" class.
func exactlyOne[T any](seq iter.Seq[T], mk func(multiple bool) *CardinalityError) (T, error) {
	var first T
	count := 0
	for v := range seq {
		count++
		if count == 1 {
			first = v
			continue
		}
		break
	}
	if count == 1 {
		return first, nil
	}
	var zero T
	return zero, mk(count > 1)
}

func (n *NodeRef) cardErr(role string, p IRI) func(bool) *CardinalityError {
	return func(multiple bool) *CardinalityError {
		return &CardinalityError{Role: role, Node: n.id, Predicate: p, Multiple: multiple}
	}
}

// RefObjs returns the nodes reachable from this node forward via p.
// Literal objects are silently excluded. A zero predicate acts as a
// wildcard over all predicates.
func (n *NodeRef) RefObjs(p IRI) iter.Seq[*NodeRef] {
	return func(yield func(*NodeRef) bool) {
		for t := range n.g.Match(n.id, p, nil) {
			if t.O == nil || t.O.Kind() == TermLiteral {
				continue
			}
			if !yield(&NodeRef{g: n.g, id: t.O}) {
				return
			}
		}
	}
}

// RefObj returns the single node reachable forward via p, or a
// *CardinalityError when the edge is absent or not unique.
func (n *NodeRef) RefObj(p IRI) (*NodeRef, error) {
	return exactlyOne(n.RefObjs(p), n.cardErr("object", p))
}

// RefSubjs returns the nodes from which this node is reachable via p
// (reverse traversal: this node in object position).
func (n *NodeRef) RefSubjs(p IRI) iter.Seq[*NodeRef] {
	return func(yield func(*NodeRef) bool) {
		for t := range n.g.Match(nil, p, n.id) {
			if t.S == nil || t.S.Kind() == TermLiteral {
				continue
			}
			if !yield(&NodeRef{g: n.g, id: t.S}) {
				return
			}
		}
	}
}

// RefSubj returns the single node from which this node is reachable via p,
// or a *CardinalityError.
func (n *NodeRef) RefSubj(p IRI) (*NodeRef, error) {
	return exactlyOne(n.RefSubjs(p), n.cardErr("subject", p))
}

// LitObjs returns the literal objects of this node under p. Reference
// objects are excluded; LitObjs and RefObjs partition the object set.
func (n *NodeRef) LitObjs(p IRI) iter.Seq[Literal] {
	return func(yield func(Literal) bool) {
		for t := range n.g.Match(n.id, p, nil) {
			lit, ok := t.O.(Literal)
			if !ok {
				continue
			}
			if !yield(lit) {
				return
			}
		}
	}
}

// LitObj returns the single literal object under p, or a *CardinalityError.
func (n *NodeRef) LitObj(p IRI) (Literal, error) {
	return exactlyOne(n.LitObjs(p), n.cardErr("literal object", p))
}

// AllRefObjs returns every (predicate, node) pair among this node's
// reference objects, across all predicates.
func (n *NodeRef) AllRefObjs() iter.Seq2[IRI, *NodeRef] {
	return func(yield func(IRI, *NodeRef) bool) {
		for t := range n.g.Match(n.id, nil, nil) {
			if t.O == nil || t.O.Kind() == TermLiteral {
				continue
			}
			if !yield(t.P, &NodeRef{g: n.g, id: t.O}) {
				return
			}
		}
	}
}

// AllLitObjs returns every (predicate, literal) pair among this node's
// literal objects, across all predicates.
func (n *NodeRef) AllLitObjs() iter.Seq2[IRI, Literal] {
	return func(yield func(IRI, Literal) bool) {
		for t := range n.g.Match(n.id, nil, nil) {
			lit, ok := t.O.(Literal)
			if !ok {
				continue
			}
			if !yield(t.P, lit) {
				return
			}
		}
	}
}

// matchLongestPrefix returns the longest of the supplied prefixes that the
// IRI starts with. Longest-match keeps stripping unambiguous when prefixes
// overlap.
func matchLongestPrefix(iri IRI, prefixes []string) (string, bool) {
	best := ""
	found := false
	for _, prefix := range prefixes {
		if len(prefix) >= len(best) && len(prefix) <= len(iri.Value) && iri.Value[:len(prefix)] == prefix {
			best = prefix
			found = true
		}
	}
	return best, found
}

// RefObjsPrefix filters AllRefObjs to predicates whose IRI starts with one
// of the given prefixes (union over prefixes).
func (n *NodeRef) RefObjsPrefix(prefixes ...string) iter.Seq2[IRI, *NodeRef] {
	return func(yield func(IRI, *NodeRef) bool) {
		for p, ref := range n.AllRefObjs() {
			if _, ok := matchLongestPrefix(p, prefixes); !ok {
				continue
			}
			if !yield(p, ref) {
				return
			}
		}
	}
}

// RefObjsSansPrefix is RefObjsPrefix with the longest matching prefix
// stripped from each yielded predicate IRI, projecting a namespace into
// short keys.
func (n *NodeRef) RefObjsSansPrefix(prefixes ...string) iter.Seq2[string, *NodeRef] {
	return func(yield func(string, *NodeRef) bool) {
		for p, ref := range n.AllRefObjs() {
			prefix, ok := matchLongestPrefix(p, prefixes)
			if !ok {
				continue
			}
			if !yield(p.Value[len(prefix):], ref) {
				return
			}
		}
	}
}

// LitObjsPrefix filters AllLitObjs to predicates whose IRI starts with one
// of the given prefixes.
func (n *NodeRef) LitObjsPrefix(prefixes ...string) iter.Seq2[IRI, Literal] {
	return func(yield func(IRI, Literal) bool) {
		for p, lit := range n.AllLitObjs() {
			if _, ok := matchLongestPrefix(p, prefixes); !ok {
				continue
			}
			if !yield(p, lit) {
				return
			}
		}
	}
}

// LitObjsSansPrefix is LitObjsPrefix with the longest matching prefix
// stripped from each yielded predicate IRI.
func (n *NodeRef) LitObjsSansPrefix(prefixes ...string) iter.Seq2[string, Literal] {
	return func(yield func(string, Literal) bool) {
		for p, lit := range n.AllLitObjs() {
			prefix, ok := matchLongestPrefix(p, prefixes)
			if !ok {
				continue
			}
			if !yield(p.Value[len(prefix):], lit) {
				return
			}
		}
	}
}

// IsInstanceOf reports whether this node has a direct rdf:type edge to
// class, or reaches class from one of its types via rdfs:subClassOf
// triples present in the store. No reasoner is consulted; without
// subsumption triples this is a direct-membership check.
func (n *NodeRef) IsInstanceOf(class IRI) bool {
	for range n.g.Match(n.id, RDFType, class) {
		return true
	}
	visited := map[string]bool{}
	var queue []Term
	for t := range n.g.Match(n.id, RDFType, nil) {
		if t.O != nil && !visited[termKey(t.O)] {
			visited[termKey(t.O)] = true
			queue = append(queue, t.O)
		}
	}
	for len(queue) > 0 {
		typ := queue[0]
		queue = queue[1:]
		for t := range n.g.Match(typ, RDFSSubClassOf, nil) {
			if SameTerm(t.O, class) {
				return true
			}
			if t.O != nil && t.O.Kind() != TermLiteral && !visited[termKey(t.O)] {
				visited[termKey(t.O)] = true
				queue = append(queue, t.O)
			}
		}
	}
	return false
}

// Add inserts the statement (node, p, o).
func (n *NodeRef) Add(p IRI, o Term) error {
	if p.IsZero() {
		return errPredicate("add")
	}
	if o == nil {
		return &TypeMismatchError{Op: "add", Want: "object term"}
	}
	return n.g.Insert(Triple{S: n.id, P: p, O: o})
}

// Delete removes every statement (node, p, o); a nil object deletes every
// edge under p.
func (n *NodeRef) Delete(p IRI, o Term) error {
	if p.IsZero() {
		return errPredicate("delete")
	}
	return n.g.Remove(n.id, p, o)
}

// Replace deletes every edge under p and adds (node, p, o) as one logical
// step. No atomicity beyond the store's own guarantees.
func (n *NodeRef) Replace(p IRI, o Term) error {
	if p.IsZero() {
		return errPredicate("replace")
	}
	if o == nil {
		return &TypeMismatchError{Op: "replace", Want: "object term"}
	}
	if err := n.g.Remove(n.id, p, nil); err != nil {
		return err
	}
	return n.g.Insert(Triple{S: n.id, P: p, O: o})
}

// ChangeIRI rewrites every statement where this node appears as subject or
// object to use newIRI, then updates this ref's own identifier. Renaming a
// blank node to an IRI (skolemization) is allowed.
//
// The rewrite is not transactional: against a store whose mutations can
// fail, an error leaves some statements rewritten and the ref unchanged.
func (n *NodeRef) ChangeIRI(newIRI IRI) error {
	if newIRI.IsZero() {
		return &TypeMismatchError{Op: "change iri", Want: "IRI"}
	}
	var stmts []Triple
	for t := range n.g.Match(n.id, nil, nil) {
		stmts = append(stmts, t)
	}
	for t := range n.g.Match(nil, nil, n.id) {
		if SameTerm(t.S, n.id) {
			continue // already collected from the subject scan
		}
		stmts = append(stmts, t)
	}
	for _, t := range stmts {
		if err := n.g.Remove(t.S, t.P, t.O); err != nil {
			return err
		}
		rewritten := t
		if SameTerm(rewritten.S, n.id) {
			rewritten.S = newIRI
		}
		if SameTerm(rewritten.O, n.id) {
			rewritten.O = newIRI
		}
		if err := n.g.Insert(rewritten); err != nil {
			return err
		}
	}
	n.id = newIRI
	return nil
}
