package rdfnav

// CBD returns the concise bounded description of this node as a fresh
// MemoryGraph: every statement with this node as subject, plus recursively
// every statement whose subject is a blank node reached in object
// position. The closure stops at named nodes. Visited blank nodes are
// tracked, so cyclic blank-node structures terminate and each statement
// appears exactly once.
func (n *NodeRef) CBD() *MemoryGraph {
	out := NewMemoryGraph()
	visited := map[string]bool{termKey(n.id): true}
	n.describeInto(out, visited, n.id, false)
	return out
}

// Subgraph returns the transitive closure of this node's description over
// all reachable reference objects, named nodes included. It is a superset
// of CBD in general. Visited nodes are tracked, so cycles through named
// nodes terminate.
func (n *NodeRef) Subgraph() *MemoryGraph {
	out := NewMemoryGraph()
	visited := map[string]bool{termKey(n.id): true}
	n.describeInto(out, visited, n.id, true)
	return out
}

// describeInto copies subj's outgoing statements into out and recurses
// into object nodes: blank nodes only for CBD, every reference object when
// followAll is set.
func (n *NodeRef) describeInto(out *MemoryGraph, visited map[string]bool, subj Term, followAll bool) {
	var next []Term
	for t := range n.g.Match(subj, nil, nil) {
		_ = out.Insert(t)
		if t.O == nil || t.O.Kind() == TermLiteral {
			continue
		}
		if !followAll && t.O.Kind() != TermBlankNode {
			continue
		}
		if key := termKey(t.O); !visited[key] {
			visited[key] = true
			next = append(next, t.O)
		}
	}
	for _, obj := range next {
		n.describeInto(out, visited, obj, followAll)
	}
}
