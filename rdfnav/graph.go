package rdfnav

import "iter"

// Graph is the storage collaborator navigated by this package. It is
// usually supplied by an existing storage engine; MemoryGraph is a small
// embeddable implementation.
//
// Match treats nil components as wildcards. The returned sequence is lazy
// and re-queries the store each time it is ranged over, so it reflects
// current store state rather than a snapshot. Iteration may be abandoned
// at any point.
type Graph interface {
	Match(s, p, o Term) iter.Seq[Triple]
	Insert(t Triple) error
	Remove(s, p, o Term) error
}

// Bindings maps query variable names (without leading '?') to pre-bound
// terms for query execution.
type Bindings map[string]Term

// Solution is one row of a tabular query result.
type Solution map[string]Term

// Querier is implemented by stores that can execute the four SPARQL read
// query forms. The caller must supply query text whose declared form
// matches the method invoked; a mismatch is reported by the engine
// (typically wrapping ErrQueryFormMismatch) and is not re-validated here.
type Querier interface {
	Ask(query string, bindings Bindings) (bool, error)
	Select(query string, bindings Bindings) ([]Solution, error)
	Construct(query string, bindings Bindings) (Graph, error)
	Describe(query string, bindings Bindings) (Graph, error)
}
