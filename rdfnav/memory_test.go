package rdfnav

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func iri(s string) IRI { return IRI{Value: s} }

func mustInsert(t *testing.T, g Graph, s Term, p IRI, o Term) {
	t.Helper()
	if err := g.Insert(Triple{S: s, P: p, O: o}); err != nil {
		t.Fatalf("insert: %v", err)
	}
}

func tripleStrings(g Graph) []string {
	var out []string
	for tr := range g.Match(nil, nil, nil) {
		out = append(out, tr.String())
	}
	sort.Strings(out)
	return out
}

func TestMemoryGraphInsertDedupes(t *testing.T) {
	g := NewMemoryGraph()
	s := iri("http://example.org/s")
	p := iri("http://example.org/p")
	mustInsert(t, g, s, p, iri("http://example.org/o"))
	mustInsert(t, g, s, p, iri("http://example.org/o"))
	if g.Len() != 1 {
		t.Fatalf("expected set semantics, got %d triples", g.Len())
	}
}

func TestMemoryGraphInsertValidation(t *testing.T) {
	g := NewMemoryGraph()
	err := g.Insert(Triple{S: Literal{Lexical: "x"}, P: iri("http://example.org/p"), O: iri("http://example.org/o")})
	if Code(err) != ErrCodeTypeMismatch {
		t.Fatalf("literal subject: got %v", err)
	}
	err = g.Insert(Triple{S: iri("http://example.org/s"), O: iri("http://example.org/o")})
	if Code(err) != ErrCodeTypeMismatch {
		t.Fatalf("zero predicate: got %v", err)
	}
	err = g.Insert(Triple{S: iri("http://example.org/s"), P: iri("http://example.org/p")})
	if Code(err) != ErrCodeTypeMismatch {
		t.Fatalf("nil object: got %v", err)
	}
}

func TestMemoryGraphMatchPatterns(t *testing.T) {
	g := NewMemoryGraph()
	a := iri("http://example.org/a")
	b := iri("http://example.org/b")
	p := iri("http://example.org/p")
	q := iri("http://example.org/q")
	lit := Literal{Lexical: "v"}
	mustInsert(t, g, a, p, b)
	mustInsert(t, g, a, q, lit)
	mustInsert(t, g, b, p, a)

	count := func(s, pr, o Term) int {
		n := 0
		for range g.Match(s, pr, o) {
			n++
		}
		return n
	}

	if got := count(a, nil, nil); got != 2 {
		t.Fatalf("subject-bound: got %d", got)
	}
	if got := count(a, p, nil); got != 1 {
		t.Fatalf("subject+predicate: got %d", got)
	}
	if got := count(nil, nil, a); got != 1 {
		t.Fatalf("object-bound: got %d", got)
	}
	if got := count(nil, p, nil); got != 2 {
		t.Fatalf("predicate-bound: got %d", got)
	}
	if got := count(nil, nil, lit); got != 1 {
		t.Fatalf("literal object: got %d", got)
	}
	if got := count(nil, nil, nil); got != 3 {
		t.Fatalf("full scan: got %d", got)
	}
	if got := count(a, p, b); got != 1 {
		t.Fatalf("fully bound: got %d", got)
	}
	if got := count(b, q, nil); got != 0 {
		t.Fatalf("no match expected: got %d", got)
	}
	// A non-IRI term in predicate position can never match.
	if got := count(nil, lit, nil); got != 0 {
		t.Fatalf("literal predicate must match nothing: got %d", got)
	}
}

func TestMemoryGraphMatchIsLive(t *testing.T) {
	g := NewMemoryGraph()
	a := iri("http://example.org/a")
	p := iri("http://example.org/p")
	seq := g.Match(a, p, nil)

	n := 0
	for range seq {
		n++
	}
	if n != 0 {
		t.Fatalf("empty store: got %d", n)
	}

	mustInsert(t, g, a, p, iri("http://example.org/o"))
	n = 0
	for range seq {
		n++
	}
	if n != 1 {
		t.Fatalf("sequence must re-query the store: got %d", n)
	}
}

func TestMemoryGraphRemoveWildcard(t *testing.T) {
	g := NewMemoryGraph()
	a := iri("http://example.org/a")
	p := iri("http://example.org/p")
	q := iri("http://example.org/q")
	mustInsert(t, g, a, p, iri("http://example.org/o1"))
	mustInsert(t, g, a, p, iri("http://example.org/o2"))
	mustInsert(t, g, a, q, iri("http://example.org/o3"))

	if err := g.Remove(a, p, nil); err != nil {
		t.Fatalf("remove: %v", err)
	}
	want := []string{"<http://example.org/a> <http://example.org/q> <http://example.org/o3> ."}
	if diff := cmp.Diff(want, tripleStrings(g)); diff != "" {
		t.Fatalf("unexpected remainder (-want +got):\n%s", diff)
	}

	if err := g.Remove(nil, nil, nil); err != nil {
		t.Fatalf("remove all: %v", err)
	}
	if g.Len() != 0 {
		t.Fatalf("expected empty store, got %d", g.Len())
	}
}
