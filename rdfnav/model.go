package rdfnav

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// TermKind identifies RDF term types.
type TermKind uint8

const (
	// TermIRI represents an IRI term.
	TermIRI TermKind = iota
	// TermBlankNode represents a blank node term.
	TermBlankNode
	// TermLiteral represents a literal term.
	TermLiteral
)

// Term is a value that can appear in RDF statements.
type Term interface {
	Kind() TermKind
	String() string
}

// IRI represents an RDF IRI. Values must be absolute IRIs; no relative-IRI
// resolution is performed anywhere in this package.
type IRI struct {
	// Value is the IRI string value.
	Value string
}

// Kind returns TermIRI.
func (i IRI) Kind() TermKind { return TermIRI }

// String returns the IRI value.
func (i IRI) String() string { return i.Value }

// IsZero reports whether the IRI has no value.
func (i IRI) IsZero() bool { return i.Value == "" }

// LocalName returns the fragment after the last '#' or '/' of the IRI,
// or the whole value when neither occurs.
func (i IRI) LocalName() string {
	if idx := strings.LastIndexAny(i.Value, "#/"); idx >= 0 && idx+1 < len(i.Value) {
		return i.Value[idx+1:]
	}
	return i.Value
}

// BlankNode represents an RDF blank node.
type BlankNode struct {
	// ID is the blank node identifier.
	ID string
}

// NewBlankNode returns a blank node with a fresh unique identifier.
func NewBlankNode() BlankNode {
	return BlankNode{ID: uuid.NewString()}
}

// Kind returns TermBlankNode.
func (b BlankNode) Kind() TermKind { return TermBlankNode }

// String returns the blank node identifier prefixed with "_:".
func (b BlankNode) String() string { return "_:" + b.ID }

// Literal represents an RDF literal.
type Literal struct {
	// Lexical is the lexical form of the literal.
	Lexical string
	// Datatype is the datatype IRI, if any.
	Datatype IRI
	// Lang is the language tag, if any.
	Lang string
}

// Kind returns TermLiteral.
func (l Literal) Kind() TermKind { return TermLiteral }

// String returns a string representation of the literal.
func (l Literal) String() string {
	if l.Lang != "" {
		return fmt.Sprintf("%q@%s", l.Lexical, l.Lang)
	}
	if l.Datatype.Value != "" {
		return fmt.Sprintf("%q^^<%s>", l.Lexical, l.Datatype.Value)
	}
	return fmt.Sprintf("%q", l.Lexical)
}

// Triple is an RDF statement (subject, predicate, object).
type Triple struct {
	// S is the subject; an IRI or BlankNode.
	S Term
	// P is the predicate.
	P IRI
	// O is the object; any term.
	O Term
}

// IsZero reports whether the triple has no subject/predicate/object.
func (t Triple) IsZero() bool {
	return t.S == nil && t.P.Value == "" && t.O == nil
}

// String returns "S P O ." in an N-Triples-like form.
func (t Triple) String() string {
	return fmt.Sprintf("%s <%s> %s .", termString(t.S), t.P.Value, termString(t.O))
}

func termString(t Term) string {
	if t == nil {
		return "_"
	}
	if iri, ok := t.(IRI); ok {
		return "<" + iri.Value + ">"
	}
	return t.String()
}

// SameTerm reports value equality between two terms. A nil term is equal
// only to nil.
func SameTerm(a, b Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case IRI:
		bv, ok := b.(IRI)
		return ok && av.Value == bv.Value
	case BlankNode:
		bv, ok := b.(BlankNode)
		return ok && av.ID == bv.ID
	case Literal:
		bv, ok := b.(Literal)
		return ok && av.Lexical == bv.Lexical && av.Lang == bv.Lang && av.Datatype.Value == bv.Datatype.Value
	default:
		return false
	}
}

// termKey returns a canonical ordering key for a term. Used by the store
// indexes and by visited-set tracking; the empty key sorts before every
// real term so that zero-valued pivots work as range lower bounds.
func termKey(t Term) string {
	if t == nil {
		return ""
	}
	switch v := t.(type) {
	case IRI:
		return "i" + v.Value
	case BlankNode:
		return "b" + v.ID
	case Literal:
		return "l" + v.Lexical + "\x00" + v.Lang + "\x00" + v.Datatype.Value
	default:
		return "?" + t.String()
	}
}
