package rdfnav

import (
	"errors"
	"fmt"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeCardinalityNone indicates a singular accessor found no match.
	ErrCodeCardinalityNone ErrorCode = "CARDINALITY_NONE"
	// ErrCodeCardinalityMultiple indicates a singular accessor found more than one match.
	ErrCodeCardinalityMultiple ErrorCode = "CARDINALITY_MULTIPLE"
	// ErrCodeTypeMismatch indicates a term of the wrong kind was supplied.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
	// ErrCodeQueryFormMismatch indicates the query text did not match the invoked query form.
	ErrCodeQueryFormMismatch ErrorCode = "QUERY_FORM_MISMATCH"
	// ErrCodeQueryUnsupported indicates the underlying store has no query engine.
	ErrCodeQueryUnsupported ErrorCode = "QUERY_UNSUPPORTED"
	// ErrCodeStore indicates an error originating in the underlying store.
	ErrCodeStore ErrorCode = "STORE_ERROR"
)

var (
	// ErrAbsent indicates that a singular accessor matched no statement.
	ErrAbsent = errors.New("rdfnav: no matching statement")
	// ErrNotUnique indicates that a singular accessor matched more than one statement.
	ErrNotUnique = errors.New("rdfnav: multiple matching statements")
	// ErrQueryUnsupported indicates the underlying graph does not implement Querier.
	ErrQueryUnsupported = errors.New("rdfnav: graph does not support query execution")
	// ErrQueryFormMismatch is wrapped by query engines when executed query
	// text does not match the requested form (e.g. a SELECT passed to Ask).
	// It is surfaced here, never generated.
	ErrQueryFormMismatch = errors.New("rdfnav: query form does not match invocation")
)

// Code returns the error code for an error. Returns the empty string for
// nil errors.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}

	var card *CardinalityError
	if errors.As(err, &card) {
		if card.Multiple {
			return ErrCodeCardinalityMultiple
		}
		return ErrCodeCardinalityNone
	}

	var mismatch *TypeMismatchError
	if errors.As(err, &mismatch) {
		return ErrCodeTypeMismatch
	}

	switch {
	case errors.Is(err, ErrAbsent):
		return ErrCodeCardinalityNone
	case errors.Is(err, ErrNotUnique):
		return ErrCodeCardinalityMultiple
	case errors.Is(err, ErrQueryFormMismatch):
		return ErrCodeQueryFormMismatch
	case errors.Is(err, ErrQueryUnsupported):
		return ErrCodeQueryUnsupported
	}

	// Anything else comes from the store and propagates unchanged.
	return ErrCodeStore
}

// CardinalityError reports that a singular accessor found zero or multiple
// matches for its pattern.
type CardinalityError struct {
	// Role names the traversal that failed (e.g. "object", "subject").
	Role string
	// Node is the node the traversal started from, if any.
	Node Term
	// Predicate is the edge label that was followed, if any.
	Predicate IRI
	// Pattern describes the match pattern for whole-graph lookups.
	Pattern string
	// Multiple distinguishes "more than one" from "none".
	Multiple bool
}

func (e *CardinalityError) Error() string {
	what := "not found"
	if e.Multiple {
		what = "not unique"
	}
	where := e.Pattern
	if where == "" {
		where = fmt.Sprintf("%s <%s>", termString(e.Node), e.Predicate.Value)
	}
	return fmt.Sprintf("rdfnav: %s %s for %s", e.Role, what, where)
}

// Unwrap returns ErrAbsent or ErrNotUnique depending on the count class.
func (e *CardinalityError) Unwrap() error {
	if e.Multiple {
		return ErrNotUnique
	}
	return ErrAbsent
}

// TypeMismatchError reports that a term of the wrong kind was supplied,
// e.g. a zero IRI where a predicate is required or a nil object.
type TypeMismatchError struct {
	// Op is the operation that rejected the term.
	Op string
	// Term is the offending term; nil when a required term was missing.
	Term Term
	// Want describes the expected kind.
	Want string
}

func (e *TypeMismatchError) Error() string {
	if e.Term == nil {
		return fmt.Sprintf("rdfnav: %s: missing term, want %s", e.Op, e.Want)
	}
	return fmt.Sprintf("rdfnav: %s: %s is not a %s", e.Op, e.Term.String(), e.Want)
}

// errPredicate builds the rejection for a zero-valued predicate IRI.
func errPredicate(op string) error {
	return &TypeMismatchError{Op: op, Want: "predicate IRI"}
}
