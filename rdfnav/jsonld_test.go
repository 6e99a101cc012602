package rdfnav

import (
	"strings"
	"testing"
)

func TestReadJSONLD(t *testing.T) {
	doc := `{
	  "@id": "http://example.org/alice",
	  "@type": "http://xmlns.com/foaf/0.1/Person",
	  "http://xmlns.com/foaf/0.1/name": "Alice",
	  "http://xmlns.com/foaf/0.1/knows": {"@id": "http://example.org/bob"}
	}`
	g := NewMemoryGraph()
	if err := ReadJSONLD(strings.NewReader(doc), g); err != nil {
		t.Fatalf("read jsonld: %v", err)
	}

	nav := NewNavigator(g)
	alice, err := nav.Instance(iri("http://xmlns.com/foaf/0.1/Person"))
	if err != nil {
		t.Fatalf("instance: %v", err)
	}
	if alice.String() != "http://example.org/alice" {
		t.Fatalf("unexpected instance: %s", alice)
	}

	name, err := alice.LitObj(iri("http://xmlns.com/foaf/0.1/name"))
	if err != nil {
		t.Fatalf("name: %v", err)
	}
	if name.Lexical != "Alice" {
		t.Fatalf("unexpected name: %s", name.Lexical)
	}

	bob, err := alice.RefObj(iri("http://xmlns.com/foaf/0.1/knows"))
	if err != nil {
		t.Fatalf("knows: %v", err)
	}
	if bob.String() != "http://example.org/bob" {
		t.Fatalf("unexpected neighbor: %s", bob)
	}
}

func TestReadJSONLDRejectsMalformed(t *testing.T) {
	g := NewMemoryGraph()
	if err := ReadJSONLD(strings.NewReader("{not json"), g); err == nil {
		t.Fatal("expected error for malformed document")
	}
}
