package rdfnav

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadNTriples(t *testing.T) {
	input := `
# a comment
<http://example.org/s> <http://example.org/p> <http://example.org/o> .
_:b1 <http://example.org/p> "plain" .
<http://example.org/s> <http://example.org/q> "hi"@en .
<http://example.org/s> <http://example.org/r> "1"^^<http://www.w3.org/2001/XMLSchema#integer> .
<http://example.org/s> <http://example.org/t> "esc\"aped\nline" .
`
	g := NewMemoryGraph()
	if err := ReadNTriples(strings.NewReader(input), g); err != nil {
		t.Fatalf("read: %v", err)
	}
	if g.Len() != 5 {
		t.Fatalf("expected 5 triples, got %d", g.Len())
	}

	node := nodeRef(t, g, iri("http://example.org/s"))
	lang, err := node.LitObj(iri("http://example.org/q"))
	if err != nil {
		t.Fatalf("lang literal: %v", err)
	}
	if lang.Lexical != "hi" || lang.Lang != "en" {
		t.Fatalf("unexpected lang literal: %+v", lang)
	}
	typed, err := node.LitObj(iri("http://example.org/r"))
	if err != nil {
		t.Fatalf("typed literal: %v", err)
	}
	if typed.Datatype.Value != "http://www.w3.org/2001/XMLSchema#integer" {
		t.Fatalf("unexpected datatype: %s", typed.Datatype.Value)
	}
	escaped, err := node.LitObj(iri("http://example.org/t"))
	if err != nil {
		t.Fatalf("escaped literal: %v", err)
	}
	if escaped.Lexical != "esc\"aped\nline" {
		t.Fatalf("unexpected unescaped value: %q", escaped.Lexical)
	}
}

func TestReadNTriplesErrors(t *testing.T) {
	cases := map[string]string{
		"missing dot":      `<http://example.org/s> <http://example.org/p> <http://example.org/o>`,
		"literal subject":  `"lit" <http://example.org/p> <http://example.org/o> .`,
		"graph label":      `<http://example.org/s> <http://example.org/p> <http://example.org/o> <http://example.org/g> .`,
		"unterminated IRI": `<http://example.org/s> <http://example.org/p .`,
	}
	for name, input := range cases {
		g := NewMemoryGraph()
		if err := ReadNTriples(strings.NewReader(input), g); err == nil {
			t.Fatalf("%s: expected error for %q", name, input)
		}
	}
}

func TestWriteNTriplesRoundTrip(t *testing.T) {
	g := loadGraph(t, `
<http://example.org/s> <http://example.org/p> _:b1 .
_:b1 <http://example.org/q> "value"@en .
<http://example.org/s> <http://example.org/r> "1"^^<http://www.w3.org/2001/XMLSchema#integer> .
`)
	var buf bytes.Buffer
	if err := WriteNTriples(&buf, g); err != nil {
		t.Fatalf("write: %v", err)
	}

	reloaded := NewMemoryGraph()
	if err := ReadNTriples(&buf, reloaded); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if diff := cmp.Diff(tripleStrings(g), tripleStrings(reloaded)); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteNTriplesOfExtraction(t *testing.T) {
	g := loadGraph(t, reportFixture)
	node := nodeRef(t, g, iri("http://example.org/Result1"))

	var buf bytes.Buffer
	if err := WriteNTriples(&buf, node.CBD()); err != nil {
		t.Fatalf("write cbd: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<http://example.org/Result1> <http://www.w3.org/ns/shacl#resultMessage> \"bad value\" .") {
		t.Fatalf("missing statement in output:\n%s", out)
	}
	if strings.Contains(out, "ValidationReport") {
		t.Fatalf("CBD output leaked unrelated statements:\n%s", out)
	}
}
