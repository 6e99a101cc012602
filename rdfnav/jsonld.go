package rdfnav

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	ld "github.com/piprate/json-gold/ld"
)

// ReadJSONLD parses a JSON-LD document from r and inserts its default-graph
// statements into g. Named-graph statements are skipped; this is a
// triples-only store.
//
// The document is converted through the JSON-LD processor's ToRDF and the
// resulting dataset is re-read as N-Quads.
func ReadJSONLD(r io.Reader, g Graph) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("jsonld: %w", err)
	}

	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")
	result, err := proc.ToRDF(doc, opts)
	if err != nil {
		return err
	}
	dataset, ok := result.(*ld.RDFDataset)
	if !ok {
		return fmt.Errorf("jsonld: unexpected ToRDF result %T", result)
	}
	serializer := &ld.NQuadRDFSerializer{}
	serialized, err := serializer.Serialize(dataset)
	if err != nil {
		return err
	}
	nquads, ok := serialized.(string)
	if !ok {
		return fmt.Errorf("jsonld: unexpected N-Quads result %T", serialized)
	}

	for _, line := range strings.Split(nquads, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		triple, graph, err := parseStatementLine(line)
		if err != nil {
			return err
		}
		if graph != nil {
			continue // named graph; only the default graph is loaded
		}
		if err := g.Insert(triple); err != nil {
			return err
		}
	}
	return nil
}
