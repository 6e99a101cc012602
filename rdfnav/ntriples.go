package rdfnav

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadNTriples parses N-Triples from r and inserts every statement into g.
// Blank lines and '#' comments are skipped. Graph labels are rejected;
// this is a triples-only store.
func ReadNTriples(r io.Reader, g Graph) error {
	reader := bufio.NewReader(r)
	for {
		line, err := readLine(reader)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		triple, graph, err := parseStatementLine(line)
		if err != nil {
			return err
		}
		if graph != nil {
			return fmt.Errorf("ntriples: graph term not allowed in N-Triples")
		}
		if err := g.Insert(triple); err != nil {
			return err
		}
	}
}

// WriteNTriples writes every statement of g to w in N-Triples syntax, in
// the store's iteration order.
func WriteNTriples(w io.Writer, g Graph) error {
	writer := bufio.NewWriter(w)
	for t := range g.Match(nil, nil, nil) {
		if t.IsZero() {
			continue
		}
		line := renderTerm(t.S) + " " + renderIRI(t.P) + " " + renderTerm(t.O) + " .\n"
		if _, err := writer.WriteString(line); err != nil {
			return err
		}
	}
	return writer.Flush()
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && len(line) > 0 {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

// parseStatementLine parses one N-Triples or N-Quads statement line. The
// returned graph term is nil for triples; callers that only accept the
// default graph check it.
func parseStatementLine(line string) (Triple, Term, error) {
	cursor := &ntCursor{input: line}
	subject, err := cursor.parseTerm(false)
	if err != nil {
		return Triple{}, nil, err
	}
	predicate, err := cursor.parseIRI()
	if err != nil {
		return Triple{}, nil, err
	}
	object, err := cursor.parseTerm(true)
	if err != nil {
		return Triple{}, nil, err
	}
	graph := cursor.parseOptionalTerm()
	cursor.skipWS()
	if !cursor.consume('.') {
		return Triple{}, nil, cursor.errorf("expected '.' at end of statement")
	}
	return Triple{S: subject, P: predicate, O: object}, graph, nil
}

type ntCursor struct {
	input string
	pos   int
}

func (c *ntCursor) skipWS() {
	for c.pos < len(c.input) {
		switch c.input[c.pos] {
		case ' ', '\t', '\r', '\n':
			c.pos++
		default:
			return
		}
	}
}

func (c *ntCursor) consume(ch byte) bool {
	c.skipWS()
	if c.pos < len(c.input) && c.input[c.pos] == ch {
		c.pos++
		return true
	}
	return false
}

func (c *ntCursor) parseOptionalTerm() Term {
	c.skipWS()
	if c.pos >= len(c.input) || c.input[c.pos] == '.' {
		return nil
	}
	term, _ := c.parseTerm(false)
	return term
}

func (c *ntCursor) parseTerm(allowLiteral bool) (Term, error) {
	c.skipWS()
	if c.pos >= len(c.input) {
		return nil, c.errorf("unexpected end of line")
	}
	switch {
	case c.input[c.pos] == '<':
		iri, err := c.parseIRI()
		return iri, err
	case strings.HasPrefix(c.input[c.pos:], "_:"):
		return c.parseBlankNode()
	case c.input[c.pos] == '"':
		if !allowLiteral {
			return nil, c.errorf("literal not allowed here")
		}
		return c.parseLiteral()
	default:
		return nil, c.errorf("unexpected token")
	}
}

func (c *ntCursor) parseIRI() (IRI, error) {
	c.skipWS()
	if !c.consume('<') {
		return IRI{}, c.errorf("expected IRI")
	}
	start := c.pos
	for c.pos < len(c.input) && c.input[c.pos] != '>' {
		c.pos++
	}
	if c.pos >= len(c.input) {
		return IRI{}, c.errorf("unterminated IRI")
	}
	value := c.input[start:c.pos]
	c.pos++
	return IRI{Value: value}, nil
}

func (c *ntCursor) parseBlankNode() (BlankNode, error) {
	c.skipWS()
	if !strings.HasPrefix(c.input[c.pos:], "_:") {
		return BlankNode{}, c.errorf("expected blank node")
	}
	c.pos += 2
	start := c.pos
	for c.pos < len(c.input) && !isTermDelimiter(c.input[c.pos]) {
		c.pos++
	}
	if start == c.pos {
		return BlankNode{}, c.errorf("blank node id missing")
	}
	return BlankNode{ID: c.input[start:c.pos]}, nil
}

func (c *ntCursor) parseLiteral() (Literal, error) {
	c.skipWS()
	if !c.consume('"') {
		return Literal{}, c.errorf("expected literal")
	}
	var builder strings.Builder
	for c.pos < len(c.input) {
		ch := c.input[c.pos]
		if ch == '"' {
			c.pos++
			break
		}
		if ch == '\\' {
			if c.pos+1 >= len(c.input) {
				return Literal{}, c.errorf("unterminated escape")
			}
			next := c.input[c.pos+1]
			switch next {
			case 'n':
				builder.WriteByte('\n')
			case 't':
				builder.WriteByte('\t')
			case 'r':
				builder.WriteByte('\r')
			case '"':
				builder.WriteByte('"')
			case '\\':
				builder.WriteByte('\\')
			default:
				builder.WriteByte(next)
			}
			c.pos += 2
			continue
		}
		builder.WriteByte(ch)
		c.pos++
	}
	lexical := builder.String()
	c.skipWS()
	if strings.HasPrefix(c.input[c.pos:], "@") {
		c.pos++
		start := c.pos
		for c.pos < len(c.input) && !isTermDelimiter(c.input[c.pos]) {
			c.pos++
		}
		return Literal{Lexical: lexical, Lang: c.input[start:c.pos]}, nil
	}
	if strings.HasPrefix(c.input[c.pos:], "^^") {
		c.pos += 2
		dt, err := c.parseIRI()
		if err != nil {
			return Literal{}, err
		}
		return Literal{Lexical: lexical, Datatype: dt}, nil
	}
	return Literal{Lexical: lexical}, nil
}

func (c *ntCursor) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("ntriples: "+format, args...)
}

func isTermDelimiter(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n', '.':
		return true
	default:
		return false
	}
}

func renderIRI(iri IRI) string {
	return "<" + iri.Value + ">"
}

func renderTerm(term Term) string {
	switch value := term.(type) {
	case IRI:
		return renderIRI(value)
	case BlankNode:
		return value.String()
	case Literal:
		if value.Lang != "" {
			return fmt.Sprintf("%q@%s", value.Lexical, value.Lang)
		}
		if value.Datatype.Value != "" {
			return fmt.Sprintf("%q^^%s", value.Lexical, renderIRI(value.Datatype))
		}
		return fmt.Sprintf("%q", value.Lexical)
	default:
		return ""
	}
}
