package json

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax is reported for malformed tokens, unterminated structures and a
// bad top-level character.
var ErrSyntax = errors.New("json: syntax error")

// Parse decodes input into a Value. The top-level value must be an object or
// an array.
//
// The decoder is deliberately lenient: commas between entries are skipped
// like whitespace, so a missing separator does not fail the parse. String
// escape sequences are not decoded; a backslash only shields the next
// character from terminating the string. A bare null literal is not accepted.
func Parse(input string) (Value, error) {
	p := parser{input: input}

	p.skipSpace()
	if p.pos >= len(p.input) {
		return Value{}, fmt.Errorf("%w: empty document", ErrSyntax)
	}
	if c := p.input[p.pos]; c != '{' && c != '[' {
		return Value{}, fmt.Errorf("%w: document must start with '{' or '[', got %q", ErrSyntax, c)
	}

	return p.parseValue()
}

// parser is a cursor over an immutable input. No backtracking; every parse
// function leaves pos just past what it consumed.
type parser struct {
	input string
	pos   int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

// skipSeparators is skipSpace plus commas. Treating the comma as blank is
// what makes missing separators between entries tolerable.
func (p *parser) skipSeparators() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\r', '\n', ',':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) parseValue() (Value, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return Value{}, fmt.Errorf("%w: unexpected end of input", ErrSyntax)
	}

	switch p.input[p.pos] {
	case '{':
		return p.parseObject()
	case '[':
		return p.parseArray()
	case '"':
		s, err := p.parseString()
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	}

	if p.literal("true") {
		return Bool(true), nil
	}
	if p.literal("false") {
		return Bool(false), nil
	}

	return p.parseNumber()
}

func (p *parser) parseObject() (Value, error) {
	p.pos++ // consume '{'
	fields := make(map[string]Value)

	for {
		p.skipSeparators()
		if p.pos >= len(p.input) {
			return Value{}, fmt.Errorf("%w: unterminated object", ErrSyntax)
		}
		if p.input[p.pos] == '}' {
			p.pos++
			return Object(fields), nil
		}

		if p.input[p.pos] != '"' {
			return Value{}, fmt.Errorf("%w: object key must be a quoted string", ErrSyntax)
		}
		key, err := p.parseString()
		if err != nil {
			return Value{}, err
		}

		p.skipSpace()
		if p.pos >= len(p.input) || p.input[p.pos] != ':' {
			return Value{}, fmt.Errorf("%w: expected ':' after object key %q", ErrSyntax, key)
		}
		p.pos++

		value, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}

		// Duplicate keys: later entry wins.
		fields[key] = value
	}
}

func (p *parser) parseArray() (Value, error) {
	p.pos++ // consume '['
	items := make([]Value, 0)

	for {
		p.skipSeparators()
		if p.pos >= len(p.input) {
			return Value{}, fmt.Errorf("%w: unterminated array", ErrSyntax)
		}
		if p.input[p.pos] == ']' {
			p.pos++
			return Array(items...), nil
		}

		item, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}
}

// parseString scans to the closing quote. A backslash shields the following
// character from ending the string, but escape sequences are kept verbatim.
func (p *parser) parseString() (string, error) {
	start := p.pos + 1 // past opening quote

	for i := start; i < len(p.input); i++ {
		switch p.input[i] {
		case '\\':
			i++
		case '"':
			p.pos = i + 1
			return p.input[start:i], nil
		}
	}

	return "", fmt.Errorf("%w: unterminated string", ErrSyntax)
}

// parseNumber accumulates until a delimiter and picks Int or Float by the
// presence of a decimal point. Exponents are not supported.
func (p *parser) parseNumber() (Value, error) {
	start := p.pos
	for p.pos < len(p.input) {
		if c := p.input[p.pos]; c == ',' || c == ']' || c == '}' {
			break
		}
		p.pos++
	}

	span := strings.TrimSpace(p.input[start:p.pos])
	if span == "" {
		return Value{}, fmt.Errorf("%w: expected a value", ErrSyntax)
	}

	if strings.Contains(span, ".") {
		f, err := strconv.ParseFloat(span, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: invalid number %q", ErrSyntax, span)
		}
		return Float(f), nil
	}

	i, err := strconv.ParseInt(span, 10, 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: invalid token %q", ErrSyntax, span)
	}
	return Int(i), nil
}

// literal consumes lit when the input continues with it.
func (p *parser) literal(lit string) bool {
	if strings.HasPrefix(p.input[p.pos:], lit) {
		p.pos += len(lit)
		return true
	}
	return false
}
