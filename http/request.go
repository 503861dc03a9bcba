package http

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrIncompleteRequest is reported when a request buffer cannot be decoded
// into a request head.
var ErrIncompleteRequest = errors.New("http: incomplete request data")

// headTerminator separates the request head from the body on the wire.
const headTerminator = "\r\n\r\n"

// RequestHeader is the parsed request line plus header fields. The method,
// path and version are carried as-is; nothing is validated against them.
// Later duplicate field keys overwrite earlier ones. The blank terminator
// line is never part of the header.
type RequestHeader struct {
	Method  string
	Path    string
	Version string
	Fields  map[string]string
}

// Request is a completed message: an immutable header plus body. Params is
// bound by the router when a pattern with :name segments matches.
type Request struct {
	Header RequestHeader
	Body   string
	Params map[string]string
}

// ParseRequest decodes a raw request buffer in a single pass: request line,
// header fields up to the CR LF CR LF terminator, then the body verbatim.
//
// A buffer without the terminator still parses; whatever fields were present
// are collected and the body is empty. Stray blank lines between the
// terminator and the body are skipped, matching the header scan which skips
// to the next non-blank before each field line.
func ParseRequest(raw []byte) (RequestHeader, string, error) {
	if !utf8.Valid(raw) {
		return RequestHeader{}, "", fmt.Errorf("%w: buffer is not valid text", ErrIncompleteRequest)
	}
	text := string(raw)

	head := text
	body := ""
	if i := strings.Index(text, headTerminator); i >= 0 {
		head = text[:i]
		body = strings.TrimLeft(text[i+len(headTerminator):], "\r\n")
	}

	lines := strings.Split(head, "\n")

	requestLine := strings.TrimRight(lines[0], "\r")
	tokens := strings.Fields(requestLine)
	if len(tokens) < 3 {
		return RequestHeader{}, "", fmt.Errorf("%w: malformed request line %q", ErrIncompleteRequest, requestLine)
	}

	header := RequestHeader{
		Method:  tokens[0],
		Path:    tokens[1],
		Version: tokens[2],
		Fields:  make(map[string]string),
	}

	for _, line := range lines[1:] {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}

		// Key runs up to the first space, trailing ':' dropped; the rest of
		// the line is the value.
		key, value, _ := strings.Cut(line, " ")
		header.Fields[strings.TrimSuffix(key, ":")] = value
	}

	return header, body, nil
}

// FieldValue looks up a header field by its exact key.
func (header *RequestHeader) FieldValue(key string) (string, bool) {
	value, found := header.Fields[key]
	return value, found
}
