package http

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/gritframe/grit/json"
)

// Response is a mutable builder filled in by a handler and serialized
// exactly once.
type Response struct {
	Status      int
	ContentType string
	Body        string
	Headers     map[string]string
}

func NewResponse() *Response {
	return &Response{
		Status:      StatusOK,
		ContentType: "text/html",
		Headers:     make(map[string]string),
	}
}

func (res *Response) WithStatus(status int) *Response {
	res.Status = status
	return res
}

func (res *Response) WithText(body string) *Response {
	res.ContentType = "text/plain"
	res.Body = body
	return res
}

func (res *Response) WithHTML(body string) *Response {
	res.ContentType = "text/html"
	res.Body = body
	return res
}

// WithJSON formats value with the json codec and sets the body. Formatting
// fails only for a Value outside the recognized variants.
func (res *Response) WithJSON(value json.Value) error {
	body, err := json.Format(value)
	if err != nil {
		return err
	}

	res.ContentType = "application/json"
	res.Body = body
	return nil
}

func (res *Response) WithHeader(key, value string) *Response {
	res.Headers[key] = value
	return res
}

// Render serializes the response: status line, Content-Type, Content-Length,
// extra headers in sorted order, a blank line, then the body verbatim. The
// version is always rendered as HTTP/1.1 regardless of what the request
// carried.
func (res *Response) Render() []byte {
	var b bytes.Buffer

	fmt.Fprintf(&b, "HTTP/1.1 %d %s\n", res.Status, ReasonPhrase(res.Status))
	fmt.Fprintf(&b, "Content-Type: %s\n", res.ContentType)
	fmt.Fprintf(&b, "Content-Length: %d\n", len(res.Body))
	keys := make([]string, 0, len(res.Headers))
	for key := range res.Headers {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		fmt.Fprintf(&b, "%s: %s\n", key, res.Headers[key])
	}
	b.WriteByte('\n')
	b.WriteString(res.Body)

	return b.Bytes()
}
