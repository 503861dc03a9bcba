package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gritframe/grit/json"
)

func TestRenderShape(t *testing.T) {
	t.Parallel()

	res := NewResponse().WithText("hello")
	res.WithHeader("X-Request-Id", "42")

	want := "HTTP/1.1 200 OK\n" +
		"Content-Type: text/plain\n" +
		"Content-Length: 5\n" +
		"X-Request-Id: 42\n" +
		"\n" +
		"hello"
	assert.Equal(t, want, string(res.Render()))
}

func TestRenderDefaults(t *testing.T) {
	t.Parallel()

	got := string(NewResponse().Render())

	want := "HTTP/1.1 200 OK\n" +
		"Content-Type: text/html\n" +
		"Content-Length: 0\n" +
		"\n"
	assert.Equal(t, want, got)
}

func TestRenderReasonPhrases(t *testing.T) {
	t.Parallel()

	got := string(NewResponse().WithStatus(StatusNotFound).Render())
	assert.Contains(t, got, "HTTP/1.1 404 Not Found\n")

	got = string(NewResponse().WithStatus(999).Render())
	assert.Contains(t, got, "HTTP/1.1 999 Custom\n")
}

func TestReasonPhraseTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   string
	}{
		{100, "Continue"},
		{101, "Switching Protocols"},
		{206, "Partial Content"},
		{305, "Use Proxy"},
		{307, "Temporary Redirect"},
		{417, "Expectation Failed"},
		{505, "HTTP Version Not Supported"},
		// Codes outside the table, even assigned ones.
		{306, "Custom"},
		{308, "Custom"},
		{418, "Custom"},
		{429, "Custom"},
		{511, "Custom"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ReasonPhrase(tt.status), "status %d", tt.status)
	}
}

func TestWithJSON(t *testing.T) {
	t.Parallel()

	res := NewResponse()
	err := res.WithJSON(json.Object(map[string]json.Value{
		"id":   json.Int(5),
		"name": json.String("grit"),
	}))
	require.NoError(t, err)

	assert.Equal(t, "application/json", res.ContentType)
	assert.Equal(t, `{"id":5,"name":"grit"}`, res.Body)
}

func TestWithJSONUnsupported(t *testing.T) {
	t.Parallel()

	res := NewResponse()
	err := res.WithJSON(json.Value{Kind: json.Kind(77)})
	assert.ErrorIs(t, err, json.ErrUnsupportedType)
	assert.Empty(t, res.Body)
}
