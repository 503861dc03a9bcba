package http

const (
	DefaultReadBufferSize  = 4096
	DefaultWriteBufferSize = 4096
)

// Handler processes one completed request and fills in the response.
type Handler func(req *Request, res *Response)

// Middleware wraps a Handler at registration time.
type Middleware func(next Handler) Handler
