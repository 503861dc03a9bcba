package http

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type connState uint8

const (
	stateIdle connState = iota
	statePendingContinuation
)

// Conn is the per-connection protocol driver. One Conn exists per accepted
// connection and is discarded when it closes; its state is never shared.
//
// The driver is a two-state machine. In the idle state each chunk is parsed
// as a full request head plus body. A request carrying "Expect:
// 100-continue" is not dispatched: its header is held, an interim status-100
// response goes back, and the next chunk is taken verbatim as the deferred
// body.
type Conn struct {
	ID uuid.UUID

	router *Router
	logger *slog.Logger

	state   connState
	pending RequestHeader
}

func NewConn(router *Router, logger *slog.Logger) *Conn {
	if logger == nil {
		logger = slog.Default()
	}

	return &Conn{
		ID:     uuid.New(),
		router: router,
		logger: logger,
		state:  stateIdle,
	}
}

// HandleChunk consumes one chunk of bytes received from the peer and returns
// the bytes to write back. A parse failure is logged and answered with an
// empty response; the connection stays usable for further chunks.
func (c *Conn) HandleChunk(chunk []byte) []byte {
	if c.state == statePendingContinuation {
		// The peer was told to continue; this chunk is the deferred body,
		// not a new request head.
		req := &Request{Header: c.pending, Body: string(chunk)}
		c.state = stateIdle
		c.pending = RequestHeader{}

		return c.dispatch(req)
	}

	header, body, err := ParseRequest(chunk)
	if err != nil {
		c.logger.Error("request parse failed", "conn", c.ID, "error", err)
		return []byte{}
	}

	if expect, _ := header.FieldValue("Expect"); expect == "100-continue" {
		c.pending = header
		c.state = statePendingContinuation

		return NewResponse().WithStatus(StatusContinue).Render()
	}

	return c.dispatch(&Request{Header: header, Body: body})
}

func (c *Conn) dispatch(req *Request) []byte {
	res := c.router.Handle(req)

	requestsServed.Add(context.Background(), 1)
	c.logger.Info("request served",
		"conn", c.ID,
		"method", req.Header.Method,
		"path", req.Header.Path,
		"status", res.Status)

	return res.Render()
}
