package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const scopeName = "github.com/gritframe/grit/http"

var (
	meter          = otel.Meter(scopeName)
	requestsServed metric.Int64Counter
)

func init() {
	var err error
	requestsServed, err = meter.Int64Counter("grit.requests.served",
		metric.WithDescription("The number of requests dispatched to the router"))
	if err != nil {
		panic(err)
	}
}

// Server accepts connections and runs one protocol driver per connection.
// The route table is the only state shared across connections and must not
// change once serving starts.
type Server struct {
	Name   string
	Router *Router
	Logger *slog.Logger

	ReadBufferSize int

	// Lifecycle notifications, keyed by the driver's connection id.
	OnConnect func(id uuid.UUID)
	OnClose   func(id uuid.UUID)

	listener net.Listener
}

func NewServer(name string) *Server {
	return &Server{
		Name:           name,
		Router:         NewRouter(),
		Logger:         otelslog.NewLogger(name),
		ReadBufferSize: DefaultReadBufferSize,
	}
}

// ListenAndServe binds addr and serves until the listener is closed. A bind
// failure is a startup error, not a silent return.
func (s *Server) ListenAndServe(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("http: listen on %s: %w", addr, err)
	}

	return s.Serve(listener)
}

func (s *Server) Serve(listener net.Listener) error {
	s.listener = listener

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.Logger.Error("accept failed", "error", err)
			continue
		}

		go s.ServeConn(conn)
	}
}

// ServeConn runs one connection to completion: read, drive the state
// machine, write, until end-of-stream. Each connection gets its own driver;
// nothing but the route table is shared between goroutines.
func (s *Server) ServeConn(conn net.Conn) {
	defer conn.Close()

	driver := NewConn(s.Router, s.Logger)
	if s.OnConnect != nil {
		s.OnConnect(driver.ID)
	}
	defer func() {
		if s.OnClose != nil {
			s.OnClose(driver.ID)
		}
	}()

	size := s.ReadBufferSize
	if size <= 0 {
		size = DefaultReadBufferSize
	}
	buf := make([]byte, size)

	for {
		n, err := conn.Read(buf)
		if n <= 0 {
			if err != nil && err != io.EOF {
				s.Logger.Error("read failed", "conn", driver.ID, "error", err)
			}
			return
		}

		out := driver.HandleChunk(buf[:n])
		if len(out) == 0 {
			continue
		}

		if _, err := conn.Write(out); err != nil {
			s.Logger.Error("write failed", "conn", driver.ID, "error", err)
			return
		}
	}
}

// Shutdown stops accepting new connections. In-flight connections finish on
// their own goroutines.
func (s *Server) Shutdown(_ context.Context) error {
	if s.listener == nil {
		return nil
	}

	return s.listener.Close()
}
