package http

import (
	"log/slog"

	"golang.org/x/time/rate"
)

// RecoverMiddleware turns a handler panic into a 500 response instead of
// tearing down the connection goroutine.
func RecoverMiddleware(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}

	return func(next Handler) Handler {
		return func(req *Request, res *Response) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("handler panicked",
						"method", req.Header.Method,
						"path", req.Header.Path,
						"panic", r)

					res.WithStatus(StatusInternalServerError).WithText("something went wrong")
				}
			}()

			next(req, res)
		}
	}
}

// LogMiddleware logs one line per handled request.
func LogMiddleware(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}

	return func(next Handler) Handler {
		return func(req *Request, res *Response) {
			next(req, res)

			logger.Info("handled",
				"method", req.Header.Method,
				"path", req.Header.Path,
				"status", res.Status)
		}
	}
}

// RateLimitMiddleware applies a token-bucket limit to the wrapped handler.
// Requests over the limit are answered with 429 and a Retry-After hint.
func RateLimitMiddleware(limit rate.Limit, burst int) Middleware {
	limiter := rate.NewLimiter(limit, burst)

	return func(next Handler) Handler {
		return func(req *Request, res *Response) {
			if !limiter.Allow() {
				res.WithStatus(StatusTooManyRequests).WithText("too many requests")
				res.WithHeader("Retry-After", "1")
				return
			}

			next(req, res)
		}
	}
}
