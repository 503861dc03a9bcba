package http

import "net/http"

// Router is a linear pattern table. Routes are matched in registration
// order; the first route whose methods, segment count and literal segments
// agree wins. The table is immutable once the server starts serving.
type Router struct {
	Routes []Route
}

func NewRouter() *Router {
	return &Router{
		Routes: make([]Route, 0),
	}
}

func (router *Router) GET(pattern string, handler Handler, middleware ...Middleware) {
	router.Any([]string{http.MethodGet}, pattern, handler, middleware...)
}

func (router *Router) POST(pattern string, handler Handler, middleware ...Middleware) {
	router.Any([]string{http.MethodPost}, pattern, handler, middleware...)
}

func (router *Router) PUT(pattern string, handler Handler, middleware ...Middleware) {
	router.Any([]string{http.MethodPut}, pattern, handler, middleware...)
}

func (router *Router) DELETE(pattern string, handler Handler, middleware ...Middleware) {
	router.Any([]string{http.MethodDelete}, pattern, handler, middleware...)
}

func (router *Router) Any(methods []string, pattern string, handler Handler, middleware ...Middleware) {
	for _, middleware := range middleware {
		handler = middleware(handler)
	}

	router.Routes = append(router.Routes, Route{
		Methods: methods,
		Pattern: pattern,
		Handler: handler,
	})
}

// Handle dispatches a completed request to the first matching route and
// returns the populated response. Bound pattern params are attached to the
// request before its handler runs.
func (router *Router) Handle(req *Request) *Response {
	res := NewResponse()

	handler := NotFoundHandler
	for i := range router.Routes {
		route := &router.Routes[i]

		params, ok := route.Match(req.Header.Method, req.Header.Path)
		if !ok {
			continue
		}

		req.Params = params
		handler = route.Handler
		break
	}

	handler(req, res)
	return res
}

var NotFoundHandler Handler = func(req *Request, res *Response) {
	res.WithStatus(StatusNotFound).WithText("not found")
}
