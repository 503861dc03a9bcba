package http

import (
	"slices"
	"strings"
)

type Route struct {
	Methods []string
	Pattern string
	Handler Handler
}

// Match reports whether the route serves the given method and path. Patterns
// split on '/'; a segment prefixed with ':' matches any one requested
// segment and binds it by name (minus the ':') into the returned params.
// Segment counts must agree exactly.
func (route *Route) Match(method, path string) (map[string]string, bool) {
	if !slices.Contains(route.Methods, method) {
		return nil, false
	}

	want := strings.Split(route.Pattern, "/")
	got := strings.Split(path, "/")
	if len(want) != len(got) {
		return nil, false
	}

	params := make(map[string]string)
	for i, segment := range want {
		if strings.HasPrefix(segment, ":") {
			params[segment[1:]] = got[i]
			continue
		}
		if segment != got[i] {
			return nil, false
		}
	}

	return params, true
}
