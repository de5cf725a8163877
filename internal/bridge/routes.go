package bridge

import (
	"net/http"
	"strings"
)

// Route names a dispatcher behavior. The string form labels logs and metrics.
type Route string

const (
	RouteHandshake   Route = "handshake"
	RouteChainAccess Route = "chain_access"
	RouteMetrics     Route = "metrics"
	RouteAuth        Route = "auth"
	RouteCustomEvent Route = "custom_event"
	RouteLogs        Route = "logs"
	RouteUnknownGet  Route = "unknown_get"
	RouteUnknownPost Route = "unknown_post"
	RouteOther       Route = "other"
)

const (
	PathHandshake   = "/api/v1/"
	PathChainAccess = "/api/v1/chain-access/"
	PathMetrics     = "/api/v1/ingest/metrics"
	PathAuth        = "/api/v1/auth"
	PathCustomEvent = "/api/v1/ingest/custom-event"
	PathLogs        = "/api/v1/ingest/logs"
)

type rule struct {
	method string
	path   string
	exact  bool
	route  Route
}

// Evaluated top to bottom. Exact rules sit above the prefixes of the same
// method.
var routeTable = []rule{
	{http.MethodGet, PathHandshake, true, RouteHandshake},
	{http.MethodGet, PathChainAccess, false, RouteChainAccess},
	{http.MethodPost, PathMetrics, false, RouteMetrics},
	{http.MethodPost, PathAuth, false, RouteAuth},
	{http.MethodPost, PathCustomEvent, false, RouteCustomEvent},
	{http.MethodPost, PathLogs, false, RouteLogs},
}

func (r rule) matches(method, path string) bool {
	if r.method != method {
		return false
	}
	if r.exact {
		return path == r.path
	}
	return strings.HasPrefix(path, r.path)
}

// Match classifies a request by method and URL path.
func Match(method, path string) Route {
	for _, r := range routeTable {
		if r.matches(method, path) {
			return r.route
		}
	}
	switch method {
	case http.MethodGet:
		return RouteUnknownGet
	case http.MethodPost:
		return RouteUnknownPost
	default:
		return RouteOther
	}
}

// ChainID returns the last path segment; empty when the path ends in "/".
func ChainID(path string) string {
	return path[strings.LastIndexByte(path, '/')+1:]
}
