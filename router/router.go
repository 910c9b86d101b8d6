package router

import (
	"github.com/indigo-web/lite/http"
	"github.com/indigo-web/lite/http/method"
	"github.com/indigo-web/lite/service"
)

// Outcome tells how the request was resolved.
type Outcome uint8

const (
	// Matched means a handler is registered for both the path and the method.
	Matched Outcome = iota
	// PathNotFound means nothing is registered for the path at all.
	PathNotFound
	// MethodNotAllowed means the path is known, but there's no handler for the method.
	MethodNotAllowed
)

func (o Outcome) String() string {
	switch o {
	case Matched:
		return "matched"
	case PathNotFound:
		return "path not found"
	case MethodNotAllowed:
		return "method not allowed"
	default:
		return "unknown"
	}
}

// Resolution is the result of the lookup.
type Resolution struct {
	Outcome Outcome
	// Service is set only if the Outcome is Matched.
	Service service.Service
	// Allow lists the methods registered for the path, comma-separated. It's set for
	// MethodNotAllowed, so the response can carry the Allow header.
	Allow string
}

type Router interface {
	// Resolve maps the request path and method to the handler. It must be safe for
	// concurrent use.
	Resolve(path string, m method.Method) Resolution
	// OnError renders the response for a request that couldn't be passed to a regular
	// handler: a routing miss or a malformed request. The cause is in the request's Env.Error.
	OnError(req *http.Request, err error) *http.Response
}
