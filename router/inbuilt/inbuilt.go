package inbuilt

import (
	"sync"

	"github.com/indigo-web/lite/http/method"
	"github.com/indigo-web/lite/router"
)

var _ router.Router = new(Router)

// Router is a built-in implementation of router.Router interface. Paths are matched
// exactly: no normalization, no wildcards and no parameters. The table is guarded by
// RWMutex, so routes may be registered even while serving.
type Router struct {
	mu          sync.RWMutex
	routes      map[string]*Route
	errHandlers errHandlers
}

// New constructs a new instance of inbuilt router
func New() *Router {
	return &Router{
		routes:      make(map[string]*Route),
		errHandlers: newErrHandlers(),
	}
}

// Route registers all the handlers of the route under the path. If the path is already
// known, handlers are merged, with the new ones overriding the old ones for the same method.
// The route is copied, so modifying it afterward doesn't affect the router.
func (r *Router) Route(path string, route *Route) *Router {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, found := r.routes[path]
	if !found {
		existing = NewRoute()
		r.routes[path] = existing
	}

	existing.merge(route)
	return r
}

// Register sets the handler for the path and method pair. A handler already registered
// for the same pair is overridden.
func (r *Router) Register(path string, m method.Method, handler Handler) *Router {
	return r.Route(path, NewRoute().Method(m, handler))
}

// Resolve implements router.Router.
func (r *Router) Resolve(path string, m method.Method) router.Resolution {
	r.mu.RLock()
	defer r.mu.RUnlock()

	route, found := r.routes[path]
	if !found {
		return router.Resolution{Outcome: router.PathNotFound}
	}

	if s := route.Service(m); s != nil {
		return router.Resolution{
			Outcome: router.Matched,
			Service: s,
		}
	}

	return router.Resolution{
		Outcome: router.MethodNotAllowed,
		Allow:   route.Allow(),
	}
}
