package inbuilt

import (
	"strings"

	"github.com/indigo-web/lite/http/method"
	"github.com/indigo-web/lite/service"
)

// Handler is anything service.Of accepts: a service.Service or a function of one of
// the supported shapes.
type Handler = any

// Route holds at most one handler per method for a single path. Registering another
// handler for the same method overrides the previous one.
type Route struct {
	methods [method.Count + 1]service.Service
}

func NewRoute() *Route {
	return new(Route)
}

// Method registers the handler for the method. Unsupported handler shapes result in a panic.
func (r *Route) Method(m method.Method, handler Handler) *Route {
	if m == method.Unknown || int(m) >= len(r.methods) {
		panic("lite: cannot register a handler for unknown method")
	}

	r.methods[m] = service.Must(handler)
	return r
}

func (r *Route) Get(handler Handler) *Route {
	return r.Method(method.GET, handler)
}

func (r *Route) Head(handler Handler) *Route {
	return r.Method(method.HEAD, handler)
}

func (r *Route) Post(handler Handler) *Route {
	return r.Method(method.POST, handler)
}

func (r *Route) Put(handler Handler) *Route {
	return r.Method(method.PUT, handler)
}

func (r *Route) Delete(handler Handler) *Route {
	return r.Method(method.DELETE, handler)
}

func (r *Route) Connect(handler Handler) *Route {
	return r.Method(method.CONNECT, handler)
}

func (r *Route) Options(handler Handler) *Route {
	return r.Method(method.OPTIONS, handler)
}

func (r *Route) Trace(handler Handler) *Route {
	return r.Method(method.TRACE, handler)
}

func (r *Route) Patch(handler Handler) *Route {
	return r.Method(method.PATCH, handler)
}

// Service returns the handler registered for the method, or nil.
func (r *Route) Service(m method.Method) service.Service {
	if int(m) >= len(r.methods) {
		return nil
	}

	return r.methods[m]
}

// Allow returns comma-separated list of the methods having a handler, in order of
// method.List.
func (r *Route) Allow() string {
	var allowed []string
	for _, m := range method.List {
		if r.methods[m] != nil {
			allowed = append(allowed, m.String())
		}
	}

	return strings.Join(allowed, ",")
}

// merge copies every registered handler of another route, overriding existing ones.
func (r *Route) merge(another *Route) {
	for m, s := range another.methods {
		if s != nil {
			r.methods[m] = s
		}
	}
}

// Get returns a new route with the GET handler. Further methods may be chained:
//
//	inbuilt.Get(index).Post(submit)
func Get(handler Handler) *Route {
	return NewRoute().Get(handler)
}

func Head(handler Handler) *Route {
	return NewRoute().Head(handler)
}

func Post(handler Handler) *Route {
	return NewRoute().Post(handler)
}

func Put(handler Handler) *Route {
	return NewRoute().Put(handler)
}

func Delete(handler Handler) *Route {
	return NewRoute().Delete(handler)
}

func Options(handler Handler) *Route {
	return NewRoute().Options(handler)
}

func Patch(handler Handler) *Route {
	return NewRoute().Patch(handler)
}
