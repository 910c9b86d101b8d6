package inbuilt

import "github.com/indigo-web/lite/http/method"

/*
This file is responsible for methods predicates - shortcuts for Register method
with already set method taken from name of the method
*/

func (r *Router) Get(path string, handler Handler) *Router {
	return r.Register(path, method.GET, handler)
}

func (r *Router) Head(path string, handler Handler) *Router {
	return r.Register(path, method.HEAD, handler)
}

func (r *Router) Post(path string, handler Handler) *Router {
	return r.Register(path, method.POST, handler)
}

func (r *Router) Put(path string, handler Handler) *Router {
	return r.Register(path, method.PUT, handler)
}

func (r *Router) Delete(path string, handler Handler) *Router {
	return r.Register(path, method.DELETE, handler)
}

func (r *Router) Connect(path string, handler Handler) *Router {
	return r.Register(path, method.CONNECT, handler)
}

func (r *Router) Options(path string, handler Handler) *Router {
	return r.Register(path, method.OPTIONS, handler)
}

func (r *Router) Trace(path string, handler Handler) *Router {
	return r.Register(path, method.TRACE, handler)
}

func (r *Router) Patch(path string, handler Handler) *Router {
	return r.Register(path, method.PATCH, handler)
}
