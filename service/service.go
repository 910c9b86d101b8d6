// Package service erases concrete handler types, so handlers of different shapes can be
// stored in a single routing table and invoked through a single call signature.
//
// Services are plain values: copying one is cheap, and the same service may be registered
// under many routes and invoked from many connections at once. Stock adapters keep no state
// between invocations, so any shared state a handler needs must be passed in explicitly and
// synchronized by its owner.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/indigo-web/lite/http"
)

// Service is the uniform calling contract every handler is reduced to.
type Service interface {
	Invoke(ctx context.Context, req *http.Request) *http.Response
}

// ServiceFunc is the Service in its rawest form.
type ServiceFunc func(ctx context.Context, req *http.Request) *http.Response

func (s ServiceFunc) Invoke(ctx context.Context, req *http.Request) *http.Response {
	return s(ctx, req)
}

// Func adapts handlers returning a value with stock conversion into the response.
type Func[T http.Result] func(*http.Request) T

func (f Func[T]) Invoke(_ context.Context, req *http.Request) *http.Response {
	return http.Into(f(req))
}

// FuncE adapts fallible handlers. A returned error is rendered via Response.Error, so
// status.HTTPError keeps its code and anything else becomes 500 Internal Server Error.
type FuncE[T http.Result] func(*http.Request) (T, error)

func (f FuncE[T]) Invoke(_ context.Context, req *http.Request) *http.Response {
	result, err := f(req)
	if err != nil {
		return req.Respond().Error(err)
	}

	return http.Into(result)
}

// ContextFunc adapts fallible handlers, which also want the connection context.
type ContextFunc[T http.Result] func(context.Context, *http.Request) (T, error)

func (f ContextFunc[T]) Invoke(ctx context.Context, req *http.Request) *http.Response {
	result, err := f(ctx, req)
	if err != nil {
		return req.Respond().Error(err)
	}

	return http.Into(result)
}

// Responder adapts handlers returning custom types with their own conversion.
type Responder func(*http.Request) http.IntoResponse

func (r Responder) Invoke(_ context.Context, req *http.Request) *http.Response {
	return http.From(r(req))
}

var (
	ErrNilHandler         = errors.New("handler is nil")
	ErrUnsupportedHandler = errors.New("unsupported handler signature")
)

// Of wraps the handler into the Service. Supported are any Service implementations and
// functions of the following shapes, where T is one of *http.Response, string or []byte:
//
//	func(*http.Request) T
//	func(*http.Request) (T, error)
//	func(context.Context, *http.Request) T
//	func(context.Context, *http.Request) (T, error)
//	func(*http.Request) http.IntoResponse
func Of(handler any) (Service, error) {
	switch h := handler.(type) {
	case nil:
		return nil, ErrNilHandler
	case Service:
		return h, nil
	case func(context.Context, *http.Request) *http.Response:
		return ServiceFunc(h), nil

	case func(*http.Request) *http.Response:
		return Func[*http.Response](h), nil
	case func(*http.Request) string:
		return Func[string](h), nil
	case func(*http.Request) []byte:
		return Func[[]byte](h), nil

	case func(*http.Request) (*http.Response, error):
		return FuncE[*http.Response](h), nil
	case func(*http.Request) (string, error):
		return FuncE[string](h), nil
	case func(*http.Request) ([]byte, error):
		return FuncE[[]byte](h), nil

	case func(context.Context, *http.Request) string:
		return contextual(h), nil
	case func(context.Context, *http.Request) []byte:
		return contextual(h), nil

	case func(context.Context, *http.Request) (*http.Response, error):
		return ContextFunc[*http.Response](h), nil
	case func(context.Context, *http.Request) (string, error):
		return ContextFunc[string](h), nil
	case func(context.Context, *http.Request) ([]byte, error):
		return ContextFunc[[]byte](h), nil

	case func(*http.Request) http.IntoResponse:
		return Responder(h), nil
	}

	return nil, fmt.Errorf("%w: %T", ErrUnsupportedHandler, handler)
}

// Must is like Of, but panics on unsupported handlers. Handlers are normally registered
// at startup, so there's no sensible way to recover anyway.
func Must(handler any) Service {
	s, err := Of(handler)
	if err != nil {
		panic(fmt.Errorf("lite: %w", err))
	}

	return s
}

func contextual[T http.Result](f func(context.Context, *http.Request) T) Service {
	return ServiceFunc(func(ctx context.Context, req *http.Request) *http.Response {
		return http.Into(f(ctx, req))
	})
}
