package http

import (
	"context"
	"net"
	"strconv"

	"github.com/indigo-web/lite/http/method"
	"github.com/indigo-web/lite/kv"
)

var zeroContext = context.Background()

type (
	Headers = *kv.Storage
	Header  = kv.Pair
)

// Request represents an HTTP request. It's constructed exactly once per connection by the
// parser and must be treated as read-only afterward.
type Request struct {
	// Method is an enum representing the request method.
	Method method.Method
	// Path is the raw request target as it came from the wire. It is neither normalized nor
	// percent-decoded.
	Path string
	// Protocol is the protocol version token, e.g. HTTP/1.1.
	Protocol string
	// Headers hold the header pairs exactly as received. Lookup is case-sensitive and for
	// repeating keys only the last value is kept.
	Headers Headers
	// Body is the request payload decoded as text. Invalid UTF-8 sequences are replaced
	// with the Unicode replacement character.
	Body string
	// Remote holds the remote address.
	Remote net.Addr
	// Ctx is the context of the connection. It's never cancelled by the server.
	Ctx context.Context
	// Env contains a fixed set of contextual values which are useful in specific cases.
	Env Environment
}

// Environment holds values set by the server itself, not coming from the wire.
type Environment struct {
	// Error is set for requests passed to error handlers, describing why the regular
	// handler wasn't called.
	Error error
	// AllowedMethods is a comma-separated list of methods registered for the path. It's set
	// only when the request's method isn't among them.
	AllowedMethods string
}

// NewRequest returns a request with empty headers storage and no body.
func NewRequest(m method.Method, path, protocol string, headers Headers) *Request {
	if headers == nil {
		headers = kv.New()
	}

	return &Request{
		Method:   m,
		Path:     path,
		Protocol: protocol,
		Headers:  headers,
		Ctx:      zeroContext,
	}
}

// ContentLength returns the declared body length. Absent header means 0.
func (r *Request) ContentLength() (int, error) {
	value, found := r.Headers.Get("Content-Length")
	if !found {
		return 0, nil
	}

	length, err := strconv.ParseUint(value, 10, 31)
	return int(length), err
}

// Respond is a shorthand for NewResponse. It exists for symmetry with handlers looking
// like `return req.Respond().String("hello")`.
func (r *Request) Respond() *Response {
	return NewResponse().Protocol(r.Protocol)
}
