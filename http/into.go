package http

import (
	"github.com/indigo-web/lite/http/mime"
	"github.com/indigo-web/utils/uf"
)

// IntoResponse is implemented by any type a handler may return in place of the Response.
type IntoResponse interface {
	IntoResponse() *Response
}

// Result lists the types having a stock conversion into the Response.
type Result interface {
	string | []byte | *Response
}

// Into converts a handler result into the Response. A Response is returned as is (nil
// becomes an empty 200 OK), textual values become a text/plain 200 OK response carrying
// the text as a body.
func Into[T Result](value T) *Response {
	switch v := any(value).(type) {
	case *Response:
		if v == nil {
			return NewResponse()
		}

		return v
	case string:
		return Text(v)
	case []byte:
		return Text(uf.B2S(v))
	}

	panic("BUG: unreachable result type")
}

// From converts any IntoResponse implementation, treating nil results as an empty 200 OK.
func From(value IntoResponse) *Response {
	if value == nil {
		return NewResponse()
	}

	if resp := value.IntoResponse(); resp != nil {
		return resp
	}

	return NewResponse()
}

// Text returns a 200 OK response with text/plain body.
func Text(body string) *Response {
	return NewResponse().
		ContentType(mime.Plain).
		String(body)
}
