package http

import (
	"strconv"

	"github.com/indigo-web/lite/http/mime"
	"github.com/indigo-web/lite/http/status"
	"github.com/indigo-web/lite/kv"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

const (
	// DefaultProtocol is used in responses unless explicitly overridden.
	DefaultProtocol = "HTTP/1.1"
	// why 4? Content-Length, Content-Type and a couple of user-defined ones.
	preallocRespHeaders = 4
	contentLength       = "Content-Length"
	contentType         = "Content-Type"
)

// Fields is a read-only view of the response state, used by the serializer.
type Fields struct {
	Protocol string
	Code     status.Code
	// Status is a custom reason phrase. If empty, the one matching the Code is used.
	Status  status.Status
	Headers Headers
	Body    []byte
}

// Response is a builder of the HTTP response. The Content-Length header is always kept
// consistent with the body: every body mutation recomputes it and attempts to set it manually
// are ignored.
type Response struct {
	fields Fields
}

// NewResponse returns a new instance of the Response object with status code set to 200 OK,
// empty body and Content-Length: 0.
func NewResponse() *Response {
	r := &Response{
		fields: Fields{
			Protocol: DefaultProtocol,
			Code:     status.OK,
			Headers:  kv.NewPrealloc(preallocRespHeaders),
		},
	}

	return r.syncContentLength()
}

// Respond returns a new 200 OK response with no body. Useful as a stub handler.
func Respond(*Request) *Response {
	return NewResponse()
}

// Code sets a Response code. The reason phrase is reset to the one matching the code.
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	r.fields.Status = ""
	return r
}

// Status sets a custom reason phrase. This text does not matter at all, and usually
// totally ignored by client, so there is actually no reasons to use this except some
// rare cases when you need to represent a Response status text somewhere
func (r *Response) Status(status status.Status) *Response {
	r.fields.Status = status
	return r
}

// Protocol sets the protocol token rendered in the status line.
func (r *Response) Protocol(protocol string) *Response {
	if len(protocol) > 0 {
		r.fields.Protocol = protocol
	}

	return r
}

// ContentType sets a custom Content-Type header value.
func (r *Response) ContentType(value mime.MIME) *Response {
	return r.Header(contentType, value)
}

// Header sets the header value to a key. In case it already exists the value will
// be overridden. Content-Length is managed automatically, so setting it is silently ignored.
func (r *Response) Header(key, value string) *Response {
	if strcomp.EqualFold(key, contentLength) {
		return r
	}

	r.fields.Headers.Set(key, value)
	return r
}

// String sets the response's body to the passed string
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to passed slice WITHOUT COPYING. Changing
// the passed slice later will affect the response by itself
func (r *Response) Bytes(body []byte) *Response {
	r.fields.Body = body
	return r.syncContentLength()
}

// Write implements io.Writer interface by appending to the body. It always returns n=len(b)
// and err=nil
func (r *Response) Write(b []byte) (n int, err error) {
	r.fields.Body = append(r.fields.Body, b...)
	r.syncContentLength()
	return len(b), nil
}

// TryJSON receives a model (must be a pointer to the structure) and returns a new Response
// object and an error
func (r *Response) TryJSON(model any) (*Response, error) {
	// the body may alias an immutable string, so it must never be reused for writing
	r.Bytes(nil)
	stream := json.ConfigDefault.BorrowStream(r)
	stream.WriteVal(model)
	err := stream.Flush()
	json.ConfigDefault.ReturnStream(stream)

	return r.ContentType(mime.JSON), err
}

// JSON does the same as TryJSON does, except returned error is being implicitly wrapped
// by Error
func (r *Response) JSON(model any) *Response {
	resp, err := r.TryJSON(model)
	if err != nil {
		return r.Error(err)
	}

	return resp
}

// Error returns a response builder with an error set. If passed err is nil, nothing will happen.
// If an instance of status.HTTPError is passed, its code and message are used. Otherwise,
// 500 Internal Server Error with a generic message is set, so internals don't leak
// to the client.
func (r *Response) Error(err error) *Response {
	if err == nil {
		return r
	}

	code := status.CodeOf(err)
	message := err.Error()
	if code == status.InternalServerError {
		message = status.ErrInternalServerError.Error()
	}

	return r.
		Code(code).
		ContentType(mime.Plain).
		String(message)
}

// Reveal returns the current state of the response. The headers and body are shared,
// so they must not be modified.
func (r *Response) Reveal() Fields {
	return r.fields
}

func (r *Response) syncContentLength() *Response {
	r.fields.Headers.Set(contentLength, strconv.Itoa(len(r.fields.Body)))
	return r
}
