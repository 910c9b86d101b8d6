package status

import "errors"

// HTTPError is an error carrying a status code, so it can be rendered into a
// response directly.
type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

// CodeOf returns the code carried by err if it is (or wraps) an HTTPError. Otherwise,
// InternalServerError is returned.
func CodeOf(err error) Code {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return InternalServerError
}

var (
	// ErrShutdown is returned by the listener after it was stopped on purpose.
	ErrShutdown = errors.New("graceful shutdown")

	ErrBadRequest          = NewError(BadRequest, "bad request")
	ErrNotFound            = NewError(NotFound, "not found")
	ErrMethodNotAllowed    = NewError(MethodNotAllowed, "method not allowed")
	ErrInternalServerError = NewError(InternalServerError, "internal server error")
	ErrNotImplemented      = NewError(NotImplemented, "not implemented")

	ErrMalformedStartLine     = NewError(MethodNotAllowed, "malformed request line")
	ErrMalformedHeader        = NewError(BadRequest, "malformed header line")
	ErrMalformedContentLength = NewError(BadRequest, "malformed Content-Length value")
	ErrTruncatedBody          = NewError(BadRequest, "request body is shorter than declared")
)
