package method

import (
	"fmt"

	"github.com/indigo-web/lite/http/status"
)

type Method uint8

const (
	Unknown Method = iota
	GET
	HEAD
	POST
	PUT
	DELETE
	CONNECT
	OPTIONS
	TRACE
	PATCH

	// Count is the last one enum, so contains the greatest integer value of all the
	// methods. So real number of methods is lower by 1
	Count = iota - 1
)

// List contains all the supported HTTP methods. They are sorted by their integer value, however
// Unknown method is not included. So in order to index the List, you must subtract 1 first.
var List = []Method{GET, HEAD, POST, PUT, DELETE, CONNECT, OPTIONS, TRACE, PATCH}

var names = [...]string{
	Unknown: "UNKNOWN",
	GET:     "GET",
	HEAD:    "HEAD",
	POST:    "POST",
	PUT:     "PUT",
	DELETE:  "DELETE",
	CONNECT: "CONNECT",
	OPTIONS: "OPTIONS",
	TRACE:   "TRACE",
	PATCH:   "PATCH",
}

// String returns the wire representation of the method.
func (m Method) String() string {
	if int(m) >= len(names) {
		return names[Unknown]
	}

	return names[m]
}

// UnknownError is returned when a request token doesn't name any supported method. It
// wraps status.ErrMethodNotAllowed, so it's rendered as 405 Method Not Allowed.
type UnknownError struct {
	Token string
}

func (u UnknownError) Error() string {
	return fmt.Sprintf("unknown method: %q", u.Token)
}

func (u UnknownError) Unwrap() error {
	return status.ErrMethodNotAllowed
}

// Parse returns a corresponding Method for the token. Comparison is case-sensitive, as
// methods are always uppercase on the wire. Unknown is returned if nothing matched.
func Parse(str string) Method {
	switch len(str) {
	case 3:
		if str == "GET" {
			return GET
		} else if str == "PUT" {
			return PUT
		}
	case 4:
		if str == "POST" {
			return POST
		} else if str == "HEAD" {
			return HEAD
		}
	case 5:
		if str == "PATCH" {
			return PATCH
		} else if str == "TRACE" {
			return TRACE
		}
	case 6:
		if str == "DELETE" {
			return DELETE
		}
	case 7:
		if str == "CONNECT" {
			return CONNECT
		} else if str == "OPTIONS" {
			return OPTIONS
		}
	}

	return Unknown
}

// FromString does the same as Parse, but reports unrecognized tokens as UnknownError.
func FromString(str string) (Method, error) {
	if m := Parse(str); m != Unknown {
		return m, nil
	}

	return Unknown, UnknownError{Token: str}
}
