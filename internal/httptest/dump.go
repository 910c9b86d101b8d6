package httptest

import (
	"strconv"

	"github.com/indigo-web/lite/http"
	"github.com/indigo-web/lite/kv"
)

// Dump renders the request back into its wire form. The Content-Length header is
// emitted only when the request doesn't carry one already and the body isn't empty.
func Dump(request *http.Request) string {
	var buff []byte

	buff = append(buff, request.Method.String()...)
	buff = space(buff)
	buff = append(buff, request.Path...)
	buff = space(buff)
	buff = append(buff, request.Protocol...)
	buff = crlf(buff)

	for key, value := range request.Headers.Iter() {
		buff = header(buff, kv.Pair{Key: key, Value: value})
	}

	if len(request.Body) > 0 && !request.Headers.Has("Content-Length") {
		buff = header(buff, kv.Pair{Key: "Content-Length", Value: strconv.Itoa(len(request.Body))})
	}

	buff = crlf(buff)
	buff = append(buff, request.Body...)

	return string(buff)
}

func space(b []byte) []byte {
	return append(b, ' ')
}

func crlf(b []byte) []byte {
	return append(b, '\r', '\n')
}

func header(b []byte, h kv.Pair) []byte {
	b = append(b, h.Key...)
	b = colonsp(b)
	b = append(b, h.Value...)

	return crlf(b)
}

func colonsp(b []byte) []byte {
	return append(b, ':', ' ')
}
