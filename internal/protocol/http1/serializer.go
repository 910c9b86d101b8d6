package http1

import (
	"io"

	"github.com/indigo-web/lite/http"
	"github.com/indigo-web/lite/http/status"
)

// Serializer renders responses into the wire format. The buffer is reused between
// writes, growing as much as needed to fit the whole response.
type Serializer struct {
	buff []byte
	w    io.Writer
}

func NewSerializer(w io.Writer, buff []byte) *Serializer {
	return &Serializer{
		buff: buff[:0],
		w:    w,
	}
}

// Write serializes the response and writes it fully in one go. Failed writes aren't
// retried.
func (s *Serializer) Write(response *http.Response) error {
	s.buff = Append(s.buff[:0], response)
	_, err := s.w.Write(s.buff)
	return err
}

// Append renders the response at the end of the buffer:
//
//	<protocol> <code> <reason>\r\n
//	<key>: <value>\r\n (for every header)
//	\r\n
//	<body>
func Append(buff []byte, response *http.Response) []byte {
	fields := response.Reveal()

	buff = append(buff, fields.Protocol...)
	buff = append(buff, ' ')
	buff = append(buff, status.StringCode(fields.Code)...)
	buff = append(buff, ' ')

	if len(fields.Status) > 0 {
		buff = append(buff, fields.Status...)
	} else {
		buff = append(buff, status.Text(fields.Code)...)
	}

	buff = crlf(buff)

	for key, value := range fields.Headers.Iter() {
		buff = append(buff, key...)
		buff = append(buff, headerSeparator...)
		buff = append(buff, value...)
		buff = crlf(buff)
	}

	buff = crlf(buff)

	return append(buff, fields.Body...)
}

func crlf(buff []byte) []byte {
	return append(buff, '\r', '\n')
}
