package http1

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/indigo-web/lite/config"
	"github.com/indigo-web/lite/http"
	"github.com/indigo-web/lite/http/method"
	"github.com/indigo-web/lite/http/status"
	"github.com/indigo-web/lite/kv"
	"github.com/indigo-web/utils/uf"
)

const (
	headerSeparator = ": "
	// replacementChar is substituted for invalid UTF-8 sequences in the body.
	replacementChar = "�"
)

// Parser reads exactly one request off the stream. It blocks on the underlying reader
// until the request is complete, so the caller is responsible for the stream's lifetime.
type Parser struct {
	cfg    *config.Config
	reader *bufio.Reader
	state  State
}

func NewParser(cfg *config.Config, r io.Reader) *Parser {
	return &Parser{
		cfg:    cfg,
		reader: bufio.NewReaderSize(r, cfg.NET.ReadBufferSize),
		state:  eRequestLine,
	}
}

// Parse reads the request line, headers and the body of the length declared by the
// Content-Length header. Protocol violations are reported as status.HTTPError or
// method.UnknownError, both carrying enough to render a response. Any other error comes
// from the stream itself and means the connection is unusable. io.EOF is returned when the
// stream was closed before a single byte was sent.
func (p *Parser) Parse() (*http.Request, error) {
	p.state = eRequestLine
	startLine, err := p.readLine()
	if err != nil {
		return nil, err
	}

	tokens := strings.Fields(startLine)
	if len(tokens) != 3 {
		return nil, status.ErrMalformedStartLine
	}

	p.state = eHeaders
	headers := kv.NewPrealloc(p.cfg.Headers.Prealloc)

	for {
		line, err := p.readLine()
		if err != nil {
			return nil, unexpected(err)
		}

		if len(line) == 0 {
			break
		}

		key, value, found := strings.Cut(line, headerSeparator)
		if !found {
			return nil, status.ErrMalformedHeader
		}

		headers.Set(key, strings.TrimRight(value, " \t"))
	}

	request := http.NewRequest(method.Unknown, tokens[1], tokens[2], headers)

	p.state = eBody
	length, err := request.ContentLength()
	if err != nil {
		return nil, status.ErrMalformedContentLength
	}

	if length > 0 {
		body := make([]byte, length)
		if _, err = io.ReadFull(p.reader, body); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, status.ErrTruncatedBody
			}

			return nil, err
		}

		// the body slice is owned exclusively by the request, so no copy is needed
		request.Body = strings.ToValidUTF8(uf.B2S(body), replacementChar)
	}

	request.Method, err = method.FromString(tokens[0])
	if err != nil {
		return nil, err
	}

	p.state = eDone
	return request, nil
}

// State returns the stage the parser has stopped at. Useful to tell at which point the
// stream broke. Note that the method token is decoded only after the body was read.
func (p *Parser) State() State {
	return p.state
}

// readLine reads a single line, terminated by LF. The terminating CRLF (or bare LF) is
// stripped. There is no limit on the line length.
func (p *Parser) readLine() (string, error) {
	var line []byte

	for {
		chunk, err := p.reader.ReadSlice('\n')
		switch {
		case err == nil:
			if line == nil {
				return string(trimCRLF(chunk)), nil
			}

			line = append(line, chunk...)
			return string(trimCRLF(line)), nil
		case errors.Is(err, bufio.ErrBufferFull):
			line = append(line, chunk...)
		case errors.Is(err, io.EOF):
			if len(line) == 0 && len(chunk) == 0 {
				return "", io.EOF
			}

			return "", io.ErrUnexpectedEOF
		default:
			return "", err
		}
	}
}

func trimCRLF(line []byte) []byte {
	line = line[:len(line)-1]
	if len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}

	return line
}

// unexpected promotes io.EOF to io.ErrUnexpectedEOF, because after the request line
// was read, a closed stream means an incomplete request.
func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("headers: %w", io.ErrUnexpectedEOF)
	}

	return err
}
