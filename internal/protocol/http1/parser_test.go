package http1

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/lite/config"
	"github.com/indigo-web/lite/http/method"
	"github.com/indigo-web/lite/http/status"
	"github.com/stretchr/testify/require"
)

func getParser(data string) *Parser {
	return NewParser(config.Default(), strings.NewReader(data))
}

func TestParser(t *testing.T) {
	t.Run("simple GET", func(t *testing.T) {
		request, err := getParser("GET / HTTP/1.1\r\n\r\n").Parse()
		require.NoError(t, err)
		require.Equal(t, method.GET, request.Method)
		require.Equal(t, "/", request.Path)
		require.Equal(t, "HTTP/1.1", request.Protocol)
		require.True(t, request.Headers.Empty())
		require.Empty(t, request.Body)
	})

	t.Run("raw path", func(t *testing.T) {
		request, err := getParser("GET /hello%20world//?a=b#frag HTTP/1.1\r\n\r\n").Parse()
		require.NoError(t, err)
		require.Equal(t, "/hello%20world//?a=b#frag", request.Path)
	})

	t.Run("headers", func(t *testing.T) {
		raw := "GET / HTTP/1.1\r\n" +
			"Host: localhost\r\n" +
			"Hello: world\r\n" +
			"hello: lowercase\r\n" +
			"Hello: nether\r\n" +
			"X-Empty: \r\n" +
			"X-Colons: a: b: c\r\n" +
			"\r\n"

		request, err := getParser(raw).Parse()
		require.NoError(t, err)
		require.Equal(t, "localhost", request.Headers.Value("Host"))
		require.Equal(t, "nether", request.Headers.Value("Hello"))
		require.Equal(t, "lowercase", request.Headers.Value("hello"))
		require.Equal(t, "a: b: c", request.Headers.Value("X-Colons"))

		value, found := request.Headers.Get("X-Empty")
		require.True(t, found)
		require.Empty(t, value)
	})

	t.Run("random headers", func(t *testing.T) {
		headers := genHeaders(20)
		raw := "GET / HTTP/1.1\r\n" + strings.Join(headers, "\r\n") + "\r\n\r\n"
		request, err := getParser(raw).Parse()
		require.NoError(t, err)
		require.Equal(t, len(headers), request.Headers.Len())

		for _, header := range headers {
			key, value, _ := strings.Cut(header, ": ")
			require.Equal(t, value, request.Headers.Value(key))
		}
	})

	t.Run("body", func(t *testing.T) {
		request, err := getParser("POST /echo HTTP/1.1\r\nContent-Length: 5\r\n\r\nhello").Parse()
		require.NoError(t, err)
		require.Equal(t, method.POST, request.Method)
		require.Equal(t, "hello", request.Body)
	})

	t.Run("body consumes exactly content length", func(t *testing.T) {
		for _, n := range []int{0, 1, 13, 4096, 10000} {
			body := strings.Repeat("a", n)
			extra := "GET /next HTTP/1.1\r\n\r\n"
			raw := fmt.Sprintf("POST / HTTP/1.1\r\nContent-Length: %d\r\n\r\n%s%s", n, body, extra)
			parser := getParser(raw)
			request, err := parser.Parse()
			require.NoError(t, err)
			require.Equal(t, body, request.Body)

			rest, err := io.ReadAll(parser.reader)
			require.NoError(t, err)
			require.Equal(t, extra, string(rest))
		}
	})

	t.Run("byte by byte", func(t *testing.T) {
		raw := "POST /echo HTTP/1.1\r\nContent-Length: 13\r\nHello: world\r\n\r\nHello, world!"
		parser := NewParser(config.Default(), iotest.OneByteReader(strings.NewReader(raw)))
		request, err := parser.Parse()
		require.NoError(t, err)
		require.Equal(t, "world", request.Headers.Value("Hello"))
		require.Equal(t, "Hello, world!", request.Body)
	})

	t.Run("long lines", func(t *testing.T) {
		cfg := config.Default()
		cfg.NET.ReadBufferSize = 16
		path := "/" + strings.Repeat("a", 100)
		value := strings.Repeat("b", 100)
		raw := "GET " + path + " HTTP/1.1\r\nLong: " + value + "\r\n\r\n"
		request, err := NewParser(cfg, strings.NewReader(raw)).Parse()
		require.NoError(t, err)
		require.Equal(t, path, request.Path)
		require.Equal(t, value, request.Headers.Value("Long"))
	})

	t.Run("bare LF", func(t *testing.T) {
		request, err := getParser("GET / HTTP/1.1\nHello: world\n\n").Parse()
		require.NoError(t, err)
		require.Equal(t, "world", request.Headers.Value("Hello"))
	})

	t.Run("invalid utf-8 body", func(t *testing.T) {
		raw := "POST / HTTP/1.1\r\nContent-Length: 4\r\n\r\nab\xffc"
		request, err := getParser(raw).Parse()
		require.NoError(t, err)
		require.Equal(t, "ab�c", request.Body)
	})
}

func TestParserErrors(t *testing.T) {
	tcs := []struct {
		Name  string
		Raw   string
		Err   error
		State State
	}{
		{"too few tokens", "GET /\r\n\r\n", status.ErrMalformedStartLine, eRequestLine},
		{"too many tokens", "GET / HTTP/1.1 extra\r\n\r\n", status.ErrMalformedStartLine, eRequestLine},
		{"empty request line", "\r\n\r\n", status.ErrMalformedStartLine, eRequestLine},
		{"no separator", "GET / HTTP/1.1\r\nHello:world\r\n\r\n", status.ErrMalformedHeader, eHeaders},
		{"no colon", "GET / HTTP/1.1\r\nHello world\r\n\r\n", status.ErrMalformedHeader, eHeaders},
		{"non-numeric length", "POST / HTTP/1.1\r\nContent-Length: five\r\n\r\nhello", status.ErrMalformedContentLength, eBody},
		{"negative length", "POST / HTTP/1.1\r\nContent-Length: -5\r\n\r\nhello", status.ErrMalformedContentLength, eBody},
		{"truncated body", "POST / HTTP/1.1\r\nContent-Length: 10\r\n\r\nhello", status.ErrTruncatedBody, eBody},
		{"missing body", "POST / HTTP/1.1\r\nContent-Length: 10\r\n\r\n", status.ErrTruncatedBody, eBody},
	}

	for _, tc := range tcs {
		t.Run(tc.Name, func(t *testing.T) {
			parser := getParser(tc.Raw)
			_, err := parser.Parse()
			require.ErrorIs(t, err, tc.Err)
			require.Equal(t, tc.State, parser.State())
		})
	}

	t.Run("unknown method", func(t *testing.T) {
		parser := getParser("BREW /pot HTTP/1.1\r\nContent-Length: 3\r\n\r\ntea")
		_, err := parser.Parse()

		var unknown method.UnknownError
		require.True(t, errors.As(err, &unknown))
		require.Equal(t, "BREW", unknown.Token)

		// the body is consumed before the method is decoded
		rest, err := io.ReadAll(parser.reader)
		require.NoError(t, err)
		require.Empty(t, rest)
	})

	t.Run("closed before anything", func(t *testing.T) {
		_, err := getParser("").Parse()
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("closed within request line", func(t *testing.T) {
		_, err := getParser("GET / HT").Parse()
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("closed within headers", func(t *testing.T) {
		_, err := getParser("GET / HTTP/1.1\r\nHello: world\r\n").Parse()
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("read error", func(t *testing.T) {
		errBroken := errors.New("broken pipe")
		parser := NewParser(config.Default(), iotest.ErrReader(errBroken))
		_, err := parser.Parse()
		require.ErrorIs(t, err, errBroken)
	})
}

func TestStateString(t *testing.T) {
	require.Equal(t, "request line", eRequestLine.String())
	require.Equal(t, "body", eBody.String())
	require.Equal(t, "unknown", State(0).String())
}

func BenchmarkParser(b *testing.B) {
	raw := []byte("POST /echo HTTP/1.1\r\n" + strings.Join(genHeaders(10), "\r\n") +
		"\r\nContent-Length: " + strconv.Itoa(500) + "\r\n\r\n" + strings.Repeat("a", 500))
	reader := bytes.NewReader(raw)
	parser := NewParser(config.Default(), reader)
	b.SetBytes(int64(len(raw)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		reader.Reset(raw)
		parser.reader.Reset(reader)
		_, _ = parser.Parse()
	}
}

func genHeaders(n int) (out []string) {
	for i := 0; i < n; i++ {
		out = append(out, genHeader())
	}

	return out
}

func genHeader() string {
	return fmt.Sprintf("%[1]s: %[1]s", uniuri.NewLen(16))
}
