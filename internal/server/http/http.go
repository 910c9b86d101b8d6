package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"

	"github.com/google/uuid"
	"github.com/indigo-web/lite/config"
	"github.com/indigo-web/lite/http"
	"github.com/indigo-web/lite/http/method"
	"github.com/indigo-web/lite/http/status"
	"github.com/indigo-web/lite/internal/protocol/http1"
	"github.com/indigo-web/lite/router"
	"github.com/indigo-web/lite/service"
)

// Server drives exactly one request-response exchange per connection. It holds no
// per-connection state, so a single instance serves all the connections concurrently.
type Server struct {
	router router.Router
	cfg    *config.Config
	logger *slog.Logger
}

func NewServer(r router.Router, cfg *config.Config, logger *slog.Logger) *Server {
	return &Server{
		router: r,
		cfg:    cfg,
		logger: logger,
	}
}

// HandleConn reads a request, passes it to the matching handler, writes the response
// back and closes the connection. Nothing has a timeout: a slow client or a slow handler
// holds the connection for as long as it takes.
func (s *Server) HandleConn(conn net.Conn) {
	logger := s.logger.With(slog.String("conn", uuid.NewString()))
	last := s.exchange(conn, logger)

	if err := conn.Close(); err != nil {
		logger.Debug("close connection", slog.String("error", err.Error()))
	}

	logger.Debug("connection closed", slog.String("after", last.String()))
}

// exchange returns the last state reached before closing.
func (s *Server) exchange(conn net.Conn, logger *slog.Logger) serverState {
	state := eAwaitRequest
	request, err := http1.NewParser(s.cfg, conn).Parse()
	if err != nil {
		s.onParseError(conn, logger, err)
		return state
	}

	state = eParsed
	request.Remote = conn.RemoteAddr()
	request.Ctx = context.Background()

	var response *http.Response
	resolution := s.router.Resolve(request.Path, request.Method)

	switch resolution.Outcome {
	case router.Matched:
		state = eResolved
		response = service.Call(request.Ctx, logger, resolution.Service, request)
		state = eInvoked
	case router.PathNotFound:
		response = s.onError(request, status.ErrNotFound)
	case router.MethodNotAllowed:
		request.Env.AllowedMethods = resolution.Allow
		response = s.onError(request, status.ErrMethodNotAllowed)
	}

	code := response.Reveal().Code
	logger.Debug("request served",
		slog.String("method", request.Method.String()),
		slog.String("path", request.Path),
		slog.Int("code", int(code)),
	)

	if !s.write(conn, logger, response) {
		return state
	}

	return eWritten
}

func (s *Server) onParseError(conn net.Conn, logger *slog.Logger, err error) {
	var httpErr status.HTTPError
	if !errors.As(err, &httpErr) {
		// the stream itself is broken, so there's nobody to respond to
		if errors.Is(err, io.EOF) {
			logger.Debug("connection closed before sending a request")
		} else {
			logger.Warn("read request", slog.String("error", err.Error()))
		}

		return
	}

	logger.Warn("malformed request", slog.String("error", err.Error()))
	placeholder := http.NewRequest(method.Unknown, "", s.cfg.HTTP.Protocol, nil)
	placeholder.Remote = conn.RemoteAddr()
	s.write(conn, logger, s.onError(placeholder, err))
}

// write is best-effort: a failed write is reported and never retried.
func (s *Server) write(conn net.Conn, logger *slog.Logger, response *http.Response) bool {
	serializer := http1.NewSerializer(conn, make([]byte, 0, s.cfg.NET.WriteBufferSize))
	if err := serializer.Write(response); err != nil {
		logger.Warn("write response", slog.String("error", err.Error()))
		return false
	}

	return true
}

func (s *Server) onError(req *http.Request, err error) *http.Response {
	if resp := s.router.OnError(req, err); resp != nil {
		return resp
	}

	return req.Respond().Error(err)
}
