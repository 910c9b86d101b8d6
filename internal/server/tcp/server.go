package tcp

import (
	"net"
	"sync/atomic"

	"github.com/indigo-web/lite/http/status"
)

type OnConn func(net.Conn)

// Server accepts connections in a single loop and hands each of them to its own
// goroutine. Spawned goroutines are detached: they aren't tracked, awaited or limited
// in number.
type Server struct {
	sock     net.Listener
	onConn   OnConn
	shutdown atomic.Bool
}

func NewServer(sock net.Listener, onConn OnConn) *Server {
	return &Server{
		sock:   sock,
		onConn: onConn,
	}
}

// Start runs the accept loop. It returns the first accept error, or status.ErrShutdown
// if the server was stopped on purpose.
func (s *Server) Start() error {
	for {
		conn, err := s.sock.Accept()
		if err != nil {
			if s.shutdown.Load() {
				return status.ErrShutdown
			}

			return err
		}

		go s.onConn(conn)
	}
}

// Stop closes the listener, so no new connections are accepted. Connections being
// served at the moment aren't affected.
func (s *Server) Stop() error {
	s.shutdown.Store(true)
	return s.sock.Close()
}

// Addr returns the address the server listens on.
func (s *Server) Addr() net.Addr {
	return s.sock.Addr()
}
