// Package dummy provides an in-memory net.Conn, mainly for tests and benchmarks.
package dummy

import (
	"io"
	"net"
	"sync"
	"time"
)

// Conn returns its data on reads chunk by chunk and records everything written into it.
// Once the data is exhausted, reads return io.EOF.
type Conn struct {
	mu       sync.Mutex
	chunks   [][]byte
	Data     []byte
	writeErr error
	closed   bool
	remote   net.Addr
	nop      bool
}

// NewConn returns a connection reading the chunks one by one. Every chunk is returned by a
// separate read (or more, if the reading buffer is smaller than the chunk).
func NewConn(chunks ...[]byte) *Conn {
	return &Conn{
		chunks: chunks,
		remote: &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 54321},
	}
}

// NewConnString is a shorthand for NewConn with a single chunk.
func NewConnString(data string) *Conn {
	return NewConn([]byte(data))
}

func (c *Conn) Read(b []byte) (n int, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for len(c.chunks) > 0 && len(c.chunks[0]) == 0 {
		c.chunks = c.chunks[1:]
	}

	if len(c.chunks) == 0 {
		return 0, io.EOF
	}

	n = copy(b, c.chunks[0])
	c.chunks[0] = c.chunks[0][n:]
	return n, nil
}

func (c *Conn) Write(b []byte) (n int, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.writeErr != nil {
		return 0, c.writeErr
	}

	if !c.nop {
		c.Data = append(c.Data, b...)
	}

	return len(b), nil
}

func (c *Conn) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return nil
}

// Closed reports whether Close was called.
func (c *Conn) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Written returns a copy of everything written so far.
func (c *Conn) Written() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return string(c.Data)
}

func (c *Conn) LocalAddr() net.Addr {
	return nil
}

func (c *Conn) RemoteAddr() net.Addr {
	return c.remote
}

func (c *Conn) SetDeadline(time.Time) error {
	return nil
}

func (c *Conn) SetReadDeadline(time.Time) error {
	return nil
}

func (c *Conn) SetWriteDeadline(time.Time) error {
	return nil
}

// Nop makes the connection discard everything written.
func (c *Conn) Nop() *Conn {
	c.nop = true
	return c
}

// FailWrites makes every write fail with the error.
func (c *Conn) FailWrites(err error) *Conn {
	c.writeErr = err
	return c
}

// Disperse splits the data into chunks of the given size.
func Disperse(data []byte, n int) (parts [][]byte) {
	for len(data) > n {
		parts = append(parts, data[:n])
		data = data[n:]
	}

	return append(parts, data)
}
