package ircbot

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// Transport is the byte stream a Bot talks over. None of its methods may
// block for long: the Bot calls them from Poll.
type Transport interface {
	// Connect opens the stream to host:port.
	Connect(host string, port int) error

	// Connected reports whether the stream is still usable.
	Connected() bool

	// Available returns how many bytes can be read without blocking.
	Available() int

	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Close() error
}

// Clock is the time source used for the nick registration delay.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return systemClock{}
}

// peekTimeout bounds how long Available waits on the socket when nothing is
// buffered yet.
const peekTimeout = time.Millisecond

// TCPTransport is a Transport over a plain TCP connection. Reads are served
// from a bufio.Reader which is only filled by Available, so Read never
// blocks.
type TCPTransport struct {
	// DebugCallback is called for each outgoing write, without the line
	// ending. The name of this may not be stable.
	DebugCallback func(line string)

	// Timeout bounds the dial in Connect. Zero means no timeout.
	Timeout time.Duration

	// WriteTimeout bounds each Write. Zero means no timeout.
	WriteTimeout time.Duration

	// Internal fields
	conn      net.Conn
	reader    *bufio.Reader
	connected bool
}

var _ Transport = (*TCPTransport)(nil)

// Connect dials host:port, dropping any previous connection first.
func (t *TCPTransport) Connect(host string, port int) error {
	t.Close()

	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, strconv.Itoa(port)), t.Timeout)
	if err != nil {
		return fmt.Errorf("ircbot: connect %s:%d: %w", host, port, err)
	}

	t.conn = conn
	t.reader = bufio.NewReader(conn)
	t.connected = true

	return nil
}

// Connected reports whether the connection is open and has not seen a read
// or write failure.
func (t *TCPTransport) Connected() bool {
	return t.connected
}

// Available returns the number of buffered bytes. If nothing is buffered it
// waits briefly for the socket to become readable. A closed or failed
// connection is marked disconnected.
func (t *TCPTransport) Available() int {
	if !t.connected {
		return 0
	}

	if n := t.reader.Buffered(); n > 0 {
		return n
	}

	if err := t.conn.SetReadDeadline(time.Now().Add(peekTimeout)); err != nil {
		t.Close()
		return 0
	}

	_, err := t.reader.Peek(1)

	// Clear the deadline so it can't leak into anything else.
	t.conn.SetReadDeadline(time.Time{})

	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return 0
		}

		t.Close()
		return 0
	}

	return t.reader.Buffered()
}

// Read copies at most Available() bytes into p.
func (t *TCPTransport) Read(p []byte) (int, error) {
	if !t.connected {
		return 0, net.ErrClosed
	}

	n := t.reader.Buffered()
	if n == 0 {
		return 0, nil
	}
	if len(p) > n {
		p = p[:n]
	}

	return t.reader.Read(p)
}

// Write sends p. Any failure marks the transport disconnected.
func (t *TCPTransport) Write(p []byte) (int, error) {
	if !t.connected {
		return 0, net.ErrClosed
	}

	if t.DebugCallback != nil {
		t.DebugCallback(strings.TrimRight(string(p), "\r\n"))
	}

	if t.WriteTimeout > 0 {
		err := t.conn.SetWriteDeadline(time.Now().Add(t.WriteTimeout))
		if err != nil {
			t.Close()
			return 0, err
		}
	}

	n, err := t.conn.Write(p)
	if err != nil {
		t.Close()
	}

	return n, err
}

// Close shuts the connection down. It is safe to call more than once.
func (t *TCPTransport) Close() error {
	t.connected = false
	if t.conn == nil {
		return nil
	}

	err := t.conn.Close()
	t.conn = nil
	t.reader = nil

	return err
}
