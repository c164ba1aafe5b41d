// Package wire handles reading and writing newline-delimited records over a
// net.Conn.
//
// Wire format:
//
//	<json>\n
//
// Every line is exactly one record. Lines longer than MaxMessageSize are
// skipped up to the next newline and reported as ErrTooLarge, so one bad
// record never desynchronises the stream.
package wire

import (
	"bufio"
	"bytes"
	"errors"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"go.klb.dev/lanclip/internal/message"
)

const (
	// MaxMessageSize is the largest record we will read (32 MiB, enough for
	// a base64-encoded full-resolution screenshot).
	MaxMessageSize = 32 * 1024 * 1024

	writeDeadline = 10 * time.Second
)

var (
	// ErrTooLarge is returned by ReadLine for an oversized record. The
	// record has been consumed; the next call reads the following line.
	ErrTooLarge = errors.New("wire: record too large")

	// ErrInterrupted is returned by reads after Interrupt.
	ErrInterrupted = errors.New("wire: read interrupted")
)

// Conn wraps a net.Conn with buffered newline framing.
type Conn struct {
	conn        net.Conn
	br          *bufio.Reader
	wmu         sync.Mutex
	interrupted atomic.Bool
}

// New wraps conn.
func New(conn net.Conn) *Conn {
	return &Conn{
		conn: conn,
		br:   bufio.NewReaderSize(conn, 64*1024),
	}
}

// Close closes the underlying connection.
func (c *Conn) Close() error { return c.conn.Close() }

// RemoteAddr returns the remote network address.
func (c *Conn) RemoteAddr() net.Addr { return c.conn.RemoteAddr() }

// Interrupt unblocks a pending ReadLine without closing the connection.
// Every later read fails with ErrInterrupted.
func (c *Conn) Interrupt() {
	c.interrupted.Store(true)
	_ = c.conn.SetReadDeadline(time.Now())
}

func (c *Conn) setReadDeadline(d time.Duration) {
	if d == 0 {
		_ = c.conn.SetReadDeadline(time.Time{})
	} else {
		_ = c.conn.SetReadDeadline(time.Now().Add(d))
	}
	// Interrupt may have run between the caller's check and the deadline
	// above; re-arm it so the read cannot block.
	if c.interrupted.Load() {
		_ = c.conn.SetReadDeadline(time.Now())
	}
}

// ReadLine reads one record without its trailing newline (and optional
// carriage return). idle bounds how long the read may wait for the whole
// line; zero disables the deadline.
func (c *Conn) ReadLine(idle time.Duration) ([]byte, error) {
	if c.interrupted.Load() {
		return nil, ErrInterrupted
	}
	c.setReadDeadline(idle)

	var (
		line     []byte
		tooLarge bool
	)
	for {
		chunk, err := c.br.ReadSlice('\n')
		if !tooLarge {
			if len(line)+len(chunk) > MaxMessageSize+1 {
				tooLarge = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		if err == nil {
			break
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if c.interrupted.Load() {
			return nil, ErrInterrupted
		}
		return nil, err
	}
	if tooLarge {
		return nil, ErrTooLarge
	}
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	return line, nil
}

// ReadMsg reads and decodes one clipboard record. A malformed record yields
// a *message.DecodeError and leaves the stream positioned at the next line.
func (c *Conn) ReadMsg(idle time.Duration) (message.Message, error) {
	line, err := c.ReadLine(idle)
	if err != nil {
		return message.Message{}, err
	}
	return message.Decode(line)
}

// WriteLine writes raw, which must already end in a newline.
func (c *Conn) WriteLine(raw []byte) error {
	c.wmu.Lock()
	defer c.wmu.Unlock()

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	_, err := c.conn.Write(raw)
	_ = c.conn.SetWriteDeadline(time.Time{})
	return err
}

// WriteMsg encodes m and writes it as one record.
func (c *Conn) WriteMsg(m message.Message) error {
	raw, err := message.Encode(m)
	if err != nil {
		return err
	}
	return c.WriteLine(raw)
}
