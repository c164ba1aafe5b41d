// Package host accepts sync connections on the desktop side.
package host

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync/atomic"
)

const (
	// FirstPort and LastPort bound the sync ports tried, in order.
	FirstPort = 5150
	LastPort  = 5169
)

// ErrNoFreePort is returned when every port in the range is taken.
var ErrNoFreePort = errors.New("host: no free port in range")

// Adopter takes ownership of an accepted connection.
type Adopter interface {
	Adopt(conn net.Conn)
}

// Listener is the TCP accept loop.
type Listener struct {
	ln     net.Listener
	port   atomic.Uint32
	target Adopter
	log    *slog.Logger
}

// Listen binds the first free port in [first, last] on addr (empty for all
// interfaces). Port 0 for both picks an ephemeral port.
func Listen(addr string, first, last int, target Adopter, logger *slog.Logger) (*Listener, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var lastErr error
	for port := first; port <= last; port++ {
		ln, err := net.Listen("tcp4", net.JoinHostPort(addr, fmt.Sprint(port)))
		if err != nil {
			lastErr = err
			continue
		}
		l := &Listener{ln: ln, target: target, log: logger.With("component", "host")}
		l.port.Store(uint32(ln.Addr().(*net.TCPAddr).Port))
		return l, nil
	}
	return nil, fmt.Errorf("%w [%d, %d]: %w", ErrNoFreePort, first, last, lastErr)
}

// Port returns the bound port, or 0 once closed. It satisfies the
// announcer's port callback.
func (l *Listener) Port() uint16 { return uint16(l.port.Load()) }

// Addr returns the bound address.
func (l *Listener) Addr() net.Addr { return l.ln.Addr() }

// Close stops accepting.
func (l *Listener) Close() error {
	l.port.Store(0)
	return l.ln.Close()
}

// Serve accepts until ctx is done or the listener is closed. Every accepted
// connection replaces the previous one.
func (l *Listener) Serve(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() { _ = l.Close() })
	defer stop()

	l.log.Info("sync server listening", "addr", l.ln.Addr())
	for {
		conn, err := l.ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			l.log.Warn("accept failed", "err", err)
			continue
		}
		l.log.Debug("accepted", "remote", conn.RemoteAddr())
		l.target.Adopt(conn)
	}
}
