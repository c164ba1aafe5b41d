// Package session owns the single TCP sync connection to the peer.
//
// A Session moves between Disconnected, Connecting and Connected. Exactly one
// read loop runs while Connected. Every transition into Connected or back to
// Disconnected is published once on the state stream, which replays the
// latest value to new subscribers.
package session

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"syscall"
	"time"

	"go.klb.dev/lanclip/internal/clip"
	"go.klb.dev/lanclip/internal/events"
	"go.klb.dev/lanclip/internal/message"
	"go.klb.dev/lanclip/internal/wire"
)

const (
	// DialTimeout bounds connection establishment.
	DialTimeout = 5 * time.Second

	// IdleTimeout is how long the read loop waits for the next record
	// before treating the peer as gone.
	IdleTimeout = 30 * time.Second

	previewRunes = 30
)

// ErrNotConnected is returned by Send when there is no live connection.
var ErrNotConnected = errors.New("session: not connected")

// State is the connection state.
type State int

const (
	Disconnected State = iota
	Connecting
	Connected
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// Config configures a Session.
type Config struct {
	Bridge clip.Bridge
	Log    *events.Log

	// ImageDir receives clipboard_<millis>.png files for incoming images.
	// Default $TMPDIR/lanclip-images.
	ImageDir string

	DialTimeout time.Duration
	// IdleTimeout applies to dialled connections. Negative disables it.
	IdleTimeout time.Duration

	Now func() time.Time

	// OnText and OnImage are told about every value from the peer just
	// before it is written to the local clipboard, so the change detector
	// does not echo it back.
	OnText  func(text string)
	OnImage func(png []byte)
}

type readerHandle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Session is the sync connection.
type Session struct {
	cfg    Config
	log    *events.Log
	states *events.Stream[bool]

	// lifeMu serialises Connect, Adopt and Stop.
	lifeMu sync.Mutex

	mu         sync.Mutex
	state      State
	conn       *wire.Conn
	reader     *readerHandle
	dialCancel context.CancelFunc
}

// New returns a disconnected session.
func New(cfg Config) *Session {
	if cfg.Log == nil {
		cfg.Log = events.NewLog(nil)
	}
	if cfg.Bridge == nil {
		cfg.Bridge = clip.NewMemory()
	}
	if cfg.ImageDir == "" {
		cfg.ImageDir = filepath.Join(os.TempDir(), "lanclip-images")
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = DialTimeout
	}
	if cfg.IdleTimeout == 0 {
		cfg.IdleTimeout = IdleTimeout
	}
	if cfg.IdleTimeout < 0 {
		cfg.IdleTimeout = 0
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Session{
		cfg:    cfg,
		log:    cfg.Log,
		states: events.NewReplay[bool]("connection"),
	}
}

// States subscribes to connection-state changes: true on Connected, false on
// Disconnected. The latest value is replayed.
func (s *Session) States() *events.Subscription[bool] { return s.states.Subscribe() }

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Connected reports whether the session is Connected.
func (s *Session) Connected() bool { return s.State() == Connected }

// RemoteAddr returns the peer address, or "" when not connected.
func (s *Session) RemoteAddr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return ""
	}
	return s.conn.RemoteAddr().String()
}

// Connect dials host:port, replacing any existing connection. The old socket
// is closed and its read loop joined before the dial starts.
func (s *Session) Connect(ctx context.Context, host string, port int) error {
	s.lifeMu.Lock()
	defer s.lifeMu.Unlock()

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	s.teardown()
	s.log.Infof("connecting to %s...", addr)

	dctx, cancel := context.WithTimeout(ctx, s.cfg.DialTimeout)
	s.mu.Lock()
	s.state = Connecting
	s.dialCancel = cancel
	s.mu.Unlock()

	var d net.Dialer
	conn, err := d.DialContext(dctx, "tcp", addr)
	cancel()

	s.mu.Lock()
	s.dialCancel = nil
	s.mu.Unlock()

	if err != nil {
		s.setState(Disconnected)
		s.log.Errorf("%s", describeDialError(err))
		return fmt.Errorf("connect %s: %w", addr, err)
	}

	s.attach(conn, s.cfg.IdleTimeout)
	s.log.Infof("connected to %s", addr)
	return nil
}

// Adopt takes ownership of an accepted connection, replacing any existing
// one. Adopted connections have no idle deadline: the dialling side is the
// one that gives up on a silent peer.
func (s *Session) Adopt(conn net.Conn) {
	s.lifeMu.Lock()
	defer s.lifeMu.Unlock()

	s.teardown()
	s.attach(conn, 0)
	s.log.Infof("peer connected: %s", conn.RemoteAddr())
}

// Stop closes the connection. A dial in progress is aborted.
func (s *Session) Stop() {
	s.mu.Lock()
	if s.dialCancel != nil {
		s.dialCancel()
	}
	s.mu.Unlock()

	s.lifeMu.Lock()
	defer s.lifeMu.Unlock()
	if s.teardown() {
		s.log.Infof("disconnected")
	}
}

// teardown cancels and joins the read loop and closes the socket. It reports
// whether a live connection was closed. Caller holds lifeMu.
func (s *Session) teardown() bool {
	s.mu.Lock()
	conn, reader := s.conn, s.reader
	s.conn, s.reader = nil, nil
	s.mu.Unlock()

	if reader != nil {
		reader.cancel()
		<-reader.done
	}
	if conn == nil {
		return false
	}
	_ = conn.Close()
	s.setState(Disconnected)
	return true
}

func (s *Session) attach(raw net.Conn, idle time.Duration) {
	c := wire.New(raw)
	ctx, cancel := context.WithCancel(context.Background())
	h := &readerHandle{cancel: cancel, done: make(chan struct{})}

	s.mu.Lock()
	s.conn = c
	s.reader = h
	s.setStateLocked(Connected)
	s.mu.Unlock()

	go func() {
		defer close(h.done)
		stop := context.AfterFunc(ctx, c.Interrupt)
		defer stop()
		s.readLoop(ctx, c, idle)
	}()
}

// setState records st and publishes the transition. Repeated Disconnected
// and Connecting are not published.
func (s *Session) setState(st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setStateLocked(st)
}

// setStateLocked is setState with s.mu held. Publishing under the lock keeps
// the event order equal to the state order; Publish never blocks.
func (s *Session) setStateLocked(st State) {
	prev := s.state
	s.state = st
	switch {
	case st == Connected:
		s.states.Publish(true)
	case st == Disconnected && prev != Disconnected:
		s.states.Publish(false)
	}
}

// lost handles the read loop ending on its own. Only the current connection
// may move the session to Disconnected, and only from Connected: a stale
// loop exiting after a newer attach leaves the session alone.
func (s *Session) lost(c *wire.Conn, err error) {
	s.mu.Lock()
	current := s.conn == c
	if current {
		s.conn = nil
		s.reader = nil
		if s.state == Connected {
			s.setStateLocked(Disconnected)
		}
	}
	s.mu.Unlock()
	_ = c.Close()
	if current {
		s.log.Warnf("connection lost: %v", err)
	}
}

func (s *Session) readLoop(ctx context.Context, c *wire.Conn, idle time.Duration) {
	for {
		m, err := c.ReadMsg(idle)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			var de *message.DecodeError
			switch {
			case errors.As(err, &de):
				s.log.Warnf("message parse failed: %v", err)
				continue
			case errors.Is(err, wire.ErrTooLarge):
				s.log.Warnf("dropped oversized message")
				continue
			}
			s.lost(c, describeReadError(err))
			return
		}
		if ctx.Err() != nil {
			return
		}
		s.dispatch(m)
	}
}

func (s *Session) dispatch(m message.Message) {
	switch m.ContentType {
	case message.ContentText:
		s.log.Infof("received text: %s", message.Preview(m.Content, previewRunes))
		if s.cfg.OnText != nil {
			s.cfg.OnText(m.Content)
		}
		if err := s.cfg.Bridge.WriteText(m.Content); err != nil {
			s.log.Errorf("saving text to clipboard failed: %v", err)
			return
		}
	case message.ContentPNG:
		s.log.Infof("received image (%d KB)", len(m.Content)/1024)
		data, err := m.ImageBytes()
		if err != nil {
			s.log.Errorf("saving image failed: %v", err)
			return
		}
		path, err := s.saveImage(data)
		if err != nil {
			s.log.Errorf("saving image failed: %v", err)
			return
		}
		if s.cfg.OnImage != nil {
			s.cfg.OnImage(data)
		}
		if err := s.cfg.Bridge.WriteImage(clip.Image{Path: path, PNG: data}); err != nil {
			s.log.Errorf("saving image to clipboard failed: %v", err)
			return
		}
	default:
		s.log.Warnf("unknown content type: %s", m.ContentType)
	}
}

func (s *Session) saveImage(data []byte) (string, error) {
	if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("not a PNG: %w", err)
	}
	if err := os.MkdirAll(s.cfg.ImageDir, 0o700); err != nil {
		return "", fmt.Errorf("image dir: %w", err)
	}
	path := filepath.Join(s.cfg.ImageDir, fmt.Sprintf("clipboard_%d.png", s.cfg.Now().UnixMilli()))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// Send writes m to the peer. Failures are logged and returned; the read loop
// notices a dead connection on its own.
func (s *Session) Send(m message.Message) error {
	s.mu.Lock()
	c := s.conn
	connected := s.state == Connected
	s.mu.Unlock()
	if c == nil || !connected {
		return ErrNotConnected
	}
	if err := c.WriteMsg(m); err != nil {
		s.log.Errorf("send failed: %v", err)
		return fmt.Errorf("send: %w", err)
	}
	return nil
}

// SendText sends a text/plain message stamped now.
func (s *Session) SendText(text string) error {
	if err := s.Send(message.NewText(text, s.cfg.Now())); err != nil {
		return err
	}
	s.log.Infof("sent text: %s", message.Preview(text, previewRunes))
	return nil
}

// SendImage sends an image/png message stamped now.
func (s *Session) SendImage(data []byte) error {
	if err := s.Send(message.NewImage(data, s.cfg.Now())); err != nil {
		return err
	}
	s.log.Infof("sent image (%d KB)", len(data)/1024)
	return nil
}

func describeDialError(err error) string {
	var ne net.Error
	switch {
	case errors.Is(err, syscall.ECONNREFUSED):
		return fmt.Sprintf("connection refused: %v", err)
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &ne) && ne.Timeout():
		return "connection timed out: check the network and firewall settings"
	case errors.Is(err, context.Canceled):
		return "connection cancelled"
	default:
		return fmt.Sprintf("connection failed: %v", err)
	}
}

func describeReadError(err error) error {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return fmt.Errorf("no data for the idle timeout: %w", err)
	}
	return err
}
