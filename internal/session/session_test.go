package session

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"go.klb.dev/lanclip/internal/clip"
	"go.klb.dev/lanclip/internal/events"
	"go.klb.dev/lanclip/internal/message"
	"go.klb.dev/lanclip/internal/wire"
)

var fixedNow = time.UnixMilli(1_700_000_000_000)

func quietLog() *events.Log {
	return events.NewLog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newSession(t *testing.T, mod func(*Config)) (*Session, *clip.Memory) {
	t.Helper()
	mem := clip.NewMemory()
	cfg := Config{
		Bridge:   mem,
		Log:      quietLog(),
		ImageDir: t.TempDir(),
		Now:      func() time.Time { return fixedNow },
	}
	if mod != nil {
		mod(&cfg)
	}
	s := New(cfg)
	t.Cleanup(s.Stop)
	return s, mem
}

// peer is the remote end of a sync connection.
type peer struct {
	ln    net.Listener
	host  string
	port  int
	conns chan net.Conn
}

func newPeer(t *testing.T) *peer {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })
	host, portStr, _ := net.SplitHostPort(ln.Addr().String())
	port, _ := strconv.Atoi(portStr)
	p := &peer{ln: ln, host: host, port: port, conns: make(chan net.Conn, 4)}
	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			p.conns <- c
		}
	}()
	return p
}

func (p *peer) accept(t *testing.T) net.Conn {
	t.Helper()
	select {
	case c := <-p.conns:
		t.Cleanup(func() { c.Close() })
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("peer: no connection accepted")
		return nil
	}
}

func connect(t *testing.T, s *Session, p *peer) net.Conn {
	t.Helper()
	if err := s.Connect(context.Background(), p.host, p.port); err != nil {
		t.Fatalf("connect: %v", err)
	}
	return p.accept(t)
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func nextState(t *testing.T, sub *events.Subscription[bool]) bool {
	t.Helper()
	select {
	case v := <-sub.C:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for state event")
		return false
	}
}

func noState(t *testing.T, sub *events.Subscription[bool]) {
	t.Helper()
	select {
	case v := <-sub.C:
		t.Fatalf("unexpected state event %v", v)
	case <-time.After(50 * time.Millisecond):
	}
}

func textRecord(text string) string {
	raw, _ := message.Encode(message.NewText(text, fixedNow))
	return string(raw)
}

func TestSendText_WireRecord(t *testing.T) {
	s, _ := newSession(t, nil)
	p := newPeer(t)
	remote := connect(t, s, p)

	if err := s.SendText("hello"); err != nil {
		t.Fatalf("send: %v", err)
	}

	_ = remote.SetReadDeadline(time.Now().Add(2 * time.Second))
	line, err := bufio.NewReader(remote).ReadString('\n')
	if err != nil {
		t.Fatalf("peer read: %v", err)
	}
	want := `{"type":"clipboard","contentType":"text/plain","content":"hello","timestamp":1700000000000}` + "\n"
	if line != want {
		t.Errorf("got %q\nwant %q", line, want)
	}
}

func TestReceiveText(t *testing.T) {
	var (
		mu       sync.Mutex
		observed []string
	)
	s, mem := newSession(t, func(c *Config) {
		c.OnText = func(text string) {
			mu.Lock()
			observed = append(observed, text)
			mu.Unlock()
		}
	})
	p := newPeer(t)
	remote := connect(t, s, p)

	_, _ = io.WriteString(remote, textRecord("from phone"))

	waitFor(t, "clipboard write", func() bool { return len(mem.Texts()) == 1 })
	if got := mem.Texts()[0]; got != "from phone" {
		t.Errorf("clipboard got %q", got)
	}
	mu.Lock()
	defer mu.Unlock()
	if len(observed) != 1 || observed[0] != "from phone" {
		t.Errorf("OnText observed %v", observed)
	}
}

func TestMalformedLineKeepsReading(t *testing.T) {
	s, mem := newSession(t, nil)
	p := newPeer(t)
	remote := connect(t, s, p)

	_, _ = io.WriteString(remote, "this is not json\n")
	_, _ = io.WriteString(remote, `{"type":"clipboard","contentType":"application/x-unknown","content":"?","timestamp":1}`+"\n")
	_, _ = io.WriteString(remote, textRecord("after garbage"))

	waitFor(t, "clipboard write", func() bool { return len(mem.Texts()) == 1 })
	if got := mem.Texts()[0]; got != "after garbage" {
		t.Errorf("got %q", got)
	}
	if !s.Connected() {
		t.Error("session dropped after a malformed line")
	}
}

func TestReceiveImage_SavesFile(t *testing.T) {
	dir := t.TempDir()
	s, mem := newSession(t, func(c *Config) { c.ImageDir = filepath.Join(dir, "cache") })
	p := newPeer(t)
	remote := connect(t, s, p)

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	raw, _ := message.Encode(message.NewImage(buf.Bytes(), fixedNow))
	_, _ = remote.Write(raw)

	waitFor(t, "image write", func() bool { return len(mem.Images()) == 1 })
	got := mem.Images()[0]
	wantPath := filepath.Join(dir, "cache", "clipboard_1700000000000.png")
	if got.Path != wantPath {
		t.Errorf("path: got %s, want %s", got.Path, wantPath)
	}
	onDisk, err := os.ReadFile(wantPath)
	if err != nil {
		t.Fatalf("read cache file: %v", err)
	}
	if !bytes.Equal(onDisk, buf.Bytes()) || !bytes.Equal(got.PNG, buf.Bytes()) {
		t.Error("image bytes differ from what was sent")
	}
}

func TestReceiveImage_NotPNG(t *testing.T) {
	s, mem := newSession(t, nil)
	p := newPeer(t)
	remote := connect(t, s, p)

	raw, _ := message.Encode(message.NewImage([]byte("definitely not a png"), fixedNow))
	_, _ = remote.Write(raw)
	_, _ = io.WriteString(remote, textRecord("next"))

	waitFor(t, "text after bad image", func() bool { return len(mem.Texts()) == 1 })
	if n := len(mem.Images()); n != 0 {
		t.Errorf("bad image reached the clipboard %d times", n)
	}
}

func TestConnectWhileConnected_ReplacesOldPeer(t *testing.T) {
	s, mem := newSession(t, nil)
	states := s.States()
	defer states.Close()

	p1, p2 := newPeer(t), newPeer(t)
	old := connect(t, s, p1)
	if !nextState(t, states) {
		t.Fatal("first event should be connected")
	}

	fresh := connect(t, s, p2)
	if nextState(t, states) {
		t.Fatal("tearing down the old peer should publish disconnected")
	}
	if !nextState(t, states) {
		t.Fatal("expected connected for the new peer")
	}

	_ = old.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, err := old.Read(make([]byte, 1)); err == nil {
		t.Error("old socket still open")
	}
	_, _ = io.WriteString(old, textRecord("stale"))
	_, _ = io.WriteString(fresh, textRecord("fresh"))

	waitFor(t, "fresh text", func() bool { return len(mem.Texts()) >= 1 })
	time.Sleep(50 * time.Millisecond)
	if got := mem.Texts(); len(got) != 1 || got[0] != "fresh" {
		t.Errorf("clipboard writes %v, want only fresh", got)
	}
	if want := p2.ln.Addr().String(); s.RemoteAddr() != want {
		t.Errorf("remote: got %s, want %s", s.RemoteAddr(), want)
	}
}

func TestIdleTimeout_Disconnects(t *testing.T) {
	s, _ := newSession(t, func(c *Config) { c.IdleTimeout = 50 * time.Millisecond })
	states := s.States()
	defer states.Close()
	p := newPeer(t)
	connect(t, s, p)

	if !nextState(t, states) {
		t.Fatal("expected connected")
	}
	if nextState(t, states) {
		t.Fatal("expected disconnected after idle timeout")
	}
	if st := s.State(); st != Disconnected {
		t.Errorf("state: got %v", st)
	}
	noState(t, states)
}

func TestPeerClose_Disconnects(t *testing.T) {
	s, _ := newSession(t, nil)
	p := newPeer(t)
	remote := connect(t, s, p)
	remote.Close()

	waitFor(t, "disconnect", func() bool { return s.State() == Disconnected })
	if err := s.SendText("x"); !errors.Is(err, ErrNotConnected) {
		t.Errorf("send after loss: got %v", err)
	}
}

func TestLost_StaleConnLeavesSession(t *testing.T) {
	s, _ := newSession(t, nil)
	p := newPeer(t)
	connect(t, s, p)

	states := s.States()
	defer states.Close()
	if !nextState(t, states) {
		t.Fatal("want replayed connected")
	}

	a, b := net.Pipe()
	defer b.Close()
	s.lost(wire.New(a), io.EOF)

	if st := s.State(); st != Connected {
		t.Errorf("state after stale loss: got %v", st)
	}
	if s.RemoteAddr() == "" {
		t.Error("current connection dropped by a stale loss")
	}
	noState(t, states)
}

func TestLost_CurrentConnPublishesOnce(t *testing.T) {
	s, _ := newSession(t, nil)
	p := newPeer(t)
	connect(t, s, p)

	states := s.States()
	defer states.Close()
	nextState(t, states)

	s.mu.Lock()
	c := s.conn
	s.mu.Unlock()
	s.lost(c, io.EOF)
	s.lost(c, io.EOF)

	if nextState(t, states) {
		t.Fatal("want disconnected event")
	}
	noState(t, states)
	if st := s.State(); st != Disconnected {
		t.Errorf("state: got %v", st)
	}
}

func TestStates_ReplayToLateSubscriber(t *testing.T) {
	s, _ := newSession(t, nil)
	p := newPeer(t)
	connect(t, s, p)

	late := s.States()
	defer late.Close()
	if !nextState(t, late) {
		t.Error("late subscriber should see connected")
	}
	noState(t, late)
}

func TestConnectRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := ln.Addr().(*net.TCPAddr)
	ln.Close()

	s, _ := newSession(t, nil)
	states := s.States()
	defer states.Close()

	if err := s.Connect(context.Background(), "127.0.0.1", addr.Port); err == nil {
		t.Fatal("connect to a closed port succeeded")
	}
	if nextState(t, states) {
		t.Error("expected disconnected after failed dial")
	}
	if s.State() != Disconnected {
		t.Errorf("state: %v", s.State())
	}
	if err := s.Send(message.NewText("x", fixedNow)); !errors.Is(err, ErrNotConnected) {
		t.Errorf("send: got %v, want ErrNotConnected", err)
	}
}

func TestStop_PublishesOnce(t *testing.T) {
	s, _ := newSession(t, nil)
	states := s.States()
	defer states.Close()
	p := newPeer(t)
	connect(t, s, p)
	_ = nextState(t, states)

	s.Stop()
	if nextState(t, states) {
		t.Fatal("expected disconnected")
	}
	s.Stop()
	noState(t, states)
}

func TestStop_Idle(t *testing.T) {
	s, _ := newSession(t, nil)
	states := s.States()
	defer states.Close()

	s.Stop()
	noState(t, states)
}

func TestAdopt(t *testing.T) {
	s, mem := newSession(t, nil)
	local, remote := net.Pipe()
	defer remote.Close()

	s.Adopt(local)
	if !s.Connected() {
		t.Fatal("not connected after Adopt")
	}

	go func() { _, _ = io.WriteString(remote, textRecord("piped")) }()
	waitFor(t, "piped text", func() bool { return len(mem.Texts()) == 1 })

	go func() { _ = s.SendText("back") }()
	_ = remote.SetReadDeadline(time.Now().Add(2 * time.Second))
	line, err := bufio.NewReader(remote).ReadString('\n')
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	m, err := message.Decode([]byte(line))
	if err != nil || m.Content != "back" {
		t.Errorf("got %+v, %v", m, err)
	}
}

func TestState_String(t *testing.T) {
	for st, want := range map[State]string{
		Disconnected: "disconnected",
		Connecting:   "connecting",
		Connected:    "connected",
		State(9):     "State(9)",
	} {
		if got := st.String(); got != want {
			t.Errorf("%d: got %q, want %q", int(st), got, want)
		}
	}
}
