package engine

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"net"
	"strconv"
	"testing"
	"time"

	"go.klb.dev/lanclip/internal/clip"
	"go.klb.dev/lanclip/internal/message"
)

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func newEngine(t *testing.T, mod func(*Config)) (*Engine, *clip.Memory) {
	t.Helper()
	mem := clip.NewMemory()
	cfg := Config{
		Role:          RoleMobile,
		Bridge:        mem,
		Logger:        quiet(),
		ImageDir:      t.TempDir(),
		DiscoveryAddr: "127.0.0.1:0",
		PollInterval:  10 * time.Millisecond,
	}
	if mod != nil {
		mod(&cfg)
	}
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	t.Cleanup(e.Close)
	return e, mem
}

// remotePeer accepts one connection and exposes its lines.
type remotePeer struct {
	host  string
	port  int
	conn  chan net.Conn
	lines chan string
}

func newRemote(t *testing.T) *remotePeer {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { ln.Close() })
	h, p, _ := net.SplitHostPort(ln.Addr().String())
	port, _ := strconv.Atoi(p)
	r := &remotePeer{host: h, port: port, conn: make(chan net.Conn, 1), lines: make(chan string, 16)}
	go func() {
		c, err := ln.Accept()
		if err != nil {
			return
		}
		r.conn <- c
		sc := bufio.NewScanner(c)
		for sc.Scan() {
			r.lines <- sc.Text()
		}
	}()
	return r
}

func (r *remotePeer) accepted(t *testing.T) net.Conn {
	t.Helper()
	select {
	case c := <-r.conn:
		t.Cleanup(func() { c.Close() })
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("no connection")
		return nil
	}
}

func (r *remotePeer) expectText(t *testing.T, want string) {
	t.Helper()
	select {
	case line := <-r.lines:
		m, err := message.Decode([]byte(line))
		if err != nil {
			t.Fatalf("decode %q: %v", line, err)
		}
		if m.Content != want {
			t.Fatalf("got %q, want %q", m.Content, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("peer never received %q", want)
	}
}

func (r *remotePeer) expectSilence(t *testing.T, d time.Duration) {
	t.Helper()
	select {
	case line := <-r.lines:
		t.Fatalf("unexpected record %s", line)
	case <-time.After(d):
	}
}

func waitUntil(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestNew_UnknownRole(t *testing.T) {
	if _, err := New(Config{Role: "tablet"}); err == nil {
		t.Fatal("expected an error for an unknown role")
	}
}

func TestSetAutoSync_Idempotent(t *testing.T) {
	e, mem := newEngine(t, nil)
	r := newRemote(t)
	if err := e.Connect(context.Background(), r.host, r.port); err != nil {
		t.Fatal(err)
	}
	r.accepted(t)

	e.SetAutoSync(true)
	waitUntil(t, "monitor start", e.MonitorRunning)
	e.monMu.Lock()
	first := e.monitor
	e.monMu.Unlock()

	e.SetAutoSync(true)
	e.monMu.Lock()
	second := e.monitor
	e.monMu.Unlock()
	if first != second {
		t.Fatal("enabling twice started a second monitor task")
	}

	mem.SetText("copied once")
	r.expectText(t, "copied once")
	r.expectSilence(t, 100*time.Millisecond)

	e.SetAutoSync(false)
	if e.MonitorRunning() {
		t.Error("monitor still running after disable")
	}
	mem.SetText("ignored")
	r.expectSilence(t, 100*time.Millisecond)
}

func TestAutoSync_FollowsConnection(t *testing.T) {
	e, mem := newEngine(t, nil)
	e.SetAutoSync(true)
	if e.MonitorRunning() {
		t.Fatal("monitor running while disconnected")
	}

	r := newRemote(t)
	if err := e.Connect(context.Background(), r.host, r.port); err != nil {
		t.Fatal(err)
	}
	conn := r.accepted(t)
	waitUntil(t, "monitor start on connect", e.MonitorRunning)

	mem.SetText("hello")
	r.expectText(t, "hello")

	conn.Close()
	waitUntil(t, "monitor stop on disconnect", func() bool { return !e.MonitorRunning() })
}

func TestAutoSync_NoLoopback(t *testing.T) {
	e, mem := newEngine(t, nil)
	e.SetAutoSync(true)
	r := newRemote(t)
	if err := e.Connect(context.Background(), r.host, r.port); err != nil {
		t.Fatal(err)
	}
	conn := r.accepted(t)

	raw, _ := message.Encode(message.NewText("from peer", time.Now()))
	_, _ = conn.Write(raw)

	waitUntil(t, "clipboard write", func() bool { return len(mem.Texts()) == 1 })
	r.expectSilence(t, 150*time.Millisecond)
}

func TestStop_HaltsMonitor(t *testing.T) {
	e, _ := newEngine(t, nil)
	e.SetAutoSync(true)
	r := newRemote(t)
	if err := e.Connect(context.Background(), r.host, r.port); err != nil {
		t.Fatal(err)
	}
	r.accepted(t)
	waitUntil(t, "monitor start", e.MonitorRunning)

	e.Stop()
	if e.MonitorRunning() {
		t.Error("monitor running after Stop")
	}
	if e.Session().Connected() {
		t.Error("still connected after Stop")
	}
	if !e.AutoSync() {
		t.Error("Stop should not clear the AutoSync flag")
	}
}

func TestDesktopToMobile(t *testing.T) {
	free, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	freePort := free.Addr().(*net.TCPAddr).Port
	free.Close()

	desk, deskMem := newEngine(t, func(c *Config) {
		c.Role = RoleDesktop
		c.ListenAddr = "127.0.0.1"
		c.FirstPort, c.LastPort = freePort, freePort
		c.DisableAnnouncing = true
	})
	if err := desk.Start(); err != nil {
		t.Fatalf("desktop start: %v", err)
	}
	port := desk.SyncPort()
	if port == 0 {
		t.Fatal("desktop reports no sync port")
	}

	mobile, mobileMem := newEngine(t, nil)
	if err := mobile.Connect(context.Background(), "127.0.0.1", int(port)); err != nil {
		t.Fatalf("connect: %v", err)
	}
	waitUntil(t, "desktop adopts", desk.Session().Connected)

	if err := mobile.SendText("to desktop"); err != nil {
		t.Fatal(err)
	}
	waitUntil(t, "desktop clipboard", func() bool { return len(deskMem.Texts()) == 1 })

	if err := desk.SendText("to mobile"); err != nil {
		t.Fatal(err)
	}
	waitUntil(t, "mobile clipboard", func() bool { return len(mobileMem.Texts()) == 1 })
	if got := mobileMem.Texts()[0]; got != "to mobile" {
		t.Errorf("mobile got %q", got)
	}
}

func TestClipboardName(t *testing.T) {
	e, _ := newEngine(t, nil)
	if got := e.ClipboardName(); got != "memory" {
		t.Errorf("got %q", got)
	}
}

func TestPeerDevice(t *testing.T) {
	e, _ := newEngine(t, nil)
	if _, ok := e.PeerDevice(); ok {
		t.Fatal("peer device while disconnected")
	}
	if err := e.StartDiscovery(); err != nil {
		t.Fatalf("discovery: %v", err)
	}

	r := newRemote(t)
	b := message.NewBeacon(message.RoleDesktop, "DESK-1", r.host, uint16(r.port), time.Now())
	raw, _ := message.EncodeBeacon(b)
	uc, err := net.Dial("udp", e.disco.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	defer uc.Close()
	if _, err := uc.Write(raw); err != nil {
		t.Fatal(err)
	}
	waitUntil(t, "beacon", func() bool { return len(e.Devices()) == 1 })

	if err := e.Connect(context.Background(), r.host, r.port); err != nil {
		t.Fatalf("connect: %v", err)
	}
	r.accepted(t)

	if e.PeerAddr() == "" {
		t.Error("no peer address while connected")
	}
	d, ok := e.PeerDevice()
	if !ok || d.DeviceName != "DESK-1" {
		t.Errorf("peer device: %+v, %v", d, ok)
	}
}
