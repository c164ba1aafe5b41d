package wire

import (
	"errors"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"go.klb.dev/lanclip/internal/message"
)

func pipe(t *testing.T) (*Conn, net.Conn) {
	t.Helper()
	a, b := net.Pipe()
	t.Cleanup(func() {
		a.Close()
		b.Close()
	})
	return New(a), b
}

func writeAsync(w io.Writer, s string) {
	go func() { _, _ = io.WriteString(w, s) }()
}

func TestReadLine_SplitsRecords(t *testing.T) {
	c, peer := pipe(t)
	writeAsync(peer, "first\r\nsecond\n")

	for _, want := range []string{"first", "second"} {
		got, err := c.ReadLine(time.Second)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

func TestReadLine_IdleTimeout(t *testing.T) {
	c, _ := pipe(t)

	_, err := c.ReadLine(20 * time.Millisecond)
	var ne net.Error
	if !errors.As(err, &ne) || !ne.Timeout() {
		t.Fatalf("expected timeout error, got %v", err)
	}
}

func TestReadLine_EOF(t *testing.T) {
	c, peer := pipe(t)
	peer.Close()

	if _, err := c.ReadLine(time.Second); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestReadLine_TooLargeSkipsToNextRecord(t *testing.T) {
	c, peer := pipe(t)
	big := strings.Repeat("x", MaxMessageSize+10)
	writeAsync(peer, big+"\nsmall\n")

	if _, err := c.ReadLine(5 * time.Second); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	got, err := c.ReadLine(5 * time.Second)
	if err != nil {
		t.Fatalf("read after oversized record: %v", err)
	}
	if string(got) != "small" {
		t.Errorf("got %q, want small", got)
	}
}

func TestInterrupt_UnblocksRead(t *testing.T) {
	c, _ := pipe(t)

	errCh := make(chan error, 1)
	go func() {
		_, err := c.ReadLine(0)
		errCh <- err
	}()

	time.Sleep(20 * time.Millisecond)
	c.Interrupt()

	select {
	case err := <-errCh:
		if !errors.Is(err, ErrInterrupted) {
			t.Fatalf("expected ErrInterrupted, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("read did not unblock after Interrupt")
	}

	if _, err := c.ReadLine(0); !errors.Is(err, ErrInterrupted) {
		t.Fatalf("later reads: expected ErrInterrupted, got %v", err)
	}
}

func TestReadMsg_MalformedThenValid(t *testing.T) {
	c, peer := pipe(t)
	writeAsync(peer, "not json\n"+`{"type":"clipboard","contentType":"text/plain","content":"ok","timestamp":1}`+"\n")

	_, err := c.ReadMsg(time.Second)
	var de *message.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected DecodeError, got %v", err)
	}

	m, err := c.ReadMsg(time.Second)
	if err != nil {
		t.Fatalf("read valid record: %v", err)
	}
	if m.Content != "ok" {
		t.Errorf("got %+v", m)
	}
}

func TestWriteMsg_RoundTrip(t *testing.T) {
	a, b := net.Pipe()
	defer a.Close()
	defer b.Close()
	w, r := New(a), New(b)

	sent := message.NewText("hello", time.UnixMilli(42))
	go func() { _ = w.WriteMsg(sent) }()

	got, err := r.ReadMsg(time.Second)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != sent {
		t.Errorf("got %+v, want %+v", got, sent)
	}
}
