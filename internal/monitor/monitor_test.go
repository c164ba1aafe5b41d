package monitor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.klb.dev/lanclip/internal/clip"
	"go.klb.dev/lanclip/internal/events"
)

type recorder struct {
	mu     sync.Mutex
	texts  []string
	images [][]byte
}

func (r *recorder) sendText(text string) error {
	r.mu.Lock()
	r.texts = append(r.texts, text)
	r.mu.Unlock()
	return nil
}

func (r *recorder) sendImage(png []byte) error {
	r.mu.Lock()
	r.images = append(r.images, png)
	r.mu.Unlock()
	return nil
}

func (r *recorder) Texts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.texts...)
}

func newDetector(mem *clip.Memory, rec *recorder, mod func(*Config)) *Detector {
	cfg := Config{
		Bridge:    mem,
		SendText:  rec.sendText,
		SendImage: rec.sendImage,
		Interval:  5 * time.Millisecond,
		Log:       events.NewLog(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	if mod != nil {
		mod(&cfg)
	}
	return New(cfg)
}

func TestTick_DuplicateSuppression(t *testing.T) {
	mem, rec := clip.NewMemory(), &recorder{}
	d := newDetector(mem, rec, nil)

	mem.SetText("A")
	d.Tick()
	d.Tick()
	mem.SetText("B")
	d.Tick()
	mem.SetText("B")
	d.Tick()

	got := rec.Texts()
	if len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Errorf("sent %v, want [A B]", got)
	}
}

func TestTick_EmptyIsIgnored(t *testing.T) {
	mem, rec := clip.NewMemory(), &recorder{}
	d := newDetector(mem, rec, nil)

	d.Tick()
	if n := len(rec.Texts()); n != 0 {
		t.Errorf("sent %d messages for an empty clipboard", n)
	}
}

func TestObserve_SuppressesLoopback(t *testing.T) {
	mem, rec := clip.NewMemory(), &recorder{}
	d := newDetector(mem, rec, nil)

	// The session writes a received value and tells the detector.
	_ = mem.WriteText("from peer")
	d.Observe("from peer")
	d.Tick()

	if n := len(rec.Texts()); n != 0 {
		t.Errorf("received text was echoed back %d times", n)
	}
}

func TestTick_ReadErrorContinues(t *testing.T) {
	mem, rec := clip.NewMemory(), &recorder{}
	d := newDetector(mem, rec, nil)

	mem.SetText("A")
	mem.FailReads(errors.New("clipboard busy"))
	d.Tick()
	mem.FailReads(nil)
	d.Tick()

	if got := rec.Texts(); len(got) != 1 || got[0] != "A" {
		t.Errorf("sent %v, want [A]", got)
	}
}

func TestTick_Images(t *testing.T) {
	mem, rec := clip.NewMemory(), &recorder{}
	d := newDetector(mem, rec, func(c *Config) { c.Images = true })

	mem.SetImage([]byte{0x89, 'P', 'N', 'G', 1})
	d.Tick()
	d.Tick()
	d.ObserveImage([]byte{0x89, 'P', 'N', 'G', 2})
	mem.SetImage([]byte{0x89, 'P', 'N', 'G', 2})
	d.Tick()
	mem.SetText("A")
	d.Tick()

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.images) != 1 {
		t.Errorf("sent %d images, want 1", len(rec.images))
	}
	if len(rec.texts) != 1 || rec.texts[0] != "A" {
		t.Errorf("sent texts %v, want [A]", rec.texts)
	}
}

func TestRun_StopsWhenDisabled(t *testing.T) {
	mem, rec := clip.NewMemory(), &recorder{}
	var enabled atomic.Bool
	enabled.Store(true)
	d := newDetector(mem, rec, func(c *Config) { c.Enabled = enabled.Load })

	done := make(chan struct{})
	go func() {
		d.Run(context.Background())
		close(done)
	}()

	mem.SetText("A")
	deadline := time.Now().Add(2 * time.Second)
	for len(rec.Texts()) == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if len(rec.Texts()) != 1 {
		t.Fatalf("sent %v", rec.Texts())
	}

	enabled.Store(false)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run kept going after disable")
	}
}

func TestRun_StopsWhenDisconnected(t *testing.T) {
	mem, rec := clip.NewMemory(), &recorder{}
	d := newDetector(mem, rec, func(c *Config) { c.Connected = func() bool { return false } })
	mem.SetText("A")

	done := make(chan struct{})
	go func() {
		d.Run(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run kept going while disconnected")
	}
	if n := len(rec.Texts()); n != 0 {
		t.Errorf("sent %d while disconnected", n)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	d := newDetector(clip.NewMemory(), &recorder{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run ignored cancellation")
	}
}
