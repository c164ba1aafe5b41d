// Package monitor polls the local clipboard and forwards new content to the
// peer.
//
// A Detector remembers the last value it saw or was told about. A value is
// sent only when it is non-empty and differs from that memory, which
// suppresses both repeated polls of unchanged content and echoes of content
// that just arrived from the peer.
package monitor

import (
	"context"
	"crypto/sha256"
	"sync"
	"time"

	"go.klb.dev/lanclip/internal/clip"
	"go.klb.dev/lanclip/internal/events"
)

// PollInterval is the clipboard poll cadence.
const PollInterval = time.Second

// Config configures a Detector.
type Config struct {
	Bridge clip.Bridge

	// SendText and SendImage deliver a changed value to the peer.
	SendText  func(text string) error
	SendImage func(png []byte) error

	// Enabled and Connected gate each tick. When either reports false the
	// Run loop returns.
	Enabled   func() bool
	Connected func() bool

	// Images enables image polling.
	Images bool

	Interval time.Duration
	Log      *events.Log
}

// Detector is the change detector.
type Detector struct {
	cfg Config
	log *events.Log

	mu       sync.Mutex
	lastText string
	lastImg  [sha256.Size]byte
	hasImg   bool
}

func New(cfg Config) *Detector {
	if cfg.Interval <= 0 {
		cfg.Interval = PollInterval
	}
	if cfg.Log == nil {
		cfg.Log = events.NewLog(nil)
	}
	if cfg.Enabled == nil {
		cfg.Enabled = func() bool { return true }
	}
	if cfg.Connected == nil {
		cfg.Connected = func() bool { return true }
	}
	return &Detector{cfg: cfg, log: cfg.Log}
}

// Observe records text as the last seen value. The session calls it with
// text received from the peer before writing it to the clipboard.
func (d *Detector) Observe(text string) {
	d.mu.Lock()
	d.lastText = text
	d.mu.Unlock()
}

// ObserveImage records an image received from the peer.
func (d *Detector) ObserveImage(png []byte) {
	sum := sha256.Sum256(png)
	d.mu.Lock()
	d.lastImg, d.hasImg = sum, true
	d.mu.Unlock()
}

// Run polls until ctx is done, the detector is disabled, or the session
// disconnects.
func (d *Detector) Run(ctx context.Context) {
	d.log.Infof("clipboard monitoring started")
	defer d.log.Debugf("clipboard monitoring stopped")

	t := time.NewTicker(d.cfg.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
		if !d.cfg.Enabled() || !d.cfg.Connected() {
			return
		}
		d.Tick()
	}
}

// Tick performs one poll.
func (d *Detector) Tick() {
	if d.cfg.Images && d.tickImage() {
		return
	}
	d.tickText()
}

func (d *Detector) tickText() {
	text, err := d.cfg.Bridge.ReadText()
	if err != nil {
		d.log.Warnf("reading clipboard failed: %v", err)
		return
	}
	if text == "" {
		return
	}
	d.mu.Lock()
	changed := text != d.lastText
	if changed {
		d.lastText = text
		d.hasImg = false
	}
	d.mu.Unlock()
	if changed && d.cfg.SendText != nil {
		_ = d.cfg.SendText(text)
	}
}

// tickImage reports whether the clipboard held an image.
func (d *Detector) tickImage() bool {
	img, err := d.cfg.Bridge.ReadImage()
	if err != nil {
		d.log.Warnf("reading clipboard image failed: %v", err)
		return false
	}
	if len(img) == 0 {
		return false
	}
	sum := sha256.Sum256(img)
	d.mu.Lock()
	changed := !d.hasImg || sum != d.lastImg
	if changed {
		d.lastImg, d.hasImg = sum, true
		d.lastText = ""
	}
	d.mu.Unlock()
	if changed {
		d.log.Infof("new image detected (%d KB)", len(img)/1024)
		if d.cfg.SendImage != nil {
			_ = d.cfg.SendImage(img)
		}
	}
	return true
}
