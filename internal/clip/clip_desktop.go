//go:build darwin || windows || linux

package clip

import (
	"log/slog"
	"sync"

	"golang.design/x/clipboard"
)

type desktopBackend struct {
	mu sync.Mutex
}

// New returns the system clipboard, or a Memory clipboard if the display
// environment is unavailable. clipboard.Init is called here rather than in
// init() so that CLI sub-commands talking to a daemon don't trigger the
// warning.
func New() Backend {
	if err := clipboard.Init(); err != nil {
		slog.Warn("clipboard unavailable, running headless", "err", err)
		return NewMemory()
	}
	return &desktopBackend{}
}

func (b *desktopBackend) Name() string { return "system clipboard" }
func (b *desktopBackend) Close()       {}

func (b *desktopBackend) ReadText() (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(clipboard.Read(clipboard.FmtText)), nil
}

func (b *desktopBackend) ReadImage() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return clipboard.Read(clipboard.FmtImage), nil
}

func (b *desktopBackend) WriteText(text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

func (b *desktopBackend) WriteImage(img Image) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	clipboard.Write(clipboard.FmtImage, img.PNG)
	return nil
}
