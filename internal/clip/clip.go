// Package clip provides access to the system clipboard. Build constraints
// select the implementation:
//
//	clip_desktop.go  macOS, Windows and Linux via golang.design/x/clipboard
//	clip_other.go    everything else, backed by Memory
//
// When the desktop clipboard cannot be initialised (a headless Linux server,
// a container) New falls back to an in-process Memory clipboard so the rest
// of the program keeps working.
package clip

// Image is a received image: the PNG bytes and the cache file they were
// written to.
type Image struct {
	Path string
	PNG  []byte
}

// Bridge is the clipboard as seen by the sync core. Reads return the zero
// value when the clipboard holds nothing of that kind.
type Bridge interface {
	ReadText() (string, error)
	ReadImage() ([]byte, error)
	WriteText(text string) error
	WriteImage(img Image) error
}

// Backend is a Bridge owned by the process.
type Backend interface {
	Bridge

	// Name returns a human-readable name for the backend.
	Name() string

	// Close releases any resources held by the backend.
	Close()
}
