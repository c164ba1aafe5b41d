package clip

import (
	"bytes"
	"sync"
)

// Memory is an in-process clipboard. It serves headless hosts and tests.
// Read and write failures can be injected.
type Memory struct {
	mu       sync.Mutex
	text     string
	png      []byte
	texts    []string
	images   []Image
	readErr  error
	writeErr error
}

// NewMemory returns an empty clipboard.
func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Name() string { return "memory" }
func (m *Memory) Close()       {}

func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return "", m.readErr
	}
	return m.text, nil
}

func (m *Memory) ReadImage() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return nil, m.readErr
	}
	return bytes.Clone(m.png), nil
}

func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.text = text
	m.png = nil
	m.texts = append(m.texts, text)
	return nil
}

func (m *Memory) WriteImage(img Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.png = bytes.Clone(img.PNG)
	m.text = ""
	m.images = append(m.images, Image{Path: img.Path, PNG: bytes.Clone(img.PNG)})
	return nil
}

// SetText replaces the clipboard content as a local copy would, without
// recording a write.
func (m *Memory) SetText(text string) {
	m.mu.Lock()
	m.text, m.png = text, nil
	m.mu.Unlock()
}

// SetImage replaces the clipboard content with an image.
func (m *Memory) SetImage(png []byte) {
	m.mu.Lock()
	m.png, m.text = bytes.Clone(png), ""
	m.mu.Unlock()
}

// Texts returns every text written through WriteText.
func (m *Memory) Texts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.texts...)
}

// Images returns every image written through WriteImage.
func (m *Memory) Images() []Image {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Image(nil), m.images...)
}

// FailReads makes reads return err until called again with nil.
func (m *Memory) FailReads(err error) {
	m.mu.Lock()
	m.readErr = err
	m.mu.Unlock()
}

// FailWrites makes writes return err until called again with nil.
func (m *Memory) FailWrites(err error) {
	m.mu.Lock()
	m.writeErr = err
	m.mu.Unlock()
}
