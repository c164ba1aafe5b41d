package engine

import (
	"net"

	"go.klb.dev/lanclip/internal/discovery"
)

// ClipboardName names the clipboard bridge in use.
func (e *Engine) ClipboardName() string {
	if n, ok := e.bridge.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "custom"
}

// PeerAddr returns the connected peer's address, or "".
func (e *Engine) PeerAddr() string { return e.session.RemoteAddr() }

// PeerDevice returns the discovered device behind the current connection.
// It reports false when disconnected or when no beacon from the peer's IP
// is on record.
func (e *Engine) PeerDevice() (discovery.Device, bool) {
	addr := e.session.RemoteAddr()
	if addr == "" {
		return discovery.Device{}, false
	}
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return discovery.Device{}, false
	}
	return e.disco.Registry().Lookup(host)
}
