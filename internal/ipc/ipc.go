// Package ipc provides the local Unix-socket control channel used by CLI
// sub-commands (status, connect, send, ...) to drive a running lanclip
// daemon.
//
// The socket carries the gRPC ControlService and, on the same listener, a
// read-only HTTP/1.1 JSON gateway. Serve splits the two by protocol.
package ipc

import (
	"net"
	"os"
)

// SocketPath returns the platform-appropriate path for the IPC socket.
//
//   - Linux: $XDG_RUNTIME_DIR/lanclip.sock
//   - otherwise: $TMPDIR/lanclip.sock
//
// $LANCLIP_SOCKET overrides both.
func SocketPath() string {
	if s := os.Getenv("LANCLIP_SOCKET"); s != "" {
		return s
	}
	return socketPath()
}

// IsRunning reports whether a lanclip daemon appears to be listening on the
// IPC socket. It does a cheap dial-and-close; no data is exchanged.
func IsRunning() bool {
	c, err := Dial()
	if err != nil {
		return false
	}
	_ = c.Close()
	return true
}

// Listen creates and returns a net.Listener on the IPC socket path, removing
// any stale socket file first.
func Listen() (net.Listener, error) {
	path := SocketPath()
	// Remove stale socket from a previous (crashed) run.
	_ = os.Remove(path)
	return net.Listen("unix", path)
}

// Dial connects to the daemon's IPC socket.
func Dial() (net.Conn, error) {
	return net.Dial("unix", SocketPath())
}
