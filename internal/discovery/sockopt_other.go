//go:build !unix && !windows

package discovery

import "syscall"

func broadcastControl(_, _ string, _ syscall.RawConn) error { return nil }
