//go:build !darwin && !windows && !linux

package clip

// New returns a Memory clipboard; this platform has no supported system
// clipboard.
func New() Backend { return NewMemory() }
