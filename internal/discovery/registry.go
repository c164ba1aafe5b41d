// Package discovery finds peers on the local network. Peers broadcast a
// small JSON beacon on UDP port 5149; the Listener collects them into a
// Registry that forgets devices silent for longer than DeviceTTL.
package discovery

import (
	"slices"
	"strings"
	"sync"
	"time"

	"go.klb.dev/lanclip/internal/message"
)

// DeviceTTL is how long a device stays listed after its last beacon.
const DeviceTTL = 30 * time.Second

// Device is one discovered peer.
type Device struct {
	DeviceType string    `json:"deviceType"`
	DeviceName string    `json:"deviceName"`
	IPAddress  string    `json:"ipAddress"`
	Port       uint16    `json:"port"`
	LastSeen   time.Time `json:"lastSeen"`
}

// Registry is the set of live devices, keyed by IP address. A device that
// restarts on a new port replaces its old entry.
type Registry struct {
	ttl      time.Duration
	onChange func([]Device)

	mu      sync.Mutex
	devices map[string]Device
}

// NewRegistry returns an empty registry. onChange, when non-nil, receives a
// fresh snapshot after every mutation. It is called outside the lock.
func NewRegistry(onChange func([]Device)) *Registry {
	return &Registry{
		ttl:      DeviceTTL,
		onChange: onChange,
		devices:  make(map[string]Device),
	}
}

// Upsert records a beacon received at now.
func (r *Registry) Upsert(b message.Beacon, now time.Time) {
	r.mu.Lock()
	r.devices[b.IPAddress] = Device{
		DeviceType: b.DeviceType,
		DeviceName: b.DeviceName,
		IPAddress:  b.IPAddress,
		Port:       b.Port,
		LastSeen:   now,
	}
	snap := r.snapshotLocked()
	r.mu.Unlock()

	r.notify(snap)
}

// Sweep drops devices whose last beacon is older than the TTL and reports
// whether anything was removed. Observers are only notified on removal.
func (r *Registry) Sweep(now time.Time) bool {
	r.mu.Lock()
	removed := false
	for ip, d := range r.devices {
		if now.Sub(d.LastSeen) > r.ttl {
			delete(r.devices, ip)
			removed = true
		}
	}
	var snap []Device
	if removed {
		snap = r.snapshotLocked()
	}
	r.mu.Unlock()

	if removed {
		r.notify(snap)
	}
	return removed
}

// Clear forgets every device and notifies observers with an empty snapshot.
func (r *Registry) Clear() {
	r.mu.Lock()
	clear(r.devices)
	r.mu.Unlock()

	r.notify([]Device{})
}

// Snapshot returns the live devices ordered by IP address.
func (r *Registry) Snapshot() []Device {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// Lookup returns the device registered for ip.
func (r *Registry) Lookup(ip string) (Device, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.devices[ip]
	return d, ok
}

// Len returns the number of live devices.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.devices)
}

func (r *Registry) snapshotLocked() []Device {
	out := make([]Device, 0, len(r.devices))
	for _, d := range r.devices {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b Device) int {
		return strings.Compare(a.IPAddress, b.IPAddress)
	})
	return out
}

func (r *Registry) notify(snap []Device) {
	if r.onChange != nil {
		r.onChange(snap)
	}
}
