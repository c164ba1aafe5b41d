package discovery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"golang.org/x/net/ipv4"

	"go.klb.dev/lanclip/internal/events"
	"go.klb.dev/lanclip/internal/message"
)

const (
	// Port is the UDP port beacons are broadcast to.
	Port = 5149

	// SweepInterval is how often expired devices are dropped.
	SweepInterval = 10 * time.Second

	maxDatagram = 1024
)

// ErrAlreadyRunning is returned by Start on a running listener.
var ErrAlreadyRunning = errors.New("discovery: listener already running")

// ListenerConfig configures a Listener. Zero values take the defaults.
type ListenerConfig struct {
	// PeerRole is the deviceType whose beacons are kept; others are ignored.
	PeerRole string
	// Addr is the UDP bind address. Default ":5149".
	Addr string
	// SweepInterval overrides the sweep cadence.
	SweepInterval time.Duration
	// Now is the clock used for lastSeen and sweeps.
	Now    func() time.Time
	Logger *slog.Logger
}

// Listener receives beacons and maintains the device registry.
type Listener struct {
	cfg     ListenerConfig
	log     *slog.Logger
	reg     *Registry
	devices *events.Stream[[]Device]

	// life serialises Start and Stop.
	life   sync.Mutex
	mu     sync.Mutex
	pc     *ipv4.PacketConn
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewListener returns a stopped listener.
func NewListener(cfg ListenerConfig) *Listener {
	if cfg.Addr == "" {
		cfg.Addr = fmt.Sprintf(":%d", Port)
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = SweepInterval
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.PeerRole == "" {
		cfg.PeerRole = message.RoleDesktop
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	l := &Listener{
		cfg:     cfg,
		log:     log.With("component", "discovery"),
		devices: events.NewStream[[]Device]("devices"),
	}
	l.reg = NewRegistry(l.devices.Publish)
	return l
}

// Devices subscribes to device-list snapshots. Use Snapshot for the current
// list.
func (l *Listener) Devices() *events.Subscription[[]Device] { return l.devices.Subscribe() }

// Snapshot returns the current device list.
func (l *Listener) Snapshot() []Device { return l.reg.Snapshot() }

// Registry exposes the underlying registry.
func (l *Listener) Registry() *Registry { return l.reg }

// Running reports whether the listener is started.
func (l *Listener) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pc != nil
}

// Addr returns the bound local address, or nil when stopped.
func (l *Listener) Addr() net.Addr {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pc == nil {
		return nil
	}
	return l.pc.LocalAddr()
}

// Start binds the discovery socket and launches the receive and sweep loops.
func (l *Listener) Start() error {
	l.life.Lock()
	defer l.life.Unlock()
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pc != nil {
		return ErrAlreadyRunning
	}

	lc := net.ListenConfig{Control: broadcastControl}
	conn, err := lc.ListenPacket(context.Background(), "udp4", l.cfg.Addr)
	if err != nil {
		return fmt.Errorf("discovery listen %s: %w", l.cfg.Addr, err)
	}
	pc := ipv4.NewPacketConn(conn)
	if err := pc.SetControlMessage(ipv4.FlagDst|ipv4.FlagInterface, true); err != nil {
		l.log.Debug("control messages unavailable", "err", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	l.pc = pc
	l.cancel = cancel

	l.wg.Add(2)
	go func() {
		defer l.wg.Done()
		l.receiveLoop(ctx, pc)
	}()
	go func() {
		defer l.wg.Done()
		l.sweepLoop(ctx)
	}()

	l.log.Info("discovery started", "addr", pc.LocalAddr(), "peer_role", l.cfg.PeerRole)
	return nil
}

// Stop closes the socket, joins both loops, clears the registry and emits an
// empty snapshot. Stopping a stopped listener is a no-op.
func (l *Listener) Stop() {
	l.life.Lock()
	defer l.life.Unlock()
	l.mu.Lock()
	pc, cancel := l.pc, l.cancel
	l.pc, l.cancel = nil, nil
	l.mu.Unlock()
	if pc == nil {
		return
	}

	cancel()
	_ = pc.Close()
	l.wg.Wait()
	l.reg.Clear()
	l.log.Info("discovery stopped")
}

func (l *Listener) receiveLoop(ctx context.Context, pc *ipv4.PacketConn) {
	buf := make([]byte, maxDatagram)
	for {
		n, cm, src, err := pc.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return
			}
			l.log.Warn("discovery receive failed", "err", err)
			continue
		}
		l.handle(buf[:n], cm, src)
	}
}

func (l *Listener) handle(data []byte, cm *ipv4.ControlMessage, src net.Addr) {
	b, err := message.DecodeBeacon(data)
	if err != nil {
		l.log.Debug("ignoring datagram", "from", src, "err", err)
		return
	}
	if b.DeviceType != l.cfg.PeerRole {
		return
	}
	l.reg.Upsert(b, l.cfg.Now())

	attrs := []any{"name", b.DeviceName, "ip", b.IPAddress, "port", b.Port}
	if cm != nil {
		attrs = append(attrs, "ifindex", cm.IfIndex)
	}
	l.log.Debug("device seen", attrs...)
}

func (l *Listener) sweepLoop(ctx context.Context) {
	t := time.NewTicker(l.cfg.SweepInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if l.reg.Sweep(l.cfg.Now()) {
				l.log.Debug("expired devices removed", "remaining", l.reg.Len())
			}
		}
	}
}
