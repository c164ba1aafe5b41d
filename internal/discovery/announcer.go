package discovery

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"go.klb.dev/lanclip/internal/message"
)

// AnnounceInterval is the beacon cadence.
const AnnounceInterval = 5 * time.Second

// AnnouncerConfig configures an Announcer.
type AnnouncerConfig struct {
	DeviceType string
	DeviceName string
	// IP is the advertised address. Empty means LocalIdentity().IP.
	IP string
	// Port reports the advertised sync port. It is called per beacon so a
	// listener that binds late is picked up.
	Port func() uint16
	// Target is where beacons go. Default 255.255.255.255:5149.
	Target   string
	Interval time.Duration
	Now      func() time.Time
	Logger   *slog.Logger
}

// Announcer periodically broadcasts this host's beacon.
type Announcer struct {
	cfg AnnouncerConfig
	log *slog.Logger
}

func NewAnnouncer(cfg AnnouncerConfig) *Announcer {
	if cfg.DeviceType == "" {
		cfg.DeviceType = message.RoleDesktop
	}
	if cfg.DeviceName == "" || cfg.IP == "" {
		id := LocalIdentity()
		if cfg.DeviceName == "" {
			cfg.DeviceName = id.Name
		}
		if cfg.IP == "" {
			cfg.IP = id.IP
		}
	}
	if cfg.Target == "" {
		cfg.Target = fmt.Sprintf("255.255.255.255:%d", Port)
	}
	if cfg.Interval <= 0 {
		cfg.Interval = AnnounceInterval
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Announcer{cfg: cfg, log: log.With("component", "announcer")}
}

// Beacon returns the beacon that would be sent now.
func (a *Announcer) Beacon() message.Beacon {
	var port uint16
	if a.cfg.Port != nil {
		port = a.cfg.Port()
	}
	return message.NewBeacon(a.cfg.DeviceType, a.cfg.DeviceName, a.cfg.IP, port, a.cfg.Now())
}

// Run broadcasts until ctx is done. Only socket setup errors are returned.
func (a *Announcer) Run(ctx context.Context) error {
	dst, err := net.ResolveUDPAddr("udp4", a.cfg.Target)
	if err != nil {
		return fmt.Errorf("announce target %q: %w", a.cfg.Target, err)
	}
	lc := net.ListenConfig{Control: broadcastControl}
	conn, err := lc.ListenPacket(ctx, "udp4", ":0")
	if err != nil {
		return fmt.Errorf("announce socket: %w", err)
	}
	defer conn.Close()

	a.log.Info("announcing", "name", a.cfg.DeviceName, "ip", a.cfg.IP, "target", dst)

	t := time.NewTicker(a.cfg.Interval)
	defer t.Stop()
	for {
		a.send(conn, dst)
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
	}
}

func (a *Announcer) send(conn net.PacketConn, dst net.Addr) {
	b := a.Beacon()
	if b.Port == 0 {
		a.log.Debug("sync port not bound yet, skipping beacon")
		return
	}
	raw, err := message.EncodeBeacon(b)
	if err != nil {
		a.log.Warn("beacon encode failed", "err", err)
		return
	}
	if _, err := conn.WriteTo(raw, dst); err != nil {
		a.log.Warn("beacon send failed", "target", dst, "err", err)
	}
}
