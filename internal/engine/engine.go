// Package engine wires the sync core together and exposes the operations a
// user interface may invoke: Connect, Stop, SetAutoSync, StartDiscovery and
// StopDiscovery. Everything else is observed through event subscriptions.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go.klb.dev/lanclip/internal/clip"
	"go.klb.dev/lanclip/internal/discovery"
	"go.klb.dev/lanclip/internal/events"
	"go.klb.dev/lanclip/internal/host"
	"go.klb.dev/lanclip/internal/message"
	"go.klb.dev/lanclip/internal/monitor"
	"go.klb.dev/lanclip/internal/session"
)

// Roles.
const (
	RoleMobile  = "mobile"
	RoleDesktop = "desktop"
)

// ErrNothingToSend is returned by SendText and SendClipboard for empty text.
var ErrNothingToSend = errors.New("nothing to send")

// Config configures an Engine. Zero values take the package defaults of the
// component they feed.
type Config struct {
	// Role is RoleMobile (dial out, listen for desktop beacons) or
	// RoleDesktop (accept, announce).
	Role   string
	Bridge clip.Bridge
	Logger *slog.Logger

	// DeviceName is announced in beacons. Empty uses the host name.
	DeviceName string
	// PeerRole overrides the beacon deviceType accepted by discovery.
	PeerRole string
	ImageDir string

	// Desktop side.
	ListenAddr        string
	FirstPort         int
	LastPort          int
	AnnounceTarget    string
	AnnounceInterval  time.Duration
	DisableAnnouncing bool

	// Mostly for tests.
	DiscoveryAddr string
	SweepInterval time.Duration
	PollInterval  time.Duration
	IdleTimeout   time.Duration
}

type taskHandle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func startTask(run func(ctx context.Context)) *taskHandle {
	ctx, cancel := context.WithCancel(context.Background())
	h := &taskHandle{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(h.done)
		run(ctx)
	}()
	return h
}

func (h *taskHandle) stop() {
	h.cancel()
	<-h.done
}

func (h *taskHandle) running() bool {
	select {
	case <-h.done:
		return false
	default:
		return true
	}
}

// Engine is the sync core.
type Engine struct {
	cfg      Config
	slog     *slog.Logger
	log      *events.Log
	bridge   clip.Bridge
	session  *session.Session
	detector *monitor.Detector
	disco    *discovery.Listener

	autoSync atomic.Bool

	monMu   sync.Mutex
	monitor *taskHandle

	watchSub  *events.Subscription[bool]
	watchDone chan struct{}

	hostMu   sync.Mutex
	host     *host.Listener
	hostTask *taskHandle
	announce *taskHandle

	closeOnce sync.Once
}

// New builds an engine. Call Start to bring up the desktop-side listener and
// Close to release everything.
func New(cfg Config) (*Engine, error) {
	switch cfg.Role {
	case "":
		cfg.Role = RoleMobile
	case RoleMobile, RoleDesktop:
	default:
		return nil, fmt.Errorf("unknown role %q", cfg.Role)
	}
	if cfg.PeerRole == "" {
		cfg.PeerRole = message.RoleDesktop
		if cfg.Role == RoleDesktop {
			cfg.PeerRole = message.RoleMobile
		}
	}
	if cfg.Bridge == nil {
		cfg.Bridge = clip.NewMemory()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.FirstPort == 0 && cfg.LastPort == 0 {
		cfg.FirstPort, cfg.LastPort = host.FirstPort, host.LastPort
	}

	e := &Engine{
		cfg:    cfg,
		slog:   cfg.Logger,
		log:    events.NewLog(cfg.Logger),
		bridge: cfg.Bridge,
	}

	e.detector = monitor.New(monitor.Config{
		Bridge:    cfg.Bridge,
		SendText:  func(text string) error { return e.session.SendText(text) },
		SendImage: func(png []byte) error { return e.session.SendImage(png) },
		Enabled:   e.autoSync.Load,
		Connected: func() bool { return e.session.Connected() },
		Images:    cfg.Role == RoleDesktop,
		Interval:  cfg.PollInterval,
		Log:       e.log,
	})
	e.session = session.New(session.Config{
		Bridge:      cfg.Bridge,
		Log:         e.log,
		ImageDir:    cfg.ImageDir,
		IdleTimeout: cfg.IdleTimeout,
		OnText:      e.detector.Observe,
		OnImage:     e.detector.ObserveImage,
	})
	e.disco = discovery.NewListener(discovery.ListenerConfig{
		PeerRole:      cfg.PeerRole,
		Addr:          cfg.DiscoveryAddr,
		SweepInterval: cfg.SweepInterval,
		Logger:        cfg.Logger,
	})

	e.watchSub = e.session.States()
	e.watchDone = make(chan struct{})
	go e.watchState()
	return e, nil
}

// Role returns the configured role.
func (e *Engine) Role() string { return e.cfg.Role }

// Logs subscribes to user-facing log lines.
func (e *Engine) Logs() *events.Subscription[string] { return e.log.Subscribe() }

// States subscribes to connection state. The latest state is replayed.
func (e *Engine) States() *events.Subscription[bool] { return e.session.States() }

// DeviceUpdates subscribes to discovered-device snapshots.
func (e *Engine) DeviceUpdates() *events.Subscription[[]discovery.Device] {
	return e.disco.Devices()
}

// Devices returns the currently discovered devices.
func (e *Engine) Devices() []discovery.Device { return e.disco.Snapshot() }

// Connect dials the peer.
func (e *Engine) Connect(ctx context.Context, host string, port int) error {
	return e.session.Connect(ctx, host, port)
}

// Stop disconnects and halts clipboard monitoring.
func (e *Engine) Stop() {
	e.stopMonitor()
	e.session.Stop()
}

// SetAutoSync turns clipboard monitoring on or off. Enabling while connected
// starts the monitor if it is not already running.
func (e *Engine) SetAutoSync(enabled bool) {
	prev := e.autoSync.Swap(enabled)
	if prev != enabled {
		e.log.Infof("auto sync %s", onOff(enabled))
	}
	if enabled && e.session.Connected() {
		e.startMonitor()
	} else if !enabled {
		e.stopMonitor()
	}
}

// AutoSync reports the AutoSync flag.
func (e *Engine) AutoSync() bool { return e.autoSync.Load() }

// StartDiscovery starts listening for beacons. Starting twice is not an
// error.
func (e *Engine) StartDiscovery() error {
	err := e.disco.Start()
	if errors.Is(err, discovery.ErrAlreadyRunning) {
		return nil
	}
	if err != nil {
		e.log.Errorf("discovery failed to start: %v", err)
		return err
	}
	e.log.Infof("listening for devices...")
	return nil
}

// StopDiscovery stops listening and clears the device list.
func (e *Engine) StopDiscovery() {
	if e.disco.Running() {
		e.disco.Stop()
		e.log.Infof("discovery stopped")
	}
}

// Discovering reports whether discovery is running.
func (e *Engine) Discovering() bool { return e.disco.Running() }

// SendText pushes text to the peer immediately, independent of AutoSync.
func (e *Engine) SendText(text string) error {
	if text == "" {
		return ErrNothingToSend
	}
	if err := e.session.SendText(text); err != nil {
		return err
	}
	e.detector.Observe(text)
	return nil
}

// SendClipboard pushes the current local clipboard text to the peer.
func (e *Engine) SendClipboard() error {
	text, err := e.bridge.ReadText()
	if err != nil {
		return fmt.Errorf("read clipboard: %w", err)
	}
	return e.SendText(text)
}

// MonitorRunning reports whether the change detector task is running.
func (e *Engine) MonitorRunning() bool {
	e.monMu.Lock()
	defer e.monMu.Unlock()
	return e.monitor != nil && e.monitor.running()
}

// Session exposes the sync session.
func (e *Engine) Session() *session.Session { return e.session }

// SyncPort returns the desktop listener port, or 0.
func (e *Engine) SyncPort() uint16 {
	e.hostMu.Lock()
	defer e.hostMu.Unlock()
	if e.host == nil {
		return 0
	}
	return e.host.Port()
}

// Start brings up the desktop-side sync listener and beacon announcer. It is
// a no-op for the mobile role.
func (e *Engine) Start() error {
	if e.cfg.Role != RoleDesktop {
		return nil
	}
	e.hostMu.Lock()
	defer e.hostMu.Unlock()
	if e.host != nil {
		return nil
	}

	ln, err := host.Listen(e.cfg.ListenAddr, e.cfg.FirstPort, e.cfg.LastPort, e.session, e.slog)
	if err != nil {
		e.log.Errorf("sync server failed to start: %v", err)
		return err
	}
	e.host = ln
	e.hostTask = startTask(func(ctx context.Context) {
		if err := ln.Serve(ctx); err != nil {
			e.slog.Error("sync server stopped", "err", err)
		}
	})
	e.log.Infof("sync server started on port %d", ln.Port())

	if !e.cfg.DisableAnnouncing {
		a := discovery.NewAnnouncer(discovery.AnnouncerConfig{
			DeviceType: message.RoleDesktop,
			DeviceName: e.cfg.DeviceName,
			Port:       ln.Port,
			Target:     e.cfg.AnnounceTarget,
			Interval:   e.cfg.AnnounceInterval,
			Logger:     e.slog,
		})
		e.announce = startTask(func(ctx context.Context) {
			if err := a.Run(ctx); err != nil {
				e.log.Errorf("device announcement failed: %v", err)
			}
		})
		e.log.Infof("announcing on the local network")
	}
	return nil
}

// Close stops every task and releases the engine. It is safe to call more
// than once.
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		e.hostMu.Lock()
		if e.announce != nil {
			e.announce.stop()
		}
		if e.hostTask != nil {
			e.hostTask.stop()
		}
		e.hostMu.Unlock()

		e.StopDiscovery()
		e.Stop()

		e.watchSub.Close()
		<-e.watchDone
	})
}

// watchState starts and stops the monitor as the connection comes and goes.
func (e *Engine) watchState() {
	defer close(e.watchDone)
	for connected := range e.watchSub.C {
		if connected {
			if e.autoSync.Load() {
				e.startMonitor()
			}
		} else {
			e.stopMonitor()
		}
	}
}

// startMonitor is idempotent: a running monitor is left alone.
func (e *Engine) startMonitor() {
	e.monMu.Lock()
	defer e.monMu.Unlock()
	if e.monitor != nil && e.monitor.running() {
		return
	}
	e.monitor = startTask(e.detector.Run)
}

func (e *Engine) stopMonitor() {
	e.monMu.Lock()
	h := e.monitor
	e.monitor = nil
	e.monMu.Unlock()
	if h != nil {
		h.stop()
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
