package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/grpc"

	pb "go.klb.dev/lanclip/gen/lanclip/v1"
	"go.klb.dev/lanclip/internal/clip"
	"go.klb.dev/lanclip/internal/engine"
	"go.klb.dev/lanclip/internal/grpcservice"
	"go.klb.dev/lanclip/internal/host"
	"go.klb.dev/lanclip/internal/ipc"
)

func newRunCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the clipboard sync daemon",
		Long: `Runs the sync daemon for one side of the connection.

  --role mobile   listen for desktop announcements on UDP 5149 and dial out
  --role desktop  accept on the first free port in 5150-5169 and announce

AutoSync defaults to on for the desktop role, so local copies reach the phone
as soon as it connects, and off for the mobile role. --autosync=false (or
LANCLIP_AUTOSYNC=false) keeps a desktop receive-only.

The daemon serves its control API on the local IPC socket: gRPC for the
lanclip subcommands, plus read-only JSON at GET /v1/status and /v1/devices,
e.g.  curl --unix-socket "$XDG_RUNTIME_DIR/lanclip.sock" http://lanclip/v1/status

Config file search order:
  /etc/lanclip/lanclip.toml
  $HOME/.config/lanclip/lanclip.toml
  path supplied via --config

Precedence (lowest → highest): defaults → config file → LANCLIP_* env vars → flags`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runDaemon(v) },
	}

	f := cmd.Flags()
	f.String("role", engine.RoleMobile, "mobile|desktop")
	f.String("name", defaultDeviceName(), "device name announced to peers")
	f.String("peer-role", "", "beacon deviceType to accept (default: windows for mobile, android for desktop)")
	f.String("connect", "", "peer to connect to at startup (host[:port])")
	f.Bool("autosync", false, "push local clipboard changes to the peer (default: on for desktop, off for mobile)")
	f.Bool("no-discovery", false, "do not listen for peer announcements")
	f.Bool("no-announce", false, "desktop: do not broadcast announcements")
	f.String("image-dir", "", "directory for received images (default: $TMPDIR/lanclip-images)")
	f.String("listen-addr", "", "desktop: sync listen address (default: all interfaces)")
	f.Bool("no-clipboard", false, "use an in-memory clipboard instead of the system one")
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runDaemon(v *viper.Viper) error {
	setupLogging(v)

	role := v.GetString("role")
	slog.Info("lanclip starting", "version", Version, "role", role, "name", v.GetString("name"))

	var backend clip.Backend
	if v.GetBool("no-clipboard") {
		backend = clip.NewMemory()
	} else {
		backend = clip.New()
	}
	defer backend.Close()
	slog.Info("clipboard backend", "name", backend.Name())

	e, err := engine.New(engine.Config{
		Role:              role,
		Bridge:            backend,
		Logger:            slog.Default(),
		DeviceName:        v.GetString("name"),
		PeerRole:          v.GetString("peer-role"),
		ImageDir:          v.GetString("image-dir"),
		ListenAddr:        v.GetString("listen-addr"),
		DisableAnnouncing: v.GetBool("no-announce"),
	})
	if err != nil {
		return err
	}
	defer e.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := e.Start(); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	e.SetAutoSync(v.GetBool("autosync"))

	if role == engine.RoleMobile && !v.GetBool("no-discovery") {
		if err := e.StartDiscovery(); err != nil {
			slog.Warn("discovery unavailable", "err", err)
		}
		go logDevices(ctx, e)
	}

	// IPC socket so status/connect/send can talk to us
	ipcLn, err := ipc.Listen()
	if err != nil {
		slog.Warn("IPC socket unavailable", "err", err)
	} else {
		svc := grpcservice.New(e)
		gw, err := grpcservice.NewGateway(svc)
		if err != nil {
			_ = ipcLn.Close()
			return fmt.Errorf("gateway: %w", err)
		}
		gs := grpc.NewServer()
		pb.RegisterControlServiceServer(gs, svc)

		slog.Info("IPC socket listening", "path", ipc.SocketPath())
		ipcDone := make(chan struct{})
		defer func() {
			stop()
			<-ipcDone
		}()
		go func() {
			defer close(ipcDone)
			if err := ipc.Serve(ctx, ipcLn, gs, gw); err != nil {
				slog.Error("IPC server stopped", "err", err)
			}
		}()
	}

	if target := v.GetString("connect"); target != "" {
		h, port, err := parseTarget(target, host.FirstPort)
		if err != nil {
			return err
		}
		// Failure is reported on the log stream; there is no retry.
		_ = e.Connect(ctx, h, port)
	}

	<-ctx.Done()
	slog.Info("shutting down")
	return nil
}

// logDevices reports discovered-device changes.
func logDevices(ctx context.Context, e *engine.Engine) {
	sub := e.DeviceUpdates()
	defer sub.Close()
	known := 0
	for {
		select {
		case <-ctx.Done():
			return
		case devices, ok := <-sub.C:
			if !ok {
				return
			}
			if len(devices) != known {
				for _, d := range devices {
					slog.Debug("device", "name", d.DeviceName, "ip", d.IPAddress, "port", d.Port)
				}
				slog.Info("devices on the network", "count", len(devices))
				known = len(devices)
			}
		}
	}
}
