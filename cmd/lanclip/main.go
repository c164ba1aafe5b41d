// lanclip: clipboard sync between a phone and a desktop on the same LAN.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"go.klb.dev/lanclip/internal/logging"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "lanclip",
		Short: "Clipboard sync over the local network",
		Long: `lanclip keeps the clipboards of a mobile device and a desktop in sync
over a plain TCP connection on the local network.

Run "lanclip run --role desktop" on the desktop: it listens on the first free
port in 5150-5169 and announces itself on UDP 5149. Run "lanclip run" (mobile
role) on the other side: it listens for announcements, and connects with
--connect or "lanclip connect". Use "lanclip status/devices/send/autosync/logs"
to drive a running daemon over its local IPC socket.

Config file search order (first found wins):
  /etc/lanclip/lanclip.toml
  $HOME/.config/lanclip/lanclip.toml
  path supplied via --config

All flags can be set via LANCLIP_<FLAG> env vars or config-file keys.
See "lanclip run --help" for the full flag reference.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newRunCmd(),
		newStatusCmd(),
		newDevicesCmd(),
		newConnectCmd(),
		newDisconnectCmd(),
		newSendCmd(),
		newAutoSyncCmd(),
		newDiscoverCmd(),
		newLogsCmd(),
		newVersionCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("lanclip %s\n", Version)
		},
	}
}

// resolveLogging sets up the global slog logger after flags are parsed.
func resolveLogging(interactive bool, formatStr, levelStr string) {
	format := logging.ParseFormat(formatStr)
	level := logging.ParseLevel(levelStr)
	if levelStr == "" {
		if interactive {
			level = logging.ParseLevel("debug")
		} else {
			level = logging.ParseLevel("info")
		}
	}
	logging.Setup(format, level)
}
