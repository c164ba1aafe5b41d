package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	pb "go.klb.dev/lanclip/gen/lanclip/v1"
	"go.klb.dev/lanclip/internal/host"
)

// callStatus runs one status-returning control call and prints the result.
func callStatus(ctx context.Context, call func(context.Context, pb.ControlServiceClient) (*pb.StatusResponse, error)) error {
	ctx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()
	return withControl(ctx, func(ctx context.Context, c pb.ControlServiceClient) error {
		st, err := call(ctx, c)
		if err != nil {
			return err
		}
		printStatus(os.Stdout, st)
		return nil
	})
}

func newConnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect HOST[:PORT]",
		Short: "Connect the running daemon to a peer",
		Long: `Asks the running daemon to connect to HOST:PORT (default port 5150),
replacing any existing connection. Use "lanclip devices" to list peers.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, port, err := parseTarget(args[0], host.FirstPort)
			if err != nil {
				return err
			}
			return callStatus(cmd.Context(), func(ctx context.Context, c pb.ControlServiceClient) (*pb.StatusResponse, error) {
				return c.Connect(ctx, &pb.ConnectRequest{Host: h, Port: uint32(port)})
			})
		},
	}
}

func newDisconnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Close the daemon's connection to its peer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return callStatus(cmd.Context(), func(ctx context.Context, c pb.ControlServiceClient) (*pb.StatusResponse, error) {
				return c.Disconnect(ctx, &pb.DisconnectRequest{})
			})
		},
	}
}

func newSendCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "send [TEXT...]",
		Short: "Send text to the connected peer",
		Long: `Sends TEXT to the peer through the running daemon. With --stdin the text
is read from standard input. With neither, the daemon sends the current local
clipboard.`,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if v.GetBool("stdin") {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				if len(data) == 0 {
					return nil
				}
				text = string(data)
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), rpcTimeout)
			defer cancel()
			return withControl(ctx, func(ctx context.Context, c pb.ControlServiceClient) error {
				_, err := c.Send(ctx, &pb.SendRequest{Text: text})
				return err
			})
		},
	}

	cmd.Flags().Bool("stdin", false, "read the text from standard input")
	addConfigFlag(cmd)
	return cmd
}

func newAutoSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "autosync on|off",
		Short:     "Turn automatic clipboard push on or off",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled := args[0] == "on"
			return callStatus(cmd.Context(), func(ctx context.Context, c pb.ControlServiceClient) (*pb.StatusResponse, error) {
				return c.SetAutoSync(ctx, &pb.SetAutoSyncRequest{Enabled: enabled})
			})
		},
	}
}

func newDiscoverCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "discover on|off",
		Short:     "Start or stop listening for peer announcements",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled := args[0] == "on"
			return callStatus(cmd.Context(), func(ctx context.Context, c pb.ControlServiceClient) (*pb.StatusResponse, error) {
				return c.SetDiscovery(ctx, &pb.SetDiscoveryRequest{Enabled: enabled})
			})
		},
	}
}

func newLogsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logs",
		Short: "Follow the daemon's activity log",
		Long: `Streams the running daemon's user-facing log lines (connections, sent and
received clipboard items) until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withControl(cmd.Context(), func(ctx context.Context, c pb.ControlServiceClient) error {
				stream, err := c.WatchLogs(ctx, &pb.WatchLogsRequest{})
				if err != nil {
					return err
				}
				return followLogs(ctx, stream, os.Stdout)
			})
		},
	}
}

// followLogs copies log lines from stream to w until the stream ends or ctx
// is cancelled.
func followLogs(ctx context.Context, stream interface{ Recv() (*pb.LogLine, error) }, w io.Writer) error {
	for {
		line, err := stream.Recv()
		if err == io.EOF || ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(w, line.GetLine())
	}
}
