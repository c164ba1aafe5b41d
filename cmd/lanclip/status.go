package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	pb "go.klb.dev/lanclip/gen/lanclip/v1"
)

func newStatusCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the daemon's connection state",
		Long: `Displays the role, connection state and AutoSync flag of the running
lanclip daemon. The request is sent via the IPC Unix socket.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), rpcTimeout)
			defer cancel()
			return withControl(ctx, func(ctx context.Context, c pb.ControlServiceClient) error {
				st, err := c.Status(ctx, &pb.StatusRequest{})
				if err != nil {
					return err
				}
				if v.GetBool("json") {
					return printJSON(os.Stdout, st)
				}
				printStatus(os.Stdout, st)
				return nil
			})
		},
	}

	cmd.Flags().Bool("json", false, "output raw JSON")
	addConfigFlag(cmd)
	return cmd
}

func newDevicesCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "devices",
		Short:   "List peers discovered on the local network",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), rpcTimeout)
			defer cancel()
			return withControl(ctx, func(ctx context.Context, c pb.ControlServiceClient) error {
				resp, err := c.ListDevices(ctx, &pb.ListDevicesRequest{})
				if err != nil {
					return err
				}
				if v.GetBool("json") {
					return printJSON(os.Stdout, resp)
				}
				printDevices(os.Stdout, resp.GetDevices())
				return nil
			})
		},
	}

	cmd.Flags().Bool("json", false, "output raw JSON")
	addConfigFlag(cmd)
	return cmd
}

func printJSON(w io.Writer, m proto.Message) error {
	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  ", EmitUnpopulated: true}.Marshal(m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

func printStatus(out io.Writer, st *pb.StatusResponse) {
	if st == nil {
		fmt.Fprintln(out, "No status reported.")
		return
	}
	w := tabwriter.NewWriter(out, 1, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Role:\t%s\n", st.Role)
	fmt.Fprintf(w, "State:\t%s\n", st.State)
	switch {
	case st.PeerName != "":
		fmt.Fprintf(w, "Peer:\t%s (%s)\n", st.PeerName, st.Peer)
	case st.Peer != "":
		fmt.Fprintf(w, "Peer:\t%s\n", st.Peer)
	}
	if st.SyncPort != 0 {
		fmt.Fprintf(w, "Sync port:\t%d\n", st.SyncPort)
	}
	autoSync := onOff(st.AutoSync)
	if st.AutoSync && st.Monitoring {
		autoSync += " (monitoring)"
	}
	fmt.Fprintf(w, "AutoSync:\t%s\n", autoSync)
	fmt.Fprintf(w, "Discovery:\t%s\n", onOff(st.Discovery))
	fmt.Fprintf(w, "Clipboard:\t%s\n", st.Clipboard)
	_ = w.Flush()
}

func printDevices(out io.Writer, devices []*pb.Device) {
	if len(devices) == 0 {
		fmt.Fprintln(out, "No devices found.")
		return
	}
	tw := tabwriter.NewWriter(out, 1, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "NAME\tADDR\tTYPE\tLAST SEEN\n")
	_, _ = fmt.Fprintf(tw, "----\t----\t----\t---------\n")
	for _, d := range devices {
		_, _ = fmt.Fprintf(tw, "%s\t%s:%d\t%s\t%s\n",
			d.GetDeviceName(), d.GetIpAddress(), d.GetPort(), d.GetDeviceType(), fmtAge(d.GetLastSeen().AsTime()))
	}
	_ = tw.Flush()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
