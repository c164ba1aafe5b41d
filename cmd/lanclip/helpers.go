package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	pb "go.klb.dev/lanclip/gen/lanclip/v1"
	"go.klb.dev/lanclip/internal/discovery"
	"go.klb.dev/lanclip/internal/ipc"
)

// rpcTimeout bounds one control call. Connect may spend most of it dialling.
const rpcTimeout = 15 * time.Second

func isContainerID(s string) bool {
	if len(s) < 12 || len(s) > 64 {
		return false
	}
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			return false
		}
	}
	return true
}

// defaultDeviceName returns a human-readable name for this host.
func defaultDeviceName() string {
	for _, env := range []string{
		"CONTAINER_NAME",
		"COMPOSE_SERVICE",
		"HOSTNAME_FRIENDLY",
	} {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	h := discovery.LocalIdentity().Name
	if h == "" {
		return "unknown"
	}
	if isContainerID(h) {
		return "container-" + h[:8]
	}
	return h
}

// parseTarget splits host:port. A bare host gets the first sync port.
func parseTarget(s string, defaultPort int) (string, int, error) {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		if net.ParseIP(s) == nil && !validHostname(s) {
			return "", 0, fmt.Errorf("invalid target %q: %w", s, err)
		}
		return s, defaultPort, nil
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return "", 0, fmt.Errorf("invalid port in %q", s)
	}
	if host == "" {
		return "", 0, fmt.Errorf("missing host in %q", s)
	}
	return host, port, nil
}

func validHostname(s string) bool {
	if s == "" || len(s) > 253 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '.':
		default:
			return false
		}
	}
	return true
}

func fmtAge(t time.Time) string {
	age := time.Since(t).Round(time.Second)
	if age < time.Minute {
		return fmt.Sprintf("%ds ago", int(age.Seconds()))
	}
	if age < time.Hour {
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	}
	return t.Format("15:04:05")
}

// dialIPC returns a *grpc.ClientConn connected to the local IPC Unix socket.
// No auth needed: the socket is local and owner-restricted by the OS.
func dialIPC() (*grpc.ClientConn, error) {
	return grpc.NewClient(
		"unix://"+ipc.SocketPath(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
}

// withControl runs fn against the running daemon.
func withControl(ctx context.Context, fn func(context.Context, pb.ControlServiceClient) error) error {
	if !ipc.IsRunning() {
		return fmt.Errorf("no lanclip daemon on %s (start one with \"lanclip run\")", ipc.SocketPath())
	}
	conn, err := dialIPC()
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()
	return rpcError(fn(ctx, pb.NewControlServiceClient(conn)))
}

// rpcError flattens a gRPC status into a plain CLI error, listing any field
// violations the daemon attached.
func rpcError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	msg := st.Message()
	for _, d := range st.Details() {
		br, ok := d.(*errdetails.BadRequest)
		if !ok {
			continue
		}
		parts := make([]string, 0, len(br.GetFieldViolations()))
		for _, fv := range br.GetFieldViolations() {
			parts = append(parts, fv.GetField()+": "+fv.GetDescription())
		}
		if len(parts) > 0 {
			msg += " (" + strings.Join(parts, "; ") + ")"
		}
	}
	return errors.New(msg)
}
