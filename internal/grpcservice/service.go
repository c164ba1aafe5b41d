// Package grpcservice implements the ControlService gRPC server that the
// lanclip CLI talks to over the IPC socket.
package grpcservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "go.klb.dev/lanclip/gen/lanclip/v1"
	"go.klb.dev/lanclip/internal/discovery"
	"go.klb.dev/lanclip/internal/engine"
	"go.klb.dev/lanclip/internal/session"
)

// Service implements pb.ControlServiceServer.
type Service struct {
	pb.UnimplementedControlServiceServer
	e *engine.Engine
}

// New returns a Service driving e.
func New(e *engine.Engine) *Service {
	return &Service{e: e}
}

// Status implements ControlService.Status.
func (s *Service) Status(context.Context, *pb.StatusRequest) (*pb.StatusResponse, error) {
	return s.status(), nil
}

// ListDevices implements ControlService.ListDevices.
func (s *Service) ListDevices(context.Context, *pb.ListDevicesRequest) (*pb.ListDevicesResponse, error) {
	devs := s.e.Devices()
	out := make([]*pb.Device, len(devs))
	for i, d := range devs {
		out[i] = toDevice(d)
	}
	return &pb.ListDevicesResponse{Devices: out}, nil
}

// Connect implements ControlService.Connect.
func (s *Service) Connect(ctx context.Context, req *pb.ConnectRequest) (*pb.StatusResponse, error) {
	var bad []*errdetails.BadRequest_FieldViolation
	if req.GetHost() == "" {
		bad = append(bad, &errdetails.BadRequest_FieldViolation{Field: "host", Description: "must not be empty"})
	}
	if p := req.GetPort(); p == 0 || p > 65535 {
		bad = append(bad, &errdetails.BadRequest_FieldViolation{
			Field:       "port",
			Description: fmt.Sprintf("%d is outside 1-65535", p),
		})
	}
	if len(bad) > 0 {
		return nil, invalid(fmt.Sprintf("connect needs a host and a port, got %q:%d", req.GetHost(), req.GetPort()), bad)
	}

	if err := s.e.Connect(ctx, req.GetHost(), int(req.GetPort())); err != nil {
		if ctx.Err() != nil {
			return nil, status.FromContextError(ctx.Err()).Err()
		}
		return nil, status.Error(codes.Unavailable, err.Error())
	}
	return s.status(), nil
}

// Disconnect implements ControlService.Disconnect.
func (s *Service) Disconnect(context.Context, *pb.DisconnectRequest) (*pb.StatusResponse, error) {
	s.e.Stop()
	return s.status(), nil
}

// SetAutoSync implements ControlService.SetAutoSync.
func (s *Service) SetAutoSync(_ context.Context, req *pb.SetAutoSyncRequest) (*pb.StatusResponse, error) {
	s.e.SetAutoSync(req.GetEnabled())
	return s.status(), nil
}

// SetDiscovery implements ControlService.SetDiscovery.
func (s *Service) SetDiscovery(_ context.Context, req *pb.SetDiscoveryRequest) (*pb.StatusResponse, error) {
	if !req.GetEnabled() {
		s.e.StopDiscovery()
		return s.status(), nil
	}
	if err := s.e.StartDiscovery(); err != nil {
		return nil, status.Error(codes.Unavailable, err.Error())
	}
	return s.status(), nil
}

// Send implements ControlService.Send.
func (s *Service) Send(_ context.Context, req *pb.SendRequest) (*pb.SendResponse, error) {
	var err error
	if req.GetText() != "" {
		err = s.e.SendText(req.GetText())
	} else {
		err = s.e.SendClipboard()
	}
	switch {
	case err == nil:
		return &pb.SendResponse{}, nil
	case errors.Is(err, session.ErrNotConnected):
		return nil, status.Error(codes.FailedPrecondition, "not connected to a peer")
	case errors.Is(err, engine.ErrNothingToSend):
		return nil, status.Error(codes.FailedPrecondition, "clipboard is empty")
	default:
		return nil, status.Error(codes.Internal, err.Error())
	}
}

// WatchLogs implements ControlService.WatchLogs.
func (s *Service) WatchLogs(_ *pb.WatchLogsRequest, stream pb.ControlService_WatchLogsServer) error {
	sub := s.e.Logs()
	defer sub.Close()

	slog.Debug("log watch started")
	defer slog.Debug("log watch ended")

	for {
		select {
		case <-stream.Context().Done():
			return nil
		case line, ok := <-sub.C:
			if !ok {
				return status.Error(codes.Unavailable, "daemon shutting down")
			}
			if err := stream.Send(&pb.LogLine{Line: line}); err != nil {
				return err
			}
		}
	}
}

func (s *Service) status() *pb.StatusResponse {
	st := &pb.StatusResponse{
		Role:       s.e.Role(),
		State:      s.e.Session().State().String(),
		Peer:       s.e.PeerAddr(),
		AutoSync:   s.e.AutoSync(),
		Discovery:  s.e.Discovering(),
		SyncPort:   uint32(s.e.SyncPort()),
		Clipboard:  s.e.ClipboardName(),
		Monitoring: s.e.MonitorRunning(),
	}
	if d, ok := s.e.PeerDevice(); ok {
		st.PeerName = d.DeviceName
	}
	return st
}

func toDevice(d discovery.Device) *pb.Device {
	return &pb.Device{
		DeviceType: d.DeviceType,
		DeviceName: d.DeviceName,
		IpAddress:  d.IPAddress,
		Port:       uint32(d.Port),
		LastSeen:   timestamppb.New(d.LastSeen),
	}
}

// invalid builds an InvalidArgument status carrying the field violations.
func invalid(msg string, v []*errdetails.BadRequest_FieldViolation) error {
	st := status.New(codes.InvalidArgument, msg)
	if ds, err := st.WithDetails(&errdetails.BadRequest{FieldViolations: v}); err == nil {
		st = ds
	}
	return st.Err()
}
