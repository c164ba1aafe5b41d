package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "go.klb.dev/lanclip/gen/lanclip/v1"
)

type fakeLogStream struct {
	lines []string
	err   error
}

func (f *fakeLogStream) Recv() (*pb.LogLine, error) {
	if len(f.lines) == 0 {
		return nil, f.err
	}
	l := f.lines[0]
	f.lines = f.lines[1:]
	return &pb.LogLine{Line: l}, nil
}

func TestFollowLogs(t *testing.T) {
	var buf bytes.Buffer
	s := &fakeLogStream{lines: []string{"[12:00:00] connected", "[12:00:01] sent text"}, err: io.EOF}
	if err := followLogs(context.Background(), s, &buf); err != nil {
		t.Fatalf("eof: %v", err)
	}
	if got := buf.String(); got != "[12:00:00] connected\n[12:00:01] sent text\n" {
		t.Errorf("output: %q", got)
	}

	want := status.Error(codes.Unavailable, "daemon shutting down")
	if err := followLogs(context.Background(), &fakeLogStream{err: want}, io.Discard); !errors.Is(err, want) {
		t.Errorf("stream error: got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := followLogs(ctx, &fakeLogStream{err: status.Error(codes.Canceled, "x")}, io.Discard); err != nil {
		t.Errorf("cancelled: got %v", err)
	}
}

func TestRPCError(t *testing.T) {
	if rpcError(nil) != nil {
		t.Error("nil error wrapped")
	}

	st, _ := status.New(codes.InvalidArgument, "connect needs a host and a port").WithDetails(&errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{{Field: "port", Description: "0 is outside 1-65535"}},
	})
	got := rpcError(st.Err()).Error()
	if got != "connect needs a host and a port (port: 0 is outside 1-65535)" {
		t.Errorf("got %q", got)
	}

	if got := rpcError(status.Error(codes.FailedPrecondition, "not connected to a peer")).Error(); got != "not connected to a peer" {
		t.Errorf("got %q", got)
	}
}
