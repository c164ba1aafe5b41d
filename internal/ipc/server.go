package ipc

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/soheilhy/cmux"
	"google.golang.org/grpc"
)

// Serve multiplexes ln between gs (HTTP/2 requests with a gRPC content type)
// and h (HTTP/1.1) until ctx is done or the listener fails. ln is closed on
// return.
func Serve(ctx context.Context, ln net.Listener, gs *grpc.Server, h http.Handler) error {
	m := cmux.New(ln)
	m.SetReadTimeout(5 * time.Second)
	grpcL := m.MatchWithWriters(cmux.HTTP2MatchHeaderFieldSendSettings("content-type", "application/grpc"))
	httpL := m.Match(cmux.HTTP1Fast())

	hs := &http.Server{Handler: h, ReadHeaderTimeout: 5 * time.Second}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := gs.Serve(grpcL); err != nil && !closed(err) {
			slog.Debug("ipc grpc server stopped", "err", err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := hs.Serve(httpL); err != nil && !errors.Is(err, http.ErrServerClosed) && !closed(err) {
			slog.Debug("ipc http server stopped", "err", err)
		}
	}()

	stop := context.AfterFunc(ctx, func() { _ = ln.Close() })
	defer stop()

	err := m.Serve()
	gs.Stop()
	_ = hs.Close()
	m.Close()
	_ = ln.Close()
	wg.Wait()

	if ctx.Err() != nil || closed(err) {
		return nil
	}
	return err
}

func closed(err error) bool {
	return errors.Is(err, net.ErrClosed) || errors.Is(err, cmux.ErrListenerClosed) || errors.Is(err, cmux.ErrServerClosed)
}
