package discovery

import (
	"context"
	"net"
	"testing"
	"time"

	gnet "github.com/shirou/gopsutil/v3/net"

	"go.klb.dev/lanclip/internal/message"
)

func TestAnnouncer_SendsBeacons(t *testing.T) {
	rx, err := net.ListenPacket("udp4", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer rx.Close()

	a := NewAnnouncer(AnnouncerConfig{
		DeviceName: "PC1",
		IP:         "192.168.1.5",
		Port:       func() uint16 { return 5150 },
		Target:     rx.LocalAddr().String(),
		Interval:   20 * time.Millisecond,
		Now:        func() time.Time { return t0 },
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	_ = rx.SetReadDeadline(time.Now().Add(2 * time.Second))
	buf := make([]byte, maxDatagram)
	for range 2 {
		n, _, err := rx.ReadFrom(buf)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		b, err := message.DecodeBeacon(buf[:n])
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		want := message.NewBeacon(message.RoleDesktop, "PC1", "192.168.1.5", 5150, t0)
		if b != want {
			t.Errorf("got %+v, want %+v", b, want)
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestAnnouncer_SkipsUnboundPort(t *testing.T) {
	rx, err := net.ListenPacket("udp4", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer rx.Close()

	a := NewAnnouncer(AnnouncerConfig{
		DeviceName: "PC1",
		IP:         "192.168.1.5",
		Port:       func() uint16 { return 0 },
		Target:     rx.LocalAddr().String(),
		Interval:   10 * time.Millisecond,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	go func() { _ = a.Run(ctx) }()

	_ = rx.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	if _, _, err := rx.ReadFrom(make([]byte, maxDatagram)); err == nil {
		t.Error("beacon sent before the sync port was bound")
	}
}

func TestPickIPv4(t *testing.T) {
	ifaces := gnet.InterfaceStatList{
		{Name: "lo", Flags: []string{"up", "loopback"}, Addrs: gnet.InterfaceAddrList{{Addr: "127.0.0.1/8"}}},
		{Name: "eth1", Flags: []string{"broadcast"}, Addrs: gnet.InterfaceAddrList{{Addr: "10.1.1.1/24"}}},
		{Name: "eth0", Flags: []string{"up", "broadcast"}, Addrs: gnet.InterfaceAddrList{
			{Addr: "fe80::1/64"},
			{Addr: "169.254.3.3/16"},
			{Addr: "192.168.1.5/24"},
		}},
	}
	if got := pickIPv4(ifaces); got != "192.168.1.5" {
		t.Errorf("got %q, want 192.168.1.5", got)
	}
	if got := pickIPv4(nil); got != "" {
		t.Errorf("empty list: got %q", got)
	}
}
