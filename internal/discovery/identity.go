package discovery

import (
	"net/netip"
	"os"
	"slices"

	"github.com/shirou/gopsutil/v3/host"
	gnet "github.com/shirou/gopsutil/v3/net"
)

// Identity is what this host announces about itself.
type Identity struct {
	Name string
	IP   string
}

// LocalIdentity returns the host name and the first non-loopback IPv4
// address of an interface that is up. It falls back to os.Hostname and
// 127.0.0.1 when the system cannot be inspected.
func LocalIdentity() Identity {
	id := Identity{IP: "127.0.0.1"}
	if info, err := host.Info(); err == nil && info.Hostname != "" {
		id.Name = info.Hostname
	} else if name, err := os.Hostname(); err == nil {
		id.Name = name
	}
	if ifaces, err := gnet.Interfaces(); err == nil {
		if ip := pickIPv4(ifaces); ip != "" {
			id.IP = ip
		}
	}
	return id
}

func pickIPv4(ifaces gnet.InterfaceStatList) string {
	for _, iface := range ifaces {
		if !slices.Contains(iface.Flags, "up") || slices.Contains(iface.Flags, "loopback") {
			continue
		}
		for _, a := range iface.Addrs {
			p, err := netip.ParsePrefix(a.Addr)
			if err != nil {
				continue
			}
			if ip := p.Addr(); ip.Is4() && !ip.IsLoopback() && !ip.IsLinkLocalUnicast() {
				return ip.String()
			}
		}
	}
	return ""
}
