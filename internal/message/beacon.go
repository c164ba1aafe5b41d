package message

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/netip"
	"time"
)

// Device roles carried in Beacon.DeviceType.
const (
	RoleDesktop = "windows"
	RoleMobile  = "android"
)

// Beacon announces a device and its sync endpoint. One beacon is one UDP
// datagram.
type Beacon struct {
	DeviceType string `json:"deviceType"`
	DeviceName string `json:"deviceName"`
	IPAddress  string `json:"ipAddress"`
	Port       uint16 `json:"port"`
	Timestamp  int64  `json:"timestamp"`
}

// NewBeacon builds a beacon stamped with now.
func NewBeacon(deviceType, deviceName, ip string, port uint16, now time.Time) Beacon {
	return Beacon{
		DeviceType: deviceType,
		DeviceName: deviceName,
		IPAddress:  ip,
		Port:       port,
		Timestamp:  now.UnixMilli(),
	}
}

// EncodeBeacon serialises b as a newline-free JSON object.
func EncodeBeacon(b Beacon) ([]byte, error) {
	raw, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("beacon encode: %w", err)
	}
	return raw, nil
}

// DecodeBeacon parses a datagram. Unknown fields are ignored; the device
// type, a dotted-quad address and a non-zero port are required.
func DecodeBeacon(data []byte) (Beacon, error) {
	var b Beacon
	if err := json.Unmarshal(bytes.TrimSpace(data), &b); err != nil {
		return Beacon{}, &DecodeError{Err: err}
	}
	if b.DeviceType == "" {
		return Beacon{}, &DecodeError{Field: "deviceType", Err: errMissing}
	}
	addr, err := netip.ParseAddr(b.IPAddress)
	if err != nil {
		return Beacon{}, &DecodeError{Field: "ipAddress", Err: err}
	}
	if !addr.Is4() {
		return Beacon{}, &DecodeError{Field: "ipAddress", Err: errors.New("not an IPv4 address")}
	}
	if b.Port == 0 {
		return Beacon{}, &DecodeError{Field: "port", Err: errMissing}
	}
	return b, nil
}
