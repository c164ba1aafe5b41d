package main

import "testing"

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in       string
		host     string
		port     int
		wantFail bool
	}{
		{in: "192.168.1.5:5150", host: "192.168.1.5", port: 5150},
		{in: "192.168.1.5", host: "192.168.1.5", port: 5150},
		{in: "desktop.lan:5151", host: "desktop.lan", port: 5151},
		{in: "desktop", host: "desktop", port: 5150},
		{in: "192.168.1.5:0", wantFail: true},
		{in: "192.168.1.5:99999", wantFail: true},
		{in: ":5150", wantFail: true},
		{in: "bad host!", wantFail: true},
	}
	for _, tt := range tests {
		host, port, err := parseTarget(tt.in, 5150)
		if tt.wantFail {
			if err == nil {
				t.Errorf("%q: expected error, got %s:%d", tt.in, host, port)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if host != tt.host || port != tt.port {
			t.Errorf("%q: got %s:%d, want %s:%d", tt.in, host, port, tt.host, tt.port)
		}
	}
}

func TestIsContainerID(t *testing.T) {
	if !isContainerID("3f4e5d6c7b8a") {
		t.Error("12 hex chars should be a container id")
	}
	if isContainerID("my-laptop") {
		t.Error("a hostname is not a container id")
	}
}
