package main

import (
	"testing"

	"github.com/spf13/viper"
)

func bindRun(t *testing.T, args ...string) *viper.Viper {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cmd := newRunCmd()
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	v := viper.New()
	if err := bindViper(cmd, v); err != nil {
		t.Fatalf("bind %v: %v", args, err)
	}
	return v
}

func TestBindViper_RoleDefaults(t *testing.T) {
	tests := []struct {
		args     []string
		peerRole string
		autoSync bool
	}{
		{args: nil, peerRole: "windows", autoSync: false},
		{args: []string{"--role", "mobile"}, peerRole: "windows", autoSync: false},
		{args: []string{"--role", "desktop"}, peerRole: "android", autoSync: true},
		{args: []string{"--role", "desktop", "--autosync=false"}, peerRole: "android", autoSync: false},
		{args: []string{"--role", "mobile", "--autosync", "--peer-role", "mac"}, peerRole: "mac", autoSync: true},
	}
	for _, tt := range tests {
		v := bindRun(t, tt.args...)
		if got := v.GetString("peer-role"); got != tt.peerRole {
			t.Errorf("%v: peer-role = %q, want %q", tt.args, got, tt.peerRole)
		}
		if got := v.GetBool("autosync"); got != tt.autoSync {
			t.Errorf("%v: autosync = %v, want %v", tt.args, got, tt.autoSync)
		}
	}
}

func TestBindViper_DashedEnvKeys(t *testing.T) {
	t.Setenv("LANCLIP_PEER_ROLE", "linux")
	t.Setenv("LANCLIP_AUTOSYNC", "false")
	v := bindRun(t, "--role", "desktop")
	if got := v.GetString("peer-role"); got != "linux" {
		t.Errorf("peer-role = %q, want env value", got)
	}
	if v.GetBool("autosync") {
		t.Error("env autosync=false ignored on desktop")
	}
}

func TestBindViper_UnknownRole(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cmd := newRunCmd()
	if err := cmd.ParseFlags([]string{"--role", "tablet"}); err != nil {
		t.Fatal(err)
	}
	if err := bindViper(cmd, viper.New()); err == nil {
		t.Error("unknown role accepted")
	}
}
