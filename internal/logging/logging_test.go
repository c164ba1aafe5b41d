package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"json":  FormatJSON,
		"JSON":  FormatJSON,
		"text":  FormatText,
		"human": FormatText,
		"tint":  FormatText,
		"":      FormatAuto,
		"xml":   FormatAuto,
	} {
		if got := ParseFormat(in); got != want {
			t.Errorf("ParseFormat(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"verbose": slog.LevelInfo,
	} {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewHandler_JSONWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, FormatAuto, slog.LevelInfo))
	l.Debug("hidden")
	l.Info("connected", "peer", "192.168.1.5:5150")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("not a single JSON record: %q", buf.String())
	}
	if rec["msg"] != "connected" || rec["peer"] != "192.168.1.5:5150" {
		t.Errorf("record %v", rec)
	}
}

func TestNewHandler_ForcedText(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, FormatText, slog.LevelInfo))
	l.Info("connected")
	if out := buf.String(); !strings.Contains(out, "connected") || strings.HasPrefix(out, "{") {
		t.Errorf("unexpected text output %q", out)
	}
}

func TestIsTTY_Buffer(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
}
