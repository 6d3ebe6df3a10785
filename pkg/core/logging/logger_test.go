package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	bllog "github.com/msto63/bologna/foundation/core/log"
	"github.com/msto63/bologna/pkg/core/config"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		cfg       LoggerConfig
		wantLevel bllog.Level
	}{
		{"debug", LoggerConfig{Level: "debug"}, bllog.LevelDebug},
		{"trace", LoggerConfig{Level: "TRACE"}, bllog.LevelTrace},
		{"warning alias", LoggerConfig{Level: "warning"}, bllog.LevelWarn},
		{"unknown falls back to info", LoggerConfig{Level: "chatty"}, bllog.LevelInfo},
		{"empty falls back to info", LoggerConfig{}, bllog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(tt.cfg)
			if logger.GetLevel() != tt.wantLevel {
				t.Errorf("GetLevel() = %v, want %v", logger.GetLevel(), tt.wantLevel)
			}
		})
	}
}

func TestNewLoggerJSONOutput(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Name:              "serve",
		Level:             "info",
		Format:            "json",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})

	logger.Info("listening", bllog.Field("addr", "127.0.0.1:8090"))

	var data map[string]interface{}
	if err := json.Unmarshal(primary.Bytes(), &data); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, primary.String())
	}
	if data["logger"] != "serve" || data["addr"] != "127.0.0.1:8090" {
		t.Errorf("unexpected entry: %v", data)
	}
	if extra.String() != primary.String() {
		t.Error("additional output should receive the same entry")
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.General.LogLevel = "debug"
	cfg.General.LogFormat = "json"

	lc := FromConfig(cfg, "repl")
	if lc.Name != "repl" || lc.Level != "debug" || lc.Format != "json" {
		t.Errorf("FromConfig() = %+v", lc)
	}

	lc = FromConfig(nil, "repl")
	if lc.Level != "warn" || lc.Format != "text" {
		t.Errorf("FromConfig(nil) = %+v, want defaults", lc)
	}
}

func TestSetupInstallsDefault(t *testing.T) {
	original := bllog.GetDefault()
	defer bllog.SetDefault(original)

	logger := Setup(config.Default(), "cli", true)
	if bllog.GetDefault() != logger {
		t.Error("Setup() should install the logger as default")
	}
	if logger.GetLevel() != bllog.LevelDebug {
		t.Errorf("verbose level = %v, want debug", logger.GetLevel())
	}
}

func TestKeyValueLogger(t *testing.T) {
	var buf bytes.Buffer
	base := bllog.NewWithConfig(bllog.Config{Level: bllog.LevelDebug, Format: bllog.FormatText, Output: &buf})
	logger := Wrap(base, "ws").With("conn", "c1")

	logger.Info("message received", "type", "parse", "bytes", 12)
	logger.Warn("dangling key", "orphan")
	logger.Debug("non-string key", 42, "ignored")

	out := buf.String()
	for _, want := range []string{"{ws} message received", "bytes=12", "conn=c1", "type=parse", "dangling key"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "orphan") || strings.Contains(out, "ignored") {
		t.Errorf("malformed pairs should be dropped:\n%s", out)
	}
	if logger.Name() != "ws" {
		t.Errorf("Name() = %q, want ws", logger.Name())
	}
}

func TestNew(t *testing.T) {
	logger := New("test-service")
	if logger == nil || logger.Logger == nil {
		t.Fatal("New() returned an incomplete logger")
	}
	if logger.GetLevel() != bllog.LevelWarn {
		t.Errorf("default level = %v, want warn", logger.GetLevel())
	}
}
