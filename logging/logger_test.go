package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
)

func TestNewLogger_Level(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewLogger("bootsplash", "warn", buf)
	log.Info("hidden")
	log.Warn("shown", "flavor", "premium")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "flavor=premium") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestNewLogger_JSON(t *testing.T) {
	t.Setenv(EnvJSON, "1")
	buf := &bytes.Buffer{}
	NewLogger("bootsplash", "info", buf).Info("generated", "flavor", "free")

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("output is not json: %q: %v", buf.String(), err)
	}
	if m["@message"] != "generated" || m["flavor"] != "free" {
		t.Errorf("unexpected entry %v", m)
	}
}

func TestLoggerOptions_Color(t *testing.T) {
	t.Setenv(EnvJSON, "")
	if opts := loggerOptions("bootsplash", "info", &bytes.Buffer{}); opts.Color != hclog.AutoColor || opts.JSONFormat {
		t.Errorf("text output: color = %v, json = %v", opts.Color, opts.JSONFormat)
	}

	t.Setenv(EnvJSON, "1")
	if opts := loggerOptions("bootsplash", "info", &bytes.Buffer{}); opts.Color != hclog.ColorOff || !opts.JSONFormat {
		t.Errorf("json output: color = %v, json = %v", opts.Color, opts.JSONFormat)
	}
}

func TestLevel(t *testing.T) {
	t.Setenv(EnvLevel, "")
	if got := Level(); got != "info" {
		t.Errorf("default level = %q", got)
	}
	t.Setenv(EnvLevel, "debug")
	if got := Level(); got != "debug" {
		t.Errorf("env level = %q", got)
	}
}
