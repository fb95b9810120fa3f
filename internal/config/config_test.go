package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conn2m.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "auto" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.ReadTimeout != time.Second || cfg.AckTimeout != 10*time.Second {
		t.Errorf("timeouts = %v, %v", cfg.ReadTimeout, cfg.AckTimeout)
	}
	if cfg.SplitGap != time.Hour {
		t.Errorf("SplitGap = %v", cfg.SplitGap)
	}
	if !cfg.UseDatePrefixes() {
		t.Error("date prefixes must default to on")
	}
}

func TestLoadFile(t *testing.T) {
	path := writeTemp(t, `
port: /dev/ttyUSB1
read_timeout: 2s
ack_timeout: 5s
split_gap: 30m
quiet: true
date_prefixes: false
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "/dev/ttyUSB1" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.ReadTimeout != 2*time.Second || cfg.AckTimeout != 5*time.Second {
		t.Errorf("timeouts = %v, %v", cfg.ReadTimeout, cfg.AckTimeout)
	}
	if cfg.SplitGap != 30*time.Minute {
		t.Errorf("SplitGap = %v", cfg.SplitGap)
	}
	if !cfg.Quiet {
		t.Error("Quiet not set")
	}
	if cfg.UseDatePrefixes() {
		t.Error("date prefixes not disabled")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeTemp(t, "port: /dev/ttyUSB0\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "/dev/ttyUSB0" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.SplitGap != time.Hour || cfg.AckTimeout != 10*time.Second {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	for _, content := range []string{
		"read_timeout: -1s\n",
		"ack_timeout: 0s\n",
		"split_gap: -5m\n",
	} {
		path := writeTemp(t, content)
		if _, err := Load(path); err == nil {
			t.Errorf("config %q accepted", content)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("missing file accepted")
	}
}

func TestLoadEmptyPortFallsBackToAuto(t *testing.T) {
	path := writeTemp(t, `port: ""`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "auto" {
		t.Errorf("Port = %q, want auto", cfg.Port)
	}
}
