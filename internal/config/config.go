// Package config loads the tool configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Port is the serial device path, or "auto" to scan for the device.
	Port string `yaml:"port"`

	// ReadTimeout bounds a single raw read on the serial line.
	ReadTimeout time.Duration `yaml:"read_timeout"`
	// AckTimeout bounds the wait for a transfer acknowledge byte.
	AckTimeout time.Duration `yaml:"ack_timeout"`

	// SplitGap is the timestamp gap separating two recorded tracks.
	SplitGap time.Duration `yaml:"split_gap"`

	// Quiet suppresses the echo of protocol traffic.
	Quiet bool `yaml:"quiet"`

	// DatePrefixes controls whether output filenames carry the recording
	// date.
	DatePrefixes *bool `yaml:"date_prefixes"`
}

func Default() Config {
	return Config{
		Port:        "auto",
		ReadTimeout: 1 * time.Second,
		AckTimeout:  10 * time.Second,
		SplitGap:    time.Hour,
	}
}

// Load reads a YAML config file. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.Port == "" {
		cfg.Port = "auto"
	}
	if cfg.ReadTimeout <= 0 {
		return Config{}, fmt.Errorf("read_timeout must be > 0")
	}
	if cfg.AckTimeout <= 0 {
		return Config{}, fmt.Errorf("ack_timeout must be > 0")
	}
	if cfg.SplitGap <= 0 {
		return Config{}, fmt.Errorf("split_gap must be > 0")
	}
	return cfg, nil
}

// UseDatePrefixes reports whether output filenames get date prefixes
// (enabled by default).
func (c Config) UseDatePrefixes() bool {
	return c.DatePrefixes == nil || *c.DatePrefixes
}
