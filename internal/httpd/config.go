// Package httpd: server configuration, loadable from YAML.
package httpd

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables of the trace server.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// MaxBodyBytes bounds the size of an incoming graph description.
	MaxBodyBytes int64

	// ReadTimeout and WriteTimeout bound one request/response cycle.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// ShutdownTimeout is the grace period for in-flight requests on SIGTERM.
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the settings the server runs with when no file is
// given. The computation itself is O(E log E) over interactive-sized graphs,
// so the timeouts guard against slow clients, not slow algorithms.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		MaxBodyBytes:    1 << 20, // 1 MiB of graph text is far beyond interactive sizes
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

// fileConfig is the YAML shape: durations arrive as strings ("5s", "1m")
// and are parsed explicitly, since yaml.v3 has no native duration decoding.
type fileConfig struct {
	Addr            string `yaml:"addr"`
	MaxBodyBytes    int64  `yaml:"max_body_bytes"`
	ReadTimeout     string `yaml:"read_timeout"`
	WriteTimeout    string `yaml:"write_timeout"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

// LoadConfig reads a YAML config file and overlays it onto DefaultConfig:
// a partial file only overrides what it names. An empty path returns the
// defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("httpd: read config: %w", err)
	}

	var fc fileConfig
	if err = yaml.Unmarshal(raw, &fc); err != nil {
		return cfg, fmt.Errorf("httpd: parse config: %w", err)
	}

	if fc.Addr != "" {
		cfg.Addr = fc.Addr
	}
	if fc.MaxBodyBytes > 0 {
		cfg.MaxBodyBytes = fc.MaxBodyBytes
	}
	if cfg.ReadTimeout, err = overlayDuration(cfg.ReadTimeout, fc.ReadTimeout); err != nil {
		return cfg, fmt.Errorf("httpd: read_timeout: %w", err)
	}
	if cfg.WriteTimeout, err = overlayDuration(cfg.WriteTimeout, fc.WriteTimeout); err != nil {
		return cfg, fmt.Errorf("httpd: write_timeout: %w", err)
	}
	if cfg.ShutdownTimeout, err = overlayDuration(cfg.ShutdownTimeout, fc.ShutdownTimeout); err != nil {
		return cfg, fmt.Errorf("httpd: shutdown_timeout: %w", err)
	}

	return cfg, nil
}

// overlayDuration keeps def when the file left the field empty.
func overlayDuration(def time.Duration, s string) (time.Duration, error) {
	if s == "" {
		return def, nil
	}

	return time.ParseDuration(s)
}
