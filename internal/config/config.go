// SPDX-License-Identifier: GPL-3.0-or-later

// Package config holds the configuration for the stubdns command.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mfernandes/stubdns"
)

// Config controls the stubdns command.
type Config struct {
	// ServerAddr is the recursive resolver to query, in host:port form.
	ServerAddr string `yaml:"server_addr"`

	// Timeout bounds the whole resolve operation. Zero means wait forever.
	Timeout time.Duration `yaml:"timeout"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		ServerAddr: stubdns.DefaultServerAddr,
		Timeout:    5 * time.Second,
	}
}

// Load reads a yaml configuration file. Fields absent from the file keep
// their [Default] values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
