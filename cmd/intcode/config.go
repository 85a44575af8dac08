package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/io"
	"github.com/ezrec/intcode/network"
)

// Config is the intcode.toml run configuration.
type Config struct {
	Mode        string        `toml:"mode"`
	Dialect     string        `toml:"dialect"`
	Padding     int           `toml:"padding"`
	MemoryLimit int64         `toml:"memory_limit"`
	Verbose     bool          `toml:"verbose"`
	Encoding    string        `toml:"encoding"`
	Language    string        `toml:"language"`
	Network     NetworkConfig `toml:"network"`
}

// NetworkConfig configures the packet network.
type NetworkConfig struct {
	Size      int   `toml:"size"`
	Nat       int64 `toml:"nat"`
	Idle      int   `toml:"idle"`
	MaxSweeps int   `toml:"max_sweeps"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Mode:     MODE_RUN,
		Dialect:  cpu.DIALECT_RELATIVE.String(),
		Encoding: io.ENCODING_DECIMAL.String(),
		Network: NetworkConfig{
			Size:      50,
			Nat:       network.NAT_ADDRESS,
			Idle:      network.IDLE_THRESHOLD,
			MaxSweeps: network.MAX_SWEEPS,
		},
	}
}

// LoadConfig reads a TOML config file over the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the names and limits in the configuration.
func (cfg *Config) Validate() (err error) {
	if !slices.Contains(_modes, cfg.Mode) {
		return fmt.Errorf("%w: %q", ErrMode, cfg.Mode)
	}
	if _, err = cpu.ParseDialect(cfg.Dialect); err != nil {
		return
	}
	if _, err = io.ParseEncoding(cfg.Encoding); err != nil {
		return
	}
	if cfg.Padding < 0 {
		return fmt.Errorf("padding %d is negative", cfg.Padding)
	}
	if cfg.Network.Size < 0 || (cfg.Mode == MODE_NET && cfg.Network.Size == 0) {
		return fmt.Errorf("network size %d is not positive", cfg.Network.Size)
	}
	return
}
