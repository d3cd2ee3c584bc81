// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

// Package config loads and validates library configuration.
//
// Configuration is layered with clear precedence: environment variables
// override the optional YAML config file, which overrides built-in
// defaults. Secrets (the Wialon API token) are expected to arrive via
// environment variables and never via the config file checked into a
// deployment.
package config

import (
	"time"
)

// Default remote API hosts. The sandbox host is selected when
// wialon.sandbox is true and no explicit host is configured.
const (
	DefaultProductionHost = "https://hst-api.wialon.com"
	DefaultSandboxHost    = "https://test-api.wialon.com"
)

// Config is the root configuration for the integration library.
type Config struct {
	Wialon    WialonConfig    `koanf:"wialon"`
	Breaker   BreakerConfig   `koanf:"breaker"`
	RateLimit RateLimitConfig `koanf:"ratelimit"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// WialonConfig holds connection settings for the telematics back end.
type WialonConfig struct {
	// Host is the base URL of the remote API. When empty, the production
	// or sandbox default is chosen based on Sandbox.
	Host string `koanf:"host"`

	// Token is the 72-character API token used by token_login.
	// Environment only: TGPS_WIALON_TOKEN.
	Token string `koanf:"token"`

	// AdminID is the administrator user id used as the default creator
	// for units, groups, users and resources.
	AdminID int64 `koanf:"admin_id"`

	// Sandbox selects the test back end when no explicit Host is set.
	Sandbox bool `koanf:"sandbox"`

	// Timeout bounds each RPC round trip.
	Timeout time.Duration `koanf:"timeout"`

	// RecorderCapacity bounds the per-session call-history ring.
	RecorderCapacity int `koanf:"recorder_capacity"`
}

// EffectiveHost resolves the remote API base URL, honouring the sandbox
// toggle when no explicit host is configured.
func (w WialonConfig) EffectiveHost() string {
	if w.Host != "" {
		return w.Host
	}
	if w.Sandbox {
		return DefaultSandboxHost
	}
	return DefaultProductionHost
}

// BreakerConfig tunes the circuit breaker wrapped around the RPC transport.
type BreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MaxRequests  uint32        `koanf:"max_requests"`  // Concurrent probes in half-open state
	Interval     time.Duration `koanf:"interval"`      // Closed-state measurement window
	Timeout      time.Duration `koanf:"timeout"`       // Open-state duration before half-open
	FailureRatio float64       `koanf:"failure_ratio"` // Trip threshold (0..1]
	MinRequests  uint32        `koanf:"min_requests"`  // Minimum samples before tripping
}

// RateLimitConfig paces outbound RPC calls. The remote API enforces
// per-session request quotas; pacing client-side avoids tripping them.
type RateLimitConfig struct {
	RPS   float64 `koanf:"rps"`
	Burst int     `koanf:"burst"`
}

// LoggingConfig mirrors internal/logging.Config for file/env control.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Wialon: WialonConfig{
			Host:             "", // Resolved via EffectiveHost
			Token:            "",
			AdminID:          0,
			Sandbox:          false,
			Timeout:          30 * time.Second,
			RecorderCapacity: 1024,
		},
		Breaker: BreakerConfig{
			Enabled:      true,
			MaxRequests:  3,
			Interval:     time.Minute,
			Timeout:      2 * time.Minute,
			FailureRatio: 0.6,
			MinRequests:  10,
		},
		RateLimit: RateLimitConfig{
			RPS:   10,
			Burst: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}
