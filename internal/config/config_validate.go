// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package config

import (
	"fmt"
	"strings"
)

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	if err := c.validateWialon(); err != nil {
		return err
	}
	if err := c.validateBreaker(); err != nil {
		return err
	}
	if err := c.validateRateLimit(); err != nil {
		return err
	}
	return c.validateLogging()
}

// validateWialon validates telematics connection settings.
func (c *Config) validateWialon() error {
	if c.Wialon.Token == "" {
		return fmt.Errorf("TGPS_WIALON_TOKEN is required")
	}
	if host := c.Wialon.Host; host != "" &&
		!strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		return fmt.Errorf("wialon.host must start with http:// or https://, got %q", host)
	}
	if c.Wialon.Timeout <= 0 {
		return fmt.Errorf("wialon.timeout must be positive, got %v", c.Wialon.Timeout)
	}
	if c.Wialon.RecorderCapacity <= 0 {
		return fmt.Errorf("wialon.recorder_capacity must be positive, got %d", c.Wialon.RecorderCapacity)
	}
	return nil
}

// validateBreaker validates circuit breaker tuning (only if enabled).
func (c *Config) validateBreaker() error {
	if !c.Breaker.Enabled {
		return nil
	}
	if c.Breaker.FailureRatio <= 0 || c.Breaker.FailureRatio > 1 {
		return fmt.Errorf("breaker.failure_ratio must be in (0, 1], got %v", c.Breaker.FailureRatio)
	}
	if c.Breaker.MinRequests == 0 {
		return fmt.Errorf("breaker.min_requests must be at least 1")
	}
	return nil
}

// validateRateLimit validates outbound call pacing.
func (c *Config) validateRateLimit() error {
	if c.RateLimit.RPS <= 0 {
		return fmt.Errorf("ratelimit.rps must be positive, got %v", c.RateLimit.RPS)
	}
	if c.RateLimit.Burst < 1 {
		return fmt.Errorf("ratelimit.burst must be at least 1, got %d", c.RateLimit.Burst)
	}
	return nil
}

// validateLogging validates logging configuration.
func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "disabled":
	default:
		return fmt.Errorf("logging.level %q is not a recognized level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
