// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"terminusgps.yaml",
	"terminusgps.yml",
	"/etc/terminusgps/config.yaml",
	"/etc/terminusgps/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "TGPS_CONFIG_PATH"

// envPrefix namespaces every environment override consumed by this library.
const envPrefix = "TGPS_"

// Load builds the configuration from layered sources:
//  1. Defaults: built-in sensible defaults
//  2. Config file: optional YAML file (if one exists)
//  3. Environment variables: override any setting (TGPS_ prefix)
//
// Precedence: ENV > file > defaults. The result is validated before it
// is returned.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	// TGPS_WIALON_TOKEN -> wialon.token
	// TGPS_BREAKER_MAX_REQUESTS -> breaker.max_requests
	if err := k.Load(env.Provider(envPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	// Check environment variable first
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	// Search default paths
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// configSections maps the leading environment token to a config section.
var configSections = []string{"wialon", "breaker", "ratelimit", "logging"}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - TGPS_WIALON_TOKEN -> wialon.token
//   - TGPS_WIALON_RECORDER_CAPACITY -> wialon.recorder_capacity
//   - TGPS_LOGGING_LEVEL -> logging.level
//
// Variables outside the known sections are dropped so unrelated TGPS_*
// variables cannot pollute the configuration tree.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))

	for _, section := range configSections {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + rest
		}
	}

	return "" // Unknown section: skip
}
