// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

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
	"moviecf.yaml",
	"moviecf.yml",
	"config.yaml",
	"/etc/moviecf/config.yaml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Path: "ratings.csv",
		},
		Recommend: RecommendConfig{
			User: 0, // Must be supplied
			TopN: 0, // Must be supplied
		},
		Report: ReportConfig{
			Format:    "text",
			Precision: 2,
			Color:     false,
		},
		Metrics: MetricsConfig{
			Textfile: "", // Disabled
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: configPath if set, otherwise the first of CONFIG_PATH
//     and DefaultConfigPaths that exists
//  3. Environment Variables: Override any setting
//  4. Overrides: koanf paths to values (e.g. "recommend.user": 3), used
//     for command-line flags
//
// An explicit configPath must exist; a missing file found by search is
// skipped.
func LoadWithKoanf(configPath string, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables
	// RATINGS_PATH -> input.path, RECOMMEND_TOP_N -> recommend.top_n
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Layer 4: Explicit overrides (highest priority)
	for path, value := range overrides {
		if err := k.Set(path, value); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", path, err)
		}
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
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envMappings maps lower-cased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Input
	"ratings_path": "input.path",

	// Recommendation selection
	"recommend_user":  "recommend.user",
	"recommend_top_n": "recommend.top_n",

	// Report
	"report_format":    "report.format",
	"report_precision": "report.precision",
	"report_color":     "report.color",

	// Metrics
	"metrics_textfile": "metrics.textfile",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - RATINGS_PATH -> input.path
//   - RECOMMEND_TOP_N -> recommend.top_n
//   - LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// For unmapped keys, return empty string to skip them
	// This prevents random environment variables from polluting config
	return ""
}
