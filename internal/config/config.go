// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

package config

// Config holds all configuration for one moviecf run.
//
// Configuration Loading Order (Koanf v2), later layers win:
//  1. Defaults: Built-in defaults (defaultConfig)
//  2. Config File: Optional YAML file (see DefaultConfigPaths)
//  3. Environment Variables: RATINGS_PATH, LOG_LEVEL, ...
//  4. Overrides: Values set explicitly on the command line
//
// Example - Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	m, err := ratings.LoadFile(cfg.Input.Path)
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Input     InputConfig     `koanf:"input"`
	Recommend RecommendConfig `koanf:"recommend"`
	Report    ReportConfig    `koanf:"report"`
	Metrics   MetricsConfig   `koanf:"metrics"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// InputConfig locates the ratings matrix.
//
// Environment Variables:
//   - RATINGS_PATH: Path to the comma-separated ratings file (default: ratings.csv)
type InputConfig struct {
	// Path is the ratings file: one user per line, one integer rating per
	// movie, 0 for unrated.
	Path string `koanf:"path"`
}

// RecommendConfig selects the target user and list length.
//
// Both values are 1-based counts as an operator enters them; 0 means not
// set. Upper bounds depend on the matrix and are checked after it is loaded.
//
// Environment Variables:
//   - RECOMMEND_USER: Target user number, 1-based
//   - RECOMMEND_TOP_N: Number of movies in each ranked list
type RecommendConfig struct {
	User int `koanf:"user"`
	TopN int `koanf:"top_n"`
}

// ReportConfig controls how the report is written to stdout.
//
// Environment Variables:
//   - REPORT_FORMAT: text or json (default: text)
//   - REPORT_PRECISION: Decimal places for ratings, 0-6 (default: 2)
//   - REPORT_COLOR: Style text report headings (default: false)
type ReportConfig struct {
	Format    string `koanf:"format"`
	Precision int    `koanf:"precision"`

	// Color is ignored by the JSON format.
	Color bool `koanf:"color"`
}

// MetricsConfig controls the Prometheus textfile export.
//
// Environment Variables:
//   - METRICS_TEXTFILE: Write metrics to this path at exit (default: disabled)
type MetricsConfig struct {
	Textfile string `koanf:"textfile"`
}

// Enabled reports whether metrics should be written.
func (c MetricsConfig) Enabled() bool {
	return c.Textfile != ""
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error, disabled (default: info)
//   - LOG_FORMAT: json or console (default: console)
//   - LOG_CALLER: Include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Load reads configuration from all layers without command-line
// overrides, searching DefaultConfigPaths for the config file.
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf("", nil)
}
