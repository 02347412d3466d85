// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

package config

import (
	"fmt"
	"strings"
)

// MaxPrecision is the largest supported number of decimal places.
const MaxPrecision = 6

// Validate checks that the configuration is usable. Bounds that depend on
// the ratings matrix (user and top-N maximums) are checked after loading it.
func (c *Config) Validate() error {
	if err := c.validateInput(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateReport(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateInput validates the ratings source
func (c *Config) validateInput() error {
	if strings.TrimSpace(c.Input.Path) == "" {
		return fmt.Errorf("RATINGS_PATH must not be empty")
	}
	return nil
}

// validateRecommend rejects negative selections; 0 means not set
func (c *Config) validateRecommend() error {
	if c.Recommend.User < 0 {
		return fmt.Errorf("RECOMMEND_USER must be a positive user number, got %d", c.Recommend.User)
	}
	if c.Recommend.TopN < 0 {
		return fmt.Errorf("RECOMMEND_TOP_N must be positive, got %d", c.Recommend.TopN)
	}
	return nil
}

// validReportFormats defines the allowed report formats
var validReportFormats = map[string]bool{
	"text": true,
	"json": true,
}

// validateReport validates the output settings
func (c *Config) validateReport() error {
	if !validReportFormats[c.Report.Format] {
		return fmt.Errorf("REPORT_FORMAT must be one of: text, json")
	}
	if c.Report.Precision < 0 || c.Report.Precision > MaxPrecision {
		return fmt.Errorf("REPORT_PRECISION must be between 0 and %d, got %d", MaxPrecision, c.Report.Precision)
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace":    true,
	"debug":    true,
	"info":     true,
	"warn":     true,
	"error":    true,
	"disabled": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if err := c.validateLogLevel(); err != nil {
		return err
	}
	return c.validateLogFormat()
}

// validateLogLevel validates the log level configuration
func (c *Config) validateLogLevel() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error, disabled")
	}
	return nil
}

// validateLogFormat validates the log format configuration
func (c *Config) validateLogFormat() error {
	if c.Logging.Format == "" {
		return nil
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
