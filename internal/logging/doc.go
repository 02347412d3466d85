// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

// Package logging provides centralized zerolog-based structured logging for MovieCF.
//
// The package holds one global logger, configured once at startup, plus
// helpers that attach the run ID of a recommendation run to every log line
// emitted while it is in progress.
//
// # Quick Start
//
//	import "github.com/tomtom215/moviecf/internal/logging"
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "console",
//	    Output: os.Stderr,
//	})
//
//	logging.Info().Str("path", path).Msg("Configuration loaded")
//	logging.Warn().Err(err).Msg("Failed to write metrics")
//
//	ctx = logging.ContextWithRunID(ctx, logging.GenerateRunID())
//	logging.Ctx(ctx).Debug().Msg("Ratings loaded") // carries run_id
//
// # Configuration
//
// Environment Variables (read by package config):
//
//	LOG_LEVEL   - Minimum log level: trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - Output format: json, console (default: console)
//	LOG_CALLER  - Include caller file:line: true, false (default: false)
//
// # Output
//
// The CLI writes the report to stdout, so logs always go to stderr unless
// Config.Output says otherwise.
//
// # Component Loggers
//
// Long-lived components take a zerolog.Logger in their constructor and
// derive a child with a component field:
//
//	logger := logging.WithComponent(base, "recommend")
//
// A component that handles a run stores its logger in the context with
// ContextWithLogger; code called with that context logs through Ctx and
// inherits both the component fields and the run ID.
//
// # Testing
//
// Use NewTestLogger to capture JSON output in a buffer:
//
//	var buf bytes.Buffer
//	logger := logging.NewTestLogger(&buf)
package logging
