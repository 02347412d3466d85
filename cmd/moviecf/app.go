// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/tomtom215/moviecf/internal/config"
	"github.com/tomtom215/moviecf/internal/logging"
	"github.com/tomtom215/moviecf/internal/metrics"
	"github.com/tomtom215/moviecf/internal/ratings"
	"github.com/tomtom215/moviecf/internal/recommend"
	"github.com/tomtom215/moviecf/internal/recommend/algorithms"
	"github.com/tomtom215/moviecf/internal/report"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// flagKeys maps command-line flag names to config paths.
var flagKeys = map[string]string{
	"ratings": "input.path",
	"user":    "recommend.user",
	"top":     "recommend.top_n",
	"format":  "report.format",
}

// run executes one recommendation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("moviecf", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "path to a YAML config file")
	ratingsPath := fs.String("ratings", "", "path to the ratings CSV")
	user := fs.Int("user", 0, "user number, starting at 1")
	top := fs.Int("top", 0, "number of recommendations to list")
	format := fs.String("format", "", "report format: text or json")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "moviecf: unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return exitUsage
	}

	values := map[string]interface{}{
		"ratings": *ratingsPath,
		"user":    *user,
		"top":     *top,
		"format":  *format,
	}
	overrides := make(map[string]interface{})
	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			overrides[key] = values[f.Name]
		}
	})

	cfg, err := config.LoadWithKoanf(*configPath, overrides)
	if err != nil {
		fmt.Fprintf(stderr, "moviecf: %v\n", err)
		return exitError
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    stderr,
	})

	logging.Info().
		Str("ratings", cfg.Input.Path).
		Str("format", cfg.Report.Format).
		Bool("metrics", cfg.Metrics.Enabled()).
		Msg("Configuration loaded")

	err = recommendFor(context.Background(), cfg, stdout)
	metrics.RecordRun(err)
	if cfg.Metrics.Enabled() {
		if werr := metrics.WriteTextfile(cfg.Metrics.Textfile); werr != nil {
			logging.Warn().Err(werr).Msg("Failed to write metrics")
		}
	}

	if err != nil {
		fmt.Fprintf(stderr, "moviecf: %v\n", err)
		return exitError
	}
	return exitOK
}

// recommendFor loads the ratings named in cfg and writes the report for the
// configured user to stdout.
func recommendFor(ctx context.Context, cfg *config.Config, stdout io.Writer) error {
	ctx = logging.ContextWithRunID(ctx, logging.GenerateRunID())

	start := time.Now()
	m, err := ratings.LoadFile(cfg.Input.Path)
	metrics.ObserveStage(metrics.StageLoad, time.Since(start))
	if err != nil {
		if kind := ratings.Kind(err); kind != ratings.KindUnknown {
			metrics.RecordValidationFailure(kind)
		}
		return err
	}

	logging.Ctx(ctx).Debug().
		Str("path", cfg.Input.Path).
		Int("users", m.Rows()).
		Int("movies", m.Cols()).
		Msg("Ratings loaded")

	engine, err := recommend.NewEngine(algorithms.NewUserBasedCF(), logging.Logger())
	if err != nil {
		return err
	}
	if err := engine.Load(ctx, m); err != nil {
		return err
	}

	req, err := recommend.NewRequest(cfg.Recommend.User, cfg.Recommend.TopN, m)
	if err != nil {
		return err
	}
	rep, err := engine.Recommend(ctx, req)
	if err != nil {
		return err
	}

	w, err := report.New(cfg.Report, stdout)
	if err != nil {
		return err
	}
	if err := w.Write(rep); err != nil {
		return err
	}

	logging.Ctx(ctx).Debug().Str("format", cfg.Report.Format).Msg("Report written")
	return nil
}
