// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/tomtom215/moviecf/internal/config"
	"github.com/tomtom215/moviecf/internal/recommend"
)

// Supported report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrNilReport is returned when asked to write a nil report.
var ErrNilReport = errors.New("report: nil report")

// Writer writes one recommendation report.
type Writer interface {
	Write(r *recommend.Report) error
}

// New returns the writer for cfg.Format, writing to w.
//
//nolint:gocritic // hugeParam: cfg passed by value for immutability
func New(cfg config.ReportConfig, w io.Writer) (Writer, error) {
	switch cfg.Format {
	case FormatText, "":
		return NewTextWriter(w, cfg.Precision, cfg.Color), nil
	case FormatJSON:
		return NewJSONWriter(w), nil
	default:
		return nil, fmt.Errorf("report: unknown format %q", cfg.Format)
	}
}

// flush writes b to w in one call.
func flush(w io.Writer, b []byte) error {
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
