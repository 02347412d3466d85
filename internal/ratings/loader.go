// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

package ratings

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var errEmptyToken = errors.New("empty rating")

// Load reads a ratings matrix from comma-separated text: one user per line,
// one rating per field, no header. Blank lines are skipped. The first
// malformed token aborts the load with a *ParseError; no partial matrix is
// returned.
func Load(r io.Reader) (*Matrix, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // row widths are checked by New
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	var rows [][]int
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, toParseError(err)
		}

		row := make([]int, len(record))
		for j, token := range record {
			v, err := parseRating(token)
			if err != nil {
				line, _ := reader.FieldPos(j)
				return nil, &ParseError{Line: line, Column: j + 1, Token: token, Err: err}
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return New(rows)
}

// LoadFile opens path and reads it with Load.
func LoadFile(path string) (*Matrix, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("open ratings file: %w", err)
	}
	defer func() { _ = f.Close() }()

	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return m, nil
}

func parseRating(token string) (int, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, errEmptyToken
	}

	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, ErrNegativeRating
	}
	return v, nil
}

// toParseError converts csv reader failures into *ParseError.
func toParseError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		// Quoting errors are not tied to a single field.
		return &ParseError{Line: csvErr.Line, Err: csvErr.Err}
	}
	return fmt.Errorf("read ratings: %w", err)
}
