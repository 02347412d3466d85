// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/tomtom215/moviecf/internal/recommend"
)

// TextWriter writes the human-readable report.
type TextWriter struct {
	w         io.Writer
	precision int
	styles    styles
}

// NewTextWriter creates a text writer that prints ratings with precision
// decimal places. With color set, headings are styled when w supports it.
func NewTextWriter(w io.Writer, precision int, color bool) *TextWriter {
	return &TextWriter{
		w:         w,
		precision: precision,
		styles:    newStyles(w, color),
	}
}

// Write renders r as four sections separated by blank lines:
//
//	Predicted ratings for unrated movies for User 1:
//	Movie 3: 5.00
//
//	Top recommended movies for User 1 (Unrated Movies Only):
//	Movie 3 with predicted rating: 5.00
//
//	Top 2 recommended movies for User 1 (Including Both Rated and Unrated Movies):
//	Movie 1 with score: 5.00
//	Movie 3 with score: 5.00
//
//	RMSE for User 1: 3.42
func (t *TextWriter) Write(r *recommend.Report) error {
	if r == nil {
		return ErrNilReport
	}

	var buf bytes.Buffer
	user := r.User + 1

	t.heading(&buf, fmt.Sprintf("Predicted ratings for unrated movies for User %d:", user))
	for _, p := range r.Predictions {
		fmt.Fprintf(&buf, "Movie %d: %s\n", p.Item+1, t.number(p.Rating))
	}

	buf.WriteByte('\n')
	t.heading(&buf, fmt.Sprintf("Top recommended movies for User %d (Unrated Movies Only):", user))
	for _, s := range r.TopUnrated {
		fmt.Fprintf(&buf, "Movie %d with predicted rating: %s\n", s.Item+1, t.number(s.Score))
	}

	buf.WriteByte('\n')
	t.heading(&buf, fmt.Sprintf("Top %d recommended movies for User %d (Including Both Rated and Unrated Movies):", r.TopN, user))
	for _, s := range r.TopCombined {
		fmt.Fprintf(&buf, "Movie %d with score: %s\n", s.Item+1, t.number(s.Score))
	}

	buf.WriteByte('\n')
	buf.WriteString(t.styles.Summary(fmt.Sprintf("RMSE for User %d: %s", user, t.number(r.RMSE))))
	buf.WriteByte('\n')

	return flush(t.w, buf.Bytes())
}

func (t *TextWriter) heading(buf *bytes.Buffer, text string) {
	buf.WriteString(t.styles.Heading(text))
	buf.WriteByte('\n')
}

func (t *TextWriter) number(v float64) string {
	return fmt.Sprintf("%.*f", t.precision, v)
}
