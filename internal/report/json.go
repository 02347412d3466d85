// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

package report

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/moviecf/internal/recommend"
)

// JSONWriter writes the report as one indented JSON document.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// Document is the JSON form of a report. User and movie numbers are 1-based.
type Document struct {
	RunID        string          `json:"run_id"`
	Algorithm    string          `json:"algorithm"`
	User         int             `json:"user"`
	Movies       int             `json:"movies"`
	TopN         int             `json:"top_n"`
	UnratedCount int             `json:"unrated_count"`
	Predictions  []PredictedItem `json:"predictions"`
	TopUnrated   []RankedItem    `json:"top_unrated"`
	TopCombined  []RankedItem    `json:"top_combined"`
	RMSE         float64         `json:"rmse"`
	GeneratedAt  time.Time       `json:"generated_at"`
}

// PredictedItem is the predicted rating of one unrated movie.
type PredictedItem struct {
	Movie  int     `json:"movie"`
	Rating float64 `json:"predicted_rating"`
}

// RankedItem is one entry of a ranked list.
type RankedItem struct {
	Movie int     `json:"movie"`
	Score float64 `json:"score"`
}

// NewDocument converts r to its JSON form.
func NewDocument(r *recommend.Report) Document {
	doc := Document{
		RunID:        r.RunID,
		Algorithm:    r.Algorithm,
		User:         r.User + 1,
		Movies:       r.Items,
		TopN:         r.TopN,
		UnratedCount: r.UnratedCount,
		Predictions:  make([]PredictedItem, 0, len(r.Predictions)),
		TopUnrated:   rankedItems(r.TopUnrated),
		TopCombined:  rankedItems(r.TopCombined),
		RMSE:         r.RMSE,
		GeneratedAt:  r.GeneratedAt,
	}
	for _, p := range r.Predictions {
		doc.Predictions = append(doc.Predictions, PredictedItem{Movie: p.Item + 1, Rating: p.Rating})
	}
	return doc
}

func rankedItems(items []recommend.ScoredItem) []RankedItem {
	out := make([]RankedItem, 0, len(items))
	for _, s := range items {
		out = append(out, RankedItem{Movie: s.Item + 1, Score: s.Score})
	}
	return out
}

// Write encodes r as JSON followed by a newline.
func (j *JSONWriter) Write(r *recommend.Report) error {
	if r == nil {
		return ErrNilReport
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(r)); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return flush(j.w, buf.Bytes())
}
