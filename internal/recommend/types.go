// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/moviecf/internal/ratings"
)

var (
	// ErrIndexOutOfRange is returned when a user index or top-N count is
	// outside its valid bounds. It is the same value as
	// ratings.ErrIndexOutOfRange so either can be matched.
	ErrIndexOutOfRange = ratings.ErrIndexOutOfRange

	// ErrNotTrained is returned when predicting before a matrix was loaded.
	ErrNotTrained = errors.New("recommend: no ratings matrix loaded")
)

// Predictions holds one predicted rating per movie, aligned with the
// matrix columns. Movies without evidence are 0.
type Predictions []float64

// ScoredItem is a movie with a ranking score.
type ScoredItem struct {
	// Item is the 0-based movie index.
	Item int

	// Score is the predicted or actual rating used for ranking.
	Score float64
}

// ItemPrediction is the predicted rating for one unrated movie.
type ItemPrediction struct {
	// Item is the 0-based movie index.
	Item int

	// Rating is the predicted rating (0 when no similar user rated it).
	Rating float64
}

// Request selects the user and list length for a recommendation run.
// Indices are 0-based; use NewRequest to build one from 1-based input.
type Request struct {
	// User is the 0-based target user index.
	User int

	// TopN is the maximum length of each ranked list.
	TopN int

	// RunID correlates logs and output. Generated when empty.
	RunID string
}

// Report is the result of one recommendation run.
type Report struct {
	// RunID is the correlation identifier for this run.
	RunID string

	// Algorithm is the name of the algorithm that produced the predictions.
	Algorithm string

	// User is the 0-based target user index.
	User int

	// Items is the number of movies in the matrix.
	Items int

	// TopN is the requested list length.
	TopN int

	// Predictions lists every movie the user has not rated, in movie order.
	Predictions []ItemPrediction

	// UnratedCount is the number of movies the user has not rated.
	UnratedCount int

	// TopUnrated ranks unrated movies with a positive prediction.
	TopUnrated []ScoredItem

	// TopCombined ranks all movies, using the user's own rating where present.
	TopCombined []ScoredItem

	// RMSE is the error of the predictions on the user's rated movies.
	RMSE float64

	// GeneratedAt is when the report was produced.
	GeneratedAt time.Time
}

// Algorithm is a rating predictor trained on a ratings matrix.
type Algorithm interface {
	// Name returns the algorithm identifier (e.g., "usercf").
	Name() string

	// Train prepares the model from a validated ratings matrix.
	Train(ctx context.Context, m *ratings.Matrix) error

	// Predict returns a predicted rating for every movie for the user.
	// Movies the user already rated are left at 0.
	Predict(ctx context.Context, user int) (Predictions, error)

	// IsTrained returns whether the model has been trained.
	IsTrained() bool

	// Version returns the model version (incremented on each train).
	Version() int

	// LastTrainedAt returns when the model was last trained.
	LastTrainedAt() time.Time
}

// RangeError reports a value outside its valid inclusive range.
type RangeError struct {
	// Field is the input that was out of range ("user" or "top_n").
	Field string

	// Value is the rejected value.
	Value int

	// Min and Max are the inclusive bounds.
	Min int
	Max int
}

// Field names used in RangeError.
const (
	FieldUser = "user"
	FieldTopN = "top_n"
)

// Error implements the error interface.
func (e *RangeError) Error() string {
	switch e.Field {
	case FieldUser:
		return fmt.Sprintf("user index %d out of bounds: enter a value between %d and %d", e.Value, e.Min, e.Max)
	case FieldTopN:
		return fmt.Sprintf("invalid number of top recommendations %d: enter a value between %d and %d", e.Value, e.Min, e.Max)
	default:
		return fmt.Sprintf("%s %d out of range: enter a value between %d and %d", e.Field, e.Value, e.Min, e.Max)
	}
}

// Unwrap returns ErrIndexOutOfRange.
func (e *RangeError) Unwrap() error {
	return ErrIndexOutOfRange
}
