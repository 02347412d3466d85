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

	"github.com/rs/zerolog"

	"github.com/tomtom215/moviecf/internal/logging"
	"github.com/tomtom215/moviecf/internal/metrics"
	"github.com/tomtom215/moviecf/internal/ratings"
)

// Engine runs the recommendation pipeline against one validated ratings
// matrix: predict, rank both views, evaluate.
//
// Load must complete before Recommend is called. After Load the matrix is
// read-only, so Recommend may be called repeatedly for different users.
type Engine struct {
	algorithm Algorithm
	logger    zerolog.Logger
	matrix    *ratings.Matrix
	now       func() time.Time
}

// NewEngine creates an engine that predicts with alg.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(alg Algorithm, logger zerolog.Logger) (*Engine, error) {
	if alg == nil {
		return nil, errors.New("recommend: algorithm is required")
	}

	return &Engine{
		algorithm: alg,
		logger: logging.WithComponent(logger, "recommend").With().
			Str("algorithm", alg.Name()).
			Logger(),
		now: time.Now,
	}, nil
}

// Load validates m and trains the algorithm on it. A matrix that fails
// validation is rejected and the previously loaded matrix, if any, is kept.
func (e *Engine) Load(ctx context.Context, m *ratings.Matrix) error {
	start := time.Now()
	err := ratings.Validate(m)
	metrics.ObserveStage(metrics.StageValidate, time.Since(start))
	if err != nil {
		metrics.RecordValidationFailure(ratings.Kind(err))
		return fmt.Errorf("validate ratings: %w", err)
	}

	if err := e.algorithm.Train(ctx, m); err != nil {
		return fmt.Errorf("train %s: %w", e.algorithm.Name(), err)
	}

	e.matrix = m
	metrics.RecordMatrix(m.Rows(), m.Cols())

	e.logger.Debug().
		Int("users", m.Rows()).
		Int("movies", m.Cols()).
		Int("model_version", e.algorithm.Version()).
		Msg("ratings matrix loaded")

	return nil
}

// Matrix returns the loaded matrix, or nil before Load.
func (e *Engine) Matrix() *ratings.Matrix {
	return e.matrix
}

// Recommend predicts ratings for req.User and builds the report: the
// predictions for every unrated movie, the two top-N rankings and the RMSE
// on the user's rated movies.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Report, error) {
	if e.matrix == nil {
		return nil, ErrNotTrained
	}
	if err := e.checkRequest(req); err != nil {
		return nil, err
	}

	runID := e.runID(ctx, req)
	ctx = logging.ContextWithRunID(ctx, runID)
	ctx = logging.ContextWithLogger(ctx, e.logger)
	logger := logging.Ctx(ctx).With().
		Int("user", req.User).
		Int("top_n", req.TopN).
		Logger()

	began := time.Now()

	start := time.Now()
	pred, err := e.algorithm.Predict(ctx, req.User)
	metrics.ObserveStage(metrics.StagePredict, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("predict user %d: %w", req.User, err)
	}
	metrics.RecordSimilarityComputations(e.matrix.Rows() - 1)

	row := e.matrix.View(req.User)
	predictions := unratedPredictions(row, pred)

	start = time.Now()
	topUnrated := RankUnratedOnly(pred, req.TopN)
	topCombined := RankCombined(pred, row, req.TopN)
	metrics.ObserveStage(metrics.StageRank, time.Since(start))

	start = time.Now()
	rmse := RMSE(e.matrix, pred, req.User)
	metrics.ObserveStage(metrics.StageEvaluate, time.Since(start))

	withEvidence := countWithEvidence(predictions)
	metrics.RecordPrediction(withEvidence, rmse)

	logger.Info().
		Int("unrated", len(predictions)).
		Int("predicted", withEvidence).
		Float64("rmse", rmse).
		Dur("elapsed", time.Since(began)).
		Msg("recommendation complete")

	return &Report{
		RunID:        runID,
		Algorithm:    e.algorithm.Name(),
		User:         req.User,
		Items:        e.matrix.Cols(),
		TopN:         req.TopN,
		Predictions:  predictions,
		UnratedCount: CountUnrated(row),
		TopUnrated:   topUnrated,
		TopCombined:  topCombined,
		RMSE:         rmse,
		GeneratedAt:  e.now().UTC(),
	}, nil
}

// checkRequest rejects requests outside the matrix. Bounds in the returned
// RangeError are 1-based, as an operator would enter them.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) checkRequest(req Request) error {
	if req.User < 0 || req.User >= e.matrix.Rows() {
		return &RangeError{Field: FieldUser, Value: req.User + 1, Min: 1, Max: e.matrix.Rows()}
	}
	if req.TopN < 1 || req.TopN > e.matrix.Cols() {
		return &RangeError{Field: FieldTopN, Value: req.TopN, Min: 1, Max: e.matrix.Cols()}
	}
	return nil
}

// runID picks the request's run ID, then the context's, then a new one.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) runID(ctx context.Context, req Request) string {
	if req.RunID != "" {
		return req.RunID
	}
	if id := logging.RunIDFromContext(ctx); id != "" {
		return id
	}
	return logging.GenerateRunID()
}

// unratedPredictions collects the prediction for every movie the user has
// not rated, in movie order.
func unratedPredictions(row []int, pred Predictions) []ItemPrediction {
	out := make([]ItemPrediction, 0, len(row))
	for i, v := range row {
		if v != ratings.Unrated {
			continue
		}
		var p float64
		if i < len(pred) {
			p = pred[i]
		}
		out = append(out, ItemPrediction{Item: i, Rating: p})
	}
	return out
}

func countWithEvidence(preds []ItemPrediction) int {
	n := 0
	for _, p := range preds {
		if p.Rating != 0 {
			n++
		}
	}
	return n
}
