// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline stage labels for StageDuration.
const (
	StageLoad     = "load"
	StageValidate = "validate"
	StagePredict  = "predict"
	StageRank     = "rank"
	StageEvaluate = "evaluate"
)

// Run status labels for RunsTotal.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

var (
	// Pipeline Metrics
	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moviecf_stage_duration_seconds",
			Help:    "Duration of each recommendation pipeline stage in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 10, 6), // 100µs .. 10s
		},
		[]string{"stage"},
	)

	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviecf_validation_failures_total",
			Help: "Total number of rejected ratings inputs by failure kind",
		},
		[]string{"kind"}, // "ParseError", "EmptyMatrix", "RaggedMatrix", ...
	)

	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviecf_runs_total",
			Help: "Total number of recommendation runs by outcome",
		},
		[]string{"status"},
	)

	// Model Metrics
	SimilarityComputations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moviecf_similarity_computations_total",
			Help: "Total number of user-user similarity computations",
		},
	)

	MatrixUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moviecf_matrix_users",
			Help: "Number of users in the loaded ratings matrix",
		},
	)

	MatrixItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moviecf_matrix_items",
			Help: "Number of movies in the loaded ratings matrix",
		},
	)

	PredictedItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moviecf_predicted_items",
			Help: "Number of unrated movies that received a nonzero prediction in the last run",
		},
	)

	LastRMSE = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moviecf_last_rmse",
			Help: "RMSE of the last run's predictions on the target user's rated movies",
		},
	)
)

// ObserveStage records the duration of a pipeline stage.
func ObserveStage(stage string, duration time.Duration) {
	StageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// RecordValidationFailure counts a rejected input by failure kind.
func RecordValidationFailure(kind string) {
	if kind == "" {
		kind = "Unknown"
	}
	ValidationFailures.WithLabelValues(kind).Inc()
}

// RecordMatrix records the dimensions of a loaded ratings matrix.
func RecordMatrix(users, items int) {
	MatrixUsers.Set(float64(users))
	MatrixItems.Set(float64(items))
}

// RecordSimilarityComputations adds n similarity computations.
func RecordSimilarityComputations(n int) {
	if n > 0 {
		SimilarityComputations.Add(float64(n))
	}
}

// RecordPrediction records the outcome of one prediction run.
func RecordPrediction(predictedItems int, rmse float64) {
	PredictedItems.Set(float64(predictedItems))
	LastRMSE.Set(rmse)
}

// RecordRun counts a finished run as a success or failure.
func RecordRun(err error) {
	if err != nil {
		RunsTotal.WithLabelValues(StatusFailure).Inc()
		return
	}
	RunsTotal.WithLabelValues(StatusSuccess).Inc()
}

// WriteTextfile writes every metric in the default registry to path in the
// node-exporter textfile collector format. The file is written atomically.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}
