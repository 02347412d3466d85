// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

/*
Package metrics provides Prometheus instrumentation for recommendation runs.

MovieCF is a batch tool, so nothing is served over HTTP. Instead the default
registry is written to a file at exit (see WriteTextfile) for the
node-exporter textfile collector to pick up.

# Available Metrics

Pipeline Metrics:
  - moviecf_stage_duration_seconds: Stage latency (histogram)
    Labels: stage (load, validate, predict, rank, evaluate)
  - moviecf_validation_failures_total: Rejected inputs (counter)
    Labels: kind (ParseError, EmptyMatrix, RaggedMatrix, UserHasNoRatings, ...)
  - moviecf_runs_total: Finished runs (counter)
    Labels: status (success, failure)

Model Metrics:
  - moviecf_similarity_computations_total: User-user similarities computed (counter)
  - moviecf_matrix_users: Users in the loaded matrix (gauge)
  - moviecf_matrix_items: Movies in the loaded matrix (gauge)
  - moviecf_predicted_items: Unrated movies with a nonzero prediction (gauge)
  - moviecf_last_rmse: RMSE of the last run (gauge)

# Usage

	start := time.Now()
	pred, err := alg.Predict(ctx, user)
	metrics.ObserveStage(metrics.StagePredict, time.Since(start))

	defer func() {
	    if err := metrics.WriteTextfile(path); err != nil {
	        logging.Warn().Err(err).Msg("Metrics not written")
	    }
	}()

# Textfile Export

With metrics.textfile set in the configuration:

	# HELP moviecf_last_rmse RMSE of the last run's predictions on the target user's rated movies
	# TYPE moviecf_last_rmse gauge
	moviecf_last_rmse 3.415650255319866
*/
package metrics
