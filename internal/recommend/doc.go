// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

// Package recommend turns predicted ratings into recommendations for a
// single user.
//
// # Pipeline
//
// The Engine owns one validated ratings matrix and runs, per request:
//
//  1. Prediction: the registered Algorithm predicts a rating for every
//     movie the user has not rated (see package algorithms).
//  2. Ranking: two top-N views are derived from the same predictions.
//     RankUnratedOnly keeps movies with a positive prediction;
//     RankCombined scores every movie with the user's own rating where
//     one exists and the prediction otherwise.
//  3. Evaluation: RMSE compares predictions with the user's actual ratings
//     over the movies the user rated.
//
// # Usage
//
//	engine, err := recommend.NewEngine(algorithms.NewUserBasedCF(), logger)
//	if err != nil {
//	    return err
//	}
//	if err := engine.Load(ctx, matrix); err != nil {
//	    return err // validation failure
//	}
//
//	req, err := recommend.NewRequest(userNumber, topN, matrix) // 1-based input
//	if err != nil {
//	    return err // *RangeError
//	}
//	report, err := engine.Recommend(ctx, req)
//
// # Indices
//
// Users and movies are 0-based everywhere in this package. NewRequest is
// the only place that accepts 1-based numbers, and RangeError reports
// bounds 1-based because it is shown to operators.
//
// # Ranking Ties
//
// Ranking uses a stable sort, so movies with equal scores keep ascending
// movie order.
package recommend
