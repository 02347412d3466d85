// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

// Package algorithms implements rating predictors for the recommend engine.
//
// Each algorithm implements the recommend.Algorithm interface: it is
// trained on a validated ratings.Matrix and predicts a rating for every
// movie a user has not rated.
//
// # User-Based Collaborative Filtering
//
// UserBasedCF predicts from the ratings of every other user, weighted by
// how similar that user is to the target:
//
//	pred(u, i) = sum_v sim(u, v) * r(v, i) / sum_v |sim(u, v)|
//
// where v ranges over the other users who rated movie i and sim is
// CosineSimilarity. Movies that no similar user rated keep a prediction of
// 0. Movies the target already rated are not predicted.
//
// CosineSimilarity takes the dot product over co-rated movies only, but each
// norm covers all of a user's ratings. Ratings are not mean-centered, so a
// user who rates everything low still looks similar to one who rates
// everything high.
//
// # Usage
//
//	cf := algorithms.NewUserBasedCF()
//	if err := cf.Train(ctx, matrix); err != nil {
//	    return err
//	}
//	pred, err := cf.Predict(ctx, user) // 0-based user index
//
// PredictRatings is the same computation without the training lifecycle,
// for callers holding a matrix directly.
//
// # Thread Safety
//
// Training acquires an exclusive lock while prediction uses a shared lock,
// so a trained algorithm can serve concurrent Predict calls.
package algorithms
