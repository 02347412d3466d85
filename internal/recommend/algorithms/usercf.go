// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

package algorithms

import (
	"context"
	"fmt"
	"math"

	"github.com/tomtom215/moviecf/internal/logging"
	"github.com/tomtom215/moviecf/internal/ratings"
	"github.com/tomtom215/moviecf/internal/recommend"
)

// UserBasedCF implements user-based collaborative filtering over a dense
// ratings matrix. Similarities are computed on demand for the requested
// user, so training only snapshots the matrix.
type UserBasedCF struct {
	BaseAlgorithm

	matrix *ratings.Matrix
}

// NewUserBasedCF creates an untrained user-based CF algorithm.
func NewUserBasedCF() *UserBasedCF {
	return &UserBasedCF{
		BaseAlgorithm: NewBaseAlgorithm("usercf"),
	}
}

// Train fits the model to m. The matrix must already have passed
// ratings.Validate; it is not copied and must not be modified afterwards.
func (u *UserBasedCF) Train(ctx context.Context, m *ratings.Matrix) error {
	u.acquireTrainLock()
	defer u.releaseTrainLock()

	if ContextCancelled(ctx) {
		return ctx.Err()
	}
	if m == nil || m.Rows() == 0 {
		return ratings.ErrEmptyMatrix
	}

	u.matrix = m
	u.markTrained()
	return nil
}

// Predict returns the predicted rating of every movie for the 0-based user.
// Movies the user has rated, and movies without evidence, are 0.
func (u *UserBasedCF) Predict(ctx context.Context, user int) (recommend.Predictions, error) {
	u.acquirePredictLock()
	defer u.releasePredictLock()

	if !u.trained {
		return nil, recommend.ErrNotTrained
	}

	pred, err := predictRatings(ctx, u.matrix, user)
	if err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Debug().
		Int("model_version", u.version).
		Int("neighbors", u.matrix.Rows()-1).
		Msg("ratings predicted")

	return pred, nil
}

// PredictRatings computes the user-based CF predictions for the 0-based
// user without the training lifecycle. It returns nil if m is nil or user is
// out of range.
func PredictRatings(m *ratings.Matrix, user int) recommend.Predictions {
	pred, err := predictRatings(context.Background(), m, user)
	if err != nil {
		return nil
	}
	return pred
}

func predictRatings(ctx context.Context, m *ratings.Matrix, user int) (recommend.Predictions, error) {
	if m == nil {
		return nil, ratings.ErrEmptyMatrix
	}
	if user < 0 || user >= m.Rows() {
		return nil, fmt.Errorf("predict user %d of %d: %w", user, m.Rows(), ratings.ErrIndexOutOfRange)
	}

	target := m.View(user)
	pred := make(recommend.Predictions, m.Cols())
	weights := make([]float64, m.Cols())

	for other := 0; other < m.Rows(); other++ {
		if other == user {
			continue
		}
		if ContextCancelled(ctx) {
			return nil, ctx.Err()
		}

		row := m.View(other)
		sim := CosineSimilarity(target, row)

		for i, r := range row {
			if target[i] != ratings.Unrated || r == ratings.Unrated {
				continue
			}
			pred[i] += sim * float64(r)
			weights[i] += math.Abs(sim)
		}
	}

	for i, w := range weights {
		if w != 0 {
			pred[i] /= w
		}
	}

	return pred, nil
}

// CosineSimilarity returns the cosine similarity of two rating vectors.
//
// The dot product only counts movies both users rated, while each norm
// covers all of that user's ratings. The result is 0 when either vector
// has no ratings. Vectors of unequal length are compared over the shorter
// prefix.
func CosineSimilarity(a, b []int) float64 {
	n := min(len(a), len(b))

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		x, y := float64(a[i]), float64(b[i])
		if x != 0 && y != 0 {
			dot += x * y
		}
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
