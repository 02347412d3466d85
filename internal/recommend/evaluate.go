// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

package recommend

import (
	"math"

	"github.com/tomtom215/moviecf/internal/ratings"
)

// RMSE returns the root-mean-squared error between the user's actual
// ratings and pred, over the movies the user rated. It returns 0 when the
// user rated nothing or is not in m.
func RMSE(m *ratings.Matrix, pred Predictions, user int) float64 {
	row, err := m.Row(user)
	if err != nil {
		return 0
	}

	var sumSquared float64
	count := 0

	for i, actual := range row {
		if actual == ratings.Unrated {
			continue
		}
		var p float64
		if i < len(pred) {
			p = pred[i]
		}
		diff := float64(actual) - p
		sumSquared += diff * diff
		count++
	}

	if count == 0 {
		return 0
	}
	return math.Sqrt(sumSquared / float64(count))
}

// CountUnrated returns how many movies in row are unrated.
func CountUnrated(row []int) int {
	n := 0
	for _, v := range row {
		if v == ratings.Unrated {
			n++
		}
	}
	return n
}
