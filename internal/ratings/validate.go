// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

package ratings

// Validate reports whether m is fit for prediction. Checks run in order and
// stop at the first failure: empty matrix, a user with no ratings, a movie
// with no ratings. Rectangularity is guaranteed by New.
func Validate(m *Matrix) error {
	if m.Rows() == 0 || m.Cols() == 0 {
		return ErrEmptyMatrix
	}

	for u := 0; u < m.rows; u++ {
		if allUnrated(m.row(u)) {
			return ErrUserHasNoRatings
		}
	}

	for i := 0; i < m.cols; i++ {
		rated := false
		for u := 0; u < m.rows; u++ {
			if m.data[u*m.cols+i] != Unrated {
				rated = true
				break
			}
		}
		if !rated {
			return ErrItemHasNoRatings
		}
	}

	return nil
}

func allUnrated(row []int) bool {
	for _, v := range row {
		if v != Unrated {
			return false
		}
	}
	return true
}
