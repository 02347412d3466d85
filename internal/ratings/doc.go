// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

// Package ratings holds the dense user-by-movie ratings matrix and the
// checks that gate every computation on it.
//
// # Matrix
//
// A Matrix is a flat, row-major buffer of integers with explicit
// dimensions. Rows are users, columns are movies. A value of 0 means the
// user has not rated the movie; positive values are explicit ratings.
// Matrices are built once and never mutated afterwards:
//
//	m, err := ratings.New([][]int{
//	    {5, 3, 0, 1},
//	    {4, 0, 0, 1},
//	})
//
// Construction rejects empty input, ragged rows and negative ratings.
//
// # Validation
//
// Validate applies the semantic rules required before prediction, in
// order, stopping at the first failure:
//
//  1. the matrix has at least one user and one movie (ErrEmptyMatrix)
//  2. every user rated at least one movie (ErrUserHasNoRatings)
//  3. every movie was rated by at least one user (ErrItemHasNoRatings)
//
// Failures are categories: the errors do not name the offending user or
// movie.
//
// # Loading
//
// Load reads a comma-separated source with one user per line and no
// header row. Malformed tokens are reported as *ParseError carrying the
// 1-based line and field number; the field number is the movie number.
// A trailing comma yields an empty last field and is rejected.
//
// # Errors
//
// All errors wrap one of the package sentinels and should be matched
// with errors.Is. Kind maps an error to its taxonomy name for logs and
// metric labels.
package ratings
