// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

package ratings

import (
	"fmt"
)

// Unrated is the matrix value for a movie the user has not rated.
const Unrated = 0

// Matrix is an immutable, row-major user-by-movie ratings matrix.
// The zero value is an empty matrix and fails validation.
type Matrix struct {
	rows int
	cols int
	data []int
}

// New builds a Matrix from a slice of rows, copying the values.
// It fails with ErrEmptyMatrix when there are no rows or the first row is
// empty, ErrRaggedMatrix when a row length differs from the first row, and
// ErrNegativeRating when any value is below zero.
func New(rows [][]int) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMatrix
	}

	cols := len(rows[0])
	data := make([]int, 0, len(rows)*cols)

	for u, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", u+1, len(row), cols, ErrRaggedMatrix)
		}
		for i, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("row %d, column %d has rating %d: %w", u+1, i+1, v, ErrNegativeRating)
			}
		}
		data = append(data, row...)
	}

	return &Matrix{rows: len(rows), cols: cols, data: data}, nil
}

// MustNew is like New but panics on error. Intended for tests and fixtures.
func MustNew(rows [][]int) *Matrix {
	m, err := New(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// Rows returns the number of users.
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}
	return m.rows
}

// Cols returns the number of movies.
func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}
	return m.cols
}

// At returns the rating of user u for movie i.
func (m *Matrix) At(u, i int) (int, error) {
	if !m.inBounds(u, i) {
		return 0, fmt.Errorf("at (%d, %d) in %dx%d matrix: %w", u, i, m.Rows(), m.Cols(), ErrIndexOutOfRange)
	}
	return m.data[u*m.cols+i], nil
}

// Row returns a copy of user u's ratings.
func (m *Matrix) Row(u int) ([]int, error) {
	if !m.inBounds(u, 0) {
		return nil, fmt.Errorf("row %d in %dx%d matrix: %w", u, m.Rows(), m.Cols(), ErrIndexOutOfRange)
	}
	out := make([]int, m.cols)
	copy(out, m.row(u))
	return out, nil
}

// row returns user u's ratings without copying. Callers must not modify
// the result and must have bounds-checked u.
func (m *Matrix) row(u int) []int {
	return m.data[u*m.cols : (u+1)*m.cols]
}

// View returns user u's ratings without copying. The slice aliases the
// matrix storage and must be treated as read-only. It panics if u is out
// of range; use Row for a checked copy.
func (m *Matrix) View(u int) []int {
	if !m.inBounds(u, 0) {
		panic(fmt.Sprintf("ratings: view of row %d in %dx%d matrix", u, m.Rows(), m.Cols()))
	}
	return m.row(u)
}

// Column returns a copy of movie i's ratings across all users.
func (m *Matrix) Column(i int) ([]int, error) {
	if !m.inBounds(0, i) {
		return nil, fmt.Errorf("column %d in %dx%d matrix: %w", i, m.Rows(), m.Cols(), ErrIndexOutOfRange)
	}
	out := make([]int, m.rows)
	for u := 0; u < m.rows; u++ {
		out[u] = m.data[u*m.cols+i]
	}
	return out, nil
}

func (m *Matrix) inBounds(u, i int) bool {
	return m != nil && u >= 0 && u < m.rows && i >= 0 && i < m.cols
}
