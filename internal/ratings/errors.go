// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

package ratings

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyMatrix is returned when the matrix has no users or no movies.
	ErrEmptyMatrix = errors.New("ratings: ratings matrix is empty or malformed")

	// ErrRaggedMatrix is returned when rows have different lengths.
	ErrRaggedMatrix = errors.New("ratings: rows have unequal lengths")

	// ErrUserHasNoRatings is returned when at least one row is all zero.
	ErrUserHasNoRatings = errors.New("ratings: at least one user has no rated movies")

	// ErrItemHasNoRatings is returned when at least one column is all zero.
	ErrItemHasNoRatings = errors.New("ratings: at least one movie has no ratings")

	// ErrNegativeRating is returned when a rating is below zero.
	ErrNegativeRating = errors.New("ratings: rating must not be negative")

	// ErrIndexOutOfRange is returned by bounds-checked accessors.
	ErrIndexOutOfRange = errors.New("ratings: index out of range")

	// ErrParse is wrapped by every *ParseError.
	ErrParse = errors.New("ratings: parse error")
)

// ParseError describes a token that could not be read as a rating.
type ParseError struct {
	// Line is the 1-based line in the source.
	Line int

	// Column is the 1-based field number on the line, which is the movie
	// number. It is 0 for CSV syntax errors that span fields.
	Column int

	Token string
	Err   error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Column == 0 {
		return fmt.Sprintf("ratings: parse error at line %d: %v", e.Line, e.Err)
	}
	if e.Token == "" {
		return fmt.Sprintf("ratings: parse error at line %d, column %d: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("ratings: parse error at line %d, column %d (%q): %v", e.Line, e.Column, e.Token, e.Err)
}

// Unwrap exposes both ErrParse and the underlying cause.
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// KindUnknown is the Kind of an error outside the ratings taxonomy, such
// as an I/O failure.
const KindUnknown = "Unknown"

// Kind returns the taxonomy name of err, or KindUnknown when err does not
// wrap any ratings sentinel. It returns "" for a nil error.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrParse):
		return "ParseError"
	case errors.Is(err, ErrEmptyMatrix):
		return "EmptyMatrix"
	case errors.Is(err, ErrRaggedMatrix):
		return "RaggedMatrix"
	case errors.Is(err, ErrUserHasNoRatings):
		return "UserHasNoRatings"
	case errors.Is(err, ErrItemHasNoRatings):
		return "ItemHasNoRatings"
	case errors.Is(err, ErrNegativeRating):
		return "NegativeRating"
	case errors.Is(err, ErrIndexOutOfRange):
		return "IndexOutOfRange"
	default:
		return KindUnknown
	}
}
