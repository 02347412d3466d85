// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

package recommend

import (
	"fmt"

	"github.com/tomtom215/moviecf/internal/ratings"
	"github.com/tomtom215/moviecf/internal/validation"
)

// Selection is the operator's 1-based choice of user and list length,
// bounded by the matrix dimensions.
type Selection struct {
	User  int `validate:"gte=1,ltefield=Users"`
	Users int
	TopN  int `validate:"gte=1,ltefield=Items"`
	Items int
}

// NewRequest checks a 1-based user number and a top-N count against m and
// returns the equivalent 0-based Request. The user is checked before the
// count; the first violation is returned as a *RangeError.
func NewRequest(user, topN int, m *ratings.Matrix) (Request, error) {
	sel := Selection{
		User:  user,
		Users: m.Rows(),
		TopN:  topN,
		Items: m.Cols(),
	}

	if verr := validation.ValidateStruct(&sel); verr != nil {
		return Request{}, selectionError(sel, verr)
	}

	return Request{User: user - 1, TopN: topN}, nil
}

func selectionError(sel Selection, verr *validation.RequestValidationError) error {
	errs := verr.Errors()
	if len(errs) == 0 {
		return fmt.Errorf("invalid selection: %w", verr)
	}

	switch errs[0].Field() {
	case "User":
		return &RangeError{Field: FieldUser, Value: sel.User, Min: 1, Max: sel.Users}
	case "TopN":
		return &RangeError{Field: FieldTopN, Value: sel.TopN, Min: 1, Max: sel.Items}
	default:
		return fmt.Errorf("invalid selection: %w", verr)
	}
}
