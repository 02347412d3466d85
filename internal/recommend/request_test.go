// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

package recommend

import (
	"errors"
	"testing"

	"github.com/tomtom215/moviecf/internal/ratings"
)

func TestNewRequest(t *testing.T) {
	// 5 users, 4 movies.
	m := ratings.MustNew([][]int{
		{5, 3, 0, 1},
		{4, 0, 0, 1},
		{1, 1, 0, 5},
		{1, 0, 0, 4},
		{0, 1, 5, 4},
	})

	tests := []struct {
		name      string
		user      int
		topN      int
		want      Request
		wantField string
		wantValue int
		wantMax   int
	}{
		{name: "first user", user: 1, topN: 3, want: Request{User: 0, TopN: 3}},
		{name: "last user, all movies", user: 5, topN: 4, want: Request{User: 4, TopN: 4}},
		{name: "user zero", user: 0, topN: 3, wantField: FieldUser, wantValue: 0, wantMax: 5},
		{name: "user past end", user: 6, topN: 3, wantField: FieldUser, wantValue: 6, wantMax: 5},
		{name: "negative user", user: -2, topN: 3, wantField: FieldUser, wantValue: -2, wantMax: 5},
		{name: "zero top n", user: 1, topN: 0, wantField: FieldTopN, wantValue: 0, wantMax: 4},
		{name: "top n past item count", user: 1, topN: 5, wantField: FieldTopN, wantValue: 5, wantMax: 4},
		{name: "user checked before top n", user: 9, topN: 9, wantField: FieldUser, wantValue: 9, wantMax: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRequest(tt.user, tt.topN, m)

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("NewRequest() error = %v", err)
				}
				if got != tt.want {
					t.Errorf("NewRequest() = %+v, want %+v", got, tt.want)
				}
				return
			}

			var rerr *RangeError
			if !errors.As(err, &rerr) {
				t.Fatalf("NewRequest() error = %v, want *RangeError", err)
			}
			if rerr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", rerr.Field, tt.wantField)
			}
			if rerr.Value != tt.wantValue {
				t.Errorf("Value = %d, want %d", rerr.Value, tt.wantValue)
			}
			if rerr.Min != 1 || rerr.Max != tt.wantMax {
				t.Errorf("range = [%d, %d], want [1, %d]", rerr.Min, rerr.Max, tt.wantMax)
			}
			if !errors.Is(err, ErrIndexOutOfRange) {
				t.Error("errors.Is(err, ErrIndexOutOfRange) = false, want true")
			}
		})
	}
}
