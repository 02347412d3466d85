// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

package recommend

import (
	"math"
	"testing"

	"github.com/tomtom215/moviecf/internal/ratings"
)

func TestRMSE(t *testing.T) {
	m := ratings.MustNew([][]int{
		{5, 3, 0, 1},
		{4, 0, 0, 1},
		{0, 0, 2, 0},
	})

	tests := []struct {
		name string
		pred Predictions
		user int
		want float64
	}{
		{
			name: "rated movies carry no prediction",
			pred: Predictions{0, 0, 5, 0},
			user: 0,
			want: math.Sqrt(35.0 / 3.0),
		},
		{
			name: "exact predictions",
			pred: Predictions{5, 3, 2.5, 1},
			user: 0,
			want: 0,
		},
		{
			name: "partial error",
			pred: Predictions{2, 0, 0, 1},
			user: 1,
			want: math.Sqrt(2),
		},
		{
			name: "unrated movies are ignored",
			pred: Predictions{9, 9, 2, 9},
			user: 2,
			want: 0,
		},
		{
			name: "short prediction vector treated as zero",
			pred: Predictions{4},
			user: 1,
			want: math.Sqrt(0.5),
		},
		{
			name: "user out of range",
			pred: Predictions{0, 0, 0, 0},
			user: 3,
			want: 0,
		},
		{
			name: "negative user",
			pred: Predictions{0, 0, 0, 0},
			user: -1,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RMSE(m, tt.pred, tt.user)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("RMSE() = %v, want %v", got, tt.want)
			}
			if got < 0 {
				t.Errorf("RMSE() = %v, want >= 0", got)
			}
		})
	}
}

func TestRMSE_NoRatings(t *testing.T) {
	m := ratings.MustNew([][]int{{0, 0}, {1, 2}})
	if got := RMSE(m, Predictions{3, 3}, 0); got != 0 {
		t.Errorf("RMSE() = %v, want 0 for a user with no ratings", got)
	}
}

func TestCountUnrated(t *testing.T) {
	tests := []struct {
		row  []int
		want int
	}{
		{[]int{5, 3, 0, 1}, 1},
		{[]int{0, 0, 0}, 3},
		{[]int{1, 2}, 0},
		{nil, 0},
	}

	for _, tt := range tests {
		if got := CountUnrated(tt.row); got != tt.want {
			t.Errorf("CountUnrated(%v) = %d, want %d", tt.row, got, tt.want)
		}
	}
}
