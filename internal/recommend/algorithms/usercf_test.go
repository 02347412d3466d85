// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

package algorithms

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moviecf/internal/logging"
	"github.com/tomtom215/moviecf/internal/ratings"
	"github.com/tomtom215/moviecf/internal/recommend"
)

const epsilon = 1e-9

func sampleMatrix() *ratings.Matrix {
	return ratings.MustNew([][]int{
		{5, 3, 0, 1},
		{4, 0, 0, 1},
		{1, 1, 0, 5},
		{1, 0, 0, 4},
		{0, 1, 5, 4},
	})
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want float64
	}{
		{"sample users 0 and 1", []int{5, 3, 0, 1}, []int{4, 0, 0, 1}, 21 / math.Sqrt(595)},
		{"sample users 0 and 4", []int{5, 3, 0, 1}, []int{0, 1, 5, 4}, 7 / math.Sqrt(1470)},
		{"no co-rated movies", []int{1, 0}, []int{0, 1}, 0},
		{"all-zero vector", []int{0, 0, 0}, []int{1, 2, 3}, 0},
		{"both all-zero", []int{0, 0}, []int{0, 0}, 0},
		{"empty vectors", nil, nil, 0},
		{"identical", []int{2, 4, 1}, []int{2, 4, 1}, 1},
		{"proportional", []int{1, 2}, []int{2, 4}, 1},
		{"unequal length uses shorter prefix", []int{3, 4, 5}, []int{3, 4}, 25 / (5 * 5.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("CosineSimilarity(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCosineSimilarity_Symmetric(t *testing.T) {
	m := sampleMatrix()
	for a := 0; a < m.Rows(); a++ {
		for b := 0; b < m.Rows(); b++ {
			ab := CosineSimilarity(m.View(a), m.View(b))
			ba := CosineSimilarity(m.View(b), m.View(a))
			if ab != ba {
				t.Errorf("sim(%d,%d) = %v, sim(%d,%d) = %v, want equal", a, b, ab, b, a, ba)
			}
			if ab < -1-epsilon || ab > 1+epsilon {
				t.Errorf("sim(%d,%d) = %v, want within [-1, 1]", a, b, ab)
			}
		}
		if self := CosineSimilarity(m.View(a), m.View(a)); math.Abs(self-1) > epsilon {
			t.Errorf("sim(%d,%d) = %v, want 1", a, a, self)
		}
	}
}

func TestPredictRatings(t *testing.T) {
	m := sampleMatrix()

	pred := PredictRatings(m, 0)
	want := recommend.Predictions{0, 0, 5, 0}
	if len(pred) != len(want) {
		t.Fatalf("len(PredictRatings()) = %d, want %d", len(pred), len(want))
	}
	for i := range want {
		if math.Abs(pred[i]-want[i]) > epsilon {
			t.Errorf("PredictRatings()[%d] = %v, want %v", i, pred[i], want[i])
		}
	}
}

func TestPredictRatings_WeightedAverage(t *testing.T) {
	// User 0 rated only movie 0; users 1 and 2 both rated movie 1.
	m := ratings.MustNew([][]int{
		{4, 0},
		{2, 5},
		{1, 3},
	})

	s1 := CosineSimilarity(m.View(0), m.View(1))
	s2 := CosineSimilarity(m.View(0), m.View(2))
	want := (s1*5 + s2*3) / (s1 + s2)

	pred := PredictRatings(m, 0)
	if pred[0] != 0 {
		t.Errorf("pred[0] = %v, want 0 for a rated movie", pred[0])
	}
	if math.Abs(pred[1]-want) > epsilon {
		t.Errorf("pred[1] = %v, want %v", pred[1], want)
	}
}

func TestPredictRatings_NoEvidence(t *testing.T) {
	// No other user shares a rated movie with user 0, so every similarity is
	// 0 and movie 2 stays unpredicted even though user 1 rated it.
	m := ratings.MustNew([][]int{
		{3, 0, 0},
		{0, 4, 2},
	})

	pred := PredictRatings(m, 0)
	for i, p := range pred {
		if p != 0 {
			t.Errorf("pred[%d] = %v, want 0", i, p)
		}
	}
}

func TestPredictRatings_InvalidInput(t *testing.T) {
	m := sampleMatrix()
	for _, user := range []int{-1, 5, 100} {
		if got := PredictRatings(m, user); got != nil {
			t.Errorf("PredictRatings(m, %d) = %v, want nil", user, got)
		}
	}
	if got := PredictRatings(nil, 0); got != nil {
		t.Errorf("PredictRatings(nil, 0) = %v, want nil", got)
	}
}

func TestUserBasedCF_Lifecycle(t *testing.T) {
	ctx := context.Background()
	cf := NewUserBasedCF()

	if cf.Name() != "usercf" {
		t.Errorf("Name() = %q, want %q", cf.Name(), "usercf")
	}
	if cf.IsTrained() {
		t.Error("IsTrained() = true before Train")
	}
	if _, err := cf.Predict(ctx, 0); !errors.Is(err, recommend.ErrNotTrained) {
		t.Errorf("Predict() before Train error = %v, want ErrNotTrained", err)
	}

	before := time.Now()
	if err := cf.Train(ctx, sampleMatrix()); err != nil {
		t.Fatalf("Train() error = %v", err)
	}
	if !cf.IsTrained() {
		t.Error("IsTrained() = false after Train")
	}
	if cf.Version() != 1 {
		t.Errorf("Version() = %d, want 1", cf.Version())
	}
	if cf.LastTrainedAt().Before(before) {
		t.Errorf("LastTrainedAt() = %v, want >= %v", cf.LastTrainedAt(), before)
	}

	pred, err := cf.Predict(ctx, 0)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if math.Abs(pred[2]-5) > epsilon {
		t.Errorf("Predict()[2] = %v, want 5", pred[2])
	}

	if err := cf.Train(ctx, sampleMatrix()); err != nil {
		t.Fatalf("second Train() error = %v", err)
	}
	if cf.Version() != 2 {
		t.Errorf("Version() after retrain = %d, want 2", cf.Version())
	}
}

func TestUserBasedCF_PredictLogsThroughContext(t *testing.T) {
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	var buf bytes.Buffer
	ctx := logging.ContextWithLogger(context.Background(),
		logging.WithComponent(logging.NewTestLogger(&buf), "recommend"))
	ctx = logging.ContextWithRunID(ctx, "run-cf")

	cf := NewUserBasedCF()
	if err := cf.Train(ctx, sampleMatrix()); err != nil {
		t.Fatalf("Train() error = %v", err)
	}
	if _, err := cf.Predict(ctx, 0); err != nil {
		t.Fatalf("Predict() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		`"component":"recommend"`,
		`"run_id":"run-cf"`,
		`"neighbors":4`,
		`"message":"ratings predicted"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}
}

func TestUserBasedCF_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("nil matrix", func(t *testing.T) {
		cf := NewUserBasedCF()
		if err := cf.Train(ctx, nil); !errors.Is(err, ratings.ErrEmptyMatrix) {
			t.Errorf("Train(nil) error = %v, want ErrEmptyMatrix", err)
		}
		if cf.IsTrained() {
			t.Error("IsTrained() = true after failed Train")
		}
	})

	t.Run("user out of range", func(t *testing.T) {
		cf := NewUserBasedCF()
		if err := cf.Train(ctx, sampleMatrix()); err != nil {
			t.Fatalf("Train() error = %v", err)
		}
		for _, user := range []int{-1, 5} {
			if _, err := cf.Predict(ctx, user); !errors.Is(err, ratings.ErrIndexOutOfRange) {
				t.Errorf("Predict(%d) error = %v, want ErrIndexOutOfRange", user, err)
			}
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		cf := NewUserBasedCF()
		if err := cf.Train(ctx, sampleMatrix()); err != nil {
			t.Fatalf("Train() error = %v", err)
		}
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		if _, err := cf.Predict(canceled, 0); !errors.Is(err, context.Canceled) {
			t.Errorf("Predict() error = %v, want context.Canceled", err)
		}
		if err := NewUserBasedCF().Train(canceled, sampleMatrix()); !errors.Is(err, context.Canceled) {
			t.Errorf("Train() error = %v, want context.Canceled", err)
		}
	})
}

func TestContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	if ContextCancelled(ctx) {
		t.Error("ContextCancelled() = true for live context")
	}
	cancel()
	if !ContextCancelled(ctx) {
		t.Error("ContextCancelled() = false after cancel")
	}
}
