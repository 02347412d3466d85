// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

package ratings

import (
	"errors"
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]int
		wantErr  error
		wantRows int
		wantCols int
	}{
		{
			name:     "rectangular matrix",
			rows:     [][]int{{5, 3, 0}, {0, 1, 4}},
			wantRows: 2,
			wantCols: 3,
		},
		{
			name:     "single cell",
			rows:     [][]int{{1}},
			wantRows: 1,
			wantCols: 1,
		},
		{
			name:    "nil rows",
			rows:    nil,
			wantErr: ErrEmptyMatrix,
		},
		{
			name:    "empty first row",
			rows:    [][]int{{}},
			wantErr: ErrEmptyMatrix,
		},
		{
			name:    "short second row",
			rows:    [][]int{{1, 2, 3}, {1, 2}},
			wantErr: ErrRaggedMatrix,
		},
		{
			name:    "long third row",
			rows:    [][]int{{1, 2}, {1, 2}, {1, 2, 3}},
			wantErr: ErrRaggedMatrix,
		},
		{
			name:    "negative rating",
			rows:    [][]int{{1, -2}},
			wantErr: ErrNegativeRating,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.rows)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
				}
				if m != nil {
					t.Errorf("New() returned matrix on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if m.Rows() != tt.wantRows || m.Cols() != tt.wantCols {
				t.Errorf("dims = %dx%d, want %dx%d", m.Rows(), m.Cols(), tt.wantRows, tt.wantCols)
			}
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	rows := [][]int{{1, 2}, {3, 4}}
	m := MustNew(rows)

	rows[0][0] = 9

	got, err := m.At(0, 0)
	if err != nil {
		t.Fatalf("At() error = %v", err)
	}
	if got != 1 {
		t.Errorf("At(0, 0) = %d after caller mutation, want 1", got)
	}
}

func TestMatrix_At(t *testing.T) {
	m := MustNew([][]int{{5, 3, 0}, {0, 1, 4}})

	tests := []struct {
		name    string
		u, i    int
		want    int
		wantErr bool
	}{
		{name: "first cell", u: 0, i: 0, want: 5},
		{name: "last cell", u: 1, i: 2, want: 4},
		{name: "unrated cell", u: 0, i: 2, want: Unrated},
		{name: "negative user", u: -1, i: 0, wantErr: true},
		{name: "user past end", u: 2, i: 0, wantErr: true},
		{name: "item past end", u: 0, i: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.At(tt.u, tt.i)
			if tt.wantErr {
				if !errors.Is(err, ErrIndexOutOfRange) {
					t.Errorf("At(%d, %d) error = %v, want ErrIndexOutOfRange", tt.u, tt.i, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("At(%d, %d) error = %v", tt.u, tt.i, err)
			}
			if got != tt.want {
				t.Errorf("At(%d, %d) = %d, want %d", tt.u, tt.i, got, tt.want)
			}
		})
	}
}

func TestMatrix_RowAndColumn(t *testing.T) {
	m := MustNew([][]int{{5, 3, 0}, {0, 1, 4}})

	row, err := m.Row(1)
	if err != nil {
		t.Fatalf("Row() error = %v", err)
	}
	if !reflect.DeepEqual(row, []int{0, 1, 4}) {
		t.Errorf("Row(1) = %v, want [0 1 4]", row)
	}

	row[0] = 7
	if v, _ := m.At(1, 0); v != 0 {
		t.Errorf("Row() result aliases matrix storage")
	}

	col, err := m.Column(2)
	if err != nil {
		t.Fatalf("Column() error = %v", err)
	}
	if !reflect.DeepEqual(col, []int{0, 4}) {
		t.Errorf("Column(2) = %v, want [0 4]", col)
	}

	if _, err := m.Row(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Row(5) error = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := m.Column(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Column(-1) error = %v, want ErrIndexOutOfRange", err)
	}
}

// rowsOf copies m into a slice of rows through the bounds-checked accessor.
func rowsOf(t *testing.T, m *Matrix) [][]int {
	t.Helper()
	out := make([][]int, m.Rows())
	for u := range out {
		row, err := m.Row(u)
		if err != nil {
			t.Fatalf("Row(%d) error = %v", u, err)
		}
		out[u] = row
	}
	return out
}

func TestMatrix_NilReceiver(t *testing.T) {
	var m *Matrix

	if m.Rows() != 0 || m.Cols() != 0 {
		t.Errorf("nil matrix dims = %dx%d, want 0x0", m.Rows(), m.Cols())
	}
	if _, err := m.At(0, 0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("At() on nil matrix error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrEmptyMatrix, "EmptyMatrix"},
		{ErrRaggedMatrix, "RaggedMatrix"},
		{ErrUserHasNoRatings, "UserHasNoRatings"},
		{ErrItemHasNoRatings, "ItemHasNoRatings"},
		{ErrIndexOutOfRange, "IndexOutOfRange"},
		{&ParseError{Line: 1, Column: 1, Token: "x", Err: errEmptyToken}, "ParseError"},
		{errors.New("other"), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Kind(tt.err); got != tt.want {
				t.Errorf("Kind(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
