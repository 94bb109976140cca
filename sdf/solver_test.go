package sdf

import (
	"math"
	"slices"
	"testing"
)

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    []float64
	}{
		{"two roots", 1, -3, 2, []float64{1, 2}},
		{"double root", 1, 2, 1, []float64{-1}},
		{"no real roots", 1, 0, 1, nil},
		{"linear", 0, 2, -4, []float64{2}},
		{"constant", 0, 0, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkRoots(t, SolveQuadratic(tt.a, tt.b, tt.c), tt.want)
		})
	}
}

func TestSolveCubic(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c, d float64
		want       []float64
	}{
		{"three roots", 1, -6, 11, -6, []float64{1, 2, 3}},
		{"one real root", 1, 0, 0, -8, []float64{2}},
		{"repeated root", 1, 0, -3, 2, []float64{-2, 1}},
		{"scaled", 2, -12, 22, -12, []float64{1, 2, 3}},
		{"falls back to quadratic", 0, 1, -3, 2, []float64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkRoots(t, SolveCubic(tt.a, tt.b, tt.c, tt.d), tt.want)
		})
	}
}

func checkRoots(t *testing.T, got, want []float64) {
	t.Helper()
	got = slices.Clone(got)
	slices.Sort(got)
	if len(got) != len(want) {
		t.Fatalf("roots = %v, want %v", got, want)
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("roots = %v, want %v", got, want)
			return
		}
	}
}
