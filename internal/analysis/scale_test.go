package analysis

import (
	"math"
	"testing"
)

func TestNewScaleSymmetric(t *testing.T) {
	plane := [][]float64{
		{-4, -2, 0},
		{1, 2, 3},
		{0.5, -0.5, 4},
	}
	sc := NewScale(plane, 1.0, 5)

	if math.Abs(sc.Limit-4) > 1e-12 {
		t.Errorf("Limit = %v, want 4", sc.Limit)
	}
	if len(sc.Levels) != 5 {
		t.Fatalf("len(Levels) = %d, want 5", len(sc.Levels))
	}
	if sc.Levels[0] != -sc.Limit || sc.Levels[4] != sc.Limit {
		t.Errorf("Levels span [%v, %v], want [-Limit, +Limit]", sc.Levels[0], sc.Levels[4])
	}
	if math.Abs(sc.Levels[2]) > 1e-12 {
		t.Errorf("middle level = %v, want 0", sc.Levels[2])
	}
}

func TestNewScaleQuantileTrims(t *testing.T) {
	// 99 moderate samples and one huge outlier near a charge. The default
	// quantile should keep the limit with the moderate samples.
	plane := make([][]float64, 10)
	k := 0
	for i := range plane {
		plane[i] = make([]float64, 10)
		for j := range plane[i] {
			k++
			plane[i][j] = float64(k) * 0.01
		}
	}
	plane[0][0] = 1000

	sc := NewScale(plane, DefaultQuantile, DefaultLevels)
	if sc.Limit > 2 {
		t.Errorf("Limit = %v, outlier not trimmed", sc.Limit)
	}
	if sc.Limit < 0.9 {
		t.Errorf("Limit = %v, want near the bulk of the samples", sc.Limit)
	}
	if len(sc.Levels) != DefaultLevels {
		t.Errorf("len(Levels) = %d, want %d", len(sc.Levels), DefaultLevels)
	}
}

func TestNewScaleBadArgs(t *testing.T) {
	plane := [][]float64{{1, -1}}

	sc := NewScale(plane, -0.5, 0)
	if sc.Limit <= 0 {
		t.Errorf("Limit = %v after fallback, want > 0", sc.Limit)
	}
	if len(sc.Levels) != DefaultLevels {
		t.Errorf("len(Levels) = %d, want fallback %d", len(sc.Levels), DefaultLevels)
	}

	sc = NewScale(nil, DefaultQuantile, 4)
	if sc.Limit != 1 {
		t.Errorf("empty plane Limit = %v, want 1", sc.Limit)
	}

	sc = NewScale([][]float64{{0, 0}, {0, 0}}, DefaultQuantile, 4)
	if sc.Limit != 1 {
		t.Errorf("all-zero plane Limit = %v, want 1", sc.Limit)
	}
}

func TestScaleNorm(t *testing.T) {
	sc := Scale{Limit: 10}

	tests := []struct {
		v    float64
		want float64
	}{
		{0, 0.5},
		{10, 1},
		{-10, 0},
		{5, 0.75},
		{-5, 0.25},
		{50, 1},
		{-50, 0},
	}
	for _, tt := range tests {
		if got := sc.Norm(tt.v); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Norm(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}

	var zero Scale
	if got := zero.Norm(3); got != 0.5 {
		t.Errorf("zero-limit Norm = %v, want 0.5", got)
	}
}
