package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	DefaultQuantile = 0.98
	DefaultLevels   = 40
)

// Scale is a symmetric color scale for a diverging quantity. Limit is the
// magnitude mapped to the endpoints; values beyond it saturate. Levels are
// evenly spaced contour values from -Limit to +Limit.
type Scale struct {
	Limit  float64
	Levels []float64
}

// NewScale derives a symmetric scale from a plane: the limit is the given
// quantile of the absolute values, so the handful of extreme samples right
// next to a charge do not wash out the rest of the map.
func NewScale(plane [][]float64, quantile float64, levels int) Scale {
	if quantile <= 0 || quantile > 1 {
		quantile = DefaultQuantile
	}
	if levels < 2 {
		levels = DefaultLevels
	}

	abs := make([]float64, 0, len(plane)*len(plane))
	for _, row := range plane {
		for _, v := range row {
			abs = append(abs, math.Abs(v))
		}
	}
	if len(abs) == 0 {
		return Scale{Limit: 1, Levels: floats.Span(make([]float64, levels), -1, 1)}
	}

	sort.Float64s(abs)
	limit := stat.Quantile(quantile, stat.LinInterp, abs, nil)
	if limit == 0 {
		limit = 1
	}

	return Scale{
		Limit:  limit,
		Levels: floats.Span(make([]float64, levels), -limit, limit),
	}
}

// Norm maps v onto [0, 1] with 0.5 at zero; out-of-range values clip.
func (s Scale) Norm(v float64) float64 {
	if s.Limit == 0 {
		return 0.5
	}
	t := (v/s.Limit + 1) / 2
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
