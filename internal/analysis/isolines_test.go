package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/fieldmap/internal/coulomb"
	"github.com/san-kum/fieldmap/internal/field"
)

func TestIsolinesSingleChargeCircle(t *testing.T) {
	s := coulomb.NewSolver()
	charges := []coulomb.Charge{{Q: 1, X: 0, Y: 0}}
	m := field.Compute(s, charges, field.DefaultSpec())

	// V = K/r, so the K/2 equipotential is the circle r = 2.
	segs := Isolines(m, []float64{coulomb.K / 2})
	if len(segs) < 50 {
		t.Fatalf("got %d segments, want a full circle's worth", len(segs))
	}
	for _, seg := range segs {
		for _, r := range []float64{math.Hypot(seg.X1, seg.Y1), math.Hypot(seg.X2, seg.Y2)} {
			if math.Abs(r-2) > 0.02 {
				t.Fatalf("isoline point at r=%v, want 2", r)
			}
		}
	}
}

func TestIsolinesLevelAboveMax(t *testing.T) {
	s := coulomb.NewSolver()
	charges := []coulomb.Charge{{Q: 1, X: 0, Y: 0}}
	m := field.Compute(s, charges, field.DefaultSpec())

	// The clamp caps potential at K/MinRadius, so nothing crosses above it.
	segs := Isolines(m, []float64{2 * coulomb.K / coulomb.DefaultMinRadius})
	if len(segs) != 0 {
		t.Errorf("got %d segments above the clamped maximum, want 0", len(segs))
	}
}

func TestIsolinesSaddleCell(t *testing.T) {
	// Alternating corner signs cross zero on all four edges of the cell.
	m := &field.Map{
		Spec: field.Spec{Size: 2, Extent: 1},
		X:    [][]float64{{-1, 1}, {-1, 1}},
		Y:    [][]float64{{-1, -1}, {1, 1}},
		V:    [][]float64{{1, -1}, {-1, 1}},
	}

	segs := Isolines(m, []float64{0})
	if len(segs) != 2 {
		t.Fatalf("got %d segments from a saddle cell, want 2", len(segs))
	}
	for _, seg := range segs {
		for _, v := range []float64{seg.X1, seg.Y1, seg.X2, seg.Y2} {
			if v < -1 || v > 1 {
				t.Errorf("segment point %v outside the cell", v)
			}
		}
	}
}

func TestIsolinesDegenerate(t *testing.T) {
	if segs := Isolines(nil, []float64{0}); segs != nil {
		t.Errorf("nil map produced %d segments", len(segs))
	}
	m := &field.Map{V: [][]float64{{1}}}
	if segs := Isolines(m, []float64{0}); segs != nil {
		t.Errorf("single-sample map produced %d segments", len(segs))
	}
}
