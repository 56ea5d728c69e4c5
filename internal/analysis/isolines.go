package analysis

import (
	"github.com/san-kum/fieldmap/internal/field"
)

// Segment is one straight piece of an isoline, in grid coordinates.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Isolines extracts equipotential segments from the potential plane with a
// marching-squares sweep over every cell and level. Crossing points are
// linearly interpolated along cell edges. The segments come back unordered
// and unjoined, which is all the renderers need.
func Isolines(m *field.Map, levels []float64) []Segment {
	if m == nil || len(m.V) < 2 {
		return nil
	}
	var segs []Segment
	for _, level := range levels {
		for i := 0; i < len(m.V)-1; i++ {
			for j := 0; j < len(m.V[i])-1; j++ {
				segs = appendCell(segs, m, i, j, level)
			}
		}
	}
	return segs
}

type corner struct {
	x, y, v float64
}

type point struct {
	x, y float64
}

// crossing interpolates where the level crosses the edge a-b, if it does.
// Corners at exactly the level count as above, so neighboring cells agree on
// which side they fall.
func crossing(a, b corner, level float64) (point, bool) {
	if (a.v >= level) == (b.v >= level) {
		return point{}, false
	}
	t := (level - a.v) / (b.v - a.v)
	return point{a.x + t*(b.x-a.x), a.y + t*(b.y-a.y)}, true
}

func appendCell(segs []Segment, m *field.Map, i, j int, level float64) []Segment {
	c := [4]corner{
		{m.X[i][j], m.Y[i][j], m.V[i][j]},
		{m.X[i][j+1], m.Y[i][j+1], m.V[i][j+1]},
		{m.X[i+1][j+1], m.Y[i+1][j+1], m.V[i+1][j+1]},
		{m.X[i+1][j], m.Y[i+1][j], m.V[i+1][j]},
	}

	// Walking the cell boundary flips sides an even number of times, so a
	// cell has exactly 0, 2, or 4 edge crossings.
	var pts [4]point
	n := 0
	for e := 0; e < 4; e++ {
		if p, ok := crossing(c[e], c[(e+1)%4], level); ok {
			pts[n] = p
			n++
		}
	}

	switch n {
	case 2:
		return append(segs, Segment{pts[0].x, pts[0].y, pts[1].x, pts[1].y})
	case 4:
		// Saddle cell: opposite corners sit on the same side. The cell
		// average decides which crossings pair up.
		avg := (c[0].v + c[1].v + c[2].v + c[3].v) / 4
		if (avg >= level) == (c[0].v >= level) {
			return append(segs,
				Segment{pts[0].x, pts[0].y, pts[1].x, pts[1].y},
				Segment{pts[2].x, pts[2].y, pts[3].x, pts[3].y})
		}
		return append(segs,
			Segment{pts[0].x, pts[0].y, pts[3].x, pts[3].y},
			Segment{pts[1].x, pts[1].y, pts[2].x, pts[2].y})
	}
	return segs
}
