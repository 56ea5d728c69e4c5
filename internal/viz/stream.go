package viz

import (
	"math"

	"github.com/san-kum/fieldmap/internal/coulomb"
)

// Point is a world-coordinate sample along a traced field line.
type Point struct {
	X, Y float64
}

// StreamTracer walks electric field lines with fixed steps along the
// normalized field direction. Lines start on a small ring around each
// charge and end when they leave the padded domain, land on a charge, or
// the field dies away.
type StreamTracer struct {
	Solver     *coulomb.Solver
	Charges    []coulomb.Charge
	Extent     float64
	Step       float64
	MaxSteps   int
	SeedRadius float64
	SeedsPer   int
}

func NewStreamTracer(s *coulomb.Solver, charges []coulomb.Charge, extent float64) *StreamTracer {
	return &StreamTracer{
		Solver:     s,
		Charges:    charges,
		Extent:     extent,
		Step:       extent / 125,
		MaxSteps:   1000,
		SeedRadius: extent / 33,
		SeedsPer:   12,
	}
}

// Trace follows the field from (x, y). dir is +1 to walk with the field
// and -1 against it. The final point may sit just outside the domain so
// lines visibly run off the frame.
func (st *StreamTracer) Trace(x, y, dir float64) []Point {
	pts := []Point{{x, y}}
	margin := st.Extent * 0.2
	for i := 0; i < st.MaxSteps; i++ {
		ex, ey := st.Solver.FieldAt(st.Charges, x, y)
		mag := math.Hypot(ex, ey)
		if mag < 1e-6 {
			break
		}
		x += dir * st.Step * ex / mag
		y += dir * st.Step * ey / mag
		pts = append(pts, Point{x, y})
		if x < -st.Extent-margin || x > st.Extent+margin ||
			y < -st.Extent-margin || y > st.Extent+margin {
			break
		}
		if st.nearCharge(x, y) {
			break
		}
	}
	return pts
}

// Lines seeds a ring of starts around every charge and traces each one.
// Positive charges emit lines outward, negative charges pull them in, and
// zero charges seed nothing.
func (st *StreamTracer) Lines() [][]Point {
	var lines [][]Point
	for _, c := range st.Charges {
		if c.Q == 0 {
			continue
		}
		dir := 1.0
		if c.Q < 0 {
			dir = -1
		}
		for k := 0; k < st.SeedsPer; k++ {
			angle := 2 * math.Pi * float64(k) / float64(st.SeedsPer)
			sx := c.X + st.SeedRadius*math.Cos(angle)
			sy := c.Y + st.SeedRadius*math.Sin(angle)
			if line := st.Trace(sx, sy, dir); len(line) > 1 {
				lines = append(lines, line)
			}
		}
	}
	return lines
}

func (st *StreamTracer) nearCharge(x, y float64) bool {
	for _, c := range st.Charges {
		if c.Q == 0 {
			continue
		}
		if math.Hypot(x-c.X, y-c.Y) < st.SeedRadius {
			return true
		}
	}
	return false
}
