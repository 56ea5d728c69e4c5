package coulomb

import "math"

// K is the Coulomb constant in N·m²/C².
const K = 8.99e9

// Default clamp radii around each charge. Samples closer than this are
// treated as sitting on the clamp boundary.
const (
	DefaultMinRadius   = 0.1
	DefaultMinRadiusSq = 0.01
)

// Solver evaluates the electrostatic field and potential of point charges.
// MinRadius bounds the distance term and MinRadiusSq the squared distance
// term; the two are independent so either falloff can be tuned alone.
type Solver struct {
	K           float64
	MinRadius   float64
	MinRadiusSq float64
}

func NewSolver() *Solver {
	return &Solver{K: K, MinRadius: DefaultMinRadius, MinRadiusSq: DefaultMinRadiusSq}
}

// Contribution returns one charge's field components and potential term at
// (x, y), with the distance clamps already applied. Every evaluator in the
// module accumulates these terms, so the clamp always precedes summation.
func (s *Solver) Contribution(c Charge, x, y float64) (ex, ey, v float64) {
	dx := x - c.X
	dy := y - c.Y
	r2 := dx*dx + dy*dy
	r := math.Sqrt(r2)
	if r < s.MinRadius {
		r = s.MinRadius
	}
	if r2 < s.MinRadiusSq {
		r2 = s.MinRadiusSq
	}
	mag := s.K * c.Q / r2
	return mag * dx / r, mag * dy / r, s.K * c.Q / r
}

// FieldAt returns the field components at (x, y) summed over all charges.
func (s *Solver) FieldAt(charges []Charge, x, y float64) (ex, ey float64) {
	for _, c := range charges {
		cex, cey, _ := s.Contribution(c, x, y)
		ex += cex
		ey += cey
	}
	return ex, ey
}

// PotentialAt returns the scalar potential at (x, y).
func (s *Solver) PotentialAt(charges []Charge, x, y float64) float64 {
	v := 0.0
	for _, c := range charges {
		_, _, cv := s.Contribution(c, x, y)
		v += cv
	}
	return v
}
