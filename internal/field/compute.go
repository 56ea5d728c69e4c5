package field

import "github.com/san-kum/fieldmap/internal/coulomb"

// Compute samples the field and potential of the charges on the grid
// described by spec. Contributions accumulate charge by charge with the
// solver's distance clamp applied before each term, so the planes are
// finite everywhere, including directly on a charge.
//
// The pass is a plain single-threaded loop. For the default 100×100 grid
// with at most five charges it completes in well under a frame.
func Compute(s *coulomb.Solver, charges []coulomb.Charge, spec Spec) *Map {
	spec = spec.Clamped()
	X, Y := spec.Meshgrid()

	ex := zeros(spec.Size)
	ey := zeros(spec.Size)
	v := zeros(spec.Size)

	for _, c := range charges {
		for i := 0; i < spec.Size; i++ {
			for j := 0; j < spec.Size; j++ {
				cex, cey, cv := s.Contribution(c, X[i][j], Y[i][j])
				ex[i][j] += cex
				ey[i][j] += cey
				v[i][j] += cv
			}
		}
	}

	return &Map{
		Spec:    spec,
		Charges: append([]coulomb.Charge(nil), charges...),
		X:       X,
		Y:       Y,
		Ex:      ex,
		Ey:      ey,
		V:       v,
	}
}

func zeros(size int) [][]float64 {
	p := make([][]float64, size)
	for i := range p {
		p[i] = make([]float64, size)
	}
	return p
}
