package analysis

import (
	"math"

	"github.com/san-kum/fieldmap/internal/coulomb"
	"github.com/san-kum/fieldmap/internal/field"
)

// Extreme is a plane sample together with where it was found.
type Extreme struct {
	Value float64
	X     float64
	Y     float64
	I     int
	J     int
}

// Extrema scans the potential plane and returns its minimum and maximum
// samples. On an empty map both extremes are zero.
func Extrema(m *field.Map) (min, max Extreme) {
	if m == nil || len(m.V) == 0 {
		return min, max
	}
	min = Extreme{Value: math.Inf(1)}
	max = Extreme{Value: math.Inf(-1)}
	for i, row := range m.V {
		for j, v := range row {
			if v < min.Value {
				min = Extreme{Value: v, X: m.X[i][j], Y: m.Y[i][j], I: i, J: j}
			}
			if v > max.Value {
				max = Extreme{Value: v, X: m.X[i][j], Y: m.Y[i][j], I: i, J: j}
			}
		}
	}
	return min, max
}

// NetCharge sums the signed charges of a configuration.
func NetCharge(charges []coulomb.Charge) float64 {
	var total float64
	for _, c := range charges {
		total += c.Q
	}
	return total
}

// InteractionEnergy returns the pairwise electrostatic energy of the
// configuration, k*qi*qj/rij summed over distinct pairs. Separations below
// the solver's minimum radius are floored the same way field samples are, so
// coincident charges report a large but finite energy.
func InteractionEnergy(s *coulomb.Solver, charges []coulomb.Charge) float64 {
	var total float64
	for i := 0; i < len(charges); i++ {
		for j := i + 1; j < len(charges); j++ {
			dx := charges[i].X - charges[j].X
			dy := charges[i].Y - charges[j].Y
			r := math.Hypot(dx, dy)
			if r < s.MinRadius {
				r = s.MinRadius
			}
			total += s.K * charges[i].Q * charges[j].Q / r
		}
	}
	return total
}

// DipoleMoment returns the dipole moment of the configuration about the
// origin, p = sum(qi * ri).
func DipoleMoment(charges []coulomb.Charge) (px, py float64) {
	for _, c := range charges {
		px += c.Q * c.X
		py += c.Q * c.Y
	}
	return px, py
}
