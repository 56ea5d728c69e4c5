package coulomb

import "fmt"

// Input bounds. Out-of-range input is clamped, never rejected.
const (
	MinQ  = -5.0
	MaxQ  = 5.0
	MinXY = -5.0
	MaxXY = 5.0

	MinCharges   = 1
	MaxCharges   = 5
	DefaultCount = 2
)

// Charge is a point charge in the plane: signed magnitude Q at (X, Y).
type Charge struct {
	Q float64 `json:"q" yaml:"q"`
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func ClampQ(q float64) float64 {
	if q < MinQ {
		return MinQ
	}
	if q > MaxQ {
		return MaxQ
	}
	return q
}

func ClampXY(v float64) float64 {
	if v < MinXY {
		return MinXY
	}
	if v > MaxXY {
		return MaxXY
	}
	return v
}

func ClampCount(n int) int {
	if n < MinCharges {
		return MinCharges
	}
	if n > MaxCharges {
		return MaxCharges
	}
	return n
}

// Clamped returns the charge with magnitude and position forced into range.
func (c Charge) Clamped() Charge {
	return Charge{Q: ClampQ(c.Q), X: ClampXY(c.X), Y: ClampXY(c.Y)}
}

// Sign classifies a charge for display: +1 positive, -1 negative, 0 neutral.
func (c Charge) Sign() int {
	switch {
	case c.Q > 0:
		return 1
	case c.Q < 0:
		return -1
	}
	return 0
}

// Label is the marker text drawn next to a charge.
func (c Charge) Label() string {
	return fmt.Sprintf("Q=%g", c.Q)
}

// DefaultCharges returns n charges in the standard layout: the first two
// form a dipole at x=-2 and x=+2, further charges sit at the origin with
// unit positive magnitude.
func DefaultCharges(n int) []Charge {
	n = ClampCount(n)
	charges := make([]Charge, n)
	for i := range charges {
		switch i {
		case 0:
			charges[i] = Charge{Q: 1, X: -2}
		case 1:
			charges[i] = Charge{Q: -1, X: 2}
		default:
			charges[i] = Charge{Q: 1}
		}
	}
	return charges
}

// Normalize forces an arbitrary charge list into range: an empty list
// becomes the default dipole, a long list is truncated at MaxCharges, and
// every survivor is range-clamped.
func Normalize(charges []Charge) []Charge {
	if len(charges) == 0 {
		return DefaultCharges(DefaultCount)
	}
	if len(charges) > MaxCharges {
		charges = charges[:MaxCharges]
	}
	out := make([]Charge, len(charges))
	for i, c := range charges {
		out[i] = c.Clamped()
	}
	return out
}
