package field

import "gonum.org/v1/gonum/floats"

const (
	DefaultSize   = 100
	DefaultExtent = 5.0
)

// Spec describes a square sampling grid: Size points per axis spanning
// [-Extent, Extent] in both x and y.
type Spec struct {
	Size   int
	Extent float64
}

func DefaultSpec() Spec {
	return Spec{Size: DefaultSize, Extent: DefaultExtent}
}

// Clamped forces degenerate values back to the defaults.
func (sp Spec) Clamped() Spec {
	if sp.Size < 2 {
		sp.Size = DefaultSize
	}
	if sp.Extent <= 0 {
		sp.Extent = DefaultExtent
	}
	return sp
}

// Axis returns the Size sample positions along one axis, endpoints included.
func (sp Spec) Axis() []float64 {
	sp = sp.Clamped()
	return floats.Span(make([]float64, sp.Size), -sp.Extent, sp.Extent)
}

// Step is the spacing between adjacent samples.
func (sp Spec) Step() float64 {
	sp = sp.Clamped()
	return 2 * sp.Extent / float64(sp.Size-1)
}

// Meshgrid expands the axis into full X and Y coordinate planes, row-major:
// x varies across columns, y across rows.
func (sp Spec) Meshgrid() (X, Y [][]float64) {
	sp = sp.Clamped()
	ax := sp.Axis()
	X = make([][]float64, sp.Size)
	Y = make([][]float64, sp.Size)
	for i := range X {
		X[i] = make([]float64, sp.Size)
		Y[i] = make([]float64, sp.Size)
		for j := range X[i] {
			X[i][j] = ax[j]
			Y[i][j] = ax[i]
		}
	}
	return X, Y
}
