package analysis

import (
	"errors"

	"github.com/san-kum/fieldmap/internal/field"
)

// Quantity names accepted by [Profile].
const (
	QuantityV   = "v"
	QuantityEx  = "ex"
	QuantityEy  = "ey"
	QuantityMag = "mag"
)

// Axis names accepted by [Profile].
const (
	AxisRow = "row"
	AxisCol = "col"
)

var (
	// ErrUnknownQuantity reports a quantity outside v, ex, ey, mag.
	ErrUnknownQuantity = errors.New("analysis: unknown quantity")

	// ErrUnknownAxis reports an axis other than row or col.
	ErrUnknownAxis = errors.New("analysis: unknown axis")

	// ErrEmptyMap reports a profile request against a map with no samples.
	ErrEmptyMap = errors.New("analysis: empty field map")
)

// Line is a 1-D cut through a field map along a single grid line.
type Line struct {
	Quantity  string
	Axis      string
	At        float64 // fixed coordinate after snapping to the grid
	Positions []float64
	Values    []float64
}

// Profile samples one quantity along the grid line nearest the requested
// coordinate. AxisRow holds y fixed at the line nearest at and varies x;
// AxisCol holds x fixed and varies y.
func Profile(m *field.Map, quantity, axis string, at float64) (Line, error) {
	if m == nil || len(m.V) == 0 {
		return Line{}, ErrEmptyMap
	}
	switch quantity {
	case QuantityV, QuantityEx, QuantityEy, QuantityMag:
	default:
		return Line{}, ErrUnknownQuantity
	}

	line := Line{Quantity: quantity, Axis: axis}
	switch axis {
	case AxisRow:
		i, _ := m.IndexOf(0, at)
		line.At = m.Y[i][0]
		line.Positions = make([]float64, len(m.V[i]))
		line.Values = make([]float64, len(m.V[i]))
		for j := range m.V[i] {
			line.Positions[j] = m.X[i][j]
			line.Values[j] = sample(m, i, j, quantity)
		}
	case AxisCol:
		_, j := m.IndexOf(at, 0)
		line.At = m.X[0][j]
		line.Positions = make([]float64, len(m.V))
		line.Values = make([]float64, len(m.V))
		for i := range m.V {
			line.Positions[i] = m.Y[i][j]
			line.Values[i] = sample(m, i, j, quantity)
		}
	default:
		return Line{}, ErrUnknownAxis
	}
	return line, nil
}

func sample(m *field.Map, i, j int, quantity string) float64 {
	switch quantity {
	case QuantityEx:
		return m.Ex[i][j]
	case QuantityEy:
		return m.Ey[i][j]
	case QuantityMag:
		return m.Magnitude(i, j)
	default:
		return m.V[i][j]
	}
}
