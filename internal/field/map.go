package field

import (
	"math"

	"github.com/san-kum/fieldmap/internal/coulomb"
)

// Map holds one evaluation pass over the grid: coordinate planes, field
// components and potential, all Size×Size. The charge list is a private
// copy, so a map stays consistent if the caller keeps editing charges.
type Map struct {
	Spec
	Charges []coulomb.Charge
	X, Y    [][]float64
	Ex, Ey  [][]float64
	V       [][]float64
}

// Magnitude returns |E| at grid cell (i, j).
func (m *Map) Magnitude(i, j int) float64 {
	return math.Hypot(m.Ex[i][j], m.Ey[i][j])
}

// IndexOf maps plane coordinates to the nearest grid cell, clamped to the
// grid bounds. Row i follows y, column j follows x.
func (m *Map) IndexOf(x, y float64) (i, j int) {
	step := m.Step()
	if step == 0 {
		return 0, 0
	}
	j = clampIndex(int(math.Round((x+m.Extent)/step)), m.Size)
	i = clampIndex(int(math.Round((y+m.Extent)/step)), m.Size)
	return i, j
}

// IsFinite reports whether every sample in every plane is a finite number.
func (m *Map) IsFinite() bool {
	for _, plane := range [][][]float64{m.Ex, m.Ey, m.V} {
		for _, row := range plane {
			for _, v := range row {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return false
				}
			}
		}
	}
	return true
}

func clampIndex(i, size int) int {
	if i < 0 {
		return 0
	}
	if i >= size {
		return size - 1
	}
	return i
}
