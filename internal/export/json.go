package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/fieldmap/internal/analysis"
	"github.com/san-kum/fieldmap/internal/coulomb"
	"github.com/san-kum/fieldmap/internal/field"
)

// ExportData is the JSON document for one field evaluation. X and Y are the
// shared grid axes; Ex, Ey and V are full row-major planes indexed [y][x].
type ExportData struct {
	Charges  []coulomb.Charge   `json:"charges"`
	GridSize int                `json:"grid_size"`
	Extent   float64            `json:"extent"`
	K        float64            `json:"k"`
	X        []float64          `json:"x"`
	Y        []float64          `json:"y"`
	Ex       [][]float64        `json:"ex"`
	Ey       [][]float64        `json:"ey"`
	V        [][]float64        `json:"v"`
	Metrics  map[string]float64 `json:"metrics"`
}

func newExportData(s *coulomb.Solver, m *field.Map) ExportData {
	vMin, vMax := analysis.Extrema(m)
	px, py := analysis.DipoleMoment(m.Charges)

	return ExportData{
		Charges:  m.Charges,
		GridSize: m.Size,
		Extent:   m.Extent,
		K:        s.K,
		X:        m.Axis(),
		Y:        m.Axis(),
		Ex:       m.Ex,
		Ey:       m.Ey,
		V:        m.V,
		Metrics: map[string]float64{
			"net_charge":      analysis.NetCharge(m.Charges),
			"dipole_x":        px,
			"dipole_y":        py,
			"energy":          analysis.InteractionEnergy(s, m.Charges),
			"potential_min":   vMin.Value,
			"potential_max":   vMax.Value,
			"potential_min_x": vMin.X,
			"potential_min_y": vMin.Y,
			"potential_max_x": vMax.X,
			"potential_max_y": vMax.Y,
		},
	}
}

func encodeJSON(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSON(path string, s *coulomb.Solver, m *field.Map) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return encodeJSON(file, newExportData(s, m))
}

func ExportJSONStdout(s *coulomb.Solver, m *field.Map) error {
	return encodeJSON(os.Stdout, newExportData(s, m))
}
