package export

import (
	"fmt"
	"io"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/san-kum/fieldmap/internal/analysis"
)

var quantityLabels = map[string]string{
	analysis.QuantityV:   "potential (V)",
	analysis.QuantityEx:  "Ex (N/C)",
	analysis.QuantityEy:  "Ey (N/C)",
	analysis.QuantityMag: "|E| (N/C)",
}

// ProfileChart renders a sampled profile line as a PNG chart.
func ProfileChart(w io.Writer, line analysis.Line) error {
	label, ok := quantityLabels[line.Quantity]
	if !ok {
		label = line.Quantity
	}

	along, fixed := "x", "y"
	if line.Axis == analysis.AxisCol {
		along, fixed = "y", "x"
	}

	ch := chart.Chart{
		Title:      fmt.Sprintf("%s along %s = %.2f", label, fixed, line.At),
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 24}},
		XAxis:      chart.XAxis{Name: along + " (m)"},
		YAxis:      chart.YAxis{Name: label},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    label,
				XValues: line.Positions,
				YValues: line.Values,
			},
		},
	}

	return ch.Render(chart.PNG, w)
}

func ExportProfileChart(path string, line analysis.Line) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return ProfileChart(f, line)
}
