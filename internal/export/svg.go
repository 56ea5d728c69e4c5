package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/fieldmap/internal/analysis"
	"github.com/san-kum/fieldmap/internal/coulomb"
	"github.com/san-kum/fieldmap/internal/field"
	"github.com/san-kum/fieldmap/internal/viz"
)

const DefaultSVGWidth = 800

// FieldToSVG renders the map as a standalone square SVG: potential heat
// cells, equipotential isolines, field streamlines and charge markers.
func FieldToSVG(s *coulomb.Solver, m *field.Map, sc analysis.Scale, width int) string {
	if m == nil || width < 1 {
		return ""
	}

	w := float64(width)
	ext := m.Extent

	// Plane coordinates to pixel space, y flipped so north is up.
	px := func(x float64) float64 { return (x + ext) / (2 * ext) * w }
	py := func(y float64) float64 { return (ext - y) / (2 * ext) * w }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
`, width, width, width, width))

	// Potential heat cells, one rect per grid node. Row 0 holds the lowest
	// y value, so it lands at the bottom of the image.
	cell := w / float64(m.Size)
	sb.WriteString("<g shape-rendering=\"crispEdges\">\n")
	for i := 0; i < m.Size; i++ {
		for j := 0; j < m.Size; j++ {
			x := float64(j) * cell
			y := w - float64(i+1)*cell
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.2f" height="%.2f" fill="%s"/>
`, x, y, cell, cell, viz.PotentialHex(sc.Norm(m.V[i][j]))))
		}
	}
	sb.WriteString("</g>\n")

	// Equipotential isolines
	sb.WriteString("<g fill=\"none\" stroke=\"#202020\" stroke-width=\"0.6\" opacity=\"0.5\">\n")
	for _, seg := range analysis.Isolines(m, sc.Levels) {
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, px(seg.X1), py(seg.Y1), px(seg.X2), py(seg.Y2)))
	}
	sb.WriteString("</g>\n")

	// Field streamlines
	tracer := viz.NewStreamTracer(s, m.Charges, ext)
	sb.WriteString("<g fill=\"none\" stroke=\"#f0f0f0\" stroke-width=\"1.2\" opacity=\"0.7\">\n")
	for _, line := range tracer.Lines() {
		sb.WriteString(`<path d="M`)
		for i, p := range line {
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", px(p.X), py(p.Y)))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px(p.X), py(p.Y)))
			}
		}
		sb.WriteString("\"/>\n")
	}
	sb.WriteString("</g>\n")

	// Charge markers with signed magnitude labels
	for _, c := range m.Charges {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="#101010" stroke-width="1"/>
`, px(c.X), py(c.Y), w/80, viz.ChargeHex(c.Sign())))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="monospace" font-size="%.0f" fill="#101010" text-anchor="middle">%+g</text>
`, px(c.X), py(c.Y)+w/240, w/60, c.Q))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func ExportSVG(path string, s *coulomb.Solver, m *field.Map, sc analysis.Scale) error {
	return os.WriteFile(path, []byte(FieldToSVG(s, m, sc, DefaultSVGWidth)), 0644)
}
