package viz

import (
	"github.com/san-kum/fieldmap/internal/analysis"
	"github.com/san-kum/fieldmap/internal/coulomb"
	"github.com/san-kum/fieldmap/internal/field"
)

// frame maps world coordinates onto the braille sub-pixel lattice of a
// canvas, y flipped so +y is up.
type frame struct {
	extent float64
	pw, ph int
}

func newFrame(extent float64, c *Canvas) frame {
	return frame{extent: extent, pw: c.Width * 2, ph: c.Height * 4}
}

func (f frame) pixel(x, y float64) (int, int) {
	px := int((x + f.extent) / (2 * f.extent) * float64(f.pw-1))
	py := int((f.extent - y) / (2 * f.extent) * float64(f.ph-1))
	return px, py
}

// ContourView draws equipotential isolines on a braille canvas with charge
// markers overlaid.
type ContourView struct {
	Map    *field.Map
	Levels []float64
	Width  int
	Height int
}

func (cv ContourView) Render() string {
	c := NewCanvas(cv.Width, cv.Height)
	if cv.Map == nil || len(cv.Map.V) == 0 {
		return c.String()
	}
	f := newFrame(cv.Map.Extent, c)
	for _, seg := range analysis.Isolines(cv.Map, cv.Levels) {
		x0, y0 := f.pixel(seg.X1, seg.Y1)
		x1, y1 := f.pixel(seg.X2, seg.Y2)
		c.DrawLine(x0, y0, x1, y1)
	}
	drawMarkers(c, f, cv.Map.Charges)
	return c.String()
}

// StreamView draws traced field lines on a braille canvas with charge
// markers overlaid.
type StreamView struct {
	Map    *field.Map
	Tracer *StreamTracer
	Width  int
	Height int
}

func (sv StreamView) Render() string {
	c := NewCanvas(sv.Width, sv.Height)
	if sv.Map == nil || sv.Tracer == nil {
		return c.String()
	}
	f := newFrame(sv.Map.Extent, c)
	for _, line := range sv.Tracer.Lines() {
		for k := 1; k < len(line); k++ {
			x0, y0 := f.pixel(line[k-1].X, line[k-1].Y)
			x1, y1 := f.pixel(line[k].X, line[k].Y)
			c.DrawLine(x0, y0, x1, y1)
		}
	}
	drawMarkers(c, f, sv.Map.Charges)
	return c.String()
}

func drawMarkers(c *Canvas, f frame, charges []coulomb.Charge) {
	for _, ch := range charges {
		px, py := f.pixel(ch.X, ch.Y)
		c.Marker(px/2, py/4, markerRune(ch.Sign()))
	}
}
