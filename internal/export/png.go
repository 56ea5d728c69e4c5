package export

import (
	"image"
	"image/png"
	"os"

	"github.com/san-kum/fieldmap/internal/analysis"
	"github.com/san-kum/fieldmap/internal/field"
	"github.com/san-kum/fieldmap/internal/viz"
)

// RenderImage rasterizes the potential plane, one scale×scale pixel block
// per grid node, with charges drawn as filled dots on top.
func RenderImage(m *field.Map, sc analysis.Scale, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	side := m.Size * scale
	img := image.NewRGBA(image.Rect(0, 0, side, side))

	for i := 0; i < m.Size; i++ {
		for j := 0; j < m.Size; j++ {
			c := viz.PotentialColor(sc.Norm(m.V[i][j]))
			baseX := j * scale
			baseY := side - (i+1)*scale
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetRGBA(baseX+dx, baseY+dy, c)
				}
			}
		}
	}

	radius := side / 100
	if radius < 2 {
		radius = 2
	}
	for _, ch := range m.Charges {
		cx := int((ch.X + m.Extent) / (2 * m.Extent) * float64(side))
		cy := int((m.Extent - ch.Y) / (2 * m.Extent) * float64(side))
		dot := viz.ChargeColor(ch.Sign())
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if dx*dx+dy*dy > radius*radius {
					continue
				}
				x, y := cx+dx, cy+dy
				if x >= 0 && x < side && y >= 0 && y < side {
					img.SetRGBA(x, y, dot)
				}
			}
		}
	}

	return img
}

func ExportPNG(path string, m *field.Map, sc analysis.Scale, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, RenderImage(m, sc, scale))
}
