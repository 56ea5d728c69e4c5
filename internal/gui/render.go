package gui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/san-kum/fieldmap/internal/analysis"
	"github.com/san-kum/fieldmap/internal/viz"
)

func (a *App) planeToScreen(x, y float64) (float32, float32) {
	ext := a.spec.Extent
	px := (x + ext) / (2 * ext) * screenWidth
	py := (ext - y) / (2 * ext) * screenHeight
	return float32(px), float32(py)
}

func (a *App) screenToPlane(px, py int) (float64, float64) {
	ext := a.spec.Extent
	x := float64(px)/screenWidth*2*ext - ext
	y := ext - float64(py)/screenHeight*2*ext
	return x, y
}

// renderBackground rasterizes the potential per pixel, so gradients stay
// smooth regardless of the grid resolution.
func (a *App) renderBackground() {
	img := ebiten.NewImage(screenWidth, screenHeight)

	for py := 0; py < screenHeight; py++ {
		for px := 0; px < screenWidth; px++ {
			x, y := a.screenToPlane(px, py)
			v := a.solver.PotentialAt(a.charges, x, y)
			img.Set(px, py, viz.PotentialColor(a.scale.Norm(v)))
		}
	}

	a.bg = img
}

func (a *App) Draw(screen *ebiten.Image) {
	if a.bg != nil {
		screen.DrawImage(a.bg, nil)
	} else {
		screen.Fill(color.RGBA{A: 255})
	}

	if a.showLines {
		a.drawStreamlines(screen)
	}
	if a.showArrows {
		a.drawArrows(screen)
	}
	a.drawCharges(screen)
	a.drawHUD(screen)
}

func (a *App) drawStreamlines(screen *ebiten.Image) {
	col := color.RGBA{R: 255, G: 255, B: 255, A: 180}

	for _, line := range a.lines {
		for i := 0; i < len(line)-1; i++ {
			x1, y1 := a.planeToScreen(line[i].X, line[i].Y)
			x2, y2 := a.planeToScreen(line[i+1].X, line[i+1].Y)
			vector.StrokeLine(screen, x1, y1, x2, y2, 1, col, false)
		}
	}
}

func (a *App) drawArrows(screen *ebiten.Image) {
	col := color.RGBA{R: 240, G: 240, B: 240, A: 200}

	for py := arrowGridStep / 2; py < screenHeight; py += arrowGridStep {
		for px := arrowGridStep / 2; px < screenWidth; px += arrowGridStep {
			x, y := a.screenToPlane(px, py)
			ex, ey := a.solver.FieldAt(a.charges, x, y)
			e := math.Hypot(ex, ey)
			if e < 1e-6 {
				continue
			}

			// Screen y grows downward, so the y component flips.
			dx := ex / e * arrowLen
			dy := -ey / e * arrowLen

			x1, y1 := float32(px), float32(py)
			x2 := float32(float64(px) + dx)
			y2 := float32(float64(py) + dy)

			vector.StrokeLine(screen, x1, y1, x2, y2, 1, col, false)

			angle := math.Atan2(float64(y2-y1), float64(x2-x1))
			const headLen = 6.0
			hx1 := x2 - float32(headLen*math.Cos(angle+0.6))
			hy1 := y2 - float32(headLen*math.Sin(angle+0.6))
			hx2 := x2 - float32(headLen*math.Cos(angle-0.6))
			hy2 := y2 - float32(headLen*math.Sin(angle-0.6))

			vector.StrokeLine(screen, x2, y2, hx1, hy1, 1, col, false)
			vector.StrokeLine(screen, x2, y2, hx2, hy2, 1, col, false)
		}
	}
}

func (a *App) drawCharges(screen *ebiten.Image) {
	face := basicfont.Face7x13

	for _, c := range a.charges {
		px, py := a.planeToScreen(c.X, c.Y)
		vector.DrawFilledCircle(screen, px, py, markerRadius, viz.ChargeColor(c.Sign()), false)
		text.Draw(screen, fmt.Sprintf("%+g", c.Q), face, int(px)+12, int(py)+4, color.White)
	}
}

func (a *App) drawHUD(screen *ebiten.Image) {
	face := basicfont.Face7x13

	text.Draw(screen, "left: +1 charge  right: -1 charge  r: reset  l: lines  a: arrows  s: svg  q: quit", face, 10, 20, color.White)

	msg := fmt.Sprintf("charges: %d  net q: %+.1f", len(a.charges), analysis.NetCharge(a.charges))
	if a.statusMsg != "" {
		msg += "  " + a.statusMsg
	}
	text.Draw(screen, msg, face, 10, 40, color.White)
}
