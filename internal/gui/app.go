package gui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/san-kum/fieldmap/internal/analysis"
	"github.com/san-kum/fieldmap/internal/config"
	"github.com/san-kum/fieldmap/internal/coulomb"
	"github.com/san-kum/fieldmap/internal/export"
	"github.com/san-kum/fieldmap/internal/field"
	"github.com/san-kum/fieldmap/internal/viz"
)

const (
	screenWidth  = 900
	screenHeight = 900

	markerRadius  = 9.0
	arrowGridStep = 45
	arrowLen      = 16.0
)

// App is the windowed front end. The charge list is editable with the
// mouse; everything derived from it (map, scale, tracer, background
// raster) is rebuilt lazily when dirty is set.
type App struct {
	solver  *coulomb.Solver
	charges []coulomb.Charge
	initial []coulomb.Charge
	spec    field.Spec

	fmap  *field.Map
	scale analysis.Scale
	lines [][]viz.Point

	bg    *ebiten.Image
	dirty bool

	showLines  bool
	showArrows bool

	lastLeft  bool
	lastRight bool

	statusMsg string
}

func NewApp(cfg *config.Config) *App {
	charges := cfg.ToCharges()

	a := &App{
		solver:     cfg.NewSolver(),
		charges:    charges,
		initial:    append([]coulomb.Charge(nil), charges...),
		spec:       cfg.GridSpec(),
		dirty:      true,
		showLines:  true,
		showArrows: false,
	}
	viz.SetTheme(cfg.Render.Theme)
	return a
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config) error {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("fieldmap")

	return ebiten.RunGame(NewApp(cfg))
}

func (a *App) Update() error {
	leftNow := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	rightNow := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)

	if leftNow && !a.lastLeft {
		a.addChargeFromMouse(+1)
	}
	if rightNow && !a.lastRight {
		a.addChargeFromMouse(-1)
	}

	a.lastLeft = leftNow
	a.lastRight = rightNow

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		a.charges = append([]coulomb.Charge(nil), a.initial...)
		a.dirty = true
		a.statusMsg = ""
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		a.showLines = !a.showLines
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		a.showArrows = !a.showArrows
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		a.saveSnapshot()
	case inpututil.IsKeyJustPressed(ebiten.KeyQ),
		inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	}

	if a.dirty {
		a.recompute()
	}

	return nil
}

func (a *App) addChargeFromMouse(q float64) {
	if len(a.charges) >= coulomb.MaxCharges {
		a.statusMsg = fmt.Sprintf("at most %d charges", coulomb.MaxCharges)
		return
	}

	mx, my := ebiten.CursorPosition()
	wx, wy := a.screenToPlane(mx, my)

	a.charges = append(a.charges, coulomb.Charge{Q: q, X: wx, Y: wy}.Clamped())
	a.dirty = true
	a.statusMsg = ""
}

func (a *App) recompute() {
	a.fmap = field.Compute(a.solver, a.charges, a.spec)
	a.scale = analysis.NewScale(a.fmap.V, analysis.DefaultQuantile, analysis.DefaultLevels)
	a.lines = viz.NewStreamTracer(a.solver, a.charges, a.spec.Extent).Lines()
	a.renderBackground()
	a.dirty = false
}

func (a *App) saveSnapshot() {
	if a.fmap == nil {
		return
	}

	name := fmt.Sprintf("field_%s.svg", time.Now().Format("20060102_150405"))
	if err := export.ExportSVG(name, a.solver, a.fmap, a.scale); err != nil {
		a.statusMsg = "snapshot failed: " + err.Error()
		return
	}
	a.statusMsg = "saved " + name
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
