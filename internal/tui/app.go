package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/fieldmap/internal/analysis"
	"github.com/san-kum/fieldmap/internal/config"
	"github.com/san-kum/fieldmap/internal/coulomb"
	"github.com/san-kum/fieldmap/internal/export"
	"github.com/san-kum/fieldmap/internal/field"
	"github.com/san-kum/fieldmap/internal/viz"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

var presetInfo = map[string]string{
	"dipole":     "equal and opposite pair",
	"monopole":   "single point charge",
	"quadrupole": "alternating square",
	"twin":       "like charges side by side",
	"trap":       "negative core, positive ring",
}

type state int

const (
	stateMenu state = iota
	stateEdit
	stateField
)

var modes = []string{"heat", "stream", "contour", "surface"}

type model struct {
	state    state
	cursor   int
	presets  []string
	selected string

	params      map[string]float64
	paramNames  []string
	paramCursor int
	editing     bool
	editBuf     string

	solver    *coulomb.Solver
	charges   []coulomb.Charge
	spec      field.Spec
	fmap      *field.Map
	scale     analysis.Scale
	mode      int
	camera    *viz.Camera
	chargeSel int
	arrows    bool
	showHelp  bool
	statusMsg string

	width  int
	height int
}

func NewApp() *model {
	m := &model{
		state:   stateMenu,
		presets: config.ListPresets(),
		camera:  viz.NewCamera(),
		width:   80,
		height:  24,
	}
	m.applyConfig(config.DefaultConfig())
	return m
}

func (m *model) applyConfig(cfg *config.Config) {
	m.solver = cfg.NewSolver()
	charges := cfg.ToCharges()
	sp := cfg.GridSpec()
	m.params = map[string]float64{
		"charges": float64(len(charges)),
		"grid":    float64(sp.Size),
		"extent":  sp.Extent,
	}
	for i, c := range charges {
		m.params[fmt.Sprintf("q%d", i+1)] = c.Q
		m.params[fmt.Sprintf("x%d", i+1)] = c.X
		m.params[fmt.Sprintf("y%d", i+1)] = c.Y
	}
	m.setParamNames()
	m.paramCursor = 0
	for i, name := range modes {
		if name == cfg.Render.Mode {
			m.mode = i
		}
	}
	viz.SetTheme(cfg.Render.Theme)
}

// setParamNames rebuilds the editable parameter list for the current charge
// count. Charges added by raising the count start as +1 at the origin.
func (m *model) setParamNames() {
	n := coulomb.ClampCount(int(m.params["charges"]))
	m.params["charges"] = float64(n)
	names := []string{"charges"}
	for i := 1; i <= n; i++ {
		names = append(names, fmt.Sprintf("q%d", i), fmt.Sprintf("x%d", i), fmt.Sprintf("y%d", i))
	}
	names = append(names, "grid", "extent")
	m.paramNames = names

	for i := 1; i <= n; i++ {
		if _, ok := m.params[fmt.Sprintf("q%d", i)]; !ok {
			m.params[fmt.Sprintf("q%d", i)] = 1.0
		}
		for _, axis := range []string{"x", "y"} {
			if _, ok := m.params[fmt.Sprintf("%s%d", axis, i)]; !ok {
				m.params[fmt.Sprintf("%s%d", axis, i)] = 0.0
			}
		}
	}
	if m.paramCursor >= len(m.paramNames) {
		m.paramCursor = len(m.paramNames) - 1
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.statusMsg = ""
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateEdit:
		return m.editKey(msg)
	case stateField:
		return m.fieldKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = m.presets[m.cursor]
		if cfg := config.GetPreset(m.selected); cfg != nil {
			m.applyConfig(cfg)
		}
		m.state = stateEdit
	}
	return m, nil
}

func (m model) editKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			fmt.Sscanf(m.editBuf, "%f", &val)
			m.commitParam(m.paramNames[m.paramCursor], val)
			m.editing = false
			m.editBuf = ""
		case "escape":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "escape":
		m.state = stateMenu
	case "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		m.editing = true
		m.editBuf = fmt.Sprintf("%.2f", m.params[m.paramNames[m.paramCursor]])
	case "left", "h":
		m.nudgeParam(-1)
	case "right", "l":
		m.nudgeParam(1)
	case "s":
		m.start()
		m.state = stateField
		return m, tea.ClearScreen
	}
	return m, nil
}

func (m model) fieldKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, tea.ClearScreen
	}

	surface := modes[m.mode] == "surface"
	switch msg.String() {
	case "q", "escape":
		m.state = stateMenu
		return m, tea.ClearScreen
	case "ctrl+c":
		return m, tea.Quit
	case "e", "c":
		m.state = stateEdit
		return m, tea.ClearScreen
	case "m":
		m.mode = (m.mode + 1) % len(modes)
		return m, tea.ClearScreen
	case "t":
		names := viz.ThemeNames()
		for i, name := range names {
			if name == viz.CurrentTheme.Name {
				viz.SetTheme(names[(i+1)%len(names)])
				break
			}
		}
	case "tab":
		if len(m.charges) > 0 {
			m.chargeSel = (m.chargeSel + 1) % len(m.charges)
		}
	case "a":
		m.arrows = !m.arrows
	case "?":
		m.showHelp = true
	case "s":
		m.saveSnapshot()
	case "left", "h":
		if surface {
			m.camera.RotateY(-0.1)
		} else {
			m.moveCharge(-m.spec.Step(), 0)
		}
	case "right", "l":
		if surface {
			m.camera.RotateY(0.1)
		} else {
			m.moveCharge(m.spec.Step(), 0)
		}
	case "up", "k":
		if surface {
			m.camera.RotateX(0.1)
		} else {
			m.moveCharge(0, m.spec.Step())
		}
	case "down", "j":
		if surface {
			m.camera.RotateX(-0.1)
		} else {
			m.moveCharge(0, -m.spec.Step())
		}
	case "+", "=":
		if surface {
			m.camera.ZoomIn()
		} else {
			m.adjustCharge(0.5)
		}
	case "-", "_":
		if surface {
			m.camera.ZoomOut()
		} else {
			m.adjustCharge(-0.5)
		}
	}
	return m, nil
}

// nudgeParam applies the arrow-key increment: whole steps for counts, a
// tenth otherwise.
func (m *model) nudgeParam(dir float64) {
	name := m.paramNames[m.paramCursor]
	delta := 0.1
	if name == "charges" || name == "grid" {
		delta = 1
	}
	m.commitParam(name, m.params[name]+dir*delta)
}

func (m *model) commitParam(name string, val float64) {
	switch {
	case name == "charges":
		m.params[name] = float64(coulomb.ClampCount(int(val)))
		m.setParamNames()
	case name == "grid":
		if val < 2 {
			val = 2
		}
		m.params[name] = float64(int(val))
	case name == "extent":
		if val <= 0 {
			val = field.DefaultExtent
		}
		m.params[name] = val
	case strings.HasPrefix(name, "q"):
		m.params[name] = coulomb.ClampQ(val)
	default:
		m.params[name] = coulomb.ClampXY(val)
	}
}

func (m *model) chargesFromParams() []coulomb.Charge {
	n := coulomb.ClampCount(int(m.params["charges"]))
	charges := make([]coulomb.Charge, 0, n)
	for i := 1; i <= n; i++ {
		charges = append(charges, coulomb.Charge{
			Q: m.params[fmt.Sprintf("q%d", i)],
			X: m.params[fmt.Sprintf("x%d", i)],
			Y: m.params[fmt.Sprintf("y%d", i)],
		})
	}
	return coulomb.Normalize(charges)
}

func (m *model) start() {
	m.charges = m.chargesFromParams()
	m.spec = field.Spec{Size: int(m.params["grid"]), Extent: m.params["extent"]}.Clamped()
	if m.chargeSel >= len(m.charges) {
		m.chargeSel = 0
	}
	m.recompute()
}

func (m *model) recompute() {
	m.fmap = field.Compute(m.solver, m.charges, m.spec)
	m.scale = analysis.NewScale(m.fmap.V, analysis.DefaultQuantile, analysis.DefaultLevels)
}

func (m *model) moveCharge(dx, dy float64) {
	if len(m.charges) == 0 {
		return
	}
	c := &m.charges[m.chargeSel]
	c.X = coulomb.ClampXY(c.X + dx)
	c.Y = coulomb.ClampXY(c.Y + dy)
	m.syncParams()
	m.recompute()
}

func (m *model) adjustCharge(dq float64) {
	if len(m.charges) == 0 {
		return
	}
	c := &m.charges[m.chargeSel]
	c.Q = coulomb.ClampQ(c.Q + dq)
	m.syncParams()
	m.recompute()
}

func (m *model) syncParams() {
	for i, c := range m.charges {
		m.params[fmt.Sprintf("q%d", i+1)] = c.Q
		m.params[fmt.Sprintf("x%d", i+1)] = c.X
		m.params[fmt.Sprintf("y%d", i+1)] = c.Y
	}
}

func (m *model) saveSnapshot() {
	name := fmt.Sprintf("field_%s.svg", time.Now().Format("20060102_150405"))
	if err := export.ExportSVG(name, m.solver, m.fmap, m.scale); err != nil {
		m.statusMsg = "snapshot failed: " + err.Error()
		return
	}
	m.statusMsg = "saved " + name
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateEdit:
		return m.viewEdit()
	case stateField:
		return m.viewField()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("          " + cyan.Render("f i e l d m a p") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, name := range m.presets {
		desc := presetInfo[name]
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-14s", name)) + dim.Render(desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-14s", name)) + dimmer.Render(desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter configure   q quit") + "\n")

	return b.String()
}

func (m model) viewEdit() string {
	var b strings.Builder

	title := m.selected
	if title == "" {
		title = "custom"
	}
	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(title) + "  " + dim.Render(presetInfo[m.selected]) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 30)) + "\n\n")

	for i, name := range m.paramNames {
		val := fmt.Sprintf("%8.3f", m.params[name])
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%8s", m.editBuf+"▋")
		}
		if i == m.paramCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-10s", name)) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-10s", name)) + dim.Render(val) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  ←→ adjust  enter edit  s show field  esc back") + "\n")

	return b.String()
}

func (m model) viewField() string {
	if m.showHelp {
		return m.viewHelp()
	}

	vw := m.width - 6
	vh := m.height - 13
	if vw < 40 {
		vw = 40
	}
	if vh < 12 {
		vh = 12
	}

	var view string
	switch modes[m.mode] {
	case "heat":
		view = viz.HeatView{Map: m.fmap, Scale: m.scale, Width: vw, Height: vh, Arrows: m.arrows}.Render()
	case "stream":
		tracer := viz.NewStreamTracer(m.solver, m.charges, m.spec.Extent)
		view = viz.StreamView{Map: m.fmap, Tracer: tracer, Width: vw, Height: vh}.Render()
	case "contour":
		view = viz.ContourView{Map: m.fmap, Levels: m.scale.Levels, Width: vw, Height: vh}.Render()
	case "surface":
		view = viz.SurfaceView{Map: m.fmap, Scale: m.scale, Camera: m.camera, Stride: surfaceStride(m.spec.Size), Width: vw, Height: vh}.Render()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("\n   %s %s  %s\n",
		green.Render("●"), cyan.Render("fieldmap"), white.Render(modes[m.mode])))

	net := analysis.NetCharge(m.charges)
	px, py := analysis.DipoleMoment(m.charges)
	line := fmt.Sprintf("   %s%s   %s%s",
		dim.Render("Σq "), white.Render(fmt.Sprintf("%+.1f C", net)),
		dim.Render("|p| "), white.Render(fmt.Sprintf("%.1f C·m", math.Hypot(px, py))))
	if len(m.charges) > 1 {
		u := analysis.InteractionEnergy(m.solver, m.charges)
		line += fmt.Sprintf("   %s%s", dim.Render("U "), white.Render(fmt.Sprintf("%.3g J", u)))
	}
	b.WriteString(line + "\n")

	lo, hi := analysis.Extrema(m.fmap)
	b.WriteString(fmt.Sprintf("   %s%s   %s%s\n\n",
		dim.Render("Vmin "), white.Render(fmt.Sprintf("%.3g V (%.1f, %.1f)", lo.Value, lo.X, lo.Y)),
		dim.Render("Vmax "), white.Render(fmt.Sprintf("%.3g V (%.1f, %.1f)", hi.Value, hi.X, hi.Y))))

	for _, row := range strings.Split(strings.TrimRight(view, "\n"), "\n") {
		b.WriteString("   " + row + "\n")
	}

	b.WriteString("\n   " + viz.Legend(m.scale.Limit, 32) + "\n")

	if prof, err := analysis.Profile(m.fmap, analysis.QuantityV, analysis.AxisRow, 0); err == nil {
		b.WriteString(fmt.Sprintf("   %s %s\n", dim.Render("V(x,0)"), viz.SparklineChart(prof.Values, 32)))
	}

	if len(m.charges) > 0 {
		c := m.charges[m.chargeSel]
		b.WriteString(fmt.Sprintf("   %s %s %s\n",
			dim.Render(fmt.Sprintf("charge %d/%d", m.chargeSel+1, len(m.charges))),
			yellow.Render(c.Label()),
			dim.Render(fmt.Sprintf("(%.1f, %.1f)", c.X, c.Y))))
	}

	if m.statusMsg != "" {
		b.WriteString("   " + green.Render(m.statusMsg) + "\n")
	}

	if modes[m.mode] == "surface" {
		b.WriteString("\n" + dim.Render("   hjkl orbit  ± zoom  m mode  t theme  ? help  q menu") + "\n")
	} else {
		b.WriteString("\n" + dim.Render("   hjkl move  tab charge  ± q  m mode  t theme  ? help  q menu") + "\n")
	}

	return b.String()
}

func (m model) viewHelp() string {
	var b strings.Builder
	b.WriteString("\n      " + cyan.Render("keys") + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 30)) + "\n\n")
	rows := [][2]string{
		{"m", "cycle heat / stream / contour / surface"},
		{"hjkl ↑↓←→", "move selected charge (orbit in surface)"},
		{"tab", "select next charge"},
		{"+ -", "adjust charge (zoom in surface)"},
		{"a", "toggle field arrows on the heat map"},
		{"t", "cycle themes"},
		{"s", "save an SVG snapshot"},
		{"e", "back to the editor"},
		{"q", "back to the menu"},
	}
	for _, r := range rows {
		b.WriteString("      " + white.Render(fmt.Sprintf("%-12s", r[0])) + dim.Render(r[1]) + "\n")
	}
	b.WriteString("\n" + dim.Render("      any key to close") + "\n")
	return b.String()
}

func surfaceStride(size int) int {
	stride := size / 24
	if stride < 1 {
		stride = 1
	}
	return stride
}

// Run starts the interactive terminal application. A nil cfg starts at the
// preset menu, otherwise the configuration is applied and the field is shown
// immediately.
func Run(cfg *config.Config) error {
	app := NewApp()
	if cfg != nil {
		app.applyConfig(cfg)
		app.start()
		app.state = stateField
	}
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
