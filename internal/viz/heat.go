package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/fieldmap/internal/analysis"
	"github.com/san-kum/fieldmap/internal/field"
)

var markerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff"))

// HeatView renders the potential plane as a block of background-colored
// terminal cells, top row at +y. Charge positions are overlaid as +, - and
// o markers, and Arrows sprinkles field-direction glyphs on a sparse
// lattice.
type HeatView struct {
	Map    *field.Map
	Scale  analysis.Scale
	Width  int
	Height int
	Arrows bool
}

func (hv HeatView) Render() string {
	m := hv.Map
	if m == nil || len(m.V) == 0 {
		return ""
	}
	w, h := hv.Width, hv.Height
	if w < 2 {
		w = 64
	}
	if h < 2 {
		h = 32
	}
	ext := m.Extent

	marks := make(map[[2]int]int, len(m.Charges))
	for _, c := range m.Charges {
		col := cellIndex(c.X, ext, w)
		row := cellIndex(-c.Y, ext, h)
		marks[[2]int{row, col}] = c.Sign()
	}

	var b strings.Builder
	for row := 0; row < h; row++ {
		y := ext - (float64(row)+0.5)/float64(h)*2*ext
		for col := 0; col < w; col++ {
			x := -ext + (float64(col)+0.5)/float64(w)*2*ext
			i, j := m.IndexOf(x, y)
			bg := lipgloss.Color(PotentialHex(hv.Scale.Norm(m.V[i][j])))

			ch := " "
			if sign, ok := marks[[2]int{row, col}]; ok {
				ch = markerGlyph(sign)
			} else if hv.Arrows && row%2 == 1 && col%5 == 2 {
				ch = arrowGlyph(m.Ex[i][j], m.Ey[i][j])
			}
			if ch == " " {
				b.WriteString(lipgloss.NewStyle().Background(bg).Render(ch))
			} else {
				b.WriteString(markerStyle.Background(bg).Render(ch))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// cellIndex maps a world coordinate in [-ext, ext] to a cell index in
// [0, n-1].
func cellIndex(v, ext float64, n int) int {
	idx := int((v + ext) / (2 * ext) * float64(n))
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	return idx
}

func markerGlyph(sign int) string {
	return string(markerRune(sign))
}

func markerRune(sign int) rune {
	switch {
	case sign > 0:
		return '+'
	case sign < 0:
		return '-'
	}
	return 'o'
}

var arrowGlyphs = []rune("→↗↑↖←↙↓↘")

// arrowGlyph picks the arrow nearest the field direction. y points up in
// world coordinates.
func arrowGlyph(ex, ey float64) string {
	if ex == 0 && ey == 0 {
		return "·"
	}
	idx := int(math.Round(math.Atan2(ey, ex) / (math.Pi / 4)))
	return string(arrowGlyphs[(idx+8)%8])
}
