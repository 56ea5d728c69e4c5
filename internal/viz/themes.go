package viz

// Theme selects the hues of the diverging potential colormap. The negative
// half of the ramp runs from NegativeHue up to white, the positive half from
// white out to PositiveHue. Grayscale swaps the ramp for a plain luminance
// sweep.
type Theme struct {
	Name        string
	NegativeHue float64
	PositiveHue float64
	Grayscale   bool
}

// Available themes
var (
	ThemeClassic = Theme{Name: "classic", NegativeHue: 225, PositiveHue: 5}
	ThemePlasma  = Theme{Name: "plasma", NegativeHue: 280, PositiveHue: 35}
	ThemeOcean   = Theme{Name: "ocean", NegativeHue: 195, PositiveHue: 50}
	ThemeMono    = Theme{Name: "mono", Grayscale: true}

	// Default theme
	CurrentTheme = ThemeClassic

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemePlasma,
		ThemeOcean,
		ThemeMono,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// SetTheme switches the current theme and rebuilds the colormap.
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
	buildPalette(CurrentTheme)
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
