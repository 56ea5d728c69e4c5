package config

import "sort"

var Presets = map[string]*Config{
	"dipole": {
		Charges: []ChargeConfig{
			{Q: 1, X: -2, Y: 0},
			{Q: -1, X: 2, Y: 0},
		},
	},
	"monopole": {
		Charges: []ChargeConfig{
			{Q: 1, X: 0, Y: 0},
		},
	},
	"twin": {
		Charges: []ChargeConfig{
			{Q: 1, X: -2, Y: 0},
			{Q: 1, X: 2, Y: 0},
		},
	},
	"quadrupole": {
		Charges: []ChargeConfig{
			{Q: 1, X: -2, Y: 2},
			{Q: -1, X: 2, Y: 2},
			{Q: 1, X: 2, Y: -2},
			{Q: -1, X: -2, Y: -2},
		},
	},
	"trap": {
		Charges: []ChargeConfig{
			{Q: -2, X: 0, Y: 0},
			{Q: 1, X: 3, Y: 0},
			{Q: 1, X: -3, Y: 0},
			{Q: 1, X: 0, Y: 3},
			{Q: 1, X: 0, Y: -3},
		},
	},
}

// GetPreset looks up a named charge arrangement and fills in default grid
// and render settings. It returns nil for unknown names.
func GetPreset(name string) *Config {
	preset, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Charges = append([]ChargeConfig(nil), preset.Charges...)
	if preset.Grid.Size != 0 {
		cfg.Grid.Size = preset.Grid.Size
	}
	if preset.Grid.Extent != 0 {
		cfg.Grid.Extent = preset.Grid.Extent
	}
	if preset.Render.Mode != "" {
		cfg.Render.Mode = preset.Render.Mode
	}
	if preset.Render.Theme != "" {
		cfg.Render.Theme = preset.Render.Theme
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
