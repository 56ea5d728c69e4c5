package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/fieldmap/internal/analysis"
	"github.com/san-kum/fieldmap/internal/coulomb"
	"github.com/san-kum/fieldmap/internal/field"
)

const (
	DefaultMode  = "heat"
	DefaultTheme = "classic"
)

type Config struct {
	Charges []ChargeConfig `yaml:"charges"`
	Grid    GridConfig     `yaml:"grid"`
	Solver  SolverConfig   `yaml:"solver"`
	Render  RenderConfig   `yaml:"render"`
}

type ChargeConfig struct {
	Q float64 `yaml:"q"`
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type GridConfig struct {
	Size   int     `yaml:"size"`
	Extent float64 `yaml:"extent"`
}

// SolverConfig holds the clamp radii applied around each charge. The two
// floors are independent, matching the solver.
type SolverConfig struct {
	MinRadius   float64 `yaml:"min_radius"`
	MinRadiusSq float64 `yaml:"min_radius_sq"`
}

type RenderConfig struct {
	Mode     string  `yaml:"mode"`
	Theme    string  `yaml:"theme"`
	Quantile float64 `yaml:"quantile"`
	Levels   int     `yaml:"levels"`
}

func DefaultConfig() *Config {
	return &Config{
		Charges: FromCharges(coulomb.DefaultCharges(coulomb.DefaultCount)),
		Grid: GridConfig{
			Size:   field.DefaultSize,
			Extent: field.DefaultExtent,
		},
		Solver: SolverConfig{
			MinRadius:   coulomb.DefaultMinRadius,
			MinRadiusSq: coulomb.DefaultMinRadiusSq,
		},
		Render: RenderConfig{
			Mode:     DefaultMode,
			Theme:    DefaultTheme,
			Quantile: analysis.DefaultQuantile,
			Levels:   analysis.DefaultLevels,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ToCharges converts the configured charges into solver charges, clamping
// out-of-range values and falling back to the default dipole when empty.
func (c *Config) ToCharges() []coulomb.Charge {
	charges := make([]coulomb.Charge, len(c.Charges))
	for i, cc := range c.Charges {
		charges[i] = coulomb.Charge{Q: cc.Q, X: cc.X, Y: cc.Y}
	}
	return coulomb.Normalize(charges)
}

func FromCharges(charges []coulomb.Charge) []ChargeConfig {
	out := make([]ChargeConfig, len(charges))
	for i, c := range charges {
		out[i] = ChargeConfig{Q: c.Q, X: c.X, Y: c.Y}
	}
	return out
}

func (c *Config) GridSpec() field.Spec {
	return field.Spec{Size: c.Grid.Size, Extent: c.Grid.Extent}.Clamped()
}

// NewSolver builds a solver with the configured clamp radii. Non-positive
// radii fall back to the defaults.
func (c *Config) NewSolver() *coulomb.Solver {
	s := coulomb.NewSolver()
	if c.Solver.MinRadius > 0 {
		s.MinRadius = c.Solver.MinRadius
	}
	if c.Solver.MinRadiusSq > 0 {
		s.MinRadiusSq = c.Solver.MinRadiusSq
	}
	return s
}
