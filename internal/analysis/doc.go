// Package analysis provides derived quantities for a computed field map.
//
// The package turns raw field planes into render- and report-ready values:
//
//   - [NewScale]: symmetric quantile color scale with contour levels
//   - [Extrema]: potential minimum and maximum with grid locations
//   - [Isolines]: equipotential line segments via marching squares
//   - [Profile]: 1D slice of a map quantity along a row or column
//   - [InteractionEnergy], [DipoleMoment], [NetCharge]: charge-layout stats
//
// # Color Scaling
//
// Potentials diverge near the charges even with the solver clamp, so a
// linear min/max scale washes out the rest of the map. The scale instead
// saturates at a high quantile of |V|:
//
//	sc := analysis.NewScale(m.V, analysis.DefaultQuantile, analysis.DefaultLevels)
//	t := sc.Norm(m.V[i][j]) // 0..1, 0.5 at zero potential
package analysis
