// Package coulomb provides point charges and the electrostatic solver.
//
// A [Charge] is a signed magnitude at a position in the plane. The [Solver]
// evaluates the field and potential of a charge set by superposition:
//
//   - [Solver.FieldAt]: field components at a point
//   - [Solver.PotentialAt]: scalar potential at a point
//   - [Solver.Contribution]: one charge's clamped terms, the building block
//     both of the point evaluators and of the grid pass in package field
//
// Distances are bounded below by [Solver.MinRadius] and squared distances by
// [Solver.MinRadiusSq], applied per charge before its terms accumulate, so
// samples on or near a charge stay finite.
//
// Charge inputs are range-clamped up front:
//
//	charges := coulomb.Normalize(raw)
//	ex, ey := coulomb.NewSolver().FieldAt(charges, 0, 0)
package coulomb
