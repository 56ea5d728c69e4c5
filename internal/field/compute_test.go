package field_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fieldmap/internal/coulomb"
	"github.com/san-kum/fieldmap/internal/field"
)

func expectPlanesClose(a, b [][]float64, tol float64) {
	GinkgoHelper()
	Expect(a).To(HaveLen(len(b)))
	for i := range a {
		Expect(a[i]).To(HaveLen(len(b[i])))
		for j := range a[i] {
			Expect(a[i][j]).To(BeNumerically("~", b[i][j], tol))
		}
	}
}

var _ = Describe("Compute", func() {
	var solver *coulomb.Solver

	BeforeEach(func() {
		solver = coulomb.NewSolver()
	})

	Describe("a single unit charge at the origin", func() {
		// 101 samples over [-5, 5] puts the charge exactly on cell (50, 50).
		spec := field.Spec{Size: 101, Extent: 5}
		charges := []coulomb.Charge{{Q: 1}}

		It("matches Coulomb's law away from the clamp", func() {
			m := field.Compute(solver, charges, spec)

			for _, j := range []int{60, 75, 100} {
				x, y := m.X[50][j], m.Y[50][j]
				r := math.Hypot(x, y)
				want := solver.K / r
				Expect(m.V[50][j]).To(BeNumerically("~", want, want*1e-9))
			}
		})

		It("decays monotonically along a ray from the charge", func() {
			m := field.Compute(solver, charges, spec)

			for j := 52; j < spec.Size-1; j++ {
				Expect(m.V[50][j]).To(BeNumerically(">", 0))
				Expect(m.V[50][j]).To(BeNumerically(">", m.V[50][j+1]))
			}
		})

		It("stays finite on top of the charge", func() {
			m := field.Compute(solver, charges, spec)

			Expect(m.IsFinite()).To(BeTrue())
			want := solver.K / solver.MinRadius
			Expect(m.V[50][50]).To(BeNumerically("~", want, want*1e-9))
			Expect(m.Ex[50][50]).To(BeNumerically("~", 0, 0.1))
			Expect(m.Ey[50][50]).To(BeNumerically("~", 0, 0.1))
		})
	})

	Describe("the default dipole", func() {
		spec := field.Spec{Size: 101, Extent: 5}
		charges := coulomb.DefaultCharges(2)

		It("vanishes on the midline", func() {
			m := field.Compute(solver, charges, spec)

			for i := 0; i < spec.Size; i++ {
				Expect(m.V[i][50]).To(BeNumerically("~", 0, 1e-3))
			}
		})

		It("is antisymmetric under mirror in x", func() {
			m := field.Compute(solver, charges, spec)

			for i := 0; i < spec.Size; i += 10 {
				for j := 0; j < spec.Size; j++ {
					Expect(m.V[i][j]).To(BeNumerically("~", -m.V[i][spec.Size-1-j], 1.0))
				}
			}
		})

		It("points from the positive toward the negative pole at the midpoint", func() {
			m := field.Compute(solver, charges, spec)

			Expect(m.Ex[50][50]).To(BeNumerically(">", 0))
			Expect(m.Ey[50][50]).To(BeNumerically("~", 0, 1e-3))
		})
	})

	It("is invariant under charge permutation", func() {
		a := []coulomb.Charge{
			{Q: 2, X: -1, Y: 3},
			{Q: -1.5, X: 2, Y: -2},
			{Q: 0.5, X: 0, Y: 0.5},
		}
		b := []coulomb.Charge{a[2], a[0], a[1]}
		spec := field.Spec{Size: 40, Extent: 5}

		ma := field.Compute(solver, a, spec)
		mb := field.Compute(solver, b, spec)

		expectPlanesClose(ma.V, mb.V, 1e-3)
		expectPlanesClose(ma.Ex, mb.Ex, 1e-3)
		expectPlanesClose(ma.Ey, mb.Ey, 1e-3)
	})

	It("ignores zero charges entirely", func() {
		base := []coulomb.Charge{{Q: 1, X: -2}, {Q: -1, X: 2}}
		withZero := append(append([]coulomb.Charge(nil), base...), coulomb.Charge{Q: 0, X: 1, Y: 1})
		spec := field.Spec{Size: 30, Extent: 5}

		ma := field.Compute(solver, base, spec)
		mb := field.Compute(solver, withZero, spec)

		expectPlanesClose(ma.V, mb.V, 1e-12)
		expectPlanesClose(ma.Ex, mb.Ex, 1e-12)
		expectPlanesClose(ma.Ey, mb.Ey, 1e-12)
	})

	It("keeps a private copy of the charge list", func() {
		charges := coulomb.DefaultCharges(2)
		m := field.Compute(solver, charges, field.Spec{Size: 10, Extent: 5})

		charges[0].Q = -5
		Expect(m.Charges[0].Q).To(Equal(1.0))
	})

	Describe("a coarse 10×10 dipole pass", func() {
		spec := field.Spec{Size: 10, Extent: 5}
		charges := coulomb.DefaultCharges(2)

		It("shows the dipole structure", func() {
			m := field.Compute(solver, charges, spec)

			Expect(m.IsFinite()).To(BeTrue())

			i, j := m.IndexOf(-2, 0)
			Expect(m.V[i][j]).To(BeNumerically(">", 0))

			i, j = m.IndexOf(2, 0)
			Expect(m.V[i][j]).To(BeNumerically("<", 0))

			i, j = m.IndexOf(0, 0)
			Expect(m.Ex[i][j]).To(BeNumerically(">", 0))
		})
	})
})
