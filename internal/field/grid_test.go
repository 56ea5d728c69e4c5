package field_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fieldmap/internal/field"
)

var _ = Describe("Spec", func() {
	It("spans the extent inclusively", func() {
		ax := field.Spec{Size: 5, Extent: 5}.Axis()

		Expect(ax).To(HaveLen(5))
		Expect(ax[0]).To(Equal(-5.0))
		Expect(ax[4]).To(Equal(5.0))
		Expect(ax[2]).To(BeNumerically("~", 0, 1e-12))
	})

	It("spaces samples evenly", func() {
		sp := field.Spec{Size: 11, Extent: 5}
		Expect(sp.Step()).To(BeNumerically("~", 1.0, 1e-12))

		ax := sp.Axis()
		for i := 1; i < len(ax); i++ {
			Expect(ax[i] - ax[i-1]).To(BeNumerically("~", sp.Step(), 1e-12))
		}
	})

	It("falls back to defaults when degenerate", func() {
		sp := field.Spec{}.Clamped()
		Expect(sp.Size).To(Equal(field.DefaultSize))
		Expect(sp.Extent).To(Equal(field.DefaultExtent))

		sp = field.Spec{Size: 1, Extent: -3}.Clamped()
		Expect(sp.Size).To(Equal(field.DefaultSize))
		Expect(sp.Extent).To(Equal(field.DefaultExtent))
	})

	It("meshes x across columns and y across rows", func() {
		X, Y := field.Spec{Size: 3, Extent: 1}.Meshgrid()

		Expect(X).To(HaveLen(3))
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				Expect(X[i][j]).To(Equal(X[0][j]))
				Expect(Y[i][j]).To(Equal(Y[i][0]))
			}
		}
		Expect(X[0]).To(Equal([]float64{-1, 0, 1}))
		Expect(Y[0][0]).To(Equal(-1.0))
		Expect(Y[2][0]).To(Equal(1.0))
	})
})
