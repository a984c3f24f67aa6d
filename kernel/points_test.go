package kernel_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/ume/comm"
	"github.com/sarchlab/ume/kernel"
	"github.com/sarchlab/ume/mesh"
)

var _ = Describe("point connectivity kernels", func() {
	var m *mesh.Mesh

	// Two zones sharing point 1: zone 0 = {point 0, point 1} via corners
	// 0 and 1, zone 1 = {point 1, point 2} via corners 2 and 3.
	BeforeEach(func() {
		m = mesh.New(mesh.Cartesian, 0, 1, comm.NewDummy(0))

		m.Points.Resize(3, 3)
		m.Points.Mask = []int16{1, 1, 1}

		m.Zones.Resize(2, 2)
		m.Zones.Mask = []int16{1, 1}

		m.Corners.Resize(4, 4)
		m.Corners.Mask = []int16{1, 1, 1, 1}
		*m.Corners.P() = []int{0, 1, 1, 2}
		*m.Corners.Z() = []int{0, 0, 1, 1}

		kernel.Register(m)
	})

	It("maps each point to the ascending-sorted zones it corners", func() {
		p2z := m.Points.ZonesOf()
		Expect(p2z.Row(0)).To(Equal([]int{0}))
		Expect(p2z.Row(1)).To(Equal([]int{0, 1}))
		Expect(p2z.Row(2)).To(Equal([]int{1}))
	})

	It("maps each point to the real corners it belongs to", func() {
		p2c := m.Points.RealCornersOf()
		Expect(p2c.Row(0)).To(Equal([]int{0}))
		Expect(p2c.Row(1)).To(Equal([]int{1, 2}))
		Expect(p2c.Row(2)).To(Equal([]int{3}))
	})
})
