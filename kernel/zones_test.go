package kernel_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/ume/comm"
	"github.com/sarchlab/ume/kernel"
	"github.com/sarchlab/ume/mesh"
)

var _ = Describe("zone connectivity kernels", func() {
	var m *mesh.Mesh

	// Same two-zone, three-point, four-corner fixture as the point
	// connectivity kernels: zone 0 = {point 0, point 1}, zone 1 = {point 1,
	// point 2}, sharing point 1 across the zone boundary.
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

	It("maps each zone to its neighboring zones through shared points", func() {
		z2pz := m.Zones.PtZones()
		Expect(z2pz.Row(0)).To(Equal([]int{1}))
		Expect(z2pz.Row(1)).To(Equal([]int{0}))
	})

	It("maps each zone to the ascending-sorted points of its corners", func() {
		z2p := m.Zones.Points()
		Expect(z2p.Row(0)).To(Equal([]int{0, 1}))
		Expect(z2p.Row(1)).To(Equal([]int{1, 2}))
	})
})
