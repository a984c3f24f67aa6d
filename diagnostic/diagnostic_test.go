package diagnostic_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/ume/comm"
	"github.com/sarchlab/ume/diagnostic"
	"github.com/sarchlab/ume/mesh"
)

var _ = Describe("SummaryTable", func() {
	It("names every mandatory family and reports its real/ghost split", func() {
		m := mesh.New(mesh.Cylindrical, 1, 4, comm.NewDummy(1))
		m.Points.Resize(2, 3)
		m.Points.CommType = []mesh.CommType{mesh.Internal, mesh.Internal, mesh.Ghost}
		m.Edges.Resize(1, 1)
		m.Faces.Resize(1, 1)
		m.Sides.Resize(1, 1)
		m.Corners.Resize(1, 1)
		m.Zones.Resize(1, 1)

		out := diagnostic.SummaryTable(m)

		Expect(out).To(ContainSubstring("Cylindrical"))
		Expect(out).To(ContainSubstring("rank 1 of 4"))
		Expect(out).To(ContainSubstring("Points"))
		Expect(out).To(ContainSubstring("Edges"))
		Expect(out).To(ContainSubstring("Faces"))
		Expect(out).To(ContainSubstring("Sides"))
		Expect(out).To(ContainSubstring("Corners"))
		Expect(out).To(ContainSubstring("Zones"))
		Expect(out).NotTo(ContainSubstring("Iotas"))
	})

	It("includes the iotas row once enabled", func() {
		m := mesh.New(mesh.Cartesian, 0, 1, comm.NewDummy(0))
		m.Points.Resize(1, 1)
		m.Edges.Resize(1, 1)
		m.Faces.Resize(1, 1)
		m.Sides.Resize(1, 1)
		m.Corners.Resize(1, 1)
		m.Zones.Resize(1, 1)
		m.EnableIotas().Resize(1, 1)

		out := diagnostic.SummaryTable(m)
		Expect(out).To(ContainSubstring("Iotas"))
	})
})
