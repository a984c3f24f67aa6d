package meshio_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/ume/comm"
	"github.com/sarchlab/ume/mesh"
	"github.com/sarchlab/ume/meshio"
	"github.com/sarchlab/ume/vec3"
)

// buildFixture assembles a tiny, fully-wired single-PE mesh: two real points
// plus one ghost point, one edge, one face, one side, one corner, one zone
// (no ghosts outside points). Points also carries ghost addressing, neighbor
// lists and a named subset so the Entity-base framing gets exercised, not
// just the per-family raw maps.
func buildFixture() *mesh.Mesh {
	m := mesh.New(mesh.Cylindrical, 2, 4, comm.NewDummy(2))

	m.Points.Resize(2, 3)
	*m.Points.Coord() = []vec3.Vec3{vec3.New(0, 0, 0), vec3.New(1, 0, 0), vec3.New(2, 0, 0)}
	m.Points.Mask = []int16{1, 1, -1}
	m.Points.CommType = []mesh.CommType{mesh.Internal, mesh.Source, mesh.Ghost}
	m.Points.CpyIdx = []int{5}
	m.Points.SrcPe = []int{1}
	m.Points.SrcIdx = []int{0}
	m.Points.GhostMask = []int16{1}
	m.Points.MyCpys = comm.Neighbors{{PE: 3, Elements: []int{1}}}
	m.Points.MySrcs = comm.Neighbors{{PE: 1, Elements: []int{2}}}
	m.Points.Subsets = []mesh.Subset{{Name: "inflow", Lsize: 2, Elements: []int{0}, Mask: []int16{1}}}

	m.Edges.Resize(1, 1)
	*m.Edges.P1() = []int{0}
	*m.Edges.P2() = []int{1}
	m.Edges.Mask = []int16{1}
	m.Edges.CommType = []mesh.CommType{mesh.Internal}

	m.Faces.Resize(1, 1)
	*m.Faces.Z1() = []int{0}
	*m.Faces.Z2() = []int{-1}
	m.Faces.Mask = []int16{1}
	m.Faces.CommType = []mesh.CommType{mesh.Internal}

	m.Sides.Resize(1, 1)
	*m.Sides.Z() = []int{0}
	*m.Sides.E() = []int{0}
	*m.Sides.P1() = []int{0}
	*m.Sides.P2() = []int{1}
	*m.Sides.F() = []int{0}
	*m.Sides.C1() = []int{0}
	*m.Sides.C2() = []int{0}
	*m.Sides.S2() = []int{0}
	*m.Sides.S3() = []int{0}
	*m.Sides.S4() = []int{0}
	*m.Sides.S5() = []int{0}
	m.Sides.Mask = []int16{1}
	m.Sides.CommType = []mesh.CommType{mesh.Internal}

	m.Corners.Resize(1, 1)
	*m.Corners.P() = []int{0}
	*m.Corners.Z() = []int{0}
	m.Corners.Mask = []int16{1}
	m.Corners.CommType = []mesh.CommType{mesh.Internal}

	m.Zones.Resize(1, 1)
	m.Zones.Mask = []int16{1}
	m.Zones.CommType = []mesh.CommType{mesh.Internal}

	return m
}

func expectEqualEntityBase(a, b *mesh.Entity) {
	Expect(b.Lsize).To(Equal(a.Lsize))
	Expect(b.Mask).To(Equal(a.Mask))
	Expect(b.CommType).To(Equal(a.CommType))
	Expect(b.CpyIdx).To(Equal(a.CpyIdx))
	Expect(b.SrcPe).To(Equal(a.SrcPe))
	Expect(b.SrcIdx).To(Equal(a.SrcIdx))
	Expect(b.GhostMask).To(Equal(a.GhostMask))
	Expect(b.MyCpys.Equal(a.MyCpys)).To(BeTrue())
	Expect(b.MySrcs.Equal(a.MySrcs)).To(BeTrue())
	Expect(len(b.Subsets)).To(Equal(len(a.Subsets)))
	for i := range a.Subsets {
		Expect(b.Subsets[i].Equal(a.Subsets[i])).To(BeTrue())
	}
}

var _ = Describe("meshio", func() {
	It("round-trips a full mesh through Write/Read", func() {
		m := buildFixture()

		var buf bytes.Buffer
		Expect(meshio.Write(&buf, m)).To(Succeed())

		got, err := meshio.Read(&buf, comm.NewDummy(2))
		Expect(err).NotTo(HaveOccurred())

		Expect(got.Mype).To(Equal(m.Mype))
		Expect(got.Numpe).To(Equal(m.Numpe))
		Expect(got.Geo).To(Equal(m.Geo))

		expectEqualEntityBase(m.Points.Entity, got.Points.Entity)
		Expect(*got.Points.Coord()).To(Equal(*m.Points.Coord()))

		expectEqualEntityBase(m.Edges.Entity, got.Edges.Entity)
		Expect(*got.Edges.P1()).To(Equal(*m.Edges.P1()))
		Expect(*got.Edges.P2()).To(Equal(*m.Edges.P2()))

		expectEqualEntityBase(m.Faces.Entity, got.Faces.Entity)
		Expect(*got.Faces.Z1()).To(Equal(*m.Faces.Z1()))
		Expect(*got.Faces.Z2()).To(Equal(*m.Faces.Z2()))

		expectEqualEntityBase(m.Sides.Entity, got.Sides.Entity)
		Expect(*got.Sides.Z()).To(Equal(*m.Sides.Z()))
		Expect(*got.Sides.P1()).To(Equal(*m.Sides.P1()))
		Expect(*got.Sides.P2()).To(Equal(*m.Sides.P2()))

		expectEqualEntityBase(m.Corners.Entity, got.Corners.Entity)
		Expect(*got.Corners.P()).To(Equal(*m.Corners.P()))
		Expect(*got.Corners.Z()).To(Equal(*m.Corners.Z()))

		expectEqualEntityBase(m.Zones.Entity, got.Zones.Entity)

		Expect(got.Iotas).To(BeNil())
	})

	It("round-trips an enabled iotas family", func() {
		m := buildFixture()
		a := m.EnableIotas()
		a.Resize(1, 1)
		*a.Z() = []int{0}
		*a.F() = []int{0}
		*a.P() = []int{0}
		*a.E() = []int{0}
		*a.S() = []int{0}
		a.Mask = []int16{1}
		a.CommType = []mesh.CommType{mesh.Internal}

		var buf bytes.Buffer
		Expect(meshio.Write(&buf, m)).To(Succeed())

		got, err := meshio.Read(&buf, comm.NewDummy(2))
		Expect(err).NotTo(HaveOccurred())

		Expect(got.Iotas).NotTo(BeNil())
		expectEqualEntityBase(m.Iotas.Entity, got.Iotas.Entity)
		Expect(*got.Iotas.Z()).To(Equal(*m.Iotas.Z()))
	})
})
