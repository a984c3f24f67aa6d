package mesh_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/ume/comm"
	"github.com/sarchlab/ume/mesh"
)

var _ = Describe("Entity", func() {
	It("sizes reals and ghosts per Resize", func() {
		m := mesh.New(mesh.Cartesian, 0, 1, comm.NewDummy(0))
		m.Points.Resize(3, 5)
		Expect(m.Points.Lsize).To(Equal(3))
		Expect(m.Points.Size()).To(Equal(5))
		Expect(m.Points.CpyIdx).To(HaveLen(2))
		Expect(m.Points.Mask).To(HaveLen(5))
	})

	It("gathers copies into sources under SUM across two PEs", func() {
		net := comm.NewNetwork(2)

		m0 := mesh.New(mesh.Cartesian, 0, 2, net.Endpoint(0))
		m0.Points.Resize(1, 2)
		m0.Points.Mask = []int16{1, -1}
		m0.Points.MySrcs = nil
		m0.Points.MyCpys = comm.Neighbors{{PE: 1, Elements: []int{1}}}

		m1 := mesh.New(mesh.Cartesian, 1, 2, net.Endpoint(1))
		m1.Points.Resize(1, 1)
		m1.Points.Mask = []int16{1}
		m1.Points.MySrcs = comm.Neighbors{{PE: 0, Elements: []int{0}}}
		m1.Points.MyCpys = nil

		field0 := []float64{0, 10} // index 1 is m0's copy of m1's point
		field1 := []float64{100}  // m1's real source value

		done := make(chan struct{})
		go func() {
			defer close(done)
			mesh.Gather(m1.Points.Entity, comm.OpSum, field1)
		}()
		mesh.Gather(m0.Points.Entity, comm.OpSum, field0)
		<-done

		Expect(field1[0]).To(Equal(110.0))
	})

	It("scatters a source value out to its copy", func() {
		net := comm.NewNetwork(2)

		m0 := mesh.New(mesh.Cartesian, 0, 2, net.Endpoint(0))
		m0.Points.Resize(1, 2)
		m0.Points.Mask = []int16{1, -1}
		m0.Points.MyCpys = comm.Neighbors{{PE: 1, Elements: []int{1}}}

		m1 := mesh.New(mesh.Cartesian, 1, 2, net.Endpoint(1))
		m1.Points.Resize(1, 1)
		m1.Points.Mask = []int16{1}
		m1.Points.MySrcs = comm.Neighbors{{PE: 0, Elements: []int{0}}}

		field0 := []float64{0, -1} // index 1 is stale, overwritten by the scatter
		field1 := []float64{42}    // m1's real source value

		done := make(chan struct{})
		go func() {
			defer close(done)
			mesh.Scatter(m1.Points.Entity, field1)
		}()
		mesh.Scatter(m0.Points.Entity, field0)
		<-done

		Expect(field0[1]).To(Equal(42.0))
	})

	It("gathscats a copy and its source to an identical doubled value", func() {
		net := comm.NewNetwork(2)

		m0 := mesh.New(mesh.Cartesian, 0, 2, net.Endpoint(0))
		m0.Points.Resize(1, 2)
		m0.Points.Mask = []int16{1, -1}
		m0.Points.MyCpys = comm.Neighbors{{PE: 1, Elements: []int{1}}}

		m1 := mesh.New(mesh.Cartesian, 1, 2, net.Endpoint(1))
		m1.Points.Resize(1, 1)
		m1.Points.Mask = []int16{1}
		m1.Points.MySrcs = comm.Neighbors{{PE: 0, Elements: []int{0}}}

		field0 := []float64{0, 5} // index 1 is m0's copy of m1's point
		field1 := []float64{5}    // m1's real source value

		done := make(chan struct{})
		go func() {
			defer close(done)
			mesh.GathScat(m1.Points.Entity, comm.OpSum, field1)
		}()
		mesh.GathScat(m0.Points.Entity, comm.OpSum, field0)
		<-done

		Expect(field1[0]).To(Equal(10.0))
		Expect(field0[1]).To(Equal(10.0))
	})
})
