package mesh_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	gomock "github.com/golang/mock/gomock"

	"github.com/sarchlab/ume/comm"
	"github.com/sarchlab/ume/mesh"
)

// These tests pin exchange()'s type-switch dispatch (mesh/entity.go) using a
// mocked Transport, so the routing logic is checked without standing up a
// real Loopback network the way entity_test.go's Gather/Scatter tests do.
var _ = Describe("entity exchange dispatch", func() {
	var ctrl *gomock.Controller
	var transport *MockTransport

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		transport = NewMockTransport(ctrl)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("routes a []float64 field through ExchangeDbl exactly once per phase", func() {
		m := mesh.New(mesh.Cartesian, 0, 2, transport)
		m.Points.Resize(1, 1)
		m.Points.Mask = []int16{1}

		transport.EXPECT().ExchangeDbl(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		field := []float64{1}
		mesh.Gather(m.Points.Entity, comm.OpSum, field)
	})

	It("routes a []int field through ExchangeInt", func() {
		m := mesh.New(mesh.Cartesian, 0, 2, transport)
		m.Points.Resize(1, 1)
		m.Points.Mask = []int16{1}

		transport.EXPECT().ExchangeInt(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		field := []int{7}
		mesh.Scatter(m.Points.Entity, field)
	})

	It("aborts the transport when an exchange reports an error", func() {
		m := mesh.New(mesh.Cartesian, 0, 2, transport)
		m.Points.Resize(1, 1)
		m.Points.Mask = []int16{1}

		transport.EXPECT().ExchangeDbl(gomock.Any(), gomock.Any()).Return(assertErr("boom")).Times(1)
		transport.EXPECT().Abort(gomock.Any()).Times(1)

		field := []float64{1}
		mesh.Scatter(m.Points.Entity, field)
	})
})

type assertErr string

func (e assertErr) Error() string { return string(e) }
