package comm

import (
	"fmt"
	"os"

	"github.com/sarchlab/ume/vec3"
)

// Dummy is the no-op transport required for single-PE runs and tests that
// never actually cross a PE boundary: every exchange is expected to carry
// zero remotes, and Dummy does not check that invariant itself (a
// multi-remote exchange against Dummy silently does nothing, same as the
// original Dummy_Transport).
type Dummy struct {
	id int
}

// NewDummy constructs a Dummy transport for the given PE id, printing the
// same loud single-PE warning banner as the original constructor so a
// multi-PE run accidentally wired to Dummy is obvious in the log.
func NewDummy(id int) *Dummy {
	fmt.Fprintln(os.Stderr, "************************************************************")
	fmt.Fprintln(os.Stderr, "* WARNING: using the Dummy transport.                     *")
	fmt.Fprintln(os.Stderr, "* No data will actually be exchanged between PEs.         *")
	fmt.Fprintln(os.Stderr, "* This is only correct for single-PE runs.                *")
	fmt.Fprintln(os.Stderr, "************************************************************")
	return &Dummy{id: id}
}

func (d *Dummy) ExchangeInt(sends, recvs *Buffers[int]) error { return nil }
func (d *Dummy) ExchangeDbl(sends, recvs *Buffers[float64]) error { return nil }
func (d *Dummy) ExchangeVec3(sends, recvs *Buffers[vec3.Vec3]) error { return nil }

func (d *Dummy) ID() int { return d.id }
func (d *Dummy) Stop() error { return nil }
func (d *Dummy) Abort(msg string) { abort(msg) }
