package comm

import (
	"github.com/sarchlab/ume/fault"
	"github.com/sarchlab/ume/vec3"
)

// Transport moves aggregated send buffers to aggregated receive buffers
// across PEs. Go does not allow a generic method on an interface, so the
// single C++ exchange<FT> template becomes three named concrete methods,
// one per supported element kind.
type Transport interface {
	ExchangeInt(sends, recvs *Buffers[int]) error
	ExchangeDbl(sends, recvs *Buffers[float64]) error
	ExchangeVec3(sends, recvs *Buffers[vec3.Vec3]) error

	// ID returns this transport's own PE rank.
	ID() int

	// Stop releases any transport-owned resources (sockets, goroutines,
	// network registrations). Safe to call more than once.
	Stop() error

	// Abort prints message with a transport-prefixed diagnostic and
	// terminates the process. Used for transport-layer invariant failures
	// that are not ordinary Go errors (e.g. a peer disappearing mid-wait).
	Abort(message string)
}

// abort is the shared implementation behind every Transport.Abort: log then
// terminate, matching the original Transport::abort's "Transport::abort: "
// prefix followed by std::abort().
func abort(message string) {
	fault.Abortf("transport", "%s", message)
}
