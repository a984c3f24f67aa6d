// Package mesh implements the six (seven with iotas) mesh entity families,
// their shared Entity base, and the Mesh aggregate that composes them with a
// datastore and a communication transport.
package mesh

import (
	"github.com/sarchlab/ume/comm"
	"github.com/sarchlab/ume/ds"
	"github.com/sarchlab/ume/fault"
	"github.com/sarchlab/ume/vec3"
)

// CommType classifies how an entity index participates in cross-PE sharing.
type CommType int

const (
	Internal CommType = iota
	Source
	Copy
	Ghost
)

// Subset is a named index subset with its own mask, e.g. a boundary-
// condition tag applied to a slice of an entity family. Lsize mirrors the
// parent entity's real/ghost split at the time the subset was taken.
type Subset struct {
	Name     string
	Lsize    int
	Elements []int
	Mask     []int16
}

// Equal compares two subsets for the binary round-trip test suite.
func (s Subset) Equal(o Subset) bool {
	if s.Name != o.Name || s.Lsize != o.Lsize || len(s.Elements) != len(o.Elements) || len(s.Mask) != len(o.Mask) {
		return false
	}
	for i := range s.Elements {
		if s.Elements[i] != o.Elements[i] {
			return false
		}
	}
	for i := range s.Mask {
		if s.Mask[i] != o.Mask[i] {
			return false
		}
	}
	return true
}

// Entity is the common base embedded by every entity family. mask carries
// the per-index classification (>=1 active real, 0 null, <=-1 boundary/
// ghost); Lsize/Size delimit the real-vs-ghost index ranges.
type Entity struct {
	Name string // e.g. "points", "edges" — used for diagnostics and meshio tags

	Mesh *Mesh // non-owning back-reference; the mesh outlives every entity
	DS   *ds.DS

	Mask     []int16
	CommType []CommType
	Lsize    int

	// Ghost->source address triples, one row per ghost (index g-Lsize).
	CpyIdx    []int
	SrcPe     []int
	SrcIdx    []int
	GhostMask []int16

	MyCpys comm.Neighbors
	MySrcs comm.Neighbors

	Subsets []Subset
}

// NewEntity builds an Entity base with no rows; call Resize to allocate.
func NewEntity(name string, mesh *Mesh, parentDS *ds.DS) *Entity {
	return &Entity{
		Name: name,
		Mesh: mesh,
		DS:   ds.NewChild(name, parentDS),
	}
}

// Size returns the total number of entity indices, reals plus ghosts.
func (e *Entity) Size() int {
	return e.Lsize + len(e.CpyIdx)
}

// Resize allocates the base Entity arrays for lsize reals and (size-lsize)
// ghosts. Mask/CommType cover the full [0,size) range; the ghost arrays
// CpyIdx/SrcPe/SrcIdx/GhostMask are sized to size-lsize per the
// cpy_idx.len == size - lsize invariant.
func (e *Entity) Resize(lsize, size int) {
	fault.Assertf(size >= lsize, e.Name, "resize: size %d < lsize %d", size, lsize)
	e.Lsize = lsize
	e.Mask = make([]int16, size)
	e.CommType = make([]CommType, size)
	nghost := size - lsize
	e.CpyIdx = make([]int, nghost)
	e.SrcPe = make([]int, nghost)
	e.SrcIdx = make([]int, nghost)
	e.GhostMask = make([]int16, nghost)
}

// Gather implements the copies->sources reduction: pack this entity's
// copies, exchange into the source buffer, unpack into field on the source
// side under op.
func Gather[T any](e *Entity, op comm.Op, field []T) {
	cpyBufs := comm.NewBuffers[T](e.MyCpys)
	srcBufs := comm.NewBuffers[T](e.MySrcs)
	cpyBufs.Pack(field)
	exchange(e, cpyBufs, srcBufs)
	srcBufs.Unpack(field, op)
}

// Scatter implements the sources->copies reduction: pack sources, exchange
// into the copy buffer, OVERWRITE-unpack into field on the copy side.
func Scatter[T any](e *Entity, field []T) {
	cpyBufs := comm.NewBuffers[T](e.MyCpys)
	srcBufs := comm.NewBuffers[T](e.MySrcs)
	srcBufs.Pack(field)
	exchange(e, srcBufs, cpyBufs)
	cpyBufs.Unpack(field, comm.OpOverwrite)
}

// GathScat is the two-phase gather-then-scatter: merge copies into sources
// under op, then OVERWRITE-propagate the merged source value back out to
// every copy, so every shared entity holds an identical value afterward.
func GathScat[T any](e *Entity, op comm.Op, field []T) {
	cpyBufs := comm.NewBuffers[T](e.MyCpys)
	srcBufs := comm.NewBuffers[T](e.MySrcs)

	cpyBufs.Pack(field)
	exchange(e, cpyBufs, srcBufs)
	srcBufs.Unpack(field, op)

	srcBufs.Pack(field)
	exchange(e, srcBufs, cpyBufs)
	cpyBufs.Unpack(field, comm.OpOverwrite)
}

func exchange[T any](e *Entity, sends, recvs *comm.Buffers[T]) {
	var err error
	switch s := any(sends).(type) {
	case *comm.Buffers[int]:
		err = e.Mesh.Transport.ExchangeInt(s, any(recvs).(*comm.Buffers[int]))
	case *comm.Buffers[float64]:
		err = e.Mesh.Transport.ExchangeDbl(s, any(recvs).(*comm.Buffers[float64]))
	case *comm.Buffers[vec3.Vec3]:
		err = e.Mesh.Transport.ExchangeVec3(s, any(recvs).(*comm.Buffers[vec3.Vec3]))
	default:
		fault.Abortf(e.Name, "exchange: unsupported field element type")
	}
	if err != nil {
		e.Mesh.Transport.Abort(err.Error())
	}
}
