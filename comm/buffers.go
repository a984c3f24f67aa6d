package comm

import (
	"fmt"

	"github.com/sarchlab/ume/fault"
	"github.com/sarchlab/ume/vec3"
)

// Debug enables the non-production invariant assertion in Unpack(OVERWRITE)
// that catches a malformed neighbor descriptor (an element list with
// repeats) by rejecting a duplicate write target within a single unpack.
// Mirrors the teacher's core.PrintToggle-style debug switches in
// core/util.go: a package-level bool, off by default for production use.
var Debug = false

// Op selects the reduction applied when unpacking received data into a
// field.
type Op int

const (
	OpOverwrite Op = iota
	OpSum
	OpMin
	OpMax
)

// Remote is the per-peer slice of the aggregated wire buffer: pe is the
// remote rank, Offset is the cumulative start (in scalar elements, not
// bytes) within Buf, and Len is that peer's length in scalar elements.
type Remote struct {
	PE     int
	Offset int
	Len    int
}

// elemLen returns 1 for int/float64 element types and 3 for vec3.Vec3,
// matching the spec's elem_len(T) table.
func elemLen[T any]() int {
	var zero T
	switch any(zero).(type) {
	case int, float64:
		return 1
	case vec3.Vec3:
		return 3
	default:
		panic(fmt.Sprintf("comm: unsupported buffer element type %T", zero))
	}
}

// Buffers aggregates a gather/scatter pattern over multiple remote peers
// into one contiguous wire buffer, so pack/unpack is a pure map operation.
type Buffers[T any] struct {
	Remotes []Remote
	B2E     []int // concatenation of all neighs[k].Elements, in order
	Buf     []float64
}

// NewBuffers builds an aggregated buffer set from a neighbor list.
func NewBuffers[T any](neighs Neighbors) *Buffers[T] {
	el := elemLen[T]()
	b := &Buffers[T]{Remotes: make([]Remote, len(neighs))}
	count := 0
	for i, n := range neighs {
		b.Remotes[i] = Remote{
			PE:     n.PE,
			Offset: count * el,
			Len:    len(n.Elements) * el,
		}
		b.B2E = append(b.B2E, n.Elements...)
		count += len(n.Elements)
	}
	b.Buf = make([]float64, count*el)
	return b
}

// NumEntries returns the number of logical elements (not scalars) packed.
func (b *Buffers[T]) NumEntries() int {
	return len(b.B2E)
}

func writeElem[T any](dst []float64, v T) {
	switch val := any(v).(type) {
	case int:
		dst[0] = float64(val)
	case float64:
		dst[0] = val
	case vec3.Vec3:
		dst[0], dst[1], dst[2] = val.X, val.Y, val.Z
	}
}

func readElem[T any](src []float64) T {
	var zero T
	switch any(zero).(type) {
	case int:
		return any(int(src[0])).(T)
	case float64:
		return any(src[0]).(T)
	case vec3.Vec3:
		return any(vec3.Vec3{X: src[0], Y: src[1], Z: src[2]}).(T)
	default:
		panic(fmt.Sprintf("comm: unsupported buffer element type %T", zero))
	}
}

// Pack writes field[b2e[i]] into buf starting at i*elem_len, for every i in
// [0, sum|elems_k|).
func (b *Buffers[T]) Pack(field []T) {
	el := elemLen[T]()
	for i, idx := range b.B2E {
		writeElem(b.Buf[i*el:i*el+el], field[idx])
	}
}

// Unpack applies the given reduction operator while writing buffered values
// back into field at the indices named by B2E.
func (b *Buffers[T]) Unpack(field []T, op Op) {
	el := elemLen[T]()

	var seen map[int]bool
	if op == OpOverwrite && Debug {
		seen = make(map[int]bool, len(b.B2E))
	}

	for i, idx := range b.B2E {
		val := readElem[T](b.Buf[i*el : i*el+el])
		switch op {
		case OpOverwrite:
			if seen != nil {
				fault.Assertf(!seen[idx], "comm", "duplicate OVERWRITE target at entity index %d", idx)
				seen[idx] = true
			}
			field[idx] = val
		case OpSum:
			field[idx] = addElem(field[idx], val)
		case OpMin:
			field[idx] = minElem(field[idx], val)
		case OpMax:
			field[idx] = maxElem(field[idx], val)
		}
	}
}

func addElem[T any](a, b T) T {
	switch av := any(a).(type) {
	case int:
		return any(av + any(b).(int)).(T)
	case float64:
		return any(av + any(b).(float64)).(T)
	case vec3.Vec3:
		return any(vec3.Add(av, any(b).(vec3.Vec3))).(T)
	default:
		panic("comm: unsupported buffer element type in SUM")
	}
}

func minElem[T any](a, b T) T {
	switch av := any(a).(type) {
	case int:
		bv := any(b).(int)
		if bv < av {
			return any(bv).(T)
		}
		return a
	case float64:
		bv := any(b).(float64)
		if bv < av {
			return any(bv).(T)
		}
		return a
	case vec3.Vec3:
		bv := any(b).(vec3.Vec3)
		return any(vec3.New(minF(av.X, bv.X), minF(av.Y, bv.Y), minF(av.Z, bv.Z))).(T)
	default:
		panic("comm: unsupported buffer element type in MIN")
	}
}

func maxElem[T any](a, b T) T {
	switch av := any(a).(type) {
	case int:
		bv := any(b).(int)
		if bv > av {
			return any(bv).(T)
		}
		return a
	case float64:
		bv := any(b).(float64)
		if bv > av {
			return any(bv).(T)
		}
		return a
	case vec3.Vec3:
		bv := any(b).(vec3.Vec3)
		return any(vec3.New(maxF(av.X, bv.X), maxF(av.Y, bv.Y), maxF(av.Z, bv.Z))).(T)
	default:
		panic("comm: unsupported buffer element type in MAX")
	}
}

func minF(a, b float64) float64 {
	if b < a {
		return b
	}
	return a
}

func maxF(a, b float64) float64 {
	if b > a {
		return b
	}
	return a
}
