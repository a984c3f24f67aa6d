// Package ragged implements the ragged-right container: an array of
// variable-length rows over N primary indices, backed by one dense array
// plus parallel begin/end index arrays.
package ragged

// Ragged maps an integer key in [0,N) to a variable-length ordered sequence
// of T. The physical representation is one dense backing array plus
// parallel per-row begin/end index arrays.
type Ragged[T any] struct {
	begin []int
	end   []int
	data  []T
}

// New returns an empty ragged container.
func New[T any]() *Ragged[T] {
	return &Ragged[T]{}
}

// Init (re)sizes the begin/end index arrays to hold n rows, all empty. Any
// previously assigned data remains in the backing array but is no longer
// reachable through any row (consistent with Assign's orphaning contract).
func (r *Ragged[T]) Init(n int) {
	r.begin = make([]int, n)
	r.end = make([]int, n)
}

// Len returns the number of primary rows.
func (r *Ragged[T]) Len() int {
	return len(r.begin)
}

// Assign appends seq as row n's data at the tail of the backing array.
// Any data previously assigned to row n is logically orphaned, not
// reclaimed: the container is write-once-per-row in common use.
func (r *Ragged[T]) Assign(n int, seq []T) {
	r.begin[n] = len(r.data)
	r.data = append(r.data, seq...)
	r.end[n] = len(r.data)
}

// Size returns the length of row n.
func (r *Ragged[T]) Size(n int) int {
	return r.end[n] - r.begin[n]
}

// Row returns a contiguous view of row n's data. The returned slice aliases
// the backing array and must not be retained across a later Assign on a
// different row that could trigger a backing-array reallocation; callers
// that need a stable copy should copy it themselves.
func (r *Ragged[T]) Row(n int) []T {
	return r.data[r.begin[n]:r.end[n]]
}

// Equal reports whether two ragged containers have identical backing data
// and identical begin/end index arrays.
func Equal[T comparable](a, b *Ragged[T]) bool {
	if len(a.begin) != len(b.begin) || len(a.end) != len(b.end) || len(a.data) != len(b.data) {
		return false
	}
	for i := range a.begin {
		if a.begin[i] != b.begin[i] || a.end[i] != b.end[i] {
			return false
		}
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// Begin returns the backing begin-index array. Exposed for the binary mesh
// file format, which writes the begin/end/data arrays independently.
func (r *Ragged[T]) Begin() []int { return r.begin }

// End returns the backing end-index array.
func (r *Ragged[T]) End() []int { return r.end }

// Data returns the backing data array.
func (r *Ragged[T]) Data() []T { return r.data }

// SetRaw installs begin/end/data arrays directly, bypassing Assign. Used by
// the binary reader to reconstruct a container from its three serialized
// arrays without re-deriving row boundaries.
func (r *Ragged[T]) SetRaw(begin, end []int, data []T) {
	r.begin = begin
	r.end = end
	r.data = data
}
