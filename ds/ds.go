// Package ds implements the lazy, dependency-driven field datastore: a
// keyed container of field variables whose initialization fires on first
// access and recursively triggers the initialization of any dependencies,
// guarding against re-entry.
package ds

import (
	"github.com/sarchlab/ume/fault"
	"github.com/sarchlab/ume/ragged"
	"github.com/sarchlab/ume/vec3"
)

// Kind tags which of the nine supported buffer types an Entry holds.
type Kind int

const (
	KindInt Kind = iota
	KindIntV
	KindIntRR
	KindDbl
	KindDblV
	KindDblRR
	KindVec3
	KindVec3V
	KindVec3RR
)

// InitState is the three-state lifecycle of a computed Entry.
type InitState int

const (
	NotInitialized InitState = iota
	InProgress
	Initialized
)

// InitFunc computes a computed Entry's value. It may freely call
// Caccess* on other names via the DS passed at registration time;
// cycles are forbidden and fault loudly.
type InitFunc func(e *Entry) error

// Entry is either a raw typed buffer or a computed field with an Init
// procedure. This is the Go realization of the spec's tagged-variant
// Entry{RawBuffer(T), Computed{init_fn, state}}: the init procedure is a
// function value, not a type hierarchy.
type Entry struct {
	Kind  Kind
	Init  InitFunc // nil for a raw (non-computed) entry
	state InitState

	i    int
	iv   []int
	irr  *ragged.Ragged[int]
	d    float64
	dv   []float64
	drr  *ragged.Ragged[float64]
	v    vec3.Vec3
	vv   []vec3.Vec3
	vrr  *ragged.Ragged[vec3.Vec3]
}

// NewRaw builds an uninitialized raw buffer entry of the given kind.
func NewRaw(kind Kind) *Entry {
	e := &Entry{Kind: kind}
	switch kind {
	case KindIntRR:
		e.irr = ragged.New[int]()
	case KindDblRR:
		e.drr = ragged.New[float64]()
	case KindVec3RR:
		e.vrr = ragged.New[vec3.Vec3]()
	}
	return e
}

// NewComputed builds an entry of the given kind whose value is produced by
// init on first access.
func NewComputed(kind Kind, init InitFunc) *Entry {
	e := NewRaw(kind)
	e.Init = init
	return e
}

// State returns the entry's current lifecycle state.
func (e *Entry) State() InitState { return e.state }

// DS is a named, tree-structured keyed container of entries. Child stores
// inherit lookups from parents.
type DS struct {
	name    string
	parent  *DS
	entries map[string]*Entry
}

// NewRoot creates a parentless datastore.
func NewRoot(name string) *DS {
	return &DS{name: name, entries: map[string]*Entry{}}
}

// NewChild creates a datastore whose lookups fall through to parent when a
// name is not found locally. The child holds a plain (GC-managed) pointer to
// parent; Close() severs it to model the spec's "broken weak parent link
// short-circuits lookup to local store only" behavior.
func NewChild(name string, parent *DS) *DS {
	return &DS{name: name, parent: parent, entries: map[string]*Entry{}}
}

// Close severs this store's link to its parent. Subsequent lookups that miss
// locally no longer walk up; they simply fail.
func (d *DS) Close() {
	d.parent = nil
}

// Name returns this store's name.
func (d *DS) Name() string { return d.name }

// Insert registers entry under name in this store. It fails (fatal) if name
// is already present in this store; shadowing a parent's entry of the same
// name is not an error.
func (d *DS) Insert(name string, entry *Entry) {
	if _, ok := d.entries[name]; ok {
		fault.Abortf("ds", "%s: insert of duplicate name %q", d.name, name)
	}
	d.entries[name] = entry
}

// Find searches this store then walks parents, returning nil on a total
// miss.
func (d *DS) Find(name string) *Entry {
	if e, ok := d.entries[name]; ok {
		return e
	}
	if d.parent != nil {
		return d.parent.Find(name)
	}
	return nil
}

// Cfind is the const-correct sibling of Find; in Go both return the same
// pointer, but Cfind documents read-only intent at call sites that only use
// Caccess*.
func (d *DS) Cfind(name string) *Entry { return d.Find(name) }

// FindOrDie aborts with a diagnostic if name cannot be found anywhere in the
// parent chain.
func (d *DS) FindOrDie(name string) *Entry {
	e := d.Find(name)
	if e == nil {
		fault.Abortf("ds", "%s: unable to find datastore variable named %q", d.name, name)
	}
	return e
}

// Release drops a computed entry's value and resets its state to
// NotInitialized, so a subsequent access re-runs Init. Used by renumbering
// and reshape paths.
func (d *DS) Release(name string) {
	e := d.FindOrDie(name)
	if e.Init != nil {
		fresh := NewComputed(e.Kind, e.Init)
		*e = *fresh
	}
	e.state = NotInitialized
}

// ensureInitialized runs the state machine described in spec §4.1:
// NotInitialized --access--> InProgress --init returns--> Initialized, with
// a re-entrant access while InProgress being a fatal cycle.
func ensureInitialized(name string, e *Entry) {
	if e.Init == nil || e.state == Initialized {
		return
	}
	if e.state == InProgress {
		fault.Abortf("ds", "%s: dependency cycle detected during init", name)
	}
	e.state = InProgress
	if err := e.Init(e); err != nil {
		fault.Abortf("ds", "%s: init failed: %v", name, err)
	}
	e.state = Initialized
}

func kindMismatch(name string, want, got Kind) {
	fault.Abortf("ds", "%s: type tag mismatch (want %d, got %d)", name, want, got)
}

// The following Access*/Caccess* pairs are the typed accessors named in
// spec §4.1. Access triggers Init on first call for a computed entry; the
// const (Caccess) forms are provided for symmetry with the C++ original but
// behave identically in Go, which has no const-reference distinction.

func (d *DS) AccessInt(name string) *int {
	e := d.FindOrDie(name)
	if e.Kind != KindInt {
		kindMismatch(name, KindInt, e.Kind)
	}
	ensureInitialized(name, e)
	return &e.i
}
func (d *DS) CaccessInt(name string) int { return *d.AccessInt(name) }

func (d *DS) AccessIntV(name string) *[]int {
	e := d.FindOrDie(name)
	if e.Kind != KindIntV {
		kindMismatch(name, KindIntV, e.Kind)
	}
	ensureInitialized(name, e)
	return &e.iv
}
func (d *DS) CaccessIntV(name string) []int { return *d.AccessIntV(name) }

func (d *DS) AccessIntRR(name string) *ragged.Ragged[int] {
	e := d.FindOrDie(name)
	if e.Kind != KindIntRR {
		kindMismatch(name, KindIntRR, e.Kind)
	}
	ensureInitialized(name, e)
	return e.irr
}
func (d *DS) CaccessIntRR(name string) *ragged.Ragged[int] { return d.AccessIntRR(name) }

func (d *DS) AccessDbl(name string) *float64 {
	e := d.FindOrDie(name)
	if e.Kind != KindDbl {
		kindMismatch(name, KindDbl, e.Kind)
	}
	ensureInitialized(name, e)
	return &e.d
}
func (d *DS) CaccessDbl(name string) float64 { return *d.AccessDbl(name) }

func (d *DS) AccessDblV(name string) *[]float64 {
	e := d.FindOrDie(name)
	if e.Kind != KindDblV {
		kindMismatch(name, KindDblV, e.Kind)
	}
	ensureInitialized(name, e)
	return &e.dv
}
func (d *DS) CaccessDblV(name string) []float64 { return *d.AccessDblV(name) }

func (d *DS) AccessDblRR(name string) *ragged.Ragged[float64] {
	e := d.FindOrDie(name)
	if e.Kind != KindDblRR {
		kindMismatch(name, KindDblRR, e.Kind)
	}
	ensureInitialized(name, e)
	return e.drr
}
func (d *DS) CaccessDblRR(name string) *ragged.Ragged[float64] { return d.AccessDblRR(name) }

func (d *DS) AccessVec3(name string) *vec3.Vec3 {
	e := d.FindOrDie(name)
	if e.Kind != KindVec3 {
		kindMismatch(name, KindVec3, e.Kind)
	}
	ensureInitialized(name, e)
	return &e.v
}
func (d *DS) CaccessVec3(name string) vec3.Vec3 { return *d.AccessVec3(name) }

func (d *DS) AccessVec3V(name string) *[]vec3.Vec3 {
	e := d.FindOrDie(name)
	if e.Kind != KindVec3V {
		kindMismatch(name, KindVec3V, e.Kind)
	}
	ensureInitialized(name, e)
	return &e.vv
}
func (d *DS) CaccessVec3V(name string) []vec3.Vec3 { return *d.AccessVec3V(name) }

func (d *DS) AccessVec3RR(name string) *ragged.Ragged[vec3.Vec3] {
	e := d.FindOrDie(name)
	if e.Kind != KindVec3RR {
		kindMismatch(name, KindVec3RR, e.Kind)
	}
	ensureInitialized(name, e)
	return e.vrr
}
func (d *DS) CaccessVec3RR(name string) *ragged.Ragged[vec3.Vec3] { return d.AccessVec3RR(name) }

// MydataIntV returns the raw backing slice for a computed entry's own Init
// function, mirroring the original's mydata_*() accessor which lets an
// init_() write directly to its own storage instead of looking itself up by
// name.
func MydataIntV(e *Entry) *[]int { return &e.iv }
func MydataDblV(e *Entry) *[]float64 { return &e.dv }
func MydataVec3V(e *Entry) *[]vec3.Vec3 { return &e.vv }
func MydataIntRR(e *Entry) *ragged.Ragged[int] { return e.irr }
func MydataDblRR(e *Entry) *ragged.Ragged[float64] { return e.drr }
func MydataVec3RR(e *Entry) *ragged.Ragged[vec3.Vec3] { return e.vrr }
