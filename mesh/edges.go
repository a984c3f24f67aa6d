package mesh

import (
	"github.com/sarchlab/ume/ds"
	"github.com/sarchlab/ume/vec3"
)

// Edges is the edge entity family: two point-index maps plus the computed
// midpoint coordinate "ecoord".
type Edges struct {
	*Entity
}

func newEdges(m *Mesh) *Edges {
	e := &Edges{Entity: NewEntity("edges", m, m.Root)}
	e.DS.Insert("m:e>p1", ds.NewRaw(ds.KindIntV))
	e.DS.Insert("m:e>p2", ds.NewRaw(ds.KindIntV))
	return e
}

func (e *Edges) P1() *[]int            { return e.DS.AccessIntV("m:e>p1") }
func (e *Edges) P2() *[]int            { return e.DS.AccessIntV("m:e>p2") }
func (e *Edges) Coord() *[]vec3.Vec3   { return e.DS.AccessVec3V("ecoord") }
