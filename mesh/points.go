package mesh

import (
	"github.com/sarchlab/ume/ds"
	"github.com/sarchlab/ume/ragged"
	"github.com/sarchlab/ume/vec3"
)

// Points is the point entity family. Its one raw connectivity field is its
// own coordinate; "point_norm", "m:p>zs", and "m:p>rc" are computed fields
// registered by the kernel package.
type Points struct {
	*Entity
}

func newPoints(m *Mesh) *Points {
	p := &Points{Entity: NewEntity("points", m, m.Root)}
	p.DS.Insert("pcoord", ds.NewRaw(ds.KindVec3V))
	return p
}

// Coord returns the per-point coordinate buffer. Resize does not size it;
// callers assign a slice of Size() coordinates through the pointer.
func (p *Points) Coord() *[]vec3.Vec3 { return p.DS.AccessVec3V("pcoord") }

// Norm returns the (possibly computed) per-point outward normal buffer.
func (p *Points) Norm() *[]vec3.Vec3 { return p.DS.AccessVec3V("point_norm") }

// ZonesOf returns the point->zones ragged map (computed).
func (p *Points) ZonesOf() *ragged.Ragged[int] { return p.DS.AccessIntRR("m:p>zs") }

// RealCornersOf returns the point->real-corners ragged map (computed).
func (p *Points) RealCornersOf() *ragged.Ragged[int] { return p.DS.AccessIntRR("m:p>rc") }
