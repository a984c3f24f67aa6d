package mesh

import (
	"github.com/sarchlab/ume/ragged"
	"github.com/sarchlab/ume/vec3"
)

// Zones is the zone entity family. It carries no raw connectivity maps of
// its own (zone<->corner/point connectivity is read off Corners); its
// "zcoord", "m:z>pz", and "m:z>p" entries are all computed.
type Zones struct {
	*Entity
}

func newZones(m *Mesh) *Zones {
	z := &Zones{Entity: NewEntity("zones", m, m.Root)}
	return z
}

func (z *Zones) Coord() *[]vec3.Vec3       { return z.DS.AccessVec3V("zcoord") }
func (z *Zones) PtZones() *ragged.Ragged[int] { return z.DS.AccessIntRR("m:z>pz") }
func (z *Zones) Points() *ragged.Ragged[int]  { return z.DS.AccessIntRR("m:z>p") }
