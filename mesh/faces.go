package mesh

import (
	"github.com/sarchlab/ume/ds"
	"github.com/sarchlab/ume/vec3"
)

// Faces is the face entity family: the two bounding-zone maps plus the
// computed face-centroid coordinate "fcoord".
type Faces struct {
	*Entity
}

func newFaces(m *Mesh) *Faces {
	f := &Faces{Entity: NewEntity("faces", m, m.Root)}
	f.DS.Insert("m:f>z1", ds.NewRaw(ds.KindIntV))
	f.DS.Insert("m:f>z2", ds.NewRaw(ds.KindIntV))
	return f
}

func (f *Faces) Z1() *[]int          { return f.DS.AccessIntV("m:f>z1") }
func (f *Faces) Z2() *[]int          { return f.DS.AccessIntV("m:f>z2") }
func (f *Faces) Coord() *[]vec3.Vec3 { return f.DS.AccessVec3V("fcoord") }
