package mesh

import (
	"github.com/sarchlab/ume/ds"
	"github.com/sarchlab/ume/vec3"
)

// Sides is the side entity family: a tetrahedral subdivision of a zone
// bounded by a zone center, a face center, and an edge. Carries the full
// ring of adjacency maps plus the computed "side_area_norm"/"side_vol".
type Sides struct {
	*Entity
}

func newSides(m *Mesh) *Sides {
	s := &Sides{Entity: NewEntity("sides", m, m.Root)}
	for _, name := range []string{"m:s>z", "m:s>e", "m:s>p1", "m:s>p2", "m:s>f",
		"m:s>c1", "m:s>c2", "m:s>s2", "m:s>s3", "m:s>s4", "m:s>s5"} {
		s.DS.Insert(name, ds.NewRaw(ds.KindIntV))
	}
	return s
}

func (s *Sides) Z() *[]int  { return s.DS.AccessIntV("m:s>z") }
func (s *Sides) E() *[]int  { return s.DS.AccessIntV("m:s>e") }
func (s *Sides) P1() *[]int { return s.DS.AccessIntV("m:s>p1") }
func (s *Sides) P2() *[]int { return s.DS.AccessIntV("m:s>p2") }
func (s *Sides) F() *[]int  { return s.DS.AccessIntV("m:s>f") }
func (s *Sides) C1() *[]int { return s.DS.AccessIntV("m:s>c1") }
func (s *Sides) C2() *[]int { return s.DS.AccessIntV("m:s>c2") }
func (s *Sides) S2() *[]int { return s.DS.AccessIntV("m:s>s2") }
func (s *Sides) S3() *[]int { return s.DS.AccessIntV("m:s>s3") }
func (s *Sides) S4() *[]int { return s.DS.AccessIntV("m:s>s4") }
func (s *Sides) S5() *[]int { return s.DS.AccessIntV("m:s>s5") }

func (s *Sides) AreaNorm() *[]vec3.Vec3 { return s.DS.AccessVec3V("side_area_norm") }
func (s *Sides) Vol() *[]float64        { return s.DS.AccessDblV("side_vol") }
