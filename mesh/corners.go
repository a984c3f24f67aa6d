package mesh

import "github.com/sarchlab/ume/ds"

// Corners is the corner entity family: a subzonal volume at a point of a
// zone, identified by its owning point and zone plus the computed
// "corner_vol".
type Corners struct {
	*Entity
}

func newCorners(m *Mesh) *Corners {
	c := &Corners{Entity: NewEntity("corners", m, m.Root)}
	c.DS.Insert("m:c>p", ds.NewRaw(ds.KindIntV))
	c.DS.Insert("m:c>z", ds.NewRaw(ds.KindIntV))
	return c
}

func (c *Corners) P() *[]int       { return c.DS.AccessIntV("m:c>p") }
func (c *Corners) Z() *[]int       { return c.DS.AccessIntV("m:c>z") }
func (c *Corners) Vol() *[]float64 { return c.DS.AccessDblV("corner_vol") }
