package kernel

import (
	"github.com/sarchlab/ume/ds"
	"github.com/sarchlab/ume/mesh"
	"github.com/sarchlab/ume/vec3"
)

// ecoordInit builds the per-edge midpoint of the two endpoints' pcoord.
// Inactive edges (mask == 0) get zero.
func ecoordInit(m *mesh.Mesh) ds.InitFunc {
	return func(e *ds.Entry) error {
		p1 := *m.Edges.P1()
		p2 := *m.Edges.P2()
		pcoord := *m.Points.Coord()
		mask := m.Edges.Mask

		out := ds.MydataVec3V(e)
		*out = make([]vec3.Vec3, m.Edges.Size())
		for i := range *out {
			if mask[i] == 0 {
				continue
			}
			(*out)[i] = vec3.MulS(vec3.Add(pcoord[p1[i]], pcoord[p2[i]]), 0.5)
		}
		return nil
	}
}

// fcoordInit builds the per-face arithmetic mean of the first endpoint of
// every side incident on the face. Inactive faces (mask == 0) get zero; a
// face that received no incident points is left at zero rather than
// divided.
func fcoordInit(m *mesh.Mesh) ds.InitFunc {
	return func(e *ds.Entry) error {
		sp1 := *m.Sides.P1()
		sf := *m.Sides.F()
		smask := m.Sides.Mask
		pcoord := *m.Points.Coord()
		fmask := m.Faces.Mask

		out := ds.MydataVec3V(e)
		*out = make([]vec3.Vec3, m.Faces.Size())
		counts := make([]int, m.Faces.Size())

		for s := 0; s < m.Sides.Lsize; s++ {
			if smask[s] == 0 {
				continue
			}
			f := sf[s]
			(*out)[f] = vec3.Add((*out)[f], pcoord[sp1[s]])
			counts[f]++
		}
		for f := range *out {
			if fmask[f] == 0 || counts[f] == 0 {
				(*out)[f] = vec3.Zero
				continue
			}
			(*out)[f] = vec3.DivS((*out)[f], float64(counts[f]))
		}
		return nil
	}
}

// zcoordInit builds the per-zone arithmetic mean of the points of all
// active corners of the zone, then scatters the source value to copies.
func zcoordInit(m *mesh.Mesh) ds.InitFunc {
	return func(e *ds.Entry) error {
		cp := *m.Corners.P()
		cz := *m.Corners.Z()
		cmask := m.Corners.Mask
		pcoord := *m.Points.Coord()
		zmask := m.Zones.Mask

		out := ds.MydataVec3V(e)
		*out = make([]vec3.Vec3, m.Zones.Size())
		counts := make([]int, m.Zones.Size())

		for c := range cp {
			if cmask[c] == 0 {
				continue
			}
			z := cz[c]
			(*out)[z] = vec3.Add((*out)[z], pcoord[cp[c]])
			counts[z]++
		}
		for z := range *out {
			if zmask[z] == 0 || counts[z] == 0 {
				(*out)[z] = vec3.Zero
				continue
			}
			(*out)[z] = vec3.DivS((*out)[z], float64(counts[z]))
		}

		mesh.Scatter(m.Zones.Entity, *out)
		return nil
	}
}
