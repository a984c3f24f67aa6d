package kernel

import (
	"sort"

	"github.com/sarchlab/ume/comm"
	"github.com/sarchlab/ume/ds"
	"github.com/sarchlab/ume/mesh"
	"github.com/sarchlab/ume/vec3"
)

// pointToZonesInit builds, for each point, the ascending-sorted list of
// zones it is a corner of, restricted to corners whose point and zone are
// both local reals.
func pointToZonesInit(m *mesh.Mesh) ds.InitFunc {
	return func(e *ds.Entry) error {
		cp := *m.Corners.P()
		cz := *m.Corners.Z()
		pll := m.Points.Lsize
		zll := m.Zones.Lsize

		accum := make([][]int, m.Points.Size())
		for c := range cp {
			p, z := cp[c], cz[c]
			if p < pll && z < zll {
				accum[p] = append(accum[p], z)
			}
		}
		for p := range accum {
			sort.Ints(accum[p])
		}

		out := ds.MydataIntRR(e)
		out.Init(len(accum))
		for p, seq := range accum {
			out.Assign(p, seq)
		}
		return nil
	}
}

// pointToRealCornersInit builds, for each point, the (unsorted, insertion-
// ordered) list of real corners (mask>=1) it belongs to.
func pointToRealCornersInit(m *mesh.Mesh) ds.InitFunc {
	return func(e *ds.Entry) error {
		cp := *m.Corners.P()
		cmask := m.Corners.Mask

		accum := make([][]int, m.Points.Size())
		for c := range cp {
			if cmask[c] >= 1 {
				accum[cp[c]] = append(accum[cp[c]], c)
			}
		}

		out := ds.MydataIntRR(e)
		out.Init(len(accum))
		for p, seq := range accum {
			out.Assign(p, seq)
		}
		return nil
	}
}

// pointNormInit accumulates side_area_norm contributions from boundary
// sides onto their partner side's two endpoints, gathscats the sum across
// PEs, then normalizes in place at boundary points (mask<0).
func pointNormInit(m *mesh.Mesh) ds.InitFunc {
	return func(e *ds.Entry) error {
		smask := m.Sides.Mask
		s2 := *m.Sides.S2()
		sp1 := *m.Sides.P1()
		sp2 := *m.Sides.P2()
		areaNorm := *m.Sides.AreaNorm()
		pmask := m.Points.Mask

		out := ds.MydataVec3V(e)
		*out = make([]vec3.Vec3, m.Points.Size())

		for s := 0; s < m.Sides.Lsize; s++ {
			if smask[s] != -1 {
				continue
			}
			partner := s2[s]
			(*out)[sp1[partner]] = vec3.Add((*out)[sp1[partner]], areaNorm[partner])
			(*out)[sp2[partner]] = vec3.Add((*out)[sp2[partner]], areaNorm[partner])
		}

		mesh.GathScat(m.Points.Entity, comm.OpSum, *out)

		for p := range pmask {
			if pmask[p] < 0 {
				v := (*out)[p]
				vec3.Normalize(&v)
				(*out)[p] = v
			}
		}
		return nil
	}
}
