package kernel

import (
	"github.com/sarchlab/ume/ds"
	"github.com/sarchlab/ume/mesh"
	"github.com/sarchlab/ume/vec3"
)

// sideAreaNormInit builds the per-side outward area-weighted normal.
// Interior sides (mask>0) use half the cross product of the edge-center and
// face-center vectors relative to the zone center; boundary sides (mask<0)
// use a quarter of the cross product of the two point vectors relative to
// the face center. Null sides (mask==0) get zero.
//
// The p1/p2 operand order here is the natural (p1 − f) × (p2 − f) order;
// sideVolInit below uses the opposite order on purpose (see its comment).
func sideAreaNormInit(m *mesh.Mesh) ds.InitFunc {
	return func(e *ds.Entry) error {
		sz := *m.Sides.Z()
		se := *m.Sides.E()
		sp1 := *m.Sides.P1()
		sp2 := *m.Sides.P2()
		sf := *m.Sides.F()
		mask := m.Sides.Mask

		ecoord := *m.Edges.Coord()
		fcoord := *m.Faces.Coord()
		zcoord := *m.Zones.Coord()
		pcoord := *m.Points.Coord()

		out := ds.MydataVec3V(e)
		*out = make([]vec3.Vec3, m.Sides.Size())
		for s := 0; s < m.Sides.Lsize; s++ {
			switch {
			case mask[s] > 0:
				zc := zcoord[sz[s]]
				a := vec3.Sub(ecoord[se[s]], zc)
				b := vec3.Sub(fcoord[sf[s]], zc)
				(*out)[s] = vec3.MulS(vec3.Cross(a, b), 0.5)
			case mask[s] < 0:
				fc := fcoord[sf[s]]
				a := vec3.Sub(pcoord[sp1[s]], fc)
				b := vec3.Sub(pcoord[sp2[s]], fc)
				(*out)[s] = vec3.MulS(vec3.Cross(a, b), 0.25)
			default:
				(*out)[s] = vec3.Zero
			}
		}
		return nil
	}
}

// sideVolInit builds the per-side signed tetrahedron volume bounded by the
// zone center, face center, and the side's two points. Only interior sides
// (mask>0) contribute; all others are zero.
//
// The operand order deliberately swaps p1/p2 relative to sideAreaNormInit's
// boundary branch: (p2 − z) × (p1 − z), not (p1 − z) × (p2 − z). This pins
// the sign convention the rest of the pipeline (corner_vol, gradzatz) relies
// on; do not "simplify" it to match the area-norm ordering.
func sideVolInit(m *mesh.Mesh) ds.InitFunc {
	return func(e *ds.Entry) error {
		sz := *m.Sides.Z()
		sp1 := *m.Sides.P1()
		sp2 := *m.Sides.P2()
		sf := *m.Sides.F()
		mask := m.Sides.Mask

		fcoord := *m.Faces.Coord()
		zcoord := *m.Zones.Coord()
		pcoord := *m.Points.Coord()

		out := ds.MydataDblV(e)
		*out = make([]float64, m.Sides.Size())
		for s := 0; s < m.Sides.Lsize; s++ {
			if mask[s] <= 0 {
				(*out)[s] = 0
				continue
			}
			zc := zcoord[sz[s]]
			fc := fcoord[sf[s]]
			a := vec3.Sub(pcoord[sp2[s]], zc)
			b := vec3.Sub(pcoord[sp1[s]], zc)
			(*out)[s] = vec3.Dot(vec3.Sub(fc, zc), vec3.Cross(a, b)) / 6.0
		}
		return nil
	}
}

// cornerVolInit accumulates half of each active side's volume onto both of
// its bounding corners.
func cornerVolInit(m *mesh.Mesh) ds.InitFunc {
	return func(e *ds.Entry) error {
		sc1 := *m.Sides.C1()
		sc2 := *m.Sides.C2()
		smask := m.Sides.Mask
		sideVol := *m.Sides.Vol()

		out := ds.MydataDblV(e)
		*out = make([]float64, m.Corners.Size())
		for s := range sideVol {
			if smask[s] <= 0 {
				continue
			}
			half := 0.5 * sideVol[s]
			(*out)[sc1[s]] += half
			(*out)[sc2[s]] += half
		}
		return nil
	}
}
