package kernel

import (
	"sort"

	"github.com/sarchlab/ume/ds"
	"github.com/sarchlab/ume/mesh"
)

// zoneToPtZonesInit builds, for each zone, the ascending-sorted, de-
// duplicated union over the zone's corners of that corner's point's
// m:p>zs list, with the zone itself removed.
func zoneToPtZonesInit(m *mesh.Mesh) ds.InitFunc {
	return func(e *ds.Entry) error {
		cp := *m.Corners.P()
		cz := *m.Corners.Z()
		p2zs := m.Points.ZonesOf() // triggers m:p>zs's own lazy init

		sets := make([]map[int]struct{}, m.Zones.Size())
		for c := range cp {
			z := cz[c]
			if sets[z] == nil {
				sets[z] = map[int]struct{}{}
			}
			p := cp[c]
			if p >= p2zs.Len() {
				continue
			}
			for _, nz := range p2zs.Row(p) {
				if nz != z {
					sets[z][nz] = struct{}{}
				}
			}
		}

		out := ds.MydataIntRR(e)
		out.Init(len(sets))
		for z, set := range sets {
			seq := make([]int, 0, len(set))
			for nz := range set {
				seq = append(seq, nz)
			}
			sort.Ints(seq)
			out.Assign(z, seq)
		}
		return nil
	}
}

// zoneToPointsInit builds, for each zone, the ascending-sorted list of the
// points of all its corners (not de-duplicated: every corner already names
// a distinct point within a given zone).
func zoneToPointsInit(m *mesh.Mesh) ds.InitFunc {
	return func(e *ds.Entry) error {
		cp := *m.Corners.P()
		cz := *m.Corners.Z()

		accum := make([][]int, m.Zones.Size())
		for c := range cp {
			z := cz[c]
			accum[z] = append(accum[z], cp[c])
		}
		for z := range accum {
			sort.Ints(accum[z])
		}

		out := ds.MydataIntRR(e)
		out.Init(len(accum))
		for z, seq := range accum {
			out.Assign(z, seq)
		}
		return nil
	}
}
