// Package kernel implements the fixed pipeline of derived-field kernels
// (coordinates, volumes, normals, connectivity maps, gradients) that run
// against a *mesh.Mesh once its raw connectivity has been assembled. Each
// kernel is registered as a computed datastore entry whose Init procedure
// is a pure function of other (possibly also computed) entries, triggered
// lazily on first access.
package kernel

import (
	"github.com/sarchlab/ume/ds"
	"github.com/sarchlab/ume/mesh"
)

// Register installs every derived-field kernel as a computed entry on m's
// datastore. It must run once, after the mesh's raw connectivity (point
// coordinates, the m:*>* index maps) has been assembled and before any
// derived field is accessed. Accessing a derived field before Register has
// run faults with "unable to find datastore variable".
func Register(m *mesh.Mesh) {
	m.Edges.DS.Insert("ecoord", ds.NewComputed(ds.KindVec3V, ecoordInit(m)))
	m.Faces.DS.Insert("fcoord", ds.NewComputed(ds.KindVec3V, fcoordInit(m)))
	m.Zones.DS.Insert("zcoord", ds.NewComputed(ds.KindVec3V, zcoordInit(m)))

	m.Sides.DS.Insert("side_area_norm", ds.NewComputed(ds.KindVec3V, sideAreaNormInit(m)))
	m.Sides.DS.Insert("side_vol", ds.NewComputed(ds.KindDblV, sideVolInit(m)))
	m.Corners.DS.Insert("corner_vol", ds.NewComputed(ds.KindDblV, cornerVolInit(m)))

	m.Points.DS.Insert("m:p>zs", ds.NewComputed(ds.KindIntRR, pointToZonesInit(m)))
	m.Points.DS.Insert("m:p>rc", ds.NewComputed(ds.KindIntRR, pointToRealCornersInit(m)))
	m.Points.DS.Insert("point_norm", ds.NewComputed(ds.KindVec3V, pointNormInit(m)))

	m.Zones.DS.Insert("m:z>pz", ds.NewComputed(ds.KindIntRR, zoneToPtZonesInit(m)))
	m.Zones.DS.Insert("m:z>p", ds.NewComputed(ds.KindIntRR, zoneToPointsInit(m)))
}
