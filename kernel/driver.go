package kernel

import (
	"github.com/sarchlab/ume/comm"
	"github.com/sarchlab/ume/mesh"
	"github.com/sarchlab/ume/vec3"
)

// CalcFaceArea accumulates the magnitude of each internal side's area norm
// into its face exactly once, crediting a shared face its analytic area
// despite both of its bounding zones' sides touching it, then scatters the
// source value out to every copy.
func CalcFaceArea(m *mesh.Mesh, faceArea []float64) {
	smask := m.Sides.Mask
	sf := *m.Sides.F()
	s2 := *m.Sides.S2()
	areaNorm := *m.Sides.AreaNorm()
	fCommType := m.Faces.CommType

	for i := range faceArea {
		faceArea[i] = 0
	}

	tagged := make([]bool, len(smask))
	for s := 0; s < m.Sides.Lsize; s++ {
		if smask[s] < 1 {
			continue
		}
		if tagged[s] {
			continue
		}
		f := sf[s]
		if fCommType[f] < mesh.Ghost {
			faceArea[f] += vec3.Mag(areaNorm[s])
		}
		tagged[s2[s]] = true
	}

	mesh.Scatter(m.Faces.Entity, faceArea)
}

// cornerCsurf accumulates half of each active side's area-normal vector
// onto both of its bounding corners, the per-corner surface analog of
// corner_vol.
func cornerCsurf(m *mesh.Mesh) []vec3.Vec3 {
	sc1 := *m.Sides.C1()
	sc2 := *m.Sides.C2()
	smask := m.Sides.Mask
	areaNorm := *m.Sides.AreaNorm()

	out := make([]vec3.Vec3, m.Corners.Size())
	for s := 0; s < m.Sides.Lsize; s++ {
		if smask[s] <= 0 {
			continue
		}
		half := vec3.MulS(areaNorm[s], 0.5)
		out[sc1[s]] = vec3.Add(out[sc1[s]], half)
		out[sc2[s]] = vec3.Add(out[sc2[s]], half)
	}
	return out
}

// Gradzatp computes the per-point gradient of a per-zone scalar field:
// accumulate each real corner's surface-weighted zone value and volume onto
// its point, parallel-sum both, divide (subtracting the normal component
// first at boundary points), then propagate source values to copies.
func Gradzatp(m *mesh.Mesh, zoneField []float64, pointGradient []vec3.Vec3) {
	cp := *m.Corners.P()
	cz := *m.Corners.Z()
	cmask := m.Corners.Mask
	cornerVol := *m.Corners.Vol()
	csurf := cornerCsurf(m)
	pmask := m.Points.Mask
	pointNorm := *m.Points.Norm()

	pointVolume := make([]float64, m.Points.Size())
	for i := range pointGradient {
		pointGradient[i] = vec3.Zero
	}

	for c := 0; c < m.Corners.Lsize; c++ {
		if cmask[c] < 1 {
			continue
		}
		p, z := cp[c], cz[c]
		pointVolume[p] += cornerVol[c]
		pointGradient[p] = vec3.Add(pointGradient[p], vec3.MulS(csurf[c], zoneField[z]))
	}

	mesh.GathScat(m.Points.Entity, comm.OpSum, pointVolume)
	mesh.GathScat(m.Points.Entity, comm.OpSum, pointGradient)

	for p := range pmask {
		switch {
		case pmask[p] > 0:
			pointGradient[p] = vec3.DivS(pointGradient[p], pointVolume[p])
		case pmask[p] == -1:
			n := pointNorm[p]
			g := pointGradient[p]
			g = vec3.Sub(g, vec3.MulS(n, vec3.Dot(g, n)))
			pointGradient[p] = vec3.DivS(g, pointVolume[p])
		}
	}

	mesh.Scatter(m.Points.Entity, pointGradient)
}

// Gradzatz computes the per-zone gradient of a per-zone scalar field by
// first computing the per-point gradient (Gradzatp), then volume-weighting
// each zone's corners' point gradients back onto the zone.
func Gradzatz(m *mesh.Mesh, zoneField []float64, zoneGradient []vec3.Vec3) {
	pointGradient := make([]vec3.Vec3, m.Points.Size())
	Gradzatp(m, zoneField, pointGradient)

	cp := *m.Corners.P()
	cz := *m.Corners.Z()
	cmask := m.Corners.Mask
	cornerVol := *m.Corners.Vol()

	zoneVolume := make([]float64, m.Zones.Size())
	for c := 0; c < m.Corners.Lsize; c++ {
		if cmask[c] < 1 {
			continue
		}
		zoneVolume[cz[c]] += cornerVol[c]
	}

	for i := range zoneGradient {
		zoneGradient[i] = vec3.Zero
	}
	for c := 0; c < m.Corners.Lsize; c++ {
		if cmask[c] < 1 {
			continue
		}
		z, p := cz[c], cp[c]
		if zoneVolume[z] == 0 {
			continue
		}
		weight := cornerVol[c] / zoneVolume[z]
		zoneGradient[z] = vec3.Add(zoneGradient[z], vec3.MulS(pointGradient[p], weight))
	}

	mesh.Scatter(m.Zones.Entity, zoneGradient)
}
