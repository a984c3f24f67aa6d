package mesh

import (
	"github.com/sarchlab/ume/comm"
	"github.com/sarchlab/ume/ds"
)

// GeometryType tags the coordinate system a mesh's point coordinates are
// expressed in.
type GeometryType int

const (
	Cartesian GeometryType = iota
	Cylindrical
	Spherical
)

func (g GeometryType) String() string {
	switch g {
	case Cartesian:
		return "CARTESIAN"
	case Cylindrical:
		return "CYLINDRICAL"
	case Spherical:
		return "SPHERICAL"
	default:
		return "UNKNOWN"
	}
}

// Mesh is the process-wide composition of one instance of each entity
// family, a geometry tag, this PE's rank/count, and a handle to the
// communication transport. It owns the root datastore; entity families hold
// a non-owning back-reference to it.
type Mesh struct {
	Geo   GeometryType
	Mype  int
	Numpe int

	Transport comm.Transport
	Root      *ds.DS

	Points  *Points
	Edges   *Edges
	Faces   *Faces
	Sides   *Sides
	Corners *Corners
	Zones   *Zones

	// Iotas is the optional tetrahedral-subdivision family; nil unless a
	// caller explicitly enables it (per spec's "optional entity family"
	// treatment, no derived kernel in this package consumes it).
	Iotas *Iotas
}

// New builds an empty Mesh with all six mandatory families wired to a fresh
// root datastore. Callers populate entity sizes/connectivity afterward
// (typically via meshio.Read or hand assembly in tests).
func New(geo GeometryType, mype, numpe int, transport comm.Transport) *Mesh {
	m := &Mesh{Geo: geo, Mype: mype, Numpe: numpe, Transport: transport, Root: ds.NewRoot("mesh")}
	m.Points = newPoints(m)
	m.Edges = newEdges(m)
	m.Faces = newFaces(m)
	m.Sides = newSides(m)
	m.Corners = newCorners(m)
	m.Zones = newZones(m)
	return m
}

// EnableIotas adds the optional iotas family to a mesh that did not
// originally carry one.
func (m *Mesh) EnableIotas() *Iotas {
	if m.Iotas == nil {
		m.Iotas = newIotas(m)
	}
	return m.Iotas
}
