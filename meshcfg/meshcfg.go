// Package meshcfg provides a fluent builder for assembling a *mesh.Mesh
// without reading one from a file, mirroring config.DeviceBuilder/
// core.Builder's WithX(...) Builder chaining style.
package meshcfg

import (
	"github.com/sarchlab/ume/comm"
	"github.com/sarchlab/ume/fault"
	"github.com/sarchlab/ume/mesh"
)

// Builder accumulates the parameters mesh.New needs. Each WithX method
// returns a modified copy so callers can branch a partially configured
// Builder into several variants.
type Builder struct {
	geo       mesh.GeometryType
	mype      int
	numpe     int
	transport comm.Transport
}

// NewBuilder returns a Builder defaulting to a single-PE Cartesian mesh with
// no transport set; WithTransport must be called before Build.
func NewBuilder() Builder {
	return Builder{geo: mesh.Cartesian, numpe: 1}
}

// WithGeometry sets the mesh's coordinate system.
func (b Builder) WithGeometry(geo mesh.GeometryType) Builder {
	b.geo = geo
	return b
}

// WithRanks sets this PE's rank and the total number of PEs.
func (b Builder) WithRanks(mype, numpe int) Builder {
	b.mype = mype
	b.numpe = numpe
	return b
}

// WithTransport sets the communication transport the built mesh will use
// for Gather/Scatter/GathScat.
func (b Builder) WithTransport(transport comm.Transport) Builder {
	b.transport = transport
	return b
}

// Build constructs the *mesh.Mesh. A transport must have been set.
func (b Builder) Build() *mesh.Mesh {
	fault.Assertf(b.transport != nil, "meshcfg", "Build: no transport set, call WithTransport first")
	fault.Assertf(b.numpe > 0, "meshcfg", "Build: numpe must be positive, got %d", b.numpe)
	fault.Assertf(b.mype >= 0 && b.mype < b.numpe, "meshcfg", "Build: mype %d out of range [0,%d)", b.mype, b.numpe)
	return mesh.New(b.geo, b.mype, b.numpe, b.transport)
}
