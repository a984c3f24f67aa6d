package meshio

import (
	"io"

	"github.com/sarchlab/ume/comm"
	"github.com/sarchlab/ume/mesh"
)

// Write serializes m in SOA_Idx_Mesh.cc's field order: mype, numpe, geo,
// then points, edges, faces, sides, corners, zones, followed by an iotas
// presence flag and the iotas family itself when enabled.
func Write(w io.Writer, m *mesh.Mesh) error {
	if err := writeScalar(w, int64(m.Mype)); err != nil {
		return err
	}
	if err := writeScalar(w, int64(m.Numpe)); err != nil {
		return err
	}
	if err := writeScalar(w, int16(m.Geo)); err != nil {
		return err
	}
	if err := WritePoints(w, m.Points); err != nil {
		return err
	}
	if err := WriteEdges(w, m.Edges); err != nil {
		return err
	}
	if err := WriteFaces(w, m.Faces); err != nil {
		return err
	}
	if err := WriteSides(w, m.Sides); err != nil {
		return err
	}
	if err := WriteCorners(w, m.Corners); err != nil {
		return err
	}
	if err := WriteZones(w, m.Zones); err != nil {
		return err
	}

	hasIotas := m.Iotas != nil
	if err := writeScalar(w, boolByte(hasIotas)); err != nil {
		return err
	}
	if hasIotas {
		return WriteIotas(w, m.Iotas)
	}
	return nil
}

// Read reconstructs a Mesh from a stream written by Write, wiring it to
// transport for subsequent communication. The geometry/rank header is read
// first so the Mesh (and its families' datastore tree) can be constructed
// before any family data is read into it.
func Read(r io.Reader, transport comm.Transport) (*mesh.Mesh, error) {
	var mype, numpe int64
	if err := readScalar(r, &mype); err != nil {
		return nil, err
	}
	if err := readScalar(r, &numpe); err != nil {
		return nil, err
	}
	var geo int16
	if err := readScalar(r, &geo); err != nil {
		return nil, err
	}

	m := mesh.New(mesh.GeometryType(geo), int(mype), int(numpe), transport)

	if err := ReadPoints(r, m.Points); err != nil {
		return nil, err
	}
	if err := ReadEdges(r, m.Edges); err != nil {
		return nil, err
	}
	if err := ReadFaces(r, m.Faces); err != nil {
		return nil, err
	}
	if err := ReadSides(r, m.Sides); err != nil {
		return nil, err
	}
	if err := ReadCorners(r, m.Corners); err != nil {
		return nil, err
	}
	if err := ReadZones(r, m.Zones); err != nil {
		return nil, err
	}

	var hasIotas byte
	if err := readScalar(r, &hasIotas); err != nil {
		return nil, err
	}
	if hasIotas != 0 {
		if err := ReadIotas(r, m.EnableIotas()); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
