package meshio

import (
	"io"

	"github.com/sarchlab/ume/mesh"
)

// writeTag writes a plain family tag ahead of its Entity base, matching
// SOA_Idx_Points/Edges/Faces.cc's write(). spec.md additionally lists
// "sides" among the tagged families; this format follows spec.md rather than
// the original source here (see DESIGN.md) — corners, zones, and iotas carry
// no tag, also per spec.md.
func writeTag(w io.Writer, tag string) error {
	return writeString(w, tag)
}

func readTag(r io.Reader) (string, error) {
	return readString(r)
}

// WritePoints writes a points family: tag, Entity base, pcoord.
func WritePoints(w io.Writer, p *mesh.Points) error {
	if err := writeTag(w, "points"); err != nil {
		return err
	}
	if err := writeEntityBase(w, p.Entity); err != nil {
		return err
	}
	return writeVec3Vector(w, *p.Coord())
}

// ReadPoints reads a points family back into a freshly constructed Points
// family already wired to m (via mesh.New).
func ReadPoints(r io.Reader, p *mesh.Points) error {
	if _, err := readTag(r); err != nil {
		return err
	}
	if err := readEntityBase(r, p.Entity); err != nil {
		return err
	}
	coord, err := readVec3Vector(r)
	if err != nil {
		return err
	}
	*p.Coord() = coord
	return nil
}

func WriteEdges(w io.Writer, e *mesh.Edges) error {
	if err := writeTag(w, "edges"); err != nil {
		return err
	}
	if err := writeEntityBase(w, e.Entity); err != nil {
		return err
	}
	if err := writeIntVector(w, *e.P1()); err != nil {
		return err
	}
	return writeIntVector(w, *e.P2())
}

func ReadEdges(r io.Reader, e *mesh.Edges) error {
	if _, err := readTag(r); err != nil {
		return err
	}
	if err := readEntityBase(r, e.Entity); err != nil {
		return err
	}
	p1, err := readIntVector(r)
	if err != nil {
		return err
	}
	p2, err := readIntVector(r)
	if err != nil {
		return err
	}
	*e.P1() = p1
	*e.P2() = p2
	return nil
}

func WriteFaces(w io.Writer, f *mesh.Faces) error {
	if err := writeTag(w, "faces"); err != nil {
		return err
	}
	if err := writeEntityBase(w, f.Entity); err != nil {
		return err
	}
	if err := writeIntVector(w, *f.Z1()); err != nil {
		return err
	}
	return writeIntVector(w, *f.Z2())
}

func ReadFaces(r io.Reader, f *mesh.Faces) error {
	if _, err := readTag(r); err != nil {
		return err
	}
	if err := readEntityBase(r, f.Entity); err != nil {
		return err
	}
	z1, err := readIntVector(r)
	if err != nil {
		return err
	}
	z2, err := readIntVector(r)
	if err != nil {
		return err
	}
	*f.Z1() = z1
	*f.Z2() = z2
	return nil
}

var sideMapAccessors = []func(*mesh.Sides) *[]int{
	(*mesh.Sides).Z,
	(*mesh.Sides).E,
	(*mesh.Sides).P1,
	(*mesh.Sides).P2,
	(*mesh.Sides).F,
	(*mesh.Sides).C1,
	(*mesh.Sides).C2,
	(*mesh.Sides).S2,
	(*mesh.Sides).S3,
	(*mesh.Sides).S4,
	(*mesh.Sides).S5,
}

func WriteSides(w io.Writer, s *mesh.Sides) error {
	if err := writeTag(w, "sides"); err != nil {
		return err
	}
	if err := writeEntityBase(w, s.Entity); err != nil {
		return err
	}
	for _, accessor := range sideMapAccessors {
		if err := writeIntVector(w, *accessor(s)); err != nil {
			return err
		}
	}
	return nil
}

func ReadSides(r io.Reader, s *mesh.Sides) error {
	if _, err := readTag(r); err != nil {
		return err
	}
	if err := readEntityBase(r, s.Entity); err != nil {
		return err
	}
	for _, accessor := range sideMapAccessors {
		v, err := readIntVector(r)
		if err != nil {
			return err
		}
		*accessor(s) = v
	}
	return nil
}

func WriteCorners(w io.Writer, c *mesh.Corners) error {
	if err := writeEntityBase(w, c.Entity); err != nil {
		return err
	}
	if err := writeIntVector(w, *c.P()); err != nil {
		return err
	}
	return writeIntVector(w, *c.Z())
}

func ReadCorners(r io.Reader, c *mesh.Corners) error {
	if err := readEntityBase(r, c.Entity); err != nil {
		return err
	}
	p, err := readIntVector(r)
	if err != nil {
		return err
	}
	z, err := readIntVector(r)
	if err != nil {
		return err
	}
	*c.P() = p
	*c.Z() = z
	return nil
}

func WriteZones(w io.Writer, z *mesh.Zones) error {
	return writeEntityBase(w, z.Entity)
}

func ReadZones(r io.Reader, z *mesh.Zones) error {
	return readEntityBase(r, z.Entity)
}

var iotaMapAccessors = []func(*mesh.Iotas) *[]int{
	(*mesh.Iotas).Z,
	(*mesh.Iotas).F,
	(*mesh.Iotas).P,
	(*mesh.Iotas).E,
	(*mesh.Iotas).S,
}

func WriteIotas(w io.Writer, a *mesh.Iotas) error {
	if err := writeEntityBase(w, a.Entity); err != nil {
		return err
	}
	for _, accessor := range iotaMapAccessors {
		if err := writeIntVector(w, *accessor(a)); err != nil {
			return err
		}
	}
	return nil
}

func ReadIotas(r io.Reader, a *mesh.Iotas) error {
	if err := readEntityBase(r, a.Entity); err != nil {
		return err
	}
	for _, accessor := range iotaMapAccessors {
		v, err := readIntVector(r)
		if err != nil {
			return err
		}
		*accessor(a) = v
	}
	return nil
}
