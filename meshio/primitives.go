// Package meshio implements the binary mesh file format: a direct
// translation of the original's write_bin/read_bin scalar/vector/string
// primitives plus per-family Entity and Mesh framing, little-endian
// throughout.
package meshio

import (
	"encoding/binary"
	"io"

	"github.com/sarchlab/ume/fault"
	"github.com/sarchlab/ume/ragged"
	"github.com/sarchlab/ume/vec3"
)

// writeScalar writes a single fixed-width value with no length prefix and no
// terminator, mirroring write_bin's scalar specialization.
func writeScalar(w io.Writer, v any) error {
	return binary.Write(w, binary.LittleEndian, v)
}

func readScalar(r io.Reader, v any) error {
	return binary.Read(r, binary.LittleEndian, v)
}

// newline writes the single '\n' byte that terminates every vector.
func newline(w io.Writer) error {
	_, err := w.Write([]byte{'\n'})
	return err
}

// expectNewline consumes one byte and aborts if it is not '\n': the original
// format is rigid about this, and a mismatch here means the reader has
// drifted out of sync with the writer.
func expectNewline(r io.Reader) error {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return err
	}
	if b[0] != '\n' {
		fault.Abortf("meshio", "expected vector terminator, got byte %d", b[0])
	}
	return nil
}

func writeLen(w io.Writer, n int) error {
	return writeScalar(w, int64(n))
}

func readLen(r io.Reader) (int, error) {
	var n int64
	if err := readScalar(r, &n); err != nil {
		return 0, err
	}
	return int(n), nil
}

// writeIntVector writes length + each element as int64 + a trailing '\n'.
func writeIntVector(w io.Writer, v []int) error {
	if err := writeLen(w, len(v)); err != nil {
		return err
	}
	for _, x := range v {
		if err := writeScalar(w, int64(x)); err != nil {
			return err
		}
	}
	return newline(w)
}

func readIntVector(r io.Reader) ([]int, error) {
	n, err := readLen(r)
	if err != nil {
		return nil, err
	}
	out := make([]int, n)
	for i := range out {
		var x int64
		if err := readScalar(r, &x); err != nil {
			return nil, err
		}
		out[i] = int(x)
	}
	return out, expectNewline(r)
}

func writeInt16Vector(w io.Writer, v []int16) error {
	if err := writeLen(w, len(v)); err != nil {
		return err
	}
	for _, x := range v {
		if err := writeScalar(w, x); err != nil {
			return err
		}
	}
	return newline(w)
}

func readInt16Vector(r io.Reader) ([]int16, error) {
	n, err := readLen(r)
	if err != nil {
		return nil, err
	}
	out := make([]int16, n)
	for i := range out {
		if err := readScalar(r, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, expectNewline(r)
}

func writeFloat64Vector(w io.Writer, v []float64) error {
	if err := writeLen(w, len(v)); err != nil {
		return err
	}
	for _, x := range v {
		if err := writeScalar(w, x); err != nil {
			return err
		}
	}
	return newline(w)
}

func readFloat64Vector(r io.Reader) ([]float64, error) {
	n, err := readLen(r)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		if err := readScalar(r, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, expectNewline(r)
}

func writeVec3Vector(w io.Writer, v []vec3.Vec3) error {
	if err := writeLen(w, len(v)); err != nil {
		return err
	}
	for _, x := range v {
		if err := writeScalar(w, x.X); err != nil {
			return err
		}
		if err := writeScalar(w, x.Y); err != nil {
			return err
		}
		if err := writeScalar(w, x.Z); err != nil {
			return err
		}
	}
	return newline(w)
}

func readVec3Vector(r io.Reader) ([]vec3.Vec3, error) {
	n, err := readLen(r)
	if err != nil {
		return nil, err
	}
	out := make([]vec3.Vec3, n)
	for i := range out {
		if err := readScalar(r, &out[i].X); err != nil {
			return nil, err
		}
		if err := readScalar(r, &out[i].Y); err != nil {
			return nil, err
		}
		if err := readScalar(r, &out[i].Z); err != nil {
			return nil, err
		}
	}
	return out, expectNewline(r)
}

// writeString writes a length-prefixed byte sequence with no terminator, the
// same framing the original uses for its std::string specialization.
func writeString(w io.Writer, s string) error {
	if err := writeLen(w, len(s)); err != nil {
		return err
	}
	_, err := w.Write([]byte(s))
	return err
}

func readString(r io.Reader) (string, error) {
	n, err := readLen(r)
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// writeIntRagged writes a Ragged[int]'s begin/end/data arrays in sequence.
func writeIntRagged(w io.Writer, r *ragged.Ragged[int]) error {
	if err := writeIntVector(w, r.Begin()); err != nil {
		return err
	}
	if err := writeIntVector(w, r.End()); err != nil {
		return err
	}
	return writeIntVector(w, r.Data())
}

func readIntRagged(rd io.Reader) (*ragged.Ragged[int], error) {
	begin, err := readIntVector(rd)
	if err != nil {
		return nil, err
	}
	end, err := readIntVector(rd)
	if err != nil {
		return nil, err
	}
	data, err := readIntVector(rd)
	if err != nil {
		return nil, err
	}
	out := ragged.New[int]()
	out.SetRaw(begin, end, data)
	return out, nil
}
