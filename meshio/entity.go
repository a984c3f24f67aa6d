package meshio

import (
	"io"

	"github.com/sarchlab/ume/comm"
	"github.com/sarchlab/ume/mesh"
)

// writeNeighbor writes one (pe, elements) pair.
func writeNeighbor(w io.Writer, n comm.Neighbor) error {
	if err := writeScalar(w, int64(n.PE)); err != nil {
		return err
	}
	return writeIntVector(w, n.Elements)
}

func readNeighbor(r io.Reader) (comm.Neighbor, error) {
	var pe int64
	if err := readScalar(r, &pe); err != nil {
		return comm.Neighbor{}, err
	}
	elems, err := readIntVector(r)
	if err != nil {
		return comm.Neighbor{}, err
	}
	return comm.Neighbor{PE: int(pe), Elements: elems}, nil
}

// writeNeighbors writes a length-prefixed list of neighbors, one per the
// original's Comm::Neighbors::write.
func writeNeighbors(w io.Writer, ns comm.Neighbors) error {
	if err := writeLen(w, len(ns)); err != nil {
		return err
	}
	for _, n := range ns {
		if err := writeNeighbor(w, n); err != nil {
			return err
		}
	}
	return newline(w)
}

func readNeighbors(r io.Reader) (comm.Neighbors, error) {
	n, err := readLen(r)
	if err != nil {
		return nil, err
	}
	out := make(comm.Neighbors, n)
	for i := range out {
		out[i], err = readNeighbor(r)
		if err != nil {
			return nil, err
		}
	}
	return out, expectNewline(r)
}

func writeSubset(w io.Writer, s mesh.Subset) error {
	if err := writeString(w, s.Name); err != nil {
		return err
	}
	if err := writeScalar(w, int64(s.Lsize)); err != nil {
		return err
	}
	if err := writeIntVector(w, s.Elements); err != nil {
		return err
	}
	return writeInt16Vector(w, s.Mask)
}

func readSubset(r io.Reader) (mesh.Subset, error) {
	name, err := readString(r)
	if err != nil {
		return mesh.Subset{}, err
	}
	var lsize int64
	if err := readScalar(r, &lsize); err != nil {
		return mesh.Subset{}, err
	}
	elems, err := readIntVector(r)
	if err != nil {
		return mesh.Subset{}, err
	}
	mask, err := readInt16Vector(r)
	if err != nil {
		return mesh.Subset{}, err
	}
	return mesh.Subset{Name: name, Lsize: int(lsize), Elements: elems, Mask: mask}, nil
}

func writeSubsets(w io.Writer, subsets []mesh.Subset) error {
	if err := writeLen(w, len(subsets)); err != nil {
		return err
	}
	for _, s := range subsets {
		if err := writeSubset(w, s); err != nil {
			return err
		}
	}
	return nil
}

func readSubsets(r io.Reader) ([]mesh.Subset, error) {
	n, err := readLen(r)
	if err != nil {
		return nil, err
	}
	out := make([]mesh.Subset, n)
	for i := range out {
		out[i], err = readSubset(r)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// writeEntityBase writes the fields every family shares, in the order
// SOA_Entity.cc's Entity::write uses: lsize, mask, comm_type, cpy_idx,
// src_pe, src_idx, ghost_mask, myCpys, mySrcs, subsets.
func writeEntityBase(w io.Writer, e *mesh.Entity) error {
	if err := writeScalar(w, int64(e.Lsize)); err != nil {
		return err
	}
	if err := writeInt16Vector(w, e.Mask); err != nil {
		return err
	}
	commType := make([]int16, len(e.CommType))
	for i, c := range e.CommType {
		commType[i] = int16(c)
	}
	if err := writeInt16Vector(w, commType); err != nil {
		return err
	}
	if err := writeIntVector(w, e.CpyIdx); err != nil {
		return err
	}
	if err := writeIntVector(w, e.SrcPe); err != nil {
		return err
	}
	if err := writeIntVector(w, e.SrcIdx); err != nil {
		return err
	}
	if err := writeInt16Vector(w, e.GhostMask); err != nil {
		return err
	}
	if err := writeNeighbors(w, e.MyCpys); err != nil {
		return err
	}
	if err := writeNeighbors(w, e.MySrcs); err != nil {
		return err
	}
	return writeSubsets(w, e.Subsets)
}

// readEntityBase reads the fields writeEntityBase wrote into a freshly built
// Entity (the caller supplies one already linked to its Mesh/DS via
// mesh.NewEntity, since Lsize/Resize must come before any family-specific
// raw maps are read).
func readEntityBase(r io.Reader, e *mesh.Entity) error {
	var lsize int64
	if err := readScalar(r, &lsize); err != nil {
		return err
	}
	mask, err := readInt16Vector(r)
	if err != nil {
		return err
	}
	commType16, err := readInt16Vector(r)
	if err != nil {
		return err
	}
	cpyIdx, err := readIntVector(r)
	if err != nil {
		return err
	}
	srcPe, err := readIntVector(r)
	if err != nil {
		return err
	}
	srcIdx, err := readIntVector(r)
	if err != nil {
		return err
	}
	ghostMask, err := readInt16Vector(r)
	if err != nil {
		return err
	}
	myCpys, err := readNeighbors(r)
	if err != nil {
		return err
	}
	mySrcs, err := readNeighbors(r)
	if err != nil {
		return err
	}
	subsets, err := readSubsets(r)
	if err != nil {
		return err
	}

	e.Lsize = int(lsize)
	e.Mask = mask
	e.CommType = make([]mesh.CommType, len(commType16))
	for i, c := range commType16 {
		e.CommType[i] = mesh.CommType(c)
	}
	e.CpyIdx = cpyIdx
	e.SrcPe = srcPe
	e.SrcIdx = srcIdx
	e.GhostMask = ghostMask
	e.MyCpys = myCpys
	e.MySrcs = mySrcs
	e.Subsets = subsets
	return nil
}
