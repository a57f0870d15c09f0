package crc

import "hash"

type digest[T Unsigned] struct {
	crc T
	tbl *Table[T]
}

// NewHash returns a hash.Hash64 computing the checksum described by tbl.
func NewHash[T Unsigned](tbl *Table[T]) hash.Hash64 {
	d := &digest[T]{tbl: tbl}
	d.Reset()
	return d
}

// NewHashFrom is like NewHash but continues from prev, the checksum of data
// already written elsewhere. Bits of prev above the width are ignored. Reset
// still returns to the empty message.
func NewHashFrom[T Unsigned](prev T, tbl *Table[T]) hash.Hash64 {
	return &digest[T]{prev & widthMask[T](tbl.params.width), tbl}
}

// Size is the number of bytes needed to hold the checksum.
func (d *digest[T]) Size() int { return (d.tbl.params.width + 7) / 8 }

func (d *digest[T]) BlockSize() int { return 1 }

func (d *digest[T]) Reset() { d.crc = d.tbl.Checksum(nil) }

func (d *digest[T]) Write(p []byte) (n int, err error) {
	d.crc = d.tbl.Update(d.crc, p)
	return len(p), nil
}

func (d *digest[T]) Sum64() uint64 { return uint64(d.crc) }

// Sum appends the checksum to in, big endian.
func (d *digest[T]) Sum(in []byte) []byte {
	s := uint64(d.crc)
	for shift := (d.Size() - 1) * 8; shift >= 0; shift -= 8 {
		in = append(in, byte(s>>shift))
	}
	return in
}
