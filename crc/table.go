package crc

// Table holds a set of Parameters and the remainder of every possible input
// byte under them, so that checksums take one lookup per byte.
type Table[T Unsigned] struct {
	params  Parameters[T]
	entries [256]T
}

// NewTable builds the lookup table for p.
func NewTable[T Unsigned](p Parameters[T]) *Table[T] {
	return buildTable(p, true)
}

// buildTable runs each byte through the bit-by-bit engine from a zero
// remainder. Entries for normal input narrower than a byte are stored shifted
// up to the top of the byte, matching the alignment the table engine uses.
func buildTable[T Unsigned](p Parameters[T], masked bool) *Table[T] {
	tbl := &Table[T]{params: p}

	mask := p.mask()
	for idx := range tbl.entries {
		crc := calculateRemainder([]byte{byte(idx)}, &tbl.params, 0, false)
		if masked {
			crc &= mask
		}

		if !p.reflectInput && p.width < 8 {
			crc <<= 8 - p.width
		}

		tbl.entries[idx] = crc
	}

	return tbl
}

// Parameters returns the parameters the table was built from.
func (tbl *Table[T]) Parameters() Parameters[T] {
	return tbl.params
}

// Entry returns the table entry for b.
func (tbl *Table[T]) Entry(b byte) T {
	return tbl.entries[b]
}

func (tbl *Table[T]) Checksum(data []byte) T {
	return tbl.ChecksumBits(data, len(data)*8)
}

func (tbl *Table[T]) Update(crc T, data []byte) T {
	return tbl.UpdateBits(crc, data, len(data)*8)
}

// ChecksumBits returns the CRC of the first nbits bits of data. Whole bytes are
// looked up in the table, a trailing partial byte is computed bit by bit. It
// panics unless 0 <= nbits <= 8*len(data).
func (tbl *Table[T]) ChecksumBits(data []byte, nbits int) T {
	p := &tbl.params
	return calculate(p, p.initialValue, data, nbits, tbl.remainder)
}

func (tbl *Table[T]) UpdateBits(crc T, data []byte, nbits int) T {
	p := &tbl.params
	return calculate(p, undoFinalize(crc, p.finalXOR, p.reflectOutputStep(), p.width), data, nbits, tbl.remainder)
}

// remainder is the byte-at-a-time counterpart of calculateRemainder.
func (tbl *Table[T]) remainder(data []byte, remainder T) T {
	p := &tbl.params

	switch {
	case p.reflectInput:
		for _, b := range data {
			remainder = remainder>>8 ^ tbl.entries[byte(remainder)^b]
		}
	case p.width >= 8:
		shift := p.width - 8
		for _, b := range data {
			remainder = remainder<<8 ^ tbl.entries[byte(remainder>>shift)^b]
		}
	default:
		shift := 8 - p.width
		remainder <<= shift
		for _, b := range data {
			// The remainder fits in a byte here.
			remainder = tbl.entries[byte(remainder)^b]
		}
		remainder >>= shift
	}

	return remainder
}
