// Implements a bit-serial linear feedback shift register over strings of
// bits, and conversions between bit strings and packed bytes.
package lfsr

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

// Register divides a stream of bits by a generator polynomial.
type Register struct {
	GenPoly uint64 // Normal form, top bit implicit.
	PolyLen byte
}

// Given a normal form polynomial and its degree.
func NewRegister(poly uint64, degree int) (reg Register) {
	reg.GenPoly = poly
	reg.PolyLen = byte(degree)
	return
}

func (reg Register) String() string {
	return fmt.Sprintf("{GenPoly:%X PolyLen:%d}", reg.GenPoly, reg.PolyLen)
}

// Encode returns the remainder of the message polynomial given as a string of
// bits (0, 1), most significant first, after dividing by the generator. The
// message is not augmented: append PolyLen zeros to get a CRC.
func (reg Register) Encode(bits string) (checksum uint64) {
	top := uint64(1) << (reg.PolyLen - 1)
	mask := top | (top - 1)

	for idx := range bits {
		// Shift in the next bit, if the bit shifted out was set XOR with the
		// generator polynomial.
		out := checksum&top != 0
		checksum = checksum<<1 & mask
		if bits[idx] == '1' {
			checksum |= 1
		}
		if out {
			checksum ^= reg.GenPoly
		}
	}

	return
}

// Checksum is Encode with the message augmented by PolyLen zero bits.
func (reg Register) Checksum(bits string) uint64 {
	return reg.Encode(bits + strings.Repeat("0", int(reg.PolyLen)))
}

// UnpackBits returns the first nbits of data as a string of bits, most
// significant bit of each byte first.
func UnpackBits(data []byte, nbits int) string {
	var b strings.Builder
	for _, v := range data {
		fmt.Fprintf(&b, "%08b", v)
	}
	return b.String()[:nbits]
}

// PackBits packs a string of bits into bytes, most significant bit first,
// padding the final byte with zeros. It returns the packed bytes and the bit
// count.
func PackBits(bits string) (data []byte, nbits int, err error) {
	nbits = len(bits)
	padded := bits + strings.Repeat("0", (8-nbits%8)%8)

	data = make([]byte, len(padded)>>3)
	for idx := 0; idx < len(padded); idx += 8 {
		b, parseErr := strconv.ParseUint(padded[idx:idx+8], 2, 8)
		if parseErr != nil {
			return nil, 0, xerrors.Errorf("invalid bit string at %d: %w", idx, parseErr)
		}
		data[idx>>3] = uint8(b)
	}

	return data, nbits, nil
}
