// Package crc implements parameterized cyclic redundancy checks of any width
// from 1 to 64 bits.
//
// A variant is described by Parameters: the generator polynomial, the initial
// remainder, the final XOR mask and the input/output reflection flags. The
// storage type T must be at least width bits wide, which is checked once when
// the Parameters are constructed. Checksums are computed either bit by bit
// directly from the Parameters or a byte at a time from a precomputed Table.
// Parameters and Tables are immutable and may be shared between goroutines.
package crc

import (
	"fmt"
	"math/bits"

	"github.com/pkg/errors"
)

// Unsigned is the set of storage types a checksum may be held in.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// ErrWidth is returned when a checksum width does not fit its storage type.
var ErrWidth = errors.New("crc: invalid width")

// Parameters describes one CRC variant. The zero value is not usable, create
// one with NewParameters or MustParameters.
type Parameters[T Unsigned] struct {
	width         int
	polynomial    T
	initialValue  T
	finalXOR      T
	reflectInput  bool
	reflectOutput bool
}

// NewParameters returns the parameters of a width-bit CRC. Polynomial is given
// in normal form with the implicit top bit omitted.
func NewParameters[T Unsigned](width int, polynomial, initialValue, finalXOR T, reflectInput, reflectOutput bool) (p Parameters[T], err error) {
	if n := storageBits[T](); width < 1 || width > n {
		err = errors.Wrapf(ErrWidth, "width %d does not fit %d-bit storage", width, n)
		return
	}

	p.width = width
	p.polynomial = polynomial
	p.initialValue = initialValue
	p.finalXOR = finalXOR
	p.reflectInput = reflectInput
	p.reflectOutput = reflectOutput

	return
}

// MustParameters is like NewParameters but panics on an invalid width. It
// simplifies initialization of package level variables.
func MustParameters[T Unsigned](width int, polynomial, initialValue, finalXOR T, reflectInput, reflectOutput bool) Parameters[T] {
	p, err := NewParameters(width, polynomial, initialValue, finalXOR, reflectInput, reflectOutput)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Parameters[T]) Width() int { return p.width }
func (p Parameters[T]) Polynomial() T { return p.polynomial }
func (p Parameters[T]) InitialValue() T { return p.initialValue }
func (p Parameters[T]) FinalXOR() T { return p.finalXOR }
func (p Parameters[T]) ReflectInput() bool { return p.reflectInput }
func (p Parameters[T]) ReflectOutput() bool { return p.reflectOutput }

func (p Parameters[T]) String() string {
	digits := (p.width + 3) / 4
	return fmt.Sprintf("{Width:%d Poly:0x%0*X Init:0x%0*X XorOut:0x%0*X RefIn:%t RefOut:%t}",
		p.width,
		digits, uint64(p.polynomial),
		digits, uint64(p.initialValue),
		digits, uint64(p.finalXOR),
		p.reflectInput, p.reflectOutput,
	)
}

// MakeTable builds the lookup table for p.
func (p Parameters[T]) MakeTable() *Table[T] {
	return NewTable(p)
}

// Checksum returns the CRC of data.
func (p Parameters[T]) Checksum(data []byte) T {
	return p.ChecksumBits(data, len(data)*8)
}

// Update returns the result of extending a message whose checksum is crc by
// data.
func (p Parameters[T]) Update(crc T, data []byte) T {
	return p.UpdateBits(crc, data, len(data)*8)
}

// ChecksumBits returns the CRC of the first nbits bits of data. Any bits of
// the final byte past nbits must be zero. It panics unless
// 0 <= nbits <= 8*len(data).
func (p Parameters[T]) ChecksumBits(data []byte, nbits int) T {
	return calculate(&p, p.initialValue, data, nbits, p.remainder)
}

// UpdateBits is like Update but only consumes the first nbits bits of data,
// with the same bounds as ChecksumBits.
func (p Parameters[T]) UpdateBits(crc T, data []byte, nbits int) T {
	return calculate(&p, undoFinalize(crc, p.finalXOR, p.reflectOutputStep(), p.width), data, nbits, p.remainder)
}

func (p *Parameters[T]) remainder(data []byte, remainder T) T {
	return calculateRemainder(data, p, remainder, false)
}

// The remainder of a reflected-input CRC is already bit reversed, so the
// output is only reflected again when the two flags disagree.
func (p *Parameters[T]) reflectOutputStep() bool {
	return p.reflectInput != p.reflectOutput
}

func (p *Parameters[T]) mask() T {
	return widthMask[T](p.width)
}

// Checksummer is implemented by both Parameters and *Table.
type Checksummer[T Unsigned] interface {
	Checksum(data []byte) T
	Update(crc T, data []byte) T
	ChecksumBits(data []byte, nbits int) T
	UpdateBits(crc T, data []byte, nbits int) T
}

var (
	_ Checksummer[uint8]  = Parameters[uint8]{}
	_ Checksummer[uint64] = (*Table[uint64])(nil)
)

// calculate runs whole bytes through the supplied engine and any trailing
// partial byte through the bit-by-bit engine, then finalizes.
func calculate[T Unsigned](p *Parameters[T], remainder T, data []byte, nbits int, whole func([]byte, T) T) T {
	if nbits < 0 || nbits > len(data)*8 {
		panic(fmt.Sprintf("crc: nbits %d out of range [0, %d]", nbits, len(data)*8))
	}

	if n := nbits / 8; n > 0 {
		remainder = whole(data[:n], remainder)
	}

	if tail := nbits % 8; tail != 0 {
		remainder = calculateRemainderBits(data[nbits/8], tail, p, remainder, false)
	}

	return finalize(remainder, p.finalXOR, p.reflectOutputStep(), p.width)
}

func storageBits[T Unsigned]() int {
	return bits.Len64(uint64(^T(0)))
}

func widthMask[T Unsigned](width int) T {
	top := T(1) << (width - 1)
	return top | (top - 1)
}
