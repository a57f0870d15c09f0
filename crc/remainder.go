package crc

// Bit-by-bit division. Each variant is selected once per call:
//
//   - reflected input: the polynomial is reflected and the remainder shifts
//     right, testing bit 0.
//   - normal input, width >= 8: bytes enter at bit width-8 and the remainder
//     shifts left, testing bit width-1.
//   - normal input, width < 8: remainder and polynomial are shifted up so the
//     top of the CRC sits at bit 7, and shifted back down before returning.
//
// Bits above the width are not masked here; finalize does that.

// calculateRemainder folds every byte of data into remainder.
func calculateRemainder[T Unsigned](data []byte, p *Parameters[T], remainder T, branchless bool) T {
	right, left := shiftRight[T], shiftLeft[T]
	if branchless {
		right, left = shiftRightBranchless[T], shiftLeftBranchless[T]
	}

	switch {
	case p.reflectInput:
		polynomial := Reflect(p.polynomial, p.width)
		for _, b := range data {
			remainder = right(remainder^T(b), polynomial, 8)
		}
	case p.width >= 8:
		shift := p.width - 8
		for _, b := range data {
			remainder = left(remainder^T(b)<<shift, p.polynomial, p.width-1, 8)
		}
	default:
		shift := 8 - p.width
		polynomial := p.polynomial << shift
		remainder <<= shift
		for _, b := range data {
			remainder = left(remainder^T(b), polynomial, 7, 8)
		}
		remainder >>= shift
	}

	return remainder
}

// calculateRemainderBits folds the leading numBits (1-7) bits of b into
// remainder. For reflected input the leading bits are the least significant.
func calculateRemainderBits[T Unsigned](b byte, numBits int, p *Parameters[T], remainder T, branchless bool) T {
	right, left := shiftRight[T], shiftLeft[T]
	if branchless {
		right, left = shiftRightBranchless[T], shiftLeftBranchless[T]
	}

	switch {
	case p.reflectInput:
		remainder = right(remainder^T(b), Reflect(p.polynomial, p.width), numBits)
	case p.width >= 8:
		remainder = left(remainder^T(b)<<(p.width-8), p.polynomial, p.width-1, numBits)
	default:
		shift := 8 - p.width
		remainder = left(remainder<<shift^T(b), p.polynomial<<shift, 7, numBits)
		remainder >>= shift
	}

	return remainder
}

func shiftRight[T Unsigned](remainder, polynomial T, n int) T {
	for i := 0; i < n; i++ {
		if remainder&1 != 0 {
			remainder = remainder>>1 ^ polynomial
		} else {
			remainder >>= 1
		}
	}
	return remainder
}

func shiftRightBranchless[T Unsigned](remainder, polynomial T, n int) T {
	for i := 0; i < n; i++ {
		remainder = remainder>>1 ^ remainder&1*polynomial
	}
	return remainder
}

// shiftLeft tests bit topBit before each shift.
func shiftLeft[T Unsigned](remainder, polynomial T, topBit, n int) T {
	top := T(1) << topBit
	for i := 0; i < n; i++ {
		if remainder&top != 0 {
			remainder = remainder<<1 ^ polynomial
		} else {
			remainder <<= 1
		}
	}
	return remainder
}

func shiftLeftBranchless[T Unsigned](remainder, polynomial T, topBit, n int) T {
	for i := 0; i < n; i++ {
		remainder = remainder<<1 ^ remainder>>topBit&1*polynomial
	}
	return remainder
}
