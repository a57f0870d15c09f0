package crc

// Reflect reverses the order of the low numBits bits of value. Bits above
// numBits are discarded.
func Reflect[T Unsigned](value T, numBits int) (reversed T) {
	for i := 0; i < numBits; i++ {
		reversed = reversed<<1 | value&1
		value >>= 1
	}
	return
}
