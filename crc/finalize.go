package crc

// finalize converts a raw remainder into the externally visible checksum.
func finalize[T Unsigned](remainder, finalXOR T, reflect bool, width int) T {
	if reflect {
		remainder = Reflect(remainder, width)
	}
	return (remainder ^ finalXOR) & widthMask[T](width)
}

// undoFinalize is the inverse of finalize for remainders confined to width.
func undoFinalize[T Unsigned](crc, finalXOR T, reflect bool, width int) T {
	crc = crc&widthMask[T](width) ^ finalXOR
	if reflect {
		crc = Reflect(crc, width)
	}
	return crc
}
