// crcsum - A parameterized CRC calculator.
// Copyright (C) 2015 Douglas Hall
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

/*
crcsum computes cyclic redundancy checks of files, stdin or inline messages
using any CRC of width 1 through 64.

Usage:

	crcsum [flags] [file ...]

With no files and no inline message, stdin is read.

	-preset="CRC-32"

Selects a named CRC variant. Names are matched ignoring case and punctuation,
so crc32, CRC-32 and crc_32 are equivalent. Use -list to print every variant
with its parameters and check value, the checksum of the ASCII string
"123456789".

	-width=0 -poly=0x0 -init=0x0 -xorout=0x0 -refin=false -refout=false

Describes a custom CRC, used instead of -preset when width is non-zero. The
polynomial omits its implicit top bit. The initial value is loaded into the
register as given, so for reflected input it is the reflection of the value
most catalogs list. Values are hex with an optional 0x prefix, binary with a
0b prefix or octal with a 0o prefix.

	-bits=-1

Checksums only the first n bits of each input. For reflected input the bits
of a partial final byte are taken from its least significant end, otherwise
from its most significant end.

	-prev=0x0

Continues a checksum. The result equals the checksum of the message that
produced prev followed by this input.

	-hex="" -binary=""

Checksums an inline message instead of files. Binary messages are given in
transmission order, one character per bit.

	-engine="table"

Selects the table driven engine or the bit-by-bit engine. Both produce the
same checksums.

	-format="plain"

Sets the result output format: plain, csv, json or xml. Plain text results are
formatted as:

	0xCBF43926  file.bin

Csv records hold the name, bit count and checksum, preceded by a header line
when -header is set. For json and xml output each line is an element, there is
no root node.

	-loglevel="info"

Sets the level of log messages written to stderr.

Every flag may also be set by an environment variable named CRCSUM_ followed by
the upper case flag name, for example CRCSUM_PRESET=crc-16/modbus. Command line
flags take precedence.
*/
package main
