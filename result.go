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

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/bemasher/crcsum/crc"
	"github.com/bemasher/crcsum/lfsr"
	"github.com/bemasher/crcsum/preset"
)

// Result is the checksum of one input.
type Result struct {
	Name  string
	Width int
	Bits  int
	CRC   uint64
}

func (r Result) String() string {
	return fmt.Sprintf("0x%0*X  %s", (r.Width+3)/4, r.CRC, r.Name)
}

func (r Result) Record() []string {
	return []string{
		r.Name,
		strconv.Itoa(r.Bits),
		fmt.Sprintf("0x%0*X", (r.Width+3)/4, r.CRC),
	}
}

func (r Result) Header() []string {
	return []string{"name", "bits", "crc"}
}

// Preset is a catalog entry as listed by -list.
type Preset struct {
	preset.Entry
}

func (p Preset) Record() []string {
	digits := (p.Width + 3) / 4
	fmtHex := func(v uint64) string {
		return fmt.Sprintf("0x%0*X", digits, v)
	}

	return []string{
		p.Name,
		strconv.Itoa(p.Width),
		fmtHex(p.Poly),
		fmtHex(p.Init),
		strconv.FormatBool(p.RefIn),
		strconv.FormatBool(p.RefOut),
		fmtHex(p.XorOut),
		fmtHex(p.Check),
	}
}

func (p Preset) Header() []string {
	return []string{"name", "width", "poly", "init", "refin", "refout", "xorout", "check"}
}

// Input is a named message. Bits is negative when the whole message is
// checksummed.
type Input struct {
	Name string
	Bits int
	io.Reader
}

// HexInput decodes a hex string into an input.
func HexInput(s string, nbits int) (Input, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return Input{}, errors.Wrap(err, "decoding -hex")
	}
	return Input{"-hex", nbits, bytes.NewReader(data)}, nil
}

// BinaryInput packs a string of bits in transmission order. With reflected
// input the first bit sent is the least significant bit of each byte.
func BinaryInput(s string, reflected bool) (Input, error) {
	data, nbits, err := lfsr.PackBits(s)
	if err != nil {
		return Input{}, errors.Wrap(err, "decoding -binary")
	}

	if reflected {
		for idx, b := range data {
			data[idx] = crc.Reflect(b, 8)
		}
	}

	return Input{"-binary", nbits, bytes.NewReader(data)}, nil
}

// Summer checksums inputs with a single engine.
type Summer struct {
	crc.Checksummer[uint64]

	Width     int
	Reflected bool

	// Continue from Prev instead of starting a new checksum.
	Continue bool
	Prev     uint64
}

func NewSummer(c crc.Checksummer[uint64], p crc.Parameters[uint64]) *Summer {
	return &Summer{Checksummer: c, Width: p.Width(), Reflected: p.ReflectInput()}
}

func (s *Summer) start() uint64 {
	if s.Continue {
		return s.Prev
	}
	return s.Checksum(nil)
}

// Sum reads in and returns its checksum.
func (s *Summer) Sum(in Input) (Result, error) {
	res := Result{Name: in.Name, Width: s.Width, Bits: in.Bits}

	if in.Bits >= 0 {
		data, err := io.ReadAll(io.LimitReader(in, int64(in.Bits+7)>>3))
		if err != nil {
			return res, errors.Wrapf(err, "reading %s", in.Name)
		}
		if len(data)<<3 < in.Bits {
			return res, errors.Errorf("%s: have %d bits, want %d", in.Name, len(data)<<3, in.Bits)
		}

		// Unused bits of the last byte must be zero.
		if rem := in.Bits & 7; rem != 0 {
			if s.Reflected {
				data[len(data)-1] &= 1<<rem - 1
			} else {
				data[len(data)-1] &= 0xFF << (8 - rem)
			}
		}

		if s.Continue {
			res.CRC = s.UpdateBits(s.Prev, data, in.Bits)
		} else {
			res.CRC = s.ChecksumBits(data, in.Bits)
		}
		return res, nil
	}

	res.Bits = 0
	res.CRC = s.start()
	buf := make([]byte, 32<<10)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			res.CRC = s.Update(res.CRC, buf[:n])
			res.Bits += n << 3
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return res, errors.Wrapf(err, "reading %s", in.Name)
		}
	}
	return res, nil
}
