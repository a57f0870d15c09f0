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

// Package preset is a catalog of named, commonly used CRC variants.
package preset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/bemasher/crcsum/crc"
)

// ErrUnknown is returned by Lookup for names not in the catalog.
var ErrUnknown = errors.New("preset: unknown crc")

// Entry describes a named CRC variant and its check value.
type Entry struct {
	Name   string
	Width  int
	Poly   uint64
	Init   uint64
	XorOut uint64
	RefIn  bool
	RefOut bool
	Check  uint64
}

func (e Entry) String() string {
	digits := (e.Width + 3) / 4
	return fmt.Sprintf("{Name:%s Width:%d Poly:0x%0*X Init:0x%0*X RefIn:%t RefOut:%t XorOut:0x%0*X Check:0x%0*X}",
		e.Name, e.Width,
		digits, e.Poly,
		digits, e.Init,
		e.RefIn, e.RefOut,
		digits, e.XorOut,
		digits, e.Check,
	)
}

// Parameters returns the entry's parameters in 64-bit storage, which holds
// every entry.
func (e Entry) Parameters() crc.Parameters[uint64] {
	return crc.MustParameters(e.Width, e.Poly, e.Init, e.XorOut, e.RefIn, e.RefOut)
}

// As returns the entry's parameters in storage type T, failing if T is too
// narrow for the entry's width.
func As[T crc.Unsigned](e Entry) (crc.Parameters[T], error) {
	p, err := crc.NewParameters(e.Width, T(e.Poly), T(e.Init), T(e.XorOut), e.RefIn, e.RefOut)
	if err != nil {
		return p, errors.Wrap(err, e.Name)
	}
	return p, nil
}

// Catalog returns every entry, ordered by width then name.
func Catalog() []Entry {
	entries := make([]Entry, len(catalog))
	copy(entries, catalog)

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Width != entries[j].Width {
			return entries[i].Width < entries[j].Width
		}
		return entries[i].Name < entries[j].Name
	})

	return entries
}

var index = make(map[string]int, len(catalog))

func init() {
	for idx, e := range catalog {
		key := normalize(e.Name)
		if _, dup := index[key]; dup {
			panic(fmt.Sprintf("preset: duplicate entry (%s)", e.Name))
		}
		index[key] = idx
	}
}

// Lookup finds an entry by name. Case and punctuation are ignored, so
// "crc32", "CRC-32" and "crc_32" name the same entry.
func Lookup(name string) (Entry, error) {
	if idx, exists := index[normalize(name)]; exists {
		return catalog[idx], nil
	}
	return Entry{}, errors.Wrapf(ErrUnknown, "%q", name)
}

func normalize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z':
			return r - 'a' + 'A'
		case 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
			return r
		}
		return -1
	}, name)
}

// Common variants in their natural storage types.
var (
	CRC4ITU         = crc.MustParameters[uint8](4, 0x3, 0x0, 0x0, true, true)
	CRC8            = crc.MustParameters[uint8](8, 0x07, 0x00, 0x00, false, false)
	CRC16ARC        = crc.MustParameters[uint16](16, 0x8005, 0x0000, 0x0000, true, true)
	CRC16CCITTFalse = crc.MustParameters[uint16](16, 0x1021, 0xFFFF, 0x0000, false, false)
	CRC16XModem     = crc.MustParameters[uint16](16, 0x1021, 0x0000, 0x0000, false, false)
	CRC16Modbus     = crc.MustParameters[uint16](16, 0x8005, 0xFFFF, 0x0000, true, true)
	CRC32           = crc.MustParameters[uint32](32, 0x04C11DB7, 0xFFFFFFFF, 0xFFFFFFFF, true, true)
	CRC32C          = crc.MustParameters[uint32](32, 0x1EDC6F41, 0xFFFFFFFF, 0xFFFFFFFF, true, true)
	CRC32BZIP2      = crc.MustParameters[uint32](32, 0x04C11DB7, 0xFFFFFFFF, 0xFFFFFFFF, false, false)
	CRC64           = crc.MustParameters[uint64](64, 0x42F0E1EBA9EA3693, 0x0, 0x0, false, false)
)
