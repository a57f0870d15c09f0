package lfsr

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"testing/quick"

	"github.com/bemasher/crcsum/crc"
)

func TestNOP(t *testing.T) {
	reg := NewRegister(0x6F63, 16)
	checksum := reg.Encode(strings.Repeat("0", 80))
	if checksum != 0 {
		t.Fatalf("Expected: %d Got: %d\n", 0, checksum)
	}
}

type BitString string

// Generate a random bitstring of up to 128 bits.
func (bs BitString) Generate(rand *rand.Rand, size int) reflect.Value {
	var bits strings.Builder
	n := rand.Intn(128)
	for i := 0; i < n; i++ {
		if rand.Intn(2) == 1 {
			bits.WriteByte('1')
		} else {
			bits.WriteByte('0')
		}
	}

	return reflect.ValueOf(BitString(bits.String()))
}

// Checksum a random bitstring, append the checksum and recalculate, result
// should be zero.
func TestIdentity(t *testing.T) {
	reg := NewRegister(0x1021, 16)

	err := quick.Check(func(bs BitString) bool {
		bits := string(bs)
		checksum := reg.Checksum(bits)

		data := make([]byte, 2)
		data[0], data[1] = byte(checksum>>8), byte(checksum)

		return reg.Checksum(bits+UnpackBits(data, 16)) == 0
	}, nil)

	if err != nil {
		t.Fatal("Error testing identity:", err)
	}
}

func TestPackBits(t *testing.T) {
	err := quick.Check(func(bs BitString) bool {
		data, nbits, err := PackBits(string(bs))
		if err != nil || nbits != len(bs) || len(data) != (nbits+7)/8 {
			return false
		}
		return UnpackBits(data, nbits) == string(bs)
	}, nil)

	if err != nil {
		t.Fatal("Error testing pack:", err)
	}

	if _, _, err := PackBits("0110x"); err == nil {
		t.Fatal("expected error for invalid bit string")
	}

	data, nbits, _ := PackBits("1111")
	if nbits != 4 || len(data) != 1 || data[0] != 0xF0 {
		t.Fatalf("expected F0/4 got %02X/%d\n", data, nbits)
	}
}

// The bit-serial register agrees with the engine on messages of any bit
// length, for every non-reflected width.
func TestEngine(t *testing.T) {
	rng := rand.New(rand.NewSource(rand.Int63()))

	for width := 1; width <= 64; width++ {
		mask := uint64(1)<<(width-1) | (uint64(1)<<(width-1) - 1)
		poly := rng.Uint64() & mask

		reg := NewRegister(poly, width)
		params := crc.MustParameters(width, poly, 0, 0, false, false)
		tbl := params.MakeTable()

		for trial := 0; trial < 32; trial++ {
			bits := string(BitString("").Generate(rng, 0).Interface().(BitString))
			data, nbits, err := PackBits(bits)
			if err != nil {
				t.Fatal(err)
			}

			expt := reg.Checksum(bits)
			if v := params.ChecksumBits(data, nbits); v != expt {
				t.Fatalf("%s %q: expected %X got %X\n", reg, bits, expt, v)
			}
			if v := tbl.ChecksumBits(data, nbits); v != expt {
				t.Fatalf("%s %q table: expected %X got %X\n", reg, bits, expt, v)
			}
		}
	}
}
