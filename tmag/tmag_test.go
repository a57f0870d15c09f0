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

package tmag

import (
	"encoding/binary"
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"golang.org/x/xerrors"

	"github.com/bemasher/crcsum/crc"
)

func TestTxFrame(t *testing.T) {
	for _, tc := range []struct {
		frame TxFrame
		want  uint32
	}{
		{TxFrame{Read: true, Address: AFEStatus}, 0x8D000001},
		{TxFrame{Address: TestConfig, Data: 0x0004}, 0x0F000407},
		{TxFrame{Read: true, Address: XChResult, Command: StartConversion}, 0x89000015},
		{TxFrame{Address: DeviceConfig, Data: 0x1234}, 0x00123400},
	} {
		buf, err := tc.frame.MarshalBinary()
		if err != nil {
			t.Fatalf("%s: %+v", tc.frame, err)
		}
		if got := binary.BigEndian.Uint32(buf); got != tc.want {
			t.Errorf("%s: expected 0x%08X got 0x%08X", tc.frame, tc.want, got)
		}

		var frame TxFrame
		if err := frame.UnmarshalBinary(buf); err != nil {
			t.Fatalf("%s: %+v", tc.frame, err)
		}
		if frame != tc.frame {
			t.Errorf("expected %s got %s", tc.frame, frame)
		}
	}
}

func TestRxFrame(t *testing.T) {
	for _, tc := range []struct {
		frame RxFrame
		want  uint32
	}{
		{RxFrame{Status: Alert0, Data: 0xBEEF, Stat: 5}, 0x20BEEF56},
		{RxFrame{}, 0x00000009},
	} {
		buf, err := tc.frame.MarshalBinary()
		if err != nil {
			t.Fatalf("%s: %+v", tc.frame, err)
		}
		if got := binary.BigEndian.Uint32(buf); got != tc.want {
			t.Errorf("%s: expected 0x%08X got 0x%08X", tc.frame, tc.want, got)
		}
	}
}

// Frames captured from the sensor and its datasheet.
func TestKnownFrames(t *testing.T) {
	for _, tc := range []struct {
		frame uint32
		crc   uint8
	}{
		{0xE000008A, 0xA},
		{0x6000008C, 0xC},
		{0x0F000407, 0x7}, // Disable CRC.
	} {
		var buf [4]byte
		binary.BigEndian.PutUint32(buf[:], tc.frame)

		if sum := Checksum(buf); sum != tc.crc {
			t.Errorf("%08X: expected crc 0x%X got 0x%X", tc.frame, tc.crc, sum)
		}

		var rx RxFrame
		if err := rx.UnmarshalBinary(buf[:]); err != nil {
			t.Errorf("%08X: %+v", tc.frame, err)
		}
	}

	var tx TxFrame
	if err := tx.UnmarshalBinary([]byte{0x0F, 0x00, 0x04, 0x07}); err != nil {
		t.Fatalf("%+v", err)
	}
	if want := (TxFrame{Address: TestConfig, Data: 0x0004}); tx != want {
		t.Errorf("expected %s got %s", want, tx)
	}
}

func TestFieldRange(t *testing.T) {
	if _, err := (TxFrame{Address: 0x80}).MarshalBinary(); !xerrors.Is(err, ErrField) {
		t.Errorf("address: expected %v got %v", ErrField, err)
	}
	if _, err := (TxFrame{Command: 0x10}).MarshalBinary(); !xerrors.Is(err, ErrField) {
		t.Errorf("command: expected %v got %v", ErrField, err)
	}
	if _, err := (RxFrame{Stat: 0x8}).MarshalBinary(); !xerrors.Is(err, ErrField) {
		t.Errorf("stat: expected %v got %v", ErrField, err)
	}
}

func TestLength(t *testing.T) {
	var frame RxFrame
	for _, n := range []int{0, 3, 5} {
		if err := frame.UnmarshalBinary(make([]byte, n)); !xerrors.Is(err, ErrLength) {
			t.Errorf("%d bytes: expected %v got %v", n, ErrLength, err)
		}
	}
}

func (TxFrame) Generate(r *rand.Rand, size int) reflect.Value {
	return reflect.ValueOf(TxFrame{
		Read:    r.Intn(2) == 1,
		Address: Address(r.Intn(0x80)),
		Data:    uint16(r.Uint32()),
		Command: Command(r.Intn(0x10)),
	})
}

func (RxFrame) Generate(r *rand.Rand, size int) reflect.Value {
	return reflect.ValueOf(RxFrame{
		Status:      Status(r.Uint32()),
		Data:        uint16(r.Uint32()),
		ErrorStatus: r.Intn(2) == 1,
		Stat:        uint8(r.Intn(8)),
	})
}

func TestRoundTrip(t *testing.T) {
	tx := func(f TxFrame) bool {
		buf, err := f.MarshalBinary()
		if err != nil {
			return false
		}
		var g TxFrame
		return g.UnmarshalBinary(buf) == nil && g == f
	}
	if err := quick.Check(tx, nil); err != nil {
		t.Error(err)
	}

	rx := func(f RxFrame) bool {
		buf, err := f.MarshalBinary()
		if err != nil {
			return false
		}
		var g RxFrame
		return g.UnmarshalBinary(buf) == nil && g == f
	}
	if err := quick.Check(rx, nil); err != nil {
		t.Error(err)
	}
}

// Every single-bit error in a frame must be caught.
func TestSingleBitError(t *testing.T) {
	check := func(f TxFrame) bool {
		buf, err := f.MarshalBinary()
		if err != nil {
			return false
		}
		for bit := 0; bit < 32; bit++ {
			corrupt := append([]byte(nil), buf...)
			corrupt[bit>>3] ^= 0x80 >> uint(bit&7)

			var g TxFrame
			if err := g.UnmarshalBinary(corrupt); !xerrors.Is(err, ErrChecksum) {
				return false
			}
		}
		return true
	}
	if err := quick.Check(check, nil); err != nil {
		t.Error(err)
	}
}

// Seeding the register with ones is the same as inverting the first four
// frame bits and seeding with zeros.
func TestSeedEquivalence(t *testing.T) {
	zero := crc.MustParameters[uint8](4, 0x3, 0x0, 0x0, false, false)

	check := func(frame [4]byte) bool {
		frame[3] &= 0xF0
		pre := frame
		pre[0] ^= 0xF0
		return Checksum(frame) == zero.Checksum(pre[:])
	}
	if err := quick.Check(check, nil); err != nil {
		t.Error(err)
	}
}

// sensor answers each request within the same frame. A request that fails
// its CRC check is flagged in the status of the following response.
type sensor struct {
	regs   [0x80]uint16
	status Status
}

func (s *sensor) transfer(tx [4]byte) (rx [4]byte, err error) {
	resp := RxFrame{Status: s.status}
	s.status = 0

	var req TxFrame
	if err := req.UnmarshalBinary(tx[:]); err != nil {
		s.status |= PrevCRCError
	} else if req.Read {
		resp.Data = s.regs[req.Address]
	} else {
		s.regs[req.Address] = req.Data
	}

	buf, err := resp.MarshalBinary()
	if err != nil {
		return rx, err
	}
	copy(rx[:], buf)

	return rx, nil
}

func TestDevice(t *testing.T) {
	s := &sensor{}
	s.regs[ConvStatus] = 0x2001

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	dev := NewDevice(s.transfer, logger)

	if err := dev.WriteRegister(SensorConfig, 0x01C0); err != nil {
		t.Fatalf("%+v", err)
	}
	if s.regs[SensorConfig] != 0x01C0 {
		t.Errorf("expected 0x01C0 got 0x%04X", s.regs[SensorConfig])
	}

	for _, addr := range []Address{ConvStatus, SensorConfig, DeviceConfig} {
		val, err := dev.ReadRegister(addr)
		if err != nil {
			t.Fatalf("%+v", err)
		}
		if val != s.regs[addr] {
			t.Errorf("register 0x%02X: expected 0x%04X got 0x%04X", addr, s.regs[addr], val)
		}
	}

	if len(hook.Entries) != 4 {
		t.Errorf("expected 4 log entries got %d", len(hook.Entries))
	}
	for _, e := range hook.Entries {
		if e.Level != logrus.DebugLevel {
			t.Errorf("unexpected %s entry: %s", e.Level, e.Message)
		}
	}
}

func TestDevicePrevCRC(t *testing.T) {
	s := &sensor{}
	logger, hook := test.NewNullLogger()
	dev := NewDevice(func(tx [4]byte) ([4]byte, error) {
		tx[3] ^= 0x01
		return s.transfer(tx)
	}, logger)

	if err := dev.WriteRegister(DeviceConfig, 0); err != nil {
		t.Fatalf("%+v", err)
	}
	if hook.LastEntry() != nil {
		t.Fatalf("unexpected entry: %s", hook.LastEntry().Message)
	}

	if err := dev.WriteRegister(DeviceConfig, 0); err != nil {
		t.Fatalf("%+v", err)
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.WarnLevel {
		t.Fatalf("expected warning got %v", entry)
	}
}

func TestDeviceErrors(t *testing.T) {
	errBus := xerrors.New("bus fault")
	logger, _ := test.NewNullLogger()

	dev := NewDevice(func([4]byte) ([4]byte, error) {
		return [4]byte{}, errBus
	}, logger)
	if _, err := dev.ReadRegister(TempResult); !xerrors.Is(err, errBus) {
		t.Errorf("expected %v got %v", errBus, err)
	}

	dev = NewDevice(func([4]byte) ([4]byte, error) {
		return [4]byte{0, 0, 0, 0x00}, nil
	}, logger)
	if _, err := dev.ReadRegister(TempResult); !xerrors.Is(err, ErrChecksum) {
		t.Errorf("expected %v got %v", ErrChecksum, err)
	}
}
