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

// Package tmag encodes and decodes the 32-bit SPI frames of the TMAG5170
// 3D Hall-effect sensor. Every frame ends in a 4-bit CRC computed over the
// whole frame with the CRC nibble zeroed.
package tmag

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
	"golang.org/x/xerrors"

	"github.com/bemasher/crcsum/crc"
)

var (
	ErrChecksum = xerrors.New("tmag: checksum mismatch")
	ErrLength   = xerrors.New("tmag: frame must be 4 bytes")
	ErrField    = xerrors.New("tmag: field out of range")
)

// x^4 + x + 1 seeded with all ones, most significant bit first.
var crcTable = crc.MustParameters[uint8](4, 0x3, 0xF, 0x0, false, false).MakeTable()

// Checksum returns the CRC of frame. The CRC nibble is treated as zero.
func Checksum(frame [4]byte) uint8 {
	frame[3] &= 0xF0
	return crcTable.Checksum(frame[:])
}

// Address is a 7-bit register address.
type Address uint8

const (
	DeviceConfig    Address = 0x00
	SensorConfig    Address = 0x01
	SystemConfig    Address = 0x02
	AlertConfig     Address = 0x03
	XThrxConfig     Address = 0x04
	YThrxConfig     Address = 0x05
	ZThrxConfig     Address = 0x06
	TThrxConfig     Address = 0x07
	ConvStatus      Address = 0x08
	XChResult       Address = 0x09
	YChResult       Address = 0x0A
	ZChResult       Address = 0x0B
	TempResult      Address = 0x0C
	AFEStatus       Address = 0x0D
	SysStatus       Address = 0x0E
	TestConfig      Address = 0x0F
	OscMonitor      Address = 0x10
	MagGainConfig   Address = 0x11
	AngleResult     Address = 0x13
	MagnitudeResult Address = 0x14
)

// Command holds the four command bits of a request frame.
type Command uint8

const (
	StartConversion Command = 1 << iota // CMD0: start a conversion when CS goes low.
	StatDataType                        // CMD1: STAT carries DATA_TYPE instead of SET_COUNT.
)

// TxFrame is a request sent to the sensor.
type TxFrame struct {
	Read    bool
	Address Address
	Data    uint16
	Command Command
}

func (f TxFrame) String() string {
	return fmt.Sprintf("{Read:%t Address:0x%02X Data:0x%04X Command:0x%X}", f.Read, f.Address, f.Data, f.Command)
}

// MarshalBinary packs the frame and fills in its CRC.
func (f TxFrame) MarshalBinary() ([]byte, error) {
	if f.Address > 0x7F || f.Command > 0xF {
		return nil, xerrors.Errorf("%s: %w", f, ErrField)
	}

	var w frameWriter
	w.bool(f.Read)
	w.bits(uint64(f.Address), 7)
	w.bits(uint64(f.Data), 16)
	w.bits(uint64(f.Command), 4)

	return w.frame()
}

// UnmarshalBinary unpacks a frame, rejecting it if its CRC does not match.
func (f *TxFrame) UnmarshalBinary(data []byte) error {
	r, err := newFrameReader(data)
	if err != nil {
		return err
	}

	f.Read = r.bool()
	f.Address = Address(r.bits(7))
	f.Data = uint16(r.bits(16))
	f.Command = Command(r.bits(4))

	return r.err
}

// Status holds the eight status flags leading a response frame.
type Status uint8

const (
	AlertTemp Status = 1 << iota
	AlertZ
	AlertY
	AlertX
	Alert1
	Alert0
	ConfigReset
	PrevCRCError // The previous request failed its CRC check.
)

// RxFrame is a response received from the sensor.
type RxFrame struct {
	Status      Status
	Data        uint16
	ErrorStatus bool
	Stat        uint8 // 3 bits, see StatDataType.
}

func (f RxFrame) String() string {
	return fmt.Sprintf("{Status:%08b Data:0x%04X ErrorStatus:%t Stat:%03b}", f.Status, f.Data, f.ErrorStatus, f.Stat)
}

// MarshalBinary packs the frame and fills in its CRC.
func (f RxFrame) MarshalBinary() ([]byte, error) {
	if f.Stat > 0x7 {
		return nil, xerrors.Errorf("%s: %w", f, ErrField)
	}

	var w frameWriter
	w.bits(uint64(f.Status), 8)
	w.bits(uint64(f.Data), 16)
	w.bool(f.ErrorStatus)
	w.bits(uint64(f.Stat), 3)

	return w.frame()
}

// UnmarshalBinary unpacks a frame, rejecting it if its CRC does not match.
func (f *RxFrame) UnmarshalBinary(data []byte) error {
	r, err := newFrameReader(data)
	if err != nil {
		return err
	}

	f.Status = Status(r.bits(8))
	f.Data = uint16(r.bits(16))
	f.ErrorStatus = r.bool()
	f.Stat = uint8(r.bits(3))

	return r.err
}

// frameWriter packs the payload bits of a frame, keeping the first error.
type frameWriter struct {
	buf bytes.Buffer
	bw  *bitio.Writer
	err error
}

func (w *frameWriter) bits(v uint64, n uint8) {
	if w.bw == nil {
		w.bw = bitio.NewWriter(&w.buf)
	}
	if w.err == nil {
		w.err = w.bw.WriteBits(v, n)
	}
}

func (w *frameWriter) bool(b bool) {
	var v uint64
	if b {
		v = 1
	}
	w.bits(v, 1)
}

// frame pads the CRC nibble, closes the writer and fills in the CRC.
func (w *frameWriter) frame() ([]byte, error) {
	w.bits(0, 4)
	if w.err == nil {
		w.err = w.bw.Close()
	}
	if w.err != nil {
		return nil, xerrors.Errorf("packing frame: %w", w.err)
	}

	var frame [4]byte
	copy(frame[:], w.buf.Bytes())
	frame[3] |= Checksum(frame)

	return frame[:], nil
}

// frameReader unpacks the payload of a frame whose CRC has been verified.
type frameReader struct {
	br  *bitio.Reader
	err error
}

func newFrameReader(data []byte) (*frameReader, error) {
	if len(data) != 4 {
		return nil, xerrors.Errorf("%d bytes: %w", len(data), ErrLength)
	}

	var frame [4]byte
	copy(frame[:], data)
	if sum := Checksum(frame); sum != frame[3]&0xF {
		return nil, xerrors.Errorf("frame %02X: expected crc 0x%X got 0x%X: %w", data, sum, frame[3]&0xF, ErrChecksum)
	}

	return &frameReader{br: bitio.NewReader(bytes.NewReader(data))}, nil
}

func (r *frameReader) bits(n uint8) (v uint64) {
	if r.err == nil {
		v, r.err = r.br.ReadBits(n)
	}
	return
}

func (r *frameReader) bool() bool {
	return r.bits(1) == 1
}
