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
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// TransferFunc exchanges one 32-bit frame with the sensor. The response is
// clocked in while the request is clocked out.
type TransferFunc func(tx [4]byte) (rx [4]byte, err error)

// Device issues register reads and writes over a TransferFunc.
type Device struct {
	transfer TransferFunc
	log      logrus.FieldLogger
}

func NewDevice(transfer TransferFunc, log logrus.FieldLogger) *Device {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Device{transfer: transfer, log: log}
}

// Transfer sends tx and returns the sensor's response. The response's CRC is
// verified before it is returned.
func (d *Device) Transfer(tx TxFrame) (rx RxFrame, err error) {
	buf, err := tx.MarshalBinary()
	if err != nil {
		return rx, err
	}

	var out [4]byte
	copy(out[:], buf)

	in, err := d.transfer(out)
	if err != nil {
		return rx, xerrors.Errorf("transfer %s: %w", tx, err)
	}

	d.log.WithFields(logrus.Fields{
		"tx": fmt.Sprintf("%02X", out),
		"rx": fmt.Sprintf("%02X", in),
	}).Debug("frame")

	if err = rx.UnmarshalBinary(in[:]); err != nil {
		return rx, err
	}

	if rx.Status&PrevCRCError != 0 {
		d.log.WithField("tx", tx.String()).Warn("sensor rejected previous frame crc")
	}

	return rx, nil
}

// ReadRegister returns the 16-bit value of the register at addr.
func (d *Device) ReadRegister(addr Address) (uint16, error) {
	rx, err := d.Transfer(TxFrame{Read: true, Address: addr})
	if err != nil {
		return 0, err
	}
	return rx.Data, nil
}

// WriteRegister stores value in the register at addr.
func (d *Device) WriteRegister(addr Address, value uint16) error {
	_, err := d.Transfer(TxFrame{Address: addr, Data: value})
	return err
}
