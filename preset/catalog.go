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

package preset

// Check values are the checksums of the ASCII string "123456789".
var catalog = []Entry{
	{"CRC-4/ITU", 4, 0x3, 0x0, 0x0, true, true, 0x7},
	{"CRC-5/EPC", 5, 0x09, 0x09, 0x00, false, false, 0x00},
	{"CRC-5/ITU", 5, 0x15, 0x00, 0x00, true, true, 0x07},
	{"CRC-5/USB", 5, 0x05, 0x1F, 0x1F, true, true, 0x19},
	{"CRC-6/CDMA2000-A", 6, 0x27, 0x3F, 0x00, false, false, 0x0D},
	{"CRC-6/CDMA2000-B", 6, 0x07, 0x3F, 0x00, false, false, 0x3B},
	{"CRC-6/ITU", 6, 0x03, 0x00, 0x00, true, true, 0x06},
	{"CRC-6/NR", 6, 0x21, 0x00, 0x00, false, false, 0x15},
	{"CRC-7", 7, 0x09, 0x00, 0x00, false, false, 0x75},
	{"CRC-8", 8, 0x07, 0x00, 0x00, false, false, 0xF4},
	{"CRC-8/EBU", 8, 0x1D, 0xFF, 0x00, true, true, 0x97},
	{"CRC-8/MAXIM", 8, 0x31, 0x00, 0x00, true, true, 0xA1},
	{"CRC-8/WCDMA", 8, 0x9B, 0x00, 0x00, true, true, 0x25},
	{"CRC-8/LTE", 8, 0x9B, 0x00, 0x00, false, false, 0xEA},
	{"CRC-10", 10, 0x233, 0x000, 0x000, false, false, 0x199},
	{"CRC-10/CDMA2000", 10, 0x3D9, 0x3FF, 0x000, false, false, 0x233},
	{"CRC-11", 11, 0x385, 0x01A, 0x000, false, false, 0x5A3},
	{"CRC-11/NR", 11, 0x621, 0x000, 0x000, false, false, 0x5CA},
	{"CRC-12/CDMA2000", 12, 0xF13, 0xFFF, 0x000, false, false, 0xD4D},
	{"CRC-12/DECT", 12, 0x80F, 0x000, 0x000, false, false, 0xF5B},
	{"CRC-12/UMTS", 12, 0x80F, 0x000, 0x000, false, true, 0xDAF},
	{"CRC-13/BBC", 13, 0x1CF5, 0x0000, 0x0000, false, false, 0x04FA},
	{"CRC-15", 15, 0x4599, 0x0000, 0x0000, false, false, 0x059E},
	{"CRC-15/MPT1327", 15, 0x6815, 0x0000, 0x0001, false, false, 0x2566},
	{"CRC-16/ARC", 16, 0x8005, 0x0000, 0x0000, true, true, 0xBB3D},
	{"CRC-16/BUYPASS", 16, 0x8005, 0x0000, 0x0000, false, false, 0xFEE8},
	{"CRC-16/CCITT-FALSE", 16, 0x1021, 0xFFFF, 0x0000, false, false, 0x29B1},
	{"CRC-16/CDMA2000", 16, 0xC867, 0xFFFF, 0x0000, false, false, 0x4C06},
	{"CRC-16/CMS", 16, 0x8005, 0xFFFF, 0x0000, false, false, 0xAEE7},
	{"CRC-16/DECT-R", 16, 0x0589, 0x0000, 0x0001, false, false, 0x007E},
	{"CRC-16/DECT-X", 16, 0x0589, 0x0000, 0x0000, false, false, 0x007F},
	{"CRC-16/DNP", 16, 0x3D65, 0x0000, 0xFFFF, true, true, 0xEA82},
	{"CRC-16/GENIBUS", 16, 0x1021, 0xFFFF, 0xFFFF, false, false, 0xD64E},
	{"CRC-16/KERMIT", 16, 0x1021, 0x0000, 0x0000, true, true, 0x2189},
	{"CRC-16/MAXIM", 16, 0x8005, 0x0000, 0xFFFF, true, true, 0x44C2},
	{"CRC-16/MODBUS", 16, 0x8005, 0xFFFF, 0x0000, true, true, 0x4B37},
	{"CRC-16/T10-DIF", 16, 0x8BB7, 0x0000, 0x0000, false, false, 0xD0DB},
	{"CRC-16/USB", 16, 0x8005, 0xFFFF, 0xFFFF, true, true, 0xB4C8},
	{"CRC-16/X-25", 16, 0x1021, 0xFFFF, 0xFFFF, true, true, 0x906E},
	{"CRC-16/XMODEM", 16, 0x1021, 0x0000, 0x0000, false, false, 0x31C3},
	{"CRC-17/CAN", 17, 0x1685B, 0x00000, 0x00000, false, false, 0x04F03},
	{"CRC-21/CAN", 21, 0x102899, 0x000000, 0x000000, false, false, 0x0ED841},
	{"CRC-24", 24, 0x864CFB, 0xB704CE, 0x000000, false, false, 0x21CF02},
	{"CRC-24/FLEXRAY-A", 24, 0x5D6DCB, 0xFEDCBA, 0x000000, false, false, 0x7979BD},
	{"CRC-24/FLEXRAY-B", 24, 0x5D6DCB, 0xABCDEF, 0x000000, false, false, 0x1F23B8},
	{"CRC-24/LTE-A", 24, 0x864CFB, 0x000000, 0x000000, false, false, 0xCDE703},
	{"CRC-24/LTE-B", 24, 0x800063, 0x000000, 0x000000, false, false, 0x23EF52},
	{"CRC-24/NR-C", 24, 0xB2B117, 0x000000, 0x000000, false, false, 0xF48279},
	{"CRC-30", 30, 0x2030B9C7, 0x3FFFFFFF, 0x3FFFFFFF, false, false, 0x04C34ABF},
	{"CRC-32", 32, 0x04C11DB7, 0xFFFFFFFF, 0xFFFFFFFF, true, true, 0xCBF43926},
	{"CRC-32/BZIP2", 32, 0x04C11DB7, 0xFFFFFFFF, 0xFFFFFFFF, false, false, 0xFC891918},
	{"CRC-32/C", 32, 0x1EDC6F41, 0xFFFFFFFF, 0xFFFFFFFF, true, true, 0xE3069283},
	{"CRC-32/MPEG2", 32, 0x04C11DB7, 0xFFFFFFFF, 0x00000000, false, false, 0x0376E6E7},
	{"CRC-32/POSIX", 32, 0x04C11DB7, 0x00000000, 0xFFFFFFFF, false, false, 0x765E7680},
	{"CRC-32/Q", 32, 0x814141AB, 0x00000000, 0x00000000, false, false, 0x3010BF7F},
	{"CRC-40/GSM", 40, 0x0004820009, 0x0000000000, 0xFFFFFFFFFF, false, false, 0xD4164FC646},
	{"CRC-64", 64, 0x42F0E1EBA9EA3693, 0x0000000000000000, 0x0000000000000000, false, false, 0x6C40DF5F0B497347},
}
