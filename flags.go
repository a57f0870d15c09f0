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
	"encoding/json"
	"encoding/xml"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/bemasher/crcsum/crc"
	"github.com/bemasher/crcsum/csv"
	"github.com/bemasher/crcsum/preset"
)

var presetName = flag.String("preset", "CRC-32", "named crc variant, see -list")

var width = flag.Int("width", 0, "custom crc width in bits, overrides -preset when non-zero")
var poly, initValue, xorOut HexValue
var refIn = flag.Bool("refin", false, "custom: reflect input bytes")
var refOut = flag.Bool("refout", false, "custom: reflect output before the final xor")

var bits = flag.Int("bits", -1, "checksum only the first n bits of the input, -1 for all")
var prev HexValue

var hexInput = flag.String("hex", "", "checksum the given hex string instead of files")
var binaryInput = flag.String("binary", "", "checksum the given string of bits instead of files, in transmission order")

var engine = flag.String("engine", "table", "checksum engine: table or bit")
var format = flag.String("format", "plain", "result output format: plain, csv, json, or xml")
var header = flag.Bool("header", false, "write a header line before csv output")

var list = flag.Bool("list", false, "list the named crc variants and exit")
var logLevel = flag.String("loglevel", "info", "log level: debug, info, warn or error")
var version = flag.Bool("version", false, "display build date and commit hash")

func RegisterFlags() {
	flag.Var(&poly, "poly", "custom: generator polynomial, implicit top bit omitted")
	flag.Var(&initValue, "init", "custom: initial register value")
	flag.Var(&xorOut, "xorout", "custom: final xor value")
	flag.Var(&prev, "prev", "continue from a previous checksum")

	customFlags := map[string]bool{
		"width":  true,
		"poly":   true,
		"init":   true,
		"xorout": true,
		"refin":  true,
		"refout": true,
	}

	printDefaults := func(validFlags map[string]bool, inclusion bool) {
		flag.CommandLine.VisitAll(func(f *flag.Flag) {
			if validFlags[f.Name] != inclusion {
				return
			}

			format := "  -%s=%s: %s\n"
			fmt.Fprintf(os.Stderr, format, f.Name, f.Value, f.Usage)
		})
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s: [flags] [file ...]\n", os.Args[0])
		printDefaults(customFlags, false)

		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "custom parameters:")
		printDefaults(customFlags, true)
	}
}

func EnvOverride() {
	flag.VisitAll(func(f *flag.Flag) {
		envName := "CRCSUM_" + strings.ToUpper(f.Name)
		flagValue := os.Getenv(envName)
		if flagValue == "" {
			return
		}

		fields := logrus.Fields{"env": envName, "flag": f.Name, "value": flagValue}
		if err := flag.Set(f.Name, flagValue); err != nil {
			logrus.WithFields(fields).WithError(err).Warn("environment override failed")
		} else {
			logrus.WithFields(fields).Debug("environment override")
		}
	})
}

// Parameters resolves the crc parameters from -preset or the custom flags.
func Parameters() (crc.Parameters[uint64], error) {
	if *width != 0 {
		p, err := crc.NewParameters(*width, uint64(poly), uint64(initValue), uint64(xorOut), *refIn, *refOut)
		return p, errors.Wrap(err, "custom parameters")
	}

	e, err := preset.Lookup(*presetName)
	if err != nil {
		return crc.Parameters[uint64]{}, err
	}
	return e.Parameters(), nil
}

// NewChecksummer returns the engine named by name for p.
func NewChecksummer(p crc.Parameters[uint64], name string) (crc.Checksummer[uint64], error) {
	switch strings.ToLower(name) {
	case "table":
		return p.MakeTable(), nil
	case "bit":
		return p, nil
	}
	return nil, errors.Errorf("unknown engine %q", name)
}

// JSON, XML and CSV all implement this interface so we can simplify result
// output formatting.
type Encoder interface {
	Encode(interface{}) error
}

func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch strings.ToLower(name) {
	case "plain":
		return PlainEncoder{w}, nil
	case "csv":
		return csv.NewEncoder(w, *header), nil
	case "json":
		return json.NewEncoder(w), nil
	case "xml":
		return XMLEncoder{xml.NewEncoder(w), w}, nil
	}
	return nil, errors.Errorf("unknown format %q", name)
}

type PlainEncoder struct {
	w io.Writer
}

func (pe PlainEncoder) Encode(v interface{}) (err error) {
	_, err = fmt.Fprintln(pe.w, v)
	return
}

// XMLEncoder writes one element per line.
type XMLEncoder struct {
	*xml.Encoder
	w io.Writer
}

func (xe XMLEncoder) Encode(v interface{}) error {
	if err := xe.Encoder.Encode(v); err != nil {
		return err
	}
	_, err := fmt.Fprintln(xe.w)
	return err
}

// HexValue is a flag holding an unsigned integer. Values are parsed as hex
// unless they carry another base prefix.
type HexValue uint64

func (v HexValue) String() string {
	return fmt.Sprintf("0x%X", uint64(v))
}

func (v *HexValue) Set(s string) error {
	s = strings.ToLower(s)
	if !strings.HasPrefix(s, "0b") && !strings.HasPrefix(s, "0o") {
		s = strings.TrimPrefix(s, "0x")
		n, err := strconv.ParseUint(s, 16, 64)
		*v = HexValue(n)
		return err
	}

	n, err := strconv.ParseUint(s, 0, 64)
	*v = HexValue(n)
	return err
}
