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
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/bemasher/crcsum/preset"
)

var (
	buildTag   = "dev"     // v#.#.#
	buildDate  = "unknown" // date -u '+%Y-%m-%d'
	commitHash = "unknown" // git rev-parse HEAD
)

func init() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000000",
	})
}

// Inputs returns the messages named on the command line. With no inline
// message and no files, stdin is read.
func Inputs(args []string, reflected bool) (inputs []Input, err error) {
	switch {
	case *hexInput != "":
		in, err := HexInput(*hexInput, *bits)
		return []Input{in}, err
	case *binaryInput != "":
		in, err := BinaryInput(*binaryInput, reflected)
		if err != nil {
			return nil, err
		}
		if *bits >= 0 {
			if *bits > in.Bits {
				return nil, errors.Errorf("-bits %d exceeds -binary length %d", *bits, in.Bits)
			}
			in.Bits = *bits
		}
		return []Input{in}, nil
	case len(args) == 0:
		return []Input{{"-", *bits, os.Stdin}}, nil
	}

	for _, name := range args {
		f, err := os.Open(name)
		if err != nil {
			for _, in := range inputs {
				in.Reader.(*os.File).Close()
			}
			return nil, errors.Wrap(err, "opening input")
		}
		inputs = append(inputs, Input{name, *bits, f})
	}

	return inputs, nil
}

func run() error {
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		return errors.Wrap(err, "-loglevel")
	}
	logrus.SetLevel(level)

	encoder, err := NewEncoder(*format, os.Stdout)
	if err != nil {
		return err
	}

	if *list {
		for _, e := range preset.Catalog() {
			if err := encoder.Encode(Preset{e}); err != nil {
				return errors.Wrap(err, "encoding preset")
			}
		}
		return nil
	}

	p, err := Parameters()
	if err != nil {
		return err
	}

	c, err := NewChecksummer(p, *engine)
	if err != nil {
		return err
	}

	summer := NewSummer(c, p)
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "prev" {
			summer.Continue = true
			summer.Prev = uint64(prev)
		}
	})

	logrus.WithFields(logrus.Fields{
		"params":   p.String(),
		"engine":   *engine,
		"continue": summer.Continue,
	}).Debug("checksumming")

	inputs, err := Inputs(flag.Args(), p.ReflectInput())
	if err != nil {
		return err
	}

	failed := 0
	for _, in := range inputs {
		res, err := summer.Sum(in)
		if f, ok := in.Reader.(*os.File); ok && f != os.Stdin {
			f.Close()
		}
		if err != nil {
			logrus.WithError(err).Error("checksum failed")
			failed++
			continue
		}

		if err := encoder.Encode(res); err != nil {
			return errors.Wrap(err, "encoding result")
		}
	}

	if failed > 0 {
		return errors.Errorf("%d of %d inputs failed", failed, len(inputs))
	}

	return nil
}

func main() {
	RegisterFlags()
	EnvOverride()
	flag.Parse()

	if *version {
		fmt.Println("Build Tag: ", buildTag)
		fmt.Println("Build Date:", buildDate)
		fmt.Println("Commit:    ", commitHash)
		os.Exit(0)
	}

	if err := run(); err != nil {
		logrus.Fatalf("%+v", err)
	}
}
