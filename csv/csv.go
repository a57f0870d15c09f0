// Package csv writes checksum results as comma-separated records.
package csv

import (
	"encoding/csv"
	"io"

	"golang.org/x/xerrors"
)

// Produces a list of fields making up a record.
type Recorder interface {
	Record() []string
}

// Headerer is implemented by records that name their fields.
type Headerer interface {
	Header() []string
}

// An Encoder writes CSV records to an output stream.
type Encoder struct {
	w      *csv.Writer
	header bool
}

// NewEncoder returns a new encoder that writes to w. If header is true, the
// field names of the first record are written before it.
func NewEncoder(w io.Writer, header bool) *Encoder {
	return &Encoder{w: csv.NewWriter(w), header: header}
}

// Encode writes a CSV record representing v to the stream followed by a
// newline character. Value given must implement the Recorder interface.
func (enc *Encoder) Encode(v interface{}) (err error) {
	defer func() {
		if r, _ := recover().(error); r != nil {
			err = xerrors.Errorf("recovered: %w", r)
		}
	}()

	rec := v.(Recorder)
	if enc.header {
		enc.header = false
		if h, ok := rec.(Headerer); ok {
			if err := enc.w.Write(h.Header()); err != nil {
				return xerrors.Errorf("writing header: %w", err)
			}
		}
	}

	if err := enc.w.Write(rec.Record()); err != nil {
		return xerrors.Errorf("writing record: %w", err)
	}
	enc.w.Flush()

	if err := enc.w.Error(); err != nil {
		return xerrors.Errorf("flushing record: %w", err)
	}

	return nil
}
