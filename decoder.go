// Package q1620 decodes Q16.20 fixed point readings sent as hex text.
package q1620

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/calebcase/q1620/fixed"
)

// Error is the class of stream errors.
var Error = errs.Class("q1620")

// Decode parses tok and returns the number it carries.
//
// A failure is a *token.LengthError or a *token.DigitError. Decode does no
// I/O and is safe for concurrent use.
func Decode(tok string) (float64, error) {
	b, err := DecodeBlock(tok)
	if err != nil {
		return 0, err
	}

	return b.Float64(), nil
}

// DecodeBlock is like Decode but returns the bit fields of the number.
func DecodeBlock(tok string) (b fixed.Block, err error) {
	err = b.UnmarshalText([]byte(tok))
	if err != nil {
		return fixed.Block{}, err
	}

	return b, nil
}

// IsStop reports whether line asks the reader to stop: "exit" or "quit" in
// any case.
func IsStop(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "exit", "quit":
		return true
	}

	return false
}

// Decoder reads one token per line.
//
// A line that fails to decode does not end the stream. Its failure is
// available from LineErr until the next call to Next. Lines have no length
// limit, so an overlong line is reported as a *token.LengthError like any
// other.
type Decoder struct {
	r *bufio.Reader

	line    string
	blk     fixed.Block
	lineErr error
	stop    bool

	eof bool
	err error
}

// NewDecoder returns a new decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r: bufio.NewReader(r),
	}
}

// Next reads and decodes the next line. It returns false at the end of the
// input or after a read error.
//
// Stop lines are not decoded.
func (d *Decoder) Next() (ok bool) {
	d.line = ""
	d.blk = fixed.Block{}
	d.lineErr = nil
	d.stop = false

	if d.err != nil || d.eof {
		return false
	}

	line, err := d.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			d.err = Error.Wrap(oops.Trace(err))

			return false
		}

		d.eof = true

		// The last line may lack a newline.
		if line == "" {
			return false
		}
	}

	line = strings.TrimSuffix(line, "\n")
	d.line = strings.TrimSuffix(line, "\r")

	if IsStop(d.line) {
		d.stop = true

		return true
	}

	d.blk, d.lineErr = DecodeBlock(d.line)

	return true
}

// Line returns the current line as read.
func (d *Decoder) Line() string {
	return d.line
}

// Stop reports whether the current line is a stop line.
func (d *Decoder) Stop() bool {
	return d.stop
}

// Block returns the decoded fields of the current line.
func (d *Decoder) Block() fixed.Block {
	return d.blk
}

// Value returns the number on the current line.
func (d *Decoder) Value() float64 {
	return d.blk.Float64()
}

// LineErr returns the decode failure of the current line.
func (d *Decoder) LineErr() error {
	return d.lineErr
}

// Err returns the read error that ended the stream, if any.
func (d *Decoder) Err() error {
	return d.err
}
