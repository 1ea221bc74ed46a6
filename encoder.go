package q1620

import (
	"fmt"
	"io"

	"github.com/calebcase/oops"

	"github.com/calebcase/q1620/fixed"
	"github.com/calebcase/q1620/token"
)

// Encoder writes one token per line, grouped into bytes ("00 00 A0 00 00").
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w: w,
	}
}

// Encode writes the token for v rounded to the nearest 2^-20. Values outside
// [0, 65536) are rejected.
func (e *Encoder) Encode(v float64) (err error) {
	defer Error.WrapP(&err)

	b, err := fixed.FromFloat64(v)
	if err != nil {
		return err
	}

	return e.EncodeBlock(b)
}

// EncodeBlock writes the token for b, padding bits included.
func (e *Encoder) EncodeBlock(b fixed.Block) (err error) {
	text, err := b.MarshalText()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(e.w, token.Group(string(text)))
	if err != nil {
		return oops.Trace(err)
	}

	return nil
}
