// Package integer provides the 40-bit unsigned raw integer carried by a
// reading.
package integer

import (
	"github.com/zeebo/errs"
)

// Error is the class of integer errors.
var Error = errs.Class("integer")

// Size is the number of bytes in the wire form.
const Size = 5

// Bits is the width of the raw integer.
const Bits = Size * 8

// Max is the largest raw integer.
const Max uint64 = 1<<Bits - 1

// Block is a 40-bit unsigned integer.
type Block struct {
	Value uint64
}

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The output is always Size bytes, big-endian.
func (b Block) MarshalBinary() (data []byte, err error) {
	if b.Value > Max {
		return nil, Error.New("value exceeds %d bits: %#x", Bits, b.Value)
	}

	data = make([]byte, Size)
	for i := Size - 1; i >= 0; i-- {
		data[i] = byte(b.Value)
		b.Value >>= 8
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	if len(data) != Size {
		return Error.New("expected %d bytes, got %d", Size, len(data))
	}

	var v uint64
	for _, d := range data {
		v = v<<8 | uint64(d)
	}

	b.Value = v

	return nil
}
