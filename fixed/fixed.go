package fixed

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/q1620/integer"
	"github.com/calebcase/q1620/token"
)

// Error is the class of fixed errors.
var Error = errs.Class("fixed")

// Format constants.
const (
	IntegerBits  = 16
	FractionBits = 20

	// Scale is the value of one integer step in fraction units.
	Scale = 1 << FractionBits
)

// Block is a Q16.20 fixed point number.
type Block struct {
	// Padding holds bits 36-39 of the raw integer. It does not take part
	// in the number.
	Padding  uint8
	Integer  uint16
	Fraction uint32
}

// FromRaw splits a raw integer into its fields. Bits above 39 are dropped.
func FromRaw(raw uint64) Block {
	return Block{
		Padding:  uint8(Padding.Extract(raw)),
		Integer:  uint16(Integer.Extract(raw)),
		Fraction: uint32(Fraction.Extract(raw)),
	}
}

// FromFloat64 returns the block nearest to f. The padding bits are zero.
func FromFloat64(f float64) (b Block, err error) {
	if math.IsNaN(f) || f < 0 {
		return b, Error.New("out of range: %v", f)
	}

	units := math.Round(f * Scale)
	if units >= 1<<(IntegerBits+FractionBits) {
		return b, Error.New("out of range: %v", f)
	}

	return FromRaw(uint64(units)), nil
}

// Raw joins the fields back into the raw integer.
func (b Block) Raw() uint64 {
	var raw uint64

	raw = Padding.Insert(raw, uint64(b.Padding))
	raw = Integer.Insert(raw, uint64(b.Integer))
	raw = Fraction.Insert(raw, uint64(b.Fraction))

	return raw
}

// Float64 returns the number. Padding is ignored.
func (b Block) Float64() float64 {
	return float64(b.Integer) + float64(b.Fraction)/Scale
}

// String formats the number with 6 decimal places.
func (b Block) String() string {
	return strconv.FormatFloat(b.Float64(), 'f', 6, 64)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	return integer.Block{Value: b.Raw()}.MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	ib := &integer.Block{}

	err = ib.UnmarshalBinary(data)
	if err != nil {
		return err
	}

	*b = FromRaw(ib.Value)

	return nil
}

// MarshalText implements encoding.TextMarshaler. The output is the normalized
// token: 10 upper case hex digits.
func (b Block) MarshalText() (text []byte, err error) {
	data, err := b.MarshalBinary()
	if err != nil {
		return nil, err
	}

	return []byte(strings.ToUpper(hex.EncodeToString(data))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Any token accepted by
// token.Parse is accepted. Decode failures are returned unwrapped as
// *token.LengthError or *token.DigitError.
func (b *Block) UnmarshalText(text []byte) (err error) {
	raw, err := token.Parse(string(text))
	if err != nil {
		return err
	}

	return b.UnmarshalBinary(raw[:])
}
