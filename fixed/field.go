package fixed

// Field is a bit field of the raw integer.
type Field struct {
	Shift uint
	Mask  uint64
	Name  string
}

// Extract returns the field's value from raw.
func (f Field) Extract(raw uint64) uint64 {
	return raw >> f.Shift & f.Mask
}

// Insert returns raw with the field set to v. Bits of v outside the mask are
// dropped.
func (f Field) Insert(raw, v uint64) uint64 {
	return raw&^(f.Mask<<f.Shift) | (v&f.Mask)<<f.Shift
}

// Width returns the number of bits in the field.
func (f Field) Width() int {
	n := 0
	for m := f.Mask; m != 0; m >>= 1 {
		n++
	}

	return n
}

var (
	Fraction = Field{0, 0xF_FFFF, "fraction"}
	Integer  = Field{20, 0xFFFF, "integer"}
	Padding  = Field{36, 0xF, "padding"}

	// Fields are ordered most significant first.
	Fields = []Field{
		Padding,
		Integer,
		Fraction,
	}
)
