package token

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of token errors that are not part of the decode
// taxonomy.
var Error = errs.Class("token")

// Kind identifies a decode failure.
type Kind uint8

// Decode failure kinds.
const (
	InvalidLength Kind = iota + 1
	InvalidHexDigits
)

func (k Kind) String() string {
	switch k {
	case InvalidLength:
		return "InvalidLength"
	case InvalidHexDigits:
		return "InvalidHexDigits"
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Sentinels for errors.Is. LengthError and DigitError unwrap to them.
var (
	ErrInvalidLength    = errors.New("invalid length")
	ErrInvalidHexDigits = errors.New("invalid hex digits")
)

// LengthError reports a normalized token that is not Size characters long.
type LengthError struct {
	Expected   int
	Observed   int
	Normalized string
}

func (e *LengthError) Error() string {
	return fmt.Sprintf(
		"expected %d hex characters, got %d (%q)",
		e.Expected,
		e.Observed,
		e.Normalized,
	)
}

// Kind returns InvalidLength.
func (e *LengthError) Kind() Kind { return InvalidLength }

func (e *LengthError) Unwrap() error { return ErrInvalidLength }

// DigitError reports a normalized token of the right length that holds a
// character outside the hex alphabet. Offset and Char name the first one.
type DigitError struct {
	Normalized string
	Offset     int
	Char       rune
}

func (e *DigitError) Error() string {
	return fmt.Sprintf(
		"invalid hex character %q at offset %d in %q",
		e.Char,
		e.Offset,
		e.Normalized,
	)
}

// Kind returns InvalidHexDigits.
func (e *DigitError) Kind() Kind { return InvalidHexDigits }

func (e *DigitError) Unwrap() error { return ErrInvalidHexDigits }

// KindOf returns the decode failure kind carried by err, or 0 when err is not
// a decode failure.
func KindOf(err error) Kind {
	var k interface{ Kind() Kind }
	if errors.As(err, &k) {
		return k.Kind()
	}

	return 0
}
