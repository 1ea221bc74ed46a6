package token

import (
	"encoding/hex"
	"strings"
	"unicode/utf8"
)

// Size is the number of hex characters in a normalized token.
const Size = 10

// Bytes is the raw form of a token: five bytes, most significant first.
type Bytes = [Size / 2]byte

// Normalize removes every space and every "0x" from tok and trims surrounding
// whitespace.
func Normalize(tok string) string {
	s := strings.ReplaceAll(tok, " ", "")
	s = strings.ReplaceAll(s, "0x", "")

	return strings.TrimSpace(s)
}

// Parse normalizes tok and decodes it into its raw bytes.
//
// The returned error is a *LengthError or a *DigitError.
func Parse(tok string) (b Bytes, err error) {
	s := Normalize(tok)

	n := utf8.RuneCountInString(s)
	if n != Size {
		return b, &LengthError{
			Expected:   Size,
			Observed:   n,
			Normalized: s,
		}
	}

	offset := 0
	for _, c := range s {
		if !isHex(c) {
			return b, &DigitError{
				Normalized: s,
				Offset:     offset,
				Char:       c,
			}
		}
		offset++
	}

	_, err = hex.Decode(b[:], []byte(s))
	if err != nil {
		// Unreachable once every character has been checked above.
		return b, Error.Wrap(err)
	}

	return b, nil
}

func isHex(c rune) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}

	return false
}

// Group splits a normalized token into space separated byte pairs, the way
// the link monitor prints them.
func Group(s string) string {
	var sb strings.Builder

	for i := 0; i < len(s); i += 2 {
		if i > 0 {
			sb.WriteByte(' ')
		}

		end := i + 2
		if end > len(s) {
			end = len(s)
		}

		sb.WriteString(s[i:end])
	}

	return sb.String()
}
