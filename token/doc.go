// Package token turns operator supplied hex text into the five raw bytes of a
// Q16.20 reading.
//
// A token is what arrives over the serial link once it has been captured as a
// line of text. Operators paste it in whatever grouping the terminal showed
// them, so a token may contain spaces and 0x prefixes:
//
//  00 00 A0 00 00
//  0x00 0x00 0xA0 0x00 0x00
//  0000a00000
//
// Normalization
//
// Every space and every literal "0x" is removed, then surrounding whitespace
// is trimmed. Removal is literal: "0X" is left in place and other interior
// whitespace (tabs) is not removed. Spaces go before "0x", so a prefix split
// by a space is still removed: "0 x0" normalizes to "0".
//
// Validation
//
// The normalized string must be exactly Size characters long. The length is
// checked before any digit is looked at. Once the length is right every
// character must be in [0-9a-fA-F].
//
//  | Input             | Normalized   | Result                        |
//  |-------------------|--------------|-------------------------------|
//  | "00 00 A0 00 00"  | "0000A00000" | 00 00 A0 00 00                |
//  | "00 00 A0 00"     | "0000A000"   | LengthError{Observed: 8}      |
//  | "GG 00 A0 00 00"  | "GG00A00000" | DigitError{Offset: 0}         |
//  | "0x00 00A0 0000"  | "0000A0000"  | LengthError{Observed: 9}      |
//  |-------------------|--------------|-------------------------------|
//
// Both failures are ordinary values: an operator typo is expected and the
// caller is meant to ask again.
package token
