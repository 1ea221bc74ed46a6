// Package fixed provides the Q16.20 fixed point number read back from the
// square root core.
//
// The equation for a Q16.20 number is:
//
//  number = integer + fraction * 2^-20
//
// Where integer is an unsigned 16 bit value and fraction is an unsigned 20 bit
// value. For example:
//
//  10.5 = 10 + 524288 * 2^-20
//
// The smallest step is 2^-20 (about 0.00000095) and the largest number is
// 65535 + 1048575 * 2^-20 (about 65535.999999).
//
// Layout
//
// The number travels as a 40 bit raw integer sent as 5 bytes, most
// significant byte first. The top 4 bits pad the 36 bit value out to a whole
// byte. They are carried through but never validated and never change the
// number.
//
//  | 39 . 38 . 37 . 36 | 35 .. 20 | 19 .. 0  |
//  |-------------------|----------|----------|
//  | Padding           | Integer  | Fraction |
//  |-------------------|----------|----------|
//  | 4 bits            | 16 bits  | 20 bits  |
//
// Extraction is a shift and a mask per field:
//
//  integer  = (raw >> 20) & 0xFFFF
//  fraction = raw & 0xFFFFF
//  padding  = (raw >> 36) & 0xF
//
// Examples
//
// Zero (00 00 00 00 00)
//
//  | Byte 0    | Byte 1    | Byte 2    | Byte 3    | Byte 4    |
//  |-----------|-----------|-----------|-----------|-----------|
//  | 0000 0000 | 0000 0000 | 0000 0000 | 0000 0000 | 0000 0000 |
//  |-----------|-----------|-----------|-----------|-----------|
//  | p    i    | i    i    | i    f    | f    f    | f    f    |
//
//  integer = 0, fraction = 0, number = 0.000000
//
// Ten (00 00 A0 00 00), the square root of 100
//
//  | Byte 0    | Byte 1    | Byte 2    | Byte 3    | Byte 4    |
//  |-----------|-----------|-----------|-----------|-----------|
//  | 0000 0000 | 0000 0000 | 1010 0000 | 0000 0000 | 0000 0000 |
//  |-----------|-----------|-----------|-----------|-----------|
//  | p    i    | i    i    | i    f    | f    f    | f    f    |
//
//  integer = 10, fraction = 0, number = 10.000000
//
// Largest (FF FF FF FF FF)
//
//  | Byte 0    | Byte 1    | Byte 2    | Byte 3    | Byte 4    |
//  |-----------|-----------|-----------|-----------|-----------|
//  | 1111 1111 | 1111 1111 | 1111 1111 | 1111 1111 | 1111 1111 |
//  |-----------|-----------|-----------|-----------|-----------|
//  | p    i    | i    i    | i    f    | f    f    | f    f    |
//
//  padding = 15 (ignored), integer = 65535, fraction = 1048575,
//  number = 65535.999999
//
package fixed
