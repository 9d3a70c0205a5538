// Package bcd provides the building blocks shared by the decimal formats:
// byte arithmetic tables, sign codes, sizes, bounds checks and error classes.
//
// # Packed Decimal
//
// A Packed Decimal of precision p occupies p/2+1 bytes. Each byte holds two
// binary coded decimal digits and the low nibble of the last byte holds the
// sign. When p is even the high nibble of the first byte is unused and
// conventionally zero.
//
//	+12345 (p=5)   | 0x12 | 0x34 | 0x5C |
//	-1234  (p=4)   | 0x01 | 0x23 | 0x4D |
//
// Sign nibbles 0xA, 0xC, 0xE and 0xF are positive and 0xB and 0xD are
// negative. Only 0xC and 0xD are ever written.
//
// # External Decimal
//
// An External (zoned) Decimal holds one EBCDIC digit per byte (0xF0-0xF9).
// The sign is either embedded in the zone nibble of the first or last digit
// byte or carried in a separate leading or trailing byte (0x4E or 0x60).
//
//	-45 (p=2, embedded trailing)   | 0xF4 | 0xD5 |
//	-45 (p=2, separate leading)    | 0x60 | 0xF4 | 0xF5 |
//
// # Unicode Decimal
//
// A Unicode Decimal holds one UTF-16 code unit per digit ('0'-'9') and
// optionally a separate leading or trailing '+' or '-'.
package bcd
