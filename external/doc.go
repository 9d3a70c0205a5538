// Package external converts External (zoned EBCDIC) Decimal data.
//
// Digits are written as 0xF0-0xF9. An embedded sign replaces the zone of the
// first or last digit with 0xC or 0xD and a separate sign is a 0x4E or 0x60
// byte. Zones 0xD and 0xB and the byte 0x60 read as negative.
package external
