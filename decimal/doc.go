// Package decimal provides a fixed point base 10 number backed by the packed,
// external and national codecs.
//
// The equation for a decimal number is:
//
//	number = unscaled * 10 ^ -scale
//
// Where unscaled is an arbitrary precision integer and scale is the number of
// digits after the decimal point. For example:
//
//	1.23 = 123 * 10^-2
//
// Decimal data carries no scale. Encoding writes the unscaled integer and
// decoding attaches the scale supplied by the caller, which is normally taken
// from the record layout:
//
//	PIC S9(5)V99 COMP-3, bytes 0x12 0x34 0x56 0x7D, scale 2 = -12345.67
//
// Numbers whose scale is within 0..19 and whose unscaled value has at most 19
// digits also convert to and from github.com/govalues/decimal.
package decimal
