// Package dataaccess converts between the decimal data formats found in
// mainframe records.
//
// The codecs live in subpackages:
//
//	packed    Packed Decimal (COMP-3) codec and arithmetic
//	external  External (zoned EBCDIC) Decimal codec
//	national  Unicode Decimal codec
//	decimal   scaled decimals over all three formats
//	bcd       layouts, error classes and shared digit tables
//
// This package pivots directly between External and Unicode Decimals and
// renders their bytes as text.
package dataaccess
