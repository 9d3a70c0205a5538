// Package packed converts and computes on Packed Decimal data in place.
//
// Every function takes a buffer, an offset and a precision and touches
// exactly PackedByteCount(precision) bytes starting at the offset. Spans and
// precisions are checked before anything is read or written.
//
// The arithmetic works digit pair by digit pair through the tables in
// package bcd. Multiply, Divide and Remainder use int64 arithmetic when all
// precisions permit and big integers otherwise. Results are computed into
// stack scratch space, so a destination may overlap its operands and is left
// untouched when an overflow is reported.
package packed
