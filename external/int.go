package external

import "github.com/calebcase/dataaccess/bcd"

// EncodeInt32 writes v as an External Decimal.
func EncodeInt32(v int32, buf []byte, offset, precision int, checkOverflow bool, t bcd.Type) error {
	return encode("encode int32", int64(v), buf, offset, precision, checkOverflow, t)
}

// EncodeInt64 writes v as an External Decimal.
//
// When checkOverflow is false a value with more digits than precision is
// truncated to its low order digits.
func EncodeInt64(v int64, buf []byte, offset, precision int, checkOverflow bool, t bcd.Type) error {
	return encode("encode int64", v, buf, offset, precision, checkOverflow, t)
}

func encode(name string, v int64, buf []byte, offset, precision int, checkOverflow bool, t bcd.Type) error {
	n, err := bcd.ExternalByteCount(precision, t)
	if err != nil {
		return err
	}

	err = bcd.CheckEncode(name, len(buf), offset, n, precision, checkOverflow)
	if err != nil {
		return err
	}

	if checkOverflow && bcd.Digits64(v) > precision {
		return bcd.OverflowError.New("%s: %d exceeds precision %d", name, v, precision)
	}

	l := newLayout(offset, precision, t)
	negative := v < 0

	for i := l.first + precision - 1; i >= l.first; i-- {
		d := v % 10
		if d < 0 {
			d = -d
		}

		buf[i] = bcd.Zone(bcd.Zoned, byte(d))
		v /= 10
	}

	l.setSign(buf, negative)

	return nil
}

// DecodeInt32 reads an External Decimal as an int32.
func DecodeInt32(buf []byte, offset, precision int, checkOverflow bool, t bcd.Type) (int32, error) {
	name := "decode int32"

	m, negative, err := magnitude(name, buf, offset, precision, 10, checkOverflow, t)
	if err != nil {
		return 0, err
	}

	v, err := bcd.Signed(name, m, negative, checkOverflow, 32)

	return int32(v), err
}

// DecodeInt64 reads an External Decimal as an int64.
func DecodeInt64(buf []byte, offset, precision int, checkOverflow bool, t bcd.Type) (int64, error) {
	name := "decode int64"

	m, negative, err := magnitude(name, buf, offset, precision, 19, checkOverflow, t)
	if err != nil {
		return 0, err
	}

	return bcd.Signed(name, m, negative, checkOverflow, 64)
}

// magnitude accumulates the digits of an External Decimal. Only the digit
// nibble of each byte is read, so embedded signs need no masking.
func magnitude(name string, buf []byte, offset, precision, limit int, checkOverflow bool, t bcd.Type) (m uint64, negative bool, err error) {
	l, err := args(name, buf, offset, precision, t)
	if err != nil {
		return 0, false, err
	}

	significant := 0

	for i := l.first; i < l.first+precision; i++ {
		d := bcd.Low(buf[i])
		if d > 9 {
			return 0, false, bcd.DigitError.New("%s: byte %02x at %d", name, buf[i], i)
		}

		if significant > 0 || d > 0 {
			significant++
		}

		m = m*10 + uint64(d)
	}

	if checkOverflow && significant > limit {
		return 0, false, bcd.OverflowError.New("%s: %d significant digits", name, significant)
	}

	return m, l.negative(buf), nil
}
