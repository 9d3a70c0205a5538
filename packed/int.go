package packed

import "github.com/calebcase/dataaccess/bcd"

// EncodeInt32 writes v as a Packed Decimal of the given precision.
func EncodeInt32(v int32, buf []byte, offset, precision int, checkOverflow bool) error {
	return encode("encode int32", int64(v), buf, offset, precision, checkOverflow)
}

// EncodeInt64 writes v as a Packed Decimal of the given precision.
//
// When checkOverflow is false a value with more digits than precision is
// truncated to its low order digits.
func EncodeInt64(v int64, buf []byte, offset, precision int, checkOverflow bool) error {
	return encode("encode int64", v, buf, offset, precision, checkOverflow)
}

func encode(name string, v int64, buf []byte, offset, precision int, checkOverflow bool) error {
	err := bcd.CheckEncode(name, len(buf), offset, bcd.PackedByteCount(precision), precision, checkOverflow)
	if err != nil {
		return err
	}

	if checkOverflow && bcd.Digits64(v) > precision {
		return bcd.OverflowError.New("%s: %d exceeds precision %d", name, v, precision)
	}

	putInt64(v, buf, offset, precision)

	return nil
}

// putInt64 writes the low order precision digits of v without any checks.
func putInt64(v int64, buf []byte, offset, precision int) {
	end := offset + bcd.PackedByteCount(precision) - 1

	buf[end] = bcd.SignedPair(v%10)<<4 | bcd.PreferredSign(v < 0)
	v /= 10

	for i := end - 1; i >= offset; i-- {
		buf[i] = bcd.SignedPair(v % 100)
		v /= 100
	}

	if precision%2 == 0 {
		buf[offset] &= 0x0F
	}
}

// DecodeInt32 reads a Packed Decimal as an int32.
//
// When checkOverflow is false a value outside the int32 range wraps.
func DecodeInt32(buf []byte, offset, precision int, checkOverflow bool) (int32, error) {
	name := "decode int32"

	m, negative, err := magnitude(name, buf, offset, precision, 10, checkOverflow)
	if err != nil {
		return 0, err
	}

	v, err := bcd.Signed(name, m, negative, checkOverflow, 32)

	return int32(v), err
}

// DecodeInt64 reads a Packed Decimal as an int64.
//
// When checkOverflow is false a value outside the int64 range wraps.
func DecodeInt64(buf []byte, offset, precision int, checkOverflow bool) (int64, error) {
	name := "decode int64"

	m, negative, err := magnitude(name, buf, offset, precision, 19, checkOverflow)
	if err != nil {
		return 0, err
	}

	return bcd.Signed(name, m, negative, checkOverflow, 64)
}

// magnitude accumulates the digits of a Packed Decimal. The accumulation
// wraps silently. Having more than limit significant digits is an overflow
// when checkOverflow is set.
func magnitude(name string, buf []byte, offset, precision, limit int, checkOverflow bool) (m uint64, negative bool, err error) {
	err = bcd.CheckPacked(name, buf, offset, precision)
	if err != nil {
		return 0, false, err
	}

	c := check(buf, offset, precision, CheckOptions{IgnoreHighNibble: true})
	if !c.Valid() {
		return 0, false, bcd.DigitError.New("%s: %s", name, c)
	}

	end := offset + bcd.PackedByteCount(precision) - 1
	significant := 0

	for i := offset; i < end; i++ {
		b := buf[i]
		if i == offset && precision%2 == 0 {
			b &= 0x0F
		}

		v, _ := bcd.PairValue(b)

		switch {
		case significant > 0:
			significant += 2
		case v >= 10:
			significant = 2
		case v > 0:
			significant = 1
		}

		m = m*100 + uint64(v)
	}

	u := bcd.High(buf[end])
	if significant > 0 || u > 0 {
		significant++
	}
	m = m*10 + uint64(u)

	if checkOverflow && significant > limit {
		return 0, false, bcd.OverflowError.New("%s: %d significant digits", name, significant)
	}

	return m, bcd.NegativeSign(bcd.Low(buf[end])), nil
}
