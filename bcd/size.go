package bcd

// MaxPrecision is the largest digit count of any decimal format.
const MaxPrecision = 253

// MaxPackedBytes is the byte count of a Packed Decimal at MaxPrecision.
const MaxPackedBytes = MaxPrecision/2 + 1

// PackedByteCount returns the bytes occupied by a Packed Decimal.
func PackedByteCount(precision int) int {
	return precision/2 + 1
}

// ExternalByteCount returns the bytes occupied by an External Decimal.
func ExternalByteCount(precision int, t Type) (int, error) {
	if !t.External() {
		return 0, ArgumentError.New("not an external decimal type: %d", int(t))
	}

	if t.Separate() {
		return precision + 1, nil
	}

	return precision, nil
}

// UnicodeCharCount returns the code units occupied by a Unicode Decimal.
func UnicodeCharCount(precision int, t Type) (int, error) {
	if !t.Unicode() {
		return 0, ArgumentError.New("not a unicode decimal type: %d", int(t))
	}

	if t.Separate() {
		return precision + 1, nil
	}

	return precision, nil
}

// CheckSpan fails unless [offset, offset+n) lies within a buffer of size
// elements.
func CheckSpan(name string, size, offset, n int) error {
	if offset < 0 {
		return BoundsError.New("%s: negative offset %d", name, offset)
	}

	if n < 0 {
		n = 0
	}

	if offset > size-n {
		return BoundsError.New("%s: [%d:%d] exceeds length %d", name, offset, offset+n, size)
	}

	return nil
}

// CheckPrecision fails unless precision is within 1..MaxPrecision.
func CheckPrecision(name string, precision int) error {
	if precision < 1 || precision > MaxPrecision {
		return ArgumentError.New("%s: precision %d outside 1..%d", name, precision, MaxPrecision)
	}

	return nil
}

// CheckEncode checks the arguments of an encoder writing n elements. A
// precision below one is an overflow when checkOverflow is set.
func CheckEncode(name string, size, offset, n, precision int, checkOverflow bool) error {
	err := CheckSpan(name, size, offset, n)
	if err != nil {
		return err
	}

	if checkOverflow && precision < 1 {
		return OverflowError.New("%s: precision %d", name, precision)
	}

	return CheckPrecision(name, precision)
}

// CheckPacked validates the span and precision of a Packed Decimal.
func CheckPacked(name string, buf []byte, offset, precision int) error {
	err := CheckSpan(name, len(buf), offset, PackedByteCount(precision))
	if err != nil {
		return err
	}

	return CheckPrecision(name, precision)
}

// CheckExternal validates the span and precision of an External Decimal.
func CheckExternal(name string, buf []byte, offset, precision int, t Type) error {
	n, err := ExternalByteCount(precision, t)
	if err != nil {
		return err
	}

	err = CheckSpan(name, len(buf), offset, n)
	if err != nil {
		return err
	}

	return CheckPrecision(name, precision)
}

// CheckUnicode validates the span and precision of a Unicode Decimal.
func CheckUnicode(name string, buf []uint16, offset, precision int, t Type) error {
	n, err := UnicodeCharCount(precision, t)
	if err != nil {
		return err
	}

	err = CheckSpan(name, len(buf), offset, n)
	if err != nil {
		return err
	}

	return CheckPrecision(name, precision)
}

// Digits32 returns the number of decimal digits in v. Zero has one digit.
func Digits32(v int32) int {
	return Digits64(int64(v))
}

// Digits64 returns the number of decimal digits in v. Zero has one digit.
func Digits64(v int64) int {
	u := uint64(v)
	if v < 0 {
		u = -u
	}

	n := 1
	for u >= 10 {
		u /= 10
		n++
	}

	return n
}
