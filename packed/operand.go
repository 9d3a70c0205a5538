package packed

import "github.com/calebcase/dataaccess/bcd"

// operand is a read only view of one Packed Decimal argument. Digit pairs
// are read with the sign nibble and the unused high nibble of an even
// precision masked out, so the last byte contributes its units digit as
// tens of a pair.
type operand struct {
	buf       []byte
	offset    int
	first     int
	end       int
	precision int
	negative  bool
}

func newOperand(buf []byte, offset, precision int) operand {
	o := operand{
		buf:       buf,
		offset:    offset,
		first:     offset,
		end:       offset + bcd.PackedByteCount(precision) - 1,
		precision: precision,
	}
	o.negative = bcd.NegativeSign(bcd.Low(buf[o.end]))

	for o.first < o.end && o.at(o.first) == 0 {
		o.first++
	}

	return o
}

// at returns the masked byte at index i.
func (o *operand) at(i int) byte {
	b := o.buf[i]

	switch {
	case i == o.end:
		return b & 0xF0
	case i == o.offset && o.precision%2 == 0:
		return b & 0x0F
	}

	return b
}

// fromRight returns the k-th masked byte counting from the sign byte. Bytes
// beyond the significant ones are zero.
func (o *operand) fromRight(k int) byte {
	i := o.end - k
	if i < o.first {
		return 0
	}

	return o.at(i)
}

// bytes returns the count of significant bytes.
func (o *operand) bytes() int {
	return o.end - o.first + 1
}

func (o *operand) zero() bool {
	return o.first == o.end && o.at(o.end) == 0
}

// magnitudeCmp compares the absolute values of two operands.
func magnitudeCmp(a, b *operand) int {
	n := a.bytes()
	if b.bytes() > n {
		n = b.bytes()
	}

	for k := n - 1; k >= 0; k-- {
		x, y := a.fromRight(k), b.fromRight(k)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}

	return 0
}

// Validate fails with a DigitError unless the Packed Decimal holds only
// digits and a valid sign. The unused nibble of an even precision is
// ignored. The span must already be checked.
func Validate(name string, buf []byte, offset, precision int) error {
	c := check(buf, offset, precision, CheckOptions{IgnoreHighNibble: true})
	if !c.Valid() {
		return bcd.DigitError.New("%s: %s", name, c)
	}

	return nil
}

// store fits a right aligned magnitude into the destination. The last byte
// of mag holds the units digit in its high nibble. Digits that do not fit
// are an overflow when checkOverflow is set, otherwise they are dropped. The
// destination is only written once the result is known to fit.
func store(name string, dst []byte, offset, precision int, mag []byte, negative, checkOverflow bool) error {
	size := bcd.PackedByteCount(precision)
	end := offset + size - 1

	if checkOverflow {
		lost := false
		for k := size; k < len(mag); k++ {
			if mag[len(mag)-1-k] != 0 {
				lost = true
			}
		}

		if precision%2 == 0 && size <= len(mag) && mag[len(mag)-size]&0xF0 != 0 {
			lost = true
		}

		if lost {
			return bcd.OverflowError.New("%s: result exceeds precision %d", name, precision)
		}
	}

	for k := 0; k < size; k++ {
		var b byte
		if k < len(mag) {
			b = mag[len(mag)-1-k]
		}
		dst[end-k] = b
	}

	if precision%2 == 0 {
		dst[offset] &= 0x0F
	}

	dst[end] = dst[end]&0xF0 | bcd.PreferredSign(negative)

	return nil
}

// Digits unpacks the digits of a Packed Decimal into ds, least significant
// first. No checks are made.
func Digits(buf []byte, offset, precision int, ds []byte) {
	end := offset + bcd.PackedByteCount(precision) - 1

	for i := 0; i < precision; i++ {
		b := buf[end-(i+1)/2]
		if i%2 == 1 {
			ds[i] = bcd.Low(b)
		} else {
			ds[i] = bcd.High(b)
		}
	}
}

// Pack writes the first precision digits of ds, least significant first, as
// a Packed Decimal with a preferred sign. No checks are made.
func Pack(ds []byte, buf []byte, offset, precision int, negative bool) {
	size := bcd.PackedByteCount(precision)
	end := offset + size - 1

	for i := offset; i < end; i++ {
		buf[i] = 0
	}
	buf[end] = bcd.PreferredSign(negative)

	for i := 0; i < precision; i++ {
		if i%2 == 1 {
			buf[end-(i+1)/2] |= ds[i]
		} else {
			buf[end-(i+1)/2] |= ds[i] << 4
		}
	}
}
