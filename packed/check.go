package packed

import "github.com/calebcase/dataaccess/bcd"

// CheckOptions control the handling of the unused high nibble of an even
// precision Packed Decimal.
type CheckOptions struct {
	// IgnoreHighNibble skips validation of the unused nibble.
	IgnoreHighNibble bool

	// OverwriteHighNibble zeroes the unused nibble in place before the
	// scan.
	OverwriteHighNibble bool
}

// Check validates the digits and sign of a Packed Decimal.
func Check(buf []byte, offset, precision int) (bcd.Condition, error) {
	return CheckWith(buf, offset, precision, CheckOptions{})
}

// CheckWith validates the digits and sign of a Packed Decimal.
func CheckWith(buf []byte, offset, precision int, opts CheckOptions) (c bcd.Condition, err error) {
	err = bcd.CheckPacked("check", buf, offset, precision)
	if err != nil {
		return 0, err
	}

	return check(buf, offset, precision, opts), nil
}

func check(buf []byte, offset, precision int, opts CheckOptions) (c bcd.Condition) {
	end := offset + bcd.PackedByteCount(precision) - 1
	i := offset

	if precision%2 == 0 {
		if opts.OverwriteHighNibble {
			buf[offset] &= 0x0F
		}

		if opts.IgnoreHighNibble {
			if bcd.Low(buf[offset]) > 9 {
				c |= bcd.DigitInvalid
			}
			i++
		}
	}

	for ; i < end; i++ {
		if bcd.High(buf[i]) > 9 || bcd.Low(buf[i]) > 9 {
			c |= bcd.DigitInvalid
		}
	}

	if bcd.High(buf[end]) > 9 {
		c |= bcd.DigitInvalid
	}

	if !bcd.ValidSign(bcd.Low(buf[end])) {
		c |= bcd.SignInvalid
	}

	return c
}
