package external

import "github.com/calebcase/dataaccess/bcd"

// Check validates the digits and sign of an External Decimal.
func Check(buf []byte, offset, precision int, t bcd.Type) (bcd.Condition, error) {
	return CheckWith(buf, offset, precision, t, 0)
}

// CheckWith validates the digits and sign of an External Decimal. With the
// embedded trailing sign layout the first bytesWithSpaces digit bytes may
// also be EBCDIC spaces. Other layouts take no spaces.
func CheckWith(buf []byte, offset, precision int, t bcd.Type, bytesWithSpaces int) (c bcd.Condition, err error) {
	name := "check external"

	l, err := args(name, buf, offset, precision, t)
	if err != nil {
		return 0, err
	}

	limit := 0
	if t == bcd.EBCDICSignEmbeddedTrailing {
		limit = precision - 1
	}

	if bytesWithSpaces < 0 || bytesWithSpaces > limit {
		return 0, bcd.ArgumentError.New("%s: %d bytes with spaces outside 0..%d", name, bytesWithSpaces, limit)
	}

	for i := l.first; i < l.first+precision; i++ {
		b := buf[i]

		switch {
		case i-l.first < bytesWithSpaces && bcd.EBCDICSpace.Match(b):
		case i == l.sign:
			if _, ok := bcd.EmbeddedSigns.Match(b); !ok {
				c |= bcd.SignInvalid
			}
			if bcd.Low(b) > 9 {
				c |= bcd.DigitInvalid
			}
		case !bcd.Zoned.Match(b) || bcd.Low(b) > 9:
			c |= bcd.DigitInvalid
		}
	}

	if t.Separate() {
		if _, ok := bcd.SeparateSigns.Match(buf[l.sign]); !ok {
			c |= bcd.SignInvalid
		}
	}

	return c, nil
}
