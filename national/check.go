package national

import "github.com/calebcase/dataaccess/bcd"

// Check validates the digits and sign of a Unicode Decimal.
func Check(buf []uint16, offset, precision int, t bcd.Type) (c bcd.Condition, err error) {
	name := "check unicode"

	l, err := args(name, buf, offset, precision, t)
	if err != nil {
		return 0, err
	}

	if _, err := l.negative(name, buf); err != nil {
		c |= bcd.SignInvalid
	}

	for i := l.first; i < l.first+precision; i++ {
		if _, err := l.digit(name, buf, i); err != nil {
			c |= bcd.DigitInvalid
		}
	}

	return c, nil
}
