// Package national converts Unicode Decimal data: one UTF-16 code unit per
// digit ('0'-'9') with an optional separate leading or trailing '+' or '-'.
package national

import "github.com/calebcase/dataaccess/bcd"

// layout locates the digits and the sign of a Unicode Decimal. Unsigned
// layouts have no sign.
type layout struct {
	first int
	sign  int
}

func newLayout(offset, precision int, t bcd.Type) layout {
	l := layout{first: offset, sign: -1}

	switch t {
	case bcd.UnicodeSignSeparateLeading:
		l.sign = offset
		l.first = offset + 1
	case bcd.UnicodeSignSeparateTrailing:
		l.sign = offset + precision
	}

	return l
}

func args(name string, buf []uint16, offset, precision int, t bcd.Type) (l layout, err error) {
	err = bcd.CheckUnicode(name, buf, offset, precision, t)
	if err != nil {
		return l, err
	}

	return newLayout(offset, precision, t), nil
}

// negative reads the sign character. Anything but '+' or '-' is invalid.
func (l layout) negative(name string, buf []uint16) (bool, error) {
	if l.sign < 0 {
		return false, nil
	}

	switch buf[l.sign] {
	case bcd.UnicodePlus:
		return false, nil
	case bcd.UnicodeMinus:
		return true, nil
	}

	return false, bcd.DigitError.New("%s: sign %q", name, rune(buf[l.sign]))
}

func (l layout) setSign(buf []uint16, negative bool) {
	if l.sign < 0 {
		return
	}

	buf[l.sign] = bcd.UnicodePlus
	if negative {
		buf[l.sign] = bcd.UnicodeMinus
	}
}

func (l layout) digit(name string, buf []uint16, i int) (byte, error) {
	c := buf[i]
	if c < bcd.UnicodeZone || c > bcd.UnicodeZone+9 {
		return 0, bcd.DigitError.New("%s: character %q at %d", name, rune(c), i)
	}

	return byte(c - bcd.UnicodeZone), nil
}
