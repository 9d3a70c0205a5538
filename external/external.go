package external

import "github.com/calebcase/dataaccess/bcd"

// layout locates the digits and the sign of an External Decimal.
type layout struct {
	typ   bcd.Type
	first int
	sign  int
}

func newLayout(offset, precision int, t bcd.Type) layout {
	l := layout{typ: t, first: offset}

	switch t {
	case bcd.EBCDICSignEmbeddedTrailing:
		l.sign = offset + precision - 1
	case bcd.EBCDICSignEmbeddedLeading:
		l.sign = offset
	case bcd.EBCDICSignSeparateTrailing:
		l.sign = offset + precision
	case bcd.EBCDICSignSeparateLeading:
		l.sign = offset
		l.first = offset + 1
	}

	return l
}

// args checks the span, precision and type of an External Decimal.
func args(name string, buf []byte, offset, precision int, t bcd.Type) (l layout, err error) {
	err = bcd.CheckExternal(name, buf, offset, precision, t)
	if err != nil {
		return l, err
	}

	return newLayout(offset, precision, t), nil
}

func (l layout) negative(buf []byte) bool {
	b := buf[l.sign]

	if l.typ.Separate() {
		return bcd.SeparateMinus.Match(b)
	}

	_, ok := bcd.NegativeZones.Match(b)

	return ok
}

func (l layout) setSign(buf []byte, negative bool) {
	if l.typ.Separate() {
		c := bcd.SeparatePlus
		if negative {
			c = bcd.SeparateMinus
		}

		buf[l.sign] = c.Prefix

		return
	}

	c := bcd.ZonedPlus
	if negative {
		c = bcd.ZonedMinus
	}

	buf[l.sign] = bcd.Zone(c, buf[l.sign])
}
