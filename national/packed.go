package national

import (
	"github.com/calebcase/dataaccess/bcd"
	"github.com/calebcase/dataaccess/packed"
)

// FromPacked converts a Packed Decimal into a Unicode Decimal of the same
// precision.
func FromPacked(src []byte, sOffset int, dst []uint16, dOffset, precision int, t bcd.Type) error {
	name := "unicode from packed"

	err := bcd.CheckPacked(name, src, sOffset, precision)
	if err != nil {
		return err
	}

	l, err := args(name, dst, dOffset, precision, t)
	if err != nil {
		return err
	}

	err = packed.Validate(name, src, sOffset, precision)
	if err != nil {
		return err
	}

	var ds [bcd.MaxPrecision]byte
	packed.Digits(src, sOffset, precision, ds[:])

	for i := 0; i < precision; i++ {
		dst[l.first+precision-1-i] = bcd.UnicodeZone | uint16(ds[i])
	}

	l.setSign(dst, packed.Negative(src, sOffset, precision))

	return nil
}

// ToPacked converts a Unicode Decimal into a Packed Decimal of the same
// precision.
func ToPacked(src []uint16, sOffset int, dst []byte, dOffset, precision int, t bcd.Type) error {
	name := "unicode to packed"

	l, err := args(name, src, sOffset, precision, t)
	if err != nil {
		return err
	}

	err = bcd.CheckPacked(name, dst, dOffset, precision)
	if err != nil {
		return err
	}

	negative, err := l.negative(name, src)
	if err != nil {
		return err
	}

	var ds [bcd.MaxPrecision]byte
	for i := 0; i < precision; i++ {
		ds[i], err = l.digit(name, src, l.first+precision-1-i)
		if err != nil {
			return err
		}
	}

	packed.Pack(ds[:], dst, dOffset, precision, negative)

	return nil
}
