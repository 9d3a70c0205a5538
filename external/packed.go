package external

import (
	"github.com/calebcase/dataaccess/bcd"
	"github.com/calebcase/dataaccess/packed"
)

// FromPacked converts a Packed Decimal into an External Decimal of the same
// precision. The sign is written in its preferred form.
func FromPacked(src []byte, sOffset int, dst []byte, dOffset, precision int, t bcd.Type) error {
	name := "external from packed"

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
		dst[l.first+precision-1-i] = bcd.Zone(bcd.Zoned, ds[i])
	}

	l.setSign(dst, packed.Negative(src, sOffset, precision))

	return nil
}

// ToPacked converts an External Decimal into a Packed Decimal of the same
// precision.
func ToPacked(src []byte, sOffset int, dst []byte, dOffset, precision int, t bcd.Type) error {
	name := "external to packed"

	l, err := args(name, src, sOffset, precision, t)
	if err != nil {
		return err
	}

	err = bcd.CheckPacked(name, dst, dOffset, precision)
	if err != nil {
		return err
	}

	var ds [bcd.MaxPrecision]byte
	for i := 0; i < precision; i++ {
		b := src[l.first+precision-1-i]

		ds[i] = bcd.Low(b)
		if ds[i] > 9 {
			return bcd.DigitError.New("%s: byte %02x", name, b)
		}
	}

	packed.Pack(ds[:], dst, dOffset, precision, l.negative(src))

	return nil
}
