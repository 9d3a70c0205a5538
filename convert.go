package dataaccess

import (
	"github.com/calebcase/dataaccess/bcd"
	"github.com/calebcase/dataaccess/external"
	"github.com/calebcase/dataaccess/national"
)

// ExternalToUnicode converts an External Decimal into a Unicode Decimal of the
// same precision. Invalid digits are rejected.
func ExternalToUnicode(src []byte, sOffset int, sType bcd.Type, dst []uint16, dOffset int, dType bcd.Type, precision int) error {
	err := bcd.CheckPrecision("external to unicode", precision)
	if err != nil {
		return err
	}

	var scratch [bcd.MaxPackedBytes]byte
	p := scratch[:bcd.PackedByteCount(precision)]

	err = external.ToPacked(src, sOffset, p, 0, precision, sType)
	if err != nil {
		return err
	}

	return national.FromPacked(p, 0, dst, dOffset, precision, dType)
}

// UnicodeToExternal converts a Unicode Decimal into an External Decimal of the
// same precision. Invalid digits or signs are rejected.
func UnicodeToExternal(src []uint16, sOffset int, sType bcd.Type, dst []byte, dOffset int, dType bcd.Type, precision int) error {
	err := bcd.CheckPrecision("unicode to external", precision)
	if err != nil {
		return err
	}

	var scratch [bcd.MaxPackedBytes]byte
	p := scratch[:bcd.PackedByteCount(precision)]

	err = national.ToPacked(src, sOffset, p, 0, precision, sType)
	if err != nil {
		return err
	}

	return external.FromPacked(p, 0, dst, dOffset, precision, dType)
}
