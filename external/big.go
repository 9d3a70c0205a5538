package external

import (
	"math/big"

	"github.com/calebcase/dataaccess/bcd"
	"github.com/calebcase/dataaccess/packed"
)

// EncodeBigInt writes v as an External Decimal. Values of up to 18 digits
// take the int64 path, wider ones pass through a Packed Decimal.
func EncodeBigInt(v *big.Int, buf []byte, offset, precision int, checkOverflow bool, t bcd.Type) error {
	abs := new(big.Int).Abs(v)

	switch digits := len(abs.String()); {
	case digits <= 9:
		return EncodeInt32(int32(v.Int64()), buf, offset, precision, checkOverflow, t)
	case digits <= 18:
		return EncodeInt64(v.Int64(), buf, offset, precision, checkOverflow, t)
	}

	name := "encode big"

	n, err := bcd.ExternalByteCount(precision, t)
	if err != nil {
		return err
	}

	err = bcd.CheckEncode(name, len(buf), offset, n, precision, checkOverflow)
	if err != nil {
		return err
	}

	var scratch [bcd.MaxPackedBytes]byte
	p := scratch[:bcd.PackedByteCount(precision)]

	err = packed.EncodeBigInt(v, p, 0, precision, checkOverflow)
	if err != nil {
		return err
	}

	return FromPacked(p, 0, buf, offset, precision, t)
}

// DecodeBigInt reads an External Decimal as a big integer. Precisions of up
// to 18 digits take the int64 path, wider ones pass through a Packed
// Decimal.
func DecodeBigInt(buf []byte, offset, precision int, checkOverflow bool, t bcd.Type) (*big.Int, error) {
	switch {
	case precision <= 9:
		v, err := DecodeInt32(buf, offset, precision, checkOverflow, t)
		if err != nil {
			return nil, err
		}
		return big.NewInt(int64(v)), nil
	case precision <= 18:
		v, err := DecodeInt64(buf, offset, precision, checkOverflow, t)
		if err != nil {
			return nil, err
		}
		return big.NewInt(v), nil
	}

	var scratch [bcd.MaxPackedBytes]byte
	p := scratch[:bcd.PackedByteCount(precision)]

	err := ToPacked(buf, offset, p, 0, precision, t)
	if err != nil {
		return nil, err
	}

	return packed.DecodeBigInt(p, 0, precision, checkOverflow)
}
