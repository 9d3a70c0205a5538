package packed

import (
	"math/big"

	"github.com/calebcase/dataaccess/bcd"
)

// EncodeBigInt writes v as a Packed Decimal of the given precision. Values
// of up to 18 digits take the int64 path.
func EncodeBigInt(v *big.Int, buf []byte, offset, precision int, checkOverflow bool) error {
	abs := new(big.Int).Abs(v).String()

	switch {
	case len(abs) <= 9:
		return EncodeInt32(int32(v.Int64()), buf, offset, precision, checkOverflow)
	case len(abs) <= 18:
		return EncodeInt64(v.Int64(), buf, offset, precision, checkOverflow)
	}

	name := "encode big"

	err := bcd.CheckEncode(name, len(buf), offset, bcd.PackedByteCount(precision), precision, checkOverflow)
	if err != nil {
		return err
	}

	return putDigits(name, buf, offset, precision, abs, v.Sign() < 0, checkOverflow)
}

// DecodeBigInt reads a Packed Decimal as a big integer. Precisions of up to
// 18 digits take the int64 path.
func DecodeBigInt(buf []byte, offset, precision int, checkOverflow bool) (*big.Int, error) {
	switch {
	case precision <= 9:
		v, err := DecodeInt32(buf, offset, precision, checkOverflow)
		if err != nil {
			return nil, err
		}
		return big.NewInt(int64(v)), nil
	case precision <= 18:
		v, err := DecodeInt64(buf, offset, precision, checkOverflow)
		if err != nil {
			return nil, err
		}
		return big.NewInt(v), nil
	}

	name := "decode big"

	err := bcd.CheckPacked(name, buf, offset, precision)
	if err != nil {
		return nil, err
	}

	err = Validate(name, buf, offset, precision)
	if err != nil {
		return nil, err
	}

	return bigInt(buf, offset, precision), nil
}

// bigInt builds a big integer from the digit string of a valid Packed
// Decimal.
func bigInt(buf []byte, offset, precision int) *big.Int {
	var ds [bcd.MaxPrecision]byte
	Digits(buf, offset, precision, ds[:])

	s := make([]byte, 0, precision+1)
	if Negative(buf, offset, precision) {
		s = append(s, '-')
	}
	for i := precision - 1; i >= 0; i-- {
		s = append(s, '0'+ds[i])
	}

	v, _ := new(big.Int).SetString(string(s), 10)

	return v
}

// putDigits stores a string of decimal digits, most significant first.
func putDigits(name string, dst []byte, offset, precision int, ds string, negative, checkOverflow bool) error {
	mag := make([]byte, len(ds)/2+1)

	for i := 0; i < len(ds); i++ {
		d := ds[len(ds)-1-i] - '0'
		j := len(mag) - 1 - (i+1)/2
		if i%2 == 1 {
			mag[j] |= d
		} else {
			mag[j] |= d << 4
		}
	}

	return store(name, dst, offset, precision, mag, negative, checkOverflow)
}

// putBig stores v. A zero result carries the sign given by negativeZero.
func putBig(name string, dst []byte, offset, precision int, v *big.Int, negativeZero, checkOverflow bool) error {
	negative := v.Sign() < 0
	if v.Sign() == 0 {
		negative = negativeZero
	}

	return putDigits(name, dst, offset, precision, new(big.Int).Abs(v).String(), negative, checkOverflow)
}
