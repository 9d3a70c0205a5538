package decimal

import (
	"math/big"
	"strings"

	"github.com/calebcase/dataaccess/bcd"
	"github.com/calebcase/dataaccess/external"
	"github.com/calebcase/dataaccess/national"
	"github.com/calebcase/dataaccess/packed"
	gv "github.com/govalues/decimal"
)

// Big is a fixed point base 10 number equal to Unscaled * 10^-Scale.
type Big struct {
	Unscaled *big.Int
	Scale    int
}

// New returns unscaled * 10^-scale.
func New(unscaled int64, scale int) Big {
	return Big{Unscaled: big.NewInt(unscaled), Scale: scale}
}

func (b Big) unscaled() *big.Int {
	if b.Unscaled == nil {
		return new(big.Int)
	}

	return b.Unscaled
}

// Sign returns -1, 0 or +1.
func (b Big) Sign() int {
	return b.unscaled().Sign()
}

// String renders the number in plain notation, without an exponent.
func (b Big) String() string {
	u := b.unscaled()

	digits := new(big.Int).Abs(u).String()
	sign := ""
	if u.Sign() < 0 {
		sign = "-"
	}

	switch {
	case b.Scale <= 0:
		if u.Sign() == 0 {
			return "0"
		}
		return sign + digits + strings.Repeat("0", -b.Scale)
	case len(digits) <= b.Scale:
		digits = strings.Repeat("0", b.Scale-len(digits)+1) + digits
	}

	point := len(digits) - b.Scale

	return sign + digits[:point] + "." + digits[point:]
}

// MarshalText implements encoding.TextMarshaler.
func (b Big) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The scale is the number
// of digits after the decimal point.
func (b *Big) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*b = v

	return nil
}

// Parse reads a number in plain notation such as "-12.340".
func Parse(s string) (Big, error) {
	digits := strings.TrimLeft(s, "+-")
	if len(s)-len(digits) > 1 {
		return Big{}, bcd.ArgumentError.New("parse %q: sign", s)
	}

	scale := 0
	if i := strings.IndexByte(digits, '.'); i >= 0 {
		scale = len(digits) - i - 1
		digits = digits[:i] + digits[i+1:]
	}

	if digits == "" || strings.Trim(digits, "0123456789") != "" {
		return Big{}, bcd.ArgumentError.New("parse %q: digits", s)
	}

	u, _ := new(big.Int).SetString(digits, 10)
	if strings.HasPrefix(s, "-") {
		u.Neg(u)
	}

	return Big{Unscaled: u, Scale: scale}, nil
}

// Cmp compares the values of b and o, ignoring any difference in scale.
func (b Big) Cmp(o Big) int {
	x, y := b.unscaled(), o.unscaled()

	switch {
	case b.Scale < o.Scale:
		x = rescale(x, o.Scale-b.Scale)
	case b.Scale > o.Scale:
		y = rescale(y, b.Scale-o.Scale)
	}

	return x.Cmp(y)
}

func rescale(v *big.Int, n int) *big.Int {
	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)

	return p.Mul(p, v)
}

// Decimal converts b into a govalues decimal. The scale must be within
// 0..19 and the coefficient at most 19 digits.
func (b Big) Decimal() (gv.Decimal, error) {
	if b.Scale < 0 || b.Scale > gv.MaxScale {
		return gv.Decimal{}, bcd.ArgumentError.New("decimal: scale %d outside 0..%d", b.Scale, gv.MaxScale)
	}

	if n := len(new(big.Int).Abs(b.unscaled()).String()); n > gv.MaxPrec {
		return gv.Decimal{}, bcd.OverflowError.New("decimal: %d digits exceed %d", n, gv.MaxPrec)
	}

	d, err := gv.Parse(b.String())
	if err != nil {
		return gv.Decimal{}, bcd.ArgumentError.Wrap(err)
	}

	return d, nil
}

// FromDecimal converts a govalues decimal, keeping its scale.
func FromDecimal(d gv.Decimal) Big {
	u := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		u.Neg(u)
	}

	return Big{Unscaled: u, Scale: d.Scale()}
}

// EncodePacked writes the unscaled value of v as a Packed Decimal.
func EncodePacked(v Big, buf []byte, offset, precision int, checkOverflow bool) error {
	return packed.EncodeBigInt(v.unscaled(), buf, offset, precision, checkOverflow)
}

// DecodePacked reads a Packed Decimal as the unscaled value of a number with
// the given scale.
func DecodePacked(buf []byte, offset, precision, scale int, checkOverflow bool) (Big, error) {
	u, err := packed.DecodeBigInt(buf, offset, precision, checkOverflow)
	if err != nil {
		return Big{}, err
	}

	return Big{Unscaled: u, Scale: scale}, nil
}

// EncodeExternal writes the unscaled value of v as an External Decimal.
func EncodeExternal(v Big, buf []byte, offset, precision int, checkOverflow bool, t bcd.Type) error {
	return external.EncodeBigInt(v.unscaled(), buf, offset, precision, checkOverflow, t)
}

// DecodeExternal reads an External Decimal as the unscaled value of a number
// with the given scale.
func DecodeExternal(buf []byte, offset, precision, scale int, checkOverflow bool, t bcd.Type) (Big, error) {
	u, err := external.DecodeBigInt(buf, offset, precision, checkOverflow, t)
	if err != nil {
		return Big{}, err
	}

	return Big{Unscaled: u, Scale: scale}, nil
}

// EncodeUnicode writes the unscaled value of v as a Unicode Decimal.
func EncodeUnicode(v Big, buf []uint16, offset, precision int, checkOverflow bool, t bcd.Type) error {
	return national.EncodeBigInt(v.unscaled(), buf, offset, precision, checkOverflow, t)
}

// DecodeUnicode reads a Unicode Decimal as the unscaled value of a number
// with the given scale.
func DecodeUnicode(buf []uint16, offset, precision, scale int, checkOverflow bool, t bcd.Type) (Big, error) {
	u, err := national.DecodeBigInt(buf, offset, precision, checkOverflow, t)
	if err != nil {
		return Big{}, err
	}

	return Big{Unscaled: u, Scale: scale}, nil
}
