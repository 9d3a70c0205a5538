package decimal

import (
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/calebcase/dataaccess/bcd"
	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	gv "github.com/govalues/decimal"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	type TC struct {
		Mark     error
		Unscaled int64
		Scale    int
		Output   string
	}

	tcs := []TC{
		{Mark: oops.New("integer"), Unscaled: 123, Scale: 0, Output: "123"},
		{Mark: oops.New("fraction"), Unscaled: 123, Scale: 2, Output: "1.23"},
		{Mark: oops.New("leading zeros"), Unscaled: -5, Scale: 3, Output: "-0.005"},
		{Mark: oops.New("zero"), Unscaled: 0, Scale: 2, Output: "0.00"},
		{Mark: oops.New("negative scale"), Unscaled: 12, Scale: -3, Output: "12000"},
		{Mark: oops.New("negative zero scale"), Unscaled: 0, Scale: -3, Output: "0"},
	}

	for _, tc := range tcs {
		b := New(tc.Unscaled, tc.Scale)
		require.Equal(t, tc.Output, b.String(), tc.Mark)

		if tc.Scale < 0 {
			continue
		}

		p, err := Parse(tc.Output)
		require.NoError(t, err, tc.Mark)
		require.Equal(t, 0, p.Cmp(b), tc.Mark)
		require.Equal(t, tc.Scale, p.Scale, tc.Mark)
	}

	require.Equal(t, "0", Big{}.String())
}

func TestParse(t *testing.T) {
	for _, s := range []string{"", "-", "+-1", "1.2.3", "1e5", " 1"} {
		_, err := Parse(s)
		require.Equal(t, bcd.Argument, bcd.KindOf(err), s)
	}

	var b Big
	require.NoError(t, b.UnmarshalText([]byte("+0012.50")))
	require.Equal(t, 2, b.Scale)
	require.Equal(t, int64(1250), b.Unscaled.Int64())

	text, err := b.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "12.50", string(text))
}

func TestCmp(t *testing.T) {
	require.Equal(t, 0, New(150, 2).Cmp(New(15, 1)))
	require.Equal(t, -1, New(-1, 0).Cmp(New(1, 5)))
	require.Equal(t, 1, New(1, -2).Cmp(New(99, 0)))
	require.Equal(t, 0, Big{}.Cmp(New(0, 4)))
}

func TestPacked(t *testing.T) {
	buf := []byte{0x12, 0x34, 0x56, 0x7D}

	b, err := DecodePacked(buf, 0, 7, 2, true)
	require.NoError(t, err)
	require.Equal(t, "-12345.67", b.String(), spew.Sdump(b))

	out := make([]byte, 4)
	require.NoError(t, EncodePacked(b, out, 0, 7, true))
	require.Equal(t, buf, out)

	err = EncodePacked(New(12345678, 2), out, 0, 7, true)
	require.Equal(t, bcd.Overflow, bcd.KindOf(err))
}

func TestExternalUnicode(t *testing.T) {
	values := []Big{
		New(-4500, 2),
		New(7, 0),
		{Unscaled: new(big.Int).SetBytes([]byte(strings.Repeat("\xff", 40))), Scale: 30},
	}

	for i, v := range values {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			precision := len(new(big.Int).Abs(v.Unscaled).String())

			e := make([]byte, precision+1)
			require.NoError(t, EncodeExternal(v, e, 0, precision, true, bcd.EBCDICSignSeparateLeading))

			got, err := DecodeExternal(e, 0, precision, v.Scale, true, bcd.EBCDICSignSeparateLeading)
			require.NoError(t, err)
			require.Equal(t, 0, v.Cmp(got), spew.Sdump(e))

			u := make([]uint16, precision+1)
			require.NoError(t, EncodeUnicode(v, u, 0, precision, true, bcd.UnicodeSignSeparateTrailing))

			got, err = DecodeUnicode(u, 0, precision, v.Scale, true, bcd.UnicodeSignSeparateTrailing)
			require.NoError(t, err)
			require.Equal(t, 0, v.Cmp(got), spew.Sdump(u))
		})
	}
}

func TestDecimal(t *testing.T) {
	type TC struct {
		Mark  error
		Value Big
		Kind  bcd.Kind
	}

	tcs := []TC{
		{Mark: oops.New("unexpected"), Value: New(-12345, 3)},
		{Mark: oops.New("unexpected"), Value: New(9, 19)},
		{Mark: oops.New("negative scale"), Value: New(1, -1), Kind: bcd.Argument},
		{Mark: oops.New("wide scale"), Value: New(1, 20), Kind: bcd.Argument},
		{Mark: oops.New("wide coefficient"), Value: Big{Unscaled: new(big.Int).Exp(big.NewInt(10), big.NewInt(19), nil)}, Kind: bcd.Overflow},
	}

	for _, tc := range tcs {
		d, err := tc.Value.Decimal()
		require.Equal(t, tc.Kind, bcd.KindOf(err), tc.Mark)
		if tc.Kind != bcd.None {
			continue
		}

		require.Equal(t, tc.Value.String(), d.String(), tc.Mark)
		require.Equal(t, 0, FromDecimal(d).Cmp(tc.Value), tc.Mark)
		require.Equal(t, tc.Value.Scale, FromDecimal(d).Scale, tc.Mark)
	}

	d, err := gv.Parse("-0.50")
	require.NoError(t, err)
	require.Equal(t, "-0.50", FromDecimal(d).String())
}
