package packed

import (
	"fmt"
	"math"
	"testing"

	"github.com/calebcase/dataaccess/bcd"
	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
)

func TestEncodeInt64(t *testing.T) {
	type TC struct {
		Mark          error
		Value         int64
		Precision     int
		CheckOverflow bool
		Data          []byte
		Kind          bcd.Kind
	}

	tcs := []TC{
		{
			Mark:          oops.New("unexpected"),
			Value:         123,
			Precision:     5,
			CheckOverflow: true,
			Data:          []byte{0x00, 0x12, 0x3C},
		},
		{
			Mark:          oops.New("unexpected"),
			Value:         -1234,
			Precision:     4,
			CheckOverflow: true,
			Data:          []byte{0x01, 0x23, 0x4D},
		},
		{
			Mark:          oops.New("unexpected"),
			Value:         0,
			Precision:     1,
			CheckOverflow: true,
			Data:          []byte{0x0C},
		},
		{
			Mark:          oops.New("unexpected"),
			Value:         math.MinInt64,
			Precision:     19,
			CheckOverflow: true,
			Data:          []byte{0x92, 0x23, 0x37, 0x20, 0x36, 0x85, 0x47, 0x75, 0x80, 0x8D},
		},
		{
			Mark:          oops.New("unexpected"),
			Value:         math.MaxInt64,
			Precision:     20,
			CheckOverflow: true,
			Data:          []byte{0x00, 0x92, 0x23, 0x37, 0x20, 0x36, 0x85, 0x47, 0x75, 0x80, 0x7C},
		},
		{
			Mark:          oops.New("truncated"),
			Value:         12345,
			Precision:     3,
			CheckOverflow: false,
			Data:          []byte{0x34, 0x5C},
		},
		{
			Mark:          oops.New("truncated even"),
			Value:         -12345,
			Precision:     4,
			CheckOverflow: false,
			Data:          []byte{0x02, 0x34, 0x5D},
		},
		{
			Mark:          oops.New("overflow"),
			Value:         12345,
			Precision:     4,
			CheckOverflow: true,
			Kind:          bcd.Overflow,
		},
		{
			Mark:          oops.New("zero precision"),
			Value:         1,
			Precision:     0,
			CheckOverflow: true,
			Kind:          bcd.Overflow,
		},
		{
			Mark:          oops.New("zero precision unchecked"),
			Value:         1,
			Precision:     0,
			CheckOverflow: false,
			Kind:          bcd.Argument,
		},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%d/%d", tc.Value, tc.Precision), func(t *testing.T) {
			buf := make([]byte, bcd.PackedByteCount(tc.Precision))

			err := EncodeInt64(tc.Value, buf, 0, tc.Precision, tc.CheckOverflow)
			require.Equal(t, tc.Kind, bcd.KindOf(err), tc.Mark)
			if tc.Kind != bcd.None {
				return
			}

			requireBytes(t, tc.Data, buf, tc.Mark)
		})
	}
}

func TestEncodeOffset(t *testing.T) {
	buf := []byte{0xEE, 0xEE, 0xEE, 0xEE, 0xEE}

	require.NoError(t, EncodeInt32(-7, buf, 1, 3, true))
	requireBytes(t, []byte{0xEE, 0x00, 0x7D, 0xEE, 0xEE}, buf)

	err := EncodeInt32(7, buf, 4, 3, true)
	require.Equal(t, bcd.Bounds, bcd.KindOf(err))

	err = EncodeInt32(7, buf, -1, 3, true)
	require.Equal(t, bcd.Bounds, bcd.KindOf(err))
}

func TestRoundTrip(t *testing.T) {
	values := []int64{
		0, 1, -1, 9, -10, 99, 100, -12345, 987654321,
		math.MaxInt32, math.MinInt32,
		math.MaxInt64, math.MinInt64,
	}

	for _, v := range values {
		for precision := bcd.Digits64(v); precision <= 21; precision++ {
			buf := make([]byte, bcd.PackedByteCount(precision)+2)

			require.NoError(t, EncodeInt64(v, buf, 1, precision, true))

			got, err := DecodeInt64(buf, 1, precision, true)
			require.NoError(t, err)
			require.Equal(t, v, got, "precision %d", precision)

			if v >= math.MinInt32 && v <= math.MaxInt32 {
				got32, err := DecodeInt32(buf, 1, precision, true)
				require.NoError(t, err)
				require.Equal(t, int32(v), got32, "precision %d", precision)
			}
		}
	}
}

func TestDecodeBoundaries(t *testing.T) {
	type TC struct {
		Mark    error
		Input   string
		Value32 int32
		Kind32  bcd.Kind
		Value64 int64
		Kind64  bcd.Kind
	}

	tcs := []TC{
		{Mark: oops.New("max int32"), Input: "2147483647", Value32: math.MaxInt32, Value64: math.MaxInt32},
		{Mark: oops.New("min int32"), Input: "-2147483648", Value32: math.MinInt32, Value64: math.MinInt32},
		{Mark: oops.New("past max int32"), Input: "2147483648", Kind32: bcd.Overflow, Value64: 2147483648},
		{Mark: oops.New("past min int32"), Input: "-2147483649", Kind32: bcd.Overflow, Value64: -2147483649},
		{Mark: oops.New("max int64"), Input: "9223372036854775807", Kind32: bcd.Overflow, Value64: math.MaxInt64},
		{Mark: oops.New("min int64"), Input: "-9223372036854775808", Kind32: bcd.Overflow, Value64: math.MinInt64},
		{Mark: oops.New("past max int64"), Input: "9223372036854775808", Kind32: bcd.Overflow, Kind64: bcd.Overflow},
		{Mark: oops.New("past min int64"), Input: "-9223372036854775809", Kind32: bcd.Overflow, Kind64: bcd.Overflow},
		{Mark: oops.New("twenty digits"), Input: "10000000000000000000", Kind32: bcd.Overflow, Kind64: bcd.Overflow},
		{Mark: oops.New("leading zeros"), Input: "-000000000000000000000042", Value32: -42, Value64: -42},
	}

	for _, tc := range tcs {
		t.Run(tc.Input, func(t *testing.T) {
			digits := len(tc.Input)
			if tc.Input[0] == '-' {
				digits--
			}
			buf := mk(t, tc.Input, digits)

			v32, err := DecodeInt32(buf, 0, digits, true)
			require.Equal(t, tc.Kind32, bcd.KindOf(err), tc.Mark)
			if tc.Kind32 == bcd.None {
				require.Equal(t, tc.Value32, v32, tc.Mark)
			}

			v64, err := DecodeInt64(buf, 0, digits, true)
			require.Equal(t, tc.Kind64, bcd.KindOf(err), tc.Mark)
			if tc.Kind64 == bcd.None {
				require.Equal(t, tc.Value64, v64, tc.Mark)
			}
		})
	}
}

func TestDecodeWraps(t *testing.T) {
	buf := mk(t, "2147483648", 10)

	v, err := DecodeInt32(buf, 0, 10, false)
	require.NoError(t, err)
	require.Equal(t, int32(math.MinInt32), v)
}

func TestDecodeAlternateSigns(t *testing.T) {
	type TC struct {
		Sign  byte
		Value int64
	}

	tcs := []TC{
		{Sign: 0x0A, Value: 5},
		{Sign: 0x0B, Value: -5},
		{Sign: 0x0C, Value: 5},
		{Sign: 0x0D, Value: -5},
		{Sign: 0x0E, Value: 5},
		{Sign: 0x0F, Value: 5},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%x", tc.Sign), func(t *testing.T) {
			v, err := DecodeInt64([]byte{0x50 | tc.Sign}, 0, 1, true)
			require.NoError(t, err)
			require.Equal(t, tc.Value, v)
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	_, err := DecodeInt64([]byte{0x1A, 0x2C}, 0, 3, true)
	require.Equal(t, bcd.Digit, bcd.KindOf(err))

	_, err = DecodeInt64([]byte{0x12, 0x34}, 0, 3, true)
	require.Equal(t, bcd.Digit, bcd.KindOf(err))

	// The unused nibble of an even precision is ignored.
	v, err := DecodeInt64([]byte{0xF1, 0x2C}, 0, 2, true)
	require.NoError(t, err)
	require.Equal(t, int64(12), v)
}
