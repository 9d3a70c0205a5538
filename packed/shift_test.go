package packed

import (
	"fmt"
	"testing"

	"github.com/calebcase/dataaccess/bcd"
	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
)

func TestShiftRight(t *testing.T) {
	type TC struct {
		Mark          error
		Input         string
		SPrecision    int
		DPrecision    int
		N             int
		Round         bool
		CheckOverflow bool
		Output        string
		Kind          bcd.Kind
	}

	tcs := []TC{
		{Mark: oops.New("unexpected"), Input: "12345", SPrecision: 5, DPrecision: 3, N: 2, Round: true, CheckOverflow: true, Output: "123"},
		{Mark: oops.New("unexpected"), Input: "12355", SPrecision: 5, DPrecision: 3, N: 2, Round: true, CheckOverflow: true, Output: "124"},
		{Mark: oops.New("unexpected"), Input: "12355", SPrecision: 5, DPrecision: 3, N: 2, Round: false, CheckOverflow: true, Output: "123"},
		{Mark: oops.New("unexpected"), Input: "-12399", SPrecision: 5, DPrecision: 4, N: 2, Round: true, CheckOverflow: true, Output: "-124"},
		{Mark: oops.New("identity"), Input: "-12345", SPrecision: 5, DPrecision: 5, N: 0, Round: true, CheckOverflow: true, Output: "-12345"},
		{Mark: oops.New("rounds away"), Input: "-5", SPrecision: 1, DPrecision: 1, N: 1, Round: true, CheckOverflow: true, Output: "-1"},
		{Mark: oops.New("positive zero"), Input: "-4", SPrecision: 1, DPrecision: 1, N: 1, Round: true, CheckOverflow: true, Output: "0"},
		{Mark: oops.New("positive zero"), Input: "-123", SPrecision: 3, DPrecision: 2, N: 7, Round: true, CheckOverflow: true, Output: "0"},
		{Mark: oops.New("lost digits"), Input: "12345", SPrecision: 5, DPrecision: 2, N: 2, CheckOverflow: true, Kind: bcd.Overflow},
		{Mark: oops.New("lost digits truncated"), Input: "12345", SPrecision: 5, DPrecision: 2, N: 2, CheckOverflow: false, Output: "23"},
		{Mark: oops.New("round carry"), Input: "99950", SPrecision: 5, DPrecision: 3, N: 2, Round: true, CheckOverflow: true, Kind: bcd.Overflow},
		{Mark: oops.New("round carry truncated"), Input: "99950", SPrecision: 5, DPrecision: 3, N: 2, Round: true, CheckOverflow: false, Output: "0"},
		{Mark: oops.New("round carry even"), Input: "9950", SPrecision: 4, DPrecision: 2, N: 2, Round: true, CheckOverflow: true, Kind: bcd.Overflow},
		{Mark: oops.New("round carry fits"), Input: "9950", SPrecision: 4, DPrecision: 3, N: 2, Round: true, CheckOverflow: true, Output: "100"},
		{Mark: oops.New("negative shift"), Input: "1", SPrecision: 1, DPrecision: 1, N: -1, Kind: bcd.Argument},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%d/%s>>%d", i, tc.Input, tc.N), func(t *testing.T) {
			src := mk(t, tc.Input, tc.SPrecision)

			dst := make([]byte, bcd.PackedByteCount(tc.DPrecision))
			for i := range dst {
				dst[i] = 0xEE
			}
			before := append([]byte(nil), dst...)

			err := ShiftRight(dst, 0, tc.DPrecision, src, 0, tc.SPrecision, tc.N, tc.Round, tc.CheckOverflow)
			require.Equal(t, tc.Kind, bcd.KindOf(err), tc.Mark)

			if tc.Kind != bcd.None {
				requireBytes(t, before, dst, tc.Mark)
				return
			}

			requireBytes(t, mk(t, tc.Output, tc.DPrecision), dst, tc.Mark)
		})
	}
}

func TestShiftLeft(t *testing.T) {
	type TC struct {
		Mark          error
		Input         string
		SPrecision    int
		DPrecision    int
		N             int
		CheckOverflow bool
		Output        string
		Kind          bcd.Kind
	}

	tcs := []TC{
		{Mark: oops.New("unexpected"), Input: "123", SPrecision: 3, DPrecision: 5, N: 2, CheckOverflow: true, Output: "12300"},
		{Mark: oops.New("unexpected"), Input: "-123", SPrecision: 3, DPrecision: 6, N: 2, CheckOverflow: true, Output: "-12300"},
		{Mark: oops.New("identity"), Input: "-123", SPrecision: 3, DPrecision: 3, N: 0, CheckOverflow: true, Output: "-123"},
		{Mark: oops.New("leading zeros"), Input: "00123", SPrecision: 5, DPrecision: 5, N: 2, CheckOverflow: true, Output: "12300"},
		{Mark: oops.New("lost digits"), Input: "123", SPrecision: 3, DPrecision: 4, N: 2, CheckOverflow: true, Kind: bcd.Overflow},
		{Mark: oops.New("lost digits truncated"), Input: "123", SPrecision: 3, DPrecision: 4, N: 2, CheckOverflow: false, Output: "2300"},
		{Mark: oops.New("shifted out"), Input: "5", SPrecision: 1, DPrecision: 3, N: 3, CheckOverflow: true, Kind: bcd.Overflow},
		{Mark: oops.New("shifted out truncated"), Input: "-5", SPrecision: 1, DPrecision: 3, N: 3, CheckOverflow: false, Output: "0"},
		{Mark: oops.New("zero shifted out"), Input: "-0", SPrecision: 1, DPrecision: 3, N: 10, CheckOverflow: true, Output: "0"},
		{Mark: oops.New("negative shift"), Input: "1", SPrecision: 1, DPrecision: 1, N: -2, Kind: bcd.Argument},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%d/%s<<%d", i, tc.Input, tc.N), func(t *testing.T) {
			src := mk(t, tc.Input, tc.SPrecision)
			dst := make([]byte, bcd.PackedByteCount(tc.DPrecision))

			err := ShiftLeft(dst, 0, tc.DPrecision, src, 0, tc.SPrecision, tc.N, tc.CheckOverflow)
			require.Equal(t, tc.Kind, bcd.KindOf(err), tc.Mark)

			if tc.Kind != bcd.None {
				return
			}

			requireBytes(t, mk(t, tc.Output, tc.DPrecision), dst, tc.Mark)
		})
	}
}

func TestShiftInvalidSource(t *testing.T) {
	dst := make([]byte, 3)

	err := ShiftLeft(dst, 0, 5, []byte{0x12, 0xA4, 0x5C}, 0, 5, 1, true)
	require.Equal(t, bcd.Digit, bcd.KindOf(err))

	err = ShiftRight(dst, 0, 5, []byte{0x12, 0x34, 0x56}, 0, 5, 1, false, true)
	require.Equal(t, bcd.Digit, bcd.KindOf(err))
}

func TestMove(t *testing.T) {
	src := mk(t, "-12345", 5)

	dst := make([]byte, 4)
	require.NoError(t, Move(dst, 0, 7, src, 0, 5, true))
	requireBytes(t, mk(t, "-0012345", 7), dst)

	dst = make([]byte, 2)
	err := Move(dst, 0, 3, src, 0, 5, true)
	require.Equal(t, bcd.Overflow, bcd.KindOf(err))

	require.NoError(t, Move(dst, 0, 3, src, 0, 5, false))
	requireBytes(t, mk(t, "-345", 3), dst)

	// Overlapping source and destination.
	buf := mk(t, "12345", 5)
	require.NoError(t, ShiftRight(buf, 0, 5, buf, 0, 5, 1, true, true))
	requireBytes(t, mk(t, "1235", 5), buf)
}

func TestSetZero(t *testing.T) {
	buf := []byte{0x12, 0x34, 0x5D}

	require.NoError(t, SetZero(buf, 0, 5))
	requireBytes(t, []byte{0x00, 0x00, 0x0C}, buf)

	err := SetZero(buf, 1, 5)
	require.Equal(t, bcd.Bounds, bcd.KindOf(err))
}
