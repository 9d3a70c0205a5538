package packed

import "github.com/calebcase/dataaccess/bcd"

// ShiftRight stores src / 10^n in dst. When round is set and the last
// discarded digit is 5 or more the result is rounded away from zero. A zero
// result is always positive.
func ShiftRight(
	dst []byte, dOffset, dPrecision int,
	src []byte, sOffset, sPrecision int,
	n int, round, checkOverflow bool,
) error {
	name := "shift right"

	err := shiftArgs(name, dst, dOffset, dPrecision, src, sOffset, sPrecision, n)
	if err != nil {
		return err
	}

	if n > sPrecision+1 {
		n = sPrecision + 1
	}

	var sd, dd [bcd.MaxPrecision]byte
	Digits(src, sOffset, sPrecision, sd[:])

	for j := 0; j < dPrecision && j+n < sPrecision; j++ {
		dd[j] = sd[j+n]
	}

	if checkOverflow {
		for i := n + dPrecision; i < sPrecision; i++ {
			if sd[i] != 0 {
				return bcd.OverflowError.New("%s: result exceeds precision %d", name, dPrecision)
			}
		}
	}

	var scratch [bcd.MaxPackedBytes]byte
	out := scratch[:bcd.PackedByteCount(dPrecision)]
	Pack(dd[:], out, 0, dPrecision, Negative(src, sOffset, sPrecision))

	if round && n > 0 && n <= sPrecision && sd[n-1] >= 5 {
		if !increment(out, dPrecision) && checkOverflow {
			return bcd.OverflowError.New("%s: rounded result exceeds precision %d", name, dPrecision)
		}
	}

	finish(dst, dOffset, out)

	return nil
}

// ShiftLeft stores src * 10^n in dst. A zero result is always positive.
func ShiftLeft(
	dst []byte, dOffset, dPrecision int,
	src []byte, sOffset, sPrecision int,
	n int, checkOverflow bool,
) error {
	return shiftLeft("shift left", dst, dOffset, dPrecision, src, sOffset, sPrecision, n, checkOverflow)
}

// Move copies src into dst, changing its precision.
func Move(
	dst []byte, dOffset, dPrecision int,
	src []byte, sOffset, sPrecision int,
	checkOverflow bool,
) error {
	return shiftLeft("move", dst, dOffset, dPrecision, src, sOffset, sPrecision, 0, checkOverflow)
}

func shiftLeft(
	name string,
	dst []byte, dOffset, dPrecision int,
	src []byte, sOffset, sPrecision int,
	n int, checkOverflow bool,
) error {
	err := shiftArgs(name, dst, dOffset, dPrecision, src, sOffset, sPrecision, n)
	if err != nil {
		return err
	}

	if n > dPrecision {
		n = dPrecision
	}

	var sd, dd [bcd.MaxPrecision]byte
	Digits(src, sOffset, sPrecision, sd[:])

	if checkOverflow {
		for i := 0; i < sPrecision; i++ {
			if sd[i] != 0 && i+n >= dPrecision {
				return bcd.OverflowError.New("%s: result exceeds precision %d", name, dPrecision)
			}
		}
	}

	for j := n; j < dPrecision && j-n < sPrecision; j++ {
		dd[j] = sd[j-n]
	}

	var scratch [bcd.MaxPackedBytes]byte
	out := scratch[:bcd.PackedByteCount(dPrecision)]
	Pack(dd[:], out, 0, dPrecision, Negative(src, sOffset, sPrecision))

	finish(dst, dOffset, out)

	return nil
}

func shiftArgs(
	name string,
	dst []byte, dOffset, dPrecision int,
	src []byte, sOffset, sPrecision int,
	n int,
) error {
	err := bcd.CheckSpan(name+" destination", len(dst), dOffset, bcd.PackedByteCount(dPrecision))
	if err != nil {
		return err
	}

	err = bcd.CheckSpan(name+" source", len(src), sOffset, bcd.PackedByteCount(sPrecision))
	if err != nil {
		return err
	}

	err = bcd.CheckPrecision(name+" destination", dPrecision)
	if err != nil {
		return err
	}

	err = bcd.CheckPrecision(name+" source", sPrecision)
	if err != nil {
		return err
	}

	if n < 0 {
		return bcd.ArgumentError.New("%s: negative shift %d", name, n)
	}

	return Validate(name+" source", src, sOffset, sPrecision)
}

// Negative reports if a Packed Decimal carries a negative sign.
func Negative(buf []byte, offset, precision int) bool {
	return bcd.NegativeSign(bcd.Low(buf[offset+bcd.PackedByteCount(precision)-1]))
}

// increment adds one to a packed scratch value. It returns false if the
// carry did not fit, leaving the truncated sum.
func increment(out []byte, precision int) bool {
	end := len(out) - 1

	b, carry := bcd.IncrementUnits(out[end])
	out[end] = b

	for i := end - 1; carry && i >= 0; i-- {
		out[i], carry = bcd.Increment(out[i])
	}

	if precision%2 == 0 && out[0]&0xF0 != 0 {
		out[0] &= 0x0F
		carry = true
	}

	return !carry
}

// finish copies a scratch result into place, re-signing zero as positive.
func finish(dst []byte, offset int, out []byte) {
	end := len(out) - 1

	zero := out[end]&0xF0 == 0
	for i := 0; zero && i < end; i++ {
		zero = out[i] == 0
	}

	if zero {
		out[end] = bcd.SignPlus
	}

	copy(dst[offset:], out)
}
