package packed

import "github.com/calebcase/dataaccess/bcd"

// Add stores a + b in the result. The result may overlap either operand.
func Add(
	result []byte, rOffset, rPrecision int,
	a []byte, aOffset, aPrecision int,
	b []byte, bOffset, bPrecision int,
	checkOverflow bool,
) error {
	return addOrSubtract("add", result, rOffset, rPrecision, a, aOffset, aPrecision, b, bOffset, bPrecision, false, checkOverflow)
}

// Subtract stores a - b in the result. The result may overlap either
// operand.
func Subtract(
	result []byte, rOffset, rPrecision int,
	a []byte, aOffset, aPrecision int,
	b []byte, bOffset, bPrecision int,
	checkOverflow bool,
) error {
	return addOrSubtract("subtract", result, rOffset, rPrecision, a, aOffset, aPrecision, b, bOffset, bPrecision, true, checkOverflow)
}

// operands checks the bounds of all three arguments before the precisions
// and contents of the operands.
func operands(
	name string,
	result []byte, rOffset, rPrecision int,
	a []byte, aOffset, aPrecision int,
	b []byte, bOffset, bPrecision int,
) error {
	err := bcd.CheckSpan(name+" result", len(result), rOffset, bcd.PackedByteCount(rPrecision))
	if err != nil {
		return err
	}

	err = bcd.CheckSpan(name+" op1", len(a), aOffset, bcd.PackedByteCount(aPrecision))
	if err != nil {
		return err
	}

	err = bcd.CheckSpan(name+" op2", len(b), bOffset, bcd.PackedByteCount(bPrecision))
	if err != nil {
		return err
	}

	for _, p := range []int{rPrecision, aPrecision, bPrecision} {
		err = bcd.CheckPrecision(name, p)
		if err != nil {
			return err
		}
	}

	err = Validate(name+" op1", a, aOffset, aPrecision)
	if err != nil {
		return err
	}

	return Validate(name+" op2", b, bOffset, bPrecision)
}

func addOrSubtract(
	name string,
	result []byte, rOffset, rPrecision int,
	a []byte, aOffset, aPrecision int,
	b []byte, bOffset, bPrecision int,
	negate, checkOverflow bool,
) error {
	err := operands(name, result, rOffset, rPrecision, a, aOffset, aPrecision, b, bOffset, bPrecision)
	if err != nil {
		return err
	}

	x := newOperand(a, aOffset, aPrecision)
	y := newOperand(b, bOffset, bPrecision)
	if negate {
		y.negative = !y.negative
	}

	n := x.bytes()
	if y.bytes() > n {
		n = y.bytes()
	}
	n++

	var scratch [bcd.MaxPackedBytes + 1]byte
	mag := scratch[len(scratch)-n:]

	if x.negative == y.negative {
		carry := false
		for k := 0; k < n; k++ {
			mag[n-1-k], carry = bcd.AddPair(x.fromRight(k), y.fromRight(k), carry)
		}

		return store(name, result, rOffset, rPrecision, mag, x.negative, checkOverflow)
	}

	hi, lo := &x, &y
	switch magnitudeCmp(&x, &y) {
	case 0:
		return SetZero(result, rOffset, rPrecision)
	case -1:
		hi, lo = &y, &x
	}

	borrow := false
	for k := 0; k < n; k++ {
		mag[n-1-k], borrow = bcd.SubPair(hi.fromRight(k), lo.fromRight(k), borrow)
	}

	return store(name, result, rOffset, rPrecision, mag, hi.negative, checkOverflow)
}

// SetZero writes a positive zero.
func SetZero(buf []byte, offset, precision int) error {
	err := bcd.CheckPacked("set zero", buf, offset, precision)
	if err != nil {
		return err
	}

	end := offset + bcd.PackedByteCount(precision) - 1
	for i := offset; i < end; i++ {
		buf[i] = 0
	}
	buf[end] = bcd.SignPlus

	return nil
}
