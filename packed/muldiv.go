package packed

import "github.com/calebcase/dataaccess/bcd"

type binaryOp int

const (
	multiply binaryOp = iota
	divide
	remainder
)

var binaryOpNames = [...]string{
	multiply:  "multiply",
	divide:    "divide",
	remainder: "remainder",
}

// Multiply stores a * b in the result.
func Multiply(
	result []byte, rOffset, rPrecision int,
	a []byte, aOffset, aPrecision int,
	b []byte, bOffset, bPrecision int,
	checkOverflow bool,
) error {
	return apply(multiply, result, rOffset, rPrecision, a, aOffset, aPrecision, b, bOffset, bPrecision, checkOverflow)
}

// Divide stores a / b, truncated toward zero, in the result.
func Divide(
	result []byte, rOffset, rPrecision int,
	a []byte, aOffset, aPrecision int,
	b []byte, bOffset, bPrecision int,
	checkOverflow bool,
) error {
	return apply(divide, result, rOffset, rPrecision, a, aOffset, aPrecision, b, bOffset, bPrecision, checkOverflow)
}

// Remainder stores the remainder of a / b in the result. The remainder has
// the sign of a.
func Remainder(
	result []byte, rOffset, rPrecision int,
	a []byte, aOffset, aPrecision int,
	b []byte, bOffset, bPrecision int,
	checkOverflow bool,
) error {
	return apply(remainder, result, rOffset, rPrecision, a, aOffset, aPrecision, b, bOffset, bPrecision, checkOverflow)
}

func apply(
	op binaryOp,
	result []byte, rOffset, rPrecision int,
	a []byte, aOffset, aPrecision int,
	b []byte, bOffset, bPrecision int,
	checkOverflow bool,
) error {
	name := binaryOpNames[op]

	err := operands(name, result, rOffset, rPrecision, a, aOffset, aPrecision, b, bOffset, bPrecision)
	if err != nil {
		return err
	}

	x := newOperand(a, aOffset, aPrecision)
	y := newOperand(b, bOffset, bPrecision)

	if op != multiply && y.zero() {
		return bcd.ArgumentError.New("%s: division by zero", name)
	}

	// A zero result is negative only when exactly one operand is.
	negativeZero := x.negative != y.negative

	fast := rPrecision <= 18 && aPrecision <= 18 && bPrecision <= 18
	if op == multiply {
		fast = rPrecision <= 18 && aPrecision+bPrecision <= 18
	}

	if !fast {
		u := bigInt(a, aOffset, aPrecision)
		v := bigInt(b, bOffset, bPrecision)

		switch op {
		case multiply:
			u.Mul(u, v)
		case divide:
			u.Quo(u, v)
		case remainder:
			u.Rem(u, v)
		}

		return putBig(name, result, rOffset, rPrecision, u, negativeZero, checkOverflow)
	}

	u, _ := DecodeInt64(a, aOffset, aPrecision, false)
	v, _ := DecodeInt64(b, bOffset, bPrecision, false)

	var w int64
	switch op {
	case multiply:
		w = u * v
	case divide:
		w = u / v
	case remainder:
		w = u % v
	}

	if checkOverflow && bcd.Digits64(w) > rPrecision {
		return bcd.OverflowError.New("%s: %d exceeds precision %d", name, w, rPrecision)
	}

	putInt64(w, result, rOffset, rPrecision)

	if w == 0 {
		end := rOffset + bcd.PackedByteCount(rPrecision) - 1
		result[end] = result[end]&0xF0 | bcd.PreferredSign(negativeZero)
	}

	return nil
}
