package packed

import "github.com/calebcase/dataaccess/bcd"

// Compare returns -1, 0 or +1 as a is less than, equal to or greater than
// b. Positive and negative zero are equal regardless of precision.
func Compare(
	a []byte, aOffset, aPrecision int,
	b []byte, bOffset, bPrecision int,
) (int, error) {
	err := bcd.CheckPacked("compare op1", a, aOffset, aPrecision)
	if err != nil {
		return 0, err
	}

	err = bcd.CheckPacked("compare op2", b, bOffset, bPrecision)
	if err != nil {
		return 0, err
	}

	x := newOperand(a, aOffset, aPrecision)
	y := newOperand(b, bOffset, bPrecision)

	xz, yz := x.zero(), y.zero()
	if xz && yz {
		return 0, nil
	}

	xn := x.negative && !xz
	yn := y.negative && !yz

	switch {
	case xn && !yn:
		return -1, nil
	case !xn && yn:
		return 1, nil
	}

	c := magnitudeCmp(&x, &y)
	if xn {
		c = -c
	}

	return c, nil
}

// GreaterThan returns true if a > b.
func GreaterThan(a []byte, aOffset, aPrecision int, b []byte, bOffset, bPrecision int) (bool, error) {
	c, err := Compare(a, aOffset, aPrecision, b, bOffset, bPrecision)
	return c > 0, err
}

// GreaterThanOrEqual returns true if a >= b.
func GreaterThanOrEqual(a []byte, aOffset, aPrecision int, b []byte, bOffset, bPrecision int) (bool, error) {
	c, err := Compare(a, aOffset, aPrecision, b, bOffset, bPrecision)
	return err == nil && c >= 0, err
}

// LessThan returns true if a < b.
func LessThan(a []byte, aOffset, aPrecision int, b []byte, bOffset, bPrecision int) (bool, error) {
	c, err := Compare(a, aOffset, aPrecision, b, bOffset, bPrecision)
	return c < 0, err
}

// LessThanOrEqual returns true if a <= b.
func LessThanOrEqual(a []byte, aOffset, aPrecision int, b []byte, bOffset, bPrecision int) (bool, error) {
	c, err := Compare(a, aOffset, aPrecision, b, bOffset, bPrecision)
	return err == nil && c <= 0, err
}

// Equal returns true if a == b.
func Equal(a []byte, aOffset, aPrecision int, b []byte, bOffset, bPrecision int) (bool, error) {
	c, err := Compare(a, aOffset, aPrecision, b, bOffset, bPrecision)
	return err == nil && c == 0, err
}

// NotEqual returns true if a != b.
func NotEqual(a []byte, aOffset, aPrecision int, b []byte, bOffset, bPrecision int) (bool, error) {
	c, err := Compare(a, aOffset, aPrecision, b, bOffset, bPrecision)
	return err == nil && c != 0, err
}
