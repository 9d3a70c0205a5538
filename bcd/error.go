package bcd

import "github.com/zeebo/errs"

// Error classes shared by every decimal format.
var (
	BoundsError   = errs.Class("bounds")
	ArgumentError = errs.Class("invalid argument")
	OverflowError = errs.Class("decimal overflow")
	DigitError    = errs.Class("invalid digit data")
)

// Kind identifies which class an error belongs to.
type Kind int

const (
	None Kind = iota
	Bounds
	Argument
	Overflow
	Digit
	Unknown
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Bounds:
		return "bounds"
	case Argument:
		return "argument"
	case Overflow:
		return "overflow"
	case Digit:
		return "digit"
	}

	return "unknown"
}

// KindOf returns the kind of err. A nil error is None and an error outside
// the decimal classes is Unknown. Wrappers from other packages are looked
// through.
func KindOf(err error) Kind {
	if err == nil {
		return None
	}

	for _, k := range kinds {
		if errs.IsFunc(err, k.class.Has) {
			return k.kind
		}
	}

	return Unknown
}

var kinds = []struct {
	class *errs.Class
	kind  Kind
}{
	{&BoundsError, Bounds},
	{&ArgumentError, Argument},
	{&OverflowError, Overflow},
	{&DigitError, Digit},
}
