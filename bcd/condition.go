package bcd

// Condition reports the problems found in a decimal. Zero is valid.
type Condition int

const (
	SignInvalid Condition = 1 << iota
	DigitInvalid
)

// Valid returns true if no problem was found.
func (c Condition) Valid() bool {
	return c == 0
}

func (c Condition) String() string {
	switch c {
	case 0:
		return "valid"
	case SignInvalid:
		return "invalid sign"
	case DigitInvalid:
		return "invalid digit"
	}

	return "invalid sign and digit"
}
