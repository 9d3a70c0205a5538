package bcd

// Type selects the layout of External or Unicode Decimal data.
type Type int

// The numeric values match the legacy decimal type constants.
const (
	EBCDICSignEmbeddedTrailing Type = iota + 1
	EBCDICSignEmbeddedLeading
	EBCDICSignSeparateTrailing
	EBCDICSignSeparateLeading
	UnicodeUnsigned
	UnicodeSignSeparateLeading
	UnicodeSignSeparateTrailing
)

var typeNames = map[Type]string{
	EBCDICSignEmbeddedTrailing:  "ebcdic-embedded-trailing",
	EBCDICSignEmbeddedLeading:   "ebcdic-embedded-leading",
	EBCDICSignSeparateTrailing:  "ebcdic-separate-trailing",
	EBCDICSignSeparateLeading:   "ebcdic-separate-leading",
	UnicodeUnsigned:             "unicode-unsigned",
	UnicodeSignSeparateLeading:  "unicode-separate-leading",
	UnicodeSignSeparateTrailing: "unicode-separate-trailing",
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}

	return "unknown"
}

// ParseType returns the type with the given name.
func ParseType(name string) (Type, error) {
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}

	return 0, ArgumentError.New("unknown decimal type %q", name)
}

// External reports if t is one of the EBCDIC layouts.
func (t Type) External() bool {
	return t >= EBCDICSignEmbeddedTrailing && t <= EBCDICSignSeparateLeading
}

// Unicode reports if t is one of the Unicode layouts.
func (t Type) Unicode() bool {
	return t >= UnicodeUnsigned && t <= UnicodeSignSeparateTrailing
}

// Separate reports if the sign occupies its own byte or character.
func (t Type) Separate() bool {
	switch t {
	case EBCDICSignSeparateTrailing, EBCDICSignSeparateLeading,
		UnicodeSignSeparateLeading, UnicodeSignSeparateTrailing:
		return true
	}

	return false
}

// Leading reports if the sign is carried before the digits.
func (t Type) Leading() bool {
	switch t {
	case EBCDICSignEmbeddedLeading, EBCDICSignSeparateLeading, UnicodeSignSeparateLeading:
		return true
	}

	return false
}
