package bcd

// Packed Decimal sign nibbles.
const (
	SignPlus           byte = 0x0C
	SignMinus          byte = 0x0D
	SignPlusAlternate  byte = 0x0A
	SignMinusAlternate byte = 0x0B
	SignPlusE          byte = 0x0E
	SignUnsigned       byte = 0x0F
)

// Unicode Decimal characters.
const (
	UnicodeZone  uint16 = 0x30
	UnicodePlus  uint16 = '+'
	UnicodeMinus uint16 = '-'
)

// High returns the high nibble of b.
func High(b byte) byte {
	return b >> 4
}

// Low returns the low nibble of b.
func Low(b byte) byte {
	return b & 0x0F
}

// ValidSign reports if nibble n is a Packed Decimal sign code.
func ValidSign(n byte) bool {
	return n >= SignPlusAlternate && n <= SignUnsigned
}

// NegativeSign reports if nibble n is a negative sign code.
func NegativeSign(n byte) bool {
	return n == SignMinus || n == SignMinusAlternate
}

// PreferredSign returns the canonical sign nibble.
func PreferredSign(negative bool) byte {
	if negative {
		return SignMinus
	}

	return SignPlus
}

// Code is a class of byte identified by its fixed prefix bits. The bits
// under Mask carry data.
type Code struct {
	Prefix byte
	Mask   byte
}

// Match returns true if b belongs to this code.
func (c Code) Match(b byte) bool {
	return b&^c.Mask == c.Prefix
}

type codes []Code

func (cs codes) Match(b byte) (c Code, ok bool) {
	for _, c := range cs {
		if c.Match(b) {
			return c, true
		}
	}

	return c, false
}

// External Decimal byte codes.
var (
	Zoned         = Code{0b_1111_0000, 0b_0000_1111}
	ZonedPlus     = Code{0b_1100_0000, 0b_0000_1111}
	ZonedPlusA    = Code{0b_1010_0000, 0b_0000_1111}
	ZonedPlusE    = Code{0b_1110_0000, 0b_0000_1111}
	ZonedMinus    = Code{0b_1101_0000, 0b_0000_1111}
	ZonedMinusB   = Code{0b_1011_0000, 0b_0000_1111}
	SeparatePlus  = Code{0x4E, 0x00}
	SeparateMinus = Code{0x60, 0x00}
	EBCDICSpace   = Code{0x40, 0x00}
	NegativeZones = codes{ZonedMinus, ZonedMinusB}
	SeparateSigns = codes{SeparatePlus, SeparateMinus}
	EmbeddedSigns = codes{ZonedPlus, ZonedPlusA, ZonedPlusE, Zoned, ZonedMinus, ZonedMinusB}
)

// Zone returns the byte for digit d carrying code c.
func Zone(c Code, d byte) byte {
	return c.Prefix | d&c.Mask
}
