package dataaccess

import (
	"unicode/utf16"

	"github.com/calebcase/dataaccess/bcd"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var utf16be = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// ExternalText decodes External Decimal bytes with EBCDIC code page 037. An
// embedded sign zone renders as the letter sharing its code point, so -45 in
// the embedded trailing layout reads "4N".
func ExternalText(buf []byte) (text string, err error) {
	defer bcd.DigitError.WrapP(&err)

	s, err := charmap.CodePage037.NewDecoder().Bytes(buf)
	if err != nil {
		return "", err
	}

	return string(s), nil
}

// UnicodeBytes encodes Unicode Decimal code units as UTF-16BE.
func UnicodeBytes(buf []uint16) (b []byte, err error) {
	defer bcd.DigitError.WrapP(&err)

	s, err := utf16be.NewEncoder().String(string(utf16.Decode(buf)))
	if err != nil {
		return nil, err
	}

	return []byte(s), nil
}

// ParseUnicodeBytes decodes UTF-16BE bytes into code units.
func ParseUnicodeBytes(b []byte) ([]uint16, error) {
	if len(b)%2 != 0 {
		return nil, bcd.ArgumentError.New("unicode bytes: odd length %d", len(b))
	}

	s, err := utf16be.NewDecoder().Bytes(b)
	if err != nil {
		return nil, bcd.DigitError.Wrap(err)
	}

	return utf16.Encode([]rune(string(s))), nil
}
