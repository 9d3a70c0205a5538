package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/calebcase/dataaccess/bcd"
)

// Flag name constants.
const (
	fnFormat    = "format"
	fnType      = "type"
	fnPrecision = "precision"
	fnScale     = "scale"
	fnCheck     = "check"
	fnValue     = "value"
	fnHex       = "hex"
	fnA         = "a"
	fnB         = "b"
	fnN         = "n"
	fnRound     = "round"
)

// Environment constants.
const (
	envPrecision     = "DECIMAL_PRECISION"
	envType          = "DECIMAL_TYPE"
	envCheckOverflow = "DECIMAL_CHECK_OVERFLOW"
)

// options holds the flags shared by every subcommand.
type options struct {
	format    string
	typ       string
	precision int
	scale     int
	check     bool

	value string
	hex   string
	a, b  string
	n     int
	round bool
}

func newFlagSet(name string, w io.Writer, o *options) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)

	fs.StringVar(&o.format, fnFormat, "packed", "Decimal format: packed, external or unicode")
	fs.StringVar(&o.typ, fnType, getStringEnv(envType, ""), fmt.Sprintf("External or unicode decimal type (environment variable: %s)", envType))
	fs.IntVar(&o.precision, fnPrecision, getIntEnv(envPrecision, 0), fmt.Sprintf("Precision in digits, 0 to fit the input (environment variable: %s)", envPrecision))
	fs.IntVar(&o.scale, fnScale, 0, "Digits after the decimal point")
	fs.BoolVar(&o.check, fnCheck, getBoolEnv(envCheckOverflow, true), fmt.Sprintf("Report overflow instead of truncating (environment variable: %s)", envCheckOverflow))

	fs.StringVar(&o.value, fnValue, "", "Value to encode")
	fs.StringVar(&o.hex, fnHex, "", "Hex encoded decimal data")
	fs.StringVar(&o.a, fnA, "", "First operand")
	fs.StringVar(&o.b, fnB, "", "Second operand")
	fs.IntVar(&o.n, fnN, 0, "Shift amount in digits")
	fs.BoolVar(&o.round, fnRound, false, "Round the last digit shifted out")

	return fs
}

// decimalType resolves the -type flag, defaulting per format.
func (o *options) decimalType() (bcd.Type, error) {
	if o.typ != "" {
		return bcd.ParseType(o.typ)
	}

	switch o.format {
	case "external":
		return bcd.EBCDICSignEmbeddedTrailing, nil
	case "unicode":
		return bcd.UnicodeSignSeparateLeading, nil
	}

	return 0, nil
}

func getStringEnv(key, defValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defValue
	}
	return value
}

func getIntEnv(key string, defValue int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return defValue
	}
	return i
}

func getBoolEnv(key string, defValue bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defValue
	}
	return b
}
