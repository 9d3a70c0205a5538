// decimal encodes, decodes, validates and computes decimal data.
//
// Usage:
//
//	decimal encode -format packed -precision 5 -value -12.34
//	decimal decode -format external -type ebcdic-embedded-trailing -precision 3 -scale 1 -hex f0f4d5
//	decimal check  -format packed -precision 3 -hex 012f
//	decimal add    -precision 5 -a 123 -b -45
//	decimal sub|mul|div|rem|cmp -a 123 -b -45
//	decimal shr    -precision 3 -a 12345 -n 2 -round
//	decimal shl    -precision 7 -a 12345 -n 2
//
// Every result is written to stdout as one logfmt record. Defaults for
// -precision, -type and -check come from DECIMAL_PRECISION, DECIMAL_TYPE and
// DECIMAL_CHECK_OVERFLOW.
package main

import (
	"fmt"
	"os"

	"github.com/calebcase/dataaccess/bcd"
)

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		if bcd.KindOf(err) == bcd.Unknown {
			fmt.Fprintf(os.Stderr, "%+v\n", err)
		}
		os.Exit(1)
	}
}
