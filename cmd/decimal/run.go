package main

import (
	"encoding/hex"
	"io"
	"math/big"
	"unicode/utf16"

	"github.com/calebcase/dataaccess"
	"github.com/calebcase/dataaccess/bcd"
	"github.com/calebcase/dataaccess/decimal"
	"github.com/calebcase/dataaccess/external"
	"github.com/calebcase/dataaccess/national"
	"github.com/calebcase/dataaccess/packed"
	"github.com/calebcase/oops"
	"github.com/go-logfmt/logfmt"
	"github.com/zeebo/errs"
)

// Error is the class of command line errors.
var Error = errs.Class("decimal")

// ErrUsage is returned for a missing or unknown subcommand.
var ErrUsage = Error.New("usage: decimal encode|decode|check|add|sub|mul|div|rem|cmp|shr|shl [flags]")

type command func(o *options, r *record) error

var commands = map[string]command{
	"encode": encode,
	"decode": decode,
	"check":  check,
	"add":    arithmetic(packed.Add),
	"sub":    arithmetic(packed.Subtract),
	"mul":    arithmetic(packed.Multiply),
	"div":    arithmetic(packed.Divide),
	"rem":    arithmetic(packed.Remainder),
	"cmp":    compare,
	"shr":    shift(false),
	"shl":    shift(true),
}

func run(args []string, w io.Writer) (err error) {
	defer Error.WrapP(&err)

	if len(args) < 1 {
		return oops.Trace(ErrUsage)
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return oops.Trace(ErrUsage)
	}

	o := &options{}

	err = newFlagSet(args[0], w, o).Parse(args[1:])
	if err != nil {
		return oops.Trace(err)
	}

	r := &record{keyvals: []interface{}{"op", args[0]}}

	return r.write(w, cmd(o, r))
}

// record collects the key/value pairs of one output line.
type record struct {
	keyvals []interface{}
}

func (r *record) add(keyvals ...interface{}) {
	r.keyvals = append(r.keyvals, keyvals...)
}

func (r *record) write(w io.Writer, err error) error {
	level := "info"
	keyvals := r.keyvals

	if err != nil {
		level = "error"
		keyvals = append(keyvals, "kind", bcd.KindOf(err), "err", err.Error())
	}

	enc := logfmt.NewEncoder(w)

	werr := enc.EncodeKeyvals(append([]interface{}{"level", level}, keyvals...)...)
	if werr == nil {
		werr = enc.EndRecord()
	}

	if werr != nil {
		return oops.Trace(werr)
	}

	return err
}

func digits(v *big.Int) int {
	return len(new(big.Int).Abs(v).String())
}

func encode(o *options, r *record) error {
	v, err := decimal.Parse(o.value)
	if err != nil {
		return err
	}

	t, err := o.decimalType()
	if err != nil {
		return err
	}

	p := o.precision
	if p == 0 {
		p = digits(v.Unscaled)
	}

	r.add("format", o.format, "value", v, "precision", p)

	switch o.format {
	case "packed":
		buf := make([]byte, bcd.PackedByteCount(p))

		err = decimal.EncodePacked(v, buf, 0, p, o.check)
		if err != nil {
			return err
		}

		r.add("hex", hex.EncodeToString(buf))
	case "external":
		n, err := bcd.ExternalByteCount(p, t)
		if err != nil {
			return err
		}
		buf := make([]byte, n)

		err = decimal.EncodeExternal(v, buf, 0, p, o.check, t)
		if err != nil {
			return err
		}

		text, err := dataaccess.ExternalText(buf)
		if err != nil {
			return err
		}

		r.add("type", t, "hex", hex.EncodeToString(buf), "text", text)
	case "unicode":
		n, err := bcd.UnicodeCharCount(p, t)
		if err != nil {
			return err
		}
		buf := make([]uint16, n)

		err = decimal.EncodeUnicode(v, buf, 0, p, o.check, t)
		if err != nil {
			return err
		}

		b, err := dataaccess.UnicodeBytes(buf)
		if err != nil {
			return err
		}

		r.add("type", t, "hex", hex.EncodeToString(b), "text", string(utf16.Decode(buf)))
	default:
		return bcd.ArgumentError.New("unknown format %q", o.format)
	}

	return nil
}

// data decodes the -hex flag and fills in the precision it implies.
func (o *options) data(t bcd.Type) (b []byte, u []uint16, p int, err error) {
	b, err = hex.DecodeString(o.hex)
	if err != nil {
		return nil, nil, 0, bcd.ArgumentError.Wrap(err)
	}

	p = o.precision

	switch o.format {
	case "packed":
		if p == 0 {
			p = len(b)*2 - 1
		}
	case "external":
		if p == 0 {
			p = len(b)
			if t.Separate() {
				p--
			}
		}
	case "unicode":
		u, err = dataaccess.ParseUnicodeBytes(b)
		if err != nil {
			return nil, nil, 0, err
		}

		if p == 0 {
			p = len(u)
			if t.Separate() {
				p--
			}
		}
	default:
		return nil, nil, 0, bcd.ArgumentError.New("unknown format %q", o.format)
	}

	return b, u, p, nil
}

func decode(o *options, r *record) error {
	t, err := o.decimalType()
	if err != nil {
		return err
	}

	b, u, p, err := o.data(t)
	if err != nil {
		return err
	}

	r.add("format", o.format, "hex", o.hex, "precision", p, "scale", o.scale)

	var v decimal.Big

	switch o.format {
	case "packed":
		v, err = decimal.DecodePacked(b, 0, p, o.scale, o.check)
	case "external":
		r.add("type", t)
		v, err = decimal.DecodeExternal(b, 0, p, o.scale, o.check, t)
	case "unicode":
		r.add("type", t)
		v, err = decimal.DecodeUnicode(u, 0, p, o.scale, o.check, t)
	}

	if err != nil {
		return err
	}

	r.add("value", v)

	return nil
}

func check(o *options, r *record) error {
	t, err := o.decimalType()
	if err != nil {
		return err
	}

	b, u, p, err := o.data(t)
	if err != nil {
		return err
	}

	r.add("format", o.format, "hex", o.hex, "precision", p)

	var c bcd.Condition

	switch o.format {
	case "packed":
		c, err = packed.Check(b, 0, p)
	case "external":
		r.add("type", t)
		c, err = external.Check(b, 0, p, t)
	case "unicode":
		r.add("type", t)
		c, err = national.Check(u, 0, p, t)
	}

	if err != nil {
		return err
	}

	r.add("condition", c, "valid", c.Valid())

	return nil
}

// operand parses an integer flag into a Packed Decimal just wide enough to
// hold it.
func operand(name, s string) ([]byte, int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, 0, bcd.ArgumentError.New("operand %s: %q", name, s)
	}

	p := digits(v)
	buf := make([]byte, bcd.PackedByteCount(p))

	err := packed.EncodeBigInt(v, buf, 0, p, true)
	if err != nil {
		return nil, 0, err
	}

	return buf, p, nil
}

// result decodes a Packed Decimal result into the record.
func result(r *record, buf []byte, p int) error {
	v, err := packed.DecodeBigInt(buf, 0, p, false)
	if err != nil {
		return err
	}

	r.add("result", v, "hex", hex.EncodeToString(buf))

	return nil
}

type binaryOp func(result []byte, rOffset, rPrecision int, a []byte, aOffset, aPrecision int, b []byte, bOffset, bPrecision int, checkOverflow bool) error

func arithmetic(op binaryOp) command {
	return func(o *options, r *record) error {
		r.add("a", o.a, "b", o.b)

		a, ap, err := operand(fnA, o.a)
		if err != nil {
			return err
		}

		b, bp, err := operand(fnB, o.b)
		if err != nil {
			return err
		}

		p := o.precision
		if p == 0 {
			p = ap + bp
			if p > bcd.MaxPrecision {
				p = bcd.MaxPrecision
			}
		}

		r.add("precision", p)

		buf := make([]byte, bcd.PackedByteCount(p))

		err = op(buf, 0, p, a, 0, ap, b, 0, bp, o.check)
		if err != nil {
			return err
		}

		return result(r, buf, p)
	}
}

func compare(o *options, r *record) error {
	r.add("a", o.a, "b", o.b)

	a, ap, err := operand(fnA, o.a)
	if err != nil {
		return err
	}

	b, bp, err := operand(fnB, o.b)
	if err != nil {
		return err
	}

	c, err := packed.Compare(a, 0, ap, b, 0, bp)
	if err != nil {
		return err
	}

	r.add("result", c)

	return nil
}

func shift(left bool) command {
	return func(o *options, r *record) error {
		r.add("a", o.a, "n", o.n)

		a, ap, err := operand(fnA, o.a)
		if err != nil {
			return err
		}

		p := o.precision
		if p == 0 {
			p = ap
			if left {
				p += o.n
			}
			if p > bcd.MaxPrecision {
				p = bcd.MaxPrecision
			}
		}

		r.add("precision", p)

		buf := make([]byte, bcd.PackedByteCount(p))

		if left {
			err = packed.ShiftLeft(buf, 0, p, a, 0, ap, o.n, o.check)
		} else {
			r.add("round", o.round)
			err = packed.ShiftRight(buf, 0, p, a, 0, ap, o.n, o.round, o.check)
		}

		if err != nil {
			return err
		}

		return result(r, buf, p)
	}
}
