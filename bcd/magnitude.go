package bcd

// Signed applies a sign to a magnitude accumulated from decimal digits. With
// checkOverflow set the result must fit a two's complement integer of the
// given bits, otherwise it wraps.
func Signed(name string, m uint64, negative, checkOverflow bool, bits uint) (int64, error) {
	max := uint64(1)<<(bits-1) - 1

	if checkOverflow {
		if negative && m > max+1 || !negative && m > max {
			return 0, OverflowError.New("%s: magnitude %d exceeds int%d", name, m, bits)
		}
	}

	v := int64(m)
	if negative {
		v = -v
	}

	return v, nil
}
