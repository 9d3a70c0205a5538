package bcd

// Sentinel is returned by the table lookups for malformed input. Not every
// malformed pair maps to the sentinel, so callers validate separately.
const Sentinel byte = 0xFF

const (
	flag    uint16 = 0x100
	invalid uint16 = uint16(Sentinel)
)

// tables hold the results of single byte packed arithmetic. The pair sum
// and difference tables are indexed by key, which spaces the tens nibble 32
// slots apart so two keys can be added or subtracted without the ones digit
// spilling into the tens.
type tables struct {
	sum        [1024]uint16
	sumCarry   [1024]uint16
	diff       [1024]uint16
	diffBorrow [1024]uint16

	signed [200]byte

	addOne      [256]uint16
	addOneUnits [256]uint16

	toBinary [256]byte
	toPacked [100]byte
}

var tab = newTables()

func newTables() *tables {
	t := &tables{}

	for v := 0; v < 100; v++ {
		t.toPacked[v] = byte(v/10<<4 | v%10)
	}

	for i := range t.toBinary {
		t.toBinary[i] = Sentinel
	}
	for v := 0; v < 100; v++ {
		t.toBinary[t.toPacked[v]] = byte(v)
	}

	entry := func(v int) uint16 {
		switch {
		case v >= 100:
			return uint16(t.toPacked[v-100]) | flag
		case v < 0:
			return uint16(t.toPacked[v+100]) | flag
		}

		return uint16(t.toPacked[v])
	}

	for i := range t.sum {
		t.sum[i] = invalid
		t.sumCarry[i] = invalid
		t.diff[i] = invalid
		t.diffBorrow[i] = invalid
	}

	for tens := 0; tens <= 18; tens++ {
		for ones := 0; ones <= 18; ones++ {
			k := tens*32 + ones
			v := tens*10 + ones

			t.sum[k] = entry(v)
			t.sumCarry[k] = entry(v + 1)
		}
	}

	for tens := -9; tens <= 9; tens++ {
		for ones := -9; ones <= 9; ones++ {
			k := (tens*32 + ones) & 0x3FF
			v := tens*10 + ones

			t.diff[k] = entry(v)
			t.diffBorrow[k] = entry(v - 1)
		}
	}

	for r := -100; r < 100; r++ {
		m := r
		if m < 0 {
			m = -m
		}

		t.signed[r+100] = t.toPacked[m%100]
	}

	for i := range t.addOne {
		t.addOne[i] = invalid
		t.addOneUnits[i] = invalid
	}
	for v := 0; v < 100; v++ {
		b := t.toPacked[v]

		t.addOne[b] = entry(v + 1)
	}
	for d := 0; d <= 9; d++ {
		for s := 0; s <= 0x0F; s++ {
			b := d<<4 | s

			if d == 9 {
				t.addOneUnits[b] = uint16(s) | flag
			} else {
				t.addOneUnits[b] = uint16((d+1)<<4 | s)
			}
		}
	}

	return t
}

func key(b byte) int {
	return int(b) + int(b&0xF0)
}

func split(e uint16) (byte, bool) {
	return byte(e), e&flag != 0
}

// AddPair adds two packed digit pairs and an incoming carry.
func AddPair(a, b byte, carry bool) (byte, bool) {
	k := key(a) + key(b)
	if carry {
		return split(tab.sumCarry[k])
	}

	return split(tab.sum[k])
}

// SubPair subtracts packed pair b and an incoming borrow from pair a.
func SubPair(a, b byte, borrow bool) (byte, bool) {
	k := (key(a) - key(b)) & 0x3FF
	if borrow {
		return split(tab.diffBorrow[k])
	}

	return split(tab.diff[k])
}

// Increment adds one to a packed pair.
func Increment(b byte) (byte, bool) {
	return split(tab.addOne[b])
}

// IncrementUnits adds one to the digit in the high nibble of a sign byte,
// keeping the sign nibble.
func IncrementUnits(b byte) (byte, bool) {
	return split(tab.addOneUnits[b])
}

// Pair returns the packed pair of v, which must be within 0..99.
func Pair(v int) byte {
	return tab.toPacked[v]
}

// PairValue returns the binary value of a packed pair.
func PairValue(b byte) (int, bool) {
	v := tab.toBinary[b]
	if v == Sentinel {
		return 0, false
	}

	return int(v), true
}

// SignedPair returns the packed pair of |r| mod 100 for r within -100..99.
func SignedPair(r int64) byte {
	return tab.signed[r+100]
}
