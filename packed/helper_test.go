package packed

import (
	"strings"
	"testing"

	"github.com/calebcase/dataaccess/bcd"
	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// mk returns the Packed Decimal of a signed digit string.
func mk(t *testing.T, s string, precision int) []byte {
	t.Helper()

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimLeft(s, "+-")

	buf := make([]byte, bcd.PackedByteCount(precision))
	require.NoError(t, putDigits("test", buf, 0, precision, s, negative, true))

	return buf
}

// requireBytes compares two buffers and dumps both on a mismatch.
func requireBytes(t *testing.T, want, got []byte, msgAndArgs ...interface{}) {
	t.Helper()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Logf("want: %s", spew.Sdump(want))
		t.Logf("got: %s", spew.Sdump(got))
		require.Fail(t, "bytes differ (-want +got):\n"+diff, msgAndArgs...)
	}
}
