package expr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"symcalc/internal/expr"
)

func naiveGCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func TestGCDGrid(t *testing.T) {
	for a := uint64(0); a <= 64; a++ {
		for b := uint64(0); b <= 64; b++ {
			if a == 0 && b == 0 {
				continue
			}
			g := expr.GCD(a, b)
			require.Equal(t, naiveGCD(a, b), g, "gcd(%d, %d)", a, b)
			require.Zero(t, a%g, "gcd(%d, %d)=%d must divide a", a, b, g)
			require.Zero(t, b%g, "gcd(%d, %d)=%d must divide b", a, b, g)
			// ни один больший делитель не делит оба
			for d := g + 1; d <= max(a, b); d++ {
				require.False(t, a%d == 0 && b%d == 0, "gcd(%d, %d): %d is a larger common divisor", a, b, d)
			}
		}
	}
}

func TestGCDIdentities(t *testing.T) {
	require.Equal(t, uint64(7), expr.GCD(7, 0))
	require.Equal(t, uint64(7), expr.GCD(0, 7))
	require.Equal(t, uint64(0), expr.GCD(0, 0))
	require.Equal(t, uint64(1)<<40, expr.GCD(1<<40, 3<<40))
	require.Equal(t, uint64(math.MaxUint64), expr.GCD(math.MaxUint64, math.MaxUint64))
	require.Equal(t, uint64(6), expr.GCD(48, 18))
}

func TestSignedGCD(t *testing.T) {
	require.Equal(t, int64(6), expr.SignedGCD(-48, 18))
	require.Equal(t, int64(6), expr.SignedGCD(48, -18))
	require.Equal(t, int64(5), expr.SignedGCD(-5, 0))
	require.Equal(t, int64(1)<<62, expr.SignedGCD(math.MinInt64, 1<<62))
}
