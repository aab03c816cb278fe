package expr

import "math/bits"

// GCD is the binary (Stein) greatest common divisor. GCD(a, 0) = a.
func GCD(a, b uint64) uint64 {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}

	i := bits.TrailingZeros64(a)
	a >>= i
	j := bits.TrailingZeros64(b)
	b >>= j
	k := min(i, j)

	for {
		// оба нечётные
		if a > b {
			a, b = b, a
		}
		b -= a
		if b == 0 {
			return a << k
		}
		b >>= bits.TrailingZeros64(b)
	}
}

// SignedGCD is GCD of the absolute values, always nonnegative except for
// the single unrepresentable result 2^63, which wraps to math.MinInt64.
func SignedGCD(a, b int64) int64 {
	return int64(GCD(magnitude(a), magnitude(b)))
}

func magnitude(v int64) uint64 {
	if v < 0 {
		return -uint64(v)
	}
	return uint64(v)
}
