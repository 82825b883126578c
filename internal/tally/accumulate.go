// Package tally computes the parity-alternating running total, its sign
// classification, and a recursive factorial.
package tally

// Bounds of the range the default run accumulates over.
const (
	Lower = 0
	Upper = 100
)

// Accumulate walks i over [lo, hi), adding even values and subtracting odd
// ones. An empty range (hi <= lo) yields 0.
func Accumulate(lo, hi int) int {
	result := 0

	for i := lo; i < hi; i++ {
		if i%2 == 0 {
			result += i
		} else {
			result -= i
		}
	}

	return result
}

// ClosedForm evaluates the same sum as Accumulate without iterating.
func ClosedForm(lo, hi int) int {
	if hi <= lo {
		return 0
	}

	return prefix(hi) - prefix(lo)
}

// prefix returns the signed sum over [0, x) for x >= 0, and the negated sum
// over [x, 0) for x < 0, so that prefix(hi)-prefix(lo) covers [lo, hi).
func prefix(x int) int {
	if x < 0 {
		// terms are odd around zero: the sum over [x, 0) is -fromZero(1-x)
		return fromZero(1 - x)
	}

	return fromZero(x)
}

// fromZero is the sum over [0, n) for n >= 0. Each (even, odd) pair
// contributes -1; a trailing even term adds itself.
func fromZero(n int) int {
	if n%2 == 0 {
		return -n / 2
	}

	return (n - 1) / 2
}
