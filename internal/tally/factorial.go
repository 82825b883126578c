package tally

// MaxFactorialInput is the largest n for which Factorial fits in 64 bits.
const MaxFactorialInput = 20

// Factorial returns n!. Any n <= 1, negative values included, returns 1.
// Inputs above MaxFactorialInput overflow silently.
func Factorial(n int) int {
	if n <= 1 {
		return 1
	}

	return n * Factorial(n-1)
}
