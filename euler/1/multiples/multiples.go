// Package multiples sums the natural numbers below a bound that are
// divisible by at least one of a set of divisors.
package multiples

import "github.com/bradfitz/iter"

// Sum returns the sum of all n in [0, bound) divisible by at least one of divisors.
func Sum(bound int, divisors ...int) uint64 {
	var sum uint64
	for n := range candidates(bound) {
		if Divisible(n, divisors...) {
			sum += uint64(n)
		}
	}
	return sum
}

// Multiples returns the values Sum adds up, in increasing order.
func Multiples(bound int, divisors ...int) (multiples []int) {
	for n := range candidates(bound) {
		if Divisible(n, divisors...) {
			multiples = append(multiples, n)
		}
	}
	return
}

// Divisible reports whether n is evenly divisible by any of divisors.
// A zero divisor never matches.
func Divisible(n int, divisors ...int) bool {
	for _, d := range divisors {
		if d != 0 && n%d == 0 {
			return true
		}
	}
	return false
}

// candidates ranges over [0, bound). A negative bound is empty.
func candidates(bound int) []struct{} {
	if bound < 0 {
		return nil
	}
	return iter.N(bound)
}
