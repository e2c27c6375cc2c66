// Package basics holds the warm-up exercises that ship next to the list
// profiler: Fibonacci and FizzBuzz.
package basics

import "math/big"

// Fibonacci computes the nth Fibonacci number recursively, with
// Fibonacci(0) == 0 and Fibonacci(1) == 1. It runs in exponential time.
func Fibonacci(n int) uint64 {
	if n <= 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	return Fibonacci(n-1) + Fibonacci(n-2)
}

// FibonacciSequence returns the first length Fibonacci numbers, computed
// iteratively. Values past the 93rd overflow uint64, hence big.Int.
func FibonacciSequence(length int) []*big.Int {
	if length <= 0 {
		return nil
	}
	seq := make([]*big.Int, length)
	seq[0] = big.NewInt(0)
	if length > 1 {
		seq[1] = big.NewInt(1)
	}
	for i := 2; i < length; i++ {
		seq[i] = new(big.Int).Add(seq[i-1], seq[i-2])
	}
	return seq
}
