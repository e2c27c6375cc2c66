package basics

import "strconv"

// FizzBuzz returns "Fizz Buzz" for multiples of 15, "Fizz" for multiples of
// 3, "Buzz" for multiples of 5 and the number itself otherwise.
func FizzBuzz(i int) string {
	divisibleBy3 := i%3 == 0
	divisibleBy5 := i%5 == 0

	switch {
	case divisibleBy3 && divisibleBy5:
		return "Fizz Buzz"
	case divisibleBy3:
		return "Fizz"
	case divisibleBy5:
		return "Buzz"
	default:
		return strconv.Itoa(i)
	}
}

// FizzBuzzRange applies FizzBuzz to every integer in [from, to].
func FizzBuzzRange(from, to int) []string {
	if to < from {
		return nil
	}
	out := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, FizzBuzz(i))
	}
	return out
}
