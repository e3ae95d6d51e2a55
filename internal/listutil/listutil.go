// Package listutil provides stateless helpers over sequences of numbers.
package listutil

import "math"

// FilterEven returns the elements of numbers divisible by two, in their
// original order. The result is never nil.
func FilterEven(numbers []float64) []float64 {
	out := make([]float64, 0, len(numbers))
	for _, n := range numbers {
		if math.Mod(n, 2) == 0 {
			out = append(out, n)
		}
	}
	return out
}

// FindMax returns the largest element of numbers.
func FindMax(numbers []float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, ErrEmptyInput
	}
	largest := numbers[0]
	for _, n := range numbers[1:] {
		if n > largest {
			largest = n
		}
	}
	return largest, nil
}

// Average returns the arithmetic mean of numbers.
func Average(numbers []float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, ErrEmptyInput
	}
	var sum float64
	for _, n := range numbers {
		sum += n
	}
	return sum / float64(len(numbers)), nil
}
