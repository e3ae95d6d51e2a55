package listutil

import (
	"errors"
	"slices"
	"testing"
)

func TestFilterEven(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []float64
		want  []float64
	}{
		{name: "Mixed", input: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, want: []float64{2, 4, 6, 8, 10}},
		{name: "Empty", input: nil, want: []float64{}},
		{name: "AllOdd", input: []float64{1, 3, 5}, want: []float64{}},
		{name: "AllEven", input: []float64{2, 4, 6}, want: []float64{2, 4, 6}},
		{name: "NegativeAndZero", input: []float64{-4, -3, 0, 2.5}, want: []float64{-4, 0}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := FilterEven(tc.input)
			if got == nil {
				t.Fatalf("expected non-nil slice")
			}
			if !slices.Equal(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			if again := FilterEven(got); !slices.Equal(again, got) {
				t.Fatalf("expected filtering to be idempotent, got %v then %v", got, again)
			}
		})
	}
}

func TestFilterEvenDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	input := []float64{1, 2, 3}
	_ = FilterEven(input)
	if !slices.Equal(input, []float64{1, 2, 3}) {
		t.Fatalf("input was modified: %v", input)
	}
}

func TestFindMax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input []float64
		want  float64
	}{
		{input: []float64{1, 5, 3, 9, 2}, want: 9},
		{input: []float64{1}, want: 1},
		{input: []float64{-5, -1, -10}, want: -1},
		{input: []float64{1.5, 2.7, 1.2}, want: 2.7},
	}

	for _, tc := range tests {
		got, err := FindMax(tc.input)
		if err != nil {
			t.Fatalf("FindMax(%v) returned error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("FindMax(%v): expected %v, got %v", tc.input, tc.want, got)
		}
		if !slices.Contains(tc.input, got) {
			t.Fatalf("FindMax(%v) = %v is not an element", tc.input, got)
		}
		for _, n := range tc.input {
			if n > got {
				t.Fatalf("FindMax(%v) = %v is smaller than %v", tc.input, got, n)
			}
		}
	}
}

func TestAverage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input []float64
		want  float64
	}{
		{input: []float64{2, 4, 6}, want: 4},
		{input: []float64{1}, want: 1},
		{input: []float64{1, 2, 3, 4, 5}, want: 3},
		{input: []float64{1.5, 2.5}, want: 2},
	}

	for _, tc := range tests {
		got, err := Average(tc.input)
		if err != nil {
			t.Fatalf("Average(%v) returned error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("Average(%v): expected %v, got %v", tc.input, tc.want, got)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	t.Parallel()

	if _, err := FindMax(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput from FindMax, got %v", err)
	}
	if _, err := Average([]float64{}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput from Average, got %v", err)
	}
	if got := ErrEmptyInput.Error(); got != "List cannot be empty" {
		t.Fatalf("unexpected message %q", got)
	}
}
