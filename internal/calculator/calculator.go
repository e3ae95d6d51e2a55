package calculator

import "fmt"

type basicCalculator struct{}

// New creates a Calculator operating on float64 values with true division.
func New() Calculator {
	return &basicCalculator{}
}

func (c *basicCalculator) Add(a, b float64) float64 {
	return a + b
}

func (c *basicCalculator) Subtract(a, b float64) float64 {
	return a - b
}

func (c *basicCalculator) Multiply(a, b float64) float64 {
	return a * b
}

func (c *basicCalculator) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// ParseOperation maps a name such as "add" to its Operation.
func ParseOperation(name string) (Operation, error) {
	for _, op := range Operations() {
		if string(op) == name {
			return op, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownOperation, name)
}

// Apply runs op against calc.
func Apply(calc Calculator, op Operation, a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return calc.Add(a, b), nil
	case OpSubtract:
		return calc.Subtract(a, b), nil
	case OpMultiply:
		return calc.Multiply(a, b), nil
	case OpDivide:
		return calc.Divide(a, b)
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownOperation, op)
	}
}
