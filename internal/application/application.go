package application

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/eugenenazirov/pipeline-demo/internal/calculator"
	"github.com/eugenenazirov/pipeline-demo/internal/config"
	"github.com/eugenenazirov/pipeline-demo/internal/greeting"
	"github.com/eugenenazirov/pipeline-demo/internal/listutil"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// App encapsulates the services a command needs and where it writes output.
type App struct {
	calculator  calculator.Calculator
	defaultName string
	clock       func() time.Time
	logger      *zap.Logger
	out         io.Writer
}

// Option configures App behaviour.
type Option func(*App)

// WithClock overrides the time source handed to greeting services, primarily for tests.
func WithClock(clock func() time.Time) Option {
	return func(a *App) {
		a.clock = clock
	}
}

// New initializes the application from the provided configuration.
func New(cfg config.Config, logger *zap.Logger, out io.Writer, opts ...Option) *App {
	a := &App{
		calculator:  calculator.New(),
		defaultName: cfg.DefaultName,
		clock:       time.Now,
		logger:      logger,
		out:         out,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// DefaultName returns the configured name used when greet gets no --name.
func (a *App) DefaultName() string {
	return a.defaultName
}

func (a *App) greeter(name string) *greeting.Service {
	return greeting.New(name, greeting.WithClock(a.clock))
}

// RunCalc applies op to a and b and prints the result. A division by zero is
// reported on the output and yields ExitFailure.
func (a *App) RunCalc(op calculator.Operation, x, y float64) int {
	a.logger.Debug("calculating",
		zap.String("operation", string(op)),
		zap.Float64("a", x),
		zap.Float64("b", y),
	)

	result, err := calculator.Apply(a.calculator, op, x, y)
	if err != nil {
		if errors.Is(err, calculator.ErrDivisionByZero) {
			a.logger.Info("calculation failed", zap.String("operation", string(op)), zap.Error(err))
		} else {
			a.logger.Error("unexpected calculator error", zap.String("operation", string(op)), zap.Error(err))
		}
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return ExitFailure
	}

	fmt.Fprintf(a.out, "Result: %s\n", formatResult(result))
	return ExitOK
}

// RunGreet prints the greeting for name, used verbatim, followed by the
// current time when showTime is set.
func (a *App) RunGreet(name string, showTime bool) int {
	svc := a.greeter(name)
	a.logger.Debug("greeting", zap.String("name", svc.Name()), zap.Bool("time", showTime))

	fmt.Fprintln(a.out, svc.Greeting())
	if showTime {
		fmt.Fprintf(a.out, "Current time: %s\n", svc.CurrentTime())
	}
	return ExitOK
}

// RunDemo walks through every service with fixed sample inputs.
func (a *App) RunDemo() int {
	calc := a.calculator
	quotient, err := calc.Divide(15, 3)
	if err != nil {
		a.logger.Error("demo division failed", zap.Error(err))
		return ExitFailure
	}

	fmt.Fprintln(a.out, "=== Calculator Demo ===")
	fmt.Fprintf(a.out, "5 + 3 = %s\n", formatCompact(calc.Add(5, 3)))
	fmt.Fprintf(a.out, "10 - 4 = %s\n", formatCompact(calc.Subtract(10, 4)))
	fmt.Fprintf(a.out, "6 * 7 = %s\n", formatCompact(calc.Multiply(6, 7)))
	fmt.Fprintf(a.out, "15 / 3 = %s\n", formatResult(quotient))

	svc := a.greeter("Jenkins")
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "=== Greeting Service Demo ===")
	fmt.Fprintln(a.out, svc.Greeting())
	fmt.Fprintf(a.out, "Current time: %s\n", svc.CurrentTime())
	fmt.Fprintf(a.out, "Is today weekend? %s\n", formatBool(svc.IsWeekendToday()))

	numbers := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	largest, err := listutil.FindMax(numbers)
	if err != nil {
		a.logger.Error("demo max failed", zap.Error(err))
		return ExitFailure
	}
	average, err := listutil.Average(numbers)
	if err != nil {
		a.logger.Error("demo average failed", zap.Error(err))
		return ExitFailure
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "=== List Utilities Demo ===")
	fmt.Fprintf(a.out, "Original numbers: %s\n", formatList(numbers))
	fmt.Fprintf(a.out, "Even numbers: %s\n", formatList(listutil.FilterEven(numbers)))
	fmt.Fprintf(a.out, "Maximum: %s\n", formatCompact(largest))
	fmt.Fprintf(a.out, "Average: %.2f\n", average)
	return ExitOK
}

func formatList(numbers []float64) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = formatCompact(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
