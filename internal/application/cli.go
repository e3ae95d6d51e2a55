package application

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eugenenazirov/pipeline-demo/internal/calculator"
	"github.com/eugenenazirov/pipeline-demo/internal/config"
	"github.com/eugenenazirov/pipeline-demo/internal/logging"
)

const appName = "pipeline-demo"

// Run parses args, executes the selected command and returns the process exit
// code. Command output goes to stdout; parse errors and logs go to stderr.
func Run(args []string, stdout, stderr io.Writer, opts ...Option) int {
	terminated := -1
	app := kingpin.New(appName, "Pipeline demo - calculator, greetings and list utilities")
	app.UsageWriter(stdout)
	app.ErrorWriter(stderr)
	app.Terminate(func(code int) {
		if terminated < 0 {
			terminated = code
		}
	})

	configFile := app.Flag("config", "Path to YAML or TOML configuration file").String()
	logLevel := app.Flag("log-level", "Log level (debug, info, warn, error)").String()
	logFormat := app.Flag("log-format", "Log encoding (json or console)").String()

	operations := make([]string, 0, len(calculator.Operations()))
	for _, op := range calculator.Operations() {
		operations = append(operations, string(op))
	}

	calcCmd := app.Command("calc", "Calculator operations")
	calcOp := calcCmd.Arg("operation", "Operation to perform").Required().Enum(operations...)
	calcA := calcCmd.Arg("a", "First number").Required().Float64()
	calcB := calcCmd.Arg("b", "Second number").Required().Float64()

	greetCmd := app.Command("greet", "Greeting operations")
	var nameSet bool
	greetName := greetCmd.Flag("name", "Name to greet").IsSetByUser(&nameSet).String()
	greetTime := greetCmd.Flag("time", "Show current time").Bool()

	demoCmd := app.Command("demo", "Walk through the calculator, greeting and list utilities")

	if len(args) == 0 {
		app.Usage(args)
		return ExitOK
	}

	valueFlags := map[string]bool{"--config": true, "--log-level": true, "--log-format": true, "--name": true}
	command, err := app.Parse(separateNegativeOperands(args, valueFlags))
	if terminated >= 0 {
		// --help and friends already wrote their output.
		if terminated != ExitOK {
			return ExitUsage
		}
		return ExitOK
	}
	if err != nil {
		if errors.Is(err, kingpin.ErrCommandNotSpecified) {
			app.Usage(args)
			return ExitOK
		}
		app.Errorf("%s, try --help", err)
		return ExitUsage
	}

	cfg, err := config.Load(&config.CLIOverrides{
		ConfigFile: *configFile,
		LogLevel:   logLevel,
		LogFormat:  logFormat,
	})
	if err != nil {
		fmt.Fprintf(stderr, "%s: failed to load configuration: %v\n", appName, err)
		return ExitFailure
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: stderr})
	if err != nil {
		fmt.Fprintf(stderr, "%s: failed to initialize logger: %v\n", appName, err)
		return ExitFailure
	}
	defer func() {
		_ = logger.Sync()
	}()
	logger = logger.With(zap.String("run_id", uuid.NewString()))
	for _, warning := range cfg.Warnings {
		logger.Warn("invalid environment setting", zap.String("detail", warning))
	}
	logger.Debug("dispatching command", zap.String("command", command))

	a := New(cfg, logger, stdout, opts...)

	switch command {
	case calcCmd.FullCommand():
		op, err := calculator.ParseOperation(*calcOp)
		if err != nil {
			app.Errorf("%s, try --help", err)
			return ExitUsage
		}
		return a.RunCalc(op, *calcA, *calcB)
	case greetCmd.FullCommand():
		name := a.DefaultName()
		if nameSet {
			name = *greetName
		}
		return a.RunGreet(name, *greetTime)
	case demoCmd.FullCommand():
		return a.RunDemo()
	default:
		app.Usage(args)
		return ExitOK
	}
}

// separateNegativeOperands lets operands such as "-3" reach positional
// arguments instead of being lexed as short flags. From the first negative
// number on, flags are moved ahead and the remaining positionals follow a
// "--" terminator. valueFlags names the long flags that consume the next
// argument.
func separateNegativeOperands(args []string, valueFlags map[string]bool) []string {
	first := -1
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if i > 0 && valueFlags[args[i-1]] {
			continue
		}
		if isNegativeNumber(arg) {
			first = i
			break
		}
	}
	if first < 0 {
		return args
	}

	flags := make([]string, 0, len(args)-first)
	positionals := make([]string, 0, len(args)-first)
	for i := first; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positionals = append(positionals, args[i+1:]...)
			i = len(args)
		case strings.HasPrefix(arg, "-") && !isNegativeNumber(arg):
			flags = append(flags, arg)
			if valueFlags[arg] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		default:
			positionals = append(positionals, arg)
		}
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, args[:first]...)
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, positionals...)
}

func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil
}
