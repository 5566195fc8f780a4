package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/vk/rainflow/internal/app"
	"github.com/vk/rainflow/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// usageError is the exit code for malformed invocations.
const usageError = 2

// flagKeys maps setting flags to their configuration keys.
var flagKeys = map[string]string{
	"precision":  config.KeyPrecision,
	"order":      config.KeyOrder,
	"backend":    config.KeyBackend,
	"max-passes": config.KeyMaxPasses,
	"monitor":    config.KeyMonitor,
	"rain":       config.KeyRain,
}

// kvList collects repeated key=value flags.
type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("rainflow", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprintf(output, `
rainflow - simulates rain settling on a one-dimensional landscape.

Usage:
  rainflow [options] N

Arguments:
  N
    Number of rain steps. Ground heights are read one per line from the
    input; a blank line ends the input. One comma-separated line of water
    levels is printed per step.

Setting keys for -set and config files:
  %s

Options:
`, strings.Join(config.Keys(), ", "))
		flagSet.PrintDefaults()
	}

	defaults := config.Default()
	configFlag := flagSet.String("config", "", "Path to a .hcl, .yaml or .yml settings file.")
	inputFlag := flagSet.String("input", "", "Path to the heights file. Defaults to standard input.")
	flagSet.Float64("precision", defaults.Simulation.Precision, "Minimum water and height gap worth moving.")
	flagSet.String("order", defaults.Simulation.Order, "Evaluation order. Options: 'height-desc' or 'input'.")
	flagSet.String("backend", defaults.Simulation.Backend, "Numeric backend. Options: 'float64' or 'decimal'.")
	flagSet.Int("max-passes", defaults.Simulation.MaxPasses, "Pass limit per rain step. 0 is unlimited.")
	flagSet.Bool("monitor", defaults.Simulation.Monitor, "Check the convergence potential after every pass.")
	flagSet.String("rain", defaults.Rain.Source, "Rain amount per point and step; may use index, step and points.")
	var sets kvList
	flagSet.Var(&sets, "set", "Setting override in key=value form (repeatable).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: usageError, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No step count provided, printing usage.")
		flagSet.Usage()
		return nil, false, &ExitError{Code: usageError, Message: "missing required argument N"}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: usageError, Message: fmt.Sprintf("unexpected arguments: %v", flagSet.Args()[1:])}
	}
	steps, err := strconv.Atoi(flagSet.Arg(0))
	if err != nil || steps < 0 {
		return nil, false, &ExitError{Code: usageError, Message: fmt.Sprintf("invalid N %q: must be a non-negative integer", flagSet.Arg(0))}
	}

	// -set comes first so explicitly passed flags win.
	overrides := make(map[string]string)
	for _, kv := range sets {
		key, value, _ := strings.Cut(kv, "=")
		overrides[strings.TrimSpace(key)] = value
	}
	flagSet.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			overrides[key] = f.Value.String()
		}
	})
	slog.Debug("Setting overrides collected.", "count", len(overrides))

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: usageError, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: usageError, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		Steps:      steps,
		InputPath:  *inputFlag,
		ConfigPath: *configFlag,
		Overrides:  overrides,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: usageError, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
