package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/specialistvlad/mathgrid/internal/app"
)

// EnvPrefix prefixes every environment variable that provides a flag default.
const EnvPrefix = "MATHGRID_"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// settingFlags maps flag names to the setting they make explicit.
var settingFlags = map[string]string{
	"root":         app.SettingRoot,
	"strategy":     app.SettingStrategy,
	"width":        app.SettingWidth,
	"placeholders": app.SettingPlaceholders,
	"dot":          app.SettingDot,
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Flag defaults are taken from the environment when set.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("mathgrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
mathgrid - Evaluates graphs of named arithmetic declarations.

Usage:
  mathgrid [options] [INPUT_PATH]

Arguments:
  INPUT_PATH
    Path to a file with one declaration per line, either 'name: 42' or
    'name: lhs op rhs' where op is one of + - * /.

Every option can also be set through a MATHGRID_<OPTION> environment
variable (for example MATHGRID_LOG_LEVEL), optionally loaded from a .env
file. Command-line flags win over the settings file, which wins over the
environment.

Options:
`)
		flagSet.PrintDefaults()
	}

	defaultWidth, err := envInt("WIDTH", app.DefaultWidth)
	if err != nil {
		return nil, false, err
	}

	inputFlag := flagSet.String("input", env("INPUT", ""), "Path to the input file.")
	iFlag := flagSet.String("i", "", "Path to the input file (shorthand).")
	rootFlag := flagSet.String("root", env("ROOT", app.DefaultRoot), "Identifier to evaluate with the rooted strategy.")
	strategyFlag := flagSet.String("strategy", env("STRATEGY", app.StrategyRooted), "Evaluation strategy. Options: 'rooted', 'frontier' or 'both'.")
	widthFlag := flagSet.Int("width", defaultWidth, "Unsigned integer width in bits. Options: 8, 16, 32, 64.")
	placeholdersFlag := flagSet.String("placeholders", env("PLACEHOLDERS", "reject"), "Undeclared operands. Options: 'reject' or 'create'.")
	dotFlag := flagSet.String("dot", env("DOT", app.DefaultDotPath), "Path of the DOT graph export. Empty disables it.")
	configFlag := flagSet.String("config", env("CONFIG", ""), "Path to an HCL settings file.")
	logFormatFlag := flagSet.String("log-format", env("LOG_FORMAT", "text"), "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", env("LOG_LEVEL", "info"), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	slog.Debug("Arguments parsed successfully.")

	explicit := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) {
		if name, ok := settingFlags[f.Name]; ok {
			explicit[name] = true
		}
	})

	path := *inputFlag
	if *iFlag != "" {
		path = *iFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Input path determined.", "path", path)

	if path == "" {
		slog.Debug("No input path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	cfg, err := app.NewConfig(app.Config{
		InputPath:    path,
		ConfigPath:   *configFlag,
		Root:         *rootFlag,
		Strategy:     strings.ToLower(*strategyFlag),
		Width:        *widthFlag,
		Placeholders: strings.ToLower(*placeholdersFlag),
		DotPath:      *dotFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		Explicit:     explicit,
	})
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

func env(name, fallback string) string {
	if v, ok := os.LookupEnv(EnvPrefix + name); ok {
		return v
	}
	return fallback
}

func envInt(name string, fallback int) (int, error) {
	raw := env(name, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, usageError("invalid %s%s: %q is not a number", EnvPrefix, name, raw)
	}
	return v, nil
}
