package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/skyroute/internal/app"
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

// weatherFlags collects repeated -weather values.
type weatherFlags []app.WeatherFlag

func (w *weatherFlags) String() string {
	parts := make([]string, len(*w))
	for i, f := range *w {
		parts[i] = f.String()
	}

	return strings.Join(parts, ",")
}

func (w *weatherFlags) Set(s string) error {
	f, err := app.ParseWeather(s)
	if err != nil {
		return err
	}
	*w = append(*w, f)

	return nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("skyroute", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
SkyRoute - weather-aware flight routing.

Usage:
  skyroute [options] [FROM TO]

Arguments:
  FROM TO
    Source and destination airports, as codes (JFK) or indices (0).

Examples:
  skyroute JFK LAX
  skyroute -weather JFK-LAX=Thunderstorm -weather ORD-DEN JFK LAX
  skyroute -c fleet.hcl -serve :8080

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL fleet file. Defaults to the built-in 15-airport fleet.")
	cFlag := flagSet.String("c", "", "Path to an HCL fleet file (shorthand).")
	fromFlag := flagSet.String("from", "", "Source airport code or index.")
	toFlag := flagSet.String("to", "", "Destination airport code or index.")
	var weather weatherFlags
	flagSet.Var(&weather, "weather", "Weather update FROM-TO[=description|clear]. Repeatable.")
	maxLegFlag := flagSet.Float64("max-leg", 0, "Aircraft range; longer legs are never flown. 0 keeps the fleet file value.")
	stormsFlag := flagSet.Float64("storms", 0, "Probability in [0,1] that each leg gets a random storm.")
	seedFlag := flagSet.Int64("seed", 0, "Seed for -storms. 0 draws a new seed every run.")
	serveFlag := flagSet.String("serve", "", "Serve the HTTP API on this address, e.g. ':8080'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := *configFlag
	if path == "" {
		path = *cFlag
	}

	from, to := *fromFlag, *toFlag
	switch flagSet.NArg() {
	case 0:
	case 2:
		if from != "" || to != "" {
			return nil, false, &ExitError{Code: 2, Message: "airports given both as flags and as arguments"}
		}
		from, to = flagSet.Arg(0), flagSet.Arg(1)
	default:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected FROM TO, got %d arguments", flagSet.NArg())}
	}

	if from == "" && to == "" && path == "" && *serveFlag == "" {
		slog.Debug("Nothing to do, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		ConfigPath: path,
		From:       from,
		To:         to,
		Weather:    weather,
		MaxLeg:     *maxLegFlag,
		Storms:     *stormsFlag,
		Seed:       *seedFlag,
		ServeAddr:  *serveFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
