package app

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/internal/config"
)

// ErrInvalidInput marks errors caused by user input rather than the
// environment; the command maps it to exit code 2.
var ErrInvalidInput = errors.New("invalid input")

// Config holds everything one run needs.
type Config struct {
	ConfigPath string // HCL fleet file; empty uses the built-in fleet

	From string // airport code or index; empty uses the fleet file route
	To   string

	Weather []WeatherFlag // applied in order, as one batch
	MaxLeg  float64       // aircraft range; 0 keeps the fleet file value

	Storms float64 // probability of a random storm per leg; 0 disables
	Seed   int64   // storm seed; 0 draws a new one

	ServeAddr string // HTTP listen address; empty disables the server

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if (cfg.From == "") != (cfg.To == "") {
		return nil, fmt.Errorf("%w: both source and destination are required", ErrInvalidInput)
	}
	if cfg.MaxLeg < 0 || math.IsNaN(cfg.MaxLeg) {
		return nil, fmt.Errorf("%w: max-leg must be positive, got %g", ErrInvalidInput, cfg.MaxLeg)
	}

	if !(cfg.Storms >= 0 && cfg.Storms <= 1) {
		return nil, fmt.Errorf("%w: storms must be in [0,1], got %g", ErrInvalidInput, cfg.Storms)
	}

	return &cfg, nil
}

// WeatherFlag is one "FROM-TO=description" command-line weather update.
type WeatherFlag struct {
	From    string
	To      string
	Weather core.Weather
}

// ParseWeather parses FROM-TO, FROM-TO=description or FROM-TO=clear.
// Without a description the pair gets the default bad-weather text.
func ParseWeather(s string) (WeatherFlag, error) {
	pair, desc, hasDesc := strings.Cut(s, "=")
	from, to, ok := strings.Cut(strings.TrimSpace(pair), "-")
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if !ok || from == "" || to == "" {
		return WeatherFlag{}, fmt.Errorf("%w: weather %q: want FROM-TO[=description|clear]", ErrInvalidInput, s)
	}

	desc = strings.TrimSpace(desc)
	wf := WeatherFlag{From: from, To: to}
	switch {
	case !hasDesc || desc == "":
		wf.Weather = core.Hazard(config.DefaultBadDescription)
	case strings.EqualFold(desc, config.ConditionClear), strings.EqualFold(desc, config.ConditionGood):
		wf.Weather = core.Clear(config.DefaultClearDescription)
	default:
		wf.Weather = core.Hazard(desc)
	}

	return wf, nil
}

// String renders the flag back in its command-line form.
func (w WeatherFlag) String() string {
	if !w.Weather.IsBad() {
		return w.From + "-" + w.To + "=" + config.ConditionClear
	}

	return w.From + "-" + w.To + "=" + w.Weather.Description()
}
