package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/katalvlaran/skyroute/builder"
	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/internal/config"
	"github.com/katalvlaran/skyroute/internal/ctxlog"
	"github.com/katalvlaran/skyroute/internal/httpapi"
	"github.com/katalvlaran/skyroute/reroute"
)

const shutdownTimeout = 5 * time.Second

// App encapsulates the program's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp returns an App that writes the report to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{outW: outW, logger: logger, config: cfg}
}

// Run loads the fleet, applies command-line weather, reports the requested
// route and, when an address is configured, serves HTTP until ctx is done.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	fleet, err := a.loadFleet(ctx)
	if err != nil {
		return err
	}
	if err = a.applyStorms(fleet.Graph); err != nil {
		return err
	}
	if err = a.applyWeather(ctx, fleet.Graph); err != nil {
		return err
	}
	policy := a.policy(fleet)

	src, dst, ok, err := a.endpoints(fleet)
	if err != nil {
		return err
	}
	switch {
	case ok:
		if err = a.report(ctx, policy, fleet.Graph, src, dst); err != nil {
			return err
		}
	case a.config.ServeAddr == "":
		return fmt.Errorf("%w: no route given: pass FROM and TO or a fleet file with a route block", ErrInvalidInput)
	}

	if a.config.ServeAddr != "" {
		return a.serve(ctx, fleet.Graph, policy)
	}

	return nil
}

func (a *App) loadFleet(ctx context.Context) (*config.Fleet, error) {
	if a.config.ConfigPath == "" {
		a.logger.Debug("Using the built-in fleet.")
		return config.Default()
	}

	fleet, err := config.Load(ctx, a.config.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load fleet: %w: %w", ErrInvalidInput, err)
	}

	return fleet, nil
}

// applyStorms draws random storms before the explicit weather flags, so the
// flags win.
func (a *App) applyStorms(g *core.Graph) error {
	if a.config.Storms == 0 {
		return nil
	}
	seed := a.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	err := builder.Apply(g, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomStorms(a.config.Storms))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	a.logger.Info("Random storms drawn", "probability", a.config.Storms, "seed", seed, "hazards", len(g.Hazards()))

	return nil
}

// applyWeather resolves every weather flag first and then writes them as one
// batch, so a bad flag leaves the graph untouched.
func (a *App) applyWeather(ctx context.Context, g *core.Graph) error {
	if len(a.config.Weather) == 0 {
		return nil
	}
	snap := g.Snapshot()
	updates := make([]core.WeatherUpdate, 0, len(a.config.Weather))
	for _, wf := range a.config.Weather {
		u, err := config.ResolveAirport(snap, wf.From)
		if err != nil {
			return fmt.Errorf("weather %s: %w: %w", wf, ErrInvalidInput, err)
		}
		v, err := config.ResolveAirport(snap, wf.To)
		if err != nil {
			return fmt.Errorf("weather %s: %w: %w", wf, ErrInvalidInput, err)
		}
		updates = append(updates, core.WeatherUpdate{U: u, V: v, Weather: wf.Weather})
	}
	if err := g.Apply(updates...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	logger := ctxlog.FromContext(ctx)
	for _, up := range updates {
		condition := "Clear skies"
		if up.Weather.IsBad() {
			condition = "Bad weather (" + up.Weather.Description() + ")"
		}
		logger.Info("Weather updated",
			"from", snap.Code(up.U),
			"to", snap.Code(up.V),
			"condition", condition,
		)
	}

	return nil
}

func (a *App) policy(fleet *config.Fleet) *reroute.Policy {
	maxLeg := fleet.MaxLeg
	if a.config.MaxLeg > 0 {
		maxLeg = a.config.MaxLeg
	}
	if maxLeg > 0 {
		a.logger.Debug("Aircraft range limited.", "max_leg", maxLeg)
		return reroute.New(reroute.WithMaxLeg(maxLeg))
	}

	return reroute.New()
}

// endpoints picks the command-line route, falling back to the fleet file's.
func (a *App) endpoints(fleet *config.Fleet) (int, int, bool, error) {
	if a.config.From == "" {
		if fleet.Route == nil {
			return -1, -1, false, nil
		}
		return fleet.Route.From, fleet.Route.To, true, nil
	}

	snap := fleet.Graph.Snapshot()
	src, err := config.ResolveAirport(snap, a.config.From)
	if err != nil {
		return -1, -1, false, fmt.Errorf("source: %w: %w", ErrInvalidInput, err)
	}
	dst, err := config.ResolveAirport(snap, a.config.To)
	if err != nil {
		return -1, -1, false, fmt.Errorf("destination: %w: %w", ErrInvalidInput, err)
	}

	return src, dst, true, nil
}

func (a *App) report(ctx context.Context, policy *reroute.Policy, g *core.Graph, src, dst int) error {
	snap := g.Snapshot()
	d, err := policy.RouteSnapshot(ctx, snap, src, dst)
	if err != nil {
		return fmt.Errorf("routing failed: %w", err)
	}

	return WriteReport(a.outW, snap, src, dst, d)
}

func (a *App) serve(ctx context.Context, g *core.Graph, policy *reroute.Policy) error {
	server := &http.Server{
		Addr:              a.config.ServeAddr,
		Handler:           httpapi.NewService(g, policy, a.logger).Handler(),
		ReadHeaderTimeout: shutdownTimeout,
	}

	serverErrs := make(chan error, 1)
	go func() {
		defer close(serverErrs)

		a.logger.Info("HTTP server starting", "address", a.config.ServeAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrs <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case err := <-serverErrs:
		return err
	case <-ctx.Done():
		a.logger.Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}
