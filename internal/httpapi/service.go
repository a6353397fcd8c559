package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/internal/config"
	"github.com/katalvlaran/skyroute/internal/ctxlog"
	"github.com/katalvlaran/skyroute/reroute"
)

// Service serves one live graph.
type Service struct {
	mu     sync.Mutex // serializes routing requests
	graph  *core.Graph
	policy *reroute.Policy
	logger *slog.Logger
}

// NewService wires g and policy behind the HTTP handlers. A nil logger falls
// back to slog.Default().
func NewService(g *core.Graph, policy *reroute.Policy, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if policy == nil {
		policy = reroute.New()
	}

	return &Service{graph: g, policy: policy, logger: logger}
}

// RegisterRoutes attaches the service routes to router.
func (s *Service) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", s.Health).Methods(http.MethodGet)
	router.HandleFunc("/api/airports", s.ListAirports).Methods(http.MethodGet)
	router.HandleFunc("/api/weather", s.ListWeather).Methods(http.MethodGet)
	router.HandleFunc("/api/weather", s.UpdateWeather).Methods(http.MethodPost)
	router.HandleFunc("/api/route", s.Route).Methods(http.MethodGet)
}

// Handler returns a router with every route registered.
func (s *Service) Handler() http.Handler {
	router := mux.NewRouter()
	s.RegisterRoutes(router)

	return router
}

// Health answers liveness probes.
func (s *Service) Health(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr)
	Respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListAirports returns every airport in index order.
func (s *Service) ListAirports(w http.ResponseWriter, _ *http.Request) {
	Respond(w, http.StatusOK, map[string]any{
		"airports": airportsOf(s.graph.Snapshot()),
	})
}

// ListWeather returns every hazardous linked pair.
func (s *Service) ListWeather(w http.ResponseWriter, _ *http.Request) {
	snap := s.graph.Snapshot()
	Respond(w, http.StatusOK, map[string]any{
		"hazards": segmentsOf(snap, snap.Hazards()),
	})
}

// UpdateWeather sets the weather of one pair.
func (s *Service) UpdateWeather(w http.ResponseWriter, r *http.Request) {
	var req WeatherRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		Respond(w, http.StatusBadRequest, newErrResp("invalid request body: "+err.Error()))
		return
	}

	snap := s.graph.Snapshot()
	u, v, err := resolvePair(snap, req.From, req.To)
	if err != nil {
		s.fail(w, err)
		return
	}
	desc := strings.TrimSpace(req.Description)
	if desc == "" {
		desc = config.DefaultClearDescription
		if req.Bad {
			desc = config.DefaultBadDescription
		}
	}
	wx := core.NewWeather(req.Bad, desc)
	if err = s.graph.SetWeather(u, v, wx); err != nil {
		s.fail(w, err)
		return
	}
	s.logger.Info("Weather updated",
		"from", snap.Code(u),
		"to", snap.Code(v),
		"weather", wx.String(),
	)

	Respond(w, http.StatusOK, WeatherResponse{From: snap.Code(u), To: snap.Code(v), Weather: wx})
}

// Route answers GET /api/route?from=&to=.
func (s *Service) Route(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		Respond(w, http.StatusBadRequest, newErrResp("query parameters 'from' and 'to' are required"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.graph.Snapshot()
	src, dst, err := resolvePair(snap, from, to)
	if err != nil {
		s.fail(w, err)
		return
	}
	ctx := ctxlog.WithLogger(r.Context(), s.logger)
	d, err := s.policy.RouteSnapshot(ctx, snap, src, dst)
	if err != nil {
		s.fail(w, err)
		return
	}

	Respond(w, http.StatusOK, routeResponse(snap, src, dst, d))
}

func resolvePair(snap core.Snapshot, from, to string) (int, int, error) {
	u, err := config.ResolveAirport(snap, from)
	if err != nil {
		return -1, -1, fmt.Errorf("from: %w", err)
	}
	v, err := config.ResolveAirport(snap, to)
	if err != nil {
		return -1, -1, fmt.Errorf("to: %w", err)
	}

	return u, v, nil
}

// fail maps domain errors onto status codes.
func (s *Service) fail(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, config.ErrUnknownAirport):
		code = http.StatusNotFound
	case errors.Is(err, core.ErrSelfLoop),
		errors.Is(err, core.ErrOutOfRange),
		errors.Is(err, reroute.ErrOutOfRange):
		code = http.StatusBadRequest
	}
	if code == http.StatusInternalServerError {
		s.logger.Error("Request failed", "error", err)
	}

	Respond(w, code, newErrResp(err.Error()))
}
