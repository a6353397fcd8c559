package httpapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/internal/httpapi"
	"github.com/katalvlaran/skyroute/reroute"
)

// routeJSON mirrors RouteResponse with stages as plain strings.
type routeJSON struct {
	From             string            `json:"from"`
	To               string            `json:"to"`
	Found            bool              `json:"found"`
	Path             []string          `json:"path"`
	Cost             *float64          `json:"cost"`
	Rerouted         bool              `json:"rerouted"`
	Degraded         bool              `json:"degraded"`
	BlockedByWeather bool              `json:"blocked_by_weather"`
	Stage            string            `json:"stage"`
	DirectPath       []string          `json:"direct_path"`
	Hazards          []httpapi.Segment `json:"hazards"`
	Trace            []string          `json:"trace"`
}

func newServer(t *testing.T) (*httptest.Server, *core.Graph) {
	t.Helper()
	g := core.NewGraph()
	for _, a := range []core.Airport{
		{Code: "JFK", Position: core.Position{X: 150, Y: 100}},
		{Code: "ORD", Position: core.Position{X: 350, Y: 150}},
		{Code: "LAX", Position: core.Position{X: 50, Y: 500}},
	} {
		_, err := g.AddNode(a.Code, a.Position)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddEdge(0, 1, 206))
	require.NoError(t, g.AddEdge(1, 2, 474))
	require.NoError(t, g.AddEdge(0, 2, 412))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(httpapi.NewService(g, reroute.New(), logger).Handler())
	t.Cleanup(srv.Close)

	return srv, g
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}

	return resp.StatusCode
}

func postWeather(t *testing.T, srv *httptest.Server, body string) (int, []byte) {
	t.Helper()
	resp, err := http.Post(srv.URL+"/api/weather", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, raw
}

func TestHealth(t *testing.T) {
	srv, _ := newServer(t)
	var body map[string]string
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/health", &body))
	assert.Equal(t, "ok", body["status"])
}

func TestListAirports(t *testing.T) {
	srv, _ := newServer(t)
	var body struct {
		Airports []httpapi.Airport `json:"airports"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/airports", &body))
	require.Len(t, body.Airports, 3)
	assert.Equal(t, httpapi.Airport{
		Index: 0,
		Code:  "JFK",
		Name:  "John F. Kennedy International Airport",
		X:     150,
		Y:     100,
	}, body.Airports[0])
	assert.Equal(t, 2, body.Airports[2].Index)
}

func TestRoute_ClearSkies(t *testing.T) {
	srv, _ := newServer(t)
	var body routeJSON
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/route?from=JFK&to=lax", &body))

	assert.True(t, body.Found)
	assert.Equal(t, []string{"JFK", "LAX"}, body.Path)
	require.NotNil(t, body.Cost)
	assert.Equal(t, 412.0, *body.Cost)
	assert.False(t, body.Rerouted)
	assert.Equal(t, "DIRECT", body.Stage)
	assert.Equal(t, []string{"DIRECT", "TERMINAL"}, body.Trace)
	assert.Empty(t, body.Hazards)
}

func TestWeatherThenRoute(t *testing.T) {
	srv, g := newServer(t)

	code, raw := postWeather(t, srv, `{"from":"JFK","to":"2","bad":true,"description":"Thunderstorm"}`)
	require.Equal(t, http.StatusOK, code, string(raw))
	var echo httpapi.WeatherResponse
	require.NoError(t, json.Unmarshal(raw, &echo))
	assert.Equal(t, "JFK", echo.From)
	assert.Equal(t, "LAX", echo.To)
	assert.True(t, echo.Weather.IsBad())
	assert.Equal(t, "Thunderstorm", echo.Weather.Description())

	wx, err := g.Weather(2, 0)
	require.NoError(t, err)
	assert.True(t, wx.IsBad(), "update reaches the live graph both ways")

	var hz struct {
		Hazards []httpapi.Segment `json:"hazards"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/weather", &hz))
	assert.Equal(t, []httpapi.Segment{{From: "JFK", To: "LAX", Label: "JFK-LAX", Description: "Thunderstorm"}}, hz.Hazards)

	var body routeJSON
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/route?from=0&to=2", &body))
	assert.Equal(t, []string{"JFK", "ORD", "LAX"}, body.Path)
	assert.Equal(t, []string{"JFK", "LAX"}, body.DirectPath)
	require.NotNil(t, body.Cost)
	assert.Equal(t, 680.0, *body.Cost)
	assert.True(t, body.Rerouted)
	assert.Equal(t, "LOCAL_PATCH", body.Stage)
	require.Len(t, body.Hazards, 1)
	assert.Equal(t, "JFK-LAX", body.Hazards[0].Label)
}

func TestRoute_BlockedByWeather(t *testing.T) {
	srv, _ := newServer(t)
	code, _ := postWeather(t, srv, `{"from":"JFK","to":"LAX","bad":true}`)
	require.Equal(t, http.StatusOK, code)
	code, _ = postWeather(t, srv, `{"from":"ORD","to":"LAX","bad":true,"description":"Fog"}`)
	require.Equal(t, http.StatusOK, code)

	var body routeJSON
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/route?from=JFK&to=LAX", &body))
	assert.False(t, body.Found)
	assert.Empty(t, body.Path)
	assert.Nil(t, body.Cost, "an unreachable cost is omitted")
	assert.False(t, body.Rerouted)
	assert.True(t, body.BlockedByWeather)
	assert.Equal(t, []string{"JFK", "LAX"}, body.DirectPath)
}

func TestWeather_ClearDefaultsDescription(t *testing.T) {
	srv, _ := newServer(t)
	code, raw := postWeather(t, srv, `{"from":"JFK","to":"ORD","bad":false}`)
	require.Equal(t, http.StatusOK, code)
	var echo httpapi.WeatherResponse
	require.NoError(t, json.Unmarshal(raw, &echo))
	assert.Equal(t, "Clear skies", echo.Weather.Description())
}

func TestErrors(t *testing.T) {
	srv, _ := newServer(t)

	cases := []struct {
		name string
		url  string
		want int
	}{
		{"missing to", "/api/route?from=JFK", http.StatusBadRequest},
		{"unknown code", "/api/route?from=JFK&to=XYZ", http.StatusNotFound},
		{"index out of range", "/api/route?from=0&to=7", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var body map[string]string
			require.Equal(t, tc.want, getJSON(t, srv.URL+tc.url, &body))
			assert.NotEmpty(t, body["error"])
		})
	}

	posts := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{"from":`, http.StatusBadRequest},
		{"unknown field", `{"from":"JFK","to":"ORD","wind":3}`, http.StatusBadRequest},
		{"self loop", `{"from":"JFK","to":"jfk","bad":true}`, http.StatusBadRequest},
		{"unknown airport", `{"from":"JFK","to":"AAA","bad":true}`, http.StatusNotFound},
	}
	for _, tc := range posts {
		t.Run(tc.name, func(t *testing.T) {
			code, raw := postWeather(t, srv, tc.body)
			require.Equal(t, tc.want, code, string(raw))
			assert.Contains(t, string(raw), `"error"`)
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv, _ := newServer(t)
	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/route", bytes.NewReader(nil))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
