//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// fakeOpenMeteo serves canned geocoding and forecast responses
type fakeOpenMeteo struct {
	srv       *httptest.Server
	searches  atomic.Int32
	forecasts atomic.Int32
	failNext  atomic.Bool
}

type place struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Admin1    string  `json:"admin1,omitempty"`
	Country   string  `json:"country,omitempty"`
	Timezone  string  `json:"timezone,omitempty"`
}

var places = []place{
	{ID: 2950159, Name: "Berlin", Latitude: 52.52437, Longitude: 13.41053, Admin1: "Land Berlin", Country: "Germany", Timezone: "Europe/Berlin"},
	{ID: 5083330, Name: "Berlin", Latitude: 44.46867, Longitude: -71.18508, Admin1: "New Hampshire", Country: "United States", Timezone: "America/New_York"},
}

func newFakeOpenMeteo(t *testing.T) *fakeOpenMeteo {
	t.Helper()
	f := &fakeOpenMeteo{}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/search", f.search)
	mux.HandleFunc("/v1/forecast", f.forecast)
	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

// Args points the app at the fake server
func (f *fakeOpenMeteo) Args() []string {
	return []string{
		"--geocoding-url", f.srv.URL + "/v1/search",
		"--forecast-url", f.srv.URL + "/v1/forecast",
		"--debounce", "150ms",
	}
}

func (f *fakeOpenMeteo) search(w http.ResponseWriter, r *http.Request) {
	f.searches.Add(1)
	name := strings.ToLower(r.URL.Query().Get("name"))

	var results []place
	for _, p := range places {
		if strings.HasPrefix(strings.ToLower(p.Name), name) {
			results = append(results, p)
		}
	}

	// no "results" key at all when nothing matched
	body := map[string]any{"generationtime_ms": 0.5}
	if len(results) > 0 {
		body["results"] = results
	}
	writeJSON(w, body)
}

func (f *fakeOpenMeteo) forecast(w http.ResponseWriter, r *http.Request) {
	f.forecasts.Add(1)
	if f.failNext.CompareAndSwap(true, false) {
		http.Error(w, `{"error":true,"reason":"upstream down"}`, http.StatusServiceUnavailable)
		return
	}

	start := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)
	var (
		hours []string
		temps []float64
		codes []int
	)
	for i := 0; i < 48; i++ {
		hours = append(hours, start.Add(time.Duration(i)*time.Hour).Format("2006-01-02T15:04"))
		temps = append(temps, 60+float64(i%10))
		codes = append(codes, 0)
	}

	var (
		days, sunrise, sunset []string
		highs, lows           []float64
		dayCodes              []int
	)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i).Format(time.DateOnly)
		days = append(days, d)
		sunrise = append(sunrise, d+"T06:42")
		sunset = append(sunset, d+"T17:58")
		highs = append(highs, 75.4)
		lows = append(lows, 51.6)
		dayCodes = append(dayCodes, 3)
	}

	writeJSON(w, map[string]any{
		"latitude":  52.52,
		"longitude": 13.41,
		"timezone":  "Europe/Berlin",
		"current": map[string]any{
			"time":                 "2025-03-04T12:00",
			"temperature_2m":       71.6,
			"apparent_temperature": 69.8,
			"is_day":               1,
			"weather_code":         0,
		},
		"hourly": map[string]any{
			"time":                 hours,
			"temperature_2m":       temps,
			"apparent_temperature": temps,
			"weather_code":         codes,
		},
		"daily": map[string]any{
			"time":               days,
			"weather_code":       dayCodes,
			"temperature_2m_max": highs,
			"temperature_2m_min": lows,
			"sunrise":            sunrise,
			"sunset":             sunset,
		},
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
