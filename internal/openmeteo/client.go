// Package openmeteo talks to the Open-Meteo geocoding and forecast APIs.
package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"nimbus/internal/config"
	"nimbus/internal/domain"
	"nimbus/internal/metrics"
)

const (
	endpointGeocoding = "geocoding"
	endpointForecast  = "forecast"

	maxBodyBytes = 8 << 20
)

var (
	ErrUnexpectedStatus  = errors.New("unexpected status")
	ErrMalformedResponse = errors.New("malformed response")
)

// Version is sent in the User-Agent header
var Version = "dev"

// Client fetches geocoding candidates and forecasts
type Client struct {
	httpClient   *http.Client
	limiter      *rate.Limiter
	geocodingURL string
	forecastURL  string
	count        int
	language     string
	forecast     config.ForecastSettings
}

// NewClient creates a client from the api/search/forecast config sections
func NewClient(cfg *config.Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.API.Timeout.Std()}
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.API.RateLimit > 0 {
		burst := cfg.API.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.API.RateLimit), burst)
	}

	return &Client{
		httpClient:   httpClient,
		limiter:      limiter,
		geocodingURL: cfg.API.GeocodingURL,
		forecastURL:  cfg.API.ForecastURL,
		count:        cfg.Search.ResultCount,
		language:     cfg.Search.Language,
		forecast:     cfg.Forecast,
	}
}

// Search looks up place names. An absent results array is an empty list.
func (c *Client) Search(ctx context.Context, name string) ([]domain.LocationCandidate, error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("count", strconv.Itoa(c.count))
	q.Set("format", "json")
	if c.language != "" {
		q.Set("language", c.language)
	}

	var body geocodingResponse
	if err := c.get(ctx, endpointGeocoding, c.geocodingURL, q, &body); err != nil {
		return nil, fmt.Errorf("fetch geocoding: %w", err)
	}

	candidates := make([]domain.LocationCandidate, 0, len(body.Results))
	for _, r := range body.Results {
		candidates = append(candidates, domain.LocationCandidate{
			ID:        r.ID,
			Name:      r.Name,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
			Admin1:    r.Admin1,
			Admin2:    r.Admin2,
			Country:   r.Country,
		})
	}
	return candidates, nil
}

// Forecast fetches current, hourly and daily data in a single request
func (c *Client) Forecast(ctx context.Context, lat, lon float64) (*domain.ForecastSnapshot, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("current", "temperature_2m,apparent_temperature,is_day,weather_code")
	q.Set("hourly", "temperature_2m,apparent_temperature,weather_code")
	q.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min,sunrise,sunset")
	q.Set("temperature_unit", c.forecast.TemperatureUnit)
	q.Set("wind_speed_unit", c.forecast.WindSpeedUnit)
	q.Set("precipitation_unit", c.forecast.PrecipitationUnit)
	q.Set("timezone", "auto")
	q.Set("forecast_days", strconv.Itoa(c.forecast.Days))
	q.Set("past_hours", "1")
	q.Set("models", "best_match")

	var body forecastResponse
	if err := c.get(ctx, endpointForecast, c.forecastURL, q, &body); err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}

	snap, err := body.snapshot()
	if err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}
	snap.FetchedAt = time.Now()
	return snap, nil
}

func (c *Client) get(ctx context.Context, endpoint, base string, q url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	u, err := url.Parse(base)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "nimbus/"+Version)
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveRequest(endpoint, "error", started)
		return err
	}
	defer resp.Body.Close()
	metrics.ObserveRequest(endpoint, strconv.Itoa(resp.StatusCode), started)

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(b))
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrMalformedResponse, err)
	}
	return nil
}
