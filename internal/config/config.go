package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	DefaultForecastURL  = "https://api.open-meteo.com/v1/forecast"
)

// Duration is a time.Duration stored as a string ("500ms") in TOML
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(b), err)
	}
	*d = Duration(v)
	return nil
}

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config represents the application configuration
type Config struct {
	Version    int              `toml:"version"`
	API        APISettings      `toml:"api"`
	Search     SearchSettings   `toml:"search"`
	Forecast   ForecastSettings `toml:"forecast"`
	UISettings UISettings       `toml:"ui"`
	Log        LogSettings      `toml:"log"`
	Metrics    MetricsSettings  `toml:"metrics"`
}

// APISettings configures the outbound Open-Meteo client
type APISettings struct {
	GeocodingURL string   `toml:"geocoding_url"`
	ForecastURL  string   `toml:"forecast_url"`
	Timeout      Duration `toml:"timeout"`
	RateLimit    float64  `toml:"rate_limit"` // requests per second, 0 disables
	RateBurst    int      `toml:"rate_burst"`
}

// SearchSettings configures the search controller
type SearchSettings struct {
	Debounce    Duration `toml:"debounce"`
	ResultCount int      `toml:"result_count"`
	Language    string   `toml:"language"`
}

// ForecastSettings configures the forecast request
type ForecastSettings struct {
	Days              int    `toml:"days"`
	TemperatureUnit   string `toml:"temperature_unit"`
	WindSpeedUnit     string `toml:"wind_speed_unit"`
	PrecipitationUnit string `toml:"precipitation_unit"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowApparent bool `toml:"show_apparent"`
	ShowSunTimes bool `toml:"show_sun_times"`
}

// LogSettings configures the log file
type LogSettings struct {
	File  string `toml:"file"`
	Debug bool   `toml:"debug"`
}

// MetricsSettings configures the optional prometheus endpoint
type MetricsSettings struct {
	Addr string `toml:"addr"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted in the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "nimbus", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, writing defaults on first run
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		if err := cs.Save(cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Missing keys keep
// their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate rejects values the clients cannot work with
func (c *Config) Validate() error {
	switch {
	case c.API.GeocodingURL == "":
		return errors.New("config: api.geocoding_url is empty")
	case c.API.ForecastURL == "":
		return errors.New("config: api.forecast_url is empty")
	case c.Search.Debounce < 0:
		return errors.New("config: search.debounce must not be negative")
	case c.Search.ResultCount < 1 || c.Search.ResultCount > 100:
		return fmt.Errorf("config: search.result_count %d out of range 1-100", c.Search.ResultCount)
	case c.Forecast.Days < 1 || c.Forecast.Days > 16:
		return fmt.Errorf("config: forecast.days %d out of range 1-16", c.Forecast.Days)
	case c.API.RateLimit < 0:
		return errors.New("config: api.rate_limit must not be negative")
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APISettings{
			GeocodingURL: DefaultGeocodingURL,
			ForecastURL:  DefaultForecastURL,
			Timeout:      Duration(30 * time.Second),
			RateLimit:    5,
			RateBurst:    5,
		},
		Search: SearchSettings{
			Debounce:    Duration(500 * time.Millisecond),
			ResultCount: 10,
			Language:    "en",
		},
		Forecast: ForecastSettings{
			Days:              16,
			TemperatureUnit:   "fahrenheit",
			WindSpeedUnit:     "mph",
			PrecipitationUnit: "inch",
		},
		UISettings: UISettings{
			ShowApparent: true,
			ShowSunTimes: true,
		},
	}
}
