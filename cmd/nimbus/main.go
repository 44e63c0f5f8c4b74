package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"nimbus/internal/config"
	"nimbus/internal/domain"
	"nimbus/internal/eventbus"
	"nimbus/internal/forecast"
	"nimbus/internal/logging"
	"nimbus/internal/metrics"
	"nimbus/internal/openmeteo"
	"nimbus/internal/search"
	"nimbus/internal/ui"
)

var version = "dev"

// CLI holds command line flags; every flag overrides the config file
type CLI struct {
	Config       string           `help:"Path to the config file." type:"path" env:"NIMBUS_CONFIG"`
	Query        string           `help:"Start with this search text." short:"q"`
	Debounce     *time.Duration   `help:"Quiet period before a search is sent." env:"NIMBUS_DEBOUNCE"`
	LogFile      string           `help:"Write logs to this file." type:"path" env:"NIMBUS_LOG_FILE"`
	Debug        bool             `help:"Enable debug logging." env:"NIMBUS_DEBUG"`
	MetricsAddr  string           `help:"Serve prometheus metrics on this address." env:"NIMBUS_METRICS_ADDR"`
	GeocodingURL string           `help:"Geocoding search endpoint." env:"NIMBUS_GEOCODING_URL"`
	ForecastURL  string           `help:"Forecast endpoint." env:"NIMBUS_FORECAST_URL"`
	Version      kong.VersionFlag `help:"Print version and exit."`
}

// apply copies the flags that were set onto cfg
func (c *CLI) apply(cfg *config.Config) {
	if c.Debounce != nil {
		cfg.Search.Debounce = config.Duration(*c.Debounce)
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}
	if c.Debug {
		cfg.Log.Debug = true
	}
	if c.MetricsAddr != "" {
		cfg.Metrics.Addr = c.MetricsAddr
	}
	if c.GeocodingURL != "" {
		cfg.API.GeocodingURL = c.GeocodingURL
	}
	if c.ForecastURL != "" {
		cfg.API.ForecastURL = c.ForecastURL
	}
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	var cli CLI
	kong.Parse(&cli,
		kong.Name("nimbus"),
		kong.Description("Search for a place and read its weather forecast."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	// Load configuration
	configSvc := config.NewConfigService()
	if cli.Config != "" {
		configSvc = config.NewConfigServiceAt(cli.Config)
	}
	cfg, cfgErr := configSvc.Load()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cli.apply(cfg)

	logPath := cfg.Log.File
	if logPath == "" {
		logPath = logging.DefaultPath()
	}
	log, err := logging.New(logPath, cfg.Log.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nimbus: %v\n", err)
		log = zap.NewNop().Sugar()
	}
	defer func() { _ = log.Sync() }()

	if cfgErr != nil {
		log.Warnw("config not loaded, using defaults", "path", configSvc.Path(), "error", cfgErr)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "nimbus: %v\n", err)
		os.Exit(2)
	}
	log.Infow("starting", "version", version, "config", configSvc.Path())

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.Metrics.Addr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.Metrics.Addr); err != nil {
				log.Errorw("metrics server stopped", "addr", cfg.Metrics.Addr, "error", err)
			}
		}()
	}

	bus := eventbus.New(log.Named("bus"))

	openmeteo.Version = version
	client := openmeteo.NewClient(cfg, nil)

	searchCtl := search.NewController(client,
		search.WithDelay(cfg.Search.Debounce.Std()),
		search.WithBus(bus),
		search.WithLogger(log.Named("search")),
	)

	uiModel := ui.NewModel(ui.Options{
		Config: cfg,
		Search: searchCtl,
		NewViewer: func(loc domain.SelectedLocation) ui.ForecastViewer {
			return forecast.NewViewer(client, loc, bus, log.Named("forecast"))
		},
		Logger:       log,
		InitialQuery: cli.Query,
	})

	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward domain events to the UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Warnw("event channel full, dropping event", "type", e.Type())
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventCandidatesUpdated,
		eventbus.EventSearchFailed,
		eventbus.EventForecastUpdated,
		eventbus.EventForecastFailed,
		eventbus.EventRefreshStateChanged,
	} {
		bus.Subscribe(t, forward)
	}

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	// Run the UI
	_, runErr := p.Run()

	// Cleanup; the bus stops before eventChan closes so no handler sends on it
	uiModel.Close()
	searchCtl.Close()
	bus.Close()
	close(eventChan)
	cancel()

	if runErr != nil {
		log.Errorw("program failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", runErr)
		os.Exit(1)
	}
	log.Infow("exiting")
}
