package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/luminabrain/lb/internal/adapters/acquire/stream"
	"github.com/luminabrain/lb/internal/adapters/random"
	"github.com/luminabrain/lb/internal/adapters/render/dashboard"
	tomlrepo "github.com/luminabrain/lb/internal/adapters/repo/toml"
	"github.com/luminabrain/lb/internal/adapters/spectral"
	"github.com/luminabrain/lb/internal/application"
	"github.com/luminabrain/lb/internal/config"
	"github.com/luminabrain/lb/internal/domain"
	"github.com/luminabrain/lb/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	sourceAuto      = "auto"
	sourceSynthetic = "synthetic"
	sourceDemo      = "demo"
)

type app struct {
	cfg       config.Config
	logger    *slog.Logger
	baselines ports.BaselineRepository
	random    ports.RandomSource
	clock     ports.Clock
	renderer  func(dashboard.Dashboard, dashboard.RenderOptions) (string, error)
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	v := viper.New()
	cfg, err := config.Load(v, homeDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	repo, err := tomlrepo.NewRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire baseline repository: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	return &app{
		cfg:       cfg,
		logger:    logger,
		baselines: repo,
		random:    random.New(),
		clock:     ports.SystemClock{},
		renderer:  dashboard.Render,
	}, nil
}

// newService builds a service for one command run. With the auto source and a
// configured stream URL it opens the live stream; if that fails, or the
// stream rate is too low for the band filter, the service runs on synthetic
// bands. The caller must Close the service.
func (a *app) newService(ctx context.Context, source string, logger *slog.Logger) (*application.Service, error) {
	if logger == nil {
		logger = a.logger
	}

	settings := application.Settings{
		Window:           a.cfg.Acquisition.Window(),
		HistoryCapacity:  a.cfg.Session.HistoryCapacity,
		RecoveryCapacity: a.cfg.Session.RecoveryCapacity,
	}
	deps := application.Deps{
		Random:    a.random,
		Baselines: a.baselines,
		Clock:     a.clock,
		Logger:    logger,
	}

	switch source {
	case sourceDemo:
		bands := domain.DemoBands()
		settings.FixedBands = &bands
	case sourceSynthetic:
	case sourceAuto:
		if a.cfg.Acquisition.StreamURL == "" {
			break
		}

		inlet, err := a.openStream(ctx, logger)
		if err != nil {
			logger.Warn("live stream unavailable, using synthetic bands", "url", a.cfg.Acquisition.StreamURL, "error", err)
			break
		}

		rate := inlet.Info().Rate
		extractor, err := spectral.NewExtractor(rate)
		if err != nil {
			_ = inlet.Close()
			logger.Warn("live stream rate unusable, using synthetic bands", "rate", rate, "error", err)
			break
		}

		deps.Samples = inlet
		deps.Extractor = extractor
		settings.Window = int(rate)
		settings.LiveSourceName = describeStream(inlet.Info())
	default:
		return nil, fmt.Errorf("unknown source %q (want %s, %s or %s)", source, sourceAuto, sourceSynthetic, sourceDemo)
	}

	return application.NewService(deps, settings), nil
}

func (a *app) openStream(ctx context.Context, logger *slog.Logger) (*stream.Inlet, error) {
	acq := a.cfg.Acquisition

	inlet, err := stream.Open(ctx, acq.StreamURL, stream.Options{
		StreamType:       acq.StreamType,
		DiscoveryTimeout: acq.DiscoveryTimeout,
		SampleTimeout:    acq.SampleTimeout,
	})
	if err != nil {
		return nil, err
	}

	info := inlet.Info()
	if info.Rate != acq.SampleRate {
		logger.Warn("stream rate differs from configured sample rate",
			"stream_rate", info.Rate,
			"sample_rate", acq.SampleRate,
		)
	}
	logger.Info("live stream connected", "name", info.Name, "channels", info.Channels, "rate", info.Rate)

	return inlet, nil
}

func describeStream(info stream.Info) string {
	name := info.Name
	if name == "" {
		name = info.Type
	}
	return fmt.Sprintf("%s (%d ch @ %g Hz)", name, info.Channels, info.Rate)
}

// quietLogger discards everything below debug level, for commands that own
// the terminal.
func (a *app) quietLogger() *slog.Logger {
	if a.cfg.LogLevel <= slog.LevelDebug {
		return a.logger
	}
	return slog.New(slog.DiscardHandler)
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeDashboard(cmd *cobra.Command, a *app, d dashboard.Dashboard) error {
	rendered, err := a.renderer(d, dashboard.RenderOptions{})
	if err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func addSourceFlag(cmd *cobra.Command, source *string) {
	cmd.Flags().StringVar(source, "source", sourceAuto, "Band source: auto (live stream when configured, else synthetic), synthetic or demo")
}
