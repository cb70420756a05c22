// Package config loads lb settings from ~/.luminabrain/config.toml and LB_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	KeySampleRate       = "acquisition.sample_rate"
	KeyStreamURL        = "acquisition.stream_url"
	KeyStreamType       = "acquisition.stream_type"
	KeyDiscoveryTimeout = "acquisition.discovery_timeout"
	KeySampleTimeout    = "acquisition.sample_timeout"
	KeyHistoryCapacity  = "session.history_capacity"
	KeyRecoveryCapacity = "session.recovery_capacity"
	KeyRefreshInterval  = "ui.refresh_interval"
	KeyBaselinePath     = "baseline.path"
	KeyLogLevel         = "log.level"

	configName = "config"
	configType = "toml"
	configDir  = ".luminabrain"
	envPrefix  = "LB"

	// minSampleRate keeps the 45 Hz upper cut-off below Nyquist.
	minSampleRate      = 90
	minRefreshInterval = 1
	maxRefreshInterval = 5
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Acquisition  Acquisition
	Session      Session
	UI           UI
	BaselinePath string
	LogLevel     slog.Level
}

type Acquisition struct {
	SampleRate       float64
	StreamURL        string
	StreamType       string
	DiscoveryTimeout time.Duration
	SampleTimeout    time.Duration
}

// Window is one second of samples.
func (a Acquisition) Window() int {
	return int(a.SampleRate)
}

type Session struct {
	HistoryCapacity  int
	RecoveryCapacity int
}

type UI struct {
	RefreshInterval time.Duration
}

// Dir returns the directory holding the config file and the baseline profile.
func Dir(home string) string {
	return filepath.Join(home, configDir)
}

func SetDefaults(v *viper.Viper, home string) {
	v.SetDefault(KeySampleRate, 250)
	v.SetDefault(KeyStreamURL, "")
	v.SetDefault(KeyStreamType, "EEG")
	v.SetDefault(KeyDiscoveryTimeout, 3*time.Second)
	v.SetDefault(KeySampleTimeout, time.Second)
	v.SetDefault(KeyHistoryCapacity, 30)
	v.SetDefault(KeyRecoveryCapacity, 50)
	v.SetDefault(KeyRefreshInterval, 2)
	v.SetDefault(KeyBaselinePath, filepath.Join(Dir(home), "baseline.toml"))
	v.SetDefault(KeyLogLevel, "warn")
}

// Load reads the optional config file under home, applies environment
// overrides and validates the result. A missing config file is not an error.
func Load(v *viper.Viper, home string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	SetDefaults(v, home)
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(Dir(home))
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, KeyLogLevel, err)
	}

	cfg := Config{
		Acquisition: Acquisition{
			SampleRate:       v.GetFloat64(KeySampleRate),
			StreamURL:        strings.TrimSpace(v.GetString(KeyStreamURL)),
			StreamType:       v.GetString(KeyStreamType),
			DiscoveryTimeout: v.GetDuration(KeyDiscoveryTimeout),
			SampleTimeout:    v.GetDuration(KeySampleTimeout),
		},
		Session: Session{
			HistoryCapacity:  v.GetInt(KeyHistoryCapacity),
			RecoveryCapacity: v.GetInt(KeyRecoveryCapacity),
		},
		UI: UI{
			RefreshInterval: time.Duration(v.GetInt(KeyRefreshInterval)) * time.Second,
		},
		BaselinePath: v.GetString(KeyBaselinePath),
		LogLevel:     level,
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	if c.Acquisition.SampleRate <= minSampleRate {
		errs = append(errs, fmt.Errorf("%s must be above %d Hz, got %g", KeySampleRate, minSampleRate, c.Acquisition.SampleRate))
	}
	if c.Acquisition.StreamType == "" {
		errs = append(errs, fmt.Errorf("%s must not be empty", KeyStreamType))
	}
	if c.Acquisition.DiscoveryTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %s", KeyDiscoveryTimeout, c.Acquisition.DiscoveryTimeout))
	}
	if c.Acquisition.SampleTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %s", KeySampleTimeout, c.Acquisition.SampleTimeout))
	}
	if c.Session.HistoryCapacity < 1 {
		errs = append(errs, fmt.Errorf("%s must be at least 1, got %d", KeyHistoryCapacity, c.Session.HistoryCapacity))
	}
	if c.Session.RecoveryCapacity < 1 {
		errs = append(errs, fmt.Errorf("%s must be at least 1, got %d", KeyRecoveryCapacity, c.Session.RecoveryCapacity))
	}
	seconds := int(c.UI.RefreshInterval / time.Second)
	if seconds < minRefreshInterval || seconds > maxRefreshInterval {
		errs = append(errs, fmt.Errorf("%s must be between %d and %d seconds, got %d", KeyRefreshInterval, minRefreshInterval, maxRefreshInterval, seconds))
	}
	if c.BaselinePath == "" {
		errs = append(errs, fmt.Errorf("%s must not be empty", KeyBaselinePath))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}
