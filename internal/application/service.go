package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/luminabrain/lb/internal/domain"
	"github.com/luminabrain/lb/internal/ports"
)

var ErrBaselineStoreUnavailable = errors.New("baseline store not configured")

const defaultWindow = 250

type Settings struct {
	// Window is the number of samples pulled from the live source per cycle.
	Window           int
	HistoryCapacity  int
	RecoveryCapacity int
	// FixedBands, when set, replaces every other band source.
	FixedBands *domain.BandPowers
	// LiveSourceName describes the live source for progress output.
	LiveSourceName string
}

// Deps lists the service collaborators. Samples, Extractor and Baselines are
// optional.
type Deps struct {
	Samples   ports.SampleSource
	Extractor ports.BandExtractor
	Random    ports.RandomSource
	Baselines ports.BaselineRepository
	Clock     ports.Clock
	Logger    *slog.Logger
}

type Service struct {
	samples   ports.SampleSource
	extractor ports.BandExtractor
	generator *Generator
	baselines ports.BaselineRepository
	clock     ports.Clock
	logger    *slog.Logger
	settings  Settings
}

func NewService(deps Deps, settings Settings) *Service {
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	if settings.Window <= 0 {
		settings.Window = defaultWindow
	}
	if settings.HistoryCapacity < 1 {
		settings.HistoryCapacity = domain.DefaultHistoryCapacity
	}
	if settings.RecoveryCapacity < 1 {
		settings.RecoveryCapacity = domain.DefaultRecoveryCapacity
	}

	return &Service{
		samples:   deps.Samples,
		extractor: deps.Extractor,
		generator: NewGenerator(deps.Random),
		baselines: deps.Baselines,
		clock:     deps.Clock,
		logger:    deps.Logger,
		settings:  settings,
	}
}

func (s *Service) Generator() *Generator {
	return s.generator
}

// HasLiveSource reports whether cycles try the live sample source first.
func (s *Service) HasLiveSource() bool {
	return s.settings.FixedBands == nil && s.samples != nil && s.extractor != nil
}

func (s *Service) LiveSourceName() string {
	if s.settings.LiveSourceName == "" {
		return "live stream"
	}
	return s.settings.LiveSourceName
}

// AcquireProgress reports how many samples of the current window the live
// source has collected. ok is false without a live source that tracks it.
func (s *Service) AcquireProgress() (collected, window int, ok bool) {
	if !s.HasLiveSource() {
		return 0, 0, false
	}

	progresser, ok := s.samples.(ports.PullProgresser)
	if !ok {
		return 0, 0, false
	}

	return min(progresser.Pulled(), s.settings.Window), s.settings.Window, true
}

// NewSession starts a session from the persisted baseline profile, or from
// the default baseline when none is stored.
func (s *Service) NewSession(ctx context.Context) (*Session, error) {
	baseline, _, err := s.Baseline(ctx)
	if err != nil {
		return nil, err
	}

	session := newSession(baseline.State, s.settings)
	s.logger.Debug("session started", "session", session.ID(), "baseline_load", baseline.State.Load)

	return session, nil
}

// ReadBands picks the band powers for one cycle. Fixed bands win, then the
// live source, then the synthetic generator. A live pull that returns no
// samples yields zeroed bands; a failing source or extraction falls back to
// synthetic bands.
func (s *Service) ReadBands(ctx context.Context) (domain.BandPowers, domain.BandSource) {
	if s.settings.FixedBands != nil {
		return *s.settings.FixedBands, domain.BandSourceDemo
	}

	if s.HasLiveSource() {
		buf, err := s.samples.Acquire(ctx, s.settings.Window)
		switch {
		case err != nil:
			s.logger.Warn("live source unavailable, using synthetic bands", "error", err)
		case buf.Len() == 0:
			return domain.BandPowers{}, domain.BandSourceEmpty
		default:
			bands, err := s.extractor.Extract(buf)
			if err == nil {
				return bands, domain.BandSourceStream
			}
			s.logger.Warn("band extraction failed, using synthetic bands", "error", err, "samples", buf.Len())
		}
	}

	return s.generator.SyntheticBands(), domain.BandSourceSynthetic
}

func (s *Service) Cycle(ctx context.Context, session *Session) Reading {
	bands, source := s.ReadBands(ctx)
	return s.Observe(session, bands, source)
}

// Observe runs a cycle over bands obtained elsewhere.
func (s *Service) Observe(session *Session, bands domain.BandPowers, source domain.BandSource) Reading {
	reading := session.Observe(bands, source, s.clock.Now())

	s.logger.Debug("cycle",
		"session", session.ID(),
		"source", source,
		"load", reading.State.Load,
		"tier", reading.Advisory.Tier,
		"risk", reading.Risk,
	)
	if len(reading.Flags) > 0 {
		s.logger.Warn("firewall flagged band powers", "session", session.ID(), "flags", reading.Flags)
	}

	return reading
}

// Analyze runs the kernel once over caller-supplied band powers in a fresh
// session.
func (s *Service) Analyze(ctx context.Context, bands domain.BandPowers) (Reading, error) {
	session, err := s.NewSession(ctx)
	if err != nil {
		return Reading{}, err
	}

	return s.Observe(session, bands, domain.BandSourceInput), nil
}

// Baseline returns the persisted profile and true, or the default baseline
// and false when nothing is stored.
func (s *Service) Baseline(ctx context.Context) (domain.Baseline, bool, error) {
	if s.baselines == nil {
		return domain.Baseline{State: domain.DefaultBaseline()}, false, nil
	}

	baseline, err := s.baselines.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrBaselineNotFound) {
			return domain.Baseline{State: domain.DefaultBaseline()}, false, nil
		}
		return domain.Baseline{}, false, fmt.Errorf("load baseline: %w", err)
	}

	return baseline, true, nil
}

// SaveBaseline persists state as the personal baseline and applies it to
// session when one is given.
func (s *Service) SaveBaseline(ctx context.Context, session *Session, state domain.BrainState) (domain.Baseline, error) {
	if s.baselines == nil {
		return domain.Baseline{}, ErrBaselineStoreUnavailable
	}

	baseline := domain.Baseline{State: state, CapturedAt: s.clock.Now()}
	if err := s.baselines.Save(ctx, baseline); err != nil {
		return domain.Baseline{}, fmt.Errorf("save baseline: %w", err)
	}

	attrs := []any{"load", state.Load}
	if session != nil {
		session.SetBaseline(state)
		attrs = append(attrs, "session", session.ID())
	}
	s.logger.Info("baseline captured", attrs...)

	return baseline, nil
}

func (s *Service) ResetBaseline(ctx context.Context) error {
	if s.baselines == nil {
		return ErrBaselineStoreUnavailable
	}

	if err := s.baselines.Delete(ctx); err != nil {
		return fmt.Errorf("delete baseline: %w", err)
	}
	s.logger.Info("baseline reset to default")

	return nil
}

// Close releases the live source, if any.
func (s *Service) Close() error {
	if s.samples == nil {
		return nil
	}

	if err := s.samples.Close(); err != nil {
		return fmt.Errorf("close sample source: %w", err)
	}

	return nil
}
