package application

import (
	"time"

	"github.com/google/uuid"
	"github.com/luminabrain/lb/internal/domain"
)

// Session holds the per-user state of a run: load history, baseline and
// recovery log. It must be driven by one goroutine at a time.
type Session struct {
	id       string
	history  *domain.LoadHistory
	baseline *domain.BaselineTracker
	recovery *domain.RecoveryLog
}

func newSession(initial domain.BrainState, settings Settings) *Session {
	return &Session{
		id:       uuid.NewString(),
		history:  domain.NewLoadHistory(settings.HistoryCapacity),
		baseline: domain.NewBaselineTracker(initial),
		recovery: domain.NewRecoveryLog(settings.RecoveryCapacity),
	}
}

func (s *Session) ID() string {
	return s.id
}

// Observe runs one cycle over bands. It appends the load to the history and
// the recovery log; nothing else in the session changes.
func (s *Session) Observe(bands domain.BandPowers, source domain.BandSource, at time.Time) Reading {
	state := domain.EstimateState(bands)

	s.history.Push(state.Load)
	s.recovery.Append(at, state.Load)

	return Reading{
		SessionID: s.id,
		At:        at,
		Source:    source,
		Bands:     bands,
		State:     state,
		Energy:    domain.EstimateEnergy(state.Load),
		Advisory:  domain.Advise(state.Load),
		Actions:   domain.SuggestActions(state.Load),
		Risk:      s.history.Risk(),
		Flags:     domain.CheckFirewall(bands),
		Baseline:  s.baseline.Baseline(),
		Delta:     s.baseline.Delta(state),
		History:   s.history.Values(),
	}
}

func (s *Session) Baseline() domain.BrainState {
	return s.baseline.Baseline()
}

// SetBaseline replaces the in-session snapshot. Persisting it is the
// service's job.
func (s *Session) SetBaseline(state domain.BrainState) {
	s.baseline.Set(state)
}

func (s *Session) Recovery() []domain.RecoveryEntry {
	return s.recovery.Entries()
}

func (s *Session) History() []float64 {
	return s.history.Values()
}
