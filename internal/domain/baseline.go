package domain

import "time"

func DefaultBaseline() BrainState {
	return BrainState{Stress: 40, Focus: 40, Fatigue: 20, Load: 30}
}

// Baseline is a persisted personal reference state.
type Baseline struct {
	State      BrainState
	CapturedAt time.Time
}

// StateDelta is current minus baseline, per field.
type StateDelta BrainState

func Delta(current, baseline BrainState) StateDelta {
	return StateDelta{
		Stress:  Round2(current.Stress - baseline.Stress),
		Focus:   Round2(current.Focus - baseline.Focus),
		Fatigue: Round2(current.Fatigue - baseline.Fatigue),
		Load:    Round2(current.Load - baseline.Load),
	}
}

func (d StateDelta) IsZero() bool {
	return d == StateDelta{}
}

// BaselineTracker holds the snapshot deltas are measured against. It changes
// only through Set.
type BaselineTracker struct {
	baseline BrainState
}

func NewBaselineTracker(initial BrainState) *BaselineTracker {
	return &BaselineTracker{baseline: initial}
}

func (t *BaselineTracker) Baseline() BrainState {
	return t.baseline
}

func (t *BaselineTracker) Set(current BrainState) {
	t.baseline = current
}

func (t *BaselineTracker) Delta(current BrainState) StateDelta {
	return Delta(current, t.baseline)
}
