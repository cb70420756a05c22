package application

import (
	"time"

	"github.com/luminabrain/lb/internal/domain"
)

// Reading is everything one processing cycle produces.
type Reading struct {
	SessionID string                `json:"session_id"`
	At        time.Time             `json:"at"`
	Source    domain.BandSource     `json:"source"`
	Bands     domain.BandPowers     `json:"bands"`
	State     domain.BrainState     `json:"state"`
	Energy    domain.EnergyEstimate `json:"energy"`
	Advisory  domain.Advisory       `json:"advisory"`
	Actions   []domain.Action       `json:"actions"`
	Risk      float64               `json:"risk"`
	Flags     []domain.Flag         `json:"flags"`
	Baseline  domain.BrainState     `json:"baseline"`
	Delta     domain.StateDelta     `json:"delta"`
	History   []float64             `json:"history"`
}
