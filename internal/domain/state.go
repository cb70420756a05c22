package domain

import (
	"math"
	"strconv"
)

type BrainState struct {
	Stress  float64 `json:"stress"`
	Focus   float64 `json:"focus"`
	Fatigue float64 `json:"fatigue"`
	Load    float64 `json:"load"`
}

// EstimateState maps band powers to the four derived scalars. Load is the
// mean of the unrounded stress and fatigue.
func EstimateState(b BandPowers) BrainState {
	stress := b.Beta + b.Gamma
	focus := b.Alpha + b.Beta
	fatigue := b.Theta + b.Delta
	load := (stress + fatigue) / 2

	return BrainState{
		Stress:  Round2(stress),
		Focus:   Round2(focus),
		Fatigue: Round2(fatigue),
		Load:    Round2(load),
	}
}

type EnergyEstimate struct {
	Metabolic      float64 `json:"metabolic"`
	BiophotonProxy float64 `json:"biophoton_proxy"`
	PulseEstimate  float64 `json:"pulse_estimate"`
}

func EstimateEnergy(load float64) EnergyEstimate {
	return EnergyEstimate{
		Metabolic:      Round2(load * 1.2),
		BiophotonProxy: Round2(load * 0.3),
		PulseEstimate:  Round2(40 + load),
	}
}

// Round2 rounds the exact binary value of v to 2 decimals, ties to even, so
// 0.125 becomes 0.12. Negative zero comes back as zero.
func Round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil || r == 0 {
		return 0
	}
	return r
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
