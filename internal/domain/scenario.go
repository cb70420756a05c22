package domain

import "unicode/utf8"

// Scenario is the outcome of a what-if simulation.
type Scenario struct {
	Load     float64        `json:"load"`
	Energy   EnergyEstimate `json:"energy"`
	Advisory Advisory       `json:"advisory"`
}

func Simulate(stress, fatigue float64) Scenario {
	load := Round2((stress + fatigue) / 2)
	return Scenario{
		Load:     load,
		Energy:   EstimateEnergy(load),
		Advisory: Advise(load),
	}
}

// DecodeIntensity scores free text 0-100 at two points per character.
func DecodeIntensity(text string) int {
	return min(100, max(0, utf8.RuneCountInString(text)*2))
}
