package domain

import "gonum.org/v1/gonum/stat"

const (
	DefaultHistoryCapacity = 30
	// MinTrendSamples is the history length below which TrendRisk reports no risk.
	MinTrendSamples = 5
)

// LoadHistory keeps the most recent load values, evicting the oldest first.
type LoadHistory struct {
	capacity int
	values   []float64
}

func NewLoadHistory(capacity int) *LoadHistory {
	if capacity < 1 {
		capacity = DefaultHistoryCapacity
	}

	return &LoadHistory{
		capacity: capacity,
		values:   make([]float64, 0, capacity),
	}
}

func (h *LoadHistory) Push(load float64) {
	if len(h.values) == h.capacity {
		copy(h.values, h.values[1:])
		h.values = h.values[:h.capacity-1]
	}
	h.values = append(h.values, load)
}

func (h *LoadHistory) Len() int {
	return len(h.values)
}

func (h *LoadHistory) Capacity() int {
	return h.capacity
}

// Values returns a copy, oldest first.
func (h *LoadHistory) Values() []float64 {
	out := make([]float64, len(h.values))
	copy(out, h.values)
	return out
}

func (h *LoadHistory) Risk() float64 {
	return TrendRisk(h.values)
}

// TrendRisk scores 0-100 from the current load level and the positive part of
// the least-squares slope over the series. It is a heuristic, not a forecast.
func TrendRisk(loads []float64) float64 {
	if len(loads) < MinTrendSamples {
		return 0
	}

	x := make([]float64, len(loads))
	for i := range x {
		x[i] = float64(i)
	}
	_, slope := stat.LinearRegression(x, loads, nil, false)

	last := loads[len(loads)-1]
	risk := clamp((last/100)*0.6+max(slope, 0)*0.4, 0, 1)

	return Round2(risk * 100)
}
