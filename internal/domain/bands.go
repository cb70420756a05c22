package domain

import (
	"fmt"
	"math"
)

type Band string

const (
	BandDelta Band = "delta"
	BandTheta Band = "theta"
	BandAlpha Band = "alpha"
	BandBeta  Band = "beta"
	BandGamma Band = "gamma"
)

// Bands lists the canonical EEG bands from lowest to highest frequency.
var Bands = []Band{BandDelta, BandTheta, BandAlpha, BandBeta, BandGamma}

// Range is an inclusive [Low, High] interval.
type Range struct {
	Low  float64
	High float64
}

func (r Range) Contains(v float64) bool {
	return v >= r.Low && v <= r.High
}

// FrequencyWindow returns the window in Hz used when extracting the band from a
// power spectral density.
func (b Band) FrequencyWindow() Range {
	switch b {
	case BandDelta:
		return Range{Low: 0.5, High: 4}
	case BandTheta:
		return Range{Low: 4, High: 7}
	case BandAlpha:
		return Range{Low: 8, High: 12}
	case BandBeta:
		return Range{Low: 12, High: 30}
	case BandGamma:
		return Range{Low: 30, High: 80}
	default:
		return Range{}
	}
}

// SyntheticRange is the uniform range the synthetic generator draws from.
func (b Band) SyntheticRange() Range {
	switch b {
	case BandDelta:
		return Range{Low: 1, High: 4}
	case BandTheta:
		return Range{Low: 4, High: 8}
	case BandAlpha:
		return Range{Low: 8, High: 13}
	case BandBeta:
		return Range{Low: 12, High: 30}
	case BandGamma:
		return Range{Low: 30, High: 50}
	default:
		return Range{}
	}
}

type BandSource string

const (
	BandSourceStream    BandSource = "stream"
	BandSourceSynthetic BandSource = "synthetic"
	BandSourceDemo      BandSource = "demo"
	BandSourceEmpty     BandSource = "empty"
	BandSourceInput     BandSource = "input"
)

// BandPowers holds one power value per canonical band.
type BandPowers struct {
	Delta float64 `json:"delta"`
	Theta float64 `json:"theta"`
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta"`
	Gamma float64 `json:"gamma"`
}

// DemoBands is the fixed band set shown when the dashboard runs without a
// live source.
func DemoBands() BandPowers {
	return BandPowers{Alpha: 11.6, Beta: 23.2, Gamma: 47.1, Theta: 5.2, Delta: 1.5}
}

// BandPowersFromMap requires every canonical band to be present.
func BandPowersFromMap(values map[string]float64) (BandPowers, error) {
	var bands BandPowers
	for _, band := range Bands {
		value, ok := values[string(band)]
		if !ok {
			return BandPowers{}, fmt.Errorf("%w: missing %s", ErrIncompleteBands, band)
		}
		bands.set(band, value)
	}

	return bands, nil
}

func (b BandPowers) Get(band Band) float64 {
	switch band {
	case BandDelta:
		return b.Delta
	case BandTheta:
		return b.Theta
	case BandAlpha:
		return b.Alpha
	case BandBeta:
		return b.Beta
	case BandGamma:
		return b.Gamma
	default:
		return math.NaN()
	}
}

func (b *BandPowers) set(band Band, value float64) {
	switch band {
	case BandDelta:
		b.Delta = value
	case BandTheta:
		b.Theta = value
	case BandAlpha:
		b.Alpha = value
	case BandBeta:
		b.Beta = value
	case BandGamma:
		b.Gamma = value
	}
}

// Values returns the powers in canonical band order.
func (b BandPowers) Values() []float64 {
	return []float64{b.Delta, b.Theta, b.Alpha, b.Beta, b.Gamma}
}

func (b BandPowers) Map() map[string]float64 {
	out := make(map[string]float64, len(Bands))
	for _, band := range Bands {
		out[string(band)] = b.Get(band)
	}
	return out
}

// NewBandPowers builds a record from canonical-order values.
func NewBandPowers(values [5]float64) BandPowers {
	var bands BandPowers
	for i, band := range Bands {
		bands.set(band, values[i])
	}
	return bands
}
