// Package spectral turns raw multi-channel samples into EEG band powers.
package spectral

import (
	"fmt"

	"github.com/luminabrain/lb/internal/domain"
	"github.com/luminabrain/lb/internal/ports"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

const (
	DefaultLowCut  = 1.0
	DefaultHighCut = 45.0
	DefaultOrder   = 4
)

type Extractor struct {
	rate   float64
	filter *Bandpass
}

var _ ports.BandExtractor = (*Extractor)(nil)

func NewExtractor(rate float64) (*Extractor, error) {
	filter, err := NewBandpass(DefaultLowCut, DefaultHighCut, rate, DefaultOrder)
	if err != nil {
		return nil, fmt.Errorf("design band-pass filter: %w", err)
	}

	return &Extractor{rate: rate, filter: filter}, nil
}

// Extract band-pass filters each channel, integrates its Welch PSD over every
// band window and averages the result across channels. Buffers with fewer
// than two samples yield zero powers.
func (e *Extractor) Extract(buf domain.SampleBuffer) (domain.BandPowers, error) {
	if err := buf.Validate(); err != nil {
		return domain.BandPowers{}, err
	}
	if buf.Rate != e.rate {
		return domain.BandPowers{}, fmt.Errorf("%w: buffer rate %g Hz, extractor rate %g Hz", domain.ErrInvalidSampleBuffer, buf.Rate, e.rate)
	}
	if buf.Len() < 2 {
		return domain.BandPowers{}, nil
	}

	segment := min(int(2*e.rate), buf.Len())
	perBand := make([][]float64, len(domain.Bands))
	for ch := 0; ch < buf.Channels(); ch++ {
		clean := e.filter.Apply(buf.Column(ch))
		freqs, psd := Welch(clean, e.rate, segment)
		for i, band := range domain.Bands {
			perBand[i] = append(perBand[i], bandPower(freqs, psd, band.FrequencyWindow()))
		}
	}

	var values [5]float64
	for i := range domain.Bands {
		values[i] = stat.Mean(perBand[i], nil)
	}

	return domain.NewBandPowers(values), nil
}

func bandPower(freqs, psd []float64, window domain.Range) float64 {
	var x, y []float64
	for i, f := range freqs {
		if window.Contains(f) {
			x = append(x, f)
			y = append(y, psd[i])
		}
	}
	if len(x) < 2 {
		return 0
	}

	return integrate.Trapezoidal(x, y)
}
