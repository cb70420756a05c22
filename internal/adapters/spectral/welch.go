package spectral

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Welch estimates the one-sided power spectral density of x with a periodic
// Hann window, 50% overlap, per-segment mean removal and density scaling.
// Segment length is clamped to len(x). It returns nil slices when x is too
// short to window.
func Welch(x []float64, rate float64, segment int) (freqs, psd []float64) {
	segment = min(segment, len(x))
	if segment < 2 || rate <= 0 {
		return nil, nil
	}

	window := hann(segment)
	scale := 1 / (rate * floats.Dot(window, window))
	step := segment - segment/2

	fft := fourier.NewFFT(segment)
	bins := segment/2 + 1
	psd = make([]float64, bins)
	buf := make([]float64, segment)
	var coeffs []complex128

	count := 0
	for start := 0; start+segment <= len(x); start += step {
		seg := x[start : start+segment]
		mean := stat.Mean(seg, nil)
		for i, v := range seg {
			buf[i] = (v - mean) * window[i]
		}

		coeffs = fft.Coefficients(coeffs, buf)
		for k, c := range coeffs {
			psd[k] += (real(c)*real(c) + imag(c)*imag(c)) * scale
		}
		count++
	}

	last := bins - 1
	if segment%2 != 0 {
		last = bins
	}
	for k := range psd {
		psd[k] /= float64(count)
		if k > 0 && k < last {
			psd[k] *= 2
		}
	}

	freqs = make([]float64, bins)
	for k := range freqs {
		freqs[k] = float64(k) * rate / float64(segment)
	}

	return freqs, psd
}

func hann(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n))
	}
	return w
}
