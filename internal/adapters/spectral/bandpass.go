package spectral

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Bandpass is a digital Butterworth band-pass filter stored as cascaded
// second-order sections. It matches a direct-form design of the same order
// run with zero initial state.
type Bandpass struct {
	rate     float64
	gain     float64
	sections []section
}

// section is a biquad with b = [1, 0, -1] and a = [1, a1, a2].
type section struct {
	a1 float64
	a2 float64
}

// NewBandpass designs the filter by bilinear transform with pre-warped
// cut-offs. order is the prototype order and must be even.
func NewBandpass(low, high, rate float64, order int) (*Bandpass, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %g", rate)
	}
	if order <= 0 || order%2 != 0 {
		return nil, fmt.Errorf("filter order must be a positive even number, got %d", order)
	}
	if low <= 0 || high <= low || high >= rate/2 {
		return nil, fmt.Errorf("cut-offs %g-%g Hz must satisfy 0 < low < high < %g Hz", low, high, rate/2)
	}

	fs2 := 2 * rate
	wl := fs2 * math.Tan(math.Pi*low/rate)
	wh := fs2 * math.Tan(math.Pi*high/rate)
	bw := wh - wl
	w0sq := complex(wl*wh, 0)

	denominator := complex(1, 0)
	sections := make([]section, 0, order)
	for k := 1; k <= order; k++ {
		theta := math.Pi * float64(2*k+order-1) / float64(2*order)
		half := cmplx.Exp(complex(0, theta)) * complex(bw/2, 0)
		root := cmplx.Sqrt(half*half - w0sq)

		for _, p := range []complex128{half + root, half - root} {
			denominator *= complex(fs2, 0) - p

			z := (complex(fs2, 0) + p) / (complex(fs2, 0) - p)
			if imag(z) > 0 {
				sections = append(sections, section{a1: -2 * real(z), a2: real(z)*real(z) + imag(z)*imag(z)})
			}
		}
	}
	if len(sections) != order {
		return nil, fmt.Errorf("filter design produced %d sections, want %d", len(sections), order)
	}

	gain := math.Pow(bw*fs2, float64(order)) / real(denominator)

	return &Bandpass{rate: rate, gain: gain, sections: sections}, nil
}

// Apply filters x from rest and returns a new slice.
func (f *Bandpass) Apply(x []float64) []float64 {
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = v * f.gain
	}

	for _, s := range f.sections {
		var z1, z2 float64
		for i, v := range y {
			out := v + z1
			z1 = -s.a1*out + z2
			z2 = -v - s.a2*out
			y[i] = out
		}
	}

	return y
}

// Response returns the magnitude of the frequency response at freq Hz.
func (f *Bandpass) Response(freq float64) float64 {
	zinv := cmplx.Exp(complex(0, -2*math.Pi*freq/f.rate))
	h := complex(f.gain, 0)
	for _, s := range f.sections {
		num := 1 - zinv*zinv
		den := 1 + complex(s.a1, 0)*zinv + complex(s.a2, 0)*zinv*zinv
		h *= num / den
	}
	return cmplx.Abs(h)
}
