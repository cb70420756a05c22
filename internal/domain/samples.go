package domain

import "fmt"

// SampleBuffer is a window of raw multi-channel samples: rows are time
// samples, columns are channels.
type SampleBuffer struct {
	Rate    float64
	Samples [][]float64
}

func (b SampleBuffer) Len() int {
	return len(b.Samples)
}

func (b SampleBuffer) Channels() int {
	if len(b.Samples) == 0 {
		return 0
	}
	return len(b.Samples[0])
}

func (b SampleBuffer) Validate() error {
	if b.Rate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %g", ErrInvalidSampleBuffer, b.Rate)
	}

	channels := b.Channels()
	for i, row := range b.Samples {
		if len(row) != channels {
			return fmt.Errorf("%w: row %d has %d channels, want %d", ErrInvalidSampleBuffer, i, len(row), channels)
		}
	}
	if len(b.Samples) > 0 && channels == 0 {
		return fmt.Errorf("%w: samples have no channels", ErrInvalidSampleBuffer)
	}

	return nil
}

// Column copies one channel out of the buffer.
func (b SampleBuffer) Column(channel int) []float64 {
	out := make([]float64, len(b.Samples))
	for i, row := range b.Samples {
		out[i] = row[channel]
	}
	return out
}
