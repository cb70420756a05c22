package ports

import (
	"context"

	"github.com/luminabrain/lb/internal/domain"
)

// SampleSource is a live multi-channel sample stream. An empty buffer means no
// samples arrived in time.
type SampleSource interface {
	Acquire(ctx context.Context, window int) (domain.SampleBuffer, error)
	Close() error
}

// PullProgresser is implemented by sample sources that can report how far an
// Acquire call has got.
type PullProgresser interface {
	Pulled() int
}

type BandExtractor interface {
	Extract(buf domain.SampleBuffer) (domain.BandPowers, error)
}
