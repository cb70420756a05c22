package ports

import (
	"context"

	"github.com/luminabrain/lb/internal/domain"
)

type BaselineRepository interface {
	Get(ctx context.Context) (domain.Baseline, error)
	Save(ctx context.Context, baseline domain.Baseline) error
	Delete(ctx context.Context) error
}
