package application

import (
	"fmt"

	"github.com/luminabrain/lb/internal/domain"
	"github.com/luminabrain/lb/internal/ports"
)

// Generator draws the synthetic values used when no live source is available
// and for the demo team and battlefield tables. Every call draws fresh values.
type Generator struct {
	random ports.RandomSource
}

func NewGenerator(random ports.RandomSource) *Generator {
	return &Generator{random: random}
}

// SyntheticBands draws each band uniformly from its synthetic range, in
// canonical band order.
func (g *Generator) SyntheticBands() domain.BandPowers {
	var values [5]float64
	for i, band := range domain.Bands {
		values[i] = g.uniform(band.SyntheticRange())
	}
	return domain.NewBandPowers(values)
}

func (g *Generator) TeamSnapshot() []domain.OperatorLoad {
	rows := make([]domain.OperatorLoad, 0, domain.TeamSize)
	for i := 1; i <= domain.TeamSize; i++ {
		load := g.uniform(domain.OperatorLoadRange)
		rows = append(rows, domain.OperatorLoad{
			Operator: fmt.Sprintf("OP-%d", i),
			Load:     load,
			Status:   domain.LoadStatus(load),
		})
	}
	return rows
}

func (g *Generator) BattlefieldMap() []domain.ZoneLoad {
	rows := make([]domain.ZoneLoad, 0, len(domain.BattlefieldZones))
	for _, zone := range domain.BattlefieldZones {
		load := g.uniform(domain.ZoneLoadRange)
		rows = append(rows, domain.ZoneLoad{
			Zone:    zone,
			AvgLoad: load,
			Status:  domain.LoadStatus(load),
		})
	}
	return rows
}

// uniform rounds to 2 decimals, which can land exactly on r.High.
func (g *Generator) uniform(r domain.Range) float64 {
	v := r.Low + g.random.Float64()*(r.High-r.Low)
	return domain.Round2(v)
}
