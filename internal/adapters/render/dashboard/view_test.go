package dashboard

import (
	"strings"
	"testing"
	"time"

	"github.com/luminabrain/lb/internal/application"
	"github.com/luminabrain/lb/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

func demoReading() application.Reading {
	bands := domain.DemoBands()
	state := domain.EstimateState(bands)

	return application.Reading{
		SessionID: "0b7f3c1e-8d2a-4f5b-9c6d-1e2f3a4b5c6d",
		At:        testNow,
		Source:    domain.BandSourceDemo,
		Bands:     bands,
		State:     state,
		Energy:    domain.EstimateEnergy(state.Load),
		Advisory:  domain.Advise(state.Load),
		Actions:   domain.SuggestActions(state.Load),
		Flags:     domain.CheckFirewall(bands),
		Baseline:  domain.DefaultBaseline(),
		Delta:     domain.Delta(state, domain.DefaultBaseline()),
		History:   []float64{state.Load},
	}
}

func TestRenderReading(t *testing.T) {
	reading := demoReading()

	output, err := Render(Dashboard{Reading: &reading}, RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, output, "LUMINABRAIN")
	assert.Contains(t, output, "session 0b7f3c1e | source demo | 10:00:00")
	assert.Contains(t, output, "23.20")
	assert.Contains(t, output, "70.30")
	assert.Contains(t, output, "(+30.30)")
	assert.Contains(t, output, "(-13.30)")
	assert.Contains(t, output, "46.20")
	assert.Contains(t, output, "78.50 bpm")
	assert.Contains(t, output, "OPTIMAL: Brain condition stable. Mission safe.")
	assert.Contains(t, output, "actions: MONITOR")
	assert.Contains(t, output, "0.00%")
	assert.Contains(t, output, "collecting trend (1/5)")
	assert.Contains(t, output, "clear")
	assert.NotContains(t, output, "Team")
}

func TestRenderCriticalReadingWithFlags(t *testing.T) {
	reading := demoReading()
	reading.Advisory = domain.Advise(95)
	reading.Actions = domain.SuggestActions(95)
	reading.Flags = []domain.Flag{domain.FlagNegativePower, domain.FlagSpike}
	reading.Risk = 87.5
	reading.History = []float64{10, 30, 50, 70, 90}

	output, err := Render(Dashboard{Reading: &reading}, RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, output, "CRITICAL: Cognitive overload. Immediate rest.")
	assert.Contains(t, output, "AUTO_ALERT, SUGGEST_REST, LOCK_HIGH_STRESS_MODE")
	assert.Contains(t, output, "NEG_POWER, SPIKE")
	assert.Contains(t, output, "87.50%")
	assert.Contains(t, output, sparkline(reading.History))
	assert.NotContains(t, output, "collecting trend")
}

func TestRenderTablesOnly(t *testing.T) {
	output, err := Render(Dashboard{
		Team: []domain.OperatorLoad{
			{Operator: "OP-1", Load: 72.4, Status: domain.LoadStatusHigh},
			{Operator: "OP-2", Load: 31, Status: domain.LoadStatusOK},
		},
		Zones: []domain.ZoneLoad{
			{Zone: "North", AvgLoad: 44.1, Status: domain.LoadStatusOK},
		},
	}, RenderOptions{BarWidth: 10})
	require.NoError(t, err)

	assert.Contains(t, output, "Team")
	assert.Contains(t, output, "OP-1")
	assert.Contains(t, output, "72.40")
	assert.Contains(t, output, "HIGH LOAD")
	assert.Contains(t, output, "Battlefield")
	assert.Contains(t, output, "North")
	assert.Contains(t, output, "44.10")
	assert.NotContains(t, output, "Advisory")
}

func TestRenderRecoveryAndFooter(t *testing.T) {
	reading := demoReading()

	output := Compose(Dashboard{
		Reading: &reading,
		Recovery: []domain.RecoveryEntry{
			{At: testNow.Add(-2 * time.Second), Load: 20},
			{At: testNow, Load: 38.5},
		},
	}, RenderOptions{Footer: "b set baseline | q quit"})

	assert.Contains(t, output, "Recovery")
	assert.Contains(t, output, "2 entries")
	assert.Contains(t, output, "last 10:00:00 load 38.50")
	assert.Contains(t, output, "b set baseline | q quit")
}

func TestRenderEmptyDashboard(t *testing.T) {
	output, err := Render(Dashboard{}, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, output, "No readings available.")
}

func TestRenderProgressBar(t *testing.T) {
	s := newStyles()

	tests := []struct {
		name    string
		percent float64
		want    string
	}{
		{name: "empty", percent: 0, want: "[----------]"},
		{name: "half", percent: 50, want: "[=====-----]"},
		{name: "full", percent: 100, want: "[==========]"},
		{name: "clamped above", percent: 250, want: "[==========]"},
		{name: "clamped below", percent: -5, want: "[----------]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderProgressBar(tt.percent, 10, s))
		})
	}
}

func TestSparkline(t *testing.T) {
	assert.Equal(t, "▁▄█", sparkline([]float64{0, 50, 100}))
	assert.Equal(t, "▁█", sparkline([]float64{-10, 400}))
	assert.Equal(t, 3, len([]rune(sparkline([]float64{1, 2, 3}))))
	assert.Empty(t, strings.TrimSpace(sparkline(nil)))
}
