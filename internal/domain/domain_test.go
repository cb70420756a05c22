package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateStateFromDemoBands(t *testing.T) {
	state := EstimateState(DemoBands())

	assert.InDelta(t, 70.3, state.Stress, 1e-9)
	assert.InDelta(t, 34.8, state.Focus, 1e-9)
	assert.InDelta(t, 6.7, state.Fatigue, 1e-9)
	assert.InDelta(t, 38.5, state.Load, 1e-9)
}

func TestEstimateEnergy(t *testing.T) {
	tests := []struct {
		load float64
		want EnergyEstimate
	}{
		{load: 0, want: EnergyEstimate{Metabolic: 0, BiophotonProxy: 0, PulseEstimate: 40}},
		{load: 38.5, want: EnergyEstimate{Metabolic: 46.2, BiophotonProxy: 11.55, PulseEstimate: 78.5}},
		{load: 60, want: EnergyEstimate{Metabolic: 72, BiophotonProxy: 18, PulseEstimate: 100}},
		{load: 80.01, want: EnergyEstimate{Metabolic: 96.01, BiophotonProxy: 24, PulseEstimate: 120.01}},
		{load: 100, want: EnergyEstimate{Metabolic: 120, BiophotonProxy: 30, PulseEstimate: 140}},
	}

	for _, tt := range tests {
		got := EstimateEnergy(tt.load)
		assert.InDelta(t, tt.want.Metabolic, got.Metabolic, 1e-9, "metabolic at %v", tt.load)
		assert.InDelta(t, tt.want.BiophotonProxy, got.BiophotonProxy, 1e-9, "biophoton at %v", tt.load)
		assert.InDelta(t, tt.want.PulseEstimate, got.PulseEstimate, 1e-9, "pulse at %v", tt.load)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 70.30000000000001, want: 70.3},
		{in: 0.125, want: 0.12},
		{in: 0.375, want: 0.38},
		{in: 2.675, want: 2.67},
		{in: -0.125, want: -0.12},
		{in: 11.549999999999999, want: 11.55},
		{in: 100, want: 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(tt.in), "Round2(%v)", tt.in)
	}

	assert.False(t, math.Signbit(Round2(-0.001)), "negative zero leaks out")
}

func TestAdviseBoundaries(t *testing.T) {
	tests := []struct {
		name string
		load float64
		want AdvisoryTier
	}{
		{name: "zero", load: 0, want: AdvisoryOptimal},
		{name: "exactly sixty stays optimal", load: 60, want: AdvisoryOptimal},
		{name: "just above sixty", load: 60.01, want: AdvisoryWarning},
		{name: "exactly eighty stays warning", load: 80, want: AdvisoryWarning},
		{name: "just above eighty", load: 80.01, want: AdvisoryCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advisory := Advise(tt.load)
			assert.Equal(t, tt.want, advisory.Tier)
			assert.Equal(t, tt.want.Message(), advisory.Message)
		})
	}
}

func TestSuggestActionsFollowTier(t *testing.T) {
	assert.Equal(t, []Action{ActionMonitor}, SuggestActions(38.5))
	assert.Equal(t, []Action{ActionSuggestBreathing, ActionReduceTaskLoad}, SuggestActions(70))
	assert.Equal(t, []Action{ActionAutoAlert, ActionSuggestRest, ActionLockHighStress}, SuggestActions(95))
}

func TestCheckFirewall(t *testing.T) {
	tests := []struct {
		name  string
		bands BandPowers
		want  []Flag
	}{
		{name: "demo bands are clean", bands: DemoBands(), want: []Flag{}},
		{name: "negative power", bands: BandPowers{Alpha: -0.1, Beta: 1}, want: []Flag{FlagNegativePower}},
		{name: "spike", bands: BandPowers{Gamma: 1_000_001}, want: []Flag{FlagSpike}},
		{name: "exactly at threshold is not a spike", bands: BandPowers{Gamma: 1_000_000}, want: []Flag{}},
		{name: "both", bands: BandPowers{Delta: -5, Beta: 2e6}, want: []Flag{FlagNegativePower, FlagSpike}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckFirewall(tt.bands))
		})
	}
}

func TestBandPowersFromMap(t *testing.T) {
	bands, err := BandPowersFromMap(map[string]float64{
		"alpha": 11.6, "beta": 23.2, "gamma": 47.1, "theta": 5.2, "delta": 1.5,
	})
	require.NoError(t, err)
	assert.Equal(t, DemoBands(), bands)
	assert.Equal(t, []float64{1.5, 5.2, 11.6, 23.2, 47.1}, bands.Values())
	assert.Equal(t, 11.6, bands.Map()["alpha"])

	_, err = BandPowersFromMap(map[string]float64{"alpha": 1, "beta": 2, "gamma": 3, "theta": 4})
	require.ErrorIs(t, err, ErrIncompleteBands)
	assert.ErrorContains(t, err, "missing delta")
}

func TestDeltaIsZeroAgainstItself(t *testing.T) {
	state := EstimateState(DemoBands())
	tracker := NewBaselineTracker(state)

	assert.True(t, tracker.Delta(state).IsZero())
}

func TestBaselineTrackerDeltaAndSet(t *testing.T) {
	tracker := NewBaselineTracker(DefaultBaseline())
	current := EstimateState(DemoBands())

	delta := tracker.Delta(current)
	assert.InDelta(t, 30.3, delta.Stress, 1e-9)
	assert.InDelta(t, -5.2, delta.Focus, 1e-9)
	assert.InDelta(t, -13.3, delta.Fatigue, 1e-9)
	assert.InDelta(t, 8.5, delta.Load, 1e-9)

	tracker.Set(current)
	assert.Equal(t, current, tracker.Baseline())
	assert.True(t, tracker.Delta(current).IsZero())
}

func TestSimulate(t *testing.T) {
	scenario := Simulate(60, 40)

	assert.Equal(t, 50.0, scenario.Load)
	assert.Equal(t, EstimateEnergy(50), scenario.Energy)
	assert.Equal(t, AdvisoryOptimal, scenario.Advisory.Tier)
	assert.Equal(t, AdvisoryCritical, Simulate(100, 90).Advisory.Tier)
}

func TestDecodeIntensity(t *testing.T) {
	assert.Equal(t, 0, DecodeIntensity(""))
	assert.Equal(t, 10, DecodeIntensity("calm."))
	assert.Equal(t, 4, DecodeIntensity("éa"))
	assert.Equal(t, 100, DecodeIntensity("an overwhelming flood of thoughts before launch"))
}

func TestLoadStatus(t *testing.T) {
	assert.Equal(t, LoadStatusOK, LoadStatus(60))
	assert.Equal(t, LoadStatusHigh, LoadStatus(60.5))
}

func TestSampleBufferValidate(t *testing.T) {
	ok := SampleBuffer{Rate: 250, Samples: [][]float64{{1, 2}, {3, 4}}}
	require.NoError(t, ok.Validate())
	assert.Equal(t, 2, ok.Len())
	assert.Equal(t, 2, ok.Channels())
	assert.Equal(t, []float64{2, 4}, ok.Column(1))

	require.NoError(t, SampleBuffer{Rate: 250}.Validate())

	ragged := SampleBuffer{Rate: 250, Samples: [][]float64{{1, 2}, {3}}}
	assert.ErrorIs(t, ragged.Validate(), ErrInvalidSampleBuffer)

	noRate := SampleBuffer{Samples: [][]float64{{1}}}
	assert.ErrorIs(t, noRate.Validate(), ErrInvalidSampleBuffer)
}
