package types_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paw-chain/launchpad/launch/types"
)

func powerState(supply, maxSupply float64) types.ReserveState {
	return types.ReserveState{
		Supply:                supply,
		VirtualBase:           maxSupply - supply,
		RealBase:              maxSupply - supply,
		GraduationTargetQuote: types.DefaultGraduationTarget,
	}
}

// TestPowerLaw_PriceClamps checks the two documented clamp points: supply
// at or below zero prices at InitialPrice, supply past max prices at the
// terminal curve value.
func TestPowerLaw_PriceClamps(t *testing.T) {
	curve := types.PowerLawCurve{InitialPrice: 1, Exponent: 1, MaxSupply: 100}

	require.Equal(t, 1.0, curve.Price(powerState(0, 100)))
	require.Equal(t, 1.0, curve.Price(types.ReserveState{Supply: -5}))
	require.InDelta(t, 0.5, curve.Price(powerState(50, 100)), 1e-12)
	require.InDelta(t, 1.0, curve.Price(powerState(100, 100)), 1e-12)
	require.InDelta(t, 1.0, curve.Price(types.ReserveState{Supply: 150}), 1e-12)
}

// TestPowerLaw_LogIntegralBranch checks the exponent==1 cost formula
// cost = p0 * m * ln((s1+m)/(s0+m)) and its closed-form inverse.
func TestPowerLaw_LogIntegralBranch(t *testing.T) {
	curve := types.PowerLawCurve{InitialPrice: 1, Exponent: 1, MaxSupply: 100}
	state := powerState(0, 100)

	// Spending the full-range cost buys out the entire curve.
	fullCost := 100 * math.Log(2)
	out, err := curve.QuoteToOutput(state, types.SideBuy, fullCost)
	require.NoError(t, err)
	require.InDelta(t, 100, out, 1e-9)

	// A partial buy inverts exactly.
	out, err = curve.QuoteToOutput(state, types.SideBuy, 10)
	require.NoError(t, err)
	cost, err := curve.OutputToQuote(state, types.SideBuy, out)
	require.NoError(t, err)
	require.InDelta(t, 10, cost, 1e-9)
}

// TestPowerLaw_BisectionInverse checks the root-found inverse against the
// analytic integral for a non-unit exponent.
func TestPowerLaw_BisectionInverse(t *testing.T) {
	curve := types.PowerLawCurve{InitialPrice: 1, Exponent: 2, MaxSupply: 100}
	state := powerState(0, 100)

	// cost(0 -> 50) = p0*m/3 * (1/2)^3
	target := 100.0 / 3 * 0.125
	out, err := curve.QuoteToOutput(state, types.SideBuy, target)
	require.NoError(t, err)
	require.InDelta(t, 50, out, 1e-6)

	cost, err := curve.OutputToQuote(state, types.SideBuy, out)
	require.NoError(t, err)
	require.InDelta(t, target, cost, 1e-9)
}

// TestPowerLaw_CurveExhausted verifies buys past the configured max supply
// are rejected rather than clamped.
func TestPowerLaw_CurveExhausted(t *testing.T) {
	curve := types.PowerLawCurve{InitialPrice: 1, Exponent: 2, MaxSupply: 100}
	state := powerState(90, 100)

	// cost(90 -> 100) = p0*m/3 * (1 - (9/10)^3)
	remaining := 100.0 / 3 * (1 - 0.729)
	_, err := curve.QuoteToOutput(state, types.SideBuy, remaining*1.01)
	require.ErrorIs(t, err, types.ErrCurveExhausted)

	_, err = curve.OutputToQuote(state, types.SideBuy, 11)
	require.ErrorIs(t, err, types.ErrCurveExhausted)
}

// TestPowerLaw_SellBounds verifies a sell can never drive supply negative.
func TestPowerLaw_SellBounds(t *testing.T) {
	curve := types.PowerLawCurve{InitialPrice: 1, Exponent: 2, MaxSupply: 100}
	state := powerState(50, 100)

	_, err := curve.QuoteToOutput(state, types.SideSell, 60)
	require.ErrorIs(t, err, types.ErrInsufficientReserve)

	out, err := curve.QuoteToOutput(state, types.SideSell, 10)
	require.NoError(t, err)
	// cost(40 -> 50) = p0*m/3 * ((1/2)^3 - (2/5)^3)
	require.InDelta(t, 100.0/3*(0.125-0.064), out, 1e-9)
}

// TestPowerLaw_SellInverse checks OutputToQuote on the sell side for both
// exponent branches.
func TestPowerLaw_SellInverse(t *testing.T) {
	for _, exponent := range []float64{1, 2} {
		curve := types.PowerLawCurve{InitialPrice: 1, Exponent: exponent, MaxSupply: 100}
		state := powerState(50, 100)

		quoteOut, err := curve.QuoteToOutput(state, types.SideSell, 10)
		require.NoError(t, err)
		baseIn, err := curve.OutputToQuote(state, types.SideSell, quoteOut)
		require.NoError(t, err)
		require.InDelta(t, 10, baseIn, 1e-6, "exponent=%g", exponent)
	}
}

// TestPowerLaw_SellOutputExceedsCurveValue verifies asking for more quote
// than the current supply is worth fails.
func TestPowerLaw_SellOutputExceedsCurveValue(t *testing.T) {
	curve := types.PowerLawCurve{InitialPrice: 1, Exponent: 2, MaxSupply: 100}
	state := powerState(50, 100)

	_, err := curve.OutputToQuote(state, types.SideSell, 1e6)
	require.ErrorIs(t, err, types.ErrInsufficientReserve)
}
