package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/launchpad/testutil/keeper"
	"github.com/paw-chain/launchpad/launch/types"
)

func feelessParams() types.Params {
	params := types.DefaultParams()
	params.TradeFee = math.LegacyZeroDec()
	return params
}

func buyReq(amount float64) types.TradeRequest {
	return types.TradeRequest{Side: types.SideBuy, Amount: amount, MaxSlippagePct: 1000}
}

func sellReq(amount float64) types.TradeRequest {
	return types.TradeRequest{Side: types.SideSell, Amount: amount, MaxSlippagePct: 1000}
}

// TestExecuteBuy_Valid executes a buy and verifies the full reserve delta
// landed in one update.
func TestExecuteBuy_Valid(t *testing.T) {
	k := keepertest.LaunchKeeperWithParams(t, feelessParams())
	ledger := keepertest.ConstantProductMarket(t, k, 10, 100)

	res, err := ledger.ExecuteBuy(buyReq(1))
	require.NoError(t, err)
	require.InDelta(t, 9.090909, res.AmountOut, 1e-5)
	require.InDelta(t, 0.121, res.NewPrice, 1e-6)
	require.False(t, res.Graduated)

	state := ledger.State()
	require.InDelta(t, 9.090909, state.Supply, 1e-5)
	require.InDelta(t, 11, state.VirtualQuote, 1e-12)
	require.InDelta(t, 1, state.RealQuote, 1e-12)
	require.InDelta(t, 100-9.090909, state.RealBase, 1e-5)
}

// TestExecuteBuyThenSell_Roundtrip verifies a buy followed by selling the
// full output returns supply and real quote to their starting values; with
// a zero fee no value is created or destroyed.
func TestExecuteBuyThenSell_Roundtrip(t *testing.T) {
	k := keepertest.LaunchKeeperWithParams(t, feelessParams())
	ledger := keepertest.ConstantProductMarket(t, k, 10, 100)

	bought, err := ledger.ExecuteBuy(buyReq(1))
	require.NoError(t, err)

	sold, err := ledger.ExecuteSell(sellReq(bought.AmountOut))
	require.NoError(t, err)
	require.InDelta(t, 1, sold.AmountOut, 1e-9)

	state := ledger.State()
	require.InDelta(t, 0, state.Supply, 1e-9)
	require.InDelta(t, 0, state.RealQuote, 1e-9)
}

// TestExecuteSell_InsufficientReserveLeavesStateUntouched verifies a
// rejected sell applies no partial update.
func TestExecuteSell_InsufficientReserveLeavesStateUntouched(t *testing.T) {
	k := keepertest.LaunchKeeperWithParams(t, feelessParams())
	ledger := keepertest.ConstantProductMarket(t, k, 10, 100)

	_, err := ledger.ExecuteBuy(buyReq(1))
	require.NoError(t, err)
	before := ledger.State()

	_, err = ledger.ExecuteSell(sellReq(before.Supply * 2))
	require.ErrorIs(t, err, types.ErrInsufficientReserve)
	require.Equal(t, before, ledger.State())
}

// TestExecuteBuy_SlippageExceeded verifies a tight slippage bound rejects
// the trade and leaves state untouched.
func TestExecuteBuy_SlippageExceeded(t *testing.T) {
	k := keepertest.LaunchKeeperWithParams(t, feelessParams())
	ledger := keepertest.ConstantProductMarket(t, k, 10, 100)
	before := ledger.State()

	req := types.TradeRequest{Side: types.SideBuy, Amount: 1, MaxSlippagePct: 0.001}
	_, err := ledger.ExecuteBuy(req)
	require.ErrorIs(t, err, types.ErrSlippageExceeded)
	require.Equal(t, before, ledger.State())
}

// TestGraduation verifies the threshold crossing flips the market exactly
// once, on the crossing buy, and the ledger is terminal afterwards.
func TestGraduation(t *testing.T) {
	k := keepertest.LaunchKeeperWithParams(t, feelessParams())
	ledger := keepertest.ConstantProductMarket(t, k, 30, 1_000_000)

	// Default target is 85 quote units; nine feeless buys of 10 cross it
	// on the ninth.
	graduations := 0
	for i := 1; i <= 9; i++ {
		res, err := ledger.ExecuteBuy(buyReq(10))
		require.NoError(t, err, "buy %d", i)
		if res.Graduated {
			graduations++
			require.Equal(t, 9, i, "graduation must fire on the crossing buy")
		}
	}
	require.Equal(t, 1, graduations)
	require.True(t, ledger.State().Graduated)
	require.Equal(t, 100.0, ledger.GraduationProgress())

	_, err := ledger.ExecuteBuy(buyReq(1))
	require.ErrorIs(t, err, types.ErrMarketGraduated)

	_, err = ledger.ExecuteSell(sellReq(1))
	require.ErrorIs(t, err, types.ErrMarketGraduated)
}

// TestGraduationProgress tracks the accumulation toward the target.
func TestGraduationProgress(t *testing.T) {
	k := keepertest.LaunchKeeperWithParams(t, feelessParams())
	ledger := keepertest.ConstantProductMarket(t, k, 30, 1_000_000)

	require.Equal(t, 0.0, ledger.GraduationProgress())

	_, err := ledger.ExecuteBuy(buyReq(17))
	require.NoError(t, err)
	require.InDelta(t, 20.0, ledger.GraduationProgress(), 1e-9)
}

// TestMarketCap verifies spot value of circulating supply.
func TestMarketCap(t *testing.T) {
	k := keepertest.LaunchKeeperWithParams(t, feelessParams())
	ledger := keepertest.ConstantProductMarket(t, k, 10, 100)
	require.Equal(t, 0.0, ledger.MarketCap())

	res, err := ledger.ExecuteBuy(buyReq(1))
	require.NoError(t, err)
	require.InDelta(t, res.NewPrice*res.NewSupply, ledger.MarketCap(), 1e-9)
}

// TestExecute_Dispatch verifies the side-dispatching entry point.
func TestExecute_Dispatch(t *testing.T) {
	k := keepertest.LaunchKeeperWithParams(t, feelessParams())
	ledger := keepertest.ConstantProductMarket(t, k, 10, 100)

	res, err := ledger.Execute(buyReq(1))
	require.NoError(t, err)
	require.Greater(t, res.AmountOut, 0.0)

	res, err = ledger.Execute(sellReq(res.AmountOut / 2))
	require.NoError(t, err)
	require.Greater(t, res.AmountOut, 0.0)
}

// TestExecute_SideMismatch verifies the typed entry points reject requests
// for the other side.
func TestExecute_SideMismatch(t *testing.T) {
	k := keepertest.LaunchKeeperWithParams(t, feelessParams())
	ledger := keepertest.ConstantProductMarket(t, k, 10, 100)

	_, err := ledger.ExecuteBuy(sellReq(1))
	require.ErrorIs(t, err, types.ErrInvalidAmount)
	_, err = ledger.ExecuteSell(buyReq(1))
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

// TestExecuteBuy_PowerLawMarket runs the execution path over the
// root-finding variant.
func TestExecuteBuy_PowerLawMarket(t *testing.T) {
	k := keepertest.LaunchKeeperWithParams(t, feelessParams())
	ledger := keepertest.PowerLawMarket(t, k, 1, 2, 100)

	res, err := ledger.ExecuteBuy(buyReq(100.0 / 3 * 0.125))
	require.NoError(t, err)
	require.InDelta(t, 50, res.AmountOut, 1e-6)
	require.InDelta(t, 50, ledger.State().Supply, 1e-6)

	// Exhausting the remainder of the curve is rejected.
	_, err = ledger.ExecuteBuy(buyReq(100))
	require.ErrorIs(t, err, types.ErrCurveExhausted)
}
