package keeper

import (
	"github.com/paw-chain/launchpad/launch/types"
)

// Simulator prices trades against a reserve state snapshot. All methods are
// pure: they never touch ledger state, and calling them twice with the same
// snapshot yields identical quotes.
type Simulator struct {
	curve types.Curve
	fees  types.FeePolicy
}

// NewSimulator combines a pricing curve with a fee policy
func NewSimulator(curve types.Curve, fees types.FeePolicy) Simulator {
	return Simulator{curve: curve, fees: fees}
}

// Curve returns the pricing strategy backing this simulator
func (s Simulator) Curve() types.Curve { return s.curve }

// CalculateBuy quotes a buy of base with quoteAmountIn quote. The fee is
// taken from the input, and the net principal is priced along the curve.
func (s Simulator) CalculateBuy(state types.ReserveState, quoteAmountIn float64) (types.TradeQuote, error) {
	if quoteAmountIn <= 0 {
		return types.TradeQuote{}, types.ErrInvalidAmount.Wrapf(
			"buy amount must be positive, got %g", quoteAmountIn)
	}

	fee := s.fees.Fee(quoteAmountIn)
	netIn := quoteAmountIn - fee

	priceBefore := s.curve.Price(state)
	if priceBefore <= 0 {
		return types.TradeQuote{}, types.ErrArithmeticDomain.Wrapf(
			"spot price is not positive: %g", priceBefore)
	}

	out, err := s.curve.QuoteToOutput(state, types.SideBuy, netIn)
	if err != nil {
		return types.TradeQuote{}, err
	}
	if out <= 0 {
		return types.TradeQuote{}, types.ErrArithmeticDomain.Wrapf(
			"buy of %g quote yields no output", netIn)
	}
	if out-state.RealBase > types.BisectionTolerance {
		return types.TradeQuote{}, types.ErrInsufficientReserve.Wrapf(
			"base output %g exceeds real base reserve %g", out, state.RealBase)
	}

	after := state.ApplyBuy(netIn, out)
	priceAfter := s.curve.Price(after)

	avgExecPrice := netIn / out
	return types.TradeQuote{
		Side:           types.SideBuy,
		AmountIn:       quoteAmountIn,
		OutputAmount:   out,
		PriceBefore:    priceBefore,
		PriceAfter:     priceAfter,
		PriceImpactPct: (priceAfter - priceBefore) / priceBefore * 100,
		SlippagePct:    (avgExecPrice - priceBefore) / priceBefore * 100,
		Fee:            fee,
	}, nil
}

// CalculateSell quotes a sell of baseAmountIn base for quote. The fee is
// taken from the output quote amount, not the input: the base asset carries
// no fee concept in this model.
func (s Simulator) CalculateSell(state types.ReserveState, baseAmountIn float64) (types.TradeQuote, error) {
	if baseAmountIn <= 0 {
		return types.TradeQuote{}, types.ErrInvalidAmount.Wrapf(
			"sell amount must be positive, got %g", baseAmountIn)
	}
	if baseAmountIn > state.AvailableBase() {
		return types.TradeQuote{}, types.ErrInsufficientReserve.Wrapf(
			"sell of %g base exceeds available base %g", baseAmountIn, state.AvailableBase())
	}

	priceBefore := s.curve.Price(state)
	if priceBefore <= 0 {
		return types.TradeQuote{}, types.ErrArithmeticDomain.Wrapf(
			"spot price is not positive: %g", priceBefore)
	}

	grossOut, err := s.curve.QuoteToOutput(state, types.SideSell, baseAmountIn)
	if err != nil {
		return types.TradeQuote{}, err
	}
	if grossOut <= 0 {
		return types.TradeQuote{}, types.ErrArithmeticDomain.Wrapf(
			"sell of %g base yields no output", baseAmountIn)
	}
	// Tolerance absorbs one-ulp noise when a full exit drains the reserve
	// to exactly zero.
	if grossOut-state.RealQuote > types.BisectionTolerance {
		return types.TradeQuote{}, types.ErrInsufficientReserve.Wrapf(
			"quote output %g exceeds real quote reserve %g", grossOut, state.RealQuote)
	}

	fee := s.fees.Fee(grossOut)
	netOut := grossOut - fee

	after := state.ApplySell(baseAmountIn, grossOut)
	priceAfter := s.curve.Price(after)

	// Average execution price over the fee-free principal, so slippage is
	// measured symmetrically to the buy side. Positive means worse than spot.
	avgExecPrice := grossOut / baseAmountIn
	return types.TradeQuote{
		Side:           types.SideSell,
		AmountIn:       baseAmountIn,
		OutputAmount:   netOut,
		PriceBefore:    priceBefore,
		PriceAfter:     priceAfter,
		PriceImpactPct: (priceAfter - priceBefore) / priceBefore * 100,
		SlippagePct:    (priceBefore - avgExecPrice) / priceBefore * 100,
		Fee:            fee,
	}, nil
}

// MaxBaseForQuote returns the largest base purchase affordable with the
// given quote budget, fee included. Solved by halving search over the base
// amount against the curve's inverse, bounded like the bisection in the
// power-law model.
func (s Simulator) MaxBaseForQuote(state types.ReserveState, quoteBudget float64) (float64, error) {
	if quoteBudget <= 0 {
		return 0, types.ErrInvalidAmount.Wrapf("quote budget must be positive, got %g", quoteBudget)
	}

	netBudget := quoteBudget - s.fees.Fee(quoteBudget)
	lo, hi := 0.0, state.RealBase
	best := 0.0
	for i := 0; i < types.BisectionMaxIterations; i++ {
		mid := (lo + hi) / 2
		if mid <= 0 {
			break
		}
		cost, err := s.curve.OutputToQuote(state, types.SideBuy, mid)
		if err != nil || cost > netBudget {
			hi = mid
			continue
		}
		best = mid
		lo = mid
		if netBudget-cost <= types.BisectionTolerance {
			break
		}
	}
	return best, nil
}
