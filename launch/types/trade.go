package types

// Side identifies the direction of a trade against the curve.
type Side int8

const (
	// SideBuy spends quote to mint base off the curve
	SideBuy Side = iota
	// SideSell returns base to the curve for quote
	SideSell
)

// String implements fmt.Stringer
func (s Side) String() string {
	switch s {
	case SideBuy:
		return "buy"
	case SideSell:
		return "sell"
	default:
		return "unknown"
	}
}

// TradeRequest is a caller-constructed, transient request for a trade.
// Amount is quote for buys and base for sells. MaxSlippagePct bounds the
// deviation of the average execution price from the pre-trade spot price,
// in percent; a freshly derived quote exceeding it is rejected at execution.
type TradeRequest struct {
	Side           Side
	Amount         float64
	MaxSlippagePct float64
}

// Validate performs stateless validation of the request
func (r TradeRequest) Validate() error {
	if r.Side != SideBuy && r.Side != SideSell {
		return ErrInvalidAmount.Wrapf("unknown trade side %d", r.Side)
	}
	if r.Amount <= 0 {
		return ErrInvalidAmount.Wrapf("trade amount must be positive, got %g", r.Amount)
	}
	if r.MaxSlippagePct < 0 {
		return ErrSlippageExceeded.Wrapf("max slippage cannot be negative, got %g", r.MaxSlippagePct)
	}
	return nil
}

// TradeQuote is the immutable result of a pure trade simulation. Its
// validity is tied to the ReserveState snapshot it was computed against;
// execution re-derives it rather than trusting a caller-supplied copy.
type TradeQuote struct {
	Side           Side
	AmountIn       float64
	OutputAmount   float64
	PriceBefore    float64
	PriceAfter     float64
	PriceImpactPct float64
	SlippagePct    float64
	Fee            float64
}

// TradeExecutionResult reports the outcome of an applied trade.
type TradeExecutionResult struct {
	NewSupply float64
	NewPrice  float64
	AmountOut float64
	Fee       float64
	Graduated bool
}
