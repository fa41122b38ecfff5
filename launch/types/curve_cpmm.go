package types

// ConstantProductCurve prices trades against virtual reserves holding the
// invariant k = VirtualQuote * VirtualBase. All parameters live in the
// ReserveState, so the strategy itself is empty. Both directions have a
// closed-form inverse, so no root-finding is needed.
type ConstantProductCurve struct{}

// Kind implements Curve
func (ConstantProductCurve) Kind() CurveKind { return CurveConstantProduct }

// Price implements Curve. Spot price is quote per base unit.
func (ConstantProductCurve) Price(state ReserveState) float64 {
	if state.VirtualBase <= 0 {
		return 0
	}
	return state.VirtualQuote / state.VirtualBase
}

// QuoteToOutput implements Curve.
//
// Buy with net quote input q:  out = vb - k/(vq+q)
// Sell with base input b:      out = vq - k/(vb+b)
func (c ConstantProductCurve) QuoteToOutput(state ReserveState, side Side, netAmount float64) (float64, error) {
	if netAmount <= 0 {
		return 0, ErrInvalidAmount.Wrapf("net amount must be positive, got %g", netAmount)
	}
	if state.VirtualQuote <= 0 || state.VirtualBase <= 0 {
		return 0, ErrArithmeticDomain.Wrapf(
			"degenerate virtual reserves: quote=%g base=%g", state.VirtualQuote, state.VirtualBase)
	}
	k := state.VirtualQuote * state.VirtualBase

	switch side {
	case SideBuy:
		newVirtualQuote := state.VirtualQuote + netAmount
		newVirtualBase := k / newVirtualQuote
		return state.VirtualBase - newVirtualBase, nil
	default:
		newVirtualBase := state.VirtualBase + netAmount
		newVirtualQuote := k / newVirtualBase
		return state.VirtualQuote - newVirtualQuote, nil
	}
}

// OutputToQuote implements Curve.
//
// Buy:  input quote needed for out base:  q = k/(vb-out) - vq
// Sell: input base needed for out quote:  b = k/(vq-out) - vb
func (c ConstantProductCurve) OutputToQuote(state ReserveState, side Side, output float64) (float64, error) {
	if output <= 0 {
		return 0, ErrInvalidAmount.Wrapf("output must be positive, got %g", output)
	}
	if state.VirtualQuote <= 0 || state.VirtualBase <= 0 {
		return 0, ErrArithmeticDomain.Wrapf(
			"degenerate virtual reserves: quote=%g base=%g", state.VirtualQuote, state.VirtualBase)
	}
	k := state.VirtualQuote * state.VirtualBase

	switch side {
	case SideBuy:
		if output >= state.VirtualBase {
			return 0, ErrInsufficientReserve.Wrapf(
				"base output %g >= virtual base reserve %g", output, state.VirtualBase)
		}
		return k/(state.VirtualBase-output) - state.VirtualQuote, nil
	default:
		if output >= state.VirtualQuote {
			return 0, ErrInsufficientReserve.Wrapf(
				"quote output %g >= virtual quote reserve %g", output, state.VirtualQuote)
		}
		return k/(state.VirtualQuote-output) - state.VirtualBase, nil
	}
}
