package types

// Curve maps reserve state to spot price and converts between trade input
// and output along the curve. Implementations are pure and hold no mutable
// state; all market state lives in the ReserveState passed in.
type Curve interface {
	// Kind reports the pricing model
	Kind() CurveKind

	// Price returns the spot price in quote per base unit
	Price(state ReserveState) float64

	// QuoteToOutput converts a fee-free input amount into the amount of
	// the opposite asset obtained. For buys the input is quote and the
	// output base; for sells the input is base and the output quote.
	QuoteToOutput(state ReserveState, side Side, netAmount float64) (float64, error)

	// OutputToQuote is the inverse of QuoteToOutput: the input amount
	// required to obtain a desired output. Used for display and validation.
	OutputToQuote(state ReserveState, side Side, output float64) (float64, error)
}

// NewCurve builds the pricing strategy selected by the configuration.
func NewCurve(cfg CurveConfig) (Curve, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Kind {
	case CurvePowerLaw:
		return PowerLawCurve{
			InitialPrice: cfg.InitialPrice,
			Exponent:     cfg.Exponent,
			MaxSupply:    cfg.MaxSupply,
		}, nil
	default:
		return ConstantProductCurve{}, nil
	}
}
