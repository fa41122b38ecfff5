package types

// CurveKind selects the pricing model fixed at market creation.
type CurveKind int8

const (
	// CurvePowerLaw prices via price(s) = InitialPrice * (s/MaxSupply)^Exponent
	CurvePowerLaw CurveKind = iota
	// CurveConstantProduct prices via virtual reserves with k = vq * vb
	CurveConstantProduct
)

// String implements fmt.Stringer
func (k CurveKind) String() string {
	switch k {
	case CurvePowerLaw:
		return "power-law"
	case CurveConstantProduct:
		return "constant-product"
	default:
		return "unknown"
	}
}

// CurveConfig holds the immutable pricing parameters of one market. The
// source material never reconciles which of the two formulas governs real
// settlement, so both are supported and the market creator picks one.
type CurveConfig struct {
	Kind CurveKind

	// Power-law parameters
	InitialPrice float64
	Exponent     float64
	MaxSupply    float64

	// Constant-product parameters
	VirtualQuoteSeed float64
	VirtualBaseSeed  float64
}

// NewPowerLawConfig returns a power-law curve configuration
func NewPowerLawConfig(initialPrice, exponent, maxSupply float64) CurveConfig {
	return CurveConfig{
		Kind:         CurvePowerLaw,
		InitialPrice: initialPrice,
		Exponent:     exponent,
		MaxSupply:    maxSupply,
	}
}

// NewConstantProductConfig returns a constant-product curve configuration
func NewConstantProductConfig(virtualQuoteSeed, virtualBaseSeed float64) CurveConfig {
	return CurveConfig{
		Kind:             CurveConstantProduct,
		VirtualQuoteSeed: virtualQuoteSeed,
		VirtualBaseSeed:  virtualBaseSeed,
	}
}

// Validate checks the configuration for the selected curve kind
func (c CurveConfig) Validate() error {
	switch c.Kind {
	case CurvePowerLaw:
		if c.InitialPrice <= 0 {
			return ErrInvalidCurveConfig.Wrapf("initial price must be positive, got %g", c.InitialPrice)
		}
		if c.Exponent <= 0 {
			return ErrInvalidCurveConfig.Wrapf("exponent must be positive, got %g", c.Exponent)
		}
		if c.MaxSupply <= 0 {
			return ErrInvalidCurveConfig.Wrapf("max supply must be positive, got %g", c.MaxSupply)
		}
	case CurveConstantProduct:
		if c.VirtualQuoteSeed <= 0 {
			return ErrInvalidCurveConfig.Wrapf("virtual quote seed must be positive, got %g", c.VirtualQuoteSeed)
		}
		if c.VirtualBaseSeed <= 0 {
			return ErrInvalidCurveConfig.Wrapf("virtual base seed must be positive, got %g", c.VirtualBaseSeed)
		}
	default:
		return ErrInvalidCurveConfig.Wrapf("unknown curve kind %d", c.Kind)
	}
	return nil
}

// ReserveState is the full accounting state of one market. It is owned
// exclusively by one ledger instance; no other component mutates it.
// Virtual reserves drive the price math, real reserves track actual
// holdings against the market.
type ReserveState struct {
	Supply                float64
	VirtualQuote          float64
	VirtualBase           float64
	RealQuote             float64
	RealBase              float64
	GraduationTargetQuote float64
	Graduated             bool
}

// NewReserveState seeds the initial state for a market from its curve
// configuration. Power-law markets start with the full supply held by the
// curve; constant-product markets mirror the virtual seeds into real base.
func NewReserveState(cfg CurveConfig, graduationTarget float64) (ReserveState, error) {
	if err := cfg.Validate(); err != nil {
		return ReserveState{}, err
	}
	if graduationTarget <= 0 {
		return ReserveState{}, ErrInvalidCurveConfig.Wrapf("graduation target must be positive, got %g", graduationTarget)
	}

	switch cfg.Kind {
	case CurvePowerLaw:
		return ReserveState{
			VirtualBase:           cfg.MaxSupply,
			RealBase:              cfg.MaxSupply,
			GraduationTargetQuote: graduationTarget,
		}, nil
	default:
		return ReserveState{
			VirtualQuote:          cfg.VirtualQuoteSeed,
			VirtualBase:           cfg.VirtualBaseSeed,
			RealBase:              cfg.VirtualBaseSeed,
			GraduationTargetQuote: graduationTarget,
		}, nil
	}
}

// AvailableBase is the base in circulation that can be sold back to the
// curve. The engine cannot see caller balances; this is the market-wide cap.
func (s ReserveState) AvailableBase() float64 {
	return s.Supply
}

// ApplyBuy returns the state after depositing netIn quote and releasing
// out base. Pure; the caller is responsible for validating the delta.
func (s ReserveState) ApplyBuy(netIn, out float64) ReserveState {
	s.Supply += out
	s.VirtualQuote += netIn
	s.VirtualBase -= out
	s.RealQuote += netIn
	s.RealBase -= out
	return s
}

// ApplySell returns the state after returning baseIn base and withdrawing
// grossOut quote. Pure; the caller is responsible for validating the delta.
func (s ReserveState) ApplySell(baseIn, grossOut float64) ReserveState {
	s.Supply -= baseIn
	s.VirtualQuote -= grossOut
	s.VirtualBase += baseIn
	s.RealQuote -= grossOut
	s.RealBase += baseIn
	return s
}
