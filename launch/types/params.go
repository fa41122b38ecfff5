package types

import (
	"cosmossdk.io/math"
)

// Params defines the per-market economic parameters fixed at creation.
// Fees and bounds are declared as exact decimals and converted to engine
// units (basis points, percent) at the boundary.
type Params struct {
	// TradeFee is the fraction of a trade's fee-bearing amount collected
	// as fee, e.g. 0.01 for 1%.
	TradeFee math.LegacyDec

	// MaxSlippagePercent is the default slippage bound offered to callers
	// that do not set one explicitly, in percent.
	MaxSlippagePercent math.LegacyDec

	// GraduationTarget is the real quote reserve threshold, in quote
	// units, at which a market graduates.
	GraduationTarget math.LegacyDec
}

// DefaultParams returns default parameters for the launch module
func DefaultParams() Params {
	return Params{
		TradeFee:           math.LegacyNewDecWithPrec(1, 2),  // 1%
		MaxSlippagePercent: math.LegacyNewDecWithPrec(5, 0),  // 5%
		GraduationTarget:   math.LegacyNewDec(int64(DefaultGraduationTarget)),
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if p.TradeFee.IsNil() || p.TradeFee.IsNegative() || p.TradeFee.GTE(math.LegacyOneDec()) {
		return ErrInvalidParams.Wrapf("trade fee must be in [0, 1), got %s", p.TradeFee)
	}
	if p.MaxSlippagePercent.IsNil() || p.MaxSlippagePercent.IsNegative() {
		return ErrInvalidParams.Wrapf("max slippage percent cannot be negative, got %s", p.MaxSlippagePercent)
	}
	if p.GraduationTarget.IsNil() || !p.GraduationTarget.IsPositive() {
		return ErrInvalidParams.Wrapf("graduation target must be positive, got %s", p.GraduationTarget)
	}
	return nil
}

// FeeBasisPoints converts the trade fee to basis points for the fee policy
func (p Params) FeeBasisPoints() uint32 {
	return uint32(p.TradeFee.MulInt64(BasisPointsDivisor).TruncateInt64())
}

// GraduationTargetQuote returns the graduation threshold in quote units
func (p Params) GraduationTargetQuote() float64 {
	return p.GraduationTarget.MustFloat64()
}

// DefaultMaxSlippagePct returns the default slippage bound in percent
func (p Params) DefaultMaxSlippagePct() float64 {
	return p.MaxSlippagePercent.MustFloat64()
}
