package types

import (
	"math"
)

// PowerLawCurve prices issuance as price(s) = InitialPrice * (s/MaxSupply)^Exponent
// over 0 <= s <= MaxSupply. The cost of moving supply between two points is
// the analytic integral of the price function; the inverse has no closed
// form for Exponent != 1 and is solved by bounded bisection.
type PowerLawCurve struct {
	InitialPrice float64
	Exponent     float64
	MaxSupply    float64
}

// Kind implements Curve
func (c PowerLawCurve) Kind() CurveKind { return CurvePowerLaw }

// Price implements Curve. The two clamp points are deliberate: supply at or
// below zero prices at InitialPrice, supply at or above MaxSupply prices at
// the curve's terminal value.
func (c PowerLawCurve) Price(state ReserveState) float64 {
	s := state.Supply
	if s <= 0 {
		return c.InitialPrice
	}
	if s >= c.MaxSupply {
		s = c.MaxSupply
	}
	return c.InitialPrice * math.Pow(s/c.MaxSupply, c.Exponent)
}

// costBetween is the definite integral of the price function from s0 to s1.
// Exponent == 1 takes the log-integral branch; the general power-law
// antiderivative degenerates there.
func (c PowerLawCurve) costBetween(s0, s1 float64) float64 {
	if c.Exponent == 1 {
		return c.InitialPrice * c.MaxSupply * math.Log((s1+c.MaxSupply)/(s0+c.MaxSupply))
	}
	return c.costAt(s1) - c.costAt(s0)
}

// costAt is the antiderivative of the price function evaluated at s,
// valid for Exponent != 1.
func (c PowerLawCurve) costAt(s float64) float64 {
	return c.InitialPrice * c.MaxSupply / (c.Exponent + 1) * math.Pow(s/c.MaxSupply, c.Exponent+1)
}

// QuoteToOutput implements Curve.
func (c PowerLawCurve) QuoteToOutput(state ReserveState, side Side, netAmount float64) (float64, error) {
	if netAmount <= 0 {
		return 0, ErrInvalidAmount.Wrapf("net amount must be positive, got %g", netAmount)
	}
	s0 := clamp(state.Supply, 0, c.MaxSupply)

	if side == SideSell {
		if netAmount > s0 {
			return 0, ErrInsufficientReserve.Wrapf(
				"sell of %g base exceeds supply %g", netAmount, s0)
		}
		return c.costBetween(s0-netAmount, s0), nil
	}

	remaining := c.costBetween(s0, c.MaxSupply)
	if netAmount > remaining+BisectionTolerance {
		return 0, ErrCurveExhausted.Wrapf(
			"quote input %g exceeds remaining curve capacity %g", netAmount, remaining)
	}

	if c.Exponent == 1 {
		// Log-integral branch inverts in closed form.
		s1 := (s0+c.MaxSupply)*math.Exp(netAmount/(c.InitialPrice*c.MaxSupply)) - c.MaxSupply
		if s1 > c.MaxSupply {
			s1 = c.MaxSupply
		}
		return s1 - s0, nil
	}

	s1, err := c.bisect(s0, c.MaxSupply, func(s float64) float64 {
		return c.costBetween(s0, s) - netAmount
	})
	if err != nil {
		return 0, err
	}
	return s1 - s0, nil
}

// OutputToQuote implements Curve.
func (c PowerLawCurve) OutputToQuote(state ReserveState, side Side, output float64) (float64, error) {
	if output <= 0 {
		return 0, ErrInvalidAmount.Wrapf("output must be positive, got %g", output)
	}
	s0 := clamp(state.Supply, 0, c.MaxSupply)

	if side == SideBuy {
		s1 := s0 + output
		if s1 > c.MaxSupply {
			return 0, ErrCurveExhausted.Wrapf(
				"base output %g would push supply past max %g", output, c.MaxSupply)
		}
		return c.costBetween(s0, s1), nil
	}

	available := c.costBetween(0, s0)
	if output > available+BisectionTolerance {
		return 0, ErrInsufficientReserve.Wrapf(
			"quote output %g exceeds curve value of current supply %g", output, available)
	}

	if c.Exponent == 1 {
		b := (s0 + c.MaxSupply) * (1 - math.Exp(-output/(c.InitialPrice*c.MaxSupply)))
		return b, nil
	}

	b, err := c.bisect(0, s0, func(b float64) float64 {
		return c.costBetween(s0-b, s0) - output
	})
	if err != nil {
		return 0, err
	}
	return b, nil
}

// bisect finds x in [lo, hi] with |f(x)| <= BisectionTolerance for a
// monotonically increasing f. Bounded by BisectionMaxIterations; failing to
// converge within the cap is a domain error, never an infinite loop.
func (c PowerLawCurve) bisect(lo, hi float64, f func(float64) float64) (float64, error) {
	for i := 0; i < BisectionMaxIterations; i++ {
		mid := (lo + hi) / 2
		v := f(mid)
		if math.Abs(v) <= BisectionTolerance {
			return mid, nil
		}
		if v < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0, ErrArithmeticDomain.Wrapf(
		"bisection failed to converge within %d iterations", BisectionMaxIterations)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
