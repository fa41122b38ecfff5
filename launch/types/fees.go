package types

// FeePolicy computes the fee deducted from a trade. Stateless; the rate is
// fixed per market at creation. The engine only reports fee magnitudes,
// collection bookkeeping belongs to the caller.
type FeePolicy struct {
	RateBasisPoints uint32
}

// NewFeePolicy returns a fee policy charging the given basis points
func NewFeePolicy(rateBasisPoints uint32) FeePolicy {
	return FeePolicy{RateBasisPoints: rateBasisPoints}
}

// Fee returns the fee magnitude for the given amount
func (f FeePolicy) Fee(amount float64) float64 {
	return amount * float64(f.RateBasisPoints) / BasisPointsDivisor
}
