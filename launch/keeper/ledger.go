package keeper

import (
	"sync"

	"cosmossdk.io/log"

	"github.com/paw-chain/launchpad/launch/types"
)

// Ledger is the mutable authority for one token market. It owns the
// market's ReserveState exclusively and serializes all mutations behind a
// single-writer mutex. Quotes are always re-derived from current state at
// execution time; a caller-supplied quote is never trusted, which is also
// how staleness is detected.
type Ledger struct {
	id     string
	sim    Simulator
	logger log.Logger

	mu    sync.Mutex
	state types.ReserveState
}

// NewLedger wraps a seeded reserve state in a ledger
func NewLedger(id string, sim Simulator, state types.ReserveState, logger log.Logger) *Ledger {
	return &Ledger{
		id:     id,
		sim:    sim,
		logger: logger.With("market_id", id),
		state:  state,
	}
}

// ID returns the market identifier
func (l *Ledger) ID() string { return l.id }

// Simulator returns the pure pricing simulator for this market. Safe for
// concurrent use against snapshots from State.
func (l *Ledger) Simulator() Simulator { return l.sim }

// State returns a snapshot of the current reserve state
func (l *Ledger) State() types.ReserveState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Execute dispatches the request to ExecuteBuy or ExecuteSell by side
func (l *Ledger) Execute(req types.TradeRequest) (types.TradeExecutionResult, error) {
	if req.Side == types.SideSell {
		return l.ExecuteSell(req)
	}
	return l.ExecuteBuy(req)
}

// ExecuteBuy applies a buy against current state. The quote is recomputed
// fresh, slippage is checked against the request bound, and the full
// reserve delta is applied as one atomic update; any failure leaves the
// state untouched. Graduation is evaluated after a successful buy.
func (l *Ledger) ExecuteBuy(req types.TradeRequest) (types.TradeExecutionResult, error) {
	if req.Side != types.SideBuy {
		return types.TradeExecutionResult{}, types.ErrInvalidAmount.Wrap("request side is not buy")
	}
	if err := req.Validate(); err != nil {
		TradesTotal.WithLabelValues("buy", "rejected").Inc()
		return types.TradeExecutionResult{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state.Graduated {
		TradesTotal.WithLabelValues("buy", "rejected").Inc()
		return types.TradeExecutionResult{}, types.ErrMarketGraduated.Wrapf("market %s is terminal", l.id)
	}

	quote, err := l.sim.CalculateBuy(l.state, req.Amount)
	if err != nil {
		TradesTotal.WithLabelValues("buy", "rejected").Inc()
		return types.TradeExecutionResult{}, err
	}
	if quote.SlippagePct > req.MaxSlippagePct {
		TradesTotal.WithLabelValues("buy", "rejected").Inc()
		return types.TradeExecutionResult{}, types.ErrSlippageExceeded.Wrapf(
			"slippage %.6f%% exceeds maximum %.6f%%", quote.SlippagePct, req.MaxSlippagePct)
	}

	next := l.state.ApplyBuy(req.Amount-quote.Fee, quote.OutputAmount)
	if err := validateState(next); err != nil {
		TradesTotal.WithLabelValues("buy", "rejected").Inc()
		return types.TradeExecutionResult{}, err
	}

	graduated := false
	if !next.Graduated && next.RealQuote >= next.GraduationTargetQuote {
		next.Graduated = true
		graduated = true
	}
	l.state = next

	TradesTotal.WithLabelValues("buy", "executed").Inc()
	TradeAmounts.WithLabelValues("buy").Observe(req.Amount)
	FeesCollected.Add(quote.Fee)

	l.logger.Info("buy executed",
		"amount_in", req.Amount,
		"amount_out", quote.OutputAmount,
		"fee", quote.Fee,
		"price", quote.PriceAfter,
		"real_quote", next.RealQuote,
	)
	if graduated {
		GraduationsTotal.Inc()
		l.logger.Info("market graduated",
			"real_quote", next.RealQuote,
			"target", next.GraduationTargetQuote,
		)
	}

	return types.TradeExecutionResult{
		NewSupply: next.Supply,
		NewPrice:  quote.PriceAfter,
		AmountOut: quote.OutputAmount,
		Fee:       quote.Fee,
		Graduated: graduated,
	}, nil
}

// ExecuteSell mirrors ExecuteBuy with the reserve deltas reversed. There is
// no graduation check on sells: graduation is monotonic and buy-only.
func (l *Ledger) ExecuteSell(req types.TradeRequest) (types.TradeExecutionResult, error) {
	if req.Side != types.SideSell {
		return types.TradeExecutionResult{}, types.ErrInvalidAmount.Wrap("request side is not sell")
	}
	if err := req.Validate(); err != nil {
		TradesTotal.WithLabelValues("sell", "rejected").Inc()
		return types.TradeExecutionResult{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state.Graduated {
		TradesTotal.WithLabelValues("sell", "rejected").Inc()
		return types.TradeExecutionResult{}, types.ErrMarketGraduated.Wrapf("market %s is terminal", l.id)
	}

	quote, err := l.sim.CalculateSell(l.state, req.Amount)
	if err != nil {
		TradesTotal.WithLabelValues("sell", "rejected").Inc()
		return types.TradeExecutionResult{}, err
	}
	if quote.SlippagePct > req.MaxSlippagePct {
		TradesTotal.WithLabelValues("sell", "rejected").Inc()
		return types.TradeExecutionResult{}, types.ErrSlippageExceeded.Wrapf(
			"slippage %.6f%% exceeds maximum %.6f%%", quote.SlippagePct, req.MaxSlippagePct)
	}

	next := l.state.ApplySell(req.Amount, quote.OutputAmount+quote.Fee)
	if err := validateState(next); err != nil {
		TradesTotal.WithLabelValues("sell", "rejected").Inc()
		return types.TradeExecutionResult{}, err
	}
	l.state = next

	TradesTotal.WithLabelValues("sell", "executed").Inc()
	TradeAmounts.WithLabelValues("sell").Observe(req.Amount)
	FeesCollected.Add(quote.Fee)

	l.logger.Info("sell executed",
		"amount_in", req.Amount,
		"amount_out", quote.OutputAmount,
		"fee", quote.Fee,
		"price", quote.PriceAfter,
		"real_quote", next.RealQuote,
	)

	return types.TradeExecutionResult{
		NewSupply: next.Supply,
		NewPrice:  quote.PriceAfter,
		AmountOut: quote.OutputAmount,
		Fee:       quote.Fee,
		Graduated: false,
	}, nil
}

// MarketCap returns the spot value of circulating supply in quote units
func (l *Ledger) MarketCap() float64 {
	st := l.State()
	return l.sim.Curve().Price(st) * st.Supply
}

// GraduationProgress returns how far the market is toward graduation,
// in percent, capped at 100.
func (l *Ledger) GraduationProgress() float64 {
	st := l.State()
	if st.RealQuote >= st.GraduationTargetQuote {
		return 100
	}
	return st.RealQuote / st.GraduationTargetQuote * 100
}

// validateState rejects any delta that would leave the accounting negative.
// The simulator's checks make this unreachable in normal operation; it is
// the last gate before the single atomic state assignment.
func validateState(s types.ReserveState) error {
	if s.Supply < -types.BisectionTolerance ||
		s.RealBase < -types.BisectionTolerance ||
		s.RealQuote < -types.BisectionTolerance {
		return types.ErrArithmeticDomain.Wrapf(
			"state would go negative: supply=%g realBase=%g realQuote=%g",
			s.Supply, s.RealBase, s.RealQuote)
	}
	return nil
}
