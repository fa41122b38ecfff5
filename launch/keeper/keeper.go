package keeper

import (
	"sort"
	"sync"

	"cosmossdk.io/log"
	"github.com/google/uuid"

	"github.com/paw-chain/launchpad/launch/types"
)

// Keeper is the registry of market ledgers. It assembles a curve, fee
// policy and seeded reserve state per market and hands callers an explicit
// ledger handle; there is no implicit global market state.
type Keeper struct {
	logger log.Logger
	params types.Params

	mu      sync.RWMutex
	markets map[string]*Ledger
}

// NewKeeper creates a keeper with the given module parameters
func NewKeeper(logger log.Logger, params types.Params) (*Keeper, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Keeper{
		logger:  logger.With("module", types.ModuleName),
		params:  params,
		markets: make(map[string]*Ledger),
	}, nil
}

// Params returns the module parameters
func (k *Keeper) Params() types.Params { return k.params }

// CreateMarket registers a new market under a generated id, seeding its
// reserve state from the curve configuration.
func (k *Keeper) CreateMarket(cfg types.CurveConfig) (*Ledger, error) {
	return k.CreateMarketWithID(uuid.NewString(), cfg)
}

// CreateMarketWithID registers a new market under a caller-chosen id.
func (k *Keeper) CreateMarketWithID(id string, cfg types.CurveConfig) (*Ledger, error) {
	if id == "" {
		return nil, types.ErrInvalidCurveConfig.Wrap("market id cannot be empty")
	}
	curve, err := types.NewCurve(cfg)
	if err != nil {
		return nil, err
	}
	state, err := types.NewReserveState(cfg, k.params.GraduationTargetQuote())
	if err != nil {
		return nil, err
	}
	sim := NewSimulator(curve, types.NewFeePolicy(k.params.FeeBasisPoints()))
	ledger := NewLedger(id, sim, state, k.logger)

	k.mu.Lock()
	defer k.mu.Unlock()
	if _, ok := k.markets[id]; ok {
		return nil, types.ErrMarketAlreadyExists.Wrapf("market %s", id)
	}
	k.markets[id] = ledger

	MarketsCreated.Inc()
	k.logger.Info("market created",
		"market_id", id,
		"curve", cfg.Kind.String(),
		"graduation_target", k.params.GraduationTargetQuote(),
	)
	return ledger, nil
}

// GetMarket returns the ledger handle for a market id
func (k *Keeper) GetMarket(id string) (*Ledger, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	ledger, ok := k.markets[id]
	if !ok {
		return nil, types.ErrMarketNotFound.Wrapf("market %s", id)
	}
	return ledger, nil
}

// MarketIDs returns the registered market ids in stable order
func (k *Keeper) MarketIDs() []string {
	k.mu.RLock()
	defer k.mu.RUnlock()
	ids := make([]string, 0, len(k.markets))
	for id := range k.markets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
