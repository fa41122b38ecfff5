package keeper

import (
	"cosmossdk.io/log"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/launchpad/launch/keeper"
	"github.com/paw-chain/launchpad/launch/types"
)

// LaunchKeeper creates a test keeper with default module parameters
func LaunchKeeper(t require.TestingT) *keeper.Keeper {
	k, err := keeper.NewKeeper(log.NewNopLogger(), types.DefaultParams())
	require.NoError(t, err)
	return k
}

// LaunchKeeperWithParams creates a test keeper with explicit parameters
func LaunchKeeperWithParams(t require.TestingT, params types.Params) *keeper.Keeper {
	k, err := keeper.NewKeeper(log.NewNopLogger(), params)
	require.NoError(t, err)
	return k
}

// ConstantProductMarket registers a constant-product market for tests
func ConstantProductMarket(t require.TestingT, k *keeper.Keeper, virtualQuote, virtualBase float64) *keeper.Ledger {
	ledger, err := k.CreateMarket(types.NewConstantProductConfig(virtualQuote, virtualBase))
	require.NoError(t, err)
	return ledger
}

// PowerLawMarket registers a power-law market for tests
func PowerLawMarket(t require.TestingT, k *keeper.Keeper, initialPrice, exponent, maxSupply float64) *keeper.Ledger {
	ledger, err := k.CreateMarket(types.NewPowerLawConfig(initialPrice, exponent, maxSupply))
	require.NoError(t, err)
	return ledger
}
