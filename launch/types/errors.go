package types

import (
	"cosmossdk.io/errors"
)

// Launch module sentinel errors
var (
	ErrInvalidAmount       = errors.Register(ModuleName, 1, "invalid trade amount")
	ErrInsufficientReserve = errors.Register(ModuleName, 2, "insufficient reserve for trade")
	ErrSlippageExceeded    = errors.Register(ModuleName, 3, "slippage exceeded maximum")
	ErrMarketGraduated     = errors.Register(ModuleName, 4, "market has graduated")
	ErrCurveExhausted      = errors.Register(ModuleName, 5, "curve supply exhausted")
	ErrArithmeticDomain    = errors.Register(ModuleName, 6, "arithmetic domain error")
	ErrMarketNotFound      = errors.Register(ModuleName, 7, "market not found")
	ErrMarketAlreadyExists = errors.Register(ModuleName, 8, "market already exists")
	ErrInvalidCurveConfig  = errors.Register(ModuleName, 9, "invalid curve configuration")
	ErrInvalidParams       = errors.Register(ModuleName, 10, "invalid module parameters")
)
