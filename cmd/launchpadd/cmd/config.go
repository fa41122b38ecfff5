package cmd

import (
	"cosmossdk.io/math"
	"github.com/spf13/viper"

	"github.com/paw-chain/launchpad/launch/types"
)

// Config holds CLI configuration, loaded from LAUNCHPAD_* environment
// variables with sensible defaults.
type Config struct {
	TradeFee           string
	MaxSlippagePercent string
	GraduationTarget   string
}

// LoadConfig reads configuration from the environment
func LoadConfig() Config {
	v := viper.New()
	v.SetEnvPrefix("LAUNCHPAD")
	v.AutomaticEnv()

	v.SetDefault("trade_fee", "0.01")
	v.SetDefault("max_slippage_percent", "5")
	v.SetDefault("graduation_target", "85")

	return Config{
		TradeFee:           v.GetString("trade_fee"),
		MaxSlippagePercent: v.GetString("max_slippage_percent"),
		GraduationTarget:   v.GetString("graduation_target"),
	}
}

// Params converts the configuration into validated module parameters
func (c Config) Params() (types.Params, error) {
	tradeFee, err := math.LegacyNewDecFromStr(c.TradeFee)
	if err != nil {
		return types.Params{}, types.ErrInvalidParams.Wrapf("trade fee: %v", err)
	}
	maxSlippage, err := math.LegacyNewDecFromStr(c.MaxSlippagePercent)
	if err != nil {
		return types.Params{}, types.ErrInvalidParams.Wrapf("max slippage percent: %v", err)
	}
	target, err := math.LegacyNewDecFromStr(c.GraduationTarget)
	if err != nil {
		return types.Params{}, types.ErrInvalidParams.Wrapf("graduation target: %v", err)
	}

	params := types.Params{
		TradeFee:           tradeFee,
		MaxSlippagePercent: maxSlippage,
		GraduationTarget:   target,
	}
	if err := params.Validate(); err != nil {
		return types.Params{}, err
	}
	return params, nil
}
