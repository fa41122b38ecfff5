package cmd

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/paw-chain/launchpad/launch/keeper"
	"github.com/paw-chain/launchpad/launch/types"
)

// GetCmdQuote returns the quote command group
func GetCmdQuote() *cobra.Command {
	quoteCmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a trade against a caller-supplied reserve state",
	}

	quoteCmd.AddCommand(
		getCmdQuoteSide("buy", types.SideBuy),
		getCmdQuoteSide("sell", types.SideSell),
	)
	return quoteCmd
}

func getCmdQuoteSide(name string, side types.Side) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " [amount]",
		Short: fmt.Sprintf("Quote a %s without touching any market state", name),
		Long: fmt.Sprintf(`Quote a %s against the reserve state described by the flags.

Example:
  $ launchpadd quote %s 1 --curve constant-product --virtual-quote 10 --virtual-base 100`, name, name),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := cast.ToFloat64E(args[0])
			if err != nil {
				return types.ErrInvalidAmount.Wrapf("amount: %v", err)
			}

			cfg, err := curveConfigFromFlags(cmd)
			if err != nil {
				return err
			}
			curve, err := types.NewCurve(cfg)
			if err != nil {
				return err
			}
			state, err := stateFromFlags(cmd, cfg)
			if err != nil {
				return err
			}

			feeBps, err := cmd.Flags().GetUint32("fee-bps")
			if err != nil {
				return err
			}
			sim := keeper.NewSimulator(curve, types.NewFeePolicy(feeBps))

			var quote types.TradeQuote
			if side == types.SideBuy {
				quote, err = sim.CalculateBuy(state, amount)
			} else {
				quote, err = sim.CalculateSell(state, amount)
			}
			if err != nil {
				return err
			}

			fmt.Printf("side:             %s\n", quote.Side)
			fmt.Printf("amount in:        %g\n", quote.AmountIn)
			fmt.Printf("output amount:    %g\n", quote.OutputAmount)
			fmt.Printf("fee:              %g\n", quote.Fee)
			fmt.Printf("price before:     %g\n", quote.PriceBefore)
			fmt.Printf("price after:      %g\n", quote.PriceAfter)
			fmt.Printf("price impact:     %.4f%%\n", quote.PriceImpactPct)
			fmt.Printf("slippage:         %.4f%%\n", quote.SlippagePct)
			return nil
		},
	}

	addCurveFlags(cmd)
	return cmd
}

func addCurveFlags(cmd *cobra.Command) {
	cmd.Flags().String("curve", "constant-product", "curve kind: power-law or constant-product")
	cmd.Flags().Float64("initial-price", 1, "power-law initial price")
	cmd.Flags().Float64("exponent", 1, "power-law exponent")
	cmd.Flags().Float64("max-supply", 1_000_000, "power-law max supply")
	cmd.Flags().Float64("virtual-quote", 10, "constant-product virtual quote seed")
	cmd.Flags().Float64("virtual-base", 100, "constant-product virtual base seed")
	cmd.Flags().Float64("supply", 0, "current circulating supply")
	cmd.Flags().Float64("real-quote", 0, "current real quote reserve")
	cmd.Flags().Uint32("fee-bps", 100, "trade fee in basis points")
}

func curveConfigFromFlags(cmd *cobra.Command) (types.CurveConfig, error) {
	kind, err := cmd.Flags().GetString("curve")
	if err != nil {
		return types.CurveConfig{}, err
	}
	switch kind {
	case "power-law":
		initialPrice, _ := cmd.Flags().GetFloat64("initial-price")
		exponent, _ := cmd.Flags().GetFloat64("exponent")
		maxSupply, _ := cmd.Flags().GetFloat64("max-supply")
		return types.NewPowerLawConfig(initialPrice, exponent, maxSupply), nil
	case "constant-product":
		virtualQuote, _ := cmd.Flags().GetFloat64("virtual-quote")
		virtualBase, _ := cmd.Flags().GetFloat64("virtual-base")
		return types.NewConstantProductConfig(virtualQuote, virtualBase), nil
	default:
		return types.CurveConfig{}, types.ErrInvalidCurveConfig.Wrapf("unknown curve kind %q", kind)
	}
}

// stateFromFlags seeds a reserve state from the curve config and advances it
// by the flag-supplied supply and real quote, so sells can be quoted against
// a market that already issued tokens.
func stateFromFlags(cmd *cobra.Command, cfg types.CurveConfig) (types.ReserveState, error) {
	cfgParams, err := moduleParams()
	if err != nil {
		return types.ReserveState{}, err
	}
	state, err := types.NewReserveState(cfg, cfgParams.GraduationTargetQuote())
	if err != nil {
		return types.ReserveState{}, err
	}

	supply, _ := cmd.Flags().GetFloat64("supply")
	realQuote, _ := cmd.Flags().GetFloat64("real-quote")
	if supply > 0 || realQuote > 0 {
		state = state.ApplyBuy(realQuote, supply)
	}
	return state, nil
}
