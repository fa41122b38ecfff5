package cmd

import (
	"fmt"

	"cosmossdk.io/log"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/paw-chain/launchpad/launch/keeper"
	"github.com/paw-chain/launchpad/launch/types"
)

// GetCmdSimulate returns the simulate command
func GetCmdSimulate(logger log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate [buy-amount]",
		Short: "Run repeated buys against a fresh market until it graduates",
		Long: `Create a market, execute buys of the given quote amount against its
ledger, and print the path to graduation.

Example:
  $ launchpadd simulate 5 --curve constant-product --virtual-quote 30 --virtual-base 1000000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buyAmount, err := cast.ToFloat64E(args[0])
			if err != nil {
				return types.ErrInvalidAmount.Wrapf("buy amount: %v", err)
			}
			maxTrades, err := cmd.Flags().GetInt("max-trades")
			if err != nil {
				return err
			}
			maxSlippagePct, err := cmd.Flags().GetFloat64("max-slippage")
			if err != nil {
				return err
			}

			params, err := moduleParams()
			if err != nil {
				return err
			}
			k, err := keeper.NewKeeper(logger, params)
			if err != nil {
				return err
			}
			cfg, err := curveConfigFromFlags(cmd)
			if err != nil {
				return err
			}
			ledger, err := k.CreateMarket(cfg)
			if err != nil {
				return err
			}

			req := types.TradeRequest{
				Side:           types.SideBuy,
				Amount:         buyAmount,
				MaxSlippagePct: maxSlippagePct,
			}
			for i := 1; i <= maxTrades; i++ {
				res, err := ledger.ExecuteBuy(req)
				if err != nil {
					return err
				}
				fmt.Printf("trade %3d: out=%-14.6f price=%-12.8f progress=%6.2f%%\n",
					i, res.AmountOut, res.NewPrice, ledger.GraduationProgress())
				if res.Graduated {
					fmt.Printf("market graduated after %d trades, market cap %.4f\n",
						i, ledger.MarketCap())
					return nil
				}
			}
			fmt.Printf("market did not graduate within %d trades (progress %.2f%%)\n",
				maxTrades, ledger.GraduationProgress())
			return nil
		},
	}

	addCurveFlags(cmd)
	cmd.Flags().Int("max-trades", 100, "maximum number of buys to execute")
	cmd.Flags().Float64("max-slippage", 100, "per-trade slippage bound in percent")
	return cmd
}

// GetCmdParams returns the params command
func GetCmdParams() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the current engine parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := moduleParams()
			if err != nil {
				return err
			}
			fmt.Printf("trade fee:            %s (%d bps)\n", params.TradeFee, params.FeeBasisPoints())
			fmt.Printf("max slippage percent: %s\n", params.MaxSlippagePercent)
			fmt.Printf("graduation target:    %s\n", params.GraduationTarget)
			return nil
		},
	}
}
