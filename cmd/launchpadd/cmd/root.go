package cmd

import (
	"cosmossdk.io/log"
	"github.com/spf13/cobra"

	"github.com/paw-chain/launchpad/launch/types"
)

// NewRootCmd creates the root command for launchpadd. It is called once in
// the main function.
func NewRootCmd(logger log.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:                        "launchpadd",
		Short:                      "Bonding-curve pricing and reserve-accounting engine",
		SuggestionsMinimumDistance: 2,
		SilenceUsage:               true,
	}

	rootCmd.AddCommand(
		GetCmdQuote(),
		GetCmdSimulate(logger),
		GetCmdParams(),
	)

	return rootCmd
}

// moduleParams loads module parameters from the environment-backed config
func moduleParams() (types.Params, error) {
	cfg := LoadConfig()
	return cfg.Params()
}
