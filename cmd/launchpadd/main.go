package main

import (
	"os"

	"cosmossdk.io/log"

	"github.com/paw-chain/launchpad/cmd/launchpadd/cmd"
)

func main() {
	logger := log.NewLogger(os.Stderr)

	rootCmd := cmd.NewRootCmd(logger)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
