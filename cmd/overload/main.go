package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information - will be set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "overload",
		Short: "Runtime multiple-dispatch resolver demo and tooling",
		Long: `Overload is a runtime multiple-dispatch resolver for Go: callables are
registered under a scope and name with one signature per overload, and
calls are routed to the implementation whose signature matches the
runtime argument types.`,
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newSignaturesCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
