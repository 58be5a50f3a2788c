// Package main is the entry point for the async-pool-agent CLI.
//
// Usage:
//
//	async-pool-agent run                          # Start the agent
//	async-pool-agent run --pool-core-size 4       # Override a setting
//	async-pool-agent config --config-file a.yaml  # Print the effective configuration
//	async-pool-agent version                      # Show version info
//
// Every flag can also be set through an ASYNC_AGENT_ environment variable
// (ASYNC_AGENT_POOL_CORE_SIZE=4) or a key of the same name in the config
// file. Precedence: flag, environment, config file, default.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
)

const envPrefix = "ASYNC_AGENT"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "async-pool-agent",
		Short:         "Periodic fan-out agent on a bounded worker pool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRunCmd(),
		newConfigCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "async-pool-agent %s (commit %s)\n", version, commit)
			},
		},
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
