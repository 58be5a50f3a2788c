package main

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kubev2v/async-pool-agent/internal/config"
)

func newConfigCmd() *cobra.Command {
	cfg := config.NewConfigurationWithOptionsAndDefaults()

	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Print the effective configuration",
		Long:    `Resolve flags, ASYNC_AGENT_ environment variables and the config file, validate the result and print it.`,
		PreRunE: syncFlagsPreRunE(),
		RunE: func(cmd *cobra.Command, args []string) error {
			printConfig(cmd.OutOrStdout(), cfg)
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			return nil
		},
	}
	registerFlags(cmd.Flags(), cfg)

	return cmd
}

func printConfig(w io.Writer, cfg *config.Configuration) {
	key := color.New(color.FgCyan, color.Bold)
	debugMap := cfg.DebugMap()
	for _, k := range slices.Sorted(maps.Keys(debugMap)) {
		fmt.Fprintf(w, "%s: %v\n", key.Sprint(k), debugMap[k])
	}
}
