package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "lockbox",
	Short:         "Local credential store backed by the OS secret service",
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		// Bare invocation is a usage error, not a success.
		cmd.Help()
		os.Exit(1)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lockbox: %v\n", err)
		os.Exit(1)
	}
}
