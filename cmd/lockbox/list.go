package main

import (
	"os"

	"github.com/benaskins/lockbox/internal/config"
	"github.com/benaskins/lockbox/internal/index"
	"github.com/benaskins/lockbox/internal/ops"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all account names",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withIndex(func(cfg *config.Config, ix *index.Index) error {
			return ops.List(os.Stdout, ix)
		})
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
