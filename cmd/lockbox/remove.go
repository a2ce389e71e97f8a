package main

import (
	"github.com/benaskins/lockbox/internal/config"
	"github.com/benaskins/lockbox/internal/index"
	"github.com/benaskins/lockbox/internal/ops"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <account>",
	Aliases: []string{"rm"},
	Short:   "Delete an account and its stored password",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withIndex(func(cfg *config.Config, ix *index.Index) error {
			return ops.Remove(ix, args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
