package main

import (
	"github.com/benaskins/lockbox/internal/clipboard"
	"github.com/benaskins/lockbox/internal/config"
	"github.com/benaskins/lockbox/internal/index"
	"github.com/benaskins/lockbox/internal/ops"
	"github.com/spf13/cobra"
)

var copyCmd = &cobra.Command{
	Use:     "copy <account>",
	Aliases: []string{"cp"},
	Short:   "Copy a password to the system clipboard",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withIndex(func(cfg *config.Config, ix *index.Index) error {
			sink := clipboard.New(cfg.ClipboardCommand)
			return ops.Copy(ix, sink, args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}
