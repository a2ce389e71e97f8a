package main

import (
	"os"

	"github.com/benaskins/lockbox/internal/config"
	"github.com/benaskins/lockbox/internal/index"
	"github.com/benaskins/lockbox/internal/ops"
	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print <account>",
	Short: "Write a password to standard output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chunk, _ := cmd.Flags().GetBool("chunk")

		return withIndex(func(cfg *config.Config, ix *index.Index) error {
			return ops.Print(os.Stdout, ix, ops.PrintOptions{
				Account: args[0],
				Chunk:   chunk,
			})
		})
	},
}

func init() {
	printCmd.Flags().BoolP("chunk", "c", false, "display in groups of four characters")
	rootCmd.AddCommand(printCmd)
}
