package main

import (
	"github.com/benaskins/lockbox/internal/config"
	"github.com/benaskins/lockbox/internal/index"
	"github.com/benaskins/lockbox/internal/ops"
	"github.com/benaskins/lockbox/internal/password"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new <account>",
	Short: "Generate and store a new password",
	Long: `Generate a password and store it under the account name.

Modes:
  hex     hex-encoded random bytes (default)
  base64  URL-safe base64-encoded random bytes
  xkcd    words drawn from the system word list; strength grows with the
          list size, so prefer a large list
  lame    letters, digits, and punctuation, at least one of each

Length counts bytes for hex and base64, words for xkcd, and characters
for lame.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		length, _ := cmd.Flags().GetInt("length")
		mode, _ := cmd.Flags().GetString("mode")
		force, _ := cmd.Flags().GetBool("force")

		return withIndex(func(cfg *config.Config, ix *index.Index) error {
			if !cmd.Flags().Changed("length") && cfg.DefaultLength > 0 {
				length = cfg.DefaultLength
			}
			if !cmd.Flags().Changed("mode") && cfg.DefaultMode != "" {
				mode = cfg.DefaultMode
			}

			gen := &password.Generator{WordList: cfg.WordList}
			return ops.New(ix, gen, ops.NewOptions{
				Account: args[0],
				Mode:    mode,
				Length:  length,
				Force:   force,
			})
		})
	},
}

func init() {
	newCmd.Flags().IntP("length", "l", 32, "length in bytes, words, or characters depending on mode")
	newCmd.Flags().StringP("mode", "m", "hex", "generation mode: xkcd, hex, base64, or lame")
	newCmd.Flags().BoolP("force", "f", false, "overwrite an existing password")
	rootCmd.AddCommand(newCmd)
}
