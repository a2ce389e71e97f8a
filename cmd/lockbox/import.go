package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/benaskins/lockbox/internal/config"
	"github.com/benaskins/lockbox/internal/index"
	"github.com/benaskins/lockbox/internal/ops"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var importCmd = &cobra.Command{
	Use:   "import <account>",
	Short: "Store an existing password",
	Long:  "Store an existing password. Reads a single line from the given file, or from stdin when the path is \"-\" (the default). Prompts without echo when stdin is a terminal.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		source, _ := cmd.Flags().GetString("password")

		return withIndex(func(cfg *config.Config, ix *index.Index) error {
			opts := ops.ImportOptions{
				Account: args[0],
				Source:  source,
				Force:   force,
				Stdin:   os.Stdin,
			}

			if source == "-" && term.IsTerminal(int(os.Stdin.Fd())) {
				fmt.Fprint(os.Stderr, "Enter password: ")
				b, err := term.ReadPassword(int(os.Stdin.Fd()))
				if err != nil {
					return fmt.Errorf("reading password: %w", err)
				}
				fmt.Fprintln(os.Stderr)
				opts.Stdin = strings.NewReader(string(b))
			}

			return ops.Import(ix, opts)
		})
	},
}

func init() {
	importCmd.Flags().BoolP("force", "f", false, "overwrite an existing password")
	importCmd.Flags().StringP("password", "p", "-", "password file, or - for standard input")
	rootCmd.AddCommand(importCmd)
}
