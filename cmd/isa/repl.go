package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/akhildatla/isa/pkg/repl"
)

func newReplCmd() *cobra.Command {
	var (
		history string
		script  string
	)

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive decode/encode shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := repl.New()
			if script != "" {
				f, err := os.Open(script)
				if err != nil {
					return err
				}
				defer f.Close()
				r.Start(f, cmd.OutOrStdout())
				return nil
			}
			return r.StartInteractive(history)
		},
	}
	cmd.Flags().StringVar(&history, "history", "", "history file for the interactive shell")
	cmd.Flags().StringVar(&script, "script", "", "run commands from a file instead of the terminal")
	return cmd
}
