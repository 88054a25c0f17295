// Package main provides the isa command, a codec tool for 32-bit register
// machine instruction words.
//
// Usage:
//
//	isa decode 500C73E8                 # Decode instruction words
//	isa encode ADDI '$r16' '$sp' 1000   # Encode one instruction
//	isa disasm program.bin              # Disassemble a program file
//	isa pack program.csv -o out.rvmi    # Convert to the image container
//	isa export program.bin -o out.csv   # Write a tabular listing
//	isa import out.parquet -o out.bin   # Rebuild a program from a listing
//	isa opcodes --tree                  # Show the opcode registry
//	isa repl                            # Interactive shell
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/akhildatla/isa/internal/logging"
)

// Version info set by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "isa",
		Short: "Encode, decode and inspect 32-bit instruction words",
		Long: `isa converts between typed instructions and their 4-byte big-endian
wire form: one opcode byte followed by 24 bits of operand fields.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Init(cmd.ErrOrStderr(), logLevel); err != nil {
				return err
			}
			slog.Debug("starting", "command", cmd.Name(), "version", version)
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")

	root.AddCommand(
		newDecodeCmd(),
		newEncodeCmd(),
		newDisasmCmd(),
		newStatsCmd(),
		newPackCmd(),
		newExportCmd(),
		newImportCmd(),
		newOpcodesCmd(),
		newReplCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "isa version %s\n", version)
			if commit != "none" {
				fmt.Fprintf(out, "  commit: %s\n", commit)
			}
			if date != "unknown" {
				fmt.Fprintf(out, "  built:  %s\n", date)
			}
		},
	}
}
