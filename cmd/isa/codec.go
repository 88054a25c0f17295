package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akhildatla/isa/internal/logging"
	"github.com/akhildatla/isa/pkg/isa"
	"github.com/akhildatla/isa/pkg/listing"
	"github.com/akhildatla/isa/pkg/loader"
	"github.com/akhildatla/isa/pkg/program"
	"github.com/akhildatla/isa/pkg/repl"
)

func newDecodeCmd() *cobra.Command {
	var fields bool

	cmd := &cobra.Command{
		Use:   "decode <hex word>...",
		Short: "Decode instruction words",
		Example: `  isa decode 500C73E8
  isa decode 0x7253FFFF 01480000
  isa decode --fields 500C73E8`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := repl.ParseWords(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, w := range words {
				in, err := isa.DecodeWord(w)
				if err != nil {
					return fmt.Errorf("word %d (%08X): %w", i, w, err)
				}
				slog.Log(cmd.Context(), logging.LevelTrace, "decoded", "index", i, "opcode", in.Opcode().String())
				if fields {
					fmt.Fprintf(out, "%08X  %-5s %-6s %v\n", w, in.Opcode(), in.Opcode().Shape(), isa.Fields(in))
					continue
				}
				fmt.Fprintf(out, "%08X  %s\n", w, isa.Format(in))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&fields, "fields", false, "print raw field values instead of assembly text")
	return cmd
}

func newEncodeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "encode <MNEMONIC> [field]...",
		Short: "Encode one instruction from its operand fields",
		Example: `  isa encode ADDI '$r16' '$sp' 1000
  isa encode MOVI r20 0x3FFFF
  isa encode RET 13 -o ret.bin`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := repl.Assemble(args)
			if err != nil {
				return err
			}
			b := isa.Encode(in)
			if output != "" {
				if err := writeProgram(output, program.New(in)); err != nil {
					return err
				}
				slog.Info("wrote instruction", "path", output)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%08X  % X  %s\n", isa.EncodeWord(in), b[:], isa.Format(in))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "also write the instruction to a .bin or .rvmi file")
	return cmd
}

func newDisasmCmd() *cobra.Command {
	var lenient bool

	cmd := &cobra.Command{
		Use:   "disasm <file>",
		Short: "Disassemble a program file (.bin, .rvmi or listing)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if lenient && strings.EqualFold(filepath.Ext(path), loader.ExtRaw) {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), program.DisassembleRaw(data))
				return nil
			}

			p, err := loadProgram(path)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), program.Disassemble(p))
			return nil
		},
	}
	cmd.Flags().BoolVar(&lenient, "lenient", false, "list undecodable raw words as data instead of failing")
	return cmd
}

func newStatsCmd() *cobra.Command {
	var chart string

	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Count opcode and shape usage in a program file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProgram(args[0])
			if err != nil {
				return err
			}
			if chart != "" {
				if err := writeChart(chart, p); err != nil {
					return err
				}
				slog.Info("wrote chart", "path", chart)
			}
			st := p.Stats()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Instructions: %d\n", st.Instructions)
			fmt.Fprintln(out, "Opcodes:")
			for _, c := range st.Opcodes {
				fmt.Fprintf(out, "  %-5s %d\n", c.Opcode, c.Count)
			}
			fmt.Fprintln(out, "Shapes:")
			for _, s := range isa.Shapes() {
				if n := st.Shapes[s]; n > 0 {
					fmt.Fprintf(out, "  %-6s %d\n", s, n)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&chart, "chart", "", "also write an HTML usage chart to this file")
	return cmd
}

func writeChart(path string, p *program.Program) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = listing.WriteChart(f, p)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func loadProgram(path string) (*program.Program, error) {
	p, err := loader.LoadFile(path)
	if err != nil {
		slog.Debug("load failed", "path", path, "err", err)
		return nil, err
	}
	slog.Info("loaded program", "path", path, "instructions", len(p.Code))
	return p, nil
}
