package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akhildatla/isa/pkg/listing"
	"github.com/akhildatla/isa/pkg/loader"
	"github.com/akhildatla/isa/pkg/program"
)

func newPackCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "pack <file>",
		Short: "Convert a program file to a flat image (.bin) or container (.rvmi)",
		Example: `  isa pack program.bin -o program.rvmi
  isa pack program.rvmi -o program.bin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProgram(args[0])
			if err != nil {
				return err
			}
			if err := writeProgram(output, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d instructions to %s\n", len(p.Code), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.bin or .rvmi)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func newExportCmd() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write a program as a CSV, JSON or Parquet listing",
		Example: `  isa export program.bin -o listing.csv
  isa export program.rvmi -o listing.out --format parquet`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProgram(args[0])
			if err != nil {
				return err
			}
			if err := listing.WriteFile(output, format, p); err != nil {
				return err
			}
			slog.Info("exported listing", "path", output, "rows", len(p.Code))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", len(p.Code), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "listing file")
	cmd.Flags().StringVar(&format, "format", "", "csv, json or parquet (default: from the file extension)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func newImportCmd() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "import <listing>",
		Short: "Rebuild a program from a CSV, JSON or Parquet listing",
		Example: `  isa import listing.csv -o program.bin
  isa import listing.out --format json -o program.rvmi`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loader.Load(args[0], format)
			if err != nil {
				return err
			}
			slog.Info("imported listing", "path", args[0], "instructions", len(p.Code))
			if err := writeProgram(output, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d instructions to %s\n", len(p.Code), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.bin or .rvmi)")
	cmd.Flags().StringVar(&format, "format", "", "csv, json or parquet (default: from the file extension)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

// writeProgram writes p as a flat image or a container, chosen by the
// extension of path.
func writeProgram(path string, p *program.Program) error {
	var data []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case loader.ExtRaw:
		data = program.EncodeRaw(p)
	case loader.ExtImage:
		var err error
		if data, err = program.Serialize(p); err != nil {
			return err
		}
	default:
		return fmt.Errorf("output %s: extension must be %s or %s", path, loader.ExtRaw, loader.ExtImage)
	}
	return os.WriteFile(path, data, 0644)
}
