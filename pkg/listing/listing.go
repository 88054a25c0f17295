// Package listing exports decoded programs as tabular listings.
//
// A listing has one row per instruction with the columns index, word,
// opcode, mnemonic, shape and text. The word column holds the full
// big-endian instruction word and is enough to rebuild the program; the
// remaining columns are for people and downstream tooling.
package listing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	dataframe "github.com/rocketlaunchr/dataframe-go"
	"github.com/rocketlaunchr/dataframe-go/exports"
	"github.com/xitongsys/parquet-go-source/local"

	"github.com/akhildatla/isa/pkg/isa"
	"github.com/akhildatla/isa/pkg/program"
)

// Column names.
const (
	ColIndex    = "index"
	ColWord     = "word"
	ColOpcode   = "opcode"
	ColMnemonic = "mnemonic"
	ColShape    = "shape"
	ColText     = "text"
)

// Supported output formats.
const (
	FormatCSV     = "csv"
	FormatJSON    = "json"
	FormatParquet = "parquet"
)

var ErrUnknownFormat = errors.New("unknown listing format")

// Frame builds the listing of p.
func Frame(p *program.Program) *dataframe.DataFrame {
	n := len(p.Code)
	index := make([]interface{}, n)
	words := make([]interface{}, n)
	opcodes := make([]interface{}, n)
	mnemonics := make([]interface{}, n)
	shapes := make([]interface{}, n)
	texts := make([]interface{}, n)

	for i, in := range p.Code {
		op := in.Opcode()
		index[i] = int64(i)
		words[i] = int64(isa.EncodeWord(in))
		opcodes[i] = fmt.Sprintf("0x%02X", op.Byte())
		mnemonics[i] = op.String()
		shapes[i] = op.Shape().String()
		texts[i] = isa.Format(in)
	}

	return dataframe.NewDataFrame(
		dataframe.NewSeriesInt64(ColIndex, &dataframe.SeriesInit{Capacity: n}, index...),
		dataframe.NewSeriesInt64(ColWord, &dataframe.SeriesInit{Capacity: n}, words...),
		dataframe.NewSeriesString(ColOpcode, &dataframe.SeriesInit{Capacity: n}, opcodes...),
		dataframe.NewSeriesString(ColMnemonic, &dataframe.SeriesInit{Capacity: n}, mnemonics...),
		dataframe.NewSeriesString(ColShape, &dataframe.SeriesInit{Capacity: n}, shapes...),
		dataframe.NewSeriesString(ColText, &dataframe.SeriesInit{Capacity: n}, texts...),
	)
}

// WriteCSV writes the listing of p as CSV with a header row.
func WriteCSV(w io.Writer, p *program.Program) error {
	if err := exports.ExportToCSV(context.Background(), w, Frame(p)); err != nil {
		return fmt.Errorf("exporting CSV: %w", err)
	}
	return nil
}

// WriteJSON writes the listing of p as JSON, one object per row.
func WriteJSON(w io.Writer, p *program.Program) error {
	if err := exports.ExportToJSON(context.Background(), w, Frame(p)); err != nil {
		return fmt.Errorf("exporting JSON: %w", err)
	}
	return nil
}

// WriteParquet writes the listing of p to a Parquet file at path.
func WriteParquet(path string, p *program.Program) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := exports.ExportToParquet(context.Background(), fw, Frame(p)); err != nil {
		return fmt.Errorf("exporting Parquet: %w", err)
	}
	return nil
}

// FormatFromPath picks a listing format from the file extension.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case FormatCSV, FormatJSON, FormatParquet:
		return ext, nil
	case "jsonl":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// WriteFile writes the listing of p to path in the given format. An empty
// format is inferred from the extension.
func WriteFile(path, format string, p *program.Program) error {
	if format == "" {
		f, err := FormatFromPath(path)
		if err != nil {
			return err
		}
		format = f
	}

	switch strings.ToLower(format) {
	case FormatParquet:
		return WriteParquet(path, p)
	case FormatCSV, FormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if strings.ToLower(format) == FormatCSV {
		err = WriteCSV(f, p)
	} else {
		err = WriteJSON(f, p)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
