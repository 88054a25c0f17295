// Package loader reads instruction listings back into programs.
//
// Listings are the tables written by the listing package. Only the word
// column is needed to rebuild a program, so hand-written tables holding a
// single word column load as well.
package loader

import (
	"context"
	"errors"
	"fmt"
	"os"

	dataframe "github.com/rocketlaunchr/dataframe-go"
	"github.com/rocketlaunchr/dataframe-go/imports"
)

var (
	ErrEmptyFile = errors.New("empty listing")
	ErrNoHeader  = errors.New("listing has no header")
)

// LoadCSV reads a CSV listing.
// - First row is header (column names)
// - Column types are inferred, so decimal words load as int64
// - Hex words ("0x500C73E8") load as strings and are parsed later
func LoadCSV(path string) (*dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}

	df, err := imports.LoadFromCSV(context.Background(), file, imports.CSVLoadOptions{
		InferDataTypes: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if df == nil || len(df.Series) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoHeader)
	}

	return df, nil
}
