package loader

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	dataframe "github.com/rocketlaunchr/dataframe-go"

	"github.com/akhildatla/isa/pkg/listing"
	"github.com/akhildatla/isa/pkg/program"
)

var (
	ErrNoWordColumn = errors.New("listing has no word column")
	ErrInvalidWord  = errors.New("invalid instruction word")
)

// Load reads the listing at path and rebuilds its program. An empty format
// is inferred from the extension.
func Load(path, format string) (*program.Program, error) {
	if format == "" {
		f, err := listing.FormatFromPath(path)
		if err != nil {
			return nil, err
		}
		format = f
	}

	var (
		df  *dataframe.DataFrame
		err error
	)
	switch strings.ToLower(format) {
	case listing.FormatCSV:
		df, err = LoadCSV(path)
	case listing.FormatJSON:
		df, err = LoadJSON(path)
	case listing.FormatParquet:
		df, err = LoadParquet(path)
	default:
		return nil, fmt.Errorf("%w: %q", listing.ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	return ProgramFromFrame(df)
}

// Image file extensions recognized by LoadFile.
const (
	ExtRaw   = ".bin"
	ExtImage = ".rvmi"
)

// LoadFile reads a program from path. Files ending in ExtRaw hold a flat
// instruction image, files ending in ExtImage hold the versioned container,
// and anything else is read as a listing.
func LoadFile(path string) (*program.Program, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtRaw:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return program.DecodeRaw(data)
	case ExtImage:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return program.Deserialize(data)
	}
	return Load(path, "")
}

// ProgramFromFrame decodes the word column of df, one instruction per row.
// Words may be integers or strings in any base strconv accepts ("0x..." for
// hex). Other columns are ignored.
func ProgramFromFrame(df *dataframe.DataFrame) (*program.Program, error) {
	col := wordColumn(df)
	if col == nil {
		return nil, ErrNoWordColumn
	}

	words := make([]uint32, col.NRows())
	for row := range words {
		w, err := toWord(col.Value(row))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		words[row] = w
	}
	return program.FromWords(words)
}

// wordColumn finds the word column by name, ignoring case and any schema
// path prefix added by Parquet round trips ("parquet_go_root.word").
func wordColumn(df *dataframe.DataFrame) dataframe.Series {
	for _, s := range df.Series {
		name := strings.ToLower(s.Name())
		if i := strings.LastIndexFunc(name, isSeparator); i >= 0 {
			name = name[i+1:]
		}
		if name == listing.ColWord {
			return s
		}
	}
	return nil
}

func isSeparator(r rune) bool {
	return r == '.' || r == '/' || r == '\x01'
}

func toWord(v interface{}) (uint32, error) {
	switch x := v.(type) {
	case nil:
		return 0, fmt.Errorf("%w: missing value", ErrInvalidWord)
	case int:
		return toWord(int64(x))
	case int32:
		return toWord(int64(x))
	case uint32:
		return x, nil
	case int64:
		if x < 0 || x > math.MaxUint32 {
			return 0, fmt.Errorf("%w: %d out of range", ErrInvalidWord, x)
		}
		return uint32(x), nil
	case float64:
		if x < 0 || x > math.MaxUint32 || x != math.Trunc(x) {
			return 0, fmt.Errorf("%w: %v", ErrInvalidWord, x)
		}
		return uint32(x), nil
	case string:
		n, err := strconv.ParseUint(strings.TrimSpace(x), 0, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidWord, x)
		}
		return uint32(n), nil
	case fmt.Stringer:
		return toWord(x.String())
	}
	return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidWord, v)
}
