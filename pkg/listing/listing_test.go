package listing

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	dataframe "github.com/rocketlaunchr/dataframe-go"

	"github.com/akhildatla/isa/pkg/isa"
	"github.com/akhildatla/isa/pkg/program"
)

func sample() *program.Program {
	return program.New(
		isa.Addi(isa.NewRegID(3), isa.NewRegID(7), isa.NewImm12(1000)),
		isa.Movi(isa.NewRegID(16), isa.NewImm18(10)),
		isa.Noop(),
	)
}

func TestFrame_Columns(t *testing.T) {
	df := Frame(sample())

	if df.NRows() != 3 {
		t.Fatalf("expected 3 rows, got %d", df.NRows())
	}

	want := []string{ColIndex, ColWord, ColOpcode, ColMnemonic, ColShape, ColText}
	if len(df.Series) != len(want) {
		t.Fatalf("expected %d columns, got %d", len(want), len(df.Series))
	}
	for i, name := range want {
		if df.Series[i].Name() != name {
			t.Errorf("column %d: expected %s, got %s", i, name, df.Series[i].Name())
		}
	}

	if _, ok := df.Series[1].(*dataframe.SeriesInt64); !ok {
		t.Errorf("expected word column type SeriesInt64, got %T", df.Series[1])
	}
}

func TestFrame_Values(t *testing.T) {
	df := Frame(sample())

	tests := []struct {
		col  int
		row  int
		want interface{}
	}{
		{0, 2, int64(2)},
		{1, 0, int64(0x500C73E8)},
		{2, 0, "0x50"},
		{3, 1, "MOVI"},
		{4, 0, "RRI12"},
		{4, 2, "NONE"},
		{5, 0, "ADDI $pc, $hp, 1000"},
		{5, 2, "NOOP"},
	}

	for _, tt := range tests {
		if got := df.Series[tt.col].Value(tt.row); got != tt.want {
			t.Errorf("%s[%d]: expected %v, got %v", df.Series[tt.col].Name(), tt.row, tt.want, got)
		}
	}
}

func TestFrame_Empty(t *testing.T) {
	df := Frame(program.New())
	if df.NRows() != 0 {
		t.Errorf("expected 0 rows, got %d", df.NRows())
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sample()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and 3 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if lines[0] != "index,word,opcode,mnemonic,shape,text" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "0,1342993384,0x50,ADDI,RRI12,") {
		t.Errorf("unexpected first row %q", lines[1])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sample()); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"mnemonic":"MOVI"`, `"word":1342993384`, `"text":"NOOP"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in output:\n%s", want, out)
		}
	}
}

func TestWriteParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listing.parquet")
	if err := WriteParquet(path, sample()); err != nil {
		t.Fatalf("WriteParquet failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading parquet file: %v", err)
	}
	if len(data) < 8 || string(data[:4]) != "PAR1" || string(data[len(data)-4:]) != "PAR1" {
		t.Error("expected Parquet magic at both ends of the file")
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"out.csv", FormatCSV},
		{"out.JSON", FormatJSON},
		{"out.jsonl", FormatJSON},
		{"dir/out.parquet", FormatParquet},
	}

	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.path, tt.want, got)
		}
	}

	if _, err := FormatFromPath("out.txt"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "listing.csv")
	if err := WriteFile(csvPath, "", sample()); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	data, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatalf("reading csv: %v", err)
	}
	if !strings.HasPrefix(string(data), "index,word,") {
		t.Errorf("expected CSV header, got %q", string(data))
	}

	if err := WriteFile(filepath.Join(dir, "listing.out"), "xml", sample()); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestWriteChart(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteChart(&buf, sample()); err != nil {
		t.Fatalf("WriteChart failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"<html", "Opcode usage", "Operand shapes", "MOVI", "RRI12"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in chart page", want)
		}
	}
}
