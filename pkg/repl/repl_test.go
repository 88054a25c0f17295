package repl

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/akhildatla/isa/internal/testutil"
	"github.com/akhildatla/isa/pkg/isa"
	"github.com/akhildatla/isa/pkg/program"
)

func TestREPL_New(t *testing.T) {
	r := New()
	if r == nil {
		t.Fatal("New returned nil")
	}
	if len(r.Program().Code) != 0 {
		t.Errorf("expected empty program, got %d instructions", len(r.Program().Code))
	}
}

func TestREPL_Help(t *testing.T) {
	r := New()
	var out bytes.Buffer

	for _, cmd := range []string{"help", "h", "?"} {
		out.Reset()
		if r.Exec(cmd, &out) {
			t.Errorf("expected %q not to quit", cmd)
		}
		if !strings.Contains(out.String(), "ISA REPL Commands") {
			t.Errorf("expected help text, got: %s", out.String())
		}
	}
}

func TestREPL_Quit(t *testing.T) {
	r := New()
	var out bytes.Buffer

	for _, cmd := range []string{"quit", "exit", "q", "QUIT"} {
		out.Reset()
		if !r.Exec(cmd, &out) {
			t.Errorf("expected %q to quit", cmd)
		}
		if !strings.Contains(out.String(), "Goodbye") {
			t.Errorf("expected goodbye message, got: %s", out.String())
		}
	}
}

func TestREPL_Decode(t *testing.T) {
	r := New()
	var out bytes.Buffer

	r.Exec("decode 500C73E8 0x00000000", &out)

	got := out.String()
	for _, want := range []string{"500C73E8  ADDI $pc, $hp, 1000", "00000000  NOOP"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output, got: %s", want, got)
		}
	}
	if len(r.Program().Code) != 2 {
		t.Errorf("expected 2 instructions in program, got %d", len(r.Program().Code))
	}
}

func TestREPL_DecodeErrors(t *testing.T) {
	r := New()
	var out bytes.Buffer

	r.Exec("decode FF000000", &out)
	if !strings.Contains(out.String(), "invalid opcode 0xFF") {
		t.Errorf("expected invalid opcode error, got: %s", out.String())
	}

	out.Reset()
	r.Exec("decode xyz", &out)
	if !strings.Contains(out.String(), "Error:") {
		t.Errorf("expected parse error, got: %s", out.String())
	}

	out.Reset()
	r.Exec("decode", &out)
	if !strings.Contains(out.String(), "Usage: decode") {
		t.Errorf("expected usage, got: %s", out.String())
	}

	if len(r.Program().Code) != 0 {
		t.Errorf("expected failed decodes to leave the program empty, got %d", len(r.Program().Code))
	}
}

func TestREPL_Encode(t *testing.T) {
	r := New()
	var out bytes.Buffer

	r.Exec("encode ADDI $pc, $hp, 1000", &out)
	if !strings.Contains(out.String(), "500C73E8  50 0C 73 E8  ADDI $pc, $hp, 1000") {
		t.Errorf("unexpected output: %s", out.String())
	}

	out.Reset()
	r.Exec("encode addi 3 7 4096", &out)
	if !strings.Contains(out.String(), "out of range") {
		t.Errorf("expected range error, got: %s", out.String())
	}

	if len(r.Program().Code) != 1 {
		t.Errorf("expected 1 instruction in program, got %d", len(r.Program().Code))
	}
}

func TestREPL_Info(t *testing.T) {
	r := New()
	var out bytes.Buffer

	r.Exec("info jnzi", &out)
	got := out.String()
	for _, want := range []string{"JNZI  0x73  RI18", "layout: opcode[31:24] ra[23:18] imm[17:0]"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output, got: %s", want, got)
		}
	}

	out.Reset()
	r.Exec("info BOGUS", &out)
	if !strings.Contains(out.String(), "unknown mnemonic") {
		t.Errorf("expected unknown mnemonic error, got: %s", out.String())
	}
}

func TestREPL_Opcodes(t *testing.T) {
	r := New()
	var out bytes.Buffer

	r.Exec("opcodes", &out)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(isa.Opcodes()) {
		t.Errorf("expected %d lines, got %d", len(isa.Opcodes()), len(lines))
	}

	out.Reset()
	r.Exec("opcodes i24", &out)
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if !strings.Contains(line, " I24 ") {
			t.Errorf("expected only I24 opcodes, got line %q", line)
		}
	}
}

func TestREPL_LoadList(t *testing.T) {
	r := New()
	var out bytes.Buffer

	path := testutil.TempBytes(t, program.EncodeRaw(testutil.SampleProgram()), ".bin")
	r.Exec("load "+path, &out)
	if !strings.Contains(out.String(), "Loaded 5 instructions") {
		t.Errorf("unexpected output: %s", out.String())
	}

	out.Reset()
	r.Exec("list", &out)
	if !strings.Contains(out.String(), "0004: 01480000  RET $r18") {
		t.Errorf("unexpected listing: %s", out.String())
	}

	out.Reset()
	r.Exec("clear", &out)
	if len(r.Program().Code) != 0 {
		t.Error("expected clear to empty the program")
	}

	out.Reset()
	r.Exec("load /nonexistent/file.bin", &out)
	if !strings.Contains(out.String(), "Error:") {
		t.Errorf("expected load error, got: %s", out.String())
	}
}

func TestREPL_History(t *testing.T) {
	r := New()
	var out bytes.Buffer

	r.Exec("decode 00000000", &out)
	r.Exec("info ADD", &out)
	out.Reset()
	r.Exec("history", &out)

	got := out.String()
	if !strings.Contains(got, "  1: decode 00000000") || !strings.Contains(got, "  2: info ADD") {
		t.Errorf("unexpected history: %s", got)
	}
	if strings.Contains(got, "history") {
		t.Errorf("expected history command itself not to be recorded: %s", got)
	}
}

func TestREPL_UnknownCommand(t *testing.T) {
	r := New()
	var out bytes.Buffer

	if r.Exec("frobnicate", &out) {
		t.Error("expected unknown command not to quit")
	}
	if !strings.Contains(out.String(), "Unknown command") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestREPL_Start(t *testing.T) {
	r := New()
	in := strings.NewReader("encode MOVI r20 0x3FFFF\nquit\ndecode 00000000\n")
	var out bytes.Buffer

	r.Start(in, &out)

	got := out.String()
	if !strings.Contains(got, "ISA REPL") {
		t.Errorf("expected banner, got: %s", got)
	}
	if !strings.Contains(got, "7253FFFF") {
		t.Errorf("expected encoded MOVI, got: %s", got)
	}
	// quit stops before the trailing decode
	if len(r.Program().Code) != 1 {
		t.Errorf("expected 1 instruction, got %d", len(r.Program().Code))
	}
}

func TestREPL_StartEOF(t *testing.T) {
	r := New()
	var out bytes.Buffer

	r.Start(strings.NewReader("decode 00000000"), &out)
	if len(r.Program().Code) != 1 {
		t.Errorf("expected 1 instruction, got %d", len(r.Program().Code))
	}
}

func TestParseWords(t *testing.T) {
	tests := []struct {
		args []string
		want []uint32
	}{
		{[]string{"500C73E8"}, []uint32{0x500C73E8}},
		{[]string{"0x500c_73e8"}, []uint32{0x500C73E8}},
		{[]string{"0"}, []uint32{0}},
		{[]string{"500C73E801480000"}, []uint32{0x500C73E8, 0x01480000}},
		{[]string{"1", "0x2"}, []uint32{1, 2}},
	}

	for _, tt := range tests {
		got, err := ParseWords(tt.args)
		if err != nil {
			t.Errorf("%v: unexpected error %v", tt.args, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("%v: expected %d words, got %d", tt.args, len(tt.want), len(got))
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%v: word %d expected 0x%08X, got 0x%08X", tt.args, i, tt.want[i], got[i])
			}
		}
	}

	for _, bad := range []string{"", "0x", "zz", "500C73E801"} {
		if _, err := ParseWords([]string{bad}); !errors.Is(err, ErrBadWord) {
			t.Errorf("%q: expected ErrBadWord, got %v", bad, err)
		}
	}
}

func TestAssemble(t *testing.T) {
	tests := []struct {
		args []string
		want isa.Instruction
	}{
		{[]string{"NOOP"}, isa.Noop()},
		{[]string{"ADDI", "$r16,", "$sp,", "1000"}, isa.Addi(isa.NewRegID(16), isa.RegSP, isa.NewImm12(1000))},
		{[]string{"addi", "r16,sp,0x3E8"}, isa.Addi(isa.NewRegID(16), isa.RegSP, isa.NewImm12(1000))},
		{[]string{"MEQ", "1", "2", "3", "4"}, isa.Meq(isa.NewRegID(1), isa.NewRegID(2), isa.NewRegID(3), isa.NewRegID(4))},
		{[]string{"JI", "0xFFFFFF"}, isa.Ji(isa.NewImm24(0xFFFFFF))},
	}

	for _, tt := range tests {
		got, err := Assemble(tt.args)
		if err != nil {
			t.Errorf("%v: unexpected error %v", tt.args, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%v: expected %v, got %v", tt.args, tt.want, got)
		}
	}
}

func TestAssemble_Errors(t *testing.T) {
	tests := []struct {
		args []string
		want error
	}{
		{nil, ErrUnknownMnemonic},
		{[]string{"BOGUS"}, ErrUnknownMnemonic},
		{[]string{"RET", "$nope"}, ErrBadOperand},
		{[]string{"RET", "r64"}, ErrBadOperand},
		{[]string{"ADDI", "1", "2", "x"}, ErrBadOperand},
		{[]string{"ADD", "1", "2"}, isa.ErrOperandCount},
		{[]string{"RET", "64"}, isa.ErrOperandRange},
	}

	for _, tt := range tests {
		if _, err := Assemble(tt.args); !errors.Is(err, tt.want) {
			t.Errorf("%v: expected %v, got %v", tt.args, tt.want, err)
		}
	}
}

func TestLayout(t *testing.T) {
	tests := []struct {
		shape isa.Shape
		want  string
	}{
		{isa.ShapeNone, "opcode[31:24] reserved[23:0]"},
		{isa.ShapeR, "opcode[31:24] ra[23:18] reserved[17:0]"},
		{isa.ShapeRRR, "opcode[31:24] ra[23:18] rb[17:12] rc[11:6] reserved[5:0]"},
		{isa.ShapeRRRR, "opcode[31:24] ra[23:18] rb[17:12] rc[11:6] rd[5:0]"},
		{isa.ShapeRRI12, "opcode[31:24] ra[23:18] rb[17:12] imm[11:0]"},
		{isa.ShapeI24, "opcode[31:24] imm[23:0]"},
	}

	for _, tt := range tests {
		if got := Layout(tt.shape); got != tt.want {
			t.Errorf("%v: expected %q, got %q", tt.shape, tt.want, got)
		}
	}
}
