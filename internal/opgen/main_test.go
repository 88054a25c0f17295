package main

import (
	"strings"
	"testing"
)

func TestValidate_Table(t *testing.T) {
	if err := validate(table); err != nil {
		t.Fatalf("opcode table invalid: %v", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		groups []group
		want   string
	}{
		{
			name: "duplicate byte",
			groups: []group{{title: "x", ops: []opcode{
				{0x10, "ADD", "RRR", "Adds."},
				{0x10, "SUB", "RRR", "Subtracts."},
			}}},
			want: "assigned to both ADD and SUB",
		},
		{
			name: "duplicate mnemonic",
			groups: []group{
				{title: "x", ops: []opcode{{0x10, "ADD", "RRR", "Adds."}}},
				{title: "y", ops: []opcode{{0x11, "ADD", "RRR", "Adds."}}},
			},
			want: "duplicate mnemonic ADD",
		},
		{
			name:   "unknown shape",
			groups: []group{{title: "x", ops: []opcode{{0x10, "ADD", "RRRRR", "Adds."}}}},
			want:   "unknown shape",
		},
		{
			name:   "missing doc",
			groups: []group{{title: "x", ops: []opcode{{0x10, "ADD", "RRR", ""}}}},
			want:   "missing documentation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.groups)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestGenerate_EmitsEveryOpcode(t *testing.T) {
	src, err := generate(table)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	out := string(src)

	if !strings.HasPrefix(out, "// Code generated by opgen. DO NOT EDIT.") {
		t.Error("missing generated-code header")
	}
	for _, g := range table {
		for _, op := range g.ops {
			for _, want := range []string{
				"type " + op.name + " struct{ Args" + op.shape + " }",
				"case Op" + op.name + ":",
				"func New" + op.name + "(",
			} {
				if !strings.Contains(out, want) {
					t.Errorf("%s: output missing %q", op.name, want)
				}
			}
		}
	}
}

func TestJoinParams(t *testing.T) {
	tests := []struct {
		shape string
		want  string
	}{
		{"None", ""},
		{"R", "ra RegID"},
		{"RRRR", "ra, rb, rc, rd RegID"},
		{"RRI12", "ra, rb RegID, imm Imm12"},
		{"RI18", "ra RegID, imm Imm18"},
		{"I24", "imm Imm24"},
	}

	for _, tt := range tests {
		if got := joinParams(shapes[tt.shape]); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.shape, tt.want, got)
		}
	}
}

func TestView_FuncName(t *testing.T) {
	v := view(opcode{0x50, "ADDI", "RRI12", "Adds register B and the immediate into register A."})
	if v.Func != "Addi" {
		t.Errorf("expected Addi, got %s", v.Func)
	}
	if v.Article != "an" {
		t.Errorf("expected article an, got %s", v.Article)
	}
	if v.TypeDoc != "adds register B and the immediate into register A." {
		t.Errorf("unexpected type doc %q", v.TypeDoc)
	}
}
