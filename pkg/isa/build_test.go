package isa

import (
	"errors"
	"testing"
)

func TestBuild_MatchesTypedConstructors(t *testing.T) {
	tests := []struct {
		name   string
		op     Opcode
		fields []uint32
		want   Instruction
	}{
		{"NOOP", OpNOOP, nil, Noop()},
		{"RET", OpRET, []uint32{13}, Ret(RegRet)},
		{"MOVE", OpMOVE, []uint32{16, 17}, Move(NewRegID(16), NewRegID(17))},
		{"MCP", OpMCP, []uint32{1, 2, 3}, Mcp(NewRegID(1), NewRegID(2), NewRegID(3))},
		{"MEQ", OpMEQ, []uint32{1, 2, 3, 4}, Meq(NewRegID(1), NewRegID(2), NewRegID(3), NewRegID(4))},
		{"LW", OpLW, []uint32{16, 5, 4095}, Lw(NewRegID(16), RegSP, NewImm12(4095))},
		{"JNZI", OpJNZI, []uint32{16, 262_143}, Jnzi(NewRegID(16), NewImm18(262_143))},
		{"CFEI", OpCFEI, []uint32{64}, Cfei(NewImm24(64))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.op, tt.fields...)
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name   string
		op     Opcode
		fields []uint32
		want   error
	}{
		{"too few", OpADD, []uint32{1, 2}, ErrOperandCount},
		{"too many", OpNOOP, []uint32{1}, ErrOperandCount},
		{"register overflow", OpMOVE, []uint32{64, 1}, ErrOperandRange},
		{"imm12 overflow", OpADDI, []uint32{1, 2, 4096}, ErrOperandRange},
		{"imm18 overflow", OpMOVI, []uint32{1, 262_144}, ErrOperandRange},
		{"imm24 overflow", OpJI, []uint32{16_777_216}, ErrOperandRange},
		{"unregistered", Opcode(0xFF), nil, ErrInvalidOpcode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.op, tt.fields...)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestMustBuild_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustBuild(OpADD)
}

func TestFields_PerShape(t *testing.T) {
	in := Logd(NewRegID(1), NewRegID(2), NewRegID(3), NewRegID(4))
	got := Fields(in)
	want := []uint32{1, 2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field %d: expected %d, got %d", i, want[i], got[i])
		}
	}

	if Fields(Noop()) != nil {
		t.Error("expected no fields for NOOP")
	}
}
