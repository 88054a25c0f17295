package isa

import (
	"errors"
	"testing"
)

// sampleFields returns a few field tuples for op covering zero, maximum and
// mixed values.
func sampleFields(op Opcode) [][]uint32 {
	widths := op.Shape().FieldBits()
	zero := make([]uint32, len(widths))
	full := make([]uint32, len(widths))
	mixed := make([]uint32, len(widths))
	for i, w := range widths {
		full[i] = 1<<uint(w) - 1
		mixed[i] = uint32(i*17+5) & (1<<uint(w) - 1)
	}
	return [][]uint32{zero, full, mixed}
}

func TestInstruction_RoundTripAllOpcodes(t *testing.T) {
	for _, op := range Opcodes() {
		t.Run(op.String(), func(t *testing.T) {
			for _, fields := range sampleFields(op) {
				in, err := Build(op, fields...)
				if err != nil {
					t.Fatalf("Build(%v): %v", fields, err)
				}
				if in.Opcode() != op {
					t.Fatalf("expected opcode %s, got %s", op, in.Opcode())
				}

				raw := Encode(in)
				if raw[0] != op.Byte() {
					t.Errorf("expected opcode byte 0x%02X, got 0x%02X", op.Byte(), raw[0])
				}
				if raw != in.Bytes() {
					t.Errorf("Encode and Bytes disagree: % X vs % X", raw, in.Bytes())
				}

				back, err := Decode(raw)
				if err != nil {
					t.Fatalf("Decode(% X): %v", raw, err)
				}
				if back != in {
					t.Errorf("decode(encode(i)) != i: %v vs %v", back, in)
				}
				if Encode(back) != raw {
					t.Errorf("encode(decode(b)) != b for % X", raw)
				}

				got := Fields(back)
				if len(got) != len(fields) {
					t.Fatalf("expected %d fields, got %d", len(fields), len(got))
				}
				for i := range fields {
					if got[i] != fields[i] {
						t.Errorf("field %d: expected %d, got %d", i, fields[i], got[i])
					}
				}
			}
		})
	}
}

func TestDecode_ZeroWordIsNoop(t *testing.T) {
	in, err := Decode([4]byte{0x00, 0x00, 0x00, 0x00})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if _, ok := in.(NOOP); !ok {
		t.Fatalf("expected NOOP, got %T", in)
	}
	if in != Noop() {
		t.Errorf("expected zero-valued NOOP, got %v", in)
	}
}

func TestDecode_InvalidOpcode(t *testing.T) {
	in, err := Decode([4]byte{0xFF, 0x00, 0x00, 0x00})
	if !errors.Is(err, ErrInvalidOpcode) {
		t.Fatalf("expected ErrInvalidOpcode, got %v", err)
	}
	if in != nil {
		t.Errorf("expected nil instruction, got %v", in)
	}
}

func TestDecode_ReservedBitsCleared(t *testing.T) {
	tests := []struct {
		name string
		raw  [4]byte
		want [4]byte
	}{
		{"R", [4]byte{byte(OpJMP), 0x07, 0xFF, 0xFF}, [4]byte{byte(OpJMP), 0x04, 0x00, 0x00}},
		{"RR", [4]byte{byte(OpMOVE), 0x07, 0xFF, 0xFF}, [4]byte{byte(OpMOVE), 0x07, 0xF0, 0x00}},
		{"RRR", [4]byte{byte(OpADD), 0x07, 0xFF, 0xFF}, [4]byte{byte(OpADD), 0x07, 0xFF, 0xC0}},
		{"None", [4]byte{byte(OpNOOP), 0xAA, 0xBB, 0xCC}, [4]byte{byte(OpNOOP), 0x00, 0x00, 0x00}},
		{"RRRR", [4]byte{byte(OpMLDV), 0x07, 0xFF, 0xFF}, [4]byte{byte(OpMLDV), 0x07, 0xFF, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := Decode(tt.raw)
			if err != nil {
				t.Fatalf("expected lenient decode, got %v", err)
			}
			if got := Encode(in); got != tt.want {
				t.Errorf("expected % X, got % X", tt.want, got)
			}
		})
	}

	// Words that differ only in reserved bits decode to equal instructions.
	a, _ := Decode([4]byte{byte(OpJMP), 0x04, 0x00, 0x00})
	b, _ := Decode([4]byte{byte(OpJMP), 0x04, 0x12, 0x34})
	if a != b {
		t.Errorf("expected equal instructions, got %v and %v", a, b)
	}
}

func TestWord_BigEndian(t *testing.T) {
	in := Addi(NewRegID(3), NewRegID(7), NewImm12(1000))
	if got := in.Word(); got != 0x500C73E8 {
		t.Errorf("expected 0x500C73E8, got 0x%08X", got)
	}
	if got := EncodeWord(in); got != 0x500C73E8 {
		t.Errorf("expected 0x500C73E8, got 0x%08X", got)
	}

	back, err := DecodeWord(0x500C73E8)
	if err != nil {
		t.Fatalf("DecodeWord failed: %v", err)
	}
	if back != in {
		t.Errorf("expected %v, got %v", in, back)
	}
}

func TestInstruction_TypedAccess(t *testing.T) {
	in, err := Decode(Movi(NewRegID(20), NewImm18(123_456)).Bytes())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	switch v := in.(type) {
	case MOVI:
		ra, imm := v.Unpack()
		if ra.Value() != 20 || imm.Value() != 123_456 {
			t.Errorf("expected (20, 123456), got (%d, %d)", ra.Value(), imm.Value())
		}
		if v.RA() != ra || v.Imm18() != imm {
			t.Error("accessors disagree with Unpack")
		}
	default:
		t.Fatalf("expected MOVI, got %T", in)
	}
}

func TestInstruction_PerOpcodeConversions(t *testing.T) {
	add := NewADD(NewRegID(16), NewRegID(17), NewRegID(18))

	if add.Opcode() != OpADD {
		t.Errorf("expected ADD, got %s", add.Opcode())
	}
	if got := add.Operands(); got != PackRRR(NewRegID(16), NewRegID(17), NewRegID(18)) {
		t.Errorf("unexpected operands % X", got)
	}
	if got := add.Bytes(); got[0] != byte(OpADD) {
		t.Errorf("expected opcode byte first, got % X", got)
	}

	var in Instruction = add
	if in != Add(NewRegID(16), NewRegID(17), NewRegID(18)) {
		t.Error("named constructor and type constructor disagree")
	}
	if in == Instruction(NewSUB(NewRegID(16), NewRegID(17), NewRegID(18))) {
		t.Error("instructions with different opcodes compared equal")
	}
}

func TestInstruction_String(t *testing.T) {
	tests := []struct {
		in   Instruction
		want string
	}{
		{Noop(), "NOOP"},
		{Add(NewRegID(16), RegSP, RegOne), "ADD $r16, $sp, $one"},
		{Addi(NewRegID(20), RegZero, NewImm12(1000)), "ADDI $r20, $zero, 1000"},
		{Movi(NewRegID(21), NewImm18(7)), "MOVI $r21, 7"},
		{Ji(NewImm24(16_777_215)), "JI 16777215"},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
