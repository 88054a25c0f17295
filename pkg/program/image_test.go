package program

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/akhildatla/isa/pkg/isa"
)

func TestSerializeDeserialize(t *testing.T) {
	p := sample()

	data, err := Serialize(p)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	if string(data[:4]) != ImageMagic {
		t.Errorf("expected magic %q, got %q", ImageMagic, string(data[:4]))
	}
	if v := binary.BigEndian.Uint16(data[4:6]); v != ImageVersion {
		t.Errorf("expected version %d, got %d", ImageVersion, v)
	}
	if n := binary.BigEndian.Uint32(data[6:10]); n != uint32(len(p.Code)) {
		t.Errorf("expected count %d, got %d", len(p.Code), n)
	}
	if len(data) != 10+len(p.Code)*isa.InstructionSize {
		t.Errorf("unexpected image length %d", len(data))
	}

	restored, err := Deserialize(data)
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	for i := range p.Code {
		if restored.Code[i] != p.Code[i] {
			t.Errorf("instruction %d: expected %v, got %v", i, p.Code[i], restored.Code[i])
		}
	}
}

func TestSerialize_Empty(t *testing.T) {
	data, err := Serialize(New())
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	restored, err := Deserialize(data)
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if len(restored.Code) != 0 {
		t.Errorf("expected empty program, got %d instructions", len(restored.Code))
	}
}

func TestDeserialize_Errors(t *testing.T) {
	valid, err := Serialize(sample())
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	badMagic := append([]byte("XXXX"), valid[4:]...)

	badVersion := append([]byte(nil), valid...)
	binary.BigEndian.PutUint16(badVersion[4:6], 9)

	short := append([]byte(nil), valid[:len(valid)-2]...)

	badOpcode := append([]byte(nil), valid...)
	badOpcode[10] = 0xFF

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"bad magic", badMagic, ErrInvalidMagic},
		{"bad version", badVersion, ErrInvalidVersion},
		{"truncated", short, ErrTruncated},
		{"bad opcode", badOpcode, isa.ErrInvalidOpcode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Deserialize(tt.data)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := Deserialize([]byte("RV")); err == nil {
		t.Error("expected error for short header")
	}
}

func TestDisassemble(t *testing.T) {
	out := Disassemble(sample())

	for _, want := range []string{
		"; 5 instructions, 20 bytes",
		"0000: 7240000A  MOVI $r16, 10",
		"0001: 504503E8  ADDI $r17, $r16, 1000",
		"0004: 01480000  RET $r18",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestDisassembleRaw_InvalidWords(t *testing.T) {
	raw := []byte{
		0x50, 0x0C, 0x73, 0xE8,
		0xFF, 0x00, 0x00, 0x01,
		0x00, 0x00,
	}
	out := DisassembleRaw(raw)

	for _, want := range []string{
		"0000: 500C73E8  ADDI $pc, $hp, 1000",
		"0001: FF000001  .word 0xFF000001 ; invalid opcode 0xFF",
		"; 2 trailing bytes ignored",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}
