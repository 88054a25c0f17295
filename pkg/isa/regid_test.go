package isa

import "testing"

func TestNewRegID_Masks(t *testing.T) {
	tests := []struct {
		in   uint8
		want uint8
	}{
		{0, 0},
		{17, 17},
		{63, 63},
		{64, 0},
		{65, 1},
		{255, 63},
	}

	for _, tt := range tests {
		if got := NewRegID(tt.in).Value(); got != tt.want {
			t.Errorf("NewRegID(%d): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestNewRegIDChecked(t *testing.T) {
	if r, ok := NewRegIDChecked(63); !ok || r.Value() != 63 {
		t.Errorf("expected 63 to be accepted, got %v, %v", r, ok)
	}
	if _, ok := NewRegIDChecked(64); ok {
		t.Error("expected 64 to be rejected")
	}
}

func TestImmediates_Mask(t *testing.T) {
	if got := NewImm12(0xFFFF).Value(); got != Imm12Mask {
		t.Errorf("Imm12: expected %d, got %d", Imm12Mask, got)
	}
	if got := NewImm18(0xFFFFFFFF).Value(); got != Imm18Mask {
		t.Errorf("Imm18: expected %d, got %d", Imm18Mask, got)
	}
	if got := NewImm24(0xFFFFFFFF).Value(); got != Imm24Mask {
		t.Errorf("Imm24: expected %d, got %d", Imm24Mask, got)
	}
	if got := NewImm24(16_777_216 + 5).Value(); got != 5 {
		t.Errorf("Imm24 wrap: expected 5, got %d", got)
	}
}

func TestImmediates_Checked(t *testing.T) {
	if _, ok := NewImm12Checked(4095); !ok {
		t.Error("expected 4095 to fit in 12 bits")
	}
	if _, ok := NewImm12Checked(4096); ok {
		t.Error("expected 4096 to be rejected for 12 bits")
	}
	if _, ok := NewImm18Checked(262143); !ok {
		t.Error("expected 262143 to fit in 18 bits")
	}
	if _, ok := NewImm18Checked(262144); ok {
		t.Error("expected 262144 to be rejected for 18 bits")
	}
	if _, ok := NewImm24Checked(16_777_215); !ok {
		t.Error("expected 16777215 to fit in 24 bits")
	}
	if _, ok := NewImm24Checked(16_777_216); ok {
		t.Error("expected 16777216 to be rejected for 24 bits")
	}
}

func TestRegID_Equality(t *testing.T) {
	seen := map[RegID]int{}
	seen[NewRegID(5)]++
	seen[NewRegID(5+64)]++
	if seen[RegSP] != 2 {
		t.Errorf("expected masked registers to collide with $sp, got %v", seen)
	}
}

func TestRegID_String(t *testing.T) {
	tests := []struct {
		reg  RegID
		want string
	}{
		{RegZero, "$zero"},
		{RegSP, "$sp"},
		{RegFlag, "$flag"},
		{RegWritable, "$r16"},
		{NewRegID(63), "$r63"},
	}

	for _, tt := range tests {
		if got := tt.reg.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestRegIDFromName(t *testing.T) {
	tests := []struct {
		name string
		want uint8
		ok   bool
	}{
		{"$sp", 5, true},
		{"sp", 5, true},
		{"$r20", 20, true},
		{"r63", 63, true},
		{"r64", 0, false},
		{"r007", 0, false},
		{"$bogus", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := RegIDFromName(tt.name)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && r.Value() != tt.want {
				t.Errorf("expected %d, got %d", tt.want, r.Value())
			}
		})
	}
}

func TestRegID_IsReserved(t *testing.T) {
	if !RegFlag.IsReserved() {
		t.Error("expected $flag to be reserved")
	}
	if RegWritable.IsReserved() {
		t.Error("expected $r16 to be writable")
	}
}
