package isa

import "testing"

func TestShape_BitWidths(t *testing.T) {
	tests := []struct {
		shape    Shape
		used     int
		reserved int
		fields   int
	}{
		{ShapeNone, 0, 24, 0},
		{ShapeR, 6, 18, 1},
		{ShapeRR, 12, 12, 2},
		{ShapeRRR, 18, 6, 3},
		{ShapeRRRR, 24, 0, 4},
		{ShapeRRI12, 24, 0, 3},
		{ShapeRI18, 24, 0, 2},
		{ShapeI24, 24, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			if got := tt.shape.UsedBits(); got != tt.used {
				t.Errorf("used bits: expected %d, got %d", tt.used, got)
			}
			if got := tt.shape.ReservedBits(); got != tt.reserved {
				t.Errorf("reserved bits: expected %d, got %d", tt.reserved, got)
			}
			if got := tt.shape.Fields(); got != tt.fields {
				t.Errorf("fields: expected %d, got %d", tt.fields, got)
			}

			sum := 0
			for _, w := range tt.shape.FieldBits() {
				sum += w
			}
			if sum+tt.shape.ReservedBits() != OperandBits {
				t.Errorf("field widths %v plus %d reserved bits do not sum to %d",
					tt.shape.FieldBits(), tt.shape.ReservedBits(), OperandBits)
			}
		})
	}

	if len(tests) != len(Shapes()) {
		t.Errorf("expected %d shapes, got %d", len(tests), len(Shapes()))
	}
}

func TestShape_String(t *testing.T) {
	if got := ShapeRRI12.String(); got != "RRI12" {
		t.Errorf("expected RRI12, got %s", got)
	}
	if got := Shape(200).String(); got != "UNKNOWN" {
		t.Errorf("expected UNKNOWN, got %s", got)
	}
}

func TestArgs_Accessors(t *testing.T) {
	a := NewArgsRRRR(NewRegID(1), NewRegID(2), NewRegID(3), NewRegID(4))
	if a.RA().Value() != 1 || a.RB().Value() != 2 || a.RC().Value() != 3 || a.RD().Value() != 4 {
		t.Errorf("RRRR accessors: got %v %v %v %v", a.RA(), a.RB(), a.RC(), a.RD())
	}

	b := NewArgsRRI12(NewRegID(5), NewRegID(6), NewImm12(7))
	ra, rb, imm := b.Unpack()
	if ra != b.RA() || rb != b.RB() || imm != b.Imm12() {
		t.Error("RRI12: Unpack disagrees with accessors")
	}

	c := NewArgsRI18(NewRegID(9), NewImm18(100_000))
	if c.RA().Value() != 9 || c.Imm18().Value() != 100_000 {
		t.Errorf("RI18 accessors: got %v %v", c.RA(), c.Imm18())
	}

	if got := (ArgsNone{}).Operands(); got != [3]byte{} {
		t.Errorf("expected zero operands, got % X", got)
	}
}
