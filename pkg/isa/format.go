package isa

import (
	"fmt"
	"strings"
)

// Fields returns the operand fields of in in declaration order, registers
// first. Instructions without operands return nil.
func Fields(in Instruction) []uint32 {
	b := in.Operands()
	switch in.Opcode().Shape() {
	case ShapeR:
		ra := UnpackR(b)
		return []uint32{uint32(ra.v)}
	case ShapeRR:
		ra, rb := UnpackRR(b)
		return []uint32{uint32(ra.v), uint32(rb.v)}
	case ShapeRRR:
		ra, rb, rc := UnpackRRR(b)
		return []uint32{uint32(ra.v), uint32(rb.v), uint32(rc.v)}
	case ShapeRRRR:
		ra, rb, rc, rd := UnpackRRRR(b)
		return []uint32{uint32(ra.v), uint32(rb.v), uint32(rc.v), uint32(rd.v)}
	case ShapeRRI12:
		ra, rb, imm := UnpackRRI12(b)
		return []uint32{uint32(ra.v), uint32(rb.v), uint32(imm.v)}
	case ShapeRI18:
		ra, imm := UnpackRI18(b)
		return []uint32{uint32(ra.v), imm.v}
	case ShapeI24:
		return []uint32{UnpackI24(b).v}
	}
	return nil
}

// Format renders in as assembly text, e.g. "ADDI $r16, $sp, 1000".
func Format(in Instruction) string {
	op := in.Opcode()
	fields := Fields(in)
	if len(fields) == 0 {
		return op.String()
	}
	regs := op.Shape().Registers()
	parts := make([]string, len(fields))
	for i, f := range fields {
		if i < regs {
			parts[i] = RegID{uint8(f)}.String()
		} else {
			parts[i] = fmt.Sprintf("%d", f)
		}
	}
	return op.String() + " " + strings.Join(parts, ", ")
}
