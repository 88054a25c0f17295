package isa

import (
	"errors"
	"fmt"
)

var (
	ErrOperandCount = errors.New("wrong number of operands")
	ErrOperandRange = errors.New("operand out of range")
)

// Build constructs an instruction of opcode op from raw field values in
// declaration order. Unlike the typed constructors it rejects values that do
// not fit their field instead of masking them.
func Build(op Opcode, fields ...uint32) (Instruction, error) {
	if !op.IsValid() {
		return nil, &InvalidOpcodeError{Byte: byte(op)}
	}
	shape := op.Shape()
	if len(fields) != shape.Fields() {
		return nil, fmt.Errorf("%s: %w: expected %d, got %d", op, ErrOperandCount, shape.Fields(), len(fields))
	}

	widths := shape.FieldBits()
	regs := make([]RegID, 0, 4)
	var imm uint32
	for i, f := range fields {
		if f >= 1<<uint(widths[i]) {
			return nil, fmt.Errorf("%s: operand %d: %w: %d does not fit in %d bits", op, i, ErrOperandRange, f, widths[i])
		}
		if i < shape.Registers() {
			regs = append(regs, RegID{uint8(f)})
		} else {
			imm = f
		}
	}

	var b [3]byte
	switch shape {
	case ShapeR:
		b = PackR(regs[0])
	case ShapeRR:
		b = PackRR(regs[0], regs[1])
	case ShapeRRR:
		b = PackRRR(regs[0], regs[1], regs[2])
	case ShapeRRRR:
		b = PackRRRR(regs[0], regs[1], regs[2], regs[3])
	case ShapeRRI12:
		b = PackRRI12(regs[0], regs[1], Imm12{uint16(imm)})
	case ShapeRI18:
		b = PackRI18(regs[0], Imm18{imm})
	case ShapeI24:
		b = PackI24(Imm24{imm})
	}
	return fromOperands(op, b), nil
}

// MustBuild is like Build but panics on error. It is meant for tables of
// instructions known to be valid.
func MustBuild(op Opcode, fields ...uint32) Instruction {
	in, err := Build(op, fields...)
	if err != nil {
		panic(err)
	}
	return in
}
