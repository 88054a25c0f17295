package isa

import "encoding/binary"

// InstructionSize is the encoded size of every instruction in bytes.
const InstructionSize = 4

// Instruction is a decoded instruction. It is implemented only by the
// per-opcode types of this package (ADD, MOVI, ...), so a type switch over an
// Instruction selects exactly one opcode:
//
//	switch in := in.(type) {
//	case isa.ADD:
//		ra, rb, rc := in.Unpack()
//		...
//	}
//
// Instruction values are comparable. Two instructions are equal when they have
// the same opcode and the same canonical operand bytes.
type Instruction interface {
	// Opcode returns the tag of the instruction.
	Opcode() Opcode
	// Operands returns the 3-byte operand field.
	Operands() [3]byte
	// Bytes returns the 4-byte wire form.
	Bytes() [4]byte
	// Word returns the wire form as a big-endian 32-bit word.
	Word() uint32
	String() string

	isInstruction()
}

func encode(op Opcode, b [3]byte) [4]byte {
	return [4]byte{byte(op), b[0], b[1], b[2]}
}

func word(op Opcode, b [3]byte) uint32 {
	w := encode(op, b)
	return binary.BigEndian.Uint32(w[:])
}

// Decode parses the wire form of one instruction. The opcode byte must be
// registered; the operand bytes always decode. Reserved bits of under-full
// shapes are discarded, so Encode(Decode(b)) clears them.
func Decode(b [4]byte) (Instruction, error) {
	op, err := OpcodeFromByte(b[0])
	if err != nil {
		return nil, err
	}
	return fromOperands(op, [3]byte{b[1], b[2], b[3]}), nil
}

// DecodeWord parses a big-endian instruction word.
func DecodeWord(w uint32) (Instruction, error) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], w)
	return Decode(b)
}

// Encode returns the wire form of in.
func Encode(in Instruction) [4]byte {
	return encode(in.Opcode(), in.Operands())
}

// EncodeWord returns the wire form of in as a big-endian 32-bit word.
func EncodeWord(in Instruction) uint32 {
	return word(in.Opcode(), in.Operands())
}
