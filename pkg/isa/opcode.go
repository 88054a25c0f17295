package isa

import (
	"errors"
	"fmt"
	"strings"
)

// Opcode is the one-byte tag identifying an instruction.
//
// The set of opcodes is fixed; see opcodes_gen.go for the table. Bytes outside
// the table are rejected by OpcodeFromByte.
type Opcode uint8

// ErrInvalidOpcode is matched by every error returned for an unregistered
// opcode byte.
var ErrInvalidOpcode = errors.New("invalid opcode")

// InvalidOpcodeError reports the unregistered byte found in an instruction.
type InvalidOpcodeError struct {
	Byte byte
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("invalid opcode 0x%02X", e.Byte)
}

// Is makes errors.Is(err, ErrInvalidOpcode) hold.
func (e *InvalidOpcodeError) Is(target error) bool {
	return target == ErrInvalidOpcode
}

type opcodeInfo struct {
	name  string
	shape Shape
	doc   string
}

var mnemonics = func() map[string]Opcode {
	m := make(map[string]Opcode, len(opcodeOrder))
	for _, op := range opcodeOrder {
		m[opcodeTable[op].name] = op
	}
	return m
}()

// OpcodeFromByte validates b against the opcode table.
func OpcodeFromByte(b byte) (Opcode, error) {
	op := Opcode(b)
	if !op.IsValid() {
		return 0, &InvalidOpcodeError{Byte: b}
	}
	return op, nil
}

// OpcodeFromString returns the opcode for a mnemonic. Matching ignores case.
func OpcodeFromString(s string) (Opcode, bool) {
	op, ok := mnemonics[strings.ToUpper(s)]
	return op, ok
}

// Opcodes returns every registered opcode in ascending byte order.
func Opcodes() []Opcode {
	out := make([]Opcode, len(opcodeOrder))
	copy(out, opcodeOrder[:])
	return out
}

// IsValid reports whether o is a registered opcode.
func (o Opcode) IsValid() bool {
	return opcodeTable[o].name != ""
}

// Byte returns the opcode tag.
func (o Opcode) Byte() byte {
	return byte(o)
}

// String returns the mnemonic, or a hex form for unregistered bytes.
func (o Opcode) String() string {
	if !o.IsValid() {
		return fmt.Sprintf("UNKNOWN(0x%02X)", byte(o))
	}
	return opcodeTable[o].name
}

// Shape returns the operand layout of o.
func (o Opcode) Shape() Shape {
	return opcodeTable[o].shape
}

// Doc returns the one-line description of o.
func (o Opcode) Doc() string {
	return opcodeTable[o].doc
}
