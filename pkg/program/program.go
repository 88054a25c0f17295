// Package program holds sequences of decoded instructions and converts them
// to and from flat instruction images and the versioned container format.
package program

import (
	"errors"
	"fmt"
	"sort"

	"github.com/akhildatla/isa/pkg/isa"
)

// ErrTruncated is returned when an image does not split into whole
// instructions.
var ErrTruncated = errors.New("image length is not a multiple of the instruction size")

// Program is a decoded instruction sequence.
type Program struct {
	Code []isa.Instruction
}

// New returns a program holding code.
func New(code ...isa.Instruction) *Program {
	return &Program{Code: code}
}

// DecodeRaw splits a flat image into 4-byte words and decodes each one.
// Decoding stops at the first unregistered opcode; the returned error wraps
// isa.ErrInvalidOpcode and names the instruction index.
func DecodeRaw(raw []byte) (*Program, error) {
	if len(raw)%isa.InstructionSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncated, len(raw))
	}
	code := make([]isa.Instruction, 0, len(raw)/isa.InstructionSize)
	for off := 0; off < len(raw); off += isa.InstructionSize {
		var w [isa.InstructionSize]byte
		copy(w[:], raw[off:])
		in, err := isa.Decode(w)
		if err != nil {
			return nil, fmt.Errorf("instruction %d (offset 0x%X): %w", off/isa.InstructionSize, off, err)
		}
		code = append(code, in)
	}
	return &Program{Code: code}, nil
}

// EncodeRaw returns the flat image of p.
func EncodeRaw(p *Program) []byte {
	raw := make([]byte, 0, len(p.Code)*isa.InstructionSize)
	for _, in := range p.Code {
		b := isa.Encode(in)
		raw = append(raw, b[:]...)
	}
	return raw
}

// Words returns the instructions of p as big-endian words.
func (p *Program) Words() []uint32 {
	words := make([]uint32, len(p.Code))
	for i, in := range p.Code {
		words[i] = isa.EncodeWord(in)
	}
	return words
}

// FromWords decodes big-endian instruction words.
func FromWords(words []uint32) (*Program, error) {
	code := make([]isa.Instruction, len(words))
	for i, w := range words {
		in, err := isa.DecodeWord(w)
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
		code[i] = in
	}
	return &Program{Code: code}, nil
}

// OpcodeCount is the number of occurrences of one opcode.
type OpcodeCount struct {
	Opcode isa.Opcode
	Count  int
}

// Stats summarizes the opcodes and shapes used by a program.
type Stats struct {
	Instructions int
	Opcodes      []OpcodeCount // most frequent first
	Shapes       map[isa.Shape]int
}

// Stats counts opcode and shape usage in p.
func (p *Program) Stats() Stats {
	counts := make(map[isa.Opcode]int)
	st := Stats{
		Instructions: len(p.Code),
		Shapes:       make(map[isa.Shape]int),
	}
	for _, in := range p.Code {
		op := in.Opcode()
		counts[op]++
		st.Shapes[op.Shape()]++
	}
	for op, n := range counts {
		st.Opcodes = append(st.Opcodes, OpcodeCount{Opcode: op, Count: n})
	}
	sort.Slice(st.Opcodes, func(i, j int) bool {
		if st.Opcodes[i].Count != st.Opcodes[j].Count {
			return st.Opcodes[i].Count > st.Opcodes[j].Count
		}
		return st.Opcodes[i].Opcode < st.Opcodes[j].Opcode
	})
	return st
}
