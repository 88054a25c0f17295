// Package isa implements the binary encoding of a fixed-width register VM
// instruction set.
//
// Every instruction is 4 bytes, big-endian: one opcode byte followed by a
// 3-byte operand field. The operand field holds up to four 6-bit register
// indices and at most one 12, 18 or 24-bit immediate, laid out by the shape of
// the opcode (see Shape and pack.go).
//
// Each opcode has its own type (ADD, MOVI, JI, ...) with a constructor,
// field accessors and conversions to the wire form. All of them implement
// Instruction. Decode is the only entry point from raw bytes and fails only on
// an unregistered opcode byte.
//
// The per-opcode code lives in opcodes_gen.go and is generated from the
// opcode table in internal/opgen.
package isa

//go:generate go run ../../internal/opgen -o opcodes_gen.go
