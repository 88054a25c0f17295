package program

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/akhildatla/isa/pkg/isa"
)

// Disassemble renders p as an assembly listing, one instruction per line
// prefixed with its index and raw word.
func Disassemble(p *Program) string {
	var buf bytes.Buffer

	buf.WriteString("; Disassembled instruction image\n")
	buf.WriteString(fmt.Sprintf("; %d instructions, %d bytes\n\n", len(p.Code), len(p.Code)*isa.InstructionSize))

	for i, in := range p.Code {
		buf.WriteString(fmt.Sprintf("%04d: %08X  %s\n", i, isa.EncodeWord(in), isa.Format(in)))
	}

	return buf.String()
}

// DisassembleRaw decodes as much of raw as possible and renders it. Words
// with an unregistered opcode are listed as data instead of stopping the
// listing.
func DisassembleRaw(raw []byte) string {
	var buf bytes.Buffer

	n := len(raw) / isa.InstructionSize
	buf.WriteString("; Disassembled instruction image\n")
	buf.WriteString(fmt.Sprintf("; %d words, %d bytes\n\n", n, len(raw)))

	for i := 0; i < n; i++ {
		var w [isa.InstructionSize]byte
		copy(w[:], raw[i*isa.InstructionSize:])
		word := binary.BigEndian.Uint32(w[:])
		in, err := isa.Decode(w)
		if err != nil {
			buf.WriteString(fmt.Sprintf("%04d: %08X  .word 0x%08X ; %v\n", i, word, word, err))
			continue
		}
		buf.WriteString(fmt.Sprintf("%04d: %08X  %s\n", i, word, isa.Format(in)))
	}
	if rest := len(raw) % isa.InstructionSize; rest != 0 {
		buf.WriteString(fmt.Sprintf("; %d trailing bytes ignored\n", rest))
	}

	return buf.String()
}
