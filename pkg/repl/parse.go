package repl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/akhildatla/isa/pkg/isa"
)

var (
	ErrUnknownMnemonic = errors.New("unknown mnemonic")
	ErrBadOperand      = errors.New("bad operand")
	ErrBadWord         = errors.New("bad instruction word")
)

// ParseWords parses hex instruction words. Each argument is either a single
// word ("500C73E8", "0x500C73E8", "500c_73e8") or a run of whole words
// written back to back.
func ParseWords(args []string) ([]uint32, error) {
	var words []uint32
	for _, arg := range args {
		s := strings.ReplaceAll(strings.TrimSpace(arg), "_", "")
		s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
		if s == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadWord, arg)
		}
		if len(s) <= 8 {
			w, err := strconv.ParseUint(s, 16, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadWord, arg)
			}
			words = append(words, uint32(w))
			continue
		}
		if len(s)%8 != 0 {
			return nil, fmt.Errorf("%w: %q is not a whole number of words", ErrBadWord, arg)
		}
		for i := 0; i < len(s); i += 8 {
			w, err := strconv.ParseUint(s[i:i+8], 16, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadWord, arg)
			}
			words = append(words, uint32(w))
		}
	}
	return words, nil
}

// Assemble builds one instruction from a mnemonic and its operand fields,
// e.g. ["ADDI", "$r16,", "$sp,", "1000"]. Register fields accept names or
// numbers; immediates accept any base strconv understands. Trailing commas
// are ignored.
func Assemble(args []string) (isa.Instruction, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrUnknownMnemonic)
	}

	op, ok := isa.OpcodeFromString(args[0])
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMnemonic, args[0])
	}

	var operands []string
	for _, arg := range args[1:] {
		for _, part := range strings.Split(arg, ",") {
			if part = strings.TrimSpace(part); part != "" {
				operands = append(operands, part)
			}
		}
	}

	regs := op.Shape().Registers()
	fields := make([]uint32, len(operands))
	for i, text := range operands {
		v, err := parseField(text, i < regs)
		if err != nil {
			return nil, fmt.Errorf("%s operand %d: %w", op, i+1, err)
		}
		fields[i] = v
	}

	return isa.Build(op, fields...)
}

func parseField(text string, register bool) (uint32, error) {
	if register {
		if r, ok := isa.RegIDFromName(text); ok {
			return uint32(r.Value()), nil
		}
		if strings.HasPrefix(text, "$") {
			return 0, fmt.Errorf("%w: unknown register %q", ErrBadOperand, text)
		}
	}
	v, err := strconv.ParseUint(text, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadOperand, text)
	}
	return uint32(v), nil
}
