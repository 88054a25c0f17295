// Package repl implements an interactive shell for decoding and encoding
// instruction words.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/akhildatla/isa/pkg/isa"
	"github.com/akhildatla/isa/pkg/loader"
	"github.com/akhildatla/isa/pkg/program"
)

const prompt = "isa> "

// REPL provides an interactive Read-Eval-Print Loop.
type REPL struct {
	history []string
	program *program.Program
}

// New creates a new REPL instance.
func New() *REPL {
	return &REPL{program: program.New()}
}

// Program returns the program built up by decode, encode and load.
func (r *REPL) Program() *program.Program {
	return r.program
}

// Start runs the loop over in until EOF or quit. Used for scripted input
// and tests; StartInteractive adds line editing.
func (r *REPL) Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	banner(out)

	for {
		fmt.Fprint(out, prompt)

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}

		if r.Exec(scanner.Text(), out) {
			return
		}
	}
}

func banner(out io.Writer) {
	fmt.Fprintln(out, "ISA REPL - 32-bit instruction codec")
	fmt.Fprintln(out, "Type 'help' for available commands, 'quit' to exit")
	fmt.Fprintln(out)
}

// Exec runs one command line and reports whether the session should end.
func (r *REPL) Exec(line string, out io.Writer) (quit bool) {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return false
	}

	cmd, args := strings.ToLower(parts[0]), parts[1:]
	if cmd != "history" {
		r.history = append(r.history, line)
	}

	switch cmd {
	case "quit", "exit", "q":
		fmt.Fprintln(out, "Goodbye!")
		return true

	case "help", "h", "?":
		printHelp(out)

	case "decode", "d":
		r.decode(args, out)

	case "encode", "e":
		r.encode(args, out)

	case "info", "i":
		if len(args) != 1 {
			fmt.Fprintln(out, "Usage: info <MNEMONIC>")
			return false
		}
		op, ok := isa.OpcodeFromString(args[0])
		if !ok {
			fmt.Fprintf(out, "Error: unknown mnemonic %q\n", args[0])
			return false
		}
		printInfo(op, out)

	case "opcodes":
		printOpcodes(args, out)

	case "load":
		if len(args) != 1 {
			fmt.Fprintln(out, "Usage: load <path>")
			return false
		}
		p, err := loader.LoadFile(args[0])
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return false
		}
		r.program = p
		fmt.Fprintf(out, "Loaded %d instructions from %s\n", len(p.Code), args[0])

	case "list":
		fmt.Fprint(out, program.Disassemble(r.program))

	case "clear":
		r.program = program.New()
		fmt.Fprintln(out, "Program cleared")

	case "history":
		for i, cmd := range r.history {
			fmt.Fprintf(out, "%3d: %s\n", i+1, cmd)
		}

	default:
		fmt.Fprintf(out, "Unknown command %q. Type 'help' for available commands\n", parts[0])
	}
	return false
}

func (r *REPL) decode(args []string, out io.Writer) {
	if len(args) == 0 {
		fmt.Fprintln(out, "Usage: decode <hex word>...")
		return
	}
	words, err := ParseWords(args)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	for _, w := range words {
		in, err := isa.DecodeWord(w)
		if err != nil {
			fmt.Fprintf(out, "%08X  Error: %v\n", w, err)
			continue
		}
		r.program.Code = append(r.program.Code, in)
		fmt.Fprintf(out, "%08X  %s\n", w, isa.Format(in))
	}
}

func (r *REPL) encode(args []string, out io.Writer) {
	if len(args) == 0 {
		fmt.Fprintln(out, "Usage: encode <MNEMONIC> <field>...")
		return
	}
	in, err := Assemble(args)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	r.program.Code = append(r.program.Code, in)
	b := isa.Encode(in)
	fmt.Fprintf(out, "%08X  % X  %s\n", isa.EncodeWord(in), b[:], isa.Format(in))
}

// Layout describes the bit layout of an instruction word for shape s,
// e.g. "opcode[31:24] ra[23:18] rb[17:12] imm[11:0]".
func Layout(s isa.Shape) string {
	parts := []string{"opcode[31:24]"}
	hi := isa.OperandBits - 1
	for i := 0; i < s.Registers(); i++ {
		parts = append(parts, fmt.Sprintf("r%c[%d:%d]", 'a'+i, hi, hi-isa.RegIDBits+1))
		hi -= isa.RegIDBits
	}
	imm := s.ImmediateBits()
	if reserved := hi + 1 - imm; reserved > 0 {
		parts = append(parts, fmt.Sprintf("reserved[%d:%d]", hi, imm))
	}
	if imm > 0 {
		parts = append(parts, fmt.Sprintf("imm[%d:0]", imm-1))
	}
	return strings.Join(parts, " ")
}

func printInfo(op isa.Opcode, out io.Writer) {
	fmt.Fprintf(out, "%s  0x%02X  %s\n", op, op.Byte(), op.Shape())
	fmt.Fprintf(out, "  %s\n", op.Doc())
	fmt.Fprintf(out, "  layout: %s\n", Layout(op.Shape()))
}

// printOpcodes lists the registry, optionally filtered by shape name.
func printOpcodes(args []string, out io.Writer) {
	for _, op := range isa.Opcodes() {
		if len(args) > 0 && !strings.EqualFold(args[0], op.Shape().String()) {
			continue
		}
		fmt.Fprintf(out, "0x%02X  %-5s %-6s %s\n", op.Byte(), op, op.Shape(), op.Doc())
	}
}

func printHelp(out io.Writer) {
	help := `
ISA REPL Commands:
  help, h, ?            Show this help message
  quit, exit, q         Exit the REPL
  decode, d <hex>...    Decode instruction words (500C73E8, 0x500C73E8)
  encode, e <OP> <f>... Encode an instruction from its operand fields
  info, i <OP>          Show opcode byte, shape, bit layout and description
  opcodes [shape]       List registered opcodes, optionally of one shape
  load <path>           Load a program (.bin, .rvmi or a csv/json/parquet listing)
  list                  Disassemble the current program
  clear                 Clear the current program
  history               Show command history

Examples:
  decode 500C73E8
  encode ADDI $r16, $sp, 1000
  encode MOVI r20 0x3FFFF
  info JNZI

Decoded and encoded instructions are appended to the current program.
`
	fmt.Fprint(out, help)
}
