// Command opgen generates the per-opcode instruction types of package isa.
//
// It reads the opcode table in table.go and writes one Go file holding the
// opcode constants, the registry, one type per opcode, the decode switch and
// the named constructors. It is run through go generate:
//
//	//go:generate go run ../../internal/opgen -o opcodes_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"
)

type group struct {
	title string
	ops   []opcode
}

type opcode struct {
	code  uint8
	name  string
	shape string
	doc   string
}

type param struct {
	name string
	typ  string
}

// shapes lists the constructor parameters of each shape in field order.
var shapes = map[string][]param{
	"None":  nil,
	"R":     {{"ra", "RegID"}},
	"RR":    {{"ra", "RegID"}, {"rb", "RegID"}},
	"RRR":   {{"ra", "RegID"}, {"rb", "RegID"}, {"rc", "RegID"}},
	"RRRR":  {{"ra", "RegID"}, {"rb", "RegID"}, {"rc", "RegID"}, {"rd", "RegID"}},
	"RRI12": {{"ra", "RegID"}, {"rb", "RegID"}, {"imm", "Imm12"}},
	"RI18":  {{"ra", "RegID"}, {"imm", "Imm18"}},
	"I24":   {{"imm", "Imm24"}},
}

func main() {
	out := flag.String("o", "opcodes_gen.go", "output file")
	flag.Parse()

	src, err := generate(table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opgen: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "opgen: %v\n", err)
		os.Exit(1)
	}
}

// validate rejects tables that would break decoding: duplicate bytes or
// mnemonics, unknown shapes and empty documentation.
func validate(groups []group) error {
	codes := make(map[uint8]string)
	names := make(map[string]bool)
	for _, g := range groups {
		for _, op := range g.ops {
			if prev, ok := codes[op.code]; ok {
				return fmt.Errorf("opcode 0x%02X assigned to both %s and %s", op.code, prev, op.name)
			}
			codes[op.code] = op.name
			if names[op.name] {
				return fmt.Errorf("duplicate mnemonic %s", op.name)
			}
			names[op.name] = true
			if _, ok := shapes[op.shape]; !ok {
				return fmt.Errorf("%s: unknown shape %q", op.name, op.shape)
			}
			if op.doc == "" {
				return fmt.Errorf("%s: missing documentation", op.name)
			}
		}
	}
	return nil
}

type opView struct {
	Code    uint8
	Name    string
	Func    string
	Article string
	Shape   string
	Doc     string
	TypeDoc string
	Params  string
	Args    string
}

type groupView struct {
	Title string
	Ops   []opView
}

func view(op opcode) opView {
	ps := shapes[op.shape]
	args := make([]string, len(ps))
	for i, p := range ps {
		args[i] = p.name
	}
	article := "a"
	if strings.ContainsRune("AEIOU", rune(op.name[0])) {
		article = "an"
	}
	return opView{
		Code:    op.code,
		Name:    op.name,
		Func:    op.name[:1] + strings.ToLower(op.name[1:]),
		Article: article,
		Shape:   op.shape,
		Doc:     op.doc,
		TypeDoc: strings.ToLower(op.doc[:1]) + op.doc[1:],
		Params:  joinParams(ps),
		Args:    strings.Join(args, ", "),
	}
}

// joinParams renders a parameter list, grouping runs of the same type.
func joinParams(ps []param) string {
	var parts []string
	for i := 0; i < len(ps); {
		j := i
		for j+1 < len(ps) && ps[j+1].typ == ps[i].typ {
			j++
		}
		names := make([]string, 0, j-i+1)
		for _, p := range ps[i : j+1] {
			names = append(names, p.name)
		}
		parts = append(parts, strings.Join(names, ", ")+" "+ps[i].typ)
		i = j + 1
	}
	return strings.Join(parts, ", ")
}

func generate(groups []group) ([]byte, error) {
	if err := validate(groups); err != nil {
		return nil, err
	}
	var data struct {
		Groups []groupView
		Ops    []opView
	}
	for _, g := range groups {
		gv := groupView{Title: g.title}
		for _, op := range g.ops {
			v := view(op)
			gv.Ops = append(gv.Ops, v)
			data.Ops = append(data.Ops, v)
		}
		data.Groups = append(data.Groups, gv)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting output: %w", err)
	}
	return src, nil
}

var tmpl = template.Must(template.New("opcodes").Parse(`// Code generated by opgen. DO NOT EDIT.

package isa

// Registered opcodes.
const (
{{- range $i, $g := .Groups}}
{{- if $i}}
{{end}}
	// {{$g.Title}}
{{- range $g.Ops}}
	Op{{.Name}} Opcode = {{printf "0x%02X" .Code}} // {{.Doc}}
{{- end}}
{{- end}}
)

var opcodeTable = [256]opcodeInfo{
{{- range .Ops}}
	Op{{.Name}}: { {{- printf "%q" .Name}}, Shape{{.Shape}}, {{printf "%q" .Doc -}} },
{{- end}}
}

var opcodeOrder = [...]Opcode{
{{- range .Ops}}
	Op{{.Name}},
{{- end}}
}
{{range .Ops}}
// {{.Name}} {{.TypeDoc}}
type {{.Name}} struct{ Args{{.Shape}} }

// New{{.Name}} constructs {{.Article}} {{.Name}} instruction.
{{- if eq .Shape "None"}}
func New{{.Name}}() {{.Name}} { return {{.Name}}{} }
{{- else}}
func New{{.Name}}({{.Params}}) {{.Name}} { return {{.Name}}{NewArgs{{.Shape}}({{.Args}})} }
{{- end}}

func ({{.Name}}) Opcode() Opcode { return Op{{.Name}} }

func (in {{.Name}}) Bytes() [4]byte { return encode(Op{{.Name}}, in.Operands()) }

func (in {{.Name}}) Word() uint32 { return word(Op{{.Name}}, in.Operands()) }

func (in {{.Name}}) String() string { return Format(in) }

func ({{.Name}}) isInstruction() {}
{{end}}
func fromOperands(op Opcode, b [3]byte) Instruction {
	switch op {
{{- range .Ops}}
	case Op{{.Name}}:
{{- if eq .Shape "None"}}
		return {{.Name}}{}
{{- else}}
		return {{.Name}}{args{{.Shape}}(b)}
{{- end}}
{{- end}}
	}
	panic("isa: no decoder for opcode " + op.String())
}
{{range .Ops}}
// {{.Func}} returns {{.Article}} {{.Name}} instruction.
func {{.Func}}({{.Params}}) Instruction { return New{{.Name}}({{.Args}}) }
{{end}}`))
