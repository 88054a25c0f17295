package isa

// Shape identifies the operand layout of an opcode.
type Shape uint8

const (
	ShapeNone  Shape = iota // no operands
	ShapeR                  // ra
	ShapeRR                 // ra, rb
	ShapeRRR                // ra, rb, rc
	ShapeRRRR               // ra, rb, rc, rd
	ShapeRRI12              // ra, rb, imm12
	ShapeRI18               // ra, imm18
	ShapeI24                // imm24
)

// OperandBits is the width of the operand field.
const OperandBits = 24

var shapes = [...]struct {
	name    string
	regs    int
	immBits int
}{
	ShapeNone:  {"NONE", 0, 0},
	ShapeR:     {"R", 1, 0},
	ShapeRR:    {"RR", 2, 0},
	ShapeRRR:   {"RRR", 3, 0},
	ShapeRRRR:  {"RRRR", 4, 0},
	ShapeRRI12: {"RRI12", 2, Imm12Bits},
	ShapeRI18:  {"RI18", 1, Imm18Bits},
	ShapeI24:   {"I24", 0, Imm24Bits},
}

// Shapes returns every shape in declaration order.
func Shapes() []Shape {
	out := make([]Shape, len(shapes))
	for i := range shapes {
		out[i] = Shape(i)
	}
	return out
}

func (s Shape) valid() bool {
	return int(s) < len(shapes)
}

// String returns the shape name, e.g. "RRI12".
func (s Shape) String() string {
	if !s.valid() {
		return "UNKNOWN"
	}
	return shapes[s].name
}

// Registers returns the number of register fields.
func (s Shape) Registers() int {
	if !s.valid() {
		return 0
	}
	return shapes[s].regs
}

// ImmediateBits returns the width of the immediate field, or 0 if the shape has
// none.
func (s Shape) ImmediateBits() int {
	if !s.valid() {
		return 0
	}
	return shapes[s].immBits
}

// Fields returns the number of fields, registers first.
func (s Shape) Fields() int {
	n := s.Registers()
	if s.ImmediateBits() > 0 {
		n++
	}
	return n
}

// FieldBits returns the width of each field in declaration order.
func (s Shape) FieldBits() []int {
	out := make([]int, 0, s.Fields())
	for i := 0; i < s.Registers(); i++ {
		out = append(out, RegIDBits)
	}
	if imm := s.ImmediateBits(); imm > 0 {
		out = append(out, imm)
	}
	return out
}

// UsedBits returns the number of operand bits claimed by fields.
func (s Shape) UsedBits() int {
	return s.Registers()*RegIDBits + s.ImmediateBits()
}

// ReservedBits returns the number of low operand bits left unused. They are
// written as zero and ignored when decoding.
func (s Shape) ReservedBits() int {
	return OperandBits - s.UsedBits()
}

// ArgsNone is the operand payload of opcodes without operands.
type ArgsNone struct{}

// Operands returns the operand field, always zero.
func (ArgsNone) Operands() [3]byte {
	return [3]byte{}
}

// ArgsR holds one register.
type ArgsR struct {
	b [3]byte
}

// NewArgsR packs ra.
func NewArgsR(ra RegID) ArgsR {
	return ArgsR{PackR(ra)}
}

// Operands returns the packed operand field.
func (a ArgsR) Operands() [3]byte { return a.b }

// RA returns register A.
func (a ArgsR) RA() RegID { return UnpackR(a.b) }

// Unpack returns all fields.
func (a ArgsR) Unpack() RegID { return UnpackR(a.b) }

// ArgsRR holds two registers.
type ArgsRR struct {
	b [3]byte
}

// NewArgsRR packs ra and rb.
func NewArgsRR(ra, rb RegID) ArgsRR {
	return ArgsRR{PackRR(ra, rb)}
}

// Operands returns the packed operand field.
func (a ArgsRR) Operands() [3]byte { return a.b }

// RA returns register A.
func (a ArgsRR) RA() RegID {
	ra, _ := UnpackRR(a.b)
	return ra
}

// RB returns register B.
func (a ArgsRR) RB() RegID {
	_, rb := UnpackRR(a.b)
	return rb
}

// Unpack returns all fields.
func (a ArgsRR) Unpack() (RegID, RegID) { return UnpackRR(a.b) }

// ArgsRRR holds three registers.
type ArgsRRR struct {
	b [3]byte
}

// NewArgsRRR packs ra, rb and rc.
func NewArgsRRR(ra, rb, rc RegID) ArgsRRR {
	return ArgsRRR{PackRRR(ra, rb, rc)}
}

// Operands returns the packed operand field.
func (a ArgsRRR) Operands() [3]byte { return a.b }

// RA returns register A.
func (a ArgsRRR) RA() RegID {
	ra, _, _ := UnpackRRR(a.b)
	return ra
}

// RB returns register B.
func (a ArgsRRR) RB() RegID {
	_, rb, _ := UnpackRRR(a.b)
	return rb
}

// RC returns register C.
func (a ArgsRRR) RC() RegID {
	_, _, rc := UnpackRRR(a.b)
	return rc
}

// Unpack returns all fields.
func (a ArgsRRR) Unpack() (RegID, RegID, RegID) { return UnpackRRR(a.b) }

// ArgsRRRR holds four registers.
type ArgsRRRR struct {
	b [3]byte
}

// NewArgsRRRR packs ra, rb, rc and rd.
func NewArgsRRRR(ra, rb, rc, rd RegID) ArgsRRRR {
	return ArgsRRRR{PackRRRR(ra, rb, rc, rd)}
}

// Operands returns the packed operand field.
func (a ArgsRRRR) Operands() [3]byte { return a.b }

// RA returns register A.
func (a ArgsRRRR) RA() RegID {
	ra, _, _, _ := UnpackRRRR(a.b)
	return ra
}

// RB returns register B.
func (a ArgsRRRR) RB() RegID {
	_, rb, _, _ := UnpackRRRR(a.b)
	return rb
}

// RC returns register C.
func (a ArgsRRRR) RC() RegID {
	_, _, rc, _ := UnpackRRRR(a.b)
	return rc
}

// RD returns register D.
func (a ArgsRRRR) RD() RegID {
	_, _, _, rd := UnpackRRRR(a.b)
	return rd
}

// Unpack returns all fields.
func (a ArgsRRRR) Unpack() (RegID, RegID, RegID, RegID) { return UnpackRRRR(a.b) }

// ArgsRRI12 holds two registers and a 12-bit immediate.
type ArgsRRI12 struct {
	b [3]byte
}

// NewArgsRRI12 packs ra, rb and imm.
func NewArgsRRI12(ra, rb RegID, imm Imm12) ArgsRRI12 {
	return ArgsRRI12{PackRRI12(ra, rb, imm)}
}

// Operands returns the packed operand field.
func (a ArgsRRI12) Operands() [3]byte { return a.b }

// RA returns register A.
func (a ArgsRRI12) RA() RegID {
	ra, _, _ := UnpackRRI12(a.b)
	return ra
}

// RB returns register B.
func (a ArgsRRI12) RB() RegID {
	_, rb, _ := UnpackRRI12(a.b)
	return rb
}

// Imm12 returns the immediate.
func (a ArgsRRI12) Imm12() Imm12 {
	_, _, imm := UnpackRRI12(a.b)
	return imm
}

// Unpack returns all fields.
func (a ArgsRRI12) Unpack() (RegID, RegID, Imm12) { return UnpackRRI12(a.b) }

// ArgsRI18 holds one register and an 18-bit immediate.
type ArgsRI18 struct {
	b [3]byte
}

// NewArgsRI18 packs ra and imm.
func NewArgsRI18(ra RegID, imm Imm18) ArgsRI18 {
	return ArgsRI18{PackRI18(ra, imm)}
}

// Operands returns the packed operand field.
func (a ArgsRI18) Operands() [3]byte { return a.b }

// RA returns register A.
func (a ArgsRI18) RA() RegID {
	ra, _ := UnpackRI18(a.b)
	return ra
}

// Imm18 returns the immediate.
func (a ArgsRI18) Imm18() Imm18 {
	_, imm := UnpackRI18(a.b)
	return imm
}

// Unpack returns all fields.
func (a ArgsRI18) Unpack() (RegID, Imm18) { return UnpackRI18(a.b) }

// ArgsI24 holds a 24-bit immediate.
type ArgsI24 struct {
	b [3]byte
}

// NewArgsI24 packs imm.
func NewArgsI24(imm Imm24) ArgsI24 {
	return ArgsI24{PackI24(imm)}
}

// Operands returns the packed operand field.
func (a ArgsI24) Operands() [3]byte { return a.b }

// Imm24 returns the immediate.
func (a ArgsI24) Imm24() Imm24 { return UnpackI24(a.b) }

// Unpack returns all fields.
func (a ArgsI24) Unpack() Imm24 { return UnpackI24(a.b) }

// Canonical payloads for decoding. Reserved bits are dropped by the
// unpack/pack pair.

func argsR(b [3]byte) ArgsR { return NewArgsR(UnpackR(b)) }

func argsRR(b [3]byte) ArgsRR { return NewArgsRR(UnpackRR(b)) }

func argsRRR(b [3]byte) ArgsRRR { return NewArgsRRR(UnpackRRR(b)) }

func argsRRRR(b [3]byte) ArgsRRRR { return NewArgsRRRR(UnpackRRRR(b)) }

func argsRRI12(b [3]byte) ArgsRRI12 { return ArgsRRI12{b} }

func argsRI18(b [3]byte) ArgsRI18 { return ArgsRI18{b} }

func argsI24(b [3]byte) ArgsI24 { return ArgsI24{b} }
