package isa

import "fmt"

// Field widths in bits.
const (
	RegIDBits = 6
	Imm12Bits = 12
	Imm18Bits = 18
	Imm24Bits = 24
)

// Field masks.
const (
	RegIDMask = 1<<RegIDBits - 1
	Imm12Mask = 1<<Imm12Bits - 1
	Imm18Mask = 1<<Imm18Bits - 1
	Imm24Mask = 1<<Imm24Bits - 1
)

// RegID is a 6-bit index into the register file.
//
// Values wider than 6 bits are masked on construction. Use NewRegIDChecked to
// detect overflow instead.
type RegID struct {
	v uint8
}

// Reserved registers. Indices below RegWritable are owned by the VM.
var (
	RegZero     = RegID{0x00} // always zero
	RegOne      = RegID{0x01} // always one
	RegOverflow = RegID{0x02} // overflow/underflow of the last arithmetic op
	RegPC       = RegID{0x03} // program counter
	RegSSP      = RegID{0x04} // stack start pointer
	RegSP       = RegID{0x05} // stack pointer
	RegFP       = RegID{0x06} // frame pointer
	RegHP       = RegID{0x07} // heap pointer
	RegErr      = RegID{0x08} // error code of the last op
	RegGGas     = RegID{0x09} // global gas left
	RegCGas     = RegID{0x0A} // context gas left
	RegBal      = RegID{0x0B} // value forwarded to the current context
	RegIS       = RegID{0x0C} // instruction start pointer
	RegRet      = RegID{0x0D} // return value or pointer
	RegRetL     = RegID{0x0E} // return length
	RegFlag     = RegID{0x0F} // flags

	// RegWritable is the first general purpose register.
	RegWritable = RegID{0x10}
)

var regNames = [16]string{
	"zero", "one", "of", "pc", "ssp", "sp", "fp", "hp",
	"err", "ggas", "cgas", "bal", "is", "ret", "retl", "flag",
}

// NewRegID returns the register with index v, keeping only the low 6 bits.
func NewRegID(v uint8) RegID {
	return RegID{v & RegIDMask}
}

// NewRegIDChecked returns the register with index v, or false if v does not fit
// in 6 bits.
func NewRegIDChecked(v uint8) (RegID, bool) {
	if v > RegIDMask {
		return RegID{}, false
	}
	return RegID{v}, true
}

// Value returns the register index.
func (r RegID) Value() uint8 {
	return r.v
}

// IsReserved reports whether r is one of the VM-owned registers.
func (r RegID) IsReserved() bool {
	return r.v < RegWritable.v
}

// String returns the assembly name of the register, e.g. "$sp" or "$r20".
func (r RegID) String() string {
	if r.IsReserved() {
		return "$" + regNames[r.v]
	}
	return fmt.Sprintf("$r%d", r.v)
}

// RegIDFromName resolves an assembly register name such as "$sp", "sp", "$r20"
// or "r20".
func RegIDFromName(name string) (RegID, bool) {
	if len(name) > 0 && name[0] == '$' {
		name = name[1:]
	}
	for i, n := range regNames {
		if n == name {
			return RegID{uint8(i)}, true
		}
	}
	var idx uint8
	if _, err := fmt.Sscanf(name, "r%d", &idx); err != nil {
		return RegID{}, false
	}
	if fmt.Sprintf("r%d", idx) != name {
		return RegID{}, false
	}
	return NewRegIDChecked(idx)
}

// Imm12 is a 12-bit unsigned immediate.
type Imm12 struct {
	v uint16
}

// NewImm12 returns the immediate v, keeping only the low 12 bits.
func NewImm12(v uint16) Imm12 {
	return Imm12{v & Imm12Mask}
}

// NewImm12Checked returns the immediate v, or false if it does not fit in 12 bits.
func NewImm12Checked(v uint16) (Imm12, bool) {
	if v > Imm12Mask {
		return Imm12{}, false
	}
	return Imm12{v}, true
}

// Value returns the raw immediate.
func (i Imm12) Value() uint16 {
	return i.v
}

func (i Imm12) String() string {
	return fmt.Sprintf("%d", i.v)
}

// Imm18 is an 18-bit unsigned immediate.
type Imm18 struct {
	v uint32
}

// NewImm18 returns the immediate v, keeping only the low 18 bits.
func NewImm18(v uint32) Imm18 {
	return Imm18{v & Imm18Mask}
}

// NewImm18Checked returns the immediate v, or false if it does not fit in 18 bits.
func NewImm18Checked(v uint32) (Imm18, bool) {
	if v > Imm18Mask {
		return Imm18{}, false
	}
	return Imm18{v}, true
}

// Value returns the raw immediate.
func (i Imm18) Value() uint32 {
	return i.v
}

func (i Imm18) String() string {
	return fmt.Sprintf("%d", i.v)
}

// Imm24 is a 24-bit unsigned immediate.
type Imm24 struct {
	v uint32
}

// NewImm24 returns the immediate v, keeping only the low 24 bits.
func NewImm24(v uint32) Imm24 {
	return Imm24{v & Imm24Mask}
}

// NewImm24Checked returns the immediate v, or false if it does not fit in 24 bits.
func NewImm24Checked(v uint32) (Imm24, bool) {
	if v > Imm24Mask {
		return Imm24{}, false
	}
	return Imm24{v}, true
}

// Value returns the raw immediate.
func (i Imm24) Value() uint32 {
	return i.v
}

func (i Imm24) String() string {
	return fmt.Sprintf("%d", i.v)
}
