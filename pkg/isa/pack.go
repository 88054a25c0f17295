package isa

// Operand field layout.
//
// The three operand bytes are read as one big-endian 24-bit value. Fields are
// placed most significant first, in declaration order, each right aligned in its
// own bit range. Bits not claimed by a shape are zero on packing and ignored on
// unpacking.
//
//	bit   23      18 17      12 11       6 5        0
//	R     │   ra    │              reserved          │
//	RR    │   ra    │   rb    │        reserved      │
//	RRR   │   ra    │   rb    │   rc    │  reserved  │
//	RRRR  │   ra    │   rb    │   rc    │    rd      │
//	RRI12 │   ra    │   rb    │        imm12         │
//	RI18  │   ra    │            imm18               │
//	I24   │                  imm24                   │

const (
	shiftRA = 18
	shiftRB = 12
	shiftRC = 6
	shiftRD = 0
)

func fromU24(v uint32) [3]byte {
	return [3]byte{byte(v >> 16), byte(v >> 8), byte(v)}
}

func toU24(b [3]byte) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

func reg(v uint32, shift uint) RegID {
	return RegID{uint8(v>>shift) & RegIDMask}
}

func regBits(r RegID, shift uint) uint32 {
	return uint32(r.v&RegIDMask) << shift
}

// PackR packs one register.
func PackR(ra RegID) [3]byte {
	return fromU24(regBits(ra, shiftRA))
}

// UnpackR unpacks one register, ignoring the reserved low 18 bits.
func UnpackR(b [3]byte) RegID {
	return reg(toU24(b), shiftRA)
}

// PackRR packs two registers.
func PackRR(ra, rb RegID) [3]byte {
	return fromU24(regBits(ra, shiftRA) | regBits(rb, shiftRB))
}

// UnpackRR unpacks two registers, ignoring the reserved low 12 bits.
func UnpackRR(b [3]byte) (RegID, RegID) {
	v := toU24(b)
	return reg(v, shiftRA), reg(v, shiftRB)
}

// PackRRR packs three registers.
func PackRRR(ra, rb, rc RegID) [3]byte {
	return fromU24(regBits(ra, shiftRA) | regBits(rb, shiftRB) | regBits(rc, shiftRC))
}

// UnpackRRR unpacks three registers, ignoring the reserved low 6 bits.
func UnpackRRR(b [3]byte) (RegID, RegID, RegID) {
	v := toU24(b)
	return reg(v, shiftRA), reg(v, shiftRB), reg(v, shiftRC)
}

// PackRRRR packs four registers.
func PackRRRR(ra, rb, rc, rd RegID) [3]byte {
	return fromU24(regBits(ra, shiftRA) | regBits(rb, shiftRB) | regBits(rc, shiftRC) | regBits(rd, shiftRD))
}

// UnpackRRRR unpacks four registers.
func UnpackRRRR(b [3]byte) (RegID, RegID, RegID, RegID) {
	v := toU24(b)
	return reg(v, shiftRA), reg(v, shiftRB), reg(v, shiftRC), reg(v, shiftRD)
}

// PackRRI12 packs two registers and a 12-bit immediate.
func PackRRI12(ra, rb RegID, imm Imm12) [3]byte {
	return fromU24(regBits(ra, shiftRA) | regBits(rb, shiftRB) | uint32(imm.v&Imm12Mask))
}

// UnpackRRI12 unpacks two registers and a 12-bit immediate.
func UnpackRRI12(b [3]byte) (RegID, RegID, Imm12) {
	v := toU24(b)
	return reg(v, shiftRA), reg(v, shiftRB), Imm12{uint16(v & Imm12Mask)}
}

// PackRI18 packs one register and an 18-bit immediate.
func PackRI18(ra RegID, imm Imm18) [3]byte {
	return fromU24(regBits(ra, shiftRA) | imm.v&Imm18Mask)
}

// UnpackRI18 unpacks one register and an 18-bit immediate.
func UnpackRI18(b [3]byte) (RegID, Imm18) {
	v := toU24(b)
	return reg(v, shiftRA), Imm18{v & Imm18Mask}
}

// PackI24 packs a 24-bit immediate.
func PackI24(imm Imm24) [3]byte {
	return fromU24(imm.v & Imm24Mask)
}

// UnpackI24 unpacks a 24-bit immediate.
func UnpackI24(b [3]byte) Imm24 {
	return Imm24{toU24(b)}
}
