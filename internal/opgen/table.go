package main

// table is the opcode table of the instruction set. Bytes must be unique and
// each shape must be one of the keys of shapes.
var table = []group{
	{
		title: "Control flow and context",
		ops: []opcode{
			{0x00, "NOOP", "None", "Performs no operation."},
			{0x01, "RET", "R", "Returns from the current context with the value of register A."},
			{0x02, "RETD", "RR", "Returns from the current context with the register B bytes at the address in register A."},
			{0x03, "RVRT", "R", "Halts execution, reverting state and returning the value of register A."},
			{0x04, "JMP", "R", "Jumps to the instruction index in register A."},
			{0x05, "JNE", "RRR", "Jumps to the instruction index in register C if registers A and B differ."},
			{0x06, "CALL", "RRRR", "Calls the routine described at register A with argument pointer B, length C and gas limit D."},
			{0x07, "FLAG", "R", "Sets the flag register to the value of register A."},
			{0x08, "ECAL", "RRRR", "Invokes the host call selected by register A with registers B, C and D as arguments."},
		},
	},
	{
		title: "Register arithmetic and logic",
		ops: []opcode{
			{0x10, "ADD", "RRR", "Adds registers B and C into register A."},
			{0x11, "AND", "RRR", "Bitwise ANDs registers B and C into register A."},
			{0x12, "DIV", "RRR", "Divides register B by register C into register A."},
			{0x13, "EQ", "RRR", "Sets register A to whether registers B and C are equal."},
			{0x14, "EXP", "RRR", "Raises register B to the power of register C into register A."},
			{0x15, "GT", "RRR", "Sets register A to whether register B is greater than register C."},
			{0x16, "LT", "RRR", "Sets register A to whether register B is less than register C."},
			{0x17, "MLOG", "RRR", "Sets register A to the integer logarithm of register B in base register C."},
			{0x18, "MROO", "RRR", "Sets register A to the integer register C-th root of register B."},
			{0x19, "MOD", "RRR", "Sets register A to register B modulo register C."},
			{0x1A, "MOVE", "RR", "Copies register B into register A."},
			{0x1B, "MUL", "RRR", "Multiplies registers B and C into register A."},
			{0x1C, "NOT", "RR", "Bitwise NOTs register B into register A."},
			{0x1D, "OR", "RRR", "Bitwise ORs registers B and C into register A."},
			{0x1E, "SLL", "RRR", "Shifts register B left by register C bits into register A."},
			{0x1F, "SRL", "RRR", "Shifts register B right by register C bits into register A."},
			{0x20, "SUB", "RRR", "Subtracts register C from register B into register A."},
			{0x21, "XOR", "RRR", "Bitwise XORs registers B and C into register A."},
			{0x22, "MLDV", "RRRR", "Sets register A to register B times register C divided by register D, without intermediate overflow."},
		},
	},
	{
		title: "Memory",
		ops: []opcode{
			{0x30, "ALOC", "R", "Allocates register A bytes on the heap."},
			{0x31, "MCL", "RR", "Clears register B bytes starting at the address in register A."},
			{0x32, "MCP", "RRR", "Copies register C bytes from the address in register B to the address in register A."},
			{0x33, "MEQ", "RRRR", "Sets register A to whether the register D bytes at the addresses in registers B and C are equal."},
			{0x34, "CFE", "R", "Extends the current call frame's stack by register A bytes."},
			{0x35, "CFS", "R", "Shrinks the current call frame's stack by register A bytes."},
		},
	},
	{
		title: "Logging and hashing",
		ops: []opcode{
			{0x40, "LOG", "RRRR", "Emits a log record holding the values of registers A, B, C and D."},
			{0x41, "LOGD", "RRRR", "Emits a log record tagged with registers A and B holding the register D bytes at the address in register C."},
			{0x42, "KECK", "RRR", "Writes the Keccak-256 hash of the register C bytes at the address in register B to the address in register A."},
			{0x43, "SHA2", "RRR", "Writes the SHA-256 hash of the register C bytes at the address in register B to the address in register A."},
			{0x44, "ECK1", "RRR", "Writes the secp256k1 public key recovered from the signature at register B over the hash at register C to the address in register A."},
		},
	},
	{
		title: "Register and 12-bit immediate",
		ops: []opcode{
			{0x50, "ADDI", "RRI12", "Adds register B and the immediate into register A."},
			{0x51, "ANDI", "RRI12", "Bitwise ANDs register B and the immediate into register A."},
			{0x52, "DIVI", "RRI12", "Divides register B by the immediate into register A."},
			{0x53, "EXPI", "RRI12", "Raises register B to the power of the immediate into register A."},
			{0x54, "MODI", "RRI12", "Sets register A to register B modulo the immediate."},
			{0x55, "MULI", "RRI12", "Multiplies register B and the immediate into register A."},
			{0x56, "ORI", "RRI12", "Bitwise ORs register B and the immediate into register A."},
			{0x57, "SLLI", "RRI12", "Shifts register B left by the immediate into register A."},
			{0x58, "SRLI", "RRI12", "Shifts register B right by the immediate into register A."},
			{0x59, "SUBI", "RRI12", "Subtracts the immediate from register B into register A."},
			{0x5A, "XORI", "RRI12", "Bitwise XORs register B and the immediate into register A."},
			{0x5B, "JNEI", "RRI12", "Jumps to the immediate instruction index if registers A and B differ."},
			{0x5C, "LB", "RRI12", "Loads the byte at the address in register B plus the immediate into register A."},
			{0x5D, "LW", "RRI12", "Loads the word at the address in register B plus the immediate words into register A."},
			{0x5E, "SB", "RRI12", "Stores the low byte of register B at the address in register A plus the immediate."},
			{0x5F, "SW", "RRI12", "Stores register B at the address in register A plus the immediate words."},
			{0x60, "MCPI", "RRI12", "Copies the immediate number of bytes from the address in register B to the address in register A."},
			{0x61, "JNZF", "RRI12", "Jumps forward by register B plus the immediate instructions if register A is not zero."},
			{0x62, "JNZB", "RRI12", "Jumps backward by register B plus the immediate instructions if register A is not zero."},
		},
	},
	{
		title: "Register and 18-bit immediate",
		ops: []opcode{
			{0x70, "MCLI", "RI18", "Clears the immediate number of bytes starting at the address in register A."},
			{0x71, "GM", "RI18", "Loads the VM metadata field selected by the immediate into register A."},
			{0x72, "MOVI", "RI18", "Loads the immediate into register A."},
			{0x73, "JNZI", "RI18", "Jumps to the immediate instruction index if register A is not zero."},
			{0x74, "JMPF", "RI18", "Jumps forward by register A plus the immediate instructions."},
			{0x75, "JMPB", "RI18", "Jumps backward by register A plus the immediate instructions."},
		},
	},
	{
		title: "24-bit immediate",
		ops: []opcode{
			{0x90, "JI", "I24", "Jumps to the immediate instruction index."},
			{0x91, "CFEI", "I24", "Extends the current call frame's stack by the immediate number of bytes."},
			{0x92, "CFSI", "I24", "Shrinks the current call frame's stack by the immediate number of bytes."},
			{0x93, "PSHL", "I24", "Pushes the low-bank registers selected by the immediate bitmask to the stack."},
			{0x94, "PSHH", "I24", "Pushes the high-bank registers selected by the immediate bitmask to the stack."},
			{0x95, "POPL", "I24", "Pops the low-bank registers selected by the immediate bitmask from the stack."},
			{0x96, "POPH", "I24", "Pops the high-bank registers selected by the immediate bitmask from the stack."},
		},
	},
}
