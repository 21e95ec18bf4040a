package nes

// newOpcodeTable builds the 256-entry opcode dispatch table once, in the
// same spirit as the teacher's own "build lookup tables in the
// constructor" convention. Content is ported opcode-for-opcode from the
// reference implementation's fetch_instruction match, including the
// unofficial opcodes spec.md allows (LAX, SAX, DCP, ISC, SLO, RLA, SRE,
// RRA). The unofficial NOPs decode as NOP and $EB as SBC; the remaining
// unofficial opcodes, including LAX #imm ($AB), route to illegalHalt.
func newOpcodeTable() [256]Instruction {
	i := func(name string, mode AddressingMode, typ InstructionType, h opHandler) Instruction {
		return Instruction{Name: name, Mode: mode, Type: typ, Handler: h}
	}
	imp := AddrImplied

	var t [256]Instruction

	t[0x00] = i("BRK", imp, InstRead, opBRK)
	t[0x01] = i("ORA", AddrIndirectX, InstRead, opORA)
	t[0x02] = i("KIL", imp, InstRead, illegalHalt)
	t[0x03] = i("SLO", AddrIndirectX, InstReadModifyWrite, opSLO)
	t[0x04] = i("NOP", AddrZeroPage, InstRead, opNOP)
	t[0x05] = i("ORA", AddrZeroPage, InstRead, opORA)
	t[0x06] = i("ASL", AddrZeroPage, InstReadModifyWrite, opASL)
	t[0x07] = i("SLO", AddrZeroPage, InstReadModifyWrite, opSLO)
	t[0x08] = i("PHP", imp, InstRead, opPHP)
	t[0x09] = i("ORA", AddrImmediate, InstRead, opORA)
	t[0x0A] = i("ASL", imp, InstRead, opASL)
	t[0x0B] = i("ANC", AddrImmediate, InstRead, illegalHalt)
	t[0x0C] = i("NOP", AddrAbsolute, InstRead, opNOP)
	t[0x0D] = i("ORA", AddrAbsolute, InstRead, opORA)
	t[0x0E] = i("ASL", AddrAbsolute, InstReadModifyWrite, opASL)
	t[0x0F] = i("SLO", AddrAbsolute, InstReadModifyWrite, opSLO)

	t[0x10] = i("BPL", AddrRelative, InstBranching, opBPL)
	t[0x11] = i("ORA", AddrIndirectY, InstRead, opORA)
	t[0x12] = i("KIL", imp, InstRead, illegalHalt)
	t[0x13] = i("SLO", AddrIndirectY, InstReadModifyWrite, opSLO)
	t[0x14] = i("NOP", AddrZeroPageX, InstRead, opNOP)
	t[0x15] = i("ORA", AddrZeroPageX, InstRead, opORA)
	t[0x16] = i("ASL", AddrZeroPageX, InstReadModifyWrite, opASL)
	t[0x17] = i("SLO", AddrZeroPageX, InstReadModifyWrite, opSLO)
	t[0x18] = i("CLC", imp, InstRead, opCLC)
	t[0x19] = i("ORA", AddrAbsoluteY, InstRead, opORA)
	t[0x1A] = i("NOP", imp, InstRead, opNOP)
	t[0x1B] = i("SLO", AddrAbsoluteY, InstReadModifyWrite, opSLO)
	t[0x1C] = i("NOP", AddrAbsoluteX, InstRead, opNOP)
	t[0x1D] = i("ORA", AddrAbsoluteX, InstRead, opORA)
	t[0x1E] = i("ASL", AddrAbsoluteX, InstReadModifyWrite, opASL)
	t[0x1F] = i("SLO", AddrAbsoluteX, InstReadModifyWrite, opSLO)

	t[0x20] = i("JSR", AddrAbsolute, InstRead, opJSR)
	t[0x21] = i("AND", AddrIndirectX, InstRead, opAND)
	t[0x22] = i("KIL", imp, InstRead, illegalHalt)
	t[0x23] = i("RLA", AddrIndirectX, InstReadModifyWrite, opRLA)
	t[0x24] = i("BIT", AddrZeroPage, InstRead, opBIT)
	t[0x25] = i("AND", AddrZeroPage, InstRead, opAND)
	t[0x26] = i("ROL", AddrZeroPage, InstReadModifyWrite, opROL)
	t[0x27] = i("RLA", AddrZeroPage, InstReadModifyWrite, opRLA)
	t[0x28] = i("PLP", imp, InstRead, opPLP)
	t[0x29] = i("AND", AddrImmediate, InstRead, opAND)
	t[0x2A] = i("ROL", imp, InstRead, opROL)
	t[0x2B] = i("ANC", AddrImmediate, InstRead, illegalHalt)
	t[0x2C] = i("BIT", AddrAbsolute, InstRead, opBIT)
	t[0x2D] = i("AND", AddrAbsolute, InstRead, opAND)
	t[0x2E] = i("ROL", AddrAbsolute, InstReadModifyWrite, opROL)
	t[0x2F] = i("RLA", AddrAbsolute, InstReadModifyWrite, opRLA)

	t[0x30] = i("BMI", AddrRelative, InstBranching, opBMI)
	t[0x31] = i("AND", AddrIndirectY, InstRead, opAND)
	t[0x32] = i("KIL", imp, InstRead, illegalHalt)
	t[0x33] = i("RLA", AddrIndirectY, InstReadModifyWrite, opRLA)
	t[0x34] = i("NOP", AddrZeroPageX, InstRead, opNOP)
	t[0x35] = i("AND", AddrZeroPageX, InstRead, opAND)
	t[0x36] = i("ROL", AddrZeroPageX, InstReadModifyWrite, opROL)
	t[0x37] = i("RLA", AddrZeroPageX, InstReadModifyWrite, opRLA)
	t[0x38] = i("SEC", imp, InstRead, opSEC)
	t[0x39] = i("AND", AddrAbsoluteY, InstRead, opAND)
	t[0x3A] = i("NOP", imp, InstRead, opNOP)
	t[0x3B] = i("RLA", AddrAbsoluteY, InstReadModifyWrite, opRLA)
	t[0x3C] = i("NOP", AddrAbsoluteX, InstRead, opNOP)
	t[0x3D] = i("AND", AddrAbsoluteX, InstRead, opAND)
	t[0x3E] = i("ROL", AddrAbsoluteX, InstReadModifyWrite, opROL)
	t[0x3F] = i("RLA", AddrAbsoluteX, InstReadModifyWrite, opRLA)

	t[0x40] = i("RTI", imp, InstRead, opRTI)
	t[0x41] = i("EOR", AddrIndirectX, InstRead, opEOR)
	t[0x42] = i("KIL", imp, InstRead, illegalHalt)
	t[0x43] = i("SRE", AddrIndirectX, InstReadModifyWrite, opSRE)
	t[0x44] = i("NOP", AddrZeroPage, InstRead, opNOP)
	t[0x45] = i("EOR", AddrZeroPage, InstRead, opEOR)
	t[0x46] = i("LSR", AddrZeroPage, InstReadModifyWrite, opLSR)
	t[0x47] = i("SRE", AddrZeroPage, InstReadModifyWrite, opSRE)
	t[0x48] = i("PHA", imp, InstRead, opPHA)
	t[0x49] = i("EOR", AddrImmediate, InstRead, opEOR)
	t[0x4A] = i("LSR", imp, InstRead, opLSR)
	t[0x4B] = i("ALR", AddrImmediate, InstRead, illegalHalt)
	t[0x4C] = i("JMP", AddrAbsolute, InstBranching, opJMP)
	t[0x4D] = i("EOR", AddrAbsolute, InstRead, opEOR)
	t[0x4E] = i("LSR", AddrAbsolute, InstReadModifyWrite, opLSR)
	t[0x4F] = i("SRE", AddrAbsolute, InstReadModifyWrite, opSRE)

	t[0x50] = i("BVC", AddrRelative, InstBranching, opBVC)
	t[0x51] = i("EOR", AddrIndirectY, InstRead, opEOR)
	t[0x52] = i("KIL", imp, InstRead, illegalHalt)
	t[0x53] = i("SRE", AddrIndirectY, InstReadModifyWrite, opSRE)
	t[0x54] = i("NOP", AddrZeroPageX, InstRead, opNOP)
	t[0x55] = i("EOR", AddrZeroPageX, InstRead, opEOR)
	t[0x56] = i("LSR", AddrZeroPageX, InstReadModifyWrite, opLSR)
	t[0x57] = i("SRE", AddrZeroPageX, InstReadModifyWrite, opSRE)
	t[0x58] = i("CLI", imp, InstRead, opCLI)
	t[0x59] = i("EOR", AddrAbsoluteY, InstRead, opEOR)
	t[0x5A] = i("NOP", imp, InstRead, opNOP)
	t[0x5B] = i("SRE", AddrAbsoluteY, InstReadModifyWrite, opSRE)
	t[0x5C] = i("NOP", AddrAbsoluteX, InstRead, opNOP)
	t[0x5D] = i("EOR", AddrAbsoluteX, InstRead, opEOR)
	t[0x5E] = i("LSR", AddrAbsoluteX, InstReadModifyWrite, opLSR)
	t[0x5F] = i("SRE", AddrAbsoluteX, InstReadModifyWrite, opSRE)

	t[0x60] = i("RTS", imp, InstRead, opRTS)
	t[0x61] = i("ADC", AddrIndirectX, InstRead, opADC)
	t[0x62] = i("KIL", imp, InstRead, illegalHalt)
	t[0x63] = i("RRA", AddrIndirectX, InstReadModifyWrite, opRRA)
	t[0x64] = i("NOP", AddrZeroPage, InstRead, opNOP)
	t[0x65] = i("ADC", AddrZeroPage, InstRead, opADC)
	t[0x66] = i("ROR", AddrZeroPage, InstReadModifyWrite, opROR)
	t[0x67] = i("RRA", AddrZeroPage, InstReadModifyWrite, opRRA)
	t[0x68] = i("PLA", imp, InstRead, opPLA)
	t[0x69] = i("ADC", AddrImmediate, InstRead, opADC)
	t[0x6A] = i("ROR", imp, InstRead, opROR)
	t[0x6B] = i("ARR", AddrImmediate, InstRead, illegalHalt)
	t[0x6C] = i("JMP", AddrAbsoluteIndirect, InstRead, opJMP)
	t[0x6D] = i("ADC", AddrAbsolute, InstRead, opADC)
	t[0x6E] = i("ROR", AddrAbsolute, InstReadModifyWrite, opROR)
	t[0x6F] = i("RRA", AddrAbsolute, InstReadModifyWrite, opRRA)

	t[0x70] = i("BVS", AddrRelative, InstBranching, opBVS)
	t[0x71] = i("ADC", AddrIndirectY, InstRead, opADC)
	t[0x72] = i("KIL", imp, InstRead, illegalHalt)
	t[0x73] = i("RRA", AddrIndirectY, InstReadModifyWrite, opRRA)
	t[0x74] = i("NOP", AddrZeroPageX, InstRead, opNOP)
	t[0x75] = i("ADC", AddrZeroPageX, InstRead, opADC)
	t[0x76] = i("ROR", AddrZeroPageX, InstReadModifyWrite, opROR)
	t[0x77] = i("RRA", AddrZeroPageX, InstReadModifyWrite, opRRA)
	t[0x78] = i("SEI", imp, InstRead, opSEI)
	t[0x79] = i("ADC", AddrAbsoluteY, InstRead, opADC)
	t[0x7A] = i("NOP", imp, InstRead, opNOP)
	t[0x7B] = i("RRA", AddrAbsoluteY, InstReadModifyWrite, opRRA)
	t[0x7C] = i("NOP", AddrAbsoluteX, InstRead, opNOP)
	t[0x7D] = i("ADC", AddrAbsoluteX, InstRead, opADC)
	t[0x7E] = i("ROR", AddrAbsoluteX, InstReadModifyWrite, opROR)
	t[0x7F] = i("RRA", AddrAbsoluteX, InstReadModifyWrite, opRRA)

	t[0x80] = i("NOP", AddrImmediate, InstRead, opNOP)
	t[0x81] = i("STA", AddrIndirectX, InstWrite, opSTA)
	t[0x82] = i("NOP", AddrImmediate, InstRead, opNOP)
	t[0x83] = i("SAX", AddrIndirectX, InstWrite, opSAX)
	t[0x84] = i("STY", AddrZeroPage, InstWrite, opSTY)
	t[0x85] = i("STA", AddrZeroPage, InstWrite, opSTA)
	t[0x86] = i("STX", AddrZeroPage, InstWrite, opSTX)
	t[0x87] = i("SAX", AddrZeroPage, InstWrite, opSAX)
	t[0x88] = i("DEY", imp, InstRead, opDEY)
	t[0x89] = i("NOP", AddrImmediate, InstRead, opNOP)
	t[0x8A] = i("TXA", imp, InstRead, opTXA)
	t[0x8B] = i("XAA", AddrImmediate, InstRead, illegalHalt)
	t[0x8C] = i("STY", AddrAbsolute, InstWrite, opSTY)
	t[0x8D] = i("STA", AddrAbsolute, InstWrite, opSTA)
	t[0x8E] = i("STX", AddrAbsolute, InstWrite, opSTX)
	t[0x8F] = i("SAX", AddrAbsolute, InstWrite, opSAX)

	t[0x90] = i("BCC", AddrRelative, InstBranching, opBCC)
	t[0x91] = i("STA", AddrIndirectY, InstWrite, opSTA)
	t[0x92] = i("KIL", imp, InstRead, illegalHalt)
	t[0x93] = i("AHX", AddrIndirectY, InstWrite, illegalHalt)
	t[0x94] = i("STY", AddrZeroPageX, InstWrite, opSTY)
	t[0x95] = i("STA", AddrZeroPageX, InstWrite, opSTA)
	t[0x96] = i("STX", AddrZeroPageY, InstWrite, opSTX)
	t[0x97] = i("SAX", AddrZeroPageY, InstWrite, opSAX)
	t[0x98] = i("TYA", imp, InstRead, opTYA)
	t[0x99] = i("STA", AddrAbsoluteY, InstWrite, opSTA)
	t[0x9A] = i("TXS", imp, InstRead, opTXS)
	t[0x9B] = i("TAS", AddrAbsoluteY, InstWrite, illegalHalt)
	t[0x9C] = i("SHY", AddrAbsoluteX, InstWrite, illegalHalt)
	t[0x9D] = i("STA", AddrAbsoluteX, InstWrite, opSTA)
	t[0x9E] = i("SHX", AddrAbsoluteY, InstWrite, illegalHalt)
	t[0x9F] = i("AHX", AddrAbsoluteY, InstWrite, illegalHalt)

	t[0xA0] = i("LDY", AddrImmediate, InstRead, opLDY)
	t[0xA1] = i("LDA", AddrIndirectX, InstRead, opLDA)
	t[0xA2] = i("LDX", AddrImmediate, InstRead, opLDX)
	t[0xA3] = i("LAX", AddrIndirectX, InstRead, opLAX)
	t[0xA4] = i("LDY", AddrZeroPage, InstRead, opLDY)
	t[0xA5] = i("LDA", AddrZeroPage, InstRead, opLDA)
	t[0xA6] = i("LDX", AddrZeroPage, InstRead, opLDX)
	t[0xA7] = i("LAX", AddrZeroPage, InstRead, opLAX)
	t[0xA8] = i("TAY", imp, InstRead, opTAY)
	t[0xA9] = i("LDA", AddrImmediate, InstRead, opLDA)
	t[0xAA] = i("TAX", imp, InstRead, opTAX)
	t[0xAB] = i("LAX", AddrImmediate, InstRead, illegalHalt)
	t[0xAC] = i("LDY", AddrAbsolute, InstRead, opLDY)
	t[0xAD] = i("LDA", AddrAbsolute, InstRead, opLDA)
	t[0xAE] = i("LDX", AddrAbsolute, InstRead, opLDX)
	t[0xAF] = i("LAX", AddrAbsolute, InstRead, opLAX)

	t[0xB0] = i("BCS", AddrRelative, InstBranching, opBCS)
	t[0xB1] = i("LDA", AddrIndirectY, InstRead, opLDA)
	t[0xB2] = i("KIL", imp, InstRead, illegalHalt)
	t[0xB3] = i("LAX", AddrIndirectY, InstRead, opLAX)
	t[0xB4] = i("LDY", AddrZeroPageX, InstRead, opLDY)
	t[0xB5] = i("LDA", AddrZeroPageX, InstRead, opLDA)
	t[0xB6] = i("LDX", AddrZeroPageY, InstRead, opLDX)
	t[0xB7] = i("LAX", AddrZeroPageY, InstRead, opLAX)
	t[0xB8] = i("CLV", imp, InstRead, opCLV)
	t[0xB9] = i("LDA", AddrAbsoluteY, InstRead, opLDA)
	t[0xBA] = i("TSX", imp, InstRead, opTSX)
	t[0xBB] = i("LAS", AddrAbsoluteY, InstRead, illegalHalt)
	t[0xBC] = i("LDY", AddrAbsoluteX, InstRead, opLDY)
	t[0xBD] = i("LDA", AddrAbsoluteX, InstRead, opLDA)
	t[0xBE] = i("LDX", AddrAbsoluteY, InstRead, opLDX)
	t[0xBF] = i("LAX", AddrAbsoluteY, InstRead, opLAX)

	t[0xC0] = i("CPY", AddrImmediate, InstRead, opCPY)
	t[0xC1] = i("CMP", AddrIndirectX, InstRead, opCMP)
	t[0xC2] = i("NOP", AddrImmediate, InstRead, opNOP)
	t[0xC3] = i("DCP", AddrIndirectX, InstReadModifyWrite, opDCP)
	t[0xC4] = i("CPY", AddrZeroPage, InstRead, opCPY)
	t[0xC5] = i("CMP", AddrZeroPage, InstRead, opCMP)
	t[0xC6] = i("DEC", AddrZeroPage, InstReadModifyWrite, opDEC)
	t[0xC7] = i("DCP", AddrZeroPage, InstReadModifyWrite, opDCP)
	t[0xC8] = i("INY", imp, InstRead, opINY)
	t[0xC9] = i("CMP", AddrImmediate, InstRead, opCMP)
	t[0xCA] = i("DEX", imp, InstRead, opDEX)
	t[0xCB] = i("AXS", AddrImmediate, InstRead, illegalHalt)
	t[0xCC] = i("CPY", AddrAbsolute, InstRead, opCPY)
	t[0xCD] = i("CMP", AddrAbsolute, InstRead, opCMP)
	t[0xCE] = i("DEC", AddrAbsolute, InstReadModifyWrite, opDEC)
	t[0xCF] = i("DCP", AddrAbsolute, InstReadModifyWrite, opDCP)

	t[0xD0] = i("BNE", AddrRelative, InstBranching, opBNE)
	t[0xD1] = i("CMP", AddrIndirectY, InstRead, opCMP)
	t[0xD2] = i("KIL", imp, InstRead, illegalHalt)
	t[0xD3] = i("DCP", AddrIndirectY, InstReadModifyWrite, opDCP)
	t[0xD4] = i("NOP", AddrZeroPageX, InstRead, opNOP)
	t[0xD5] = i("CMP", AddrZeroPageX, InstRead, opCMP)
	t[0xD6] = i("DEC", AddrZeroPageX, InstReadModifyWrite, opDEC)
	t[0xD7] = i("DCP", AddrZeroPageX, InstReadModifyWrite, opDCP)
	t[0xD8] = i("CLD", imp, InstRead, opCLD)
	t[0xD9] = i("CMP", AddrAbsoluteY, InstRead, opCMP)
	t[0xDA] = i("NOP", imp, InstRead, opNOP)
	t[0xDB] = i("DCP", AddrAbsoluteY, InstReadModifyWrite, opDCP)
	t[0xDC] = i("NOP", AddrAbsoluteX, InstRead, opNOP)
	t[0xDD] = i("CMP", AddrAbsoluteX, InstRead, opCMP)
	t[0xDE] = i("DEC", AddrAbsoluteX, InstReadModifyWrite, opDEC)
	t[0xDF] = i("DCP", AddrAbsoluteX, InstReadModifyWrite, opDCP)

	t[0xE0] = i("CPX", AddrImmediate, InstRead, opCPX)
	t[0xE1] = i("SBC", AddrIndirectX, InstRead, opSBC)
	t[0xE2] = i("NOP", AddrImmediate, InstRead, opNOP)
	t[0xE3] = i("ISC", AddrIndirectX, InstReadModifyWrite, opISC)
	t[0xE4] = i("CPX", AddrZeroPage, InstRead, opCPX)
	t[0xE5] = i("SBC", AddrZeroPage, InstRead, opSBC)
	t[0xE6] = i("INC", AddrZeroPage, InstReadModifyWrite, opINC)
	t[0xE7] = i("ISC", AddrZeroPage, InstReadModifyWrite, opISC)
	t[0xE8] = i("INX", imp, InstRead, opINX)
	t[0xE9] = i("SBC", AddrImmediate, InstRead, opSBC)
	t[0xEA] = i("NOP", imp, InstRead, opNOP)
	t[0xEB] = i("SBC", AddrImmediate, InstRead, opSBC)
	t[0xEC] = i("CPX", AddrAbsolute, InstRead, opCPX)
	t[0xED] = i("SBC", AddrAbsolute, InstRead, opSBC)
	t[0xEE] = i("INC", AddrAbsolute, InstReadModifyWrite, opINC)
	t[0xEF] = i("ISC", AddrAbsolute, InstReadModifyWrite, opISC)

	t[0xF0] = i("BEQ", AddrRelative, InstBranching, opBEQ)
	t[0xF1] = i("SBC", AddrIndirectY, InstRead, opSBC)
	t[0xF2] = i("KIL", imp, InstRead, illegalHalt)
	t[0xF3] = i("ISC", AddrIndirectY, InstReadModifyWrite, opISC)
	t[0xF4] = i("NOP", AddrZeroPageX, InstRead, opNOP)
	t[0xF5] = i("SBC", AddrZeroPageX, InstRead, opSBC)
	t[0xF6] = i("INC", AddrZeroPageX, InstReadModifyWrite, opINC)
	t[0xF7] = i("ISC", AddrZeroPageX, InstReadModifyWrite, opISC)
	t[0xF8] = i("SED", imp, InstRead, opSED)
	t[0xF9] = i("SBC", AddrAbsoluteY, InstRead, opSBC)
	t[0xFA] = i("NOP", imp, InstRead, opNOP)
	t[0xFB] = i("ISC", AddrAbsoluteY, InstReadModifyWrite, opISC)
	t[0xFC] = i("NOP", AddrAbsoluteX, InstRead, opNOP)
	t[0xFD] = i("SBC", AddrAbsoluteX, InstRead, opSBC)
	t[0xFE] = i("INC", AddrAbsoluteX, InstReadModifyWrite, opINC)
	t[0xFF] = i("ISC", AddrAbsoluteX, InstReadModifyWrite, opISC)

	return t
}
