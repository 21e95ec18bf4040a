package nes

// addressingModeName returns a short mnemonic suffix for disassembly,
// matching the twelve kinds enumerated in spec.md 4.1.
func addressingModeName(m AddressingMode) string {
	switch m {
	case AddrImplied:
		return "IMP"
	case AddrImmediate:
		return "IMM"
	case AddrZeroPage:
		return "ZP0"
	case AddrZeroPageX:
		return "ZPX"
	case AddrZeroPageY:
		return "ZPY"
	case AddrAbsolute:
		return "ABS"
	case AddrAbsoluteX:
		return "ABX"
	case AddrAbsoluteY:
		return "ABY"
	case AddrAbsoluteIndirect:
		return "IND"
	case AddrIndirectX:
		return "IZX"
	case AddrIndirectY:
		return "IZY"
	case AddrRelative:
		return "REL"
	default:
		return "???"
	}
}
