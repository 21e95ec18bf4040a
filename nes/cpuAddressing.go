package nes

// resolveAddressing dispatches to the sub-cycle machine for cpu.mode,
// advancing cpu.value/cpu.address as described in spec.md 4.1. Ported
// directly from the reference implementation's resolve_addressing.
func (cpu *Cpu6502) resolveAddressing(bus CPUBus) cycleResult {
	switch cpu.mode {
	case AddrImmediate:
		return cpu.immediateAddressing(bus)
	case AddrImplied:
		return cpu.impliedAddressing(bus)
	case AddrAbsolute:
		return cpu.absoluteAddressing(bus)
	case AddrAbsoluteX:
		return cpu.absoluteIndexedAddressing(bus, cpu.X)
	case AddrAbsoluteY:
		return cpu.absoluteIndexedAddressing(bus, cpu.Y)
	case AddrAbsoluteIndirect:
		return cpu.absoluteIndirectAddressing(bus)
	case AddrZeroPage:
		return cpu.zeroPageAddressing(bus)
	case AddrZeroPageX:
		return cpu.zeroPageIndexedAddressing(bus, cpu.X)
	case AddrZeroPageY:
		return cpu.zeroPageIndexedAddressing(bus, cpu.Y)
	case AddrIndirectX:
		return cpu.indirectXAddressing(bus)
	case AddrIndirectY:
		return cpu.indirectYAddressing(bus)
	case AddrRelative:
		return cpu.relativeAddressing(bus)
	default:
		return cycleError
	}
}

func (cpu *Cpu6502) immediateAddressing(bus CPUBus) cycleResult {
	switch cpu.stage {
	case 2:
		cpu.value = cpu.readMemory(bus, cpu.Pc)
		cpu.Pc++
		return cycleContinue
	default:
		return cycleError
	}
}

// impliedAddressing also serves opcodes that operate on the accumulator
// (ASL A, LSR A, ROL A, ROR A); the handler itself checks cpu.mode to know
// whether to touch cpu.A or cpu.value, exactly as the reference does.
func (cpu *Cpu6502) impliedAddressing(bus CPUBus) cycleResult {
	switch cpu.stage {
	case 2:
		cpu.readMemory(bus, cpu.Pc)
		return cycleContinue
	default:
		return cycleError
	}
}

func (cpu *Cpu6502) absoluteAddressing(bus CPUBus) cycleResult {
	switch cpu.stage {
	case 2:
		low := uint16(cpu.readMemory(bus, cpu.Pc))
		cpu.address = (cpu.address & 0xFF00) | low
		cpu.Pc++
		return cycleEndCycle
	case 3:
		high := uint16(cpu.readMemory(bus, cpu.Pc)) << 8
		cpu.address = high | (cpu.address & 0xFF)
		cpu.Pc++
		if cpu.instTyp == InstBranching {
			return cycleContinue
		}
		return cycleEndCycle
	case 4:
		switch cpu.instTyp {
		case InstRead:
			cpu.value = cpu.readMemory(bus, cpu.address)
			return cycleContinue
		case InstReadModifyWrite:
			cpu.value = cpu.readMemory(bus, cpu.address)
			return cycleEndCycle
		case InstWrite:
			return cycleContinue
		default:
			return cycleError
		}
	case 5:
		if cpu.instTyp == InstReadModifyWrite {
			cpu.writeMemory(bus, cpu.address, cpu.value)
			return cycleEndCycle
		}
		return cycleError
	case 6:
		if cpu.instTyp == InstReadModifyWrite {
			return cycleContinue
		}
		return cycleError
	default:
		return cycleError
	}
}

func (cpu *Cpu6502) absoluteIndirectAddressing(bus CPUBus) cycleResult {
	switch cpu.stage {
	case 2:
		low := uint16(cpu.readMemory(bus, cpu.Pc))
		cpu.address = (cpu.address & 0xFF00) | low
		cpu.Pc++
		return cycleEndCycle
	case 3:
		high := uint16(cpu.readMemory(bus, cpu.Pc)) << 8
		cpu.address = high | (cpu.address & 0xFF)
		cpu.Pc++
		return cycleEndCycle
	case 4:
		cpu.value = cpu.readMemory(bus, cpu.address)
		return cycleEndCycle
	case 5:
		// Low-byte-wrap quirk: the high-byte fetch address increments only
		// the low byte of the pointer, never carrying into the high byte.
		ptrLow := (cpu.address + 1) & 0xFF
		ptr := (cpu.address & 0xFF00) | ptrLow
		high := uint16(cpu.readMemory(bus, ptr)) << 8
		cpu.address = high | uint16(cpu.value)
		return cycleContinue
	default:
		return cycleError
	}
}

func (cpu *Cpu6502) absoluteIndexedAddressing(bus CPUBus, index byte) cycleResult {
	switch cpu.stage {
	case 2:
		low := uint16(cpu.readMemory(bus, cpu.Pc))
		cpu.address = (cpu.address & 0xFF00) | low
		cpu.Pc++
		return cycleEndCycle
	case 3:
		high := uint16(cpu.readMemory(bus, cpu.Pc)) << 8
		cpu.address = high | (cpu.address & 0xFF)
		cpu.Pc++
		return cycleEndCycle
	case 4:
		base := cpu.address
		uncarriedLow := (base & 0xFF) + uint16(index)
		guess := (base & 0xFF00) | (uncarriedLow & 0xFF)
		cpu.value = cpu.readMemory(bus, guess)
		if cpu.instTyp == InstRead && uncarriedLow <= 0xFF {
			cpu.address = base + uint16(index)
			return cycleContinue
		}
		cpu.address = base + uint16(index)
		return cycleEndCycle
	case 5:
		switch cpu.instTyp {
		case InstRead:
			cpu.value = cpu.readMemory(bus, cpu.address)
			return cycleContinue
		case InstReadModifyWrite:
			cpu.value = cpu.readMemory(bus, cpu.address)
			return cycleEndCycle
		case InstWrite:
			return cycleContinue
		default:
			return cycleError
		}
	case 6:
		if cpu.instTyp == InstReadModifyWrite {
			cpu.writeMemory(bus, cpu.address, cpu.value)
			return cycleEndCycle
		}
		return cycleError
	case 7:
		if cpu.instTyp == InstReadModifyWrite {
			return cycleContinue
		}
		return cycleError
	default:
		return cycleError
	}
}

func (cpu *Cpu6502) zeroPageAddressing(bus CPUBus) cycleResult {
	switch cpu.stage {
	case 2:
		cpu.address = uint16(cpu.readMemory(bus, cpu.Pc))
		cpu.Pc++
		return cycleEndCycle
	case 3:
		switch cpu.instTyp {
		case InstRead:
			cpu.value = cpu.readMemory(bus, cpu.address)
			return cycleContinue
		case InstReadModifyWrite:
			cpu.value = cpu.readMemory(bus, cpu.address)
			return cycleEndCycle
		case InstWrite:
			return cycleContinue
		default:
			return cycleError
		}
	case 4:
		if cpu.instTyp == InstReadModifyWrite {
			cpu.writeMemory(bus, cpu.address, cpu.value)
			return cycleEndCycle
		}
		return cycleError
	case 5:
		if cpu.instTyp == InstReadModifyWrite {
			return cycleContinue
		}
		return cycleError
	default:
		return cycleError
	}
}

func (cpu *Cpu6502) zeroPageIndexedAddressing(bus CPUBus, index byte) cycleResult {
	switch cpu.stage {
	case 2:
		cpu.address = uint16(cpu.readMemory(bus, cpu.Pc))
		cpu.Pc++
		return cycleEndCycle
	case 3:
		cpu.readMemory(bus, cpu.address)
		cpu.address = (cpu.address + uint16(index)) & 0xFF
		return cycleEndCycle
	case 4:
		switch cpu.instTyp {
		case InstRead:
			cpu.value = cpu.readMemory(bus, cpu.address)
			return cycleContinue
		case InstReadModifyWrite:
			cpu.value = cpu.readMemory(bus, cpu.address)
			return cycleEndCycle
		case InstWrite:
			return cycleContinue
		default:
			return cycleError
		}
	case 5:
		if cpu.instTyp == InstReadModifyWrite {
			cpu.writeMemory(bus, cpu.address, cpu.value)
			return cycleEndCycle
		}
		return cycleError
	case 6:
		if cpu.instTyp == InstReadModifyWrite {
			return cycleContinue
		}
		return cycleError
	default:
		return cycleError
	}
}

func (cpu *Cpu6502) relativeAddressing(bus CPUBus) cycleResult {
	switch cpu.stage {
	case 2:
		cpu.value = cpu.readMemory(bus, cpu.Pc)
		cpu.Pc++
		return cycleContinue
	case 3:
		offset := int16(int8(cpu.value))
		target := uint16(int16(cpu.Pc) + offset)
		if (cpu.Pc & 0xFF00) != (target & 0xFF00) {
			// Page crossed: one more dummy cycle before PC actually moves.
			return cycleEndCycle
		}
		cpu.Pc = target
		return cycleEndInstruction
	case 4:
		offset := int16(int8(cpu.value))
		cpu.Pc = uint16(int16(cpu.Pc) + offset)
		return cycleEndInstruction
	default:
		return cycleError
	}
}

func (cpu *Cpu6502) indirectXAddressing(bus CPUBus) cycleResult {
	switch cpu.stage {
	case 2:
		cpu.address = uint16(cpu.readMemory(bus, cpu.Pc))
		cpu.Pc++
		return cycleEndCycle
	case 3:
		cpu.readMemory(bus, cpu.address)
		cpu.address = (cpu.address + uint16(cpu.X)) & 0xFF
		return cycleEndCycle
	case 4:
		cpu.value = cpu.readMemory(bus, cpu.address)
		return cycleEndCycle
	case 5:
		next := (cpu.address + 1) & 0xFF
		high := uint16(cpu.readMemory(bus, next)) << 8
		cpu.address = high | uint16(cpu.value)
		return cycleEndCycle
	case 6:
		switch cpu.instTyp {
		case InstRead:
			cpu.value = cpu.readMemory(bus, cpu.address)
			return cycleContinue
		case InstReadModifyWrite:
			cpu.value = cpu.readMemory(bus, cpu.address)
			return cycleEndCycle
		case InstWrite:
			return cycleContinue
		default:
			return cycleError
		}
	case 7:
		if cpu.instTyp == InstReadModifyWrite {
			cpu.writeMemory(bus, cpu.address, cpu.value)
			return cycleEndCycle
		}
		return cycleError
	case 8:
		if cpu.instTyp == InstReadModifyWrite {
			return cycleContinue
		}
		return cycleError
	default:
		return cycleError
	}
}

func (cpu *Cpu6502) indirectYAddressing(bus CPUBus) cycleResult {
	switch cpu.stage {
	case 2:
		cpu.address = uint16(cpu.readMemory(bus, cpu.Pc))
		cpu.Pc++
		return cycleEndCycle
	case 3:
		cpu.value = cpu.readMemory(bus, cpu.address)
		return cycleEndCycle
	case 4:
		next := (cpu.address + 1) & 0xFF
		high := uint16(cpu.readMemory(bus, next)) << 8
		cpu.address = high | uint16(cpu.value)
		return cycleEndCycle
	case 5:
		base := cpu.address
		uncarriedLow := (base & 0xFF) + uint16(cpu.Y)
		guess := (base & 0xFF00) | (uncarriedLow & 0xFF)
		cpu.value = cpu.readMemory(bus, guess)
		newAddr := base + uint16(cpu.Y)
		if cpu.instTyp == InstRead && uncarriedLow <= 0xFF {
			cpu.address = newAddr
			return cycleContinue
		}
		cpu.address = newAddr
		return cycleEndCycle
	case 6:
		switch cpu.instTyp {
		case InstRead:
			cpu.value = cpu.readMemory(bus, cpu.address)
			return cycleContinue
		case InstReadModifyWrite:
			cpu.value = cpu.readMemory(bus, cpu.address)
			return cycleEndCycle
		case InstWrite:
			return cycleContinue
		default:
			return cycleError
		}
	case 7:
		if cpu.instTyp == InstReadModifyWrite {
			cpu.writeMemory(bus, cpu.address, cpu.value)
			return cycleEndCycle
		}
		return cycleError
	case 8:
		if cpu.instTyp == InstReadModifyWrite {
			return cycleContinue
		}
		return cycleError
	default:
		return cycleError
	}
}
