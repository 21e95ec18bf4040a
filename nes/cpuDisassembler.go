package nes

import (
	"bytes"
	"fmt"
)

// Disassemble walks bus memory from startAddr to endAddr and produces a
// human-readable instruction listing keyed by address, for the debug panel.
// Unlike the incremental trace the CPU itself builds in cpu.disassembly as
// it executes, this statically decodes whatever bytes currently sit in
// memory, so it can show instructions the CPU hasn't reached yet.
//
// Much help from https://github.com/OneLoneCoder/olcNES
func (cpu *Cpu6502) Disassemble(bus CPUBus, startAddr, endAddr uint16) map[uint16]string {
	var lineDiss bytes.Buffer

	// Needs to be bigger than uint16 to detect overflow past endAddr.
	var addr uint32 = uint32(startAddr)

	disassembly := make(map[uint16]string)

	for addr <= uint32(endAddr) {
		lineAddr := uint16(addr)
		lineDiss.WriteString(fmt.Sprintf("$%04X: ", lineAddr))

		opcode := bus.CpuRead(uint16(addr))
		addr++
		ins := &cpu.opLookup[opcode]
		lineDiss.WriteString(fmt.Sprintf("%s ", ins.Name))

		switch ins.Mode {
		case AddrImplied:
			lineDiss.WriteString("{IMP}")
		case AddrImmediate:
			value := bus.CpuRead(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("#$%02X {IMM}", value))
		case AddrRelative:
			value := bus.CpuRead(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("$%02X [%04X] {REL}", value, uint16(addr)+uint16(int8(value))))
		case AddrZeroPage:
			lo := bus.CpuRead(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("$%02X {ZP0}", lo))
		case AddrZeroPageX:
			lo := bus.CpuRead(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("$%02X, X {ZPX}", lo))
		case AddrZeroPageY:
			lo := bus.CpuRead(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("$%02X, Y {ZPY}", lo))
		case AddrAbsolute:
			lo := bus.CpuRead(uint16(addr))
			addr++
			hi := bus.CpuRead(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("$%04X {ABS}", uint16(hi)<<8|uint16(lo)))
		case AddrAbsoluteX:
			lo := bus.CpuRead(uint16(addr))
			addr++
			hi := bus.CpuRead(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("$%04X, X {ABX}", uint16(hi)<<8|uint16(lo)))
		case AddrAbsoluteY:
			lo := bus.CpuRead(uint16(addr))
			addr++
			hi := bus.CpuRead(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("$%04X, Y {ABY}", uint16(hi)<<8|uint16(lo)))
		case AddrAbsoluteIndirect:
			lo := bus.CpuRead(uint16(addr))
			addr++
			hi := bus.CpuRead(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("($%04X) {IND}", uint16(hi)<<8|uint16(lo)))
		case AddrIndirectX:
			lo := bus.CpuRead(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("($%02X, X) {IZX}", lo))
		case AddrIndirectY:
			lo := bus.CpuRead(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("($%02X), Y {IZY}", lo))
		}

		disassembly[lineAddr] = lineDiss.String()
		lineDiss.Reset()
	}

	return disassembly
}
