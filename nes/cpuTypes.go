package nes

// cycleResult is the per-sub-cycle outcome of a CPU tick, mirroring the
// CycleResult enum the reference implementation uses to drive its stage
// machine.
type cycleResult int

const (
	cycleContinue cycleResult = iota
	cycleEndCycle
	cycleEndInstruction
	cycleError
)

// AddressingMode identifies one of the twelve 6502 addressing modes.
type AddressingMode int

const (
	AddrImplied AddressingMode = iota
	AddrImmediate
	AddrZeroPage
	AddrZeroPageX
	AddrZeroPageY
	AddrAbsolute
	AddrAbsoluteX
	AddrAbsoluteY
	AddrAbsoluteIndirect
	AddrIndirectX
	AddrIndirectY
	AddrRelative
)

// InstructionType classifies how an opcode's addressing machine drives the
// bus: a plain read, a read-modify-write, a write, or a branch.
type InstructionType int

const (
	InstRead InstructionType = iota
	InstReadModifyWrite
	InstWrite
	InstBranching
)

// interruptType is the pending-interrupt latch described in spec.md 3.
type interruptType int

const (
	interruptNone interruptType = iota
	interruptReset
	interruptNMI
	interruptIRQ
	interruptBRK
)

// opHandler executes one sub-cycle of an instruction's behavior, after
// resolveAddressing (when applicable) has produced a value/address.
type opHandler func(cpu *Cpu6502, bus CPUBus) cycleResult

// Instruction is one entry of the 256-entry opcode dispatch table.
type Instruction struct {
	Name     string
	Mode     AddressingMode
	Type     InstructionType
	Handler  opHandler
}

// Flags are the bit positions of the CPU status register P.
const (
	FlagCarry     byte = 1 << 0
	FlagZero      byte = 1 << 1
	FlagInterrupt byte = 1 << 2
	FlagDecimal   byte = 1 << 3
	FlagB2        byte = 1 << 4
	FlagB1        byte = 1 << 5
	FlagOverflow  byte = 1 << 6
	FlagNegative  byte = 1 << 7
)
