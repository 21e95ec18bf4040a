package nes

import (
	"testing"

	"github.com/go-test/deep"
)

// cpuSnapshot is the nestest-log tuple spec.md 8 names as the CPU's primary
// testable invariant: "(PC, A, X, Y, P, SP, total_cycles) must match
// bit-for-bit" after every retired instruction. Real nestest.log comparison
// needs the external nestest.nes ROM and its accompanying golden log, which
// aren't part of this module's tree; this test instead hand-derives the
// same tuple, instruction by instruction, for a short program built from
// spec.md section 8's own literal scenarios (2, 3, 4), and diffs the whole
// struct at once with go-test/deep the way jmchacon-6502 diffs CPU
// snapshots rather than asserting field-by-field.
type cpuSnapshot struct {
	PC     uint16
	A      byte
	X      byte
	Y      byte
	P      byte
	SP     byte
	Cycles uint64
}

func snapshot(cpu *Cpu6502) cpuSnapshot {
	return cpuSnapshot{cpu.Pc, cpu.A, cpu.X, cpu.Y, cpu.P, cpu.Sp, cpu.CycleCount}
}

// TestNestestGoldenTuples runs scenario 2 (ADC overflow into a negative
// result), scenario 3 (ADC producing zero with carry out), and scenario 4
// (INX wrapping X to zero) back-to-back and diffs the full
// (PC,A,X,Y,P,SP,total_cycles) tuple against hand-derived expectations
// after every retired instruction.
func TestNestestGoldenTuples(t *testing.T) {
	program := []byte{
		0xA9, 0x7F, // LDA #$7F
		0x69, 0x01, // ADC #$01        -> scenario 2: A=$80 N=1 V=1 Z=0 C=0
		0xA9, 0x80, // LDA #$80
		0x69, 0x80, // ADC #$80        -> scenario 3: A=$00 C=1 V=1 Z=1 N=0
		0xA2, 0xFF, // LDX #$FF
		0xE8, // INX                  -> scenario 4: X=$00 Z=1 N=0
	}
	cpu, bus := newTestCPU(program, 0x8000)

	want := []cpuSnapshot{
		{PC: 0x8002, A: 0x7F, X: 0x00, Y: 0x00, P: 0x24, SP: 0xFD, Cycles: 9},
		{PC: 0x8004, A: 0x80, X: 0x00, Y: 0x00, P: 0xE4, SP: 0xFD, Cycles: 11},
		{PC: 0x8006, A: 0x80, X: 0x00, Y: 0x00, P: 0xE4, SP: 0xFD, Cycles: 13},
		{PC: 0x8008, A: 0x00, X: 0x00, Y: 0x00, P: 0x67, SP: 0xFD, Cycles: 15},
		{PC: 0x800A, A: 0x00, X: 0xFF, Y: 0x00, P: 0xE5, SP: 0xFD, Cycles: 17},
		{PC: 0x800B, A: 0x00, X: 0x00, Y: 0x00, P: 0x67, SP: 0xFD, Cycles: 19},
	}

	for i, w := range want {
		step(cpu, bus)
		got := snapshot(cpu)
		if diff := deep.Equal(w, got); diff != nil {
			t.Errorf("instruction %d tuple mismatch: %v", i, diff)
		}
	}
}

// TestNestestErrorCodesClean exercises CheckForNestestErrors against the
// all-clear state (both nestest error bytes zero), matching the golden run
// above where no sub-test ever signals failure.
func TestNestestErrorCodesClean(t *testing.T) {
	bus := NewBus(false, false)
	bus.CheckForNestestErrors() // must not panic; nothing to assert on stdlib log output
	if bus.Ram[0x02] != 0 || bus.Ram[0x03] != 0 {
		t.Fatalf("expected clean nestest error bytes on a fresh bus, got %#x/%#x", bus.Ram[0x02], bus.Ram[0x03])
	}
}
