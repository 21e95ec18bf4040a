package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusRamMirroring(t *testing.T) {
	bus := NewBus(false, false)
	bus.CpuWrite(0x0000, 0x42)
	assert.Equal(t, byte(0x42), bus.CpuRead(0x0800))
	assert.Equal(t, byte(0x42), bus.CpuRead(0x1800))
}

func TestBusControllerSharedStrobe(t *testing.T) {
	bus := NewBus(false, false)
	bus.Controller.pads[0].buttonState[keyA] = true
	bus.Controller.pads[1].buttonState[keyB] = true

	bus.CpuWrite(0x4016, 1)
	bus.CpuWrite(0x4016, 0)

	assert.Equal(t, byte(1), bus.CpuRead(0x4016))
	for i := 0; i < 6; i++ {
		bus.CpuRead(0x4016)
	}

	assert.Equal(t, byte(0), bus.CpuRead(0x4017))
	assert.Equal(t, byte(1), bus.CpuRead(0x4017))
}

func TestDmaBurstTakes512SubCycles(t *testing.T) {
	bus := NewBus(false, false)
	bus.Ram[0x0200] = 0xAB

	bus.CpuWrite(0x4014, 0x02)
	assert.True(t, bus.Dma.active())

	for i := 0; i < 512; i++ {
		bus.Dma.Execute(bus)
	}

	assert.False(t, bus.Dma.active())
	assert.Equal(t, byte(0xAB), bus.Ppu.primary.read(0))
}

func TestClockRunsCpuAtOneThirdPpuRate(t *testing.T) {
	bus := NewBus(false, false)
	bus.Cart = newBlankCartridgeForTest()
	bus.Ppu.ConnectCartridge(bus.Cart)
	bus.Reset()

	startCycles := bus.Cpu.CycleCount
	for i := 0; i < 9; i++ {
		bus.Clock()
	}
	assert.Equal(t, uint64(3), bus.Cpu.CycleCount-startCycles)
}

// newBlankCartridgeForTest builds a minimal NROM cartridge entirely in
// memory so bus tests don't depend on an external ROM file being present.
func newBlankCartridgeForTest() *Cartridge {
	prg := make([]byte, 0x4000)
	prg[0x3FFC] = 0x00 // reset vector low -> $8000
	prg[0x3FFD] = 0x80
	return &Cartridge{
		prgMem: prg,
		chrMem: make([]byte, 0x2000),
		mapper: NewMapper000(1, 1, MirrorHorizontal),
	}
}
