package nes

import (
	"fmt"
	"image/color"
	"log"
	"time"
)

// Main bus used by the CPU.
type Bus struct {
	Cpu        *Cpu6502    // NES CPU.
	Ppu        *Ppu        // Picture processing unit.
	Ram        [2048]byte  // 2KB internal CPU RAM, mirrored every 0x0800 bytes.
	Cart       *Cartridge  // NES Cartridge.
	Controller *Controller // NES Controller.
	Dma        *Dma        // OAM DMA unit.
	Disp       *Display

	ClockCount int

	isDebug   bool // Enable debug panel
	isLogging bool // Enable logging
}

const (
	// RAM
	ramMinAddr uint16 = 0x0000
	ramMaxAddr uint16 = 0x1FFF
	ramMirror  uint16 = 0x07FF // mirror every 2KB.

	// PPU
	ppuMinAddr uint16 = 0x2000
	ppuMaxAddr uint16 = 0x3FFF
	ppuMirror  uint16 = 0x0007 // mirror every 8 bytes.

	// Cartridge (PRG-RAM and PRG-ROM), per spec.md 4.6.
	cartMinAddr uint16 = 0x4020
	cartMaxAddr uint16 = 0xFFFF

	// Frames per second
	fps float64 = 60.0988 // NTSC NES frame rate.
)

func NewBus(isDebug, isLogging bool) *Bus {
	// Create a new CPU. Here we use a 6502.
	cpu := NewCpu6502()

	// Attach devices to the bus.
	bus := &Bus{
		Cpu:        cpu,
		Ppu:        NewPpu(),
		Controller: NewController(),
		Dma:        NewDma(),
		isDebug:    isDebug,
		isLogging:  isLogging,
	}

	if isLogging {
		if err := cpu.EnableLogging(); err != nil {
			fmt.Println("Unable to enable CPU logging:", err)
		}
	}

	return bus
}

// Run the NES.
func (b *Bus) Run() {
	// Create a PixelGL display for the PPU to render to.
	display := NewDisplay(b.isDebug)
	b.Disp = display

	intervalInMilli := (1 / fps) * 1000
	interval := time.Duration(intervalInMilli) * time.Millisecond
	fmt.Println("Frame refresh time:", interval)

	// Use a timer to keep frames rendered steadily at a set FPS.
	var t time.Time
	for !display.window.Closed() {
		t = time.Now()

		for !b.Ppu.FetchFrame() {
			b.Clock()
		}

		b.blitFrame()
		b.Controller.updateControllerInput(b.Disp.window)

		if b.isDebug {
			b.DrawDebugPanel()
		}

		b.Disp.UpdateScreen()

		if b.isLogging {
			TimeTrack(t)
		}

		time.Sleep(interval - time.Since(t))
	}
}

// blitFrame copies the PPU's RGBA framebuffer into the display's game image.
func (b *Bus) blitFrame() {
	buf := b.Ppu.FrameBuffer()
	for y := 0; y < 240; y++ {
		for x := 0; x < 256; x++ {
			i := (y*256 + x) * 4
			b.Disp.DrawPixel(x, 239-y, color.RGBA{buf[i], buf[i+1], buf[i+2], buf[i+3]})
		}
	}
}

// Used by the CPU to read data from the main bus at a specified address.
func (b *Bus) CpuRead(addr uint16) byte {
	switch {
	case addr >= ramMinAddr && addr <= ramMaxAddr:
		return b.Ram[addr&ramMirror]
	case addr >= ppuMinAddr && addr <= ppuMaxAddr:
		return b.Ppu.cpuRead(byte(addr & ppuMirror))
	case addr == 0x4016:
		return b.Controller.CpuRead(0)
	case addr == 0x4017:
		return b.Controller.CpuRead(1)
	case addr >= cartMinAddr && addr <= cartMaxAddr:
		var data byte
		b.Cart.cpuRead(addr, &data)
		return data
	}
	return 0
}

// Used by the CPU to write data to the main bus at a specified address.
func (b *Bus) CpuWrite(addr uint16, data byte) {
	switch {
	case addr >= ramMinAddr && addr <= ramMaxAddr:
		b.Ram[addr&ramMirror] = data
	case addr >= ppuMinAddr && addr <= ppuMaxAddr:
		b.Ppu.cpuWrite(byte(addr&ppuMirror), data)
	case addr == 0x4014:
		b.Dma.CpuWrite(addr, data)
	case addr == 0x4016:
		b.Controller.CpuWrite(data)
	case addr >= cartMinAddr && addr <= cartMaxAddr:
		b.Cart.cpuWrite(addr, data)
	}
}

// Load a cartridge to the NES. The cartridge is connected to both the CPU and PPU.
func (b *Bus) InsertCartridge(cart *Cartridge) {
	b.Cart = cart
	b.Ppu.ConnectCartridge(cart)
}

// Reset the NES.
func (b *Bus) Reset() {
	b.Cpu.Reset()

	b.ClockCount = 0
}

// Clock advances the whole system by one PPU pixel-clock dot (spec.md 2,
// "Composition"): the PPU ticks every master clock; every third tick, a
// pending sprite DMA gets one copy sub-cycle, otherwise the CPU executes one
// sub-cycle; the NMI latch is sampled every tick.
func (b *Bus) Clock() {
	b.Ppu.Tick()

	if b.ClockCount%3 == 0 {
		if b.Dma.active() {
			b.Dma.Execute(b)
		} else {
			b.Cpu.Tick(b)
		}
	}

	if b.Ppu.NmiState {
		b.Ppu.NmiState = false
		b.Cpu.SetNMI()
	}

	b.ClockCount++
}

// CheckForNestestErrors reads the nestest convention's two error-code
// bytes (RAM 0x02/0x03, written by nestest.nes itself when a sub-test
// fails) and logs any non-zero code, per spec.md 8's nestest-log invariant.
func (b *Bus) CheckForNestestErrors() {
	const errAddr1 = 0x02
	const errAddr2 = 0x03

	if b.Ram[errAddr1] != 0x00 {
		log.Printf("nestest error %#X\n", b.Ram[errAddr1])
	}
	if b.Ram[errAddr2] != 0x00 {
		log.Printf("nestest error %#X\n", b.Ram[errAddr2])
	}
}

func (b *Bus) DrawDebugPanel() {
	patternTable0 := b.Ppu.PatternTable(0, 0)
	patternTable1 := b.Ppu.PatternTable(1, 0)
	b.Disp.DrawDebugRGBA(8, int(gameH)-128-8, patternTable0)
	b.Disp.DrawDebugRGBA(128+16, int(gameH)-128-8, patternTable1)

	b.Disp.debugRegText.Clear()
	debugStr := b.getCpuDebugString()
	b.Disp.WriteRegDebugString(debugStr)

	diss := b.getDisassemblyLines()
	b.Disp.WriteInstDebugString(diss)
}

func (b *Bus) getDisassemblyLines() string {
	return b.Cpu.OpDiss + "\n"
}

func (b *Bus) getCpuDebugString() string {
	return fmt.Sprintf(
		"Flags: %08b\nPC: %#04X\nA: %#02X\nX: %#02X\nY: %#02X\nSP: %#02X\n\nCycle Count: %d\n\nPrevious Instruction:\n%s\n",
		b.Cpu.P, b.Cpu.Pc, b.Cpu.A, b.Cpu.X, b.Cpu.Y, b.Cpu.Sp, b.Cpu.CycleCount, b.Cpu.OpDiss,
	)
}
