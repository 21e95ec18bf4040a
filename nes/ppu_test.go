package nes

import "testing"

// newTestPPU attaches a minimal NROM cartridge so nametable reads/writes
// (which need a mapper for mirroring) work without loading a ROM file.
func newTestPPU() *Ppu {
	p := NewPpu()
	p.ConnectCartridge(&Cartridge{mapper: NewMapper000(1, 1, MirrorHorizontal)})
	return p
}

// TestPPUDATAReadIsBufferedOneReadBehind covers spec.md 4.2's PPUDATA
// buffering rule (Open Question c): a CPU read of $2007 below the palette
// window returns the *previous* contents of the buffer, not the byte at
// the address just addressed, and only catches up on the following read.
func TestPPUDATAReadIsBufferedOneReadBehind(t *testing.T) {
	p := newTestPPU()

	p.cpuWrite(6, 0x20) // PPUADDR hi -> $2000
	p.cpuWrite(6, 0x00) // PPUADDR lo
	p.cpuWrite(7, 0xAB) // nametable[$2000] = 0xAB; ppuAddr now $2001

	p.cpuWrite(6, 0x20) // re-point PPUADDR at $2000
	p.cpuWrite(6, 0x00)

	first := p.cpuRead(7)
	second := p.cpuRead(7)

	if first != 0x00 {
		t.Fatalf("first buffered read: want stale buffer 0x00, got %#x", first)
	}
	if second != 0xAB {
		t.Fatalf("second buffered read: want 0xAB, got %#x", second)
	}
}

// TestPPUDATAReadPaletteIsImmediate covers the buffering exception: reads
// at or above $3F00 (palette RAM) return the current byte immediately.
func TestPPUDATAReadPaletteIsImmediate(t *testing.T) {
	p := newTestPPU()

	p.cpuWrite(6, 0x3F)
	p.cpuWrite(6, 0x00)
	p.cpuWrite(7, 0x20) // palette[0] = 0x20; ppuAddr now $3F01

	p.cpuWrite(6, 0x3F)
	p.cpuWrite(6, 0x00)

	if got := p.cpuRead(7); got != 0x20 {
		t.Fatalf("palette read: want immediate 0x20, got %#x", got)
	}
}

// TestSpriteEvaluationCapsAtEightPerScanline covers spec.md 4.2's sprite
// overflow rule: with 9 sprites overlapping one scanline, only the first
// 8 (lowest OAM index order) are loaded into secondary OAM for rendering.
func TestSpriteEvaluationCapsAtEightPerScanline(t *testing.T) {
	p := newTestPPU()
	p.spriteSize = 8
	p.renderY = 10

	for i := 0; i < 9; i++ {
		base := i * oamEntrySize
		p.primary[base+oamOffsetY] = 9 // renderY(10) > y(9) && renderY <= y+8(17)
		p.primary[base+oamOffsetTile] = byte(i)
		p.primary[base+oamOffsetAttr] = 0
		p.primary[base+oamOffsetX] = byte(i * 8)
	}

	p.loadSecondaryOam()

	if p.secondarySprites != spritesInSecondary {
		t.Fatalf("want %d sprites loaded, got %d", spritesInSecondary, p.secondarySprites)
	}
	for i := 0; i < spritesInSecondary; i++ {
		if got := p.secondary.tile(i); got != byte(i) {
			t.Fatalf("secondary slot %d: want tile %d (9th sprite dropped), got %d", i, i, got)
		}
	}
}
