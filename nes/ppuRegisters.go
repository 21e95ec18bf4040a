package nes

// Bit layouts of the three PPU status/control registers, per spec.md 4.2.
// The Ppu struct itself stores these pre-decoded (base nametable address,
// address increment, pattern table base, etc.) rather than keeping the
// raw register byte around, matching the reference implementation's
// cpu_write(0x2000)/cpu_write(0x2001) decode-on-write style.
const (
	ctrlNameTableMask    = 0x03
	ctrlVramIncFlag      = 1 << 2
	ctrlSpritePatternTbl = 1 << 3
	ctrlBgPatternTbl     = 1 << 4
	ctrlSpriteSize       = 1 << 5
	ctrlNmiEnable        = 1 << 7

	maskBgLeft     = 1 << 1
	maskSpriteLeft = 1 << 2
	maskBgShow     = 1 << 3
	maskSpriteShow = 1 << 4

	statusSpriteOverflow byte = 1 << 5
	statusSprite0Hit     byte = 1 << 6
	statusVBlank         byte = 1 << 7
)
