package nes

// Object attribute memory byte layout, per spec.md 4.4.
const (
	oamOffsetY    = 0
	oamOffsetTile = 1
	oamOffsetAttr = 2
	oamOffsetX    = 3
	oamEntrySize  = 4

	spritesInPrimary   = 64
	spritesInSecondary = 8
)

// primaryOAM is the CPU-addressable 256-byte sprite table, indexed
// directly by OAMADDR/OAMDATA and by OAM DMA.
type primaryOAM [spritesInPrimary * oamEntrySize]byte

func (oam *primaryOAM) read(addr byte) byte {
	return oam[addr]
}

func (oam *primaryOAM) write(addr byte, data byte) {
	oam[addr] = data
}

func (oam *primaryOAM) y(sprite int) byte    { return oam[sprite*oamEntrySize+oamOffsetY] }
func (oam *primaryOAM) tile(sprite int) byte { return oam[sprite*oamEntrySize+oamOffsetTile] }
func (oam *primaryOAM) attr(sprite int) byte { return oam[sprite*oamEntrySize+oamOffsetAttr] }
func (oam *primaryOAM) x(sprite int) byte    { return oam[sprite*oamEntrySize+oamOffsetX] }

// secondaryOAM holds at most 8 sprites selected for the current scanline
// by sprite evaluation, each still tracked as (y, tile, attr, x).
type secondaryOAM [spritesInSecondary * oamEntrySize]byte

func (oam *secondaryOAM) set(sprite int, y, tile, attr, x byte) {
	base := sprite * oamEntrySize
	oam[base+oamOffsetY] = y
	oam[base+oamOffsetTile] = tile
	oam[base+oamOffsetAttr] = attr
	oam[base+oamOffsetX] = x
}

func (oam *secondaryOAM) y(sprite int) byte    { return oam[sprite*oamEntrySize+oamOffsetY] }
func (oam *secondaryOAM) tile(sprite int) byte { return oam[sprite*oamEntrySize+oamOffsetTile] }
func (oam *secondaryOAM) attr(sprite int) byte { return oam[sprite*oamEntrySize+oamOffsetAttr] }
