package nes

import (
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"
)

// Cartridge holds a loaded NES ROM's PRG/CHR memory plus the mapper that
// translates CPU/PPU addresses against it, per spec.md 4.3.
type Cartridge struct {
	prgMem []byte // Program memory (PRG)
	chrMem []byte // Character memory (CHR), writable when the board has no CHR-ROM
	prgRAM [16384]byte // on-cartridge PRG-RAM, 0x4020-0x7FFF (spec.md 3)

	mapper Mapper
}

// CartridgeHeader is the 16-byte iNES 1.0 file header.
// reference: https://wiki.nesdev.com/w/index.php/INES
type CartridgeHeader struct {
	Name         [4]byte // Constant "NES" followed by MS-DOS end of file
	PrgRomChunks byte    // Program memory size in 16KB chunks
	ChrRomChunks byte    // Character memory size in 8KB chunks
	Flags6       byte
	Flags7       byte
	PrgRamSize   byte
	Flags9       byte
	Flags10      byte
	Unused       [5]byte
}

// LoadCartridge reads and parses an iNES 1.0 ROM image from path.
func LoadCartridge(path string) (*Cartridge, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if len(data) < 16 {
		return nil, errors.New("file too small to contain an iNES header")
	}

	var header CartridgeHeader
	copy(header.Name[:], data[0:4])
	header.PrgRomChunks = data[4]
	header.ChrRomChunks = data[5]
	header.Flags6 = data[6]
	header.Flags7 = data[7]
	header.PrgRamSize = data[8]
	header.Flags9 = data[9]
	header.Flags10 = data[10]

	if string(header.Name[:3]) != "NES" || header.Name[3] != 0x1A {
		return nil, errors.New("not an iNES file")
	}
	if header.Flags7&0x0C == 0x08 {
		return nil, errors.New("iNES 2.0 files are not supported")
	}
	if header.PrgRomChunks == 0 {
		return nil, errors.New("ROM declares zero PRG banks")
	}

	offset := 16
	if header.Flags6&0x04 != 0 {
		offset += 512 // 512-byte trainer, unused by this implementation
	}

	mirror := MirrorHorizontal
	if header.Flags6&0x01 != 0 {
		mirror = MirrorVertical
	}

	mapperID := (header.Flags6 >> 4) | (header.Flags7 & 0xF0)

	prgSize := 16 * 1024 * int(header.PrgRomChunks)
	chrSize := 8 * 1024 * int(header.ChrRomChunks)
	if offset+prgSize+chrSize > len(data) {
		return nil, errors.New("file is truncated relative to its header sizes")
	}

	cart := &Cartridge{
		prgMem: append([]byte(nil), data[offset:offset+prgSize]...),
	}
	offset += prgSize

	if chrSize > 0 {
		cart.chrMem = append([]byte(nil), data[offset:offset+chrSize]...)
	} else {
		cart.chrMem = make([]byte, 8*1024) // CHR-RAM
	}

	switch mapperID {
	case 0:
		cart.mapper = NewMapper000(header.PrgRomChunks, header.ChrRomChunks, mirror)
	case 1:
		cart.mapper = NewMapper001(header.PrgRomChunks, header.ChrRomChunks)
	default:
		return nil, errors.Errorf("unsupported mapper id %d", mapperID)
	}

	fmt.Printf("loaded cartridge: mapper=%d prg=%dKB chr=%dKB mirroring=%v\n",
		mapperID, prgSize/1024, len(cart.chrMem)/1024, mirror)

	return cart, nil
}

func (c *Cartridge) Mirroring() Mirroring {
	return c.mapper.mirroring()
}

// cpuRead services the PRG-RAM window (0x4020-0x7FFF) directly and
// otherwise defers to the mapper for bank-switched PRG-ROM.
func (c *Cartridge) cpuRead(addr uint16, data *byte) bool {
	if addr >= 0x4020 && addr < 0x8000 {
		*data = c.prgRAM[addr&0x3FFF]
		return true
	}
	if mapped, ok := c.mapper.cpuMapRead(addr); ok {
		*data = c.prgMem[int(mapped)%len(c.prgMem)]
		return true
	}
	return false
}

func (c *Cartridge) cpuWrite(addr uint16, data byte) bool {
	if addr >= 0x4020 && addr < 0x8000 {
		c.prgRAM[addr&0x3FFF] = data
		return true
	}
	// Even when no memory store results (bank-switch registers), the
	// mapper must still see the write to update its internal state.
	if mapped, ok := c.mapper.cpuMapWrite(addr, data); ok {
		c.prgMem[int(mapped)%len(c.prgMem)] = data
		return true
	}
	return false
}

func (c *Cartridge) ppuRead(addr uint16, data *byte) bool {
	if mapped, ok := c.mapper.ppuMapRead(addr); ok {
		*data = c.chrMem[int(mapped)%len(c.chrMem)]
		return true
	}
	return false
}

func (c *Cartridge) ppuWrite(addr uint16, data byte) bool {
	if mapped, ok := c.mapper.ppuMapWrite(addr, data); ok {
		c.chrMem[int(mapped)%len(c.chrMem)] = data
		return true
	}
	return false
}
