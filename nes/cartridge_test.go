package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testRom = "../roms/LegendOfZelda.nes"

func TestLoadCartridge(t *testing.T) {
	cart, err := LoadCartridge(testRom)
	if err != nil {
		t.Skipf("test ROM not available: %v", err)
	}

	assert.NotNil(t, cart.mapper)
}

func TestLoadCartridgeRejectsBadMagic(t *testing.T) {
	_, err := LoadCartridge("cartridge.go")
	assert.Error(t, err)
}

func TestLoadCartridgeMissingFile(t *testing.T) {
	_, err := LoadCartridge("../roms/does-not-exist.nes")
	assert.Error(t, err)
}
