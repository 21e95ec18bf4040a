package main

import (
	"fmt"
	"os"

	"github.com/n-ulricksen/nes-emulator/nes"

	"github.com/alecthomas/kong"
	"github.com/faiface/pixel/pixelgl"
)

// CLI is the command line surface for the emulator, parsed by kong.
var CLI struct {
	Rom     string `arg:"" type:"existingfile" help:"Path to an iNES ROM file."`
	Debug   bool   `short:"d" help:"Enable the debug panel."`
	Logging bool   `short:"l" help:"Enable per-instruction CPU logging."`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("nes-emulator"),
		kong.Description("A cycle-accurate NES emulator."),
	)

	fmt.Println("Starting NES...")
	emu := nes.NewBus(CLI.Debug, CLI.Logging)

	cart, err := nes.LoadCartridge(CLI.Rom)
	if err != nil {
		fmt.Println("Unable to load cartridge:", err)
		os.Exit(1)
	}
	emu.InsertCartridge(cart)

	fmt.Println("Resetting NES...")
	emu.Reset()

	pixelgl.Run(emu.Run)
}
