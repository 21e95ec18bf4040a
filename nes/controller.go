package nes

import (
	"github.com/faiface/pixel/pixelgl"
)

// Available NES controller buttons and their keyboard binds
// Keyboard binds:
/*
	0: A      ---> J
	1: B      ---> K
	2: Select ---> Right Shift
	3: Start  ---> Enter
	4: Up     ---> W
	5: Down   ---> S
	6: Left   ---> A
	7: Right  ---> D
*/
const (
	keyA int = iota
	keyB
	keySelect
	keyStart
	keyUp
	keyDown
	keyLeft
	keyRight
)

var controllerKeys = map[int]pixelgl.Button{
	keyA:      pixelgl.KeyJ,
	keyB:      pixelgl.KeyK,
	keySelect: pixelgl.KeyRightShift,
	keyStart:  pixelgl.KeyEnter,
	keyUp:     pixelgl.KeyW,
	keyDown:   pixelgl.KeyS,
	keyLeft:   pixelgl.KeyA,
	keyRight:  pixelgl.KeyD,
}

// pad is one 8-bit shift-register input latch (spec.md 4.5). Button
// order is A, B, Select, Start, Up, Down, Left, Right, MSB-first.
type pad struct {
	buttonState [8]bool
	shiftReg    byte
	index       byte
	strobe      bool
}

func (p *pad) latch() {
	var reg byte
	for i, pressed := range p.buttonState {
		if pressed {
			reg |= 1 << uint(7-i)
		}
	}
	p.shiftReg = reg
}

func (p *pad) read() byte {
	if p.strobe {
		// While strobe is held high, every read re-latches and returns the
		// live A-button state, per spec.md 4.5's "bit 0 set and then
		// clear" wording. The reference instead snapshots once on every
		// $4016 write regardless of the data byte's low bit, which only
		// happens to work because well-behaved games always toggle strobe
		// 1-then-0 before reading.
		p.latch()
		return p.shiftReg >> 7 & 1
	}
	bit := (p.shiftReg >> (7 - p.index)) & 1
	p.index = (p.index + 1) % 8
	return bit
}

// Controller owns both controller ports. Real hardware ties the strobe
// line from $4016 to both pads simultaneously; only reads are
// per-port ($4016 for pad 1, $4017 for pad 2).
type Controller struct {
	pads [2]pad
}

func NewController() *Controller {
	return &Controller{}
}

// CpuWrite handles the shared strobe write at $4016.
func (c *Controller) CpuWrite(data byte) {
	strobe := data&1 != 0
	for i := range c.pads {
		if strobe {
			c.pads[i].strobe = true
			c.pads[i].index = 0
			c.pads[i].latch()
		} else {
			c.pads[i].strobe = false
			c.pads[i].index = 0
		}
	}
}

// CpuRead handles $4016 (port 0) or $4017 (port 1).
func (c *Controller) CpuRead(port int) byte {
	return c.pads[port].read()
}

func (c *Controller) updateControllerInput(win *pixelgl.Window) {
	for idx, key := range controllerKeys {
		if win.JustPressed(key) {
			c.pads[0].buttonState[idx] = true
		}
		if win.JustReleased(key) {
			c.pads[0].buttonState[idx] = false
		}
	}
}
