// This file is part of maikorhost.
//
// maikorhost is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// maikorhost is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with maikorhost.  If not, see <https://www.gnu.org/licenses/>.

package input

import (
	"fmt"

	"github.com/maikorhost/maikorhost/vm/memorymap"
)

// Button identifies a console button.
type Button int

// List of valid Button values.
const (
	Up Button = iota
	Down
	Left
	Right
	A
	B
	X
	Y
	Start
	NumButtons
)

func (b Button) String() string {
	switch b {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case A:
		return "A"
	case B:
		return "B"
	case X:
		return "X"
	case Y:
		return "Y"
	case Start:
		return "Start"
	}
	return fmt.Sprintf("button %d", int(b))
}

// Masks for the bits of the input register.
const (
	// byte 0
	MaskUp   = 0x01
	MaskDown = 0x02

	// byte 1
	MaskStart = 0x01
)

// Latch holds the state of the buttons.
type Latch struct {
	buttons [NumButtons]bool

	cached    [memorymap.SizeInput]uint8
	cacheLive bool
}

// NewLatch is the preferred method of initialisation for the Latch type.
func NewLatch() *Latch {
	return &Latch{}
}

// SetButton changes the state of a button. Invalid buttons are ignored.
func (l *Latch) SetButton(b Button, pressed bool) {
	if b < 0 || b >= NumButtons {
		return
	}
	l.buttons[b] = pressed
	l.cacheLive = false
}

// Button returns the state of a button.
func (l *Latch) Button(b Button) bool {
	if b < 0 || b >= NumButtons {
		return false
	}
	return l.buttons[b]
}

// Bytes returns the encoded form of the buttons, as it should appear in the
// input register.
func (l *Latch) Bytes() [memorymap.SizeInput]uint8 {
	if l.cacheLive {
		return l.cached
	}

	var v [memorymap.SizeInput]uint8

	// up and down are independent bits. both can be set at the same time
	if l.buttons[Up] {
		v[0] |= MaskUp
	}
	if l.buttons[Down] {
		v[0] |= MaskDown
	}
	if l.buttons[Start] {
		v[1] |= MaskStart
	}

	l.cached = v
	l.cacheLive = true

	return v
}

// Check compares the encoded buttons with the input register of the memory
// image. If they differ the register is updated and true is returned. Callers
// should raise one controller interrupt for every true result.
func (l *Latch) Check(mem []uint8) bool {
	v := l.Bytes()
	a := memorymap.Input
	if mem[a] == v[0] && mem[a+1] == v[1] {
		return false
	}
	mem[a] = v[0]
	mem[a+1] = v[1]
	return true
}
